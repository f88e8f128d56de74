package subscription

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memStore is an in-memory Store honouring owner scoping.
type memStore struct {
	mu       sync.Mutex
	subs     []Subscription
	failWith error
}

func (m *memStore) Create(_ context.Context, ownerID uuid.UUID, in Input) (Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return Subscription{}, m.failWith
	}
	now := time.Now().UTC()
	sub := fromInput(Subscription{ID: uuid.New(), UserID: ownerID, CreatedAt: now}, in)
	sub.UpdatedAt = now
	m.subs = append(m.subs, sub)
	return sub, nil
}

func (m *memStore) Get(_ context.Context, ownerID, id uuid.UUID) (Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.subs {
		if s.ID == id && s.UserID == ownerID {
			return s, nil
		}
	}
	return Subscription{}, ErrNotFound
}

func (m *memStore) List(_ context.Context, ownerID uuid.UUID) ([]Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := []Subscription{}
	for _, s := range m.subs {
		if s.UserID == ownerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memStore) Update(_ context.Context, ownerID, id uuid.UUID, in Input) (Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.subs {
		if s.ID == id && s.UserID == ownerID {
			m.subs[i] = fromInput(s, in)
			m.subs[i].UpdatedAt = time.Now().UTC()
			return m.subs[i], nil
		}
	}
	return Subscription{}, ErrNotFound
}

func (m *memStore) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.subs {
		if s.ID == id && s.UserID == ownerID {
			m.subs = append(m.subs[:i], m.subs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func fromInput(s Subscription, in Input) Subscription {
	s.ServiceName = in.ServiceName
	s.Cost = in.Cost
	s.Currency = in.Currency
	s.BillingCycle = in.BillingCycle
	s.StartDate = in.StartDate
	s.Status = in.Status
	s.Category = in.Category
	s.FreeTrial = in.FreeTrial
	s.TrialEndDate = in.TrialEndDate
	s.ReminderDays = in.ReminderDays
	s.Color = in.Color
	return s
}
