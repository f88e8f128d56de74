package identity

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memStore is an in-memory Store used by the service and handler tests.
type memStore struct {
	mu       sync.Mutex
	accounts []Account
	failWith error
}

func (m *memStore) Create(_ context.Context, params CreateParams) (Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return Account{}, m.failWith
	}
	for _, a := range m.accounts {
		if a.Email == params.Email {
			return Account{}, ErrDuplicateEmail
		}
	}
	now := time.Now().UTC()
	acc := Account{
		ID:           uuid.New(),
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.accounts = append(m.accounts, acc)
	return acc, nil
}

func (m *memStore) GetByEmail(_ context.Context, email string) (Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return Account{}, m.failWith
	}
	for _, a := range m.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return Account{}, ErrNotFound
}

func (m *memStore) List(context.Context) ([]Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := make([]Account, len(m.accounts))
	copy(out, m.accounts)
	return out, nil
}
