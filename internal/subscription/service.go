package subscription

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/beheryahmed1991/subscription-tracker/internal/apperr"
	"github.com/beheryahmed1991/subscription-tracker/internal/validation"
)

// Store is the persistence contract the service needs. Implementations
// must scope every call to ownerID and return ErrNotFound for rows owned by
// someone else.
type Store interface {
	Create(ctx context.Context, ownerID uuid.UUID, in Input) (Subscription, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (Subscription, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]Subscription, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, in Input) (Subscription, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// Service defines the business operations exposed to handlers.
type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, in Input) (Subscription, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (Subscription, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]Subscription, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, in Input) (Subscription, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type service struct {
	repo     Store
	validate *validator.Validate
}

// NewService creates a Service backed by the provided repository.
func NewService(repo Store) Service {
	return &service{repo: repo, validate: validation.New()}
}

func (s *service) Create(ctx context.Context, ownerID uuid.UUID, in Input) (Subscription, error) {
	in, err := s.prepare(in)
	if err != nil {
		return Subscription{}, err
	}

	sub, err := s.repo.Create(ctx, ownerID, in)
	if err != nil {
		return Subscription{}, apperr.Internal(err)
	}
	return sub, nil
}

func (s *service) Get(ctx context.Context, ownerID, id uuid.UUID) (Subscription, error) {
	sub, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		return Subscription{}, storeError(err)
	}
	return sub, nil
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID) ([]Subscription, error) {
	subs, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return subs, nil
}

func (s *service) Update(ctx context.Context, ownerID, id uuid.UUID, in Input) (Subscription, error) {
	in, err := s.prepare(in)
	if err != nil {
		return Subscription{}, err
	}

	sub, err := s.repo.Update(ctx, ownerID, id, in)
	if err != nil {
		return Subscription{}, storeError(err)
	}
	return sub, nil
}

func (s *service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return storeError(err)
	}
	return nil
}

// prepare trims, validates and fills defaults.
func (s *service) prepare(in Input) (Input, error) {
	in.ServiceName = strings.TrimSpace(in.ServiceName)
	in.Color = strings.TrimSpace(in.Color)

	problems, err := validation.Problems(s.validate, in)
	if err != nil {
		return Input{}, apperr.Internal(err)
	}
	if in.StartDate.IsZero() {
		problems = append(problems, "start_date is required")
	}
	if len(problems) > 0 {
		return Input{}, apperr.Validation("%s", strings.Join(problems, "; "))
	}

	if in.Category == "" {
		in.Category = DefaultCategory
	}
	if in.ReminderDays == 0 {
		in.ReminderDays = DefaultReminderDays
	}
	if in.Color == "" {
		in.Color = DefaultColor
	}
	return in, nil
}

func storeError(err error) error {
	if errors.Is(err, ErrNotFound) {
		return apperr.NotFound("subscription")
	}
	return apperr.Internal(err)
}
