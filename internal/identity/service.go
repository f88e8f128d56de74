package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/beheryahmed1991/subscription-tracker/internal/apperr"
	"github.com/beheryahmed1991/subscription-tracker/internal/validation"
)

// Store is the persistence contract the identity service needs.
type Store interface {
	Create(context.Context, CreateParams) (Account, error)
	GetByEmail(context.Context, string) (Account, error)
	List(context.Context) ([]Account, error)
}

// Service defines the identity operations exposed to handlers.
type Service interface {
	Register(ctx context.Context, name, email, password string) (Account, error)
	Authenticate(ctx context.Context, email, password string) (LoginResult, error)
	VerifyToken(raw string) (Principal, error)
	List(context.Context) ([]Account, error)
}

type service struct {
	store      Store
	tokens     *TokenManager
	validate   *validator.Validate
	bcryptCost int
	// dummyHash is compared on unknown emails so both login failures cost
	// one bcrypt comparison.
	dummyHash   []byte
	compareHash func(hash, password []byte) error
}

type registerInput struct {
	Name     string `json:"name" validate:"notblank"`
	Email    string `json:"email" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

// NewService creates a Service backed by store, signing tokens with tokens.
func NewService(store Store, tokens *TokenManager, bcryptCost int) Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte("subtracker-unknown-account"), bcryptCost)
	if err != nil {
		// Only an out-of-range cost fails here; config rejects those.
		dummy, _ = bcrypt.GenerateFromPassword([]byte("subtracker-unknown-account"), bcrypt.DefaultCost)
	}
	return &service{
		store:       store,
		tokens:      tokens,
		validate:    validation.New(),
		bcryptCost:  bcryptCost,
		dummyHash:   dummy,
		compareHash: bcrypt.CompareHashAndPassword,
	}
}

func (s *service) Register(ctx context.Context, name, email, password string) (Account, error) {
	in := registerInput{
		Name:     strings.TrimSpace(name),
		Email:    normalizeEmail(email),
		Password: password,
	}

	problems, err := validation.Problems(s.validate, in)
	if err != nil {
		return Account{}, apperr.Internal(err)
	}
	if len(problems) > 0 {
		return Account{}, apperr.Validation("%s", strings.Join(problems, "; "))
	}
	name, email = in.Name, in.Email

	if _, err := s.store.GetByEmail(ctx, email); err == nil {
		return Account{}, apperr.DuplicateAccount("account already exists")
	} else if !errors.Is(err, ErrNotFound) {
		return Account{}, apperr.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return Account{}, apperr.Validation("password is too long")
		}
		return Account{}, apperr.Internal(err)
	}

	acc, err := s.store.Create(ctx, CreateParams{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return Account{}, apperr.DuplicateAccount("account already exists")
		}
		return Account{}, apperr.Internal(err)
	}

	acc.PasswordHash = ""
	return acc, nil
}

func (s *service) Authenticate(ctx context.Context, email, password string) (LoginResult, error) {
	acc, err := s.store.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			_ = s.compareHash(s.dummyHash, []byte(password))
			return LoginResult{}, apperr.InvalidCredentials()
		}
		return LoginResult{}, apperr.Internal(err)
	}

	if err := s.compareHash([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, apperr.InvalidCredentials()
	}

	token, err := s.tokens.Issue(Principal{AccountID: acc.ID, Email: acc.Email})
	if err != nil {
		return LoginResult{}, apperr.Internal(err)
	}

	return LoginResult{Success: true, Message: "Login successful", Token: token}, nil
}

func (s *service) VerifyToken(raw string) (Principal, error) {
	p, err := s.tokens.Verify(raw)
	if err != nil {
		return Principal{}, apperr.Unauthorized(err)
	}
	return p, nil
}

func (s *service) List(ctx context.Context) ([]Account, error) {
	accounts, err := s.store.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	for i := range accounts {
		accounts[i].PasswordHash = ""
	}
	return accounts, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
