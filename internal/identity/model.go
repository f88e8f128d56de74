package identity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered user. PasswordHash never leaves the service.
type Account struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateParams represents validated data needed to insert an account.
type CreateParams struct {
	Name         string
	Email        string
	PasswordHash string
}

// Principal is the identity asserted by a verified token.
type Principal struct {
	AccountID uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
}

// LoginResult is returned by a successful Authenticate.
type LoginResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}
