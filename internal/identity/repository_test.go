package identity

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var accountColumns = []string{"id", "name", "email", "password_hash", "created_at", "updated_at"}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs("Ana", "ana@example.com", "hash").
		WillReturnRows(sqlmock.NewRows(accountColumns).
			AddRow(id.String(), "Ana", "ana@example.com", "hash", now, now))

	acc, err := repo.Create(context.Background(), CreateParams{Name: "Ana", Email: "ana@example.com", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Equal(t, id, acc.ID)
	assert.Equal(t, "hash", acc.PasswordHash)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs("Ana", "ana@example.com", "hash").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "accounts_email_key"})

	_, err = repo.Create(context.Background(), CreateParams{Name: "Ana", Email: "ana@example.com", PasswordHash: "hash"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByEmailNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM accounts WHERE email").
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows(accountColumns))

	_, err = repo.GetByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM accounts").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "created_at", "updated_at"}).
			AddRow(uuid.NewString(), "Ana", "ana@example.com", now, now).
			AddRow(uuid.NewString(), "Bob", "bob@example.com", now, now))

	accounts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "Bob", accounts[1].Name)

	require.NoError(t, mock.ExpectationsWereMet())
}
