package subscription

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subscriptionRows() *sqlmock.Rows {
	return sqlmock.NewRows(columns)
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	id, owner := uuid.New(), uuid.New()
	start := date(2025, 1, 15)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO subscriptions").
		WithArgs(owner, "Netflix", 499.0, "INR", "Monthly", start, "Active", "Other", false, (*time.Time)(nil), 1, "#8B5CF6").
		WillReturnRows(subscriptionRows().AddRow(
			id.String(), owner.String(), "Netflix", 499.0, "INR", "Monthly", start,
			"Active", "Other", false, nil, int64(1), "#8B5CF6", now, now,
		))

	sub, err := repo.Create(context.Background(), owner, Input{
		ServiceName:  "Netflix",
		Cost:         499,
		Currency:     CurrencyINR,
		BillingCycle: Monthly,
		StartDate:    start,
		Status:       StatusActive,
		Category:     CategoryOther,
		ReminderDays: 1,
		Color:        DefaultColor,
	})
	require.NoError(t, err)

	assert.Equal(t, id, sub.ID)
	assert.Equal(t, owner, sub.UserID)
	assert.Equal(t, CurrencyINR, sub.Currency)
	assert.Equal(t, Monthly, sub.BillingCycle)
	assert.Equal(t, 1, sub.ReminderDays)
	assert.Nil(t, sub.TrialEndDate)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("INSERT INTO subscriptions").
		WillReturnError(context.DeadlineExceeded)

	_, err = repo.Create(context.Background(), uuid.New(), validInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListScopedToOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	owner := uuid.New()
	now := time.Now()
	trialEnd := date(2025, 2, 1)

	mock.ExpectQuery(`SELECT (.+) FROM subscriptions WHERE user_id = \$1 ORDER BY created_at, id`).
		WithArgs(owner).
		WillReturnRows(subscriptionRows().
			AddRow(uuid.NewString(), owner.String(), "Netflix", 499.0, "INR", "Monthly", date(2025, 1, 15),
				"Active", "Entertainment", true, trialEnd, int64(3), "#FF0000", now, now).
			AddRow(uuid.NewString(), owner.String(), "iCloud", 0.99, "USD", "Yearly", date(2024, 6, 1),
				"Paused", "Cloud", false, nil, int64(7), "#8B5CF6", now, now))

	subs, err := repo.List(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, subs, 2)

	assert.Equal(t, "Netflix", subs[0].ServiceName)
	require.NotNil(t, subs[0].TrialEndDate)
	assert.Equal(t, trialEnd, *subs[0].TrialEndDate)
	assert.Equal(t, CategoryCloud, subs[1].Category)
	assert.Equal(t, StatusPaused, subs[1].Status)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM subscriptions").WillReturnRows(subscriptionRows())

	subs, err := NewRepository(db).List(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, subs)
	assert.Empty(t, subs)
}

func TestRepository_GetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id, owner := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM subscriptions WHERE id = \$1 AND user_id = \$2`).
		WithArgs(id, owner).
		WillReturnRows(subscriptionRows())

	_, err = NewRepository(db).Get(context.Background(), owner, id)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id, owner := uuid.New(), uuid.New()
	start := date(2025, 3, 1)

	mock.ExpectQuery("UPDATE subscriptions SET (.+) WHERE id = (.+) AND user_id = (.+) RETURNING").
		WithArgs("Spotify", 9.99, "EUR", "Yearly", start, "Paused", "Other", false, (*time.Time)(nil), 1, "#8B5CF6", id, owner).
		WillReturnRows(subscriptionRows())

	_, err = NewRepository(db).Update(context.Background(), owner, id, Input{
		ServiceName:  "Spotify",
		Cost:         9.99,
		Currency:     CurrencyEUR,
		BillingCycle: Yearly,
		StartDate:    start,
		Status:       StatusPaused,
		Category:     CategoryOther,
		ReminderDays: 1,
		Color:        DefaultColor,
	})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id, owner := uuid.New(), uuid.New()

	mock.ExpectExec(`DELETE FROM subscriptions WHERE id = \$1 AND user_id = \$2`).
		WithArgs(id, owner).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM subscriptions").
		WithArgs(id, owner).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), owner, id))
	assert.ErrorIs(t, repo.Delete(context.Background(), owner, id), ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetReturnsDatesInUTC(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	owner, id := uuid.New(), uuid.New()
	newYork := time.FixedZone("EST", -5*60*60)
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM subscriptions WHERE id = \$1 AND user_id = \$2`).
		WithArgs(id, owner).
		WillReturnRows(subscriptionRows().
			AddRow(id.String(), owner.String(), "Netflix", 499.0, "INR", "Monthly", date(2025, 1, 15).In(newYork),
				"Active", "Entertainment", true, date(2025, 1, 29).In(newYork), int64(3), "#FF0000", now, now))

	sub, err := repo.Get(context.Background(), owner, id)
	require.NoError(t, err)

	assert.Equal(t, date(2025, 1, 15), sub.StartDate)
	require.NotNil(t, sub.TrialEndDate)
	assert.Equal(t, date(2025, 1, 29), *sub.TrialEndDate)
	assert.Equal(t, date(2025, 2, 15), NextRenewal(sub.StartDate, sub.BillingCycle))

	require.NoError(t, mock.ExpectationsWereMet())
}
