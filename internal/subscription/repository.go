package subscription

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// ErrNotFound is returned when no subscription matches both the id and the
// owner.
var ErrNotFound = errors.New("subscription not found")

var columns = []string{
	"id", "user_id", "service_name", "cost", "currency", "billing_cycle",
	"start_date", "status", "category", "free_trial", "trial_end_date",
	"reminder_days", "color", "created_at", "updated_at",
}

var (
	psql      = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	returning = "RETURNING " + strings.Join(columns, ", ")
)

// Repository handles persistence for subscriptions. Every statement is
// filtered by user_id.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, ownerID uuid.UUID, in Input) (Subscription, error) {
	query, args, err := psql.Insert("subscriptions").
		Columns(
			"user_id", "service_name", "cost", "currency", "billing_cycle", "start_date",
			"status", "category", "free_trial", "trial_end_date", "reminder_days", "color",
		).
		Values(
			ownerID, in.ServiceName, in.Cost, string(in.Currency), string(in.BillingCycle), in.StartDate,
			string(in.Status), string(in.Category), in.FreeTrial, in.TrialEndDate, in.ReminderDays, in.Color,
		).
		Suffix(returning).
		ToSql()
	if err != nil {
		return Subscription{}, fmt.Errorf("build insert: %w", err)
	}

	sub, err := scanSubscription(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return Subscription{}, fmt.Errorf("insert subscription: %w", err)
	}
	return sub, nil
}

func (r *Repository) Get(ctx context.Context, ownerID, id uuid.UUID) (Subscription, error) {
	query, args, err := psql.Select(columns...).
		From("subscriptions").
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": ownerID}).
		ToSql()
	if err != nil {
		return Subscription{}, fmt.Errorf("build select: %w", err)
	}

	sub, err := scanSubscription(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Subscription{}, ErrNotFound
		}
		return Subscription{}, fmt.Errorf("select subscription: %w", err)
	}
	return sub, nil
}

func (r *Repository) List(ctx context.Context, ownerID uuid.UUID) ([]Subscription, error) {
	query, args, err := psql.Select(columns...).
		From("subscriptions").
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer rows.Close()

	subs := []Subscription{}
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		subs = append(subs, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subscriptions: %w", err)
	}

	return subs, nil
}

func (r *Repository) Update(ctx context.Context, ownerID, id uuid.UUID, in Input) (Subscription, error) {
	query, args, err := psql.Update("subscriptions").
		Set("service_name", in.ServiceName).
		Set("cost", in.Cost).
		Set("currency", string(in.Currency)).
		Set("billing_cycle", string(in.BillingCycle)).
		Set("start_date", in.StartDate).
		Set("status", string(in.Status)).
		Set("category", string(in.Category)).
		Set("free_trial", in.FreeTrial).
		Set("trial_end_date", in.TrialEndDate).
		Set("reminder_days", in.ReminderDays).
		Set("color", in.Color).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": ownerID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return Subscription{}, fmt.Errorf("build update: %w", err)
	}

	sub, err := scanSubscription(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Subscription{}, ErrNotFound
		}
		return Subscription{}, fmt.Errorf("update subscription: %w", err)
	}
	return sub, nil
}

func (r *Repository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query, args, err := psql.Delete("subscriptions").
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubscription(row rowScanner) (Subscription, error) {
	var sub Subscription
	err := row.Scan(
		&sub.ID,
		&sub.UserID,
		&sub.ServiceName,
		&sub.Cost,
		&sub.Currency,
		&sub.BillingCycle,
		&sub.StartDate,
		&sub.Status,
		&sub.Category,
		&sub.FreeTrial,
		&sub.TrialEndDate,
		&sub.ReminderDays,
		&sub.Color,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)
	if err != nil {
		return Subscription{}, err
	}

	// lib/pq returns timestamptz in the session time zone.
	sub.StartDate = sub.StartDate.UTC()
	if sub.TrialEndDate != nil {
		end := sub.TrialEndDate.UTC()
		sub.TrialEndDate = &end
	}
	return sub, nil
}
