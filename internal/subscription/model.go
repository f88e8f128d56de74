package subscription

import (
	"time"

	"github.com/google/uuid"
)

// Currency is the ISO code a subscription is billed in.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyINR Currency = "INR"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
	CurrencyCAD Currency = "CAD"
	CurrencyAUD Currency = "AUD"
)

// BillingCycle is the recurrence period of a payment.
type BillingCycle string

const (
	Weekly    BillingCycle = "Weekly"
	Monthly   BillingCycle = "Monthly"
	Quarterly BillingCycle = "Quarterly"
	Yearly    BillingCycle = "Yearly"
)

type Status string

const (
	StatusActive    Status = "Active"
	StatusPaused    Status = "Paused"
	StatusCancelled Status = "Cancelled"
)

type Category string

const (
	CategoryEntertainment Category = "Entertainment"
	CategoryProductivity  Category = "Productivity"
	CategoryCloud         Category = "Cloud"
	CategoryFitness       Category = "Fitness"
	CategoryNews          Category = "News"
	CategoryEducation     Category = "Education"
	CategoryOther         Category = "Other"
)

const (
	DefaultCategory     = CategoryOther
	DefaultReminderDays = 1
	DefaultColor        = "#8B5CF6"
)

// Subscription mirrors the database schema for the subscriptions table.
type Subscription struct {
	ID           uuid.UUID    `json:"id"`
	UserID       uuid.UUID    `json:"user_id"`
	ServiceName  string       `json:"service_name"`
	Cost         float64      `json:"cost"`
	Currency     Currency     `json:"currency"`
	BillingCycle BillingCycle `json:"billing_cycle"`
	StartDate    time.Time    `json:"start_date"`
	Status       Status       `json:"status"`
	Category     Category     `json:"category"`
	FreeTrial    bool         `json:"free_trial"`
	TrialEndDate *time.Time   `json:"trial_end_date,omitempty"`
	ReminderDays int          `json:"reminder_days"`
	Color        string       `json:"color"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Input carries the editable fields of a subscription. Create and Update
// both take the full set; Update replaces every field.
type Input struct {
	ServiceName  string       `json:"service_name" validate:"notblank"`
	Cost         float64      `json:"cost" validate:"gt=0,lte=9999999999.99,cents"`
	Currency     Currency     `json:"currency" validate:"required,oneof=USD INR EUR GBP JPY CAD AUD"`
	BillingCycle BillingCycle `json:"billing_cycle" validate:"required,oneof=Monthly Yearly Weekly Quarterly"`
	StartDate    time.Time    `json:"start_date"`
	Status       Status       `json:"status" validate:"required,oneof=Active Paused Cancelled"`
	Category     Category     `json:"category" validate:"omitempty,oneof=Entertainment Productivity Cloud Fitness News Education Other"`
	FreeTrial    bool         `json:"free_trial"`
	TrialEndDate *time.Time   `json:"trial_end_date"`
	ReminderDays int          `json:"reminder_days" validate:"omitempty,oneof=1 3 7"`
	Color        string       `json:"color" validate:"omitempty,hexcolor"`
}
