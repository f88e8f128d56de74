package subscription

import "time"

// NextRenewal returns start advanced by exactly one billing period. It does
// not step forward to "now": an old start date yields a renewal in the past.
//
// Month-based cycles clamp to the last day of the target month, so
// 2025-01-31 + Quarterly is 2025-04-30 and 2024-02-29 + Yearly is
// 2025-02-28.
//
// Calendar math runs in UTC, where start dates are stored, so a start that
// arrives in another zone still renews on the same civil day.
//
// An unknown cycle returns start unchanged. Create and Update reject such
// cycles, so only rows written around the service can reach that branch.
func NextRenewal(start time.Time, cycle BillingCycle) time.Time {
	start = start.UTC()
	switch cycle {
	case Weekly:
		return start.AddDate(0, 0, 7)
	case Monthly:
		return addMonthsClamped(start, 1)
	case Quarterly:
		return addMonthsClamped(start, 3)
	case Yearly:
		return addMonthsClamped(start, 12)
	default:
		return start
	}
}

// DaysUntil is the number of calendar days from now to renewal, evaluated in
// renewal's location. Negative when renewal has already passed.
func DaysUntil(renewal, now time.Time) int {
	r := civilDate(renewal)
	n := civilDate(now.In(renewal.Location()))
	return int(r.Sub(n) / (24 * time.Hour))
}

// ReminderDue reports whether an active subscription renews within its
// reminder lead time of now.
func ReminderDue(sub Subscription, now time.Time) bool {
	if sub.Status != StatusActive {
		return false
	}
	lead := sub.ReminderDays
	if lead == 0 {
		lead = DefaultReminderDays
	}
	days := DaysUntil(NextRenewal(sub.StartDate, sub.BillingCycle), now)
	return days >= 0 && days <= lead
}

func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	target := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := daysInMonth(target); day > last {
		day = last
	}
	hour, minute, sec := t.Clock()
	return time.Date(target.Year(), target.Month(), day, hour, minute, sec, t.Nanosecond(), t.Location())
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
