package reporting

import (
	"fmt"
	"time"
)

// Period reporting granularity.
type Period string

// Supported periods.
const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// DefaultWeekStart is Saturday, the week-start convention of the Arabic locale
// the application targets.
const DefaultWeekStart = time.Saturday

// ParsePeriod validates a period string from the API.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return Period(s), nil
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// DateRange is an inclusive calendar-day interval [Start, End].
// Both bounds are at midnight of their day, in ref's location.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Strings returns both bounds in the store date format (YYYY-MM-DD).
func (r DateRange) Strings() (start, end string) {
	return r.Start.Format("2006-01-02"), r.End.Format("2006-01-02")
}

// PeriodRange resolves a period and reference date into the calendar interval
// the report covers:
//
//	daily   -> ref's day twice
//	weekly  -> the week containing ref, starting at weekStart
//	monthly -> first through last day of ref's month
func PeriodRange(p Period, ref time.Time, weekStart time.Weekday) (DateRange, error) {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	switch p {
	case PeriodDaily:
		return DateRange{Start: day, End: day}, nil
	case PeriodWeekly:
		offset := (int(day.Weekday()) - int(weekStart) + 7) % 7
		start := day.AddDate(0, 0, -offset)
		return DateRange{Start: start, End: start.AddDate(0, 0, 6)}, nil
	case PeriodMonthly:
		start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		// first day of next month minus one day = last day of ref's month
		end := start.AddDate(0, 1, -1)
		return DateRange{Start: start, End: end}, nil
	}
	return DateRange{}, fmt.Errorf("unknown period %q", p)
}
