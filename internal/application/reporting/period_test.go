package reporting_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukkanhq/dukkan-api/internal/application/reporting"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParsePeriod(t *testing.T) {
	for _, s := range []string{"daily", "weekly", "monthly"} {
		p, err := reporting.ParsePeriod(s)
		require.NoError(t, err)
		assert.Equal(t, s, string(p))
	}

	_, err := reporting.ParsePeriod("yearly")
	assert.Error(t, err)
	_, err = reporting.ParsePeriod("")
	assert.Error(t, err)
}

func TestPeriodRange_Daily(t *testing.T) {
	// Time of day must not matter: any instant inside the day maps to it.
	ref := time.Date(2024, time.March, 15, 17, 42, 3, 0, time.UTC)
	r, err := reporting.PeriodRange(reporting.PeriodDaily, ref, reporting.DefaultWeekStart)
	require.NoError(t, err)

	start, end := r.Strings()
	assert.Equal(t, "2024-03-15", start)
	assert.Equal(t, "2024-03-15", end)
}

func TestPeriodRange_Weekly_SaturdayStart(t *testing.T) {
	// 2024-03-15 is a Friday; the Saturday-start week containing it runs
	// 2024-03-09 (Sat) through 2024-03-15 (Fri).
	r, err := reporting.PeriodRange(reporting.PeriodWeekly, date(2024, time.March, 15), time.Saturday)
	require.NoError(t, err)

	start, end := r.Strings()
	assert.Equal(t, "2024-03-09", start)
	assert.Equal(t, "2024-03-15", end)
}

func TestPeriodRange_Weekly_RefOnWeekStart(t *testing.T) {
	// A Saturday reference opens its own week.
	r, err := reporting.PeriodRange(reporting.PeriodWeekly, date(2024, time.March, 9), time.Saturday)
	require.NoError(t, err)

	start, end := r.Strings()
	assert.Equal(t, "2024-03-09", start)
	assert.Equal(t, "2024-03-15", end)
}

func TestPeriodRange_Weekly_MondayStart(t *testing.T) {
	r, err := reporting.PeriodRange(reporting.PeriodWeekly, date(2024, time.March, 15), time.Monday)
	require.NoError(t, err)

	start, end := r.Strings()
	assert.Equal(t, "2024-03-11", start)
	assert.Equal(t, "2024-03-17", end)
}

func TestPeriodRange_Monthly(t *testing.T) {
	r, err := reporting.PeriodRange(reporting.PeriodMonthly, date(2024, time.March, 15), reporting.DefaultWeekStart)
	require.NoError(t, err)

	start, end := r.Strings()
	assert.Equal(t, "2024-03-01", start)
	assert.Equal(t, "2024-03-31", end)
}

func TestPeriodRange_Monthly_LeapFebruary(t *testing.T) {
	r, err := reporting.PeriodRange(reporting.PeriodMonthly, date(2024, time.February, 10), reporting.DefaultWeekStart)
	require.NoError(t, err)

	start, end := r.Strings()
	assert.Equal(t, "2024-02-01", start)
	assert.Equal(t, "2024-02-29", end)
}

func TestPeriodRange_Monthly_NonLeapFebruary(t *testing.T) {
	r, err := reporting.PeriodRange(reporting.PeriodMonthly, date(2023, time.February, 28), reporting.DefaultWeekStart)
	require.NoError(t, err)

	_, end := r.Strings()
	assert.Equal(t, "2023-02-28", end)
}

func TestPeriodRange_UnknownPeriod(t *testing.T) {
	_, err := reporting.PeriodRange(reporting.Period("hourly"), date(2024, time.March, 15), time.Saturday)
	assert.Error(t, err)
}
