package reporting_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukkanhq/dukkan-api/internal/application/reporting"
	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
)

func TestRenderText_DailyReport(t *testing.T) {
	sales := []*entity.Sale{
		sale("s1", "w1", "قهوة عربية", "قهوة", 2, 10, 4),
		sale("s2", "w2", "قهوة تركية", "قهوة", 1, 15, 5),
		sale("s3", "w1", "شاي أخضر", "شاي", 3, 8, 3),
	}
	names := map[string]string{"w1": "أحمد", "w2": "سارة"}
	summary := reporting.Aggregate(sales, reporting.Options{WorkerNames: names})

	r, err := reporting.PeriodRange(reporting.PeriodDaily, date(2024, time.March, 15), reporting.DefaultWeekStart)
	require.NoError(t, err)

	text := reporting.RenderText(summary, reporting.PeriodDaily, r)

	assert.Contains(t, text, "تقرير المبيعات (يومي)")
	assert.Contains(t, text, "التاريخ: 2024-03-15")
	assert.NotContains(t, text, "الفترة:", "single-day report shows one date, not a range")
	assert.Contains(t, text, "عدد العمليات: 3")
	assert.Contains(t, text, "عدد القطع المباعة: 6")
	assert.Contains(t, text, "إجمالي المبيعات: 59.00")
	assert.Contains(t, text, "إجمالي التكلفة: 22.00")
	assert.Contains(t, text, "صافي الربح: 37.00")
	assert.Contains(t, text, "حسب الفئة:")
	assert.Contains(t, text, "- قهوة: الكمية 3 | المبيعات 35.00 | الربح 22.00")
	assert.Contains(t, text, "- شاي: الكمية 3 | المبيعات 24.00 | الربح 15.00")
	assert.Contains(t, text, "حسب العامل:")
	assert.Contains(t, text, "- أحمد: الكمية 5")
	assert.Contains(t, text, "- سارة: الكمية 1")

	// Categories render in first-seen order.
	assert.Less(t, strings.Index(text, "- قهوة:"), strings.Index(text, "- شاي:"))
}

func TestRenderText_WeeklyShowsRange(t *testing.T) {
	summary := reporting.Aggregate(nil, reporting.Options{})
	r, err := reporting.PeriodRange(reporting.PeriodWeekly, date(2024, time.March, 15), reporting.DefaultWeekStart)
	require.NoError(t, err)

	text := reporting.RenderText(summary, reporting.PeriodWeekly, r)

	assert.Contains(t, text, "تقرير المبيعات (أسبوعي)")
	assert.Contains(t, text, "الفترة: 2024-03-09 - 2024-03-15")
}

func TestRenderText_EmptySummarySkipsSections(t *testing.T) {
	summary := reporting.Aggregate(nil, reporting.Options{})
	r, err := reporting.PeriodRange(reporting.PeriodMonthly, date(2024, time.February, 10), reporting.DefaultWeekStart)
	require.NoError(t, err)

	text := reporting.RenderText(summary, reporting.PeriodMonthly, r)

	assert.Contains(t, text, "تقرير المبيعات (شهري)")
	assert.Contains(t, text, "عدد العمليات: 0")
	assert.Contains(t, text, "إجمالي المبيعات: 0.00")
	assert.NotContains(t, text, "حسب الفئة:")
	assert.NotContains(t, text, "حسب العامل:")
}
