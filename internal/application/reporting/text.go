package reporting

import (
	"fmt"
	"strings"
)

// Arabic period labels for the report header.
var periodLabels = map[Period]string{
	PeriodDaily:   "يومي",
	PeriodWeekly:  "أسبوعي",
	PeriodMonthly: "شهري",
}

// RenderText formats a Summary as the plain-text block shared verbatim by the
// message, email and print channels. Layout is fixed: header line, general
// counts, category breakdown in first-seen order, then the worker breakdown
// when at least one worker bucket exists.
func RenderText(s *Summary, p Period, r DateRange) string {
	start, end := r.Strings()

	var b strings.Builder
	fmt.Fprintf(&b, "تقرير المبيعات (%s)\n", periodLabels[p])
	if start == end {
		fmt.Fprintf(&b, "التاريخ: %s\n", start)
	} else {
		fmt.Fprintf(&b, "الفترة: %s - %s\n", start, end)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "عدد العمليات: %d\n", s.SaleCount)
	fmt.Fprintf(&b, "عدد القطع المباعة: %d\n", s.TotalUnits)
	fmt.Fprintf(&b, "إجمالي المبيعات: %s\n", s.TotalRevenue.StringFixed(2))
	fmt.Fprintf(&b, "إجمالي التكلفة: %s\n", s.TotalCost.StringFixed(2))
	fmt.Fprintf(&b, "صافي الربح: %s\n", s.TotalProfit.StringFixed(2))

	if len(s.CategoryOrder) > 0 {
		b.WriteString("\nحسب الفئة:\n")
		for _, cat := range s.CategoryOrder {
			bucket := s.ByCategory[cat]
			fmt.Fprintf(&b, "- %s: الكمية %d | المبيعات %s | الربح %s\n",
				cat, bucket.Quantity, bucket.Total.StringFixed(2), bucket.Profit.StringFixed(2))
		}
	}

	if len(s.WorkerOrder) > 0 {
		b.WriteString("\nحسب العامل:\n")
		for _, worker := range s.WorkerOrder {
			bucket := s.ByWorker[worker]
			fmt.Fprintf(&b, "- %s: الكمية %d | المبيعات %s | الربح %s\n",
				worker, bucket.Quantity, bucket.Total.StringFixed(2), bucket.Profit.StringFixed(2))
		}
	}

	return b.String()
}
