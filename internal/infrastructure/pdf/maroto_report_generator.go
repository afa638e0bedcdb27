// Package pdf renders the printable sales report.
//
// A4 page layout:
//
//	┌────────────────────────────────────────────────────────┐
//	│  HEADER: store name │ period label + date range        │
//	│  ────────────────────────────────────────────────────  │
//	│  TOTALS: sales / units / revenue / cost / profit       │
//	│  ────────────────────────────────────────────────────  │
//	│  TABLE: per-category rows                              │
//	│  TABLE: per-worker rows (when present)                 │
//	└────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/dukkanhq/dukkan-api/internal/application/dto"
	"github.com/dukkanhq/dukkan-api/internal/application/reporting"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ reporting.PDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implements reporting.PDFGenerator with Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator builds the generator.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// ReportPDF renders the report and returns its bytes.
func (g *MarotoReportGenerator) ReportPDF(report *dto.ReportResponse, storeName string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Sales Report", true).
		WithAuthor(storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report, storeName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRows(report)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(report.ByCategory) > 0 {
		m.AddRows(sectionRows("By category", report.ByCategory)...)
	}
	if len(report.ByWorker) > 0 {
		m.AddRows(line.NewRow(2))
		m.AddRows(sectionRows("By worker", report.ByWorker)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(report *dto.ReportResponse, storeName string) core.Row {
	period := fmt.Sprintf("%s  %s - %s", report.Period, report.StartDate, report.EndDate)
	return row.New(16).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Sales Report", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(period, props.Text{Size: 9, Top: 4, Align: align.Right}),
		),
	)
}

func totalsRows(report *dto.ReportResponse) []core.Row {
	entries := []struct {
		label string
		value string
	}{
		{"Sales", fmt.Sprintf("%d", report.SaleCount)},
		{"Units sold", fmt.Sprintf("%d", report.TotalUnits)},
		{"Revenue", report.TotalRevenue.StringFixed(2)},
		{"Cost", report.TotalCost.StringFixed(2)},
		{"Profit", report.TotalProfit.StringFixed(2)},
	}
	rows := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(e.label, props.Text{Size: 9})),
			col.New(6).Add(text.New(e.value, props.Text{Size: 9, Align: align.Right, Style: fontstyle.Bold})),
		))
	}
	return rows
}

func sectionRows(title string, buckets []dto.ReportBucket) []core.Row {
	rows := []core.Row{
		row.New(8).Add(
			col.New(12).Add(text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 1,
			})),
		),
		row.New(6).Add(
			col.New(5).Add(text.New("Label", props.Text{Size: 8, Style: fontstyle.Bold, Color: colorGray})),
			col.New(2).Add(text.New("Qty", props.Text{Size: 8, Style: fontstyle.Bold, Color: colorGray, Align: align.Right})),
			col.New(2).Add(text.New("Total", props.Text{Size: 8, Style: fontstyle.Bold, Color: colorGray, Align: align.Right})),
			col.New(3).Add(text.New("Profit", props.Text{Size: 8, Style: fontstyle.Bold, Color: colorGray, Align: align.Right})),
		),
	}
	for _, b := range buckets {
		rows = append(rows, row.New(5).Add(
			col.New(5).Add(text.New(b.Label, props.Text{Size: 8})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", b.Quantity), props.Text{Size: 8, Align: align.Right})),
			col.New(2).Add(text.New(b.Total.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
			col.New(3).Add(text.New(b.Profit.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
		))
	}
	return rows
}
