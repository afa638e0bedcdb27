package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/dukkanhq/dukkan-api/internal/application/dto"
	"github.com/dukkanhq/dukkan-api/internal/application/reporting"
)

// ReportHandler serves the aggregated sales report in its three formats.
type ReportHandler struct {
	uc *reporting.ReportUseCase
}

// NewReportHandler builds the report handler.
func NewReportHandler(uc *reporting.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// reportQuery parses the shared period/date query parameters. The date
// defaults to today; any day inside the wanted period works as reference.
func reportQuery(c *fiber.Ctx) (reporting.Period, time.Time, error) {
	period, err := reporting.ParsePeriod(c.Query("period", string(reporting.PeriodDaily)))
	if err != nil {
		return "", time.Time{}, err
	}
	ref := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		ref, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return "", time.Time{}, err
		}
	}
	return period, ref, nil
}

// Summary godoc
// @Summary      Sales report for a period, as JSON
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        period    query  string  false  "daily | weekly | monthly (default daily)"
// @Param        date      query  string  false  "reference date YYYY-MM-DD (default today)"
// @Param        validate  query  bool    false  "flag sales whose stored profit disagrees with price and cost"
// @Success      200  {object}  dto.ReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	period, ref, err := reportQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
	}
	report, err := h.uc.GetSummary(c.Context(), GetStoreID(c), period, ref, c.QueryBool("validate"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(report)
}

// Text godoc
// @Summary      Sales report for a period, as shareable plain text
// @Tags         reports
// @Produce      plain
// @Security     BearerAuth
// @Param        period  query  string  false  "daily | weekly | monthly (default daily)"
// @Param        date    query  string  false  "reference date YYYY-MM-DD (default today)"
// @Success      200  {string}  string
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/text [get]
func (h *ReportHandler) Text(c *fiber.Ctx) error {
	period, ref, err := reportQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
	}
	text, err := h.uc.GetText(c.Context(), GetStoreID(c), period, ref)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.SendString(text)
}

// PDF godoc
// @Summary      Sales report for a period, as a printable PDF
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        period  query  string  false  "daily | weekly | monthly (default daily)"
// @Param        date    query  string  false  "reference date YYYY-MM-DD (default today)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/pdf [get]
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	period, ref, err := reportQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
	}
	pdf, err := h.uc.GetPDF(c.Context(), GetStoreID(c), period, ref)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="sales-report.pdf"`)
	return c.Send(pdf)
}
