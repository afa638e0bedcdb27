package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/dukkanhq/dukkan-api/internal/application/dto"
	"github.com/dukkanhq/dukkan-api/internal/application/usecase"
	"github.com/dukkanhq/dukkan-api/internal/domain"
)

// AttendanceHandler handles worker shift check-in/check-out.
type AttendanceHandler struct {
	uc *usecase.AttendanceUseCase
}

// NewAttendanceHandler builds the attendance handler.
func NewAttendanceHandler(uc *usecase.AttendanceUseCase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

// CheckIn godoc
// @Summary      Open the caller's shift for today
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  dto.AttendanceResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/attendance/check-in [post]
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	record, err := h.uc.CheckIn(c.Context(), GetStoreID(c), GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_CHECKED_IN", Message: "shift already open for today"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// CheckOut godoc
// @Summary      Close the caller's open shift
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.AttendanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/attendance/check-out [post]
func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	record, err := h.uc.CheckOut(c.Context(), GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_OPEN_SHIFT", Message: "no open shift to close"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(record)
}

// ListByDay godoc
// @Summary      List the store's attendance for one day (admin only)
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        date  query  string  false  "day YYYY-MM-DD (default today)"
// @Success      200  {object}  dto.AttendanceListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/attendance [get]
func (h *AttendanceHandler) ListByDay(c *fiber.Ctx) error {
	day := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "date must be YYYY-MM-DD"})
		}
		day = parsed
	}
	list, err := h.uc.ListByDay(c.Context(), GetStoreID(c), day)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// ListMine godoc
// @Summary      List the caller's own attendance history
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "page size (default 20)"
// @Param        offset  query  int  false  "page offset"
// @Success      200  {object}  dto.AttendanceListResponse
// @Router       /api/attendance/me [get]
func (h *AttendanceHandler) ListMine(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid pagination parameters"})
	}
	page.DefaultPage()
	list, err := h.uc.ListByWorker(c.Context(), GetUserID(c), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
