package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/examhall/seatwise/internal/model"
	"github.com/examhall/seatwise/internal/report"
	"github.com/examhall/seatwise/internal/repository"
)

// seatReportSource adapts SeatRepo's filter arguments to the report
// builder's Filter value.
type seatReportSource struct {
	seats *repository.SeatRepo
}

func (s seatReportSource) AssignedSeats(ctx context.Context, f report.Filter) ([]model.Seat, error) {
	return s.seats.AssignedSeats(ctx, f.Department, f.Semester)
}

// ReportHandler serves the cross-hall assignment report.
type ReportHandler struct {
	builder *report.Builder
}

func NewReportHandler(seats *repository.SeatRepo, halls *repository.HallRepo) *ReportHandler {
	return &ReportHandler{
		builder: report.NewBuilder(seatReportSource{seats: seats}, halls),
	}
}

// Assignments lists every assigned seat, optionally narrowed to one
// department and/or semester, sorted by register number.
func (h *ReportHandler) Assignments(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	rows, err := h.builder.Build(ctx, report.Filter{
		Department: c.QueryParam("department"),
		Semester:   c.QueryParam("semester"),
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "report failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"assignments": rows, "count": len(rows)})
}
