package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/examhall/seatwise/internal/ingest"
	"github.com/examhall/seatwise/internal/model"
	"github.com/examhall/seatwise/internal/repository"
)

// StudentHandler serves the student roster endpoints.
type StudentHandler struct {
	Students *repository.StudentRepo
	Seats    *repository.SeatRepo
}

func NewStudentHandler(st *repository.StudentRepo, se *repository.SeatRepo) *StudentHandler {
	if st == nil || se == nil {
		panic("nil repository passed to NewStudentHandler")
	}
	return &StudentHandler{Students: st, Seats: se}
}

type createStudentReq struct {
	RegisterNumber string  `json:"register_number" validate:"required,max=64"`
	Name           string  `json:"name" validate:"required,max=120"`
	Department     string  `json:"department" validate:"required,max=120"`
	Semester       string  `json:"semester" validate:"required,max=32"`
	ClassSection   *string `json:"class_section"`
}

type bulkStudentsReq struct {
	Students []createStudentReq `json:"students" validate:"required,min=1,dive"`
}

type importStudentsReq struct {
	Text       string `json:"text" validate:"required"`
	Department string `json:"department" validate:"required,max=120"`
	Semester   string `json:"semester" validate:"required,max=32"`
}

// List returns every student, newest first.
func (h *StudentHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	students, err := h.Students.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"students": students})
}

// Search filters by department and/or semester, sorted by register number.
// This is the listing the roster allocation source is built from.
func (h *StudentHandler) Search(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	students, err := h.Students.Search(ctx, c.QueryParam("department"), c.QueryParam("semester"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"students": students})
}

// AssignedRegisters returns the distinct register numbers sitting on any
// assigned seat across all halls.
func (h *StudentHandler) AssignedRegisters(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	regs, err := h.Seats.AssignedRegisterNumbers(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"register_numbers": regs})
}

// Create adds a single student; duplicate register numbers are rejected.
func (h *StudentHandler) Create(c echo.Context) error {
	var req createStudentReq
	if !bindAndValidate(c, &req) {
		return nil
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	st := model.Student{
		RegisterNumber: strings.TrimSpace(req.RegisterNumber),
		Name:           strings.TrimSpace(req.Name),
		Department:     strings.TrimSpace(req.Department),
		Semester:       strings.TrimSpace(req.Semester),
		ClassSection:   req.ClassSection,
	}
	if err := h.Students.Create(ctx, &st); err != nil {
		if err == repository.ErrDuplicateRegisterNumber {
			return c.JSON(http.StatusConflict, echo.Map{"error": "register number already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, st)
}

// Bulk inserts every non-conflicting student and reports the skipped
// register numbers. A partial insert answers 207 so callers can tell the
// batch did not apply cleanly.
func (h *StudentHandler) Bulk(c echo.Context) error {
	var req bulkStudentsReq
	if !bindAndValidate(c, &req) {
		return nil
	}

	batch := make([]model.Student, 0, len(req.Students))
	for _, s := range req.Students {
		batch = append(batch, model.Student{
			RegisterNumber: strings.TrimSpace(s.RegisterNumber),
			Name:           strings.TrimSpace(s.Name),
			Department:     strings.TrimSpace(s.Department),
			Semester:       strings.TrimSpace(s.Semester),
			ClassSection:   s.ClassSection,
		})
	}
	return h.insertBatch(c, batch)
}

// Import parses "name, register" lines and funnels them through the same
// bulk insert as Bulk.
func (h *StudentHandler) Import(c echo.Context) error {
	var req importStudentsReq
	if !bindAndValidate(c, &req) {
		return nil
	}

	batch, err := ingest.ParseStudents(req.Text, strings.TrimSpace(req.Department), strings.TrimSpace(req.Semester))
	if err != nil {
		if errors.Is(err, ingest.ErrBadLine) || errors.Is(err, ingest.ErrEmptyBatch) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "import failed"})
	}
	return h.insertBatch(c, batch)
}

func (h *StudentHandler) insertBatch(c echo.Context, batch []model.Student) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	inserted, skipped, err := h.Students.CreateBulk(ctx, batch)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "bulk insert failed"})
	}

	status := http.StatusCreated
	if len(skipped) > 0 {
		status = http.StatusMultiStatus
	}
	return c.JSON(status, echo.Map{
		"inserted": inserted,
		"skipped":  skipped,
	})
}

// Delete removes one student from the roster. Seats already assigned keep
// their denormalized copy of the student's fields.
func (h *StudentHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid student id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Students.Delete(ctx, id); err != nil {
		if err == repository.ErrStudentNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "student not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
