package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/examhall/seatwise/internal/model"
	"github.com/examhall/seatwise/internal/repository"
)

// DepartmentHandler serves the department lookup table.
type DepartmentHandler struct {
	Departments *repository.DepartmentRepo
}

func NewDepartmentHandler(d *repository.DepartmentRepo) *DepartmentHandler {
	if d == nil {
		panic("nil repository passed to NewDepartmentHandler")
	}
	return &DepartmentHandler{Departments: d}
}

type createDepartmentReq struct {
	Name string `json:"name" validate:"required,max=120"`
}

// List returns every department with its current student count.
func (h *DepartmentHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	deps, err := h.Departments.ListWithCounts(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"departments": deps})
}

// Create adds a department; names are unique.
func (h *DepartmentHandler) Create(c echo.Context) error {
	var req createDepartmentReq
	if !bindAndValidate(c, &req) {
		return nil
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dep := model.Department{Name: strings.TrimSpace(req.Name)}
	if err := h.Departments.Create(ctx, &dep); err != nil {
		if err == repository.ErrDuplicateDepartment {
			return c.JSON(http.StatusConflict, echo.Map{"error": "department already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, dep)
}

// Delete removes a department and every student whose department field
// matches its name.
func (h *DepartmentHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid department id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if err := h.Departments.DeleteCascade(ctx, id); err != nil {
		if err == repository.ErrDepartmentNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "department not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
