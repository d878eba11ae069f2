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

// HallHandler serves hall CRUD and the per-hall seat grid.
type HallHandler struct {
	Halls *repository.HallRepo
	seats *repository.SeatRepo
}

func NewHallHandler(h *repository.HallRepo, s *repository.SeatRepo) *HallHandler {
	if h == nil || s == nil {
		panic("nil repository passed to NewHallHandler")
	}
	return &HallHandler{Halls: h, seats: s}
}

type createHallReq struct {
	Name          string `json:"name" validate:"required,max=120"`
	Rows          uint32 `json:"rows" validate:"required,min=1,max=100"`
	Columns       uint32 `json:"columns" validate:"required,min=1,max=100"`
	SeatsPerBench uint32 `json:"seats_per_bench" validate:"required,min=1,max=10"`
}

// Create makes a hall and materializes its full seat grid in one transaction.
func (h *HallHandler) Create(c echo.Context) error {
	var req createHallReq
	if !bindAndValidate(c, &req) {
		return nil
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	hall := &model.Hall{
		Name:          name,
		Rows:          req.Rows,
		Columns:       req.Columns,
		SeatsPerBench: req.SeatsPerBench,
	}
	if err := h.Halls.CreateWithGrid(ctx, hall); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create hall failed"})
	}
	return c.JSON(http.StatusCreated, hall)
}

// List returns all halls, newest first.
func (h *HallHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	halls, err := h.Halls.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"halls": halls})
}

// Get returns a single hall by ID.
func (h *HallHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hall id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	hall, err := h.Halls.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrHallNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hall not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, hall)
}

// Delete removes a hall and all of its seats.
func (h *HallHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hall id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if err := h.Halls.DeleteCascade(ctx, id); err != nil {
		if err == repository.ErrHallNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hall not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Seats returns the hall's full grid ordered by row, column and seat, the
// order the editor renders it in.
func (h *HallHandler) Seats(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hall id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	hall, err := h.Halls.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrHallNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hall not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	seats, err := h.seats.GetByHall(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"hall": hall, "seats": seats})
}
