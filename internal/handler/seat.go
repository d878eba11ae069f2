package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/examhall/seatwise/internal/allocator"
	"github.com/examhall/seatwise/internal/config"
	"github.com/examhall/seatwise/internal/middleware"
	"github.com/examhall/seatwise/internal/model"
	"github.com/examhall/seatwise/internal/queue"
	"github.com/examhall/seatwise/internal/repository"
	queue_publisher "github.com/examhall/seatwise/internal/service"
)

// SeatHandler serves seat occupancy mutations: the raw batch update the
// editor client sends, the server-side allocation endpoint and clearing.
type SeatHandler struct {
	Halls    *repository.HallRepo
	Seats    *repository.SeatRepo
	Students *repository.StudentRepo

	// Cache invalidation after writes; Redis may be nil when disabled.
	CacheCfg config.CacheConfig
	Redis    *redis.Client
}

func NewSeatHandler(h *repository.HallRepo, s *repository.SeatRepo, st *repository.StudentRepo, cacheCfg config.CacheConfig, rdb *redis.Client) *SeatHandler {
	if h == nil || s == nil || st == nil {
		panic("nil repository passed to NewSeatHandler")
	}
	return &SeatHandler{Halls: h, Seats: s, Students: st, CacheCfg: cacheCfg, Redis: rdb}
}

// ----- DTOs -----

type seatUpdateReq struct {
	SeatID         uint64  `json:"seat_id" validate:"required"`
	RegisterNumber *string `json:"register_number"`
	StudentName    *string `json:"student_name"`
	Department     *string `json:"department"`
	Semester       *string `json:"semester"`
	IsAssigned     bool    `json:"is_assigned"`
}

type batchUpdateReq struct {
	Updates []seatUpdateReq `json:"updates" validate:"required,min=1,dive"`
}

type patternReq struct {
	Start       string  `json:"starting_register_number" validate:"required"`
	StudentName *string `json:"student_name"`
	Department  *string `json:"department"`
	Semester    *string `json:"semester"`
}

// rosterReq positions are 1-based, matching the numbering shown next to the
// roster listing in the client.
type rosterReq struct {
	Department string `json:"department"`
	Semester   string `json:"semester"`
	Start      int    `json:"start" validate:"min=1"`
	End        int    `json:"end" validate:"min=1"`
}

type assignReq struct {
	SeatIDs []uint64    `json:"seat_ids" validate:"required,min=1"`
	Order   string      `json:"order"`
	Pattern *patternReq `json:"pattern"`
	Roster  *rosterReq  `json:"roster"`
}

type clearReq struct {
	SeatIDs []uint64 `json:"seat_ids"`
}

// Update applies a batch of raw occupancy writes produced by the editor
// client. Each seat is an independent last-write-wins upsert.
func (h *SeatHandler) Update(c echo.Context) error {
	hallID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hall id"})
	}
	var req batchUpdateReq
	if !bindAndValidate(c, &req) {
		return nil
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	hall, err := h.Halls.GetByID(ctx, hallID)
	if err != nil {
		if err == repository.ErrHallNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hall not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	updates := make([]repository.SeatUpdate, 0, len(req.Updates))
	for _, u := range req.Updates {
		updates = append(updates, repository.SeatUpdate{
			ID: u.SeatID,
			Occupancy: model.SeatOccupancy{
				RegisterNumber: u.RegisterNumber,
				StudentName:    u.StudentName,
				Department:     u.Department,
				Semester:       u.Semester,
			},
			Assigned: u.IsAssigned,
		})
	}
	if err := h.Seats.ApplyUpdates(ctx, hallID, updates); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	_ = h.Halls.Touch(ctx, hallID)

	h.afterWrite(c, hall, updates)
	return c.JSON(http.StatusOK, echo.Map{"updated": len(updates)})
}

// Assign runs the allocator server-side: it loads the selected seats, pairs
// them with the requested student source and persists the result.
func (h *SeatHandler) Assign(c echo.Context) error {
	hallID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hall id"})
	}
	var req assignReq
	if !bindAndValidate(c, &req) {
		return nil
	}
	if (req.Pattern == nil) == (req.Roster == nil) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "exactly one of pattern or roster required"})
	}

	order, err := allocator.ParseOrder(req.Order)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "order must be horizontal or vertical"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	hall, err := h.Halls.GetByID(ctx, hallID)
	if err != nil {
		if err == repository.ErrHallNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hall not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	seats, err := h.Seats.GetByIDs(ctx, hallID, req.SeatIDs)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if len(seats) != len(req.SeatIDs) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown seat ids for hall"})
	}

	var src allocator.Source
	if req.Pattern != nil {
		src = allocator.SequentialPattern{
			Start:       req.Pattern.Start,
			StudentName: req.Pattern.StudentName,
			Department:  req.Pattern.Department,
			Semester:    req.Pattern.Semester,
		}
	} else {
		roster, err := h.Students.Search(ctx, req.Roster.Department, req.Roster.Semester)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
		}
		// Students already seated anywhere are never handed out again.
		excluded, err := h.Seats.AssignedRegisterNumbers(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
		}
		src = allocator.RosterSlice{
			Roster: allocator.FilterRoster(roster, excluded),
			Start:  req.Roster.Start - 1,
			End:    req.Roster.End - 1,
		}
	}

	muts, err := allocator.Allocate(seats, order, src)
	if err != nil {
		switch {
		case errors.Is(err, allocator.ErrEmptySelection),
			errors.Is(err, allocator.ErrBadOrder),
			errors.Is(err, allocator.ErrBadPattern),
			errors.Is(err, allocator.ErrBadRange):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "allocation failed"})
	}

	updates := make([]repository.SeatUpdate, 0, len(muts))
	for _, m := range muts {
		updates = append(updates, repository.SeatUpdate{ID: m.SeatID, Occupancy: m.Occupancy, Assigned: m.Assigned})
	}
	if err := h.Seats.ApplyUpdates(ctx, hallID, updates); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	_ = h.Halls.Touch(ctx, hallID)

	h.afterWrite(c, hall, updates)

	assigned := 0
	for _, u := range updates {
		if u.Assigned {
			assigned++
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"assigned": assigned,
		"cleared":  len(updates) - assigned,
	})
}

// Clear empties the whole hall, or only the given seats. Idempotent.
func (h *SeatHandler) Clear(c echo.Context) error {
	hallID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hall id"})
	}
	var req clearReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	if _, err := h.Halls.GetByID(ctx, hallID); err != nil {
		if err == repository.ErrHallNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hall not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	if len(req.SeatIDs) == 0 {
		err := h.Seats.ClearByHall(ctx, hallID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "clear failed"})
		}
	} else if err := h.Seats.ClearByIDs(ctx, hallID, req.SeatIDs); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "clear failed"})
	}
	_ = h.Halls.Touch(ctx, hallID)

	middleware.InvalidateCache(ctx, h.CacheCfg, h.Redis)
	return c.NoContent(http.StatusNoContent)
}

// afterWrite invalidates cached read responses and publishes the seating
// event. Failures here never fail the request.
func (h *SeatHandler) afterWrite(c echo.Context, hall *model.Hall, updates []repository.SeatUpdate) {
	middleware.InvalidateCache(c.Request().Context(), h.CacheCfg, h.Redis)

	uid, _ := getUserID(c)
	assigned, cleared := 0, 0
	labels := make([]string, 0, len(updates))
	for _, u := range updates {
		if u.Assigned {
			assigned++
		} else {
			cleared++
		}
	}
	// Labels are resolved from a fresh read so they reflect positions, not
	// the caller-supplied ID order.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if seats, err := h.Seats.GetByHall(ctx, hall.ID); err == nil {
		byID := make(map[uint64]model.Seat, len(seats))
		for _, s := range seats {
			byID[s.ID] = s
		}
		for _, u := range updates {
			if s, ok := byID[u.ID]; ok && u.Assigned {
				labels = append(labels, s.Label())
			}
		}
	}

	ev := queue.SeatingAssignedEvent{
		EventID:       uuid.NewString(),
		HallID:        hall.ID,
		HallName:      hall.Name,
		SeatLabels:    labels,
		AssignedCount: assigned,
		ClearedCount:  cleared,
		AssignedBy:    uid,
		AssignedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue_publisher.PublishSeatingAssigned(ctx, ev)
	}()
}
