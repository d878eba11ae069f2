// Package report builds flat assignment listings across halls.  The builder
// joins assigned seats with hall names through a lookup fetched once per
// call, so producing a report costs two storage reads regardless of how many
// seats are assigned.
package report

import (
	"context"
	"sort"

	"github.com/examhall/seatwise/internal/model"
)

// Assignment is one row of the report: the seat's denormalized occupancy plus
// the resolved hall name and the fixed-format seat label.
type Assignment struct {
	RegisterNumber *string `json:"register_number"`
	StudentName    *string `json:"student_name"`
	Department     *string `json:"department"`
	Semester       *string `json:"semester"`
	HallName       string  `json:"hall_name"`
	SeatLabel      string  `json:"seat_info"`
}

// Filter narrows the report to one department and/or semester.  Empty fields
// match everything.
type Filter struct {
	Department string
	Semester   string
}

// SeatSource yields every currently assigned seat matching the filter,
// across all halls.
type SeatSource interface {
	AssignedSeats(ctx context.Context, f Filter) ([]model.Seat, error)
}

// HallNames resolves a batch of hall IDs to names in one call.
type HallNames interface {
	NamesByID(ctx context.Context, ids []uint64) (map[uint64]string, error)
}

// Builder assembles assignment reports from its two storage collaborators.
type Builder struct {
	Seats SeatSource
	Halls HallNames
}

// NewBuilder constructs a Builder and panics if a collaborator is missing.
func NewBuilder(seats SeatSource, halls HallNames) *Builder {
	if seats == nil || halls == nil {
		panic("nil source passed to report.NewBuilder")
	}
	return &Builder{Seats: seats, Halls: halls}
}

// Build fetches assigned seats, resolves their hall names and returns one
// record per seat sorted by register number.  Records whose register number
// is nil compare equal to everything, so the sort must be stable: they keep
// their scan order instead of being shuffled among the keyed rows.
func (b *Builder) Build(ctx context.Context, f Filter) ([]Assignment, error) {
	seats, err := b.Seats.AssignedSeats(ctx, f)
	if err != nil {
		return nil, err
	}

	// distinct hall ids, then one batch lookup instead of a query per seat
	seen := make(map[uint64]bool, len(seats))
	ids := make([]uint64, 0, len(seats))
	for _, s := range seats {
		if !seen[s.HallID] {
			seen[s.HallID] = true
			ids = append(ids, s.HallID)
		}
	}
	names := map[uint64]string{}
	if len(ids) > 0 {
		names, err = b.Halls.NamesByID(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	out := make([]Assignment, 0, len(seats))
	for _, s := range seats {
		name, ok := names[s.HallID]
		if !ok {
			name = "Unknown"
		}
		out = append(out, Assignment{
			RegisterNumber: s.RegisterNumber,
			StudentName:    s.StudentName,
			Department:     s.Department,
			Semester:       s.Semester,
			HallName:       name,
			SeatLabel:      s.Label(),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].RegisterNumber, out[j].RegisterNumber
		if a == nil || b == nil {
			return false
		}
		return *a < *b
	})
	return out, nil
}
