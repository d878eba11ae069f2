// Package allocator implements the seat assignment core: it deterministically
// orders a selection of seats and maps students onto them position by
// position.  The package is pure — it never touches storage.  Callers load
// the selected seats, run Allocate, and persist the returned mutations as a
// batch.
package allocator

import (
	"errors"

	"github.com/examhall/seatwise/internal/model"
)

// ErrEmptySelection is returned when Allocate is called with no seats.
var ErrEmptySelection = errors.New("empty seat selection")

// ErrBadOrder is returned for an unknown ordering mode string.
var ErrBadOrder = errors.New("unknown seat order")

// ErrBadPattern is returned for a starting register number that cannot be
// used to generate a sequence (empty, or a trailing numeric suffix too large
// to increment).
var ErrBadPattern = errors.New("malformed starting register number")

// ErrBadRange is returned for a roster range with a negative start index.
var ErrBadRange = errors.New("invalid roster range")

// Mutation is the full post-allocation state of one seat.  Allocate emits
// exactly one mutation per input seat: matched seats carry the occupancy
// snapshot with Assigned true, unmatched seats come back cleared so a re-run
// with a shorter source cannot leave stale data behind.
type Mutation struct {
	SeatID    uint64
	Occupancy model.SeatOccupancy
	Assigned  bool
}

// Source yields the occupancy for the seat at a given position in the ordered
// sequence.  The second return value is false when the source has no student
// for that position, in which case the seat is explicitly unassigned.
type Source interface {
	occupancy(pos int) (model.SeatOccupancy, bool)
	validate() error
}

// Allocate orders the selected seats and pairs them with the source.  It is
// all-or-nothing: validation failures reject the whole call before any
// mutation is built, and a successful call always returns one mutation per
// selected seat.
func Allocate(selected []model.Seat, order Order, src Source) ([]Mutation, error) {
	if len(selected) == 0 {
		return nil, ErrEmptySelection
	}
	if order != Horizontal && order != Vertical {
		return nil, ErrBadOrder
	}
	if err := src.validate(); err != nil {
		return nil, err
	}
	ordered := SortSeats(selected, order)
	muts := make([]Mutation, 0, len(ordered))
	for i, s := range ordered {
		occ, ok := src.occupancy(i)
		if !ok {
			muts = append(muts, Mutation{SeatID: s.ID})
			continue
		}
		muts = append(muts, Mutation{SeatID: s.ID, Occupancy: occ, Assigned: true})
	}
	return muts, nil
}
