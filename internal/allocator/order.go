package allocator // allocator pairs ordered seat selections with student sources

import (
	"sort"
	"strings"

	"github.com/examhall/seatwise/internal/model"
)

// Order selects the iteration order used when walking a seat selection.
// Horizontal fills row by row; Vertical fills column by column.  These are
// the only two orders the allocator defines and they are total: because the
// (row, column, seatInBench) triple is unique within a hall, no ties survive
// the tie-breaks and the same seat set always sorts the same way.
type Order string

const (
	Horizontal Order = "horizontal" // row asc, then column asc, then seat asc
	Vertical   Order = "vertical"   // column asc, then row asc, then seat asc
)

// ParseOrder normalizes a client-supplied order string.  The empty string
// defaults to Horizontal, matching the behaviour of the original grid editor.
func ParseOrder(s string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(s))) {
	case Horizontal, "":
		return Horizontal, nil
	case Vertical:
		return Vertical, nil
	}
	return "", ErrBadOrder
}

// SortSeats returns a copy of seats sorted by the given order.  The input
// slice is never modified so callers can keep their selection in click order.
func SortSeats(seats []model.Seat, order Order) []model.Seat {
	out := make([]model.Seat, len(seats))
	copy(out, seats)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if order == Vertical {
			if a.Column != b.Column {
				return a.Column < b.Column
			}
			if a.Row != b.Row {
				return a.Row < b.Row
			}
			return a.SeatInBench < b.SeatInBench
		}
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return a.SeatInBench < b.SeatInBench
	})
	return out
}
