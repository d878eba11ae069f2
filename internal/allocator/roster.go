package allocator

import (
	"sort"

	"github.com/examhall/seatwise/internal/model"
)

// RosterSlice pairs seats with a contiguous range of an already filtered and
// sorted student roster.  Start and End are zero-based inclusive indexes into
// Roster; the Nth ordered seat gets the student at Start+N.  Positions past
// End (or past the roster itself) yield no student, so trailing seats are
// explicitly cleared.  End < Start is a valid empty range that unassigns
// every selected seat.
type RosterSlice struct {
	Roster []model.Student
	Start  int
	End    int
}

func (r RosterSlice) validate() error {
	if r.Start < 0 {
		return ErrBadRange
	}
	return nil
}

func (r RosterSlice) occupancy(pos int) (model.SeatOccupancy, bool) {
	idx := r.Start + pos
	if idx > r.End || idx >= len(r.Roster) {
		return model.SeatOccupancy{}, false
	}
	st := r.Roster[idx]
	return model.SeatOccupancy{
		RegisterNumber: &st.RegisterNumber,
		StudentName:    &st.Name,
		Department:     &st.Department,
		Semester:       &st.Semester,
	}, true
}

// FilterRoster prepares a roster for slicing: it drops every student whose
// register number appears in excluded (the system-wide set of already
// assigned register numbers, preventing double-booking) and sorts the rest
// lexicographically by register number.  The input slice is not modified.
func FilterRoster(students []model.Student, excluded []string) []model.Student {
	skip := make(map[string]bool, len(excluded))
	for _, reg := range excluded {
		skip[reg] = true
	}
	out := make([]model.Student, 0, len(students))
	for _, st := range students {
		if skip[st.RegisterNumber] {
			continue
		}
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].RegisterNumber < out[j].RegisterNumber
	})
	return out
}
