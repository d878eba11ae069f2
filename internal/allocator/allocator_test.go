package allocator

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/examhall/seatwise/internal/model"
)

// seat builds a test seat with an ID derived from its position triple.
func seat(row, col, pos uint32) model.Seat {
	return model.Seat{
		ID:          uint64(row)*10000 + uint64(col)*100 + uint64(pos),
		HallID:      1,
		Row:         row,
		Column:      col,
		SeatInBench: pos,
	}
}

func regNumbers(muts []Mutation) []string {
	out := make([]string, len(muts))
	for i, m := range muts {
		if m.Occupancy.RegisterNumber != nil {
			out[i] = *m.Occupancy.RegisterNumber
		}
	}
	return out
}

func TestSortSeatsHorizontal(t *testing.T) {
	seats := []model.Seat{seat(2, 1, 1), seat(1, 2, 2), seat(1, 2, 1), seat(1, 1, 1)}
	sorted := SortSeats(seats, Horizontal)
	want := []model.Seat{seat(1, 1, 1), seat(1, 2, 1), seat(1, 2, 2), seat(2, 1, 1)}
	if !reflect.DeepEqual(sorted, want) {
		t.Fatalf("horizontal order wrong: got %v", sorted)
	}
	// input must stay untouched
	if seats[0] != seat(2, 1, 1) {
		t.Fatalf("SortSeats mutated its input")
	}
}

func TestSortSeatsVertical(t *testing.T) {
	seats := []model.Seat{seat(1, 2, 1), seat(2, 1, 1), seat(1, 1, 2), seat(1, 1, 1)}
	sorted := SortSeats(seats, Vertical)
	want := []model.Seat{seat(1, 1, 1), seat(1, 1, 2), seat(2, 1, 1), seat(1, 2, 1)}
	if !reflect.DeepEqual(sorted, want) {
		t.Fatalf("vertical order wrong: got %v", sorted)
	}
}

func TestSortSeatsPermutationInvariant(t *testing.T) {
	var seats []model.Seat
	for r := uint32(1); r <= 3; r++ {
		for c := uint32(1); c <= 3; c++ {
			for s := uint32(1); s <= 2; s++ {
				seats = append(seats, seat(r, c, s))
			}
		}
	}
	rng := rand.New(rand.NewSource(42))
	for _, order := range []Order{Horizontal, Vertical} {
		base := SortSeats(seats, order)
		for i := 0; i < 10; i++ {
			shuffled := make([]model.Seat, len(seats))
			copy(shuffled, seats)
			rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
			if got := SortSeats(shuffled, order); !reflect.DeepEqual(got, base) {
				t.Fatalf("%s order depends on input permutation", order)
			}
		}
	}
}

func TestParseOrder(t *testing.T) {
	cases := map[string]Order{
		"horizontal": Horizontal,
		"VERTICAL":   Vertical,
		" vertical ": Vertical,
		"":           Horizontal,
	}
	for in, want := range cases {
		got, err := ParseOrder(in)
		if err != nil || got != want {
			t.Fatalf("ParseOrder(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseOrder("diagonal"); !errors.Is(err, ErrBadOrder) {
		t.Fatalf("expected ErrBadOrder for unknown mode")
	}
}

func TestSequentialPatternBasic(t *testing.T) {
	seats := []model.Seat{seat(1, 1, 1), seat(1, 2, 1), seat(2, 1, 1)}
	muts, err := Allocate(seats, Horizontal, SequentialPattern{Start: "22CS001"})
	if err != nil {
		t.Fatalf("allocate failed: %v", err)
	}
	want := []string{"22CS001", "22CS002", "22CS003"}
	if got := regNumbers(muts); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for _, m := range muts {
		if !m.Assigned {
			t.Fatalf("pattern seats must all be assigned")
		}
		if m.Occupancy.StudentName != nil || m.Occupancy.Department != nil || m.Occupancy.Semester != nil {
			t.Fatalf("unset uniform fields must stay nil")
		}
	}
}

func TestSequentialPatternWidthPreserved(t *testing.T) {
	seats := []model.Seat{seat(1, 1, 1), seat(1, 1, 2), seat(1, 2, 1)}
	muts, err := Allocate(seats, Horizontal, SequentialPattern{Start: "CS009"})
	if err != nil {
		t.Fatalf("allocate failed: %v", err)
	}
	want := []string{"CS009", "CS010", "CS011"}
	if got := regNumbers(muts); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestIncrementSuffix(t *testing.T) {
	cases := []struct {
		start string
		n     int
		want  string
	}{
		{"23001", 1, "23002"},
		{"007", 2, "009"},
		{"099", 1, "100"},
		{"99", 1, "100"}, // result outgrows the width
		{"A9", 1, "A10"},
		{"REG", 5, "REG"}, // degenerate: no trailing digits
	}
	for _, c := range cases {
		if got := incrementSuffix(c.start, c.n); got != c.want {
			t.Fatalf("incrementSuffix(%q, %d) = %q, want %q", c.start, c.n, got, c.want)
		}
	}
}

// A starting value without trailing digits is accepted and stamps the same
// register number on every seat.
func TestSequentialPatternDegenerate(t *testing.T) {
	seats := []model.Seat{seat(1, 1, 1), seat(1, 2, 1)}
	muts, err := Allocate(seats, Horizontal, SequentialPattern{Start: "NODIGITS"})
	if err != nil {
		t.Fatalf("allocate failed: %v", err)
	}
	for _, m := range muts {
		if m.Occupancy.RegisterNumber == nil || *m.Occupancy.RegisterNumber != "NODIGITS" {
			t.Fatalf("degenerate pattern must repeat the start value")
		}
	}
}

func TestSequentialPatternValidation(t *testing.T) {
	seats := []model.Seat{seat(1, 1, 1)}
	if _, err := Allocate(seats, Horizontal, SequentialPattern{Start: "   "}); !errors.Is(err, ErrBadPattern) {
		t.Fatalf("blank start must be rejected")
	}
	if _, err := Allocate(seats, Horizontal, SequentialPattern{Start: "X99999999999999999999999"}); !errors.Is(err, ErrBadPattern) {
		t.Fatalf("oversized suffix must be rejected")
	}
}

func roster(regs ...string) []model.Student {
	out := make([]model.Student, len(regs))
	for i, r := range regs {
		out[i] = model.Student{
			ID:             uint64(i + 1),
			RegisterNumber: r,
			Name:           "Student " + r,
			Department:     "CSE",
			Semester:       "Semester 5",
		}
	}
	return out
}

func TestRosterSliceShortRoster(t *testing.T) {
	seats := []model.Seat{seat(1, 1, 1), seat(1, 2, 1), seat(1, 3, 1), seat(2, 1, 1), seat(2, 2, 1)}
	src := RosterSlice{Roster: roster("23001", "23002", "23003"), Start: 0, End: 4}
	muts, err := Allocate(seats, Horizontal, src)
	if err != nil {
		t.Fatalf("allocate failed: %v", err)
	}
	if len(muts) != 5 {
		t.Fatalf("expected one mutation per seat, got %d", len(muts))
	}
	for i := 0; i < 3; i++ {
		if !muts[i].Assigned || *muts[i].Occupancy.RegisterNumber != "2300"+string(rune('1'+i)) {
			t.Fatalf("seat %d got wrong pairing: %+v", i, muts[i])
		}
	}
	// seats beyond the roster come back explicitly cleared, not untouched
	for i := 3; i < 5; i++ {
		if muts[i].Assigned || muts[i].Occupancy.RegisterNumber != nil {
			t.Fatalf("seat %d must be explicitly unassigned: %+v", i, muts[i])
		}
	}
}

func TestRosterSliceZeroWidth(t *testing.T) {
	seats := []model.Seat{seat(1, 1, 1), seat(1, 2, 1)}
	muts, err := Allocate(seats, Horizontal, RosterSlice{Roster: roster("23001"), Start: 1, End: 0})
	if err != nil {
		t.Fatalf("allocate failed: %v", err)
	}
	for _, m := range muts {
		if m.Assigned {
			t.Fatalf("empty range must unassign every seat")
		}
	}
}

func TestRosterSliceNegativeStart(t *testing.T) {
	seats := []model.Seat{seat(1, 1, 1)}
	if _, err := Allocate(seats, Horizontal, RosterSlice{Roster: roster("23001"), Start: -1, End: 0}); !errors.Is(err, ErrBadRange) {
		t.Fatalf("negative start must be rejected")
	}
}

func TestAllocateEmptySelection(t *testing.T) {
	if _, err := Allocate(nil, Horizontal, SequentialPattern{Start: "23001"}); !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("empty selection must be rejected")
	}
}

// Re-running the allocator with identical inputs must reproduce the output
// exactly, so an assign/clear/assign cycle restores the original state.
func TestAllocateReproducible(t *testing.T) {
	seats := []model.Seat{seat(2, 2, 1), seat(1, 1, 2), seat(1, 1, 1), seat(2, 1, 1)}
	src := RosterSlice{Roster: roster("23001", "23002", "23003", "23004"), Start: 0, End: 3}
	first, err := Allocate(seats, Vertical, src)
	if err != nil {
		t.Fatalf("allocate failed: %v", err)
	}
	second, err := Allocate(seats, Vertical, src)
	if err != nil {
		t.Fatalf("allocate failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("allocation is not reproducible")
	}
}

func TestFilterRoster(t *testing.T) {
	students := roster("23003", "23001", "23002")
	filtered := FilterRoster(students, []string{"23002"})
	if len(filtered) != 2 {
		t.Fatalf("expected assigned students excluded, got %d entries", len(filtered))
	}
	if filtered[0].RegisterNumber != "23001" || filtered[1].RegisterNumber != "23003" {
		t.Fatalf("roster must be sorted by register number: %v", filtered)
	}
	if students[0].RegisterNumber != "23003" {
		t.Fatalf("FilterRoster mutated its input")
	}
}
