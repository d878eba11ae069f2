package report

import (
	"context"
	"errors"
	"testing"

	"github.com/examhall/seatwise/internal/model"
)

type stubSeats struct {
	seats []model.Seat
	err   error
	got   Filter
}

func (s *stubSeats) AssignedSeats(_ context.Context, f Filter) ([]model.Seat, error) {
	s.got = f
	return s.seats, s.err
}

type stubHalls struct {
	names map[uint64]string
	calls int
}

func (h *stubHalls) NamesByID(_ context.Context, ids []uint64) (map[uint64]string, error) {
	h.calls++
	out := make(map[uint64]string, len(ids))
	for _, id := range ids {
		if n, ok := h.names[id]; ok {
			out[id] = n
		}
	}
	return out, nil
}

func str(s string) *string { return &s }

func assignedSeat(id, hallID uint64, row, col, pos uint32, reg string) model.Seat {
	s := model.Seat{ID: id, HallID: hallID, Row: row, Column: col, SeatInBench: pos, IsAssigned: true}
	s.RegisterNumber = str(reg)
	s.StudentName = str("Student " + reg)
	s.Department = str("CSE")
	s.Semester = str("Semester 5")
	return s
}

func TestBuildSortsAndResolvesHalls(t *testing.T) {
	seats := &stubSeats{seats: []model.Seat{
		assignedSeat(1, 2, 1, 3, 1, "23010"),
		assignedSeat(2, 1, 2, 1, 2, "23001"),
		assignedSeat(3, 1, 1, 1, 1, "23005"),
	}}
	halls := &stubHalls{names: map[uint64]string{1: "Alpha", 2: "Beta"}}

	got, err := NewBuilder(seats, halls).Build(context.Background(), Filter{Department: "CSE"})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if seats.got.Department != "CSE" {
		t.Fatalf("filter not forwarded to seat source")
	}
	if halls.calls != 1 {
		t.Fatalf("hall names must be resolved in one batch call, got %d", halls.calls)
	}
	wantOrder := []string{"23001", "23005", "23010"}
	for i, w := range wantOrder {
		if *got[i].RegisterNumber != w {
			t.Fatalf("row %d: want %s, got %s", i, w, *got[i].RegisterNumber)
		}
	}
	if got[0].HallName != "Alpha" || got[2].HallName != "Beta" {
		t.Fatalf("hall names resolved incorrectly: %+v", got)
	}
	if got[2].SeatLabel != "R1C3S1" {
		t.Fatalf("seat label format wrong: %s", got[2].SeatLabel)
	}
}

func TestBuildNilRegisterNumbersKeepScanOrder(t *testing.T) {
	a := model.Seat{ID: 1, HallID: 1, Row: 1, Column: 1, SeatInBench: 1, IsAssigned: true}
	a.StudentName = str("first")
	b := model.Seat{ID: 2, HallID: 1, Row: 1, Column: 2, SeatInBench: 1, IsAssigned: true}
	b.StudentName = str("second")
	seats := &stubSeats{seats: []model.Seat{a, b, assignedSeat(3, 1, 2, 1, 1, "23001")}}
	halls := &stubHalls{names: map[uint64]string{1: "Alpha"}}

	got, err := NewBuilder(seats, halls).Build(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	// nil keys compare equal to everything; stable sort keeps them in place
	if *got[0].StudentName != "first" || *got[1].StudentName != "second" {
		t.Fatalf("nil register rows were reordered: %+v", got)
	}
}

func TestBuildUnknownHall(t *testing.T) {
	seats := &stubSeats{seats: []model.Seat{assignedSeat(1, 99, 1, 1, 1, "23001")}}
	halls := &stubHalls{names: map[uint64]string{}}
	got, err := NewBuilder(seats, halls).Build(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if got[0].HallName != "Unknown" {
		t.Fatalf("missing hall must resolve to Unknown, got %s", got[0].HallName)
	}
}

func TestBuildEmptyNoHallLookup(t *testing.T) {
	seats := &stubSeats{}
	halls := &stubHalls{}
	got, err := NewBuilder(seats, halls).Build(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if len(got) != 0 || halls.calls != 0 {
		t.Fatalf("empty seat set must not hit the hall lookup")
	}
}

func TestBuildPropagatesSeatError(t *testing.T) {
	boom := errors.New("boom")
	if _, err := NewBuilder(&stubSeats{err: boom}, &stubHalls{}).Build(context.Background(), Filter{}); !errors.Is(err, boom) {
		t.Fatalf("seat source error must propagate")
	}
}
