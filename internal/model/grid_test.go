package model

import "testing"

func TestNewGridCoversCrossProduct(t *testing.T) {
	dims := []struct{ rows, cols, per uint32 }{
		{1, 1, 1},
		{2, 3, 2},
		{5, 4, 3},
	}
	for _, d := range dims {
		seats := NewGrid(7, d.rows, d.cols, d.per)
		want := int(d.rows) * int(d.cols) * int(d.per)
		if len(seats) != want {
			t.Fatalf("%dx%dx%d grid: expected %d seats, got %d", d.rows, d.cols, d.per, want, len(seats))
		}
		seen := make(map[[3]uint32]bool, want)
		for _, s := range seats {
			if s.HallID != 7 {
				t.Fatalf("seat missing hall back-reference: %+v", s)
			}
			if s.Row < 1 || s.Row > d.rows || s.Column < 1 || s.Column > d.cols || s.SeatInBench < 1 || s.SeatInBench > d.per {
				t.Fatalf("seat out of bounds: %+v", s)
			}
			if s.IsAssigned || s.RegisterNumber != nil {
				t.Fatalf("new grid seats must start unassigned: %+v", s)
			}
			key := [3]uint32{s.Row, s.Column, s.SeatInBench}
			if seen[key] {
				t.Fatalf("duplicate seat triple %v", key)
			}
			seen[key] = true
		}
	}
}

func TestSeatLabel(t *testing.T) {
	s := Seat{Row: 2, Column: 10, SeatInBench: 1}
	if got := s.Label(); got != "R2C10S1" {
		t.Fatalf("seat label format wrong: %s", got)
	}
}

func TestSeatAssignUnassign(t *testing.T) {
	reg := "23CS001"
	name := "Asha Nair"
	var s Seat
	s.Assign(SeatOccupancy{RegisterNumber: &reg, StudentName: &name})
	if !s.IsAssigned || s.RegisterNumber == nil {
		t.Fatalf("assign did not set occupancy")
	}
	s.Unassign()
	if s.IsAssigned || s.RegisterNumber != nil || s.StudentName != nil {
		t.Fatalf("unassign must clear every field")
	}
	// clearing twice is the same as clearing once
	s.Unassign()
	if s.IsAssigned || s.RegisterNumber != nil {
		t.Fatalf("unassign is not idempotent")
	}
}
