package model

import "fmt"

// SeatOccupancy is the denormalized snapshot of a student copied onto a seat
// at assignment time.  All four fields are set together when a seat is
// assigned and cleared together when it is freed; later edits to the student
// roster never change the snapshot.  Nil means unset.
type SeatOccupancy struct {
	RegisterNumber *string `json:"register_number"` // seats.register_number (nullable)
	StudentName    *string `json:"student_name"`    // seats.student_name (nullable)
	Department     *string `json:"department"`      // seats.department (nullable)
	Semester       *string `json:"semester"`        // seats.semester (nullable)
}

// Clear resets every occupancy field to nil.
func (o *SeatOccupancy) Clear() {
	o.RegisterNumber = nil
	o.StudentName = nil
	o.Department = nil
	o.Semester = nil
}

// Seat is one occupiable position in a hall's grid, addressed by the triple
// (Row, Column, SeatInBench).  The triple is unique per hall and immutable
// after creation; the occupancy is the only mutable part of a seat's
// lifecycle.  Invariant: IsAssigned is true exactly when RegisterNumber is
// non-nil.
//
// Fields:
//  ID          – primary key identifier.
//  HallID      – owning hall (seats are destroyed only with their hall).
//  Row         – bench row, 1-based, in [1, hall.Rows].
//  Column      – bench column, 1-based, in [1, hall.Columns].
//  SeatInBench – position on the bench, 1-based, in [1, hall.SeatsPerBench].
//  Occupancy   – denormalized student snapshot (embedded).
//  IsAssigned  – whether the seat currently holds a student.
type Seat struct {
	ID          uint64 `json:"id"`            // seats.id
	HallID      uint64 `json:"hall_id"`       // seats.hall_id
	Row         uint32 `json:"row_number"`    // seats.row_no
	Column      uint32 `json:"column_number"` // seats.col_no
	SeatInBench uint32 `json:"seat_number"`   // seats.seat_no
	SeatOccupancy
	IsAssigned bool `json:"is_assigned"` // seats.is_assigned
}

// Label renders the seat's fixed textual position, e.g. "R2C3S1".  The format
// is used verbatim in reports and exports: 1-based indices, no separators.
func (s Seat) Label() string {
	return fmt.Sprintf("R%dC%dS%d", s.Row, s.Column, s.SeatInBench)
}

// Assign stamps the occupancy snapshot onto the seat and marks it assigned.
func (s *Seat) Assign(o SeatOccupancy) {
	s.SeatOccupancy = o
	s.IsAssigned = true
}

// Unassign clears the occupancy snapshot and marks the seat free.
func (s *Seat) Unassign() {
	s.SeatOccupancy.Clear()
	s.IsAssigned = false
}
