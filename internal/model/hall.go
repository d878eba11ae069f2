package model

import "time"

// Hall represents an exam venue with a fixed seating grid.  The grid
// dimensions are set when the hall is created and never change afterwards:
// every hall owns exactly Rows × Columns × SeatsPerBench seats, and resizing
// a populated grid would desynchronize seats already stored for it.
//
// Fields:
//  ID            – primary key identifier.
//  Name          – human readable hall name.
//  Rows          – number of bench rows (≥ 1).
//  Columns       – number of bench columns (≥ 1).
//  SeatsPerBench – seats on each bench (≥ 1).
//  CreatedAt     – creation timestamp.
//  UpdatedAt     – last update timestamp (bumped on seat mutations).
type Hall struct {
	ID            uint64    `json:"id"`              // halls.id
	Name          string    `json:"name"`            // halls.name
	Rows          uint32    `json:"rows"`            // halls.seat_rows
	Columns       uint32    `json:"columns"`         // halls.seat_cols
	SeatsPerBench uint32    `json:"seats_per_bench"` // halls.seats_per_bench
	CreatedAt     time.Time `json:"created_at"`      // halls.created_at
	UpdatedAt     time.Time `json:"updated_at"`      // halls.updated_at
}

// Capacity returns the total number of seats the hall's grid holds.
func (h Hall) Capacity() int {
	return int(h.Rows) * int(h.Columns) * int(h.SeatsPerBench)
}
