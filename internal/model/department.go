package model

import "time"

// Department groups students by name.  The name is unique; deleting a
// department cascades to every student whose Department field equals it by
// value.  StudentCount is filled by listing queries and not stored.
type Department struct {
	ID           uint64    `json:"id"`            // departments.id
	Name         string    `json:"name"`          // departments.name
	StudentCount int       `json:"student_count"` // derived, not a column
	CreatedAt    time.Time `json:"created_at"`    // departments.created_at
}
