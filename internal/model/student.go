package model

import "time"

// Student is one roster entry.  The register number is the globally unique,
// immutable key; seats reference students only by copying its value at
// assignment time, never structurally.
//
// Fields:
//  ID             – primary key identifier.
//  RegisterNumber – unique register number string.
//  Name           – student name.
//  Department     – department name (matched by value against departments).
//  Semester       – semester label, e.g. "Semester 5".
//  ClassSection   – optional class section; nil when unset.
//  CreatedAt      – creation timestamp.
type Student struct {
	ID             uint64    `json:"id"`              // students.id
	RegisterNumber string    `json:"register_number"` // students.register_number
	Name           string    `json:"name"`            // students.name
	Department     string    `json:"department"`      // students.department
	Semester       string    `json:"semester"`        // students.semester
	ClassSection   *string   `json:"class_section"`   // students.class_section (nullable)
	CreatedAt      time.Time `json:"created_at"`      // students.created_at
}
