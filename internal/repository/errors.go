// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios and map
// them onto HTTP statuses: not-found sentinels become 404 responses,
// duplicate sentinels become 409 responses, and ErrConflict covers any
// other operation blocked by existing dependent state.
package repository

import (
	"errors"
	"strings"
)

// ErrHallNotFound is returned when a hall lookup yields no rows.
var ErrHallNotFound = errors.New("hall not found")

// ErrSeatNotFound is returned when a seat lookup yields no rows.
var ErrSeatNotFound = errors.New("seat not found")

// ErrStudentNotFound is returned when a student lookup yields no rows.
var ErrStudentNotFound = errors.New("student not found")

// ErrDepartmentNotFound is returned when a department lookup yields no rows.
var ErrDepartmentNotFound = errors.New("department not found")

// ErrDuplicateRegisterNumber is returned when a student insert collides
// with an existing register number. Register numbers are globally unique.
var ErrDuplicateRegisterNumber = errors.New("register number already exists")

// ErrDuplicateDepartment is returned when a department insert collides
// with an existing department name.
var ErrDuplicateDepartment = errors.New("department already exists")

// ErrConflict is returned when an operation cannot proceed because of
// conflicting state. Handlers should translate this into an HTTP 409.
var ErrConflict = errors.New("conflict")

// isDuplicateKey reports whether err is a MySQL duplicate-key violation
// (error 1062).
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "1062")
}
