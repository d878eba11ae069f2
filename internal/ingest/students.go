// Package ingest parses the CSV-like bulk student format: one student per
// line as "name, registerNumber", with department and semester supplied once
// for the whole batch.  Parsing happens upstream of any storage write, so a
// malformed line rejects the entire batch before anything is inserted.
package ingest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/examhall/seatwise/internal/model"
)

// ErrBadLine wraps any line that does not split into the expected fields.
var ErrBadLine = errors.New("malformed student line")

// ErrEmptyBatch is returned when the input contains no usable lines.
var ErrEmptyBatch = errors.New("empty student batch")

// ParseStudents turns raw pasted text into roster entries.  Blank lines are
// skipped; every other line must carry a non-empty name and register number
// separated by a comma.  A third comma-separated field, when present, is
// taken as the class section.
func ParseStudents(input, department, semester string) ([]model.Student, error) {
	var out []model.Student
	for i, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("%w: line %d needs \"name, register\" fields", ErrBadLine, i+1)
		}
		name := strings.TrimSpace(parts[0])
		reg := strings.TrimSpace(parts[1])
		if name == "" || reg == "" {
			return nil, fmt.Errorf("%w: line %d has an empty field", ErrBadLine, i+1)
		}
		st := model.Student{
			RegisterNumber: reg,
			Name:           name,
			Department:     department,
			Semester:       semester,
		}
		if len(parts) == 3 {
			if sec := strings.TrimSpace(parts[2]); sec != "" {
				st.ClassSection = &sec
			}
		}
		out = append(out, st)
	}
	if len(out) == 0 {
		return nil, ErrEmptyBatch
	}
	return out, nil
}
