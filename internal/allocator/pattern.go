package allocator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/examhall/seatwise/internal/model"
)

// SequentialPattern generates one register number per seat by incrementing
// the trailing numeric suffix of Start.  The suffix keeps its original
// character width via zero-padding, so "CS009" plus two seats yields
// "CS010" and "CS011".  A start with no trailing digits is degenerate: every
// seat receives the same value.  That case is accepted, not rejected — it is
// what the original pattern substitution did.
//
// The optional uniform fields are stamped identically onto every generated
// occupancy; nil fields stay nil.
type SequentialPattern struct {
	Start       string
	StudentName *string
	Department  *string
	Semester    *string
}

func (p SequentialPattern) validate() error {
	if strings.TrimSpace(p.Start) == "" {
		return ErrBadPattern
	}
	if digits := trailingDigits(p.Start); digits != "" {
		if _, err := strconv.ParseUint(digits, 10, 64); err != nil {
			return fmt.Errorf("%w: suffix %q does not fit in 64 bits", ErrBadPattern, digits)
		}
	}
	return nil
}

func (p SequentialPattern) occupancy(pos int) (model.SeatOccupancy, bool) {
	reg := incrementSuffix(p.Start, pos)
	return model.SeatOccupancy{
		RegisterNumber: &reg,
		StudentName:    p.StudentName,
		Department:     p.Department,
		Semester:       p.Semester,
	}, true
}

// trailingDigits returns the run of ASCII digits at the end of s, or "" when
// s does not end in a digit.
func trailingDigits(s string) string {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	return s[i:]
}

// incrementSuffix adds n to the trailing numeric suffix of s, preserving the
// suffix width by left-padding with zeros.  When the result outgrows the
// original width it is written out in full.  Without trailing digits s is
// returned unchanged.
func incrementSuffix(s string, n int) string {
	digits := trailingDigits(s)
	if digits == "" {
		return s
	}
	prefix := s[:len(s)-len(digits)]
	v, _ := strconv.ParseUint(digits, 10, 64) // width checked in validate
	return prefix + fmt.Sprintf("%0*d", len(digits), v+uint64(n))
}
