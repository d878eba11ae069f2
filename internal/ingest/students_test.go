package ingest

import (
	"errors"
	"strings"
	"testing"
)

func TestParseStudents(t *testing.T) {
	input := "Asha Nair, 23CS001\r\n\nRavi Kumar, 23CS002, B\n"
	students, err := ParseStudents(input, "CSE", "Semester 5")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(students) != 2 {
		t.Fatalf("expected 2 students, got %d", len(students))
	}
	first := students[0]
	if first.Name != "Asha Nair" || first.RegisterNumber != "23CS001" {
		t.Fatalf("first line parsed wrong: %+v", first)
	}
	if first.Department != "CSE" || first.Semester != "Semester 5" {
		t.Fatalf("batch department/semester not stamped: %+v", first)
	}
	if first.ClassSection != nil {
		t.Fatalf("class section must stay nil when absent")
	}
	if students[1].ClassSection == nil || *students[1].ClassSection != "B" {
		t.Fatalf("optional class section not parsed: %+v", students[1])
	}
}

func TestParseStudentsRejectsBadLines(t *testing.T) {
	cases := []string{
		"just-a-name",
		"Asha Nair, 23CS001\n, 23CS002",
		"Asha Nair, ",
		"a, b, c, d",
	}
	for _, in := range cases {
		if _, err := ParseStudents(in, "CSE", "Semester 5"); !errors.Is(err, ErrBadLine) {
			t.Fatalf("input %q must be rejected as a bad line, got %v", in, err)
		}
	}
}

func TestParseStudentsErrorNamesLine(t *testing.T) {
	_, err := ParseStudents("Asha Nair, 23CS001\nbroken", "CSE", "Semester 5")
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("error must name the offending line, got %v", err)
	}
}

func TestParseStudentsEmptyBatch(t *testing.T) {
	if _, err := ParseStudents("\n \n", "CSE", "Semester 5"); !errors.Is(err, ErrEmptyBatch) {
		t.Fatalf("blank input must be rejected as empty batch")
	}
}
