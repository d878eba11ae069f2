package repository // repository defines data access for the student roster

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/examhall/seatwise/internal/model"
)

// StudentRepo provides methods to work with roster entries in the database.
type StudentRepo struct {
	db *sql.DB
}

// NewStudentRepo constructs a StudentRepo with the given DB handle.
func NewStudentRepo(db *sql.DB) *StudentRepo {
	return &StudentRepo{db: db}
}

const studentColumns = `id, register_number, name, department, semester, class_section, created_at`

func scanStudent(scan func(dest ...interface{}) error) (model.Student, error) {
	var st model.Student
	var section sql.NullString
	if err := scan(&st.ID, &st.RegisterNumber, &st.Name, &st.Department,
		&st.Semester, &section, &st.CreatedAt); err != nil {
		return model.Student{}, err
	}
	if section.Valid {
		st.ClassSection = &section.String
	}
	return st, nil
}

// Create inserts a single student. Returns ErrDuplicateRegisterNumber when
// the register number is already taken; on success the ID and CreatedAt
// fields are populated.
func (r *StudentRepo) Create(ctx context.Context, st *model.Student) error {
	st.RegisterNumber = strings.TrimSpace(st.RegisterNumber)
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO students (register_number, name, department, semester, class_section)
		 VALUES (?, ?, ?, ?, ?)`,
		st.RegisterNumber, st.Name, st.Department, st.Semester, nullable(st.ClassSection))
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateRegisterNumber
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	st.ID = uint64(id)
	st.CreatedAt = time.Now().UTC()
	return nil
}

// CreateBulk inserts a batch of students one row at a time so a duplicate
// register number skips only that row. It returns the students actually
// inserted and the register numbers that were skipped; both lists together
// cover the whole input. Successfully inserted rows are never rolled back.
func (r *StudentRepo) CreateBulk(ctx context.Context, students []model.Student) (inserted []model.Student, skipped []string, err error) {
	for _, st := range students {
		st := st
		if err := r.Create(ctx, &st); err != nil {
			if errors.Is(err, ErrDuplicateRegisterNumber) {
				skipped = append(skipped, st.RegisterNumber)
				continue
			}
			return inserted, skipped, err
		}
		inserted = append(inserted, st)
	}
	return inserted, skipped, nil
}

// List returns all students, newest first.
func (r *StudentRepo) List(ctx context.Context) ([]model.Student, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+studentColumns+` FROM students ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	return collectStudents(rows)
}

// Search returns students filtered by department and/or semester, sorted by
// register number ascending. Empty filter values match everything.
func (r *StudentRepo) Search(ctx context.Context, department, semester string) ([]model.Student, error) {
	q := `SELECT ` + studentColumns + ` FROM students WHERE 1=1`
	var args []interface{}
	if department != "" {
		q += ` AND department = ?`
		args = append(args, department)
	}
	if semester != "" {
		q += ` AND semester = ?`
		args = append(args, semester)
	}
	q += ` ORDER BY register_number`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return collectStudents(rows)
}

// Delete removes a student by ID. Returns ErrStudentNotFound when no row
// was deleted. Seats already holding the student's snapshot are untouched.
func (r *StudentRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrStudentNotFound
	}
	return nil
}

func collectStudents(rows *sql.Rows) ([]model.Student, error) {
	defer rows.Close()
	var out []model.Student
	for rows.Next() {
		st, err := scanStudent(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
