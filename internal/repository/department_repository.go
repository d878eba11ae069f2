package repository // repository defines data access for departments

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/examhall/seatwise/internal/model"
)

// DepartmentRepo provides methods to work with departments in the database.
// Students reference departments by name, not by foreign key, which is why
// the cascade on delete matches Student.department against the department's
// name by value.
type DepartmentRepo struct {
	db *sql.DB
}

// NewDepartmentRepo constructs a DepartmentRepo with the given DB handle.
func NewDepartmentRepo(db *sql.DB) *DepartmentRepo {
	return &DepartmentRepo{db: db}
}

// ListWithCounts returns all departments sorted by name, each carrying the
// number of students currently in it. A single LEFT JOIN aggregate covers
// every department instead of one count query per row.
func (r *DepartmentRepo) ListWithCounts(ctx context.Context) ([]model.Department, error) {
	const q = `SELECT d.id, d.name, d.created_at, COUNT(s.id)
	           FROM departments d
	           LEFT JOIN students s ON s.department = d.name
	           GROUP BY d.id, d.name, d.created_at
	           ORDER BY d.name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Department
	for rows.Next() {
		var d model.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt, &d.StudentCount); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a department. Returns ErrDuplicateDepartment when the name
// is already taken; on success the ID and CreatedAt fields are populated.
func (r *DepartmentRepo) Create(ctx context.Context, d *model.Department) error {
	res, err := r.db.ExecContext(ctx, `INSERT INTO departments (name) VALUES (?)`, d.Name)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateDepartment
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	d.ID = uint64(id)
	d.CreatedAt = time.Now().UTC()
	return nil
}

// DeleteCascade removes a department and every student whose department
// field equals its name. Runs in one transaction so the department cannot
// disappear while its students survive. Returns ErrDepartmentNotFound when
// the department does not exist.
func (r *DepartmentRepo) DeleteCascade(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var name string
	err = tx.QueryRowContext(ctx, `SELECT name FROM departments WHERE id = ?`, id).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrDepartmentNotFound
		}
		return err
	}

	// Match by name value: students carry no foreign key to departments.
	if _, err := tx.ExecContext(ctx, `DELETE FROM students WHERE department = ?`, name); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM departments WHERE id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}
