package repository // repository defines data access for seats

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"strings"      // strings builds IN (...) placeholder lists

	"github.com/examhall/seatwise/internal/model"
)

// SeatUpdate carries the full post-mutation occupancy state for one seat.
// Batch updates are applied as independent per-seat writes: the storage
// layer offers no cross-seat transaction here, and a failure mid-batch can
// leave earlier writes applied. Callers treat the batch as last-write-wins.
type SeatUpdate struct {
	ID        uint64
	Occupancy model.SeatOccupancy
	Assigned  bool
}

// SeatRepo provides methods to read and mutate seats in the database.
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo constructs a SeatRepo with the given DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo {
	return &SeatRepo{db: db}
}

const seatColumns = `id, hall_id, row_no, col_no, seat_no,
	register_number, student_name, department, semester, is_assigned`

// scanSeat reads one seat row, converting nullable occupancy columns into
// pointer fields.
func scanSeat(rows *sql.Rows) (model.Seat, error) {
	var s model.Seat
	var reg, name, dept, sem sql.NullString
	if err := rows.Scan(&s.ID, &s.HallID, &s.Row, &s.Column, &s.SeatInBench,
		&reg, &name, &dept, &sem, &s.IsAssigned); err != nil {
		return model.Seat{}, err
	}
	if reg.Valid {
		s.RegisterNumber = &reg.String
	}
	if name.Valid {
		s.StudentName = &name.String
	}
	if dept.Valid {
		s.Department = &dept.String
	}
	if sem.Valid {
		s.Semester = &sem.String
	}
	return s, nil
}

func collectSeats(rows *sql.Rows) ([]model.Seat, error) {
	defer rows.Close()
	var out []model.Seat
	for rows.Next() {
		s, err := scanSeat(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByHall retrieves all seats of a hall in grid order: row, then column,
// then position on the bench. This is the only iteration order the grid
// view and allocator rely on.
func (r *SeatRepo) GetByHall(ctx context.Context, hallID uint64) ([]model.Seat, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+seatColumns+` FROM seats
		 WHERE hall_id = ?
		 ORDER BY row_no, col_no, seat_no`, hallID)
	if err != nil {
		return nil, err
	}
	return collectSeats(rows)
}

// GetByIDs retrieves the given seats of one hall. Seat IDs belonging to a
// different hall are silently excluded, which keeps a stale client from
// mutating another hall's grid.
func (r *SeatRepo) GetByIDs(ctx context.Context, hallID uint64, ids []uint64) ([]model.Seat, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]interface{}, 0, len(ids)+1)
	args = append(args, hallID)
	for _, id := range ids {
		args = append(args, id)
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+seatColumns+` FROM seats
		 WHERE hall_id = ? AND id IN (`+placeholders+`)
		 ORDER BY row_no, col_no, seat_no`, args...)
	if err != nil {
		return nil, err
	}
	return collectSeats(rows)
}

// ApplyUpdates writes a batch of seat occupancy mutations. Each seat is an
// independent UPDATE scoped to the hall; there is no ordering guarantee
// between them and no rollback of earlier writes when a later one fails.
func (r *SeatRepo) ApplyUpdates(ctx context.Context, hallID uint64, updates []SeatUpdate) error {
	const q = `UPDATE seats
	           SET register_number = ?, student_name = ?, department = ?, semester = ?, is_assigned = ?
	           WHERE id = ? AND hall_id = ?`
	for _, u := range updates {
		occ := u.Occupancy
		if !u.Assigned {
			occ = model.SeatOccupancy{} // cleared seats never keep stray fields
		}
		if _, err := r.db.ExecContext(ctx, q,
			nullable(occ.RegisterNumber), nullable(occ.StudentName),
			nullable(occ.Department), nullable(occ.Semester),
			u.Assigned, u.ID, hallID); err != nil {
			return err
		}
	}
	return nil
}

// ClearByHall resets the occupancy of every seat in a hall. Clearing an
// already-empty seat is a no-op, so the call is idempotent.
func (r *SeatRepo) ClearByHall(ctx context.Context, hallID uint64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE seats
		 SET register_number = NULL, student_name = NULL, department = NULL,
		     semester = NULL, is_assigned = FALSE
		 WHERE hall_id = ?`, hallID)
	return err
}

// ClearByIDs resets the occupancy of the given seats of one hall.
func (r *SeatRepo) ClearByIDs(ctx context.Context, hallID uint64, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]interface{}, 0, len(ids)+1)
	args = append(args, hallID)
	for _, id := range ids {
		args = append(args, id)
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE seats
		 SET register_number = NULL, student_name = NULL, department = NULL,
		     semester = NULL, is_assigned = FALSE
		 WHERE hall_id = ? AND id IN (`+placeholders+`)`, args...)
	return err
}

// AssignedSeats returns every assigned seat across all halls, optionally
// narrowed to one department and/or semester. Feeds the report builder.
func (r *SeatRepo) AssignedSeats(ctx context.Context, department, semester string) ([]model.Seat, error) {
	q := `SELECT ` + seatColumns + ` FROM seats WHERE is_assigned = TRUE`
	var args []interface{}
	if department != "" {
		q += ` AND department = ?`
		args = append(args, department)
	}
	if semester != "" {
		q += ` AND semester = ?`
		args = append(args, semester)
	}
	q += ` ORDER BY hall_id, row_no, col_no, seat_no`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return collectSeats(rows)
}

// AssignedRegisterNumbers returns the distinct register numbers currently
// sitting on assigned seats, system-wide. The allocator's roster filter uses
// this set to prevent double-booking a student across halls.
func (r *SeatRepo) AssignedRegisterNumbers(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT register_number FROM seats
		 WHERE is_assigned = TRUE AND register_number IS NOT NULL
		 ORDER BY register_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var reg string
		if err := rows.Scan(&reg); err != nil {
			return nil, err
		}
		out = append(out, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// nullable converts a *string into a driver-friendly value: nil maps to SQL
// NULL.
func nullable(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
