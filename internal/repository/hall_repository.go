package repository // repository holds data access logic for domain entities

import (
	"context"      // context is used to manage deadlines and cancellation
	"database/sql" // sql provides DB primitives
	"errors"       // errors package allows sentinel comparisons
	"strings"      // strings builds multi-row insert statements

	"github.com/examhall/seatwise/internal/model"
)

// HallRepo provides methods to create, list and delete halls together with
// their seat grids. Grid creation and cascade deletion run inside a single
// transaction so no caller can observe a hall with a partial grid, or a
// deleted hall with seats left behind.
type HallRepo struct {
	db *sql.DB // db is the underlying database connection
}

// NewHallRepo constructs a HallRepo with the given DB handle.
func NewHallRepo(db *sql.DB) *HallRepo {
	return &HallRepo{db: db}
}

// CreateWithGrid inserts a new hall and its complete seat grid as one unit.
// The hall must have Name, Rows, Columns and SeatsPerBench set; on success
// the ID and timestamp fields are populated. If any seat insert fails the
// whole transaction rolls back, so a half-populated grid is never persisted.
func (r *HallRepo) CreateWithGrid(ctx context.Context, h *model.Hall) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	const qInsert = `INSERT INTO halls (name, seat_rows, seat_cols, seats_per_bench)
	                 VALUES (?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, qInsert, h.Name, h.Rows, h.Columns, h.SeatsPerBench)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	h.ID = uint64(id)

	// One multi-row insert for the whole cross-product grid.
	seats := model.NewGrid(h.ID, h.Rows, h.Columns, h.SeatsPerBench)
	var b strings.Builder
	b.WriteString(`INSERT INTO seats (hall_id, row_no, col_no, seat_no) VALUES `)
	args := make([]interface{}, 0, len(seats)*4)
	for i, s := range seats {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString("(?, ?, ?, ?)")
		args = append(args, s.HallID, s.Row, s.Column, s.SeatInBench)
	}
	if _, err := tx.ExecContext(ctx, b.String(), args...); err != nil {
		return err
	}

	// Read the record back so created_at/updated_at reflect what was stored.
	const qSelect = `SELECT id, name, seat_rows, seat_cols, seats_per_bench, created_at, updated_at
	                 FROM halls WHERE id = ?`
	if err := tx.QueryRowContext(ctx, qSelect, h.ID).
		Scan(&h.ID, &h.Name, &h.Rows, &h.Columns, &h.SeatsPerBench, &h.CreatedAt, &h.UpdatedAt); err != nil {
		return err
	}
	return tx.Commit()
}

// List returns all halls, newest first.
func (r *HallRepo) List(ctx context.Context) ([]model.Hall, error) {
	const q = `SELECT id, name, seat_rows, seat_cols, seats_per_bench, created_at, updated_at
	           FROM halls
	           ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Hall
	for rows.Next() {
		var h model.Hall
		if err := rows.Scan(&h.ID, &h.Name, &h.Rows, &h.Columns, &h.SeatsPerBench, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID retrieves a hall by its ID. It returns ErrHallNotFound when no
// row is found.
func (r *HallRepo) GetByID(ctx context.Context, id uint64) (*model.Hall, error) {
	const q = `SELECT id, name, seat_rows, seat_cols, seats_per_bench, created_at, updated_at
	           FROM halls WHERE id = ?`
	var h model.Hall
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&h.ID, &h.Name, &h.Rows, &h.Columns, &h.SeatsPerBench, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHallNotFound
		}
		return nil, err
	}
	return &h, nil
}

// DeleteCascade removes a hall and every seat that references it in one
// transaction. Returns ErrHallNotFound when the hall does not exist.
func (r *HallRepo) DeleteCascade(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM seats WHERE hall_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM halls WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrHallNotFound
	}
	return tx.Commit()
}

// Touch bumps the hall's updated_at timestamp. Seat batch updates call this
// so hall listings reflect recent assignment activity.
func (r *HallRepo) Touch(ctx context.Context, id uint64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE halls SET updated_at = CURRENT_TIMESTAMP WHERE id = ?`, id)
	return err
}

// NamesByID resolves a batch of hall IDs to their names in a single query.
// Missing IDs are simply absent from the returned map.
func (r *HallRepo) NamesByID(ctx context.Context, ids []uint64) (map[uint64]string, error) {
	if len(ids) == 0 {
		return map[uint64]string{}, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name FROM halls WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uint64]string, len(ids))
	for rows.Next() {
		var id uint64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		out[id] = name
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
