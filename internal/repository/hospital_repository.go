package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/model"
)

// HospitalRepo encapsulates all database queries related to hospitals.
type HospitalRepo struct {
	db *sql.DB
}

// NewHospitalRepo constructs a HospitalRepo with the provided DB handle.
func NewHospitalRepo(db *sql.DB) *HospitalRepo {
	return &HospitalRepo{db: db}
}

// Create inserts a new hospital.  On success the ID and CreatedAt fields of
// h are populated from the stored row so callers receive a complete record.
func (r *HospitalRepo) Create(ctx context.Context, h *model.Hospital) error {
	const qInsert = "INSERT INTO hospitals (name, address) VALUES (?, ?)"
	res, err := r.db.ExecContext(ctx, qInsert, h.Name, h.Address)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	h.ID = uint64(id)

	// Follow-up SELECT to pick up the DB-assigned created_at.
	const qSelect = "SELECT created_at FROM hospitals WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, h.ID).Scan(&h.CreatedAt)
}

// GetByID fetches a hospital by id, returning ErrHospitalNotFound when no
// row exists.
func (r *HospitalRepo) GetByID(ctx context.Context, id uint64) (*model.Hospital, error) {
	const q = "SELECT id, name, address, created_at FROM hospitals WHERE id = ?"
	var h model.Hospital
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&h.ID, &h.Name, &h.Address, &h.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHospitalNotFound
		}
		return nil, err
	}
	return &h, nil
}

// List returns all hospitals ordered by id.
func (r *HospitalRepo) List(ctx context.Context) ([]model.Hospital, error) {
	const q = "SELECT id, name, address, created_at FROM hospitals ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Hospital{}
	for rows.Next() {
		var h model.Hospital
		if err := rows.Scan(&h.ID, &h.Name, &h.Address, &h.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// Update rewrites the mutable fields of a hospital.  It returns
// ErrHospitalNotFound when no row was matched.
func (r *HospitalRepo) Update(ctx context.Context, id uint64, req model.HospitalRequest) error {
	const q = "UPDATE hospitals SET name = ?, address = ? WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, req.Name, req.Address, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Distinguish "missing" from "no field changed".
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a hospital by id, returning ErrHospitalNotFound when no
// row was deleted.
func (r *HospitalRepo) Delete(ctx context.Context, id uint64) error {
	const q = "DELETE FROM hospitals WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrHospitalNotFound
	}
	return nil
}
