package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/model"
)

// RoleRepo encapsulates all database queries related to roles.  Reads join
// against hospitals to materialize the denormalized hospital_name field.
type RoleRepo struct {
	db *sql.DB
}

// NewRoleRepo constructs a RoleRepo with the provided DB handle.
func NewRoleRepo(db *sql.DB) *RoleRepo {
	return &RoleRepo{db: db}
}

func scanRole(row interface{ Scan(...any) error }) (*model.Role, error) {
	var (
		role         model.Role
		hospitalID   sql.NullInt64
		hospitalName sql.NullString
	)
	if err := row.Scan(&role.ID, &role.RoleName, &role.Permissions, &hospitalID, &hospitalName); err != nil {
		return nil, err
	}
	if hospitalID.Valid {
		id := uint64(hospitalID.Int64)
		role.HospitalID = &id
	}
	if hospitalName.Valid {
		name := hospitalName.String
		role.HospitalName = &name
	}
	return &role, nil
}

// Create inserts a new role and reloads it so the caller receives the
// joined hospital_name as well.
func (r *RoleRepo) Create(ctx context.Context, req model.RoleRequest) (*model.Role, error) {
	const q = "INSERT INTO roles (role_name, permissions, hospital_id) VALUES (?, ?, ?)"
	res, err := r.db.ExecContext(ctx, q, req.RoleName, req.Permissions, req.HospitalID)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByID fetches a role with its denormalized hospital name.
func (r *RoleRepo) GetByID(ctx context.Context, id uint64) (*model.Role, error) {
	const q = `SELECT r.id, r.role_name, r.permissions, r.hospital_id, h.name
	           FROM roles r LEFT JOIN hospitals h ON h.id = r.hospital_id
	           WHERE r.id = ?`
	role, err := scanRole(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}
	return role, nil
}

// List returns all roles ordered by id, hospital names included.
func (r *RoleRepo) List(ctx context.Context) ([]model.Role, error) {
	const q = `SELECT r.id, r.role_name, r.permissions, r.hospital_id, h.name
	           FROM roles r LEFT JOIN hospitals h ON h.id = r.hospital_id
	           ORDER BY r.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Role{}
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *role)
	}
	return out, rows.Err()
}

// Update rewrites the mutable fields of a role.
func (r *RoleRepo) Update(ctx context.Context, id uint64, req model.RoleRequest) error {
	const q = "UPDATE roles SET role_name = ?, permissions = ?, hospital_id = ? WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, req.RoleName, req.Permissions, req.HospitalID, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a role by id.
func (r *RoleRepo) Delete(ctx context.Context, id uint64) error {
	const q = "DELETE FROM roles WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRoleNotFound
	}
	return nil
}
