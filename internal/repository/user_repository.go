package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/model"
)

// UserRepo encapsulates all database queries related to operator accounts.
// The stored bcrypt hash never leaves this package except through
// GetCredentials, which exists solely for login verification.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo constructs a UserRepo with the provided DB handle.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	var (
		u        model.User
		roleID   sql.NullInt64
		roleName sql.NullString
	)
	if err := row.Scan(&u.ID, &u.Username, &u.FullName, &u.Email, &roleID, &roleName); err != nil {
		return nil, err
	}
	if roleID.Valid {
		id := uint64(roleID.Int64)
		u.RoleID = &id
	}
	if roleName.Valid {
		name := roleName.String
		u.RoleName = &name
	}
	return &u, nil
}

// Create inserts a new user with an already-hashed password and reloads the
// joined record.
func (r *UserRepo) Create(ctx context.Context, req model.UserRequest, passwordHash string) (*model.User, error) {
	const q = `INSERT INTO users (username, full_name, email, password_hash, role_id)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, req.Username, req.FullName, req.Email, passwordHash, req.RoleID)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByID fetches a user with its denormalized role name.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (*model.User, error) {
	const q = `SELECT u.id, u.username, u.full_name, u.email, u.role_id, ro.role_name
	           FROM users u LEFT JOIN roles ro ON ro.id = u.role_id
	           WHERE u.id = ?`
	u, err := scanUser(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// GetCredentials returns the user id and stored bcrypt hash for a username.
// Used only by the login endpoint.
func (r *UserRepo) GetCredentials(ctx context.Context, username string) (uint64, string, error) {
	const q = "SELECT id, password_hash FROM users WHERE username = ?"
	var (
		id   uint64
		hash string
	)
	if err := r.db.QueryRowContext(ctx, q, username).Scan(&id, &hash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, "", ErrUserNotFound
		}
		return 0, "", err
	}
	return id, hash, nil
}

// List returns all users ordered by id, role names included.  Password
// hashes are never selected here.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	const q = `SELECT u.id, u.username, u.full_name, u.email, u.role_id, ro.role_name
	           FROM users u LEFT JOIN roles ro ON ro.id = u.role_id
	           ORDER BY u.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, rows.Err()
}

// Update rewrites the mutable fields of a user.  When passwordHash is empty
// the stored hash is left untouched, implementing the "blank password means
// leave unchanged" contract.
func (r *UserRepo) Update(ctx context.Context, id uint64, req model.UserRequest, passwordHash string) error {
	var (
		res sql.Result
		err error
	)
	if passwordHash != "" {
		const q = `UPDATE users SET username = ?, full_name = ?, email = ?, password_hash = ?, role_id = ?
		           WHERE id = ?`
		res, err = r.db.ExecContext(ctx, q, req.Username, req.FullName, req.Email, passwordHash, req.RoleID, id)
	} else {
		const q = `UPDATE users SET username = ?, full_name = ?, email = ?, role_id = ?
		           WHERE id = ?`
		res, err = r.db.ExecContext(ctx, q, req.Username, req.FullName, req.Email, req.RoleID, id)
	}
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

// Delete removes a user by id.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	const q = "DELETE FROM users WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}
