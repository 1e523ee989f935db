package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/model"
)

// DoctorRepo encapsulates all database queries related to staff
// assignments.  Reads join users and hospitals so responses carry the
// denormalized username, full_name and hospital_name fields.
type DoctorRepo struct {
	db *sql.DB
}

// NewDoctorRepo constructs a DoctorRepo with the provided DB handle.
func NewDoctorRepo(db *sql.DB) *DoctorRepo {
	return &DoctorRepo{db: db}
}

func scanDoctor(row interface{ Scan(...any) error }) (*model.Doctor, error) {
	var (
		d            model.Doctor
		shortBio     sql.NullString
		username     sql.NullString
		fullName     sql.NullString
		hospitalName sql.NullString
	)
	if err := row.Scan(&d.ID, &d.UserID, &d.HospitalID, &d.Specialty, &shortBio,
		&username, &fullName, &hospitalName); err != nil {
		return nil, err
	}
	if shortBio.Valid {
		v := shortBio.String
		d.ShortBio = &v
	}
	if username.Valid {
		v := username.String
		d.Username = &v
	}
	if fullName.Valid {
		v := fullName.String
		d.FullName = &v
	}
	if hospitalName.Valid {
		v := hospitalName.String
		d.HospitalName = &v
	}
	return &d, nil
}

const doctorSelect = `SELECT d.id, d.user_id, d.hospital_id, d.specialty, d.short_bio,
	       u.username, u.full_name, h.name
	FROM doctors d
	LEFT JOIN users u ON u.id = d.user_id
	LEFT JOIN hospitals h ON h.id = d.hospital_id`

// Create inserts a new doctor profile and reloads the joined record.
func (r *DoctorRepo) Create(ctx context.Context, req model.DoctorRequest) (*model.Doctor, error) {
	const q = "INSERT INTO doctors (user_id, hospital_id, specialty, short_bio) VALUES (?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, q, req.UserID, req.HospitalID, req.Specialty, req.ShortBio)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByID fetches a doctor with denormalized names.
func (r *DoctorRepo) GetByID(ctx context.Context, id uint64) (*model.Doctor, error) {
	d, err := scanDoctor(r.db.QueryRowContext(ctx, doctorSelect+" WHERE d.id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	return d, nil
}

// ExistsForUser reports whether the given user already has a doctor
// profile, optionally excluding one doctor id (used on update).
func (r *DoctorRepo) ExistsForUser(ctx context.Context, userID, excludeID uint64) (bool, error) {
	const q = "SELECT COUNT(*) FROM doctors WHERE user_id = ? AND id <> ?"
	var n int
	if err := r.db.QueryRowContext(ctx, q, userID, excludeID).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// List returns all doctors ordered by id with denormalized names.
func (r *DoctorRepo) List(ctx context.Context) ([]model.Doctor, error) {
	rows, err := r.db.QueryContext(ctx, doctorSelect+" ORDER BY d.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Doctor{}
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

// Update rewrites the mutable fields of a doctor profile.
func (r *DoctorRepo) Update(ctx context.Context, id uint64, req model.DoctorRequest) error {
	const q = "UPDATE doctors SET user_id = ?, hospital_id = ?, specialty = ?, short_bio = ? WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, req.UserID, req.HospitalID, req.Specialty, req.ShortBio, id)
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

// Delete removes a doctor profile by id.
func (r *DoctorRepo) Delete(ctx context.Context, id uint64) error {
	const q = "DELETE FROM doctors WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrDoctorNotFound
	}
	return nil
}
