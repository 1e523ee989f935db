// Package repository contains data access logic separated from HTTP handlers.
// Each entity of the admin system (hospitals, roles, users, doctors) has its
// own repository over a shared *sql.DB.  List queries materialize the
// denormalized display names via LEFT JOINs so that responses never require
// a second round trip.
package repository

import (
	"errors"
	"strings"
)

// Sentinel errors returned by repositories.  Handlers translate these into
// HTTP status codes.
var (
	ErrHospitalNotFound = errors.New("hospital not found")
	ErrRoleNotFound     = errors.New("role not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrDoctorNotFound   = errors.New("doctor not found")
)

// IsDuplicate reports whether err is a MySQL duplicate-key violation
// (error 1062).  Uniqueness of hospital names, usernames and emails is
// enforced by the schema, so a plain string check is sufficient here.
func IsDuplicate(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}
