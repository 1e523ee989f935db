package console

import "github.com/aysha-dheesan-banu/hospital-managelment-system/internal/model"

// view.go resolves foreign-key fields to display names.  The server
// supplies denormalized name fields on read; when one is absent a fixed
// placeholder is substituted at render time only and never written back
// into the store or a draft.

// Placeholders shown when a denormalized name is absent.
const (
	NoHospitalLabel = "No Hospital"
	NoRoleLabel     = "No Role"
	UnknownLabel    = "Unknown"
)

// RoleHospitalName returns the facility name a role is scoped to, or the
// "No Hospital" placeholder for a global role.
func RoleHospitalName(r model.Role) string {
	if r.HospitalName != nil && *r.HospitalName != "" {
		return *r.HospitalName
	}
	return NoHospitalLabel
}

// UserRoleName returns a user's role name, or the "No Role" placeholder
// when no role is assigned.
func UserRoleName(u model.User) string {
	if u.RoleName != nil && *u.RoleName != "" {
		return *u.RoleName
	}
	return NoRoleLabel
}

// DoctorUsername returns the denormalized username of a doctor's account.
// Both doctor references are mandatory, so a missing name only occurs on a
// malformed response; the placeholder keeps rendering total.
func DoctorUsername(d model.Doctor) string {
	if d.Username != nil && *d.Username != "" {
		return *d.Username
	}
	return UnknownLabel
}

// DoctorFullName returns the denormalized full name of a doctor's account.
func DoctorFullName(d model.Doctor) string {
	if d.FullName != nil && *d.FullName != "" {
		return *d.FullName
	}
	return UnknownLabel
}

// DoctorHospitalName returns the denormalized name of a doctor's hospital.
func DoctorHospitalName(d model.Doctor) string {
	if d.HospitalName != nil && *d.HospitalName != "" {
		return *d.HospitalName
	}
	return UnknownLabel
}

// DoctorBio returns the biography text, empty when unset.
func DoctorBio(d model.Doctor) string {
	if d.ShortBio != nil {
		return *d.ShortBio
	}
	return ""
}
