package model

// Doctor represents a staff assignment linking a user to a hospital, as
// stored in the `doctors` table.  Both foreign keys are mandatory and a
// user can hold at most one doctor profile.
//
// Fields:
//  ID           – primary key identifier.
//  UserID       – required foreign key into users (unique per user).
//  HospitalID   – required foreign key into hospitals.
//  Specialty    – medical specialty label.
//  ShortBio     – optional free-text biography.
//  Username     – denormalized users.username, read-only.
//  FullName     – denormalized users.full_name, read-only.
//  HospitalName – denormalized hospitals.name, read-only.
type Doctor struct {
	ID           uint64  `json:"id"`
	UserID       uint64  `json:"user_id"`
	HospitalID   uint64  `json:"hospital_id"`
	Specialty    string  `json:"specialty"`
	ShortBio     *string `json:"short_bio"`
	Username     *string `json:"username,omitempty"`
	FullName     *string `json:"full_name,omitempty"`
	HospitalName *string `json:"hospital_name,omitempty"`
}

// DoctorRequest is the write payload for doctors.  Denormalized display
// fields are never part of a write.
type DoctorRequest struct {
	UserID     uint64  `json:"user_id"`
	HospitalID uint64  `json:"hospital_id"`
	Specialty  string  `json:"specialty"`
	ShortBio   *string `json:"short_bio"`
}
