package model

// Role represents an access role as stored in the `roles` table.  A role
// may be scoped to a single hospital via HospitalID; a nil HospitalID
// marks a global role visible across all facilities.
//
// Fields:
//  ID           – primary key identifier.
//  RoleName     – display name of the role.
//  Permissions  – flat comma-delimited permission list (e.g. "read,write").
//  HospitalID   – optional foreign key into hospitals (nil = global role).
//  HospitalName – denormalized hospital name, computed by the server on
//                 read via a join.  Never accepted on write.
type Role struct {
	ID           uint64  `json:"id"`
	RoleName     string  `json:"role_name"`
	Permissions  string  `json:"permissions"`
	HospitalID   *uint64 `json:"hospital_id"`
	HospitalName *string `json:"hospital_name,omitempty"`
}

// RoleRequest is the write payload for roles.  HospitalID is serialized as
// an explicit null when unset, not omitted.
type RoleRequest struct {
	RoleName    string  `json:"role_name"`
	Permissions string  `json:"permissions"`
	HospitalID  *uint64 `json:"hospital_id"`
}
