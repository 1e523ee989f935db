package model

// User represents an operator account as stored in the `users` table.
// The password is write-only: it is hashed with bcrypt before storage and
// never present on read.
//
// Fields:
//  ID       – primary key identifier.
//  Username – unique login name.
//  FullName – display name.
//  Email    – unique email address.
//  RoleID   – optional foreign key into roles (nil = no role assigned).
//  RoleName – denormalized role name, computed by the server on read.
type User struct {
	ID       uint64  `json:"id"`
	Username string  `json:"username"`
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	RoleID   *uint64 `json:"role_id"`
	RoleName *string `json:"role_name,omitempty"`
}

// UserRequest is the write payload for users.  Password is required on
// create; an empty password on update leaves the stored hash unchanged.
type UserRequest struct {
	Username string  `json:"username"`
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	RoleID   *uint64 `json:"role_id"`
}
