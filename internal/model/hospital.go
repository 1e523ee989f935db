package model

import "time"

// Hospital represents a medical facility managed through the admin console.
// It corresponds to a row in the `hospitals` table.
//
// Fields:
//  ID        – primary key identifier, assigned by the server.
//  Name      – unique facility name.
//  Address   – street address.
//  CreatedAt – server-assigned creation timestamp, read-only.
type Hospital struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// HospitalRequest is the write payload for creating or updating a hospital.
// Server-assigned fields (id, created_at) are intentionally absent.
type HospitalRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}
