// Package queue defines message payloads exchanged over the message broker
// and the background consumer that persists them to the audit log.
package queue

// AdminAuditEvent is published after every successful create, update or
// delete performed through the admin API.  It carries enough information
// for downstream consumers to build an audit trail without querying the
// primary database.
type AdminAuditEvent struct {
	EventID    string `json:"event_id"`
	Entity     string `json:"entity"`   // hospital | role | user | doctor
	Action     string `json:"action"`   // create | update | delete
	EntityID   uint64 `json:"entity_id"`
	OccurredAt string `json:"occurred_at"` // RFC3339 UTC
}
