package models

import "time"

// Attendance is one check-in record. Immutable once created; at most one
// exists per (event, principal, role context).
type Attendance struct {
	ID          string      `json:"id"`
	EventID     string      `json:"event_id"`
	PrincipalID string      `json:"principal_id"`
	RoleContext RoleContext `json:"role_context"`
	CheckedInAt time.Time   `json:"checked_in_at"`
}
