package models

import "time"

// EventStatus is the admin approval state of an event.
type EventStatus string

const (
	StatusDraft           EventStatus = "draft"
	StatusPendingApproval EventStatus = "pending_approval"
	StatusApproved        EventStatus = "approved"
	StatusRejected        EventStatus = "rejected"
)

// CanSubmit reports whether an event may be (re)submitted for approval.
// Draft and rejected events can be submitted; approved is terminal.
func (s EventStatus) CanSubmit() bool {
	return s == StatusDraft || s == StatusRejected
}

// CanDecide reports whether an admin decision is legal in this state.
func (s EventStatus) CanDecide() bool {
	return s == StatusPendingApproval
}

type Event struct {
	ID            string      `json:"id"`
	OrganizerID   string      `json:"organizer_id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Location      string      `json:"location"`
	StartAt       time.Time   `json:"start_at"`
	EndAt         time.Time   `json:"end_at"`
	Capacity      *int        `json:"capacity"` // nil = unlimited
	Status        EventStatus `json:"status"`
	AdminFeedback string      `json:"admin_feedback,omitempty"`
}

// Occupancy is a consistent snapshot of an event's registration load.
type Occupancy struct {
	Registered  int     `json:"registered"`
	Capacity    *int    `json:"capacity"`
	PercentFull float64 `json:"percent_full"`
}
