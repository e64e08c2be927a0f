package models

import "time"

// ParticipationStatus is the organizer approval state of a vendor application.
type ParticipationStatus string

const (
	ParticipationPending  ParticipationStatus = "pending"
	ParticipationApproved ParticipationStatus = "approved"
	ParticipationRejected ParticipationStatus = "rejected"
)

// CanDecide reports whether an organizer decision is legal in this state.
func (s ParticipationStatus) CanDecide() bool {
	return s == ParticipationPending
}

type VendorParticipation struct {
	ID          string              `json:"id"`
	EventID     string              `json:"event_id"`
	VendorID    string              `json:"vendor_id"`
	Status      ParticipationStatus `json:"status"`
	RequestedAt time.Time           `json:"requested_at"`
}
