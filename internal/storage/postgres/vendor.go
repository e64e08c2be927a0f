package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"agroexpo/internal/models"
	"agroexpo/internal/storage"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ApplyVendor files a vendor application against an approved event. A
// rejected application never gets reused: a fresh apply inserts a new row and
// the partial unique index blocks a second active one.
func (s *Storage) ApplyVendor(eventID, vendorID string) (*models.VendorParticipation, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	event, err := scanEvent(tx.QueryRow(eventQuery+` WHERE id = $1`, eventID))
	if err != nil {
		return nil, err
	}

	if event.Status != models.StatusApproved {
		return nil, storage.ErrIllegalState
	}

	participation := &models.VendorParticipation{
		ID:       uuid.New().String(),
		EventID:  eventID,
		VendorID: vendorID,
		Status:   models.ParticipationPending,
	}

	insertQuery := `
		INSERT INTO vendor_participations (id, event_id, vendor_id, status, requested_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING requested_at`

	err = tx.QueryRow(insertQuery,
		participation.ID,
		participation.EventID,
		participation.VendorID,
		participation.Status,
	).Scan(&participation.RequestedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrAlreadyApplied
		}
		return nil, fmt.Errorf("failed to create vendor application: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return participation, nil
}

// DecideVendor records the organizer verdict on a pending application. Admins
// may decide on behalf of any organizer.
func (s *Storage) DecideVendor(participationID, actorID string, isAdmin, approve bool) (*models.VendorParticipation, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		SELECT p.id, p.event_id, p.vendor_id, p.status, p.requested_at, e.organizer_id
		FROM vendor_participations p
		JOIN events e ON e.id = p.event_id
		WHERE p.id = $1
		FOR UPDATE OF p`

	var participation models.VendorParticipation
	var organizerID string

	err = tx.QueryRow(query, participationID).Scan(
		&participation.ID,
		&participation.EventID,
		&participation.VendorID,
		&participation.Status,
		&participation.RequestedAt,
		&organizerID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrParticipationNotFound
		}
		return nil, fmt.Errorf("failed to get vendor application: %w", err)
	}

	if organizerID != actorID && !isAdmin {
		return nil, storage.ErrNotOrganizer
	}

	if !participation.Status.CanDecide() {
		return nil, storage.ErrIllegalState
	}

	status := models.ParticipationApproved
	if !approve {
		status = models.ParticipationRejected
	}

	if _, err = tx.Exec(`UPDATE vendor_participations SET status = $2 WHERE id = $1`, participationID, status); err != nil {
		return nil, fmt.Errorf("failed to decide vendor application: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	participation.Status = status

	return &participation, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
