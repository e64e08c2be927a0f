package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"agroexpo/internal/models"
	"agroexpo/internal/storage"

	"github.com/google/uuid"
)

// RegisterUser signs a user up for an approved event.
//
// The event row is locked with SELECT ... FOR UPDATE so that concurrent
// registrations for the same event serialize: the count-vs-capacity check and
// the insert happen under one lock, and two racers for the last slot get
// exactly one success and one ErrCapacityExceeded. The unique index on
// (event_id, user_id) backs the duplicate check in case the same user races
// against themselves.
func (s *Storage) RegisterUser(eventID, userID string) (*models.Registration, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	event, err := scanEvent(tx.QueryRow(eventQuery+` WHERE id = $1 FOR UPDATE`, eventID))
	if err != nil {
		return nil, err
	}

	if event.Status != models.StatusApproved {
		return nil, storage.ErrIllegalState
	}

	if !event.StartAt.After(time.Now()) {
		return nil, storage.ErrEventStarted
	}

	var exists bool
	checkQuery := `
		SELECT EXISTS(
			SELECT 1 FROM registrations
			WHERE event_id = $1 AND user_id = $2
		)`

	if err = tx.QueryRow(checkQuery, eventID, userID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check existing registration: %w", err)
	}
	if exists {
		return nil, storage.ErrAlreadyRegistered
	}

	if event.Capacity != nil {
		var registered int
		if err = tx.QueryRow(`SELECT COUNT(*) FROM registrations WHERE event_id = $1`, eventID).Scan(&registered); err != nil {
			return nil, fmt.Errorf("failed to count registrations: %w", err)
		}
		if registered >= *event.Capacity {
			return nil, storage.ErrCapacityExceeded
		}
	}

	registration := &models.Registration{
		ID:      uuid.New().String(),
		EventID: eventID,
		UserID:  userID,
	}

	insertQuery := `
		INSERT INTO registrations (id, event_id, user_id, registered_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING registered_at`

	err = tx.QueryRow(insertQuery, registration.ID, registration.EventID, registration.UserID).Scan(&registration.RegisteredAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return registration, nil
}

// CancelRegistration removes a registration and frees one capacity slot.
// Only the registered user or an admin may cancel.
func (s *Storage) CancelRegistration(eventID, userID, actorID string, isAdmin bool) error {
	if actorID != userID && !isAdmin {
		return storage.ErrNotOwner
	}

	result, err := s.DB.Exec(`DELETE FROM registrations WHERE event_id = $1 AND user_id = $2`, eventID, userID)
	if err != nil {
		return fmt.Errorf("failed to cancel registration: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check cancellation result: %w", err)
	}
	if affected == 0 {
		return storage.ErrRegistrationNotFound
	}

	return nil
}

// GetEventOccupancy returns the registration load in a single statement so
// the count and the capacity come from one consistent snapshot.
func (s *Storage) GetEventOccupancy(eventID string) (*models.Occupancy, error) {
	query := `
		SELECT e.capacity, COUNT(r.id)
		FROM events e
		LEFT JOIN registrations r ON r.event_id = e.id
		WHERE e.id = $1
		GROUP BY e.id, e.capacity`

	var occ models.Occupancy
	err := s.DB.QueryRow(query, eventID).Scan(&occ.Capacity, &occ.Registered)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get occupancy: %w", err)
	}

	if occ.Capacity != nil && *occ.Capacity > 0 {
		occ.PercentFull = float64(occ.Registered) / float64(*occ.Capacity) * 100
	}

	return &occ, nil
}
