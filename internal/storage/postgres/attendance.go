package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"agroexpo/internal/models"
	"agroexpo/internal/storage"

	"github.com/google/uuid"
)

// CheckIn records a single attendance for (event, principal, role context).
// A repeated scan is not an error: the existing row comes back with
// alreadyCheckedIn = true so scan stations can re-scan the same badge freely.
func (s *Storage) CheckIn(eventID, principalID string, roleContext models.RoleContext) (*models.Attendance, bool, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = scanEvent(tx.QueryRow(eventQuery+` WHERE id = $1`, eventID)); err != nil {
		return nil, false, err
	}

	eligible, err := isEligibleTx(tx, eventID, principalID, roleContext)
	if err != nil {
		return nil, false, err
	}
	if !eligible {
		return nil, false, storage.ErrNotEligible
	}

	attendance := &models.Attendance{
		ID:          uuid.New().String(),
		EventID:     eventID,
		PrincipalID: principalID,
		RoleContext: roleContext,
	}

	// Insert-if-absent: the unique key makes the conflict path authoritative
	// even when two stations scan the same badge at once.
	insertQuery := `
		INSERT INTO attendance (id, event_id, principal_id, role_context, checked_in_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (event_id, principal_id, role_context) DO NOTHING
		RETURNING checked_in_at`

	err = tx.QueryRow(insertQuery,
		attendance.ID,
		attendance.EventID,
		attendance.PrincipalID,
		attendance.RoleContext,
	).Scan(&attendance.CheckedInAt)

	if err == nil {
		if roleContext == models.ContextAttendee {
			markQuery := `UPDATE registrations SET attended = TRUE WHERE event_id = $1 AND user_id = $2`
			if _, err = tx.Exec(markQuery, eventID, principalID); err != nil {
				return nil, false, fmt.Errorf("failed to mark registration attended: %w", err)
			}
		}

		if err = tx.Commit(); err != nil {
			return nil, false, fmt.Errorf("failed to commit transaction: %w", err)
		}

		return attendance, false, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to create attendance: %w", err)
	}

	// No row returned means the attendance already exists; fetch it.
	existing, err := getAttendance(tx, eventID, principalID, roleContext)
	if err != nil {
		return nil, false, err
	}

	if err = tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return existing, true, nil
}

// IsEligible reports whether a principal may attend under the given role
// context: attendees need a registration, vendors an approved application.
func (s *Storage) IsEligible(eventID, principalID string, roleContext models.RoleContext) (bool, error) {
	return isEligibleTx(s.DB, eventID, principalID, roleContext)
}

type queryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

func isEligibleTx(db queryRower, eventID, principalID string, roleContext models.RoleContext) (bool, error) {
	var query string
	switch roleContext {
	case models.ContextAttendee:
		query = `
			SELECT EXISTS(
				SELECT 1 FROM registrations
				WHERE event_id = $1 AND user_id = $2
			)`
	case models.ContextVendor:
		query = `
			SELECT EXISTS(
				SELECT 1 FROM vendor_participations
				WHERE event_id = $1 AND vendor_id = $2 AND status = 'approved'
			)`
	default:
		return false, fmt.Errorf("unknown role context %q", roleContext)
	}

	var eligible bool
	if err := db.QueryRow(query, eventID, principalID).Scan(&eligible); err != nil {
		return false, fmt.Errorf("failed to check eligibility: %w", err)
	}

	return eligible, nil
}

func getAttendance(db queryRower, eventID, principalID string, roleContext models.RoleContext) (*models.Attendance, error) {
	query := `
		SELECT id, event_id, principal_id, role_context, checked_in_at
		FROM attendance
		WHERE event_id = $1 AND principal_id = $2 AND role_context = $3`

	var attendance models.Attendance
	err := db.QueryRow(query, eventID, principalID, roleContext).Scan(
		&attendance.ID,
		&attendance.EventID,
		&attendance.PrincipalID,
		&attendance.RoleContext,
		&attendance.CheckedInAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}

	return &attendance, nil
}
