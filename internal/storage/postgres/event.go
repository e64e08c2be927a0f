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

func (s *Storage) CreateEvent(organizerID, title, description, location string, startAt, endAt time.Time, capacity *int) (*models.Event, error) {
	event := &models.Event{
		ID:          uuid.New().String(),
		OrganizerID: organizerID,
		Title:       title,
		Description: description,
		Location:    location,
		StartAt:     startAt,
		EndAt:       endAt,
		Capacity:    capacity,
		Status:      models.StatusDraft,
	}

	query := `
		INSERT INTO events (id, organizer_id, title, description, location, start_at, end_at, capacity, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := s.DB.Exec(query,
		event.ID,
		event.OrganizerID,
		event.Title,
		event.Description,
		event.Location,
		event.StartAt,
		event.EndAt,
		event.Capacity,
		event.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

// SubmitEvent moves a draft or rejected event to pending_approval. Only the
// organizer who owns the event may submit it.
func (s *Storage) SubmitEvent(eventID, actorID string) (*models.Event, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	event, err := scanEvent(tx.QueryRow(eventQuery+` WHERE id = $1 FOR UPDATE`, eventID))
	if err != nil {
		return nil, err
	}

	if event.OrganizerID != actorID {
		return nil, storage.ErrNotOrganizer
	}

	if !event.Status.CanSubmit() {
		return nil, storage.ErrIllegalState
	}

	updateQuery := `
		UPDATE events
		SET status = $2, admin_feedback = NULL
		WHERE id = $1`

	if _, err = tx.Exec(updateQuery, eventID, models.StatusPendingApproval); err != nil {
		return nil, fmt.Errorf("failed to submit event: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	event.Status = models.StatusPendingApproval
	event.AdminFeedback = ""

	return event, nil
}

// DecideEvent records the admin verdict on a pending event. The role check
// (actor must be admin) happens at the handler; feedback is required for a
// rejection and is validated there as well.
func (s *Storage) DecideEvent(eventID string, approve bool, feedback string) (*models.Event, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	event, err := scanEvent(tx.QueryRow(eventQuery+` WHERE id = $1 FOR UPDATE`, eventID))
	if err != nil {
		return nil, err
	}

	if !event.Status.CanDecide() {
		return nil, storage.ErrIllegalState
	}

	status := models.StatusApproved
	if approve {
		// An approved event never carries feedback.
		feedback = ""
	} else {
		status = models.StatusRejected
	}

	updateQuery := `
		UPDATE events
		SET status = $2, admin_feedback = $3
		WHERE id = $1`

	if _, err = tx.Exec(updateQuery, eventID, status, nullableString(feedback)); err != nil {
		return nil, fmt.Errorf("failed to decide event: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	event.Status = status
	event.AdminFeedback = feedback

	return event, nil
}

func (s *Storage) GetEvent(eventID string) (*models.Event, error) {
	return scanEvent(s.DB.QueryRow(eventQuery+` WHERE id = $1`, eventID))
}

func (s *Storage) GetAllEvents() ([]models.Event, error) {
	rows, err := s.DB.Query(eventQuery + ` ORDER BY start_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

const eventQuery = `
	SELECT id, organizer_id, title, description, location, start_at, end_at, capacity, status, admin_feedback
	FROM events`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*models.Event, error) {
	var event models.Event
	var feedback sql.NullString

	err := row.Scan(
		&event.ID,
		&event.OrganizerID,
		&event.Title,
		&event.Description,
		&event.Location,
		&event.StartAt,
		&event.EndAt,
		&event.Capacity,
		&event.Status,
		&feedback,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to scan event: %w", err)
	}

	event.AdminFeedback = feedback.String

	return &event, nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
