package postgres

import (
	"database/sql"
	"fmt"

	"agroexpo/internal/config"

	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = migrate(db); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// migrate creates the schema. The uniqueness rules live here as hard
// constraints: application-level existence checks alone do not survive
// concurrent writers.
func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS events (
			id UUID PRIMARY KEY,
			organizer_id TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			start_at TIMESTAMPTZ NOT NULL,
			end_at TIMESTAMPTZ NOT NULL,
			capacity INTEGER CHECK (capacity > 0),
			status TEXT NOT NULL DEFAULT 'draft'
				CHECK (status IN ('draft', 'pending_approval', 'approved', 'rejected')),
			admin_feedback TEXT,
			CHECK (end_at >= start_at)
		)`,
		`CREATE TABLE IF NOT EXISTS vendor_participations (
			id UUID PRIMARY KEY,
			event_id UUID NOT NULL REFERENCES events(id),
			vendor_id TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending'
				CHECK (status IN ('pending', 'approved', 'rejected')),
			requested_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		// A rejected application stays in the audit trail; a fresh apply
		// creates a new row, so the uniqueness guard skips rejected ones.
		`CREATE UNIQUE INDEX IF NOT EXISTS vendor_participations_active_uq
			ON vendor_participations (event_id, vendor_id)
			WHERE status <> 'rejected'`,
		`CREATE TABLE IF NOT EXISTS registrations (
			id UUID PRIMARY KEY,
			event_id UUID NOT NULL REFERENCES events(id),
			user_id TEXT NOT NULL,
			registered_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			attended BOOLEAN NOT NULL DEFAULT FALSE,
			UNIQUE (event_id, user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id UUID PRIMARY KEY,
			event_id UUID NOT NULL REFERENCES events(id),
			principal_id TEXT NOT NULL,
			role_context TEXT NOT NULL CHECK (role_context IN ('attendee', 'vendor')),
			checked_in_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (event_id, principal_id, role_context)
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
