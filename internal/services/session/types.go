package session

import (
	"github.com/quadrosga/dndapp/internal/common/clock"
	"github.com/quadrosga/dndapp/internal/common/uuid"
	"github.com/quadrosga/dndapp/internal/logging"
	"github.com/quadrosga/dndapp/internal/models"
	sessionRepo "github.com/quadrosga/dndapp/internal/repositories/session"
)

// Config holds the dependencies for the session service
type Config struct {
	// SessionRepo is the session persistence layer
	SessionRepo sessionRepo.Repository

	// Clock provides the current time
	Clock clock.Clock

	// UUID generates session IDs
	UUID uuid.UUID

	// Logger records swallowed storage failures
	Logger logging.Logger
}

type ListSessionsInput struct {
}

type ListSessionsOutput struct {
	// Sessions carries the persisted sessions with derived attendance data,
	// in stored order
	Sessions []*models.SessionSummary
}

type SaveSessionsInput struct {
	Sessions []*models.Session
}

type SaveSessionsOutput struct {
	// Success is false when the write failed
	Success bool
}

type AddSessionInput struct {
	Title         string
	Date          string
	Time          string
	Location      string
	DungeonMaster string
	TotalPlayers  int
}

type AddSessionOutput struct {
	// Session is the created record, nil when persisting failed
	Session *models.Session
}

type GetConfirmationsInput struct {
	// SessionIDs limits the lookup; when empty, all persisted sessions
	// are included
	SessionIDs []string
}

type GetConfirmationsOutput struct {
	// Confirmations maps a session ID to the RSVPs recorded for it
	Confirmations map[string][]*models.Confirmation
}

type ConfirmSessionInput struct {
	SessionID string
	UserName  string
	Status    models.ConfirmationStatus
}

type ConfirmSessionOutput struct {
	// Success is false when the RSVP could not be recorded
	Success bool
}

type SeedDemoSessionsInput struct {
}

type SeedDemoSessionsOutput struct {
	// Seeded is true when the demo list was written on this call
	Seeded bool
}
