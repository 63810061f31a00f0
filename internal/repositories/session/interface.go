package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/quadrosga/dndapp/internal/repositories/session Repository

import (
	"context"
)

// Repository defines the interface for session and confirmation persistence
type Repository interface {
	// SaveSessions replaces the full persisted session list
	SaveSessions(ctx context.Context, input *SaveSessionsInput) error

	// GetSessions retrieves the full persisted session list
	GetSessions(ctx context.Context, input *GetSessionsInput) (*GetSessionsOutput, error)

	// SaveConfirmation upserts one user's RSVP for a session
	SaveConfirmation(ctx context.Context, input *SaveConfirmationInput) error

	// GetConfirmations retrieves the RSVPs for the given sessions
	GetConfirmations(ctx context.Context, input *GetConfirmationsInput) (*GetConfirmationsOutput, error)
}
