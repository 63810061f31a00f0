package session

import "context"

// Service defines the interface for session store operations
type Service interface {
	// ListSessions returns all sessions joined with their attendance data
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)

	// SaveSessions replaces the full session list
	SaveSessions(ctx context.Context, input *SaveSessionsInput) (*SaveSessionsOutput, error)

	// AddSession creates a new session and appends it to the list
	AddSession(ctx context.Context, input *AddSessionInput) (*AddSessionOutput, error)

	// GetConfirmations returns the RSVPs recorded per session
	GetConfirmations(ctx context.Context, input *GetConfirmationsInput) (*GetConfirmationsOutput, error)

	// ConfirmSession records one user's RSVP for a session
	ConfirmSession(ctx context.Context, input *ConfirmSessionInput) (*ConfirmSessionOutput, error)

	// SeedDemoSessions writes the demo session list if none exists yet
	SeedDemoSessions(ctx context.Context, input *SeedDemoSessionsInput) (*SeedDemoSessionsOutput, error)
}
