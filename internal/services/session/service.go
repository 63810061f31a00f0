package session

import (
	"context"

	"github.com/quadrosga/dndapp/internal/common/clock"
	"github.com/quadrosga/dndapp/internal/common/uuid"
	"github.com/quadrosga/dndapp/internal/logging"
	"github.com/quadrosga/dndapp/internal/models"
	sessionRepo "github.com/quadrosga/dndapp/internal/repositories/session"
)

// service implements the Service interface
type service struct {
	sessionRepo sessionRepo.Repository
	clock       clock.Clock
	uuid        uuid.UUID
	logger      logging.Logger
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.Logger == nil {
		return nil, ErrNilLogger
	}

	return &service{
		sessionRepo: cfg.SessionRepo,
		clock:       cfg.Clock,
		uuid:        cfg.UUID,
		logger:      cfg.Logger,
	}, nil
}

// ListSessions returns all persisted sessions joined with their attendance
// data. Storage failures degrade to an empty list so the caller always has
// something to render
func (s *service) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	sessions, err := s.sessionRepo.GetSessions(ctx, &sessionRepo.GetSessionsInput{})
	if err != nil {
		s.logger.Error(ctx, "failed to load sessions", "error", err)
		return &ListSessionsOutput{
			Sessions: []*models.SessionSummary{},
		}, nil
	}

	sessionIDs := make([]string, 0, len(sessions.Sessions))
	for _, sess := range sessions.Sessions {
		sessionIDs = append(sessionIDs, sess.ID)
	}

	confirmations := map[string][]*models.Confirmation{}
	result, err := s.sessionRepo.GetConfirmations(ctx, &sessionRepo.GetConfirmationsInput{
		SessionIDs: sessionIDs,
	})
	if err != nil {
		// Sessions still render, just without attendance counts
		s.logger.Error(ctx, "failed to load confirmations", "error", err)
	} else {
		confirmations = result.Confirmations
	}

	summaries := make([]*models.SessionSummary, 0, len(sessions.Sessions))
	for _, sess := range sessions.Sessions {
		summaries = append(summaries, summarize(sess, confirmations[sess.ID]))
	}

	return &ListSessionsOutput{
		Sessions: summaries,
	}, nil
}

// SaveSessions replaces the full persisted list. Failures are logged and
// reported through the success flag only
func (s *service) SaveSessions(ctx context.Context, input *SaveSessionsInput) (*SaveSessionsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	err := s.sessionRepo.SaveSessions(ctx, &sessionRepo.SaveSessionsInput{
		Sessions: input.Sessions,
	})
	if err != nil {
		s.logger.Error(ctx, "failed to save sessions", "error", err)
		return &SaveSessionsOutput{Success: false}, nil
	}

	return &SaveSessionsOutput{Success: true}, nil
}

// AddSession creates a new session and appends it to the persisted list.
// The created record is returned, or nil when persisting failed
func (s *service) AddSession(ctx context.Context, input *AddSessionInput) (*AddSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	sessions, err := s.sessionRepo.GetSessions(ctx, &sessionRepo.GetSessionsInput{})
	if err != nil {
		s.logger.Error(ctx, "failed to load sessions before add", "error", err)
		return &AddSessionOutput{}, nil
	}

	newSession := &models.Session{
		ID:            s.uuid.NewUUID(),
		Title:         input.Title,
		Date:          input.Date,
		Time:          input.Time,
		Location:      input.Location,
		DungeonMaster: input.DungeonMaster,
		TotalPlayers:  input.TotalPlayers,
		CreatedAt:     s.clock.Now(),
	}

	err = s.sessionRepo.SaveSessions(ctx, &sessionRepo.SaveSessionsInput{
		Sessions: append(sessions.Sessions, newSession),
	})
	if err != nil {
		s.logger.Error(ctx, "failed to save new session", "error", err)
		return &AddSessionOutput{}, nil
	}

	return &AddSessionOutput{
		Session: newSession,
	}, nil
}

// GetConfirmations returns the RSVPs recorded per session. With no session
// IDs given, every persisted session is included
func (s *service) GetConfirmations(ctx context.Context, input *GetConfirmationsInput) (*GetConfirmationsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	sessionIDs := input.SessionIDs
	if len(sessionIDs) == 0 {
		sessions, err := s.sessionRepo.GetSessions(ctx, &sessionRepo.GetSessionsInput{})
		if err != nil {
			s.logger.Error(ctx, "failed to load sessions for confirmations", "error", err)
			return &GetConfirmationsOutput{
				Confirmations: map[string][]*models.Confirmation{},
			}, nil
		}
		for _, sess := range sessions.Sessions {
			sessionIDs = append(sessionIDs, sess.ID)
		}
	}

	result, err := s.sessionRepo.GetConfirmations(ctx, &sessionRepo.GetConfirmationsInput{
		SessionIDs: sessionIDs,
	})
	if err != nil {
		s.logger.Error(ctx, "failed to load confirmations", "error", err)
		return &GetConfirmationsOutput{
			Confirmations: map[string][]*models.Confirmation{},
		}, nil
	}

	return &GetConfirmationsOutput{
		Confirmations: result.Confirmations,
	}, nil
}

// ConfirmSession records one user's RSVP for a session. A repeat answer by
// the same user replaces their previous one; other users' answers for the
// same session are untouched
func (s *service) ConfirmSession(ctx context.Context, input *ConfirmSessionInput) (*ConfirmSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	err := s.sessionRepo.SaveConfirmation(ctx, &sessionRepo.SaveConfirmationInput{
		Confirmation: &models.Confirmation{
			SessionID:   input.SessionID,
			UserName:    input.UserName,
			Status:      input.Status,
			ConfirmedAt: s.clock.Now(),
		},
	})
	if err != nil {
		s.logger.Error(ctx, "failed to save confirmation",
			"session_id", input.SessionID,
			"error", err)
		return &ConfirmSessionOutput{Success: false}, nil
	}

	return &ConfirmSessionOutput{Success: true}, nil
}

// SeedDemoSessions writes a fixed demo list if and only if no sessions are
// persisted yet. Calling it twice never duplicates data. When the stored
// list cannot be read the seed is skipped, so a transient failure never
// clobbers existing data
func (s *service) SeedDemoSessions(ctx context.Context, input *SeedDemoSessionsInput) (*SeedDemoSessionsOutput, error) {
	sessions, err := s.sessionRepo.GetSessions(ctx, &sessionRepo.GetSessionsInput{})
	if err != nil {
		s.logger.Error(ctx, "failed to check existing sessions before seed", "error", err)
		return &SeedDemoSessionsOutput{Seeded: false}, nil
	}

	if len(sessions.Sessions) > 0 {
		return &SeedDemoSessionsOutput{Seeded: false}, nil
	}

	now := s.clock.Now()
	demoSessions := []*models.Session{
		{
			ID:            s.uuid.NewUUID(),
			Title:         "Sessão da Campanha Principal",
			Date:          "2024-06-15",
			Time:          "19:00",
			Location:      "Discord - Sala Dragões",
			DungeonMaster: "Ana",
			TotalPlayers:  5,
			CreatedAt:     now,
		},
		{
			ID:            s.uuid.NewUUID(),
			Title:         "One-shot: A Masmorra Esquecida",
			Date:          "2024-06-22",
			Time:          "14:00",
			Location:      "Roll20",
			DungeonMaster: "Carla",
			TotalPlayers:  4,
			CreatedAt:     now,
		},
		{
			ID:            s.uuid.NewUUID(),
			Title:         "Sessão de Continuação",
			Date:          "2024-06-29",
			Time:          "20:00",
			Location:      "Discord - Sala Principal",
			DungeonMaster: "Beatriz",
			TotalPlayers:  6,
			CreatedAt:     now,
		},
	}

	err = s.sessionRepo.SaveSessions(ctx, &sessionRepo.SaveSessionsInput{
		Sessions: demoSessions,
	})
	if err != nil {
		s.logger.Error(ctx, "failed to seed demo sessions", "error", err)
		return &SeedDemoSessionsOutput{Seeded: false}, nil
	}

	return &SeedDemoSessionsOutput{Seeded: true}, nil
}

// summarize derives the display attendance data for one session. A session
// counts as confirmed when at least one player confirmed, which is an
// approximation rather than a capacity check
func summarize(sess *models.Session, confirmations []*models.Confirmation) *models.SessionSummary {
	confirmed := 0
	for _, confirmation := range confirmations {
		if confirmation.Status == models.ConfirmationStatusConfirmed {
			confirmed++
		}
	}

	status := models.SessionStatusPending
	if confirmed > 0 {
		status = models.SessionStatusConfirmed
	}

	return &models.SessionSummary{
		Session:          sess,
		ConfirmedPlayers: confirmed,
		Status:           status,
	}
}
