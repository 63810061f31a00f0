package announcement

import (
	"context"
	"sort"

	"github.com/quadrosga/dndapp/internal/common/clock"
	"github.com/quadrosga/dndapp/internal/common/uuid"
	"github.com/quadrosga/dndapp/internal/logging"
	"github.com/quadrosga/dndapp/internal/models"
	announcementRepo "github.com/quadrosga/dndapp/internal/repositories/announcement"
)

// service implements the Service interface
type service struct {
	announcementRepo announcementRepo.Repository
	clock            clock.Clock
	uuid             uuid.UUID
	logger           logging.Logger
}

// New creates a new announcement service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.AnnouncementRepo == nil {
		return nil, ErrNilAnnouncementRepo
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
		announcementRepo: cfg.AnnouncementRepo,
		clock:            cfg.Clock,
		uuid:             cfg.UUID,
		logger:           cfg.Logger,
	}, nil
}

// ListAnnouncements returns the board sorted most recent posting first.
// Storage failures degrade to an empty board
func (s *service) ListAnnouncements(ctx context.Context, input *ListAnnouncementsInput) (*ListAnnouncementsOutput, error) {
	announcements, err := s.announcementRepo.GetAnnouncements(ctx, &announcementRepo.GetAnnouncementsInput{})
	if err != nil {
		s.logger.Error(ctx, "failed to load announcements", "error", err)
		return &ListAnnouncementsOutput{
			Announcements: []*models.Announcement{},
		}, nil
	}

	sorted := make([]*models.Announcement, len(announcements.Announcements))
	copy(sorted, announcements.Announcements)

	// Date is YYYY-MM-DD and Time is HH:MM, so the concatenation sorts
	// chronologically as a plain string
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date+sorted[i].Time > sorted[j].Date+sorted[j].Time
	})

	return &ListAnnouncementsOutput{
		Announcements: sorted,
	}, nil
}

// SaveAnnouncements replaces the full persisted board. Failures are logged
// and reported through the success flag only
func (s *service) SaveAnnouncements(ctx context.Context, input *SaveAnnouncementsInput) (*SaveAnnouncementsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	err := s.announcementRepo.SaveAnnouncements(ctx, &announcementRepo.SaveAnnouncementsInput{
		Announcements: input.Announcements,
	})
	if err != nil {
		s.logger.Error(ctx, "failed to save announcements", "error", err)
		return &SaveAnnouncementsOutput{Success: false}, nil
	}

	return &SaveAnnouncementsOutput{Success: true}, nil
}

// AddAnnouncement creates a new announcement stamped with the posting time
// and prepends it, so the newest record leads without any sort on read.
// The created record is returned, or nil when persisting failed
func (s *service) AddAnnouncement(ctx context.Context, input *AddAnnouncementInput) (*AddAnnouncementOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	announcements, err := s.announcementRepo.GetAnnouncements(ctx, &announcementRepo.GetAnnouncementsInput{})
	if err != nil {
		s.logger.Error(ctx, "failed to load announcements before add", "error", err)
		return &AddAnnouncementOutput{}, nil
	}

	now := s.clock.Now()
	newAnnouncement := &models.Announcement{
		ID:        s.uuid.NewUUID(),
		Title:     input.Title,
		Content:   input.Content,
		Author:    input.Author,
		Date:      now.Format("2006-01-02"),
		Time:      now.Format("15:04"),
		Important: input.Important,
		CreatedAt: now,
	}

	updated := append([]*models.Announcement{newAnnouncement}, announcements.Announcements...)

	err = s.announcementRepo.SaveAnnouncements(ctx, &announcementRepo.SaveAnnouncementsInput{
		Announcements: updated,
	})
	if err != nil {
		s.logger.Error(ctx, "failed to save new announcement", "error", err)
		return &AddAnnouncementOutput{}, nil
	}

	return &AddAnnouncementOutput{
		Announcement: newAnnouncement,
	}, nil
}

// DeleteAnnouncement rewrites the board without the given ID. Deleting an
// absent ID leaves the board unchanged and still reports success, because
// success tracks the persist, not the lookup
func (s *service) DeleteAnnouncement(ctx context.Context, input *DeleteAnnouncementInput) (*DeleteAnnouncementOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	announcements, err := s.announcementRepo.GetAnnouncements(ctx, &announcementRepo.GetAnnouncementsInput{})
	if err != nil {
		s.logger.Error(ctx, "failed to load announcements before delete", "error", err)
		return &DeleteAnnouncementOutput{Success: false}, nil
	}

	filtered := make([]*models.Announcement, 0, len(announcements.Announcements))
	for _, ann := range announcements.Announcements {
		if ann.ID != input.AnnouncementID {
			filtered = append(filtered, ann)
		}
	}

	err = s.announcementRepo.SaveAnnouncements(ctx, &announcementRepo.SaveAnnouncementsInput{
		Announcements: filtered,
	})
	if err != nil {
		s.logger.Error(ctx, "failed to save announcements after delete",
			"announcement_id", input.AnnouncementID,
			"error", err)
		return &DeleteAnnouncementOutput{Success: false}, nil
	}

	return &DeleteAnnouncementOutput{Success: true}, nil
}

// SeedDemoAnnouncements writes a fixed demo board if and only if no
// announcements are persisted yet. Calling it twice never duplicates data
func (s *service) SeedDemoAnnouncements(ctx context.Context, input *SeedDemoAnnouncementsInput) (*SeedDemoAnnouncementsOutput, error) {
	announcements, err := s.announcementRepo.GetAnnouncements(ctx, &announcementRepo.GetAnnouncementsInput{})
	if err != nil {
		s.logger.Error(ctx, "failed to check existing announcements before seed", "error", err)
		return &SeedDemoAnnouncementsOutput{Seeded: false}, nil
	}

	if len(announcements.Announcements) > 0 {
		return &SeedDemoAnnouncementsOutput{Seeded: false}, nil
	}

	now := s.clock.Now()
	demoAnnouncements := []*models.Announcement{
		{
			ID:        s.uuid.NewUUID(),
			Title:     "Nova Campanha Iniciando!",
			Content:   "Estamos começando uma nova campanha na próxima semana. Todas as jogadoras estão convidadas!",
			Author:    "Ana (DM)",
			Date:      "2024-06-10",
			Time:      "14:30",
			Important: true,
			CreatedAt: now,
		},
		{
			ID:        s.uuid.NewUUID(),
			Title:     "Mudança de Horário",
			Content:   "A sessão de sábado será das 15h às 18h em vez das 14h às 17h.",
			Author:    "Carla",
			Date:      "2024-06-08",
			Time:      "09:15",
			Important: false,
			CreatedAt: now,
		},
		{
			ID:        s.uuid.NewUUID(),
			Title:     "Material para Próxima Sessão",
			Content:   "Por favor, leiam o capítulo 3 do livro de regras antes da próxima sessão.",
			Author:    "Beatriz (DM)",
			Date:      "2024-06-05",
			Time:      "19:45",
			Important: true,
			CreatedAt: now,
		},
	}

	err = s.announcementRepo.SaveAnnouncements(ctx, &announcementRepo.SaveAnnouncementsInput{
		Announcements: demoAnnouncements,
	})
	if err != nil {
		s.logger.Error(ctx, "failed to seed demo announcements", "error", err)
		return &SeedDemoAnnouncementsOutput{Seeded: false}, nil
	}

	return &SeedDemoAnnouncementsOutput{Seeded: true}, nil
}
