package announcement

import (
	"github.com/quadrosga/dndapp/internal/common/clock"
	"github.com/quadrosga/dndapp/internal/common/uuid"
	"github.com/quadrosga/dndapp/internal/logging"
	"github.com/quadrosga/dndapp/internal/models"
	announcementRepo "github.com/quadrosga/dndapp/internal/repositories/announcement"
)

// Config holds the dependencies for the announcement service
type Config struct {
	// AnnouncementRepo is the announcement persistence layer
	AnnouncementRepo announcementRepo.Repository

	// Clock provides the current time
	Clock clock.Clock

	// UUID generates announcement IDs
	UUID uuid.UUID

	// Logger records swallowed storage failures
	Logger logging.Logger
}

type ListAnnouncementsInput struct {
}

type ListAnnouncementsOutput struct {
	// Announcements in display order, most recent posting first
	Announcements []*models.Announcement
}

type SaveAnnouncementsInput struct {
	Announcements []*models.Announcement
}

type SaveAnnouncementsOutput struct {
	// Success is false when the write failed
	Success bool
}

type AddAnnouncementInput struct {
	Title     string
	Content   string
	Author    string
	Important bool
}

type AddAnnouncementOutput struct {
	// Announcement is the created record, nil when persisting failed
	Announcement *models.Announcement
}

type DeleteAnnouncementInput struct {
	AnnouncementID string
}

type DeleteAnnouncementOutput struct {
	// Success reflects whether the rewrite persisted, not whether the ID
	// was actually present
	Success bool
}

type SeedDemoAnnouncementsInput struct {
}

type SeedDemoAnnouncementsOutput struct {
	// Seeded is true when the demo board was written on this call
	Seeded bool
}
