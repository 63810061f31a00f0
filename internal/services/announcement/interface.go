package announcement

import "context"

// Service defines the interface for announcement board operations
type Service interface {
	// ListAnnouncements returns all announcements, most recent first
	ListAnnouncements(ctx context.Context, input *ListAnnouncementsInput) (*ListAnnouncementsOutput, error)

	// SaveAnnouncements replaces the full announcement list
	SaveAnnouncements(ctx context.Context, input *SaveAnnouncementsInput) (*SaveAnnouncementsOutput, error)

	// AddAnnouncement creates a new announcement at the top of the board
	AddAnnouncement(ctx context.Context, input *AddAnnouncementInput) (*AddAnnouncementOutput, error)

	// DeleteAnnouncement removes an announcement by ID
	DeleteAnnouncement(ctx context.Context, input *DeleteAnnouncementInput) (*DeleteAnnouncementOutput, error)

	// SeedDemoAnnouncements writes the demo board if none exists yet
	SeedDemoAnnouncements(ctx context.Context, input *SeedDemoAnnouncementsInput) (*SeedDemoAnnouncementsOutput, error)
}
