package announcement

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/quadrosga/dndapp/internal/repositories/announcement Repository

import (
	"context"
)

// Repository defines the interface for announcement persistence
type Repository interface {
	// SaveAnnouncements replaces the full persisted announcement list
	SaveAnnouncements(ctx context.Context, input *SaveAnnouncementsInput) error

	// GetAnnouncements retrieves the full persisted announcement list
	GetAnnouncements(ctx context.Context, input *GetAnnouncementsInput) (*GetAnnouncementsOutput, error)
}
