package user

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/quadrosga/dndapp/internal/repositories/user Repository

import (
	"context"

	"github.com/quadrosga/dndapp/internal/models"
)

// Repository defines the interface for persisting the logged-in identity
// and the remembered login name
type Repository interface {
	// SaveCurrentUser persists the logged-in user
	SaveCurrentUser(ctx context.Context, input *SaveCurrentUserInput) error

	// GetCurrentUser retrieves the logged-in user
	GetCurrentUser(ctx context.Context, input *GetCurrentUserInput) (*models.User, error)

	// ClearCurrentUser removes the logged-in user
	ClearCurrentUser(ctx context.Context, input *ClearCurrentUserInput) error

	// SaveUsername persists the remembered login name
	SaveUsername(ctx context.Context, input *SaveUsernameInput) error

	// GetSavedUsername retrieves the remembered login name
	GetSavedUsername(ctx context.Context, input *GetSavedUsernameInput) (string, error)

	// ClearSavedUsername removes the remembered login name
	ClearSavedUsername(ctx context.Context, input *ClearSavedUsernameInput) error
}
