package auth

import "context"

// Service defines the interface for login and identity operations
type Service interface {
	// Login validates credentials and persists the matched user
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout clears the persisted identity
	Logout(ctx context.Context, input *LogoutInput) (*LogoutOutput, error)

	// CurrentUser returns the persisted identity, if any
	CurrentUser(ctx context.Context, input *CurrentUserInput) (*CurrentUserOutput, error)

	// CurrentUserWithRole returns the persisted identity with its role
	// re-resolved through the directory
	CurrentUserWithRole(ctx context.Context, input *CurrentUserWithRoleInput) (*CurrentUserWithRoleOutput, error)

	// RememberUsername stores the login name for the next login form
	RememberUsername(ctx context.Context, input *RememberUsernameInput) (*RememberUsernameOutput, error)

	// SavedUsername returns the remembered login name, if any
	SavedUsername(ctx context.Context, input *SavedUsernameInput) (*SavedUsernameOutput, error)

	// ForgetUsername clears the remembered login name
	ForgetUsername(ctx context.Context, input *ForgetUsernameInput) (*ForgetUsernameOutput, error)
}
