package auth

import (
	"github.com/quadrosga/dndapp/internal/logging"
	"github.com/quadrosga/dndapp/internal/models"
	userRepo "github.com/quadrosga/dndapp/internal/repositories/user"
)

// Config holds the dependencies for the auth service
type Config struct {
	// UserRepo persists the logged-in identity and remembered login name
	UserRepo userRepo.Repository

	// Directory is the credential backend
	Directory Directory

	// Logger records swallowed storage failures
	Logger logging.Logger
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	User *models.User
}

type LogoutInput struct {
}

type LogoutOutput struct {
	// Success is false when clearing the identity failed
	Success bool
}

type CurrentUserInput struct {
}

type CurrentUserOutput struct {
	// User is nil when nobody is logged in
	User *models.User
}

type CurrentUserWithRoleInput struct {
}

type CurrentUserWithRoleOutput struct {
	// User is nil when nobody is logged in or the persisted identity no
	// longer matches the directory
	User *models.User
}

type RememberUsernameInput struct {
	Username string
}

type RememberUsernameOutput struct {
	Success bool
}

type SavedUsernameInput struct {
}

type SavedUsernameOutput struct {
	// Username is empty when nothing was remembered
	Username string
}

type ForgetUsernameInput struct {
}

type ForgetUsernameOutput struct {
	Success bool
}
