package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/quadrosga/dndapp/internal/logging"
	userRepo "github.com/quadrosga/dndapp/internal/repositories/user"
)

// service implements the Service interface
type service struct {
	userRepo  userRepo.Repository
	directory Directory
	logger    logging.Logger
}

// New creates a new auth service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.UserRepo == nil {
		return nil, ErrNilUserRepo
	}

	if cfg.Directory == nil {
		return nil, ErrNilDirectory
	}

	if cfg.Logger == nil {
		return nil, ErrNilLogger
	}

	return &service{
		userRepo:  cfg.UserRepo,
		directory: cfg.Directory,
		logger:    cfg.Logger,
	}, nil
}

// Login validates the credentials against the directory and persists the
// matched user as the current identity
func (s *service) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	user := s.directory.Authenticate(input.Email, input.Password)
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	err := s.userRepo.SaveCurrentUser(ctx, &userRepo.SaveCurrentUserInput{
		User: user,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist login: %w", err)
	}

	return &LoginOutput{
		User: user,
	}, nil
}

// Logout clears the persisted identity. Logging out while already logged
// out is fine
func (s *service) Logout(ctx context.Context, input *LogoutInput) (*LogoutOutput, error) {
	err := s.userRepo.ClearCurrentUser(ctx, &userRepo.ClearCurrentUserInput{})
	if err != nil {
		s.logger.Error(ctx, "failed to clear current user", "error", err)
		return &LogoutOutput{Success: false}, nil
	}

	return &LogoutOutput{Success: true}, nil
}

// CurrentUser returns the persisted identity, or nil when nobody is logged
// in. Storage failures also read as nobody logged in
func (s *service) CurrentUser(ctx context.Context, input *CurrentUserInput) (*CurrentUserOutput, error) {
	user, err := s.userRepo.GetCurrentUser(ctx, &userRepo.GetCurrentUserInput{})
	if err != nil {
		if !errors.Is(err, userRepo.ErrNoCurrentUser) {
			s.logger.Error(ctx, "failed to load current user", "error", err)
		}
		return &CurrentUserOutput{}, nil
	}

	return &CurrentUserOutput{
		User: user,
	}, nil
}

// CurrentUserWithRole re-resolves the persisted identity's role through the
// directory. The persisted record may be stale, so the directory wins
func (s *service) CurrentUserWithRole(ctx context.Context, input *CurrentUserWithRoleInput) (*CurrentUserWithRoleOutput, error) {
	current, err := s.CurrentUser(ctx, &CurrentUserInput{})
	if err != nil {
		return nil, err
	}

	if current.User == nil {
		return &CurrentUserWithRoleOutput{}, nil
	}

	resolved := s.directory.FindByEmail(current.User.Email)
	if resolved == nil {
		return &CurrentUserWithRoleOutput{}, nil
	}

	user := *current.User
	user.Role = resolved.Role

	return &CurrentUserWithRoleOutput{
		User: &user,
	}, nil
}

// RememberUsername stores the login name for the next login form
func (s *service) RememberUsername(ctx context.Context, input *RememberUsernameInput) (*RememberUsernameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	err := s.userRepo.SaveUsername(ctx, &userRepo.SaveUsernameInput{
		Username: input.Username,
	})
	if err != nil {
		s.logger.Error(ctx, "failed to save username", "error", err)
		return &RememberUsernameOutput{Success: false}, nil
	}

	return &RememberUsernameOutput{Success: true}, nil
}

// SavedUsername returns the remembered login name, or empty when nothing
// was remembered
func (s *service) SavedUsername(ctx context.Context, input *SavedUsernameInput) (*SavedUsernameOutput, error) {
	username, err := s.userRepo.GetSavedUsername(ctx, &userRepo.GetSavedUsernameInput{})
	if err != nil {
		if !errors.Is(err, userRepo.ErrNoSavedUsername) {
			s.logger.Error(ctx, "failed to load saved username", "error", err)
		}
		return &SavedUsernameOutput{}, nil
	}

	return &SavedUsernameOutput{
		Username: username,
	}, nil
}

// ForgetUsername clears the remembered login name
func (s *service) ForgetUsername(ctx context.Context, input *ForgetUsernameInput) (*ForgetUsernameOutput, error) {
	err := s.userRepo.ClearSavedUsername(ctx, &userRepo.ClearSavedUsernameInput{})
	if err != nil {
		s.logger.Error(ctx, "failed to clear saved username", "error", err)
		return &ForgetUsernameOutput{Success: false}, nil
	}

	return &ForgetUsernameOutput{Success: true}, nil
}
