package cli

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/quadrosga/dndapp/internal/models"
	announcementService "github.com/quadrosga/dndapp/internal/services/announcement"
	authService "github.com/quadrosga/dndapp/internal/services/auth"
	sessionService "github.com/quadrosga/dndapp/internal/services/session"
)

// Config holds the dependencies for the terminal app
type Config struct {
	// AuthService handles login and identity
	AuthService authService.Service

	// SessionService handles sessions and confirmations
	SessionService sessionService.Service

	// AnnouncementService handles the notice board
	AnnouncementService announcementService.Service

	// In is the input stream, stdin in production
	In io.Reader

	// Out is the output stream, stdout in production
	Out io.Writer
}

// App is the interactive terminal frontend. It renders data obtained from
// the services and forwards user actions back into them; all rules live in
// the service layer
type App struct {
	auth          authService.Service
	sessions      sessionService.Service
	announcements announcementService.Service
	reader        *bufio.Reader
	out           io.Writer

	// user is the identity for the current run, set by the login screen
	user *models.User
}

// New creates a new terminal app
func New(cfg *Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.AuthService == nil {
		return nil, errors.New("auth service cannot be nil")
	}

	if cfg.SessionService == nil {
		return nil, errors.New("session service cannot be nil")
	}

	if cfg.AnnouncementService == nil {
		return nil, errors.New("announcement service cannot be nil")
	}

	if cfg.In == nil || cfg.Out == nil {
		return nil, errors.New("input and output streams cannot be nil")
	}

	return &App{
		auth:          cfg.AuthService,
		sessions:      cfg.SessionService,
		announcements: cfg.AnnouncementService,
		reader:        bufio.NewReader(cfg.In),
		out:           cfg.Out,
	}, nil
}

// Run seeds the demo data, resolves or asks for an identity, and enters
// the main menu. It returns when the user quits or input ends
func (a *App) Run(ctx context.Context) error {
	// First launch gets the demo data, later launches keep what is there
	if _, err := a.sessions.SeedDemoSessions(ctx, &sessionService.SeedDemoSessionsInput{}); err != nil {
		return err
	}
	if _, err := a.announcements.SeedDemoAnnouncements(ctx, &announcementService.SeedDemoAnnouncementsInput{}); err != nil {
		return err
	}

	// A previous login survives restarts
	current, err := a.auth.CurrentUserWithRole(ctx, &authService.CurrentUserWithRoleInput{})
	if err != nil {
		return err
	}
	a.user = current.User

	if a.user == nil {
		if err := a.loginScreen(ctx); err != nil {
			return quitToNil(err)
		}
	}

	return quitToNil(a.homeScreen(ctx))
}

// errQuit unwinds the screen stack when the user asks to leave
var errQuit = errors.New("quit")

func quitToNil(err error) error {
	if err == nil || errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
