package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/quadrosga/dndapp/internal/common/clock"
	"github.com/quadrosga/dndapp/internal/common/uuid"
	"github.com/quadrosga/dndapp/internal/logging"
	announcementRepo "github.com/quadrosga/dndapp/internal/repositories/announcement"
	sessionRepo "github.com/quadrosga/dndapp/internal/repositories/session"
	userRepo "github.com/quadrosga/dndapp/internal/repositories/user"
	announcementService "github.com/quadrosga/dndapp/internal/services/announcement"
	authService "github.com/quadrosga/dndapp/internal/services/auth"
	sessionService "github.com/quadrosga/dndapp/internal/services/session"
)

// AppTestSuite drives the terminal app end to end over a real service
// stack backed by miniredis, with scripted input.
type AppTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client

	auth          authService.Service
	sessions      sessionService.Service
	announcements announcementService.Service

	restorePassword func() ([]byte, error)
}

func (s *AppTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	sessRepo, err := sessionRepo.NewRedis(&sessionRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	annRepo, err := announcementRepo.NewRedis(&announcementRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	usrRepo, err := userRepo.NewRedis(&userRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	sessSvc, err := sessionService.New(&sessionService.Config{
		SessionRepo: sessRepo,
		Clock:       &clock.DefaultClock{},
		UUID:        uuid.New(),
		Logger:      logger,
	})
	s.Require().NoError(err)
	s.sessions = sessSvc

	annSvc, err := announcementService.New(&announcementService.Config{
		AnnouncementRepo: annRepo,
		Clock:            &clock.DefaultClock{},
		UUID:             uuid.New(),
		Logger:           logger,
	})
	s.Require().NoError(err)
	s.announcements = annSvc

	auSvc, err := authService.New(&authService.Config{
		UserRepo:  usrRepo,
		Directory: authService.NewStaticDirectory(),
		Logger:    logger,
	})
	s.Require().NoError(err)
	s.auth = auSvc

	s.restorePassword = readPassword
	readPassword = func() ([]byte, error) {
		return []byte("senha123"), nil
	}
}

func (s *AppTestSuite) TearDownTest() {
	readPassword = s.restorePassword
	s.client.Close()
	s.mr.Close()
}

func (s *AppTestSuite) newApp(script string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	app, err := New(&Config{
		AuthService:         s.auth,
		SessionService:      s.sessions,
		AnnouncementService: s.announcements,
		In:                  strings.NewReader(script),
		Out:                 out,
	})
	s.Require().NoError(err)
	return app, out
}

func (s *AppTestSuite) TestRun_LoginAndQuit() {
	// email, remember-me answer, quit
	app, out := s.newApp("ana@dnd.com\ny\nq\n")

	err := app.Run(context.Background())

	s.NoError(err)
	s.Contains(out.String(), "Welcome, Ana (DM)!")
	s.Contains(out.String(), "Sessão da Campanha Principal")

	// the login persisted and the email was remembered
	current, err := s.auth.CurrentUser(context.Background(), &authService.CurrentUserInput{})
	s.NoError(err)
	s.Require().NotNil(current.User)
	s.Equal("ana@dnd.com", current.User.Email)

	saved, err := s.auth.SavedUsername(context.Background(), &authService.SavedUsernameInput{})
	s.NoError(err)
	s.Equal("ana@dnd.com", saved.Username)
}

func (s *AppTestSuite) TestRun_BadPasswordThenRetry() {
	attempts := 0
	readPassword = func() ([]byte, error) {
		attempts++
		if attempts == 1 {
			return []byte("wrong"), nil
		}
		return []byte("senha123"), nil
	}

	// first email fails, second succeeds, decline remember, quit
	app, out := s.newApp("ana@dnd.com\nana@dnd.com\nn\nq\n")

	err := app.Run(context.Background())

	s.NoError(err)
	s.Contains(out.String(), "Invalid email or password")
	s.Contains(out.String(), "Welcome, Ana (DM)!")
}

func (s *AppTestSuite) TestRun_SkipsLoginWhenAlreadyPersisted() {
	_, err := s.auth.Login(context.Background(), &authService.LoginInput{
		Email:    "carla@dnd.com",
		Password: "senha123",
	})
	s.Require().NoError(err)

	// straight to the home screen, then quit
	app, out := s.newApp("q\n")

	err = app.Run(context.Background())

	s.NoError(err)
	s.NotContains(out.String(), "=== D&D Group Login ===")
	s.Contains(out.String(), "=== Sessions ===")
}

func (s *AppTestSuite) TestRun_ConfirmSessionFromDetails() {
	// login, open session 1, confirm, back at list, quit
	app, out := s.newApp("carla@dnd.com\nn\n1\nc\nq\n")

	err := app.Run(context.Background())

	s.NoError(err)
	s.Contains(out.String(), "Answer recorded.")

	listed, err := s.sessions.ListSessions(context.Background(), &sessionService.ListSessionsInput{})
	s.NoError(err)
	s.Require().NotEmpty(listed.Sessions)
	s.Equal(1, listed.Sessions[0].ConfirmedPlayers)
}

func (s *AppTestSuite) TestRun_PlayerCannotCreateSessions() {
	// a player picking "n" gets refused and stays on the list
	app, out := s.newApp("carla@dnd.com\nn\nn\nq\n")

	err := app.Run(context.Background())

	s.NoError(err)
	s.Contains(out.String(), "Only the DM can create sessions.")
}

func (s *AppTestSuite) TestRun_DMPostsAnnouncement() {
	// login as DM, announcements, post, back, quit
	app, out := s.newApp("ana@dnd.com\nn\na\np\nTreasure split\nMeet before the session\nn\n\nq\n")

	err := app.Run(context.Background())

	s.NoError(err)
	s.Contains(out.String(), "Posted.")

	listed, err := s.announcements.ListAnnouncements(context.Background(), &announcementService.ListAnnouncementsInput{})
	s.NoError(err)
	s.Require().NotEmpty(listed.Announcements)
	s.Equal("Treasure split", listed.Announcements[0].Title)
}

func (s *AppTestSuite) TestRun_LogoutReturnsToLogin() {
	// login, settings, confirm logout, log back in, quit
	app, out := s.newApp("ana@dnd.com\nn\ns\ny\ncarla@dnd.com\nn\nq\n")

	err := app.Run(context.Background())

	s.NoError(err)
	s.Contains(out.String(), "Logged out.")
	s.Contains(out.String(), "Welcome, Carla!")
}

func (s *AppTestSuite) TestRun_EOFExitsCleanly() {
	app, _ := s.newApp("")

	err := app.Run(context.Background())

	s.NoError(err)
}

func TestAppTestSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}
