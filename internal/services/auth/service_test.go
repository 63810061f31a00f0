package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/quadrosga/dndapp/internal/logging"
	"github.com/quadrosga/dndapp/internal/models"
	userRepo "github.com/quadrosga/dndapp/internal/repositories/user"
	userMocks "github.com/quadrosga/dndapp/internal/repositories/user/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUserRepo *userMocks.MockRepository
	authService  Service
	ctx          context.Context

	// Test data
	testUser *models.User
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserRepo = userMocks.NewMockRepository(s.mockCtrl)

	s.ctx = context.Background()

	s.testUser = &models.User{
		Email:    "ana@dnd.com",
		Password: "senha123",
		Name:     "Ana (DM)",
		Role:     models.RoleDM,
	}

	svc, err := New(&Config{
		UserRepo:  s.mockUserRepo,
		Directory: NewStaticDirectory(),
		Logger:    logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	})
	s.Require().NoError(err)
	s.authService = svc
}

func (s *AuthServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{})
	s.Equal(ErrNilUserRepo, err)

	_, err = New(&Config{UserRepo: s.mockUserRepo})
	s.Equal(ErrNilDirectory, err)
}

func (s *AuthServiceTestSuite) TestLoginPersistsMatchedUser() {
	s.mockUserRepo.EXPECT().
		SaveCurrentUser(s.ctx, &userRepo.SaveCurrentUserInput{User: s.testUser}).
		Return(nil)

	result, err := s.authService.Login(s.ctx, &LoginInput{
		Email:    "ana@dnd.com",
		Password: "senha123",
	})
	s.Require().NoError(err)
	s.Require().NotNil(result.User)
	s.Equal(models.RoleDM, result.User.Role)
	s.Equal("Ana (DM)", result.User.Name)
}

func (s *AuthServiceTestSuite) TestLoginRejectsWrongPassword() {
	result, err := s.authService.Login(s.ctx, &LoginInput{
		Email:    "ana@dnd.com",
		Password: "wrong",
	})
	s.Require().Error(err)
	s.Equal(ErrInvalidCredentials, err)
	s.Nil(result)
}

func (s *AuthServiceTestSuite) TestLoginRejectsUnknownEmail() {
	result, err := s.authService.Login(s.ctx, &LoginInput{
		Email:    "nobody@dnd.com",
		Password: "senha123",
	})
	s.Require().Error(err)
	s.Equal(ErrInvalidCredentials, err)
	s.Nil(result)
}

func (s *AuthServiceTestSuite) TestLoginSurfacesPersistFailure() {
	s.mockUserRepo.EXPECT().
		SaveCurrentUser(s.ctx, gomock.Any()).
		Return(errors.New("redis down"))

	result, err := s.authService.Login(s.ctx, &LoginInput{
		Email:    "ana@dnd.com",
		Password: "senha123",
	})
	s.Require().Error(err)
	s.NotEqual(ErrInvalidCredentials, err)
	s.Nil(result)
}

func (s *AuthServiceTestSuite) TestLogoutClearsCurrentUser() {
	s.mockUserRepo.EXPECT().
		ClearCurrentUser(s.ctx, &userRepo.ClearCurrentUserInput{}).
		Return(nil)

	result, err := s.authService.Logout(s.ctx, &LogoutInput{})
	s.Require().NoError(err)
	s.True(result.Success)
}

func (s *AuthServiceTestSuite) TestCurrentUserNilWhenLoggedOut() {
	s.mockUserRepo.EXPECT().
		GetCurrentUser(s.ctx, &userRepo.GetCurrentUserInput{}).
		Return(nil, userRepo.ErrNoCurrentUser)

	result, err := s.authService.CurrentUser(s.ctx, &CurrentUserInput{})
	s.Require().NoError(err)
	s.Nil(result.User)
}

func (s *AuthServiceTestSuite) TestCurrentUserNilOnStorageFailure() {
	s.mockUserRepo.EXPECT().
		GetCurrentUser(s.ctx, &userRepo.GetCurrentUserInput{}).
		Return(nil, errors.New("redis down"))

	result, err := s.authService.CurrentUser(s.ctx, &CurrentUserInput{})
	s.Require().NoError(err)
	s.Nil(result.User)
}

func (s *AuthServiceTestSuite) TestCurrentUserWithRoleResolvesThroughDirectory() {
	// The persisted record carries a stale role; the directory wins
	stale := &models.User{
		Email: "ana@dnd.com",
		Name:  "Ana (DM)",
		Role:  models.RolePlayer,
	}

	s.mockUserRepo.EXPECT().
		GetCurrentUser(s.ctx, &userRepo.GetCurrentUserInput{}).
		Return(stale, nil)

	result, err := s.authService.CurrentUserWithRole(s.ctx, &CurrentUserWithRoleInput{})
	s.Require().NoError(err)
	s.Require().NotNil(result.User)
	s.Equal(models.RoleDM, result.User.Role)
}

func (s *AuthServiceTestSuite) TestCurrentUserWithRoleNilForUnknownEmail() {
	s.mockUserRepo.EXPECT().
		GetCurrentUser(s.ctx, &userRepo.GetCurrentUserInput{}).
		Return(&models.User{Email: "ghost@dnd.com"}, nil)

	result, err := s.authService.CurrentUserWithRole(s.ctx, &CurrentUserWithRoleInput{})
	s.Require().NoError(err)
	s.Nil(result.User)
}

func (s *AuthServiceTestSuite) TestRememberAndForgetUsername() {
	s.mockUserRepo.EXPECT().
		SaveUsername(s.ctx, &userRepo.SaveUsernameInput{Username: "carla@dnd.com"}).
		Return(nil)

	remember, err := s.authService.RememberUsername(s.ctx, &RememberUsernameInput{
		Username: "carla@dnd.com",
	})
	s.Require().NoError(err)
	s.True(remember.Success)

	s.mockUserRepo.EXPECT().
		GetSavedUsername(s.ctx, &userRepo.GetSavedUsernameInput{}).
		Return("carla@dnd.com", nil)

	saved, err := s.authService.SavedUsername(s.ctx, &SavedUsernameInput{})
	s.Require().NoError(err)
	s.Equal("carla@dnd.com", saved.Username)

	s.mockUserRepo.EXPECT().
		ClearSavedUsername(s.ctx, &userRepo.ClearSavedUsernameInput{}).
		Return(nil)

	forget, err := s.authService.ForgetUsername(s.ctx, &ForgetUsernameInput{})
	s.Require().NoError(err)
	s.True(forget.Success)
}

func (s *AuthServiceTestSuite) TestSavedUsernameEmptyWhenNothingRemembered() {
	s.mockUserRepo.EXPECT().
		GetSavedUsername(s.ctx, &userRepo.GetSavedUsernameInput{}).
		Return("", userRepo.ErrNoSavedUsername)

	saved, err := s.authService.SavedUsername(s.ctx, &SavedUsernameInput{})
	s.Require().NoError(err)
	s.Empty(saved.Username)
}
