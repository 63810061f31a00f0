package announcement

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	clockMocks "github.com/quadrosga/dndapp/internal/common/clock/mocks"
	uuidMocks "github.com/quadrosga/dndapp/internal/common/uuid/mocks"
	"github.com/quadrosga/dndapp/internal/logging"
	"github.com/quadrosga/dndapp/internal/models"
	announcementRepo "github.com/quadrosga/dndapp/internal/repositories/announcement"
	announcementMocks "github.com/quadrosga/dndapp/internal/repositories/announcement/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AnnouncementServiceTestSuite struct {
	suite.Suite
	mockCtrl             *gomock.Controller
	mockAnnouncementRepo *announcementMocks.MockRepository
	mockClock            *clockMocks.MockClock
	mockUUID             *uuidMocks.MockUUID
	announcementService  Service
	ctx                  context.Context

	// Test data
	testTime           time.Time
	testAnnouncementID string

	// Reusable test fixtures
	storedAnnouncements []*models.Announcement
}

func (s *AnnouncementServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockAnnouncementRepo = announcementMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	// Initialize test data
	s.testTime = time.Date(2024, 6, 12, 18, 30, 0, 0, time.UTC)
	s.testAnnouncementID = "test-announcement-id"

	// Set up the clock mock to return our test time
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.storedAnnouncements = []*models.Announcement{
		{
			ID:        "announcement-1",
			Title:     "Schedule Change",
			Content:   "Saturday moves to 15:00.",
			Author:    "Carla",
			Date:      "2024-06-08",
			Time:      "09:15",
			Important: false,
			CreatedAt: s.testTime,
		},
		{
			ID:        "announcement-2",
			Title:     "New Campaign",
			Content:   "We start next week.",
			Author:    "Ana (DM)",
			Date:      "2024-06-10",
			Time:      "14:30",
			Important: true,
			CreatedAt: s.testTime,
		},
	}

	svc, err := New(&Config{
		AnnouncementRepo: s.mockAnnouncementRepo,
		Clock:            s.mockClock,
		UUID:             s.mockUUID,
		Logger:           logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	})
	s.Require().NoError(err)
	s.announcementService = svc
}

func (s *AnnouncementServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAnnouncementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnnouncementServiceTestSuite))
}

func (s *AnnouncementServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{})
	s.Equal(ErrNilAnnouncementRepo, err)
}

func (s *AnnouncementServiceTestSuite) TestListAnnouncementsSortsMostRecentFirst() {
	s.mockAnnouncementRepo.EXPECT().
		GetAnnouncements(s.ctx, &announcementRepo.GetAnnouncementsInput{}).
		Return(&announcementRepo.GetAnnouncementsOutput{
			Announcements: s.storedAnnouncements,
		}, nil)

	result, err := s.announcementService.ListAnnouncements(s.ctx, &ListAnnouncementsInput{})
	s.Require().NoError(err)
	s.Require().Len(result.Announcements, 2)

	// The later posting date leads regardless of stored order
	s.Equal("announcement-2", result.Announcements[0].ID)
	s.Equal("announcement-1", result.Announcements[1].ID)
}

func (s *AnnouncementServiceTestSuite) TestListAnnouncementsDegradesToEmptyOnReadFailure() {
	s.mockAnnouncementRepo.EXPECT().
		GetAnnouncements(s.ctx, gomock.Any()).
		Return(nil, errors.New("redis down"))

	result, err := s.announcementService.ListAnnouncements(s.ctx, &ListAnnouncementsInput{})
	s.Require().NoError(err)
	s.Empty(result.Announcements)
}

func (s *AnnouncementServiceTestSuite) TestAddAnnouncementPrependsAndStamps() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testAnnouncementID)

	s.mockAnnouncementRepo.EXPECT().
		GetAnnouncements(s.ctx, &announcementRepo.GetAnnouncementsInput{}).
		Return(&announcementRepo.GetAnnouncementsOutput{
			Announcements: s.storedAnnouncements,
		}, nil)

	s.mockAnnouncementRepo.EXPECT().
		SaveAnnouncements(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *announcementRepo.SaveAnnouncementsInput) error {
			s.Require().Len(input.Announcements, 3)
			// The new record leads the list
			s.Equal(s.testAnnouncementID, input.Announcements[0].ID)
			s.Equal("announcement-1", input.Announcements[1].ID)
			return nil
		})

	result, err := s.announcementService.AddAnnouncement(s.ctx, &AddAnnouncementInput{
		Title:     "Reading Material",
		Content:   "Chapter 3 before next session.",
		Author:    "Beatriz (DM)",
		Important: true,
	})
	s.Require().NoError(err)
	s.Require().NotNil(result.Announcement)

	// The record is stamped from the clock
	s.Equal(s.testAnnouncementID, result.Announcement.ID)
	s.Equal("2024-06-12", result.Announcement.Date)
	s.Equal("18:30", result.Announcement.Time)
	s.Equal(s.testTime, result.Announcement.CreatedAt)
	s.True(result.Announcement.Important)
}

func (s *AnnouncementServiceTestSuite) TestAddAnnouncementReturnsNilOnWriteFailure() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testAnnouncementID)

	s.mockAnnouncementRepo.EXPECT().
		GetAnnouncements(s.ctx, gomock.Any()).
		Return(&announcementRepo.GetAnnouncementsOutput{
			Announcements: s.storedAnnouncements,
		}, nil)

	s.mockAnnouncementRepo.EXPECT().
		SaveAnnouncements(s.ctx, gomock.Any()).
		Return(errors.New("redis down"))

	result, err := s.announcementService.AddAnnouncement(s.ctx, &AddAnnouncementInput{Title: "Lost"})
	s.Require().NoError(err)
	s.Nil(result.Announcement)
}

func (s *AnnouncementServiceTestSuite) TestDeleteAnnouncementRemovesExactlyOne() {
	s.mockAnnouncementRepo.EXPECT().
		GetAnnouncements(s.ctx, &announcementRepo.GetAnnouncementsInput{}).
		Return(&announcementRepo.GetAnnouncementsOutput{
			Announcements: s.storedAnnouncements,
		}, nil)

	s.mockAnnouncementRepo.EXPECT().
		SaveAnnouncements(s.ctx, &announcementRepo.SaveAnnouncementsInput{
			Announcements: []*models.Announcement{s.storedAnnouncements[1]},
		}).
		Return(nil)

	result, err := s.announcementService.DeleteAnnouncement(s.ctx, &DeleteAnnouncementInput{
		AnnouncementID: "announcement-1",
	})
	s.Require().NoError(err)
	s.True(result.Success)
}

func (s *AnnouncementServiceTestSuite) TestDeleteAnnouncementAbsentIDStillSucceeds() {
	s.mockAnnouncementRepo.EXPECT().
		GetAnnouncements(s.ctx, &announcementRepo.GetAnnouncementsInput{}).
		Return(&announcementRepo.GetAnnouncementsOutput{
			Announcements: s.storedAnnouncements,
		}, nil)

	// The full list is rewritten unchanged
	s.mockAnnouncementRepo.EXPECT().
		SaveAnnouncements(s.ctx, &announcementRepo.SaveAnnouncementsInput{
			Announcements: s.storedAnnouncements,
		}).
		Return(nil)

	result, err := s.announcementService.DeleteAnnouncement(s.ctx, &DeleteAnnouncementInput{
		AnnouncementID: "no-such-id",
	})
	s.Require().NoError(err)
	s.True(result.Success)
}

func (s *AnnouncementServiceTestSuite) TestDeleteAnnouncementReportsWriteFailure() {
	s.mockAnnouncementRepo.EXPECT().
		GetAnnouncements(s.ctx, gomock.Any()).
		Return(&announcementRepo.GetAnnouncementsOutput{
			Announcements: s.storedAnnouncements,
		}, nil)

	s.mockAnnouncementRepo.EXPECT().
		SaveAnnouncements(s.ctx, gomock.Any()).
		Return(errors.New("redis down"))

	result, err := s.announcementService.DeleteAnnouncement(s.ctx, &DeleteAnnouncementInput{
		AnnouncementID: "announcement-1",
	})
	s.Require().NoError(err)
	s.False(result.Success)
}

func (s *AnnouncementServiceTestSuite) TestSeedDemoAnnouncementsWritesOnceOnEmptyStore() {
	s.mockUUID.EXPECT().NewUUID().Return("demo-1")
	s.mockUUID.EXPECT().NewUUID().Return("demo-2")
	s.mockUUID.EXPECT().NewUUID().Return("demo-3")

	s.mockAnnouncementRepo.EXPECT().
		GetAnnouncements(s.ctx, &announcementRepo.GetAnnouncementsInput{}).
		Return(&announcementRepo.GetAnnouncementsOutput{
			Announcements: []*models.Announcement{},
		}, nil)

	s.mockAnnouncementRepo.EXPECT().
		SaveAnnouncements(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *announcementRepo.SaveAnnouncementsInput) error {
			s.Len(input.Announcements, 3)
			s.Equal("demo-1", input.Announcements[0].ID)
			s.True(input.Announcements[0].Important)
			return nil
		})

	result, err := s.announcementService.SeedDemoAnnouncements(s.ctx, &SeedDemoAnnouncementsInput{})
	s.Require().NoError(err)
	s.True(result.Seeded)
}

func (s *AnnouncementServiceTestSuite) TestSeedDemoAnnouncementsSkipsWhenDataExists() {
	s.mockAnnouncementRepo.EXPECT().
		GetAnnouncements(s.ctx, &announcementRepo.GetAnnouncementsInput{}).
		Return(&announcementRepo.GetAnnouncementsOutput{
			Announcements: s.storedAnnouncements,
		}, nil)

	result, err := s.announcementService.SeedDemoAnnouncements(s.ctx, &SeedDemoAnnouncementsInput{})
	s.Require().NoError(err)
	s.False(result.Seeded)
}
