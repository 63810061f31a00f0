package announcement

import "github.com/quadrosga/dndapp/internal/models"

type SaveAnnouncementsInput struct {
	Announcements []*models.Announcement
}

type GetAnnouncementsInput struct {
}

type GetAnnouncementsOutput struct {
	Announcements []*models.Announcement
}
