package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/quadrosga/dndapp/internal/models"
	announcementService "github.com/quadrosga/dndapp/internal/services/announcement"
)

// announcementsScreen shows the notice board. DM users can also post and
// remove announcements.
func (a *App) announcementsScreen(ctx context.Context) error {
	for {
		listed, err := a.announcements.ListAnnouncements(ctx, &announcementService.ListAnnouncementsInput{})
		if err != nil {
			return err
		}

		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "=== Announcements ===")
		if len(listed.Announcements) == 0 {
			fmt.Fprintln(a.out, "Nothing posted yet.")
		}
		for i, ann := range listed.Announcements {
			title := ann.Title
			if ann.Important {
				title = "[!] " + title
			}
			fmt.Fprintf(a.out, "%d. %s\n", i+1, title)
			fmt.Fprintf(a.out, "   %s\n", ann.Content)
			fmt.Fprintf(a.out, "   %s, %s %s\n", ann.Author, ann.Date, ann.Time)
		}

		fmt.Fprintln(a.out)
		prompt := "[enter] back > "
		if a.user.Role == models.RoleDM {
			prompt = "[p] post  [d] delete  [enter] back > "
		}

		choice, err := promptLine(a.reader, prompt, a.out)
		if err != nil {
			return err
		}

		switch choice {
		case "":
			return nil
		case "p":
			if a.user.Role != models.RoleDM {
				fmt.Fprintln(a.out, "Only the DM can post announcements.")
				continue
			}
			if err := a.postAnnouncement(ctx); err != nil {
				return err
			}
		case "d":
			if a.user.Role != models.RoleDM {
				fmt.Fprintln(a.out, "Only the DM can delete announcements.")
				continue
			}
			if err := a.deleteAnnouncement(ctx, listed.Announcements); err != nil {
				return err
			}
		default:
			fmt.Fprintln(a.out, "Unknown choice.")
		}
	}
}

func (a *App) postAnnouncement(ctx context.Context) error {
	title, err := promptLine(a.reader, "Title: ", a.out)
	if err != nil {
		return err
	}
	content, err := promptLine(a.reader, "Content: ", a.out)
	if err != nil {
		return err
	}
	important, err := promptYesNo(a.reader, "Mark as important?", a.out)
	if err != nil {
		return err
	}

	result, err := a.announcements.AddAnnouncement(ctx, &announcementService.AddAnnouncementInput{
		Title:     title,
		Content:   content,
		Author:    a.user.Name,
		Important: important,
	})
	if err != nil {
		return err
	}
	if result.Announcement != nil {
		fmt.Fprintln(a.out, "Posted.")
	} else {
		fmt.Fprintln(a.out, "Could not post the announcement, try again later.")
	}
	return nil
}

func (a *App) deleteAnnouncement(ctx context.Context, shown []*models.Announcement) error {
	choice, err := promptLine(a.reader, "Delete which number? ", a.out)
	if err != nil {
		return err
	}
	idx, err := strconv.Atoi(choice)
	if err != nil || idx < 1 || idx > len(shown) {
		fmt.Fprintln(a.out, "Unknown choice.")
		return nil
	}

	result, err := a.announcements.DeleteAnnouncement(ctx, &announcementService.DeleteAnnouncementInput{
		AnnouncementID: shown[idx-1].ID,
	})
	if err != nil {
		return err
	}
	if result.Success {
		fmt.Fprintln(a.out, "Deleted.")
	} else {
		fmt.Fprintln(a.out, "Could not delete the announcement, try again later.")
	}
	return nil
}
