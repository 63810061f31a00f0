package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/quadrosga/dndapp/internal/models"
	sessionService "github.com/quadrosga/dndapp/internal/services/session"
)

// homeScreen renders the session list and dispatches to the other screens.
// It loops until the user quits or input ends.
func (a *App) homeScreen(ctx context.Context) error {
	for {
		listed, err := a.sessions.ListSessions(ctx, &sessionService.ListSessionsInput{})
		if err != nil {
			return err
		}

		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "=== Sessions ===")
		if len(listed.Sessions) == 0 {
			fmt.Fprintln(a.out, "No sessions scheduled.")
		}
		for i, summary := range listed.Sessions {
			fmt.Fprintf(a.out, "%d. %s\n", i+1, formatSummary(summary))
		}

		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "[number] session details  [a] announcements  [s] settings  [q] quit")
		if a.user.Role == models.RoleDM {
			fmt.Fprintln(a.out, "[n] new session")
		}

		choice, err := promptLine(a.reader, "> ", a.out)
		if err != nil {
			return err
		}

		switch choice {
		case "q":
			return errQuit
		case "a":
			if err := a.announcementsScreen(ctx); err != nil {
				return err
			}
		case "s":
			if err := a.settingsScreen(ctx); err != nil {
				return err
			}
		case "n":
			if a.user.Role != models.RoleDM {
				fmt.Fprintln(a.out, "Only the DM can create sessions.")
				continue
			}
			if err := a.newSessionScreen(ctx); err != nil {
				return err
			}
		default:
			idx, err := strconv.Atoi(choice)
			if err != nil || idx < 1 || idx > len(listed.Sessions) {
				fmt.Fprintln(a.out, "Unknown choice.")
				continue
			}
			if err := a.sessionDetailScreen(ctx, listed.Sessions[idx-1]); err != nil {
				return err
			}
		}
	}
}

// sessionDetailScreen shows one session with its RSVPs and lets the user
// record their own answer.
func (a *App) sessionDetailScreen(ctx context.Context, summary *models.SessionSummary) error {
	s := summary.Session

	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "=== %s ===\n", s.Title)
	fmt.Fprintf(a.out, "Date:     %s %s\n", s.Date, s.Time)
	fmt.Fprintf(a.out, "Location: %s\n", s.Location)
	fmt.Fprintf(a.out, "DM:       %s\n", s.DungeonMaster)
	fmt.Fprintf(a.out, "Players:  %d/%d confirmed (%s)\n", summary.ConfirmedPlayers, s.TotalPlayers, summary.Status)

	confirmed, err := a.sessions.GetConfirmations(ctx, &sessionService.GetConfirmationsInput{
		SessionIDs: []string{s.ID},
	})
	if err != nil {
		return err
	}
	for _, c := range confirmed.Confirmations[s.ID] {
		marker := "+"
		if c.Status == models.ConfirmationStatusDenied {
			marker = "-"
		}
		fmt.Fprintf(a.out, "  %s %s\n", marker, c.UserName)
	}

	choice, err := promptLine(a.reader, "[c] confirm  [d] deny  [enter] back > ", a.out)
	if err != nil {
		return err
	}

	var status models.ConfirmationStatus
	switch choice {
	case "c":
		status = models.ConfirmationStatusConfirmed
	case "d":
		status = models.ConfirmationStatusDenied
	default:
		return nil
	}

	result, err := a.sessions.ConfirmSession(ctx, &sessionService.ConfirmSessionInput{
		SessionID: s.ID,
		UserName:  a.user.Name,
		Status:    status,
	})
	if err != nil {
		return err
	}
	if result.Success {
		fmt.Fprintln(a.out, "Answer recorded.")
	} else {
		fmt.Fprintln(a.out, "Could not record your answer, try again later.")
	}
	return nil
}

// newSessionScreen collects the fields for a new session. Only reachable
// for DM users.
func (a *App) newSessionScreen(ctx context.Context) error {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "=== New Session ===")

	title, err := promptLine(a.reader, "Title: ", a.out)
	if err != nil {
		return err
	}
	date, err := promptLine(a.reader, "Date (YYYY-MM-DD): ", a.out)
	if err != nil {
		return err
	}
	when, err := promptLine(a.reader, "Time (HH:MM): ", a.out)
	if err != nil {
		return err
	}
	location, err := promptLine(a.reader, "Location: ", a.out)
	if err != nil {
		return err
	}
	playersRaw, err := promptLine(a.reader, "Player capacity: ", a.out)
	if err != nil {
		return err
	}
	players, err := strconv.Atoi(playersRaw)
	if err != nil || players < 1 {
		fmt.Fprintln(a.out, "Player capacity must be a positive number.")
		return nil
	}

	result, err := a.sessions.AddSession(ctx, &sessionService.AddSessionInput{
		Title:         title,
		Date:          date,
		Time:          when,
		Location:      location,
		DungeonMaster: a.user.Name,
		TotalPlayers:  players,
	})
	if err != nil {
		return err
	}
	if result.Session != nil {
		fmt.Fprintf(a.out, "Created %q.\n", result.Session.Title)
	} else {
		fmt.Fprintln(a.out, "Could not save the session, try again later.")
	}
	return nil
}

func formatSummary(summary *models.SessionSummary) string {
	s := summary.Session
	return fmt.Sprintf("%s | %s %s @ %s (%d/%d confirmed, %s)",
		s.Title, s.Date, s.Time, s.Location,
		summary.ConfirmedPlayers, s.TotalPlayers, summary.Status)
}
