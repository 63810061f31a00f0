package session

import "github.com/quadrosga/dndapp/internal/models"

type SaveSessionsInput struct {
	Sessions []*models.Session
}

type GetSessionsInput struct {
}

type GetSessionsOutput struct {
	Sessions []*models.Session
}

type SaveConfirmationInput struct {
	Confirmation *models.Confirmation
}

type GetConfirmationsInput struct {
	SessionIDs []string
}

type GetConfirmationsOutput struct {
	// Confirmations maps a session ID to the RSVPs recorded for it
	Confirmations map[string][]*models.Confirmation
}
