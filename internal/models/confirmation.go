package models

import (
	"time"
)

// ConfirmationStatus represents a player's RSVP answer
type ConfirmationStatus string

const (
	// ConfirmationStatusConfirmed indicates the player will attend
	ConfirmationStatusConfirmed ConfirmationStatus = "confirmed"

	// ConfirmationStatusDenied indicates the player will not attend
	ConfirmationStatusDenied ConfirmationStatus = "denied"
)

// Confirmation represents a single user's RSVP for a session. Records are
// keyed by (SessionID, UserName) so two users confirming the same session
// never overwrite each other.
type Confirmation struct {
	// SessionID is the session this RSVP belongs to
	SessionID string

	// UserName is the display name of the responding user
	UserName string

	// Status is the RSVP answer
	Status ConfirmationStatus

	// ConfirmedAt is when the RSVP was recorded
	ConfirmedAt time.Time
}
