package models

import (
	"time"
)

// SessionStatus represents the display status of a session, derived from
// its confirmations rather than stored
type SessionStatus string

const (
	// SessionStatusPending indicates no player has confirmed yet
	SessionStatusPending SessionStatus = "pending"

	// SessionStatusConfirmed indicates at least one player has confirmed
	SessionStatusConfirmed SessionStatus = "confirmed"
)

// Session represents a scheduled game meeting
type Session struct {
	// ID is the unique identifier for the session
	ID string

	// Title is the display name of the session
	Title string

	// Date is the calendar date in YYYY-MM-DD form
	Date string

	// Time is the local start time in HH:MM form
	Time string

	// Location is where the session takes place (Discord, Roll20, in person)
	Location string

	// DungeonMaster is the display name of the organizing user
	DungeonMaster string

	// TotalPlayers is the player capacity for the session
	TotalPlayers int

	// CreatedAt is when the session was created
	CreatedAt time.Time
}

// SessionSummary pairs a session with its derived attendance data
type SessionSummary struct {
	// Session is the persisted session record
	Session *Session

	// ConfirmedPlayers is the number of confirmed-status confirmations
	ConfirmedPlayers int

	// Status is the derived display status
	Status SessionStatus
}
