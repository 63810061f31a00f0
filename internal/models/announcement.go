package models

import (
	"time"
)

// Announcement represents a posted message on the group's notice board
type Announcement struct {
	// ID is the unique identifier for the announcement
	ID string

	// Title is the headline of the announcement
	Title string

	// Content is the body text
	Content string

	// Author is the display name of the posting user
	Author string

	// Date is the calendar date of posting in YYYY-MM-DD form
	Date string

	// Time is the local time of posting in HH:MM form
	Time string

	// Important marks the announcement for highlighted display
	Important bool

	// CreatedAt is when the announcement was created, set once
	CreatedAt time.Time
}
