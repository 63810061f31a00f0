package announcement

// AnnouncementError is a custom error type for announcement board errors
type AnnouncementError string

// Error implements the error interface
func (e AnnouncementError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig           AnnouncementError = "config cannot be nil"
	ErrNilAnnouncementRepo AnnouncementError = "announcement repository cannot be nil"
	ErrNilClock            AnnouncementError = "clock cannot be nil"
	ErrNilUUIDGenerator    AnnouncementError = "UUID generator cannot be nil"
	ErrNilLogger           AnnouncementError = "logger cannot be nil"
	ErrNilInput            AnnouncementError = "input cannot be nil"
)
