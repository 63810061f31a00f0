package session

// SessionError is a custom error type for session store errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        SessionError = "config cannot be nil"
	ErrNilSessionRepo   SessionError = "session repository cannot be nil"
	ErrNilClock         SessionError = "clock cannot be nil"
	ErrNilUUIDGenerator SessionError = "UUID generator cannot be nil"
	ErrNilLogger        SessionError = "logger cannot be nil"
	ErrNilInput         SessionError = "input cannot be nil"
)
