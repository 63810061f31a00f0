package auth

// AuthError is a custom error type for auth errors
type AuthError string

// Error implements the error interface
func (e AuthError) Error() string {
	return string(e)
}

// Define errors
const (
	// ErrInvalidCredentials deliberately does not distinguish an unknown
	// email from a wrong password
	ErrInvalidCredentials AuthError = "invalid email or password"

	ErrNilConfig    AuthError = "config cannot be nil"
	ErrNilUserRepo  AuthError = "user repository cannot be nil"
	ErrNilDirectory AuthError = "directory cannot be nil"
	ErrNilLogger    AuthError = "logger cannot be nil"
	ErrNilInput     AuthError = "input cannot be nil"
)
