package auth

import (
	"fmt"
	"net/http"
)

// Error is a client-visible failure carrying the HTTP status and a stable
// machine code alongside the human-readable message.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	// ErrInvalidCredentials deliberately flattens "no such user" and "wrong
	// password" into one message to prevent account enumeration.
	ErrInvalidCredentials = &Error{Status: http.StatusUnauthorized, Code: "INVALID_CREDENTIALS", Message: "Invalid username or password"}

	// ErrAccountDisabled is distinguishable from bad credentials: the account
	// is real but barred.
	ErrAccountDisabled = &Error{Status: http.StatusForbidden, Code: "ACCOUNT_DISABLED", Message: "Account is disabled"}

	ErrUnauthorized = &Error{Status: http.StatusUnauthorized, Code: "UNAUTHORIZED", Message: "Unauthorized"}

	// ErrForbidden means the session is valid but lacks admin rights.
	ErrForbidden = &Error{Status: http.StatusForbidden, Code: "FORBIDDEN", Message: "Forbidden: Admin access required"}

	ErrUserNotFound    = &Error{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: "User not found"}
	ErrSessionNotFound = &Error{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: "Session not found"}
	ErrDuplicateUser   = &Error{Status: http.StatusConflict, Code: "DUPLICATE_USER", Message: "Username already exists"}
)

// Validation builds a 400 with a request-specific message.
func Validation(format string, args ...any) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Code:    "VALIDATION_ERROR",
		Message: fmt.Sprintf(format, args...),
	}
}
