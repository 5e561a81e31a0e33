package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPermissionDenied indicates the actor's role does not allow the view or action.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrSessionCorrupt indicates persisted session data could not be decoded.
	ErrSessionCorrupt = errors.New("session data corrupt")
)
