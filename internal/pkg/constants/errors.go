package constants

import "net/http"

type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound        = NewCodedError("record not found", http.StatusNotFound)
	ErrForbidden         = NewCodedError("forbidden", http.StatusForbidden)
	ErrUnauthorized      = NewCodedError("unauthorized", http.StatusUnauthorized)
	ErrMissingAuthCookie = NewCodedError("missing auth token", http.StatusUnauthorized)
	ErrInvalidPassword   = NewCodedError("invalid username or password", http.StatusUnauthorized)
	ErrUsernameTaken     = NewCodedError("username already taken", http.StatusConflict)
	ErrConflict          = NewCodedError("conflicting record", http.StatusConflict)
	ErrValidation        = NewCodedError("validation error", http.StatusBadRequest)
	ErrRegionNotAllowed  = NewCodedError("region is not served by this installation", http.StatusBadRequest)

	// ErrStoreUnavailable is returned when the remote record store is not
	// configured or cannot be reached. Clients show it as offline mode.
	ErrStoreUnavailable = NewCodedError("remote record store unavailable", http.StatusServiceUnavailable)
	// ErrMigrationFailed means the migration stopped at the first failed
	// create; the local cache is left as it was.
	ErrMigrationFailed = NewCodedError("migration failed", http.StatusBadGateway)
)
