package carrier

import (
	"fmt"

	"github.com/pkg/errors"
)

type ErrorKind string

const (
	ErrKindNotConfigured    ErrorKind = "not_configured"
	ErrKindTransport        ErrorKind = "transport"
	ErrKindNotFound         ErrorKind = "not_found"
	ErrKindRejected         ErrorKind = "rejected"
	ErrKindUnavailable      ErrorKind = "unavailable"
	ErrKindUnexpectedStatus ErrorKind = "unexpected_status"
	ErrKindInvalidPayload   ErrorKind = "invalid_payload"
	ErrKindNoData           ErrorKind = "no_data"
)

// LookupError is a failed provider call. Message is safe to show to users;
// Err keeps the technical cause, if any.
type LookupError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *LookupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// UserMessage returns the user-facing text of err, or fallback when err is
// not a *LookupError.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var le *LookupError
	if errors.As(err, &le) && le.Message != "" {
		return le.Message
	}
	return fallback
}

// KindOf returns the ErrorKind of err, or "" when it is not a *LookupError.
func KindOf(err error) ErrorKind {
	var le *LookupError
	if errors.As(err, &le) {
		return le.Kind
	}
	return ""
}
