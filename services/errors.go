package services

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrClientNotFound     = errors.New("client record not found")
	ErrInvalidID          = errors.New("invalid client id")
	ErrInvalidStatus      = errors.New("status must be either approved or rejected")
	ErrInvalidTransition  = errors.New("client record has already been reviewed")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrUserNotFound       = errors.New("account not found")
	ErrIncompleteMessage  = errors.New("Missing to, subject or html in request body")
	ErrUnknownTemplate    = errors.New("unknown email template")
)

// ValidationError carries one message per offending field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ConfigurationError means the mail relay settings are incomplete. Missing
// names the unset variables for the logs; the message always lists all four.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return "SMTP not configured on server. Set SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASS."
}

// TransportError wraps a failure reported by the mail relay.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "Failed to send email: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
