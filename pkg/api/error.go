package api

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrAmbiguous = errors.New("ambiguous")
)

// LookupError is returned when a name or ID doesn't resolve to exactly one resource.
type LookupError struct {
	// Kind is a human-readable resource kind, e.g. "consistency group".
	Kind  string
	Token string
	// Err is either ErrNotFound or ErrAmbiguous.
	Err error
}

func (e *LookupError) Error() string {
	if errors.Is(e.Err, ErrAmbiguous) {
		return fmt.Sprintf("More than one %s exists with the name '%s'.", e.Kind, e.Token)
	}
	return fmt.Sprintf("No %s with a name or ID of '%s' exists.", e.Kind, e.Token)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// ServiceError is an error response returned by the block storage service.
type ServiceError struct {
	StatusCode int
	// Kind is the fault name from the response body, e.g. "itemNotFound" or "badRequest".
	Kind    string
	Message string
}

func (e *ServiceError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "no error message"
	}
	if e.Kind != "" {
		return fmt.Sprintf("%s (HTTP %d): %s", e.Kind, e.StatusCode, msg)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, msg)
}

// Is makes errors.Is(err, ErrNotFound) true for 404 responses.
func (e *ServiceError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == 404
}

// BatchError summarises a batch operation where some of the items failed. Individual failures are
// reported as they happen, the error only carries the counts.
type BatchError struct {
	// Action is the past-tense phrase appended to the message, e.g. "delete".
	Action string
	// Kind is the plural resource kind, e.g. "consistency groups".
	Kind   string
	Failed int
	Total  int
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%d of %d %s failed to %s.", e.Failed, e.Total, e.Kind, e.Action)
}
