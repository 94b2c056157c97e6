package booker

import (
	"errors"
	"net/http"
)

var (
	// ErrNoRoomSelected is returned by Flow.Submit when the booking form is closed.
	ErrNoRoomSelected = errors.New("no room selected")
	// ErrSubmitInProgress is returned by Flow.Submit while a request is still in flight.
	ErrSubmitInProgress = errors.New("a booking is already being submitted")
)

// Rule names a validation rule.
type Rule string

const (
	RuleRequired Rule = "required"
	RuleParsable Rule = "parsable"
	RuleFuture   Rule = "future"
	RuleOrder    Rule = "order"
)

// ValidationError is a local rule violation. It never reaches the network.
type ValidationError struct {
	Rule    Rule
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RejectedError is a business error reported by the API, e.g. a double booking.
type RejectedError struct {
	Status  int
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return http.StatusText(e.Status)
	}
	return e.Message
}

// TransportError is a failure before a usable response was obtained.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
