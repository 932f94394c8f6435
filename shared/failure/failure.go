package failure

import (
	"errors"
)

// Kind classifies a Failure so callers can react without matching on messages.
type Kind string

const (
	KindBadRequest      Kind = "BAD_REQUEST"
	KindInvalidInterval Kind = "INVALID_INTERVAL"
	KindNoRoomAvailable Kind = "NO_ROOM_AVAILABLE"
	KindInvalidPattern  Kind = "INVALID_PATTERN"
	KindInternal        Kind = "INTERNAL"
)

// Failure is a wrapper for error messages tagged with a Kind.
type Failure struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

var NoRoomAvailableError = &Failure{Kind: KindNoRoomAvailable, Message: "no room available for the requested dates"}
var InvalidRoomCountError = &Failure{Kind: KindBadRequest, Message: "room count must be at least 1"}
var GuestNameRequiredError = &Failure{Kind: KindBadRequest, Message: "guest name is required"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure for invalid input derived from an error.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure for invalid input with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Kind:    KindBadRequest,
		Message: msg,
	}
}

// InvalidInterval returns a new Failure for a stay whose arrival is not before its checkout.
func InvalidInterval(msg string) error {
	return &Failure{
		Kind:    KindInvalidInterval,
		Message: msg,
	}
}

// InvalidPattern returns a new Failure for a guest name pattern that does not compile.
func InvalidPattern(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindInvalidPattern,
			Message: err.Error(),
		}
	}

	return nil
}

// GetKind returns the kind of an error interface.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

func Is(err error, kind Kind) bool {
	return err != nil && GetKind(err) == kind
}
