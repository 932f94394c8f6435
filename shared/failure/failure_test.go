package failure_test

import (
	"errors"
	"fmt"
	"hotel/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Kind:    failure.KindBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		kind    failure.Kind
		message string
	}{
		{
			name:    "NoRoomAvailableError",
			failure: failure.NoRoomAvailableError,
			kind:    failure.KindNoRoomAvailable,
			message: "no room available for the requested dates",
		},
		{
			name:    "InvalidRoomCountError",
			failure: failure.InvalidRoomCountError,
			kind:    failure.KindBadRequest,
			message: "room count must be at least 1",
		},
		{
			name:    "GuestNameRequiredError",
			failure: failure.GuestNameRequiredError,
			kind:    failure.KindBadRequest,
			message: "guest name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Kind != tt.kind {
				t.Errorf("expected kind to be %s, got %s", tt.kind, tt.failure.Kind)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Kind: failure.KindBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}
			} else {
				f, ok := result.(*failure.Failure)
				if !ok {
					t.Errorf("expected result to be *failure.Failure, got %T", result)
				} else {
					expectedF := tt.expected.(*failure.Failure)
					if f.Kind != expectedF.Kind || f.Message != expectedF.Message {
						t.Errorf("expected %+v, got %+v", expectedF, f)
					}
				}
			}
		})
	}
}

func TestKindConstructors(t *testing.T) {
	tests := []struct {
		name    string
		result  error
		kind    failure.Kind
		message string
	}{
		{
			name:    "BadRequestFromString",
			result:  failure.BadRequestFromString("custom bad request"),
			kind:    failure.KindBadRequest,
			message: "custom bad request",
		},
		{
			name:    "InvalidInterval",
			result:  failure.InvalidInterval("arrival must be before checkout"),
			kind:    failure.KindInvalidInterval,
			message: "arrival must be before checkout",
		},
		{
			name:    "InvalidPattern",
			result:  failure.InvalidPattern(errors.New("missing closing )")),
			kind:    failure.KindInvalidPattern,
			message: "missing closing )",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", tt.result)
			}
			if f.Kind != tt.kind {
				t.Errorf("expected kind to be %s, got %s", tt.kind, f.Kind)
			}
			if f.Message != tt.message {
				t.Errorf("expected message to be %q, got %q", tt.message, f.Message)
			}
		})
	}
}

func TestNilInputs(t *testing.T) {
	if failure.InvalidPattern(nil) != nil {
		t.Error("expected InvalidPattern(nil) to be nil")
	}
}

func TestGetKind(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected failure.Kind
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Kind: failure.KindInvalidInterval, Message: "test"},
			expected: failure.KindInvalidInterval,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("create booking: %w", failure.NoRoomAvailableError),
			expected: failure.KindNoRoomAvailable,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: failure.KindInternal,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: failure.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetKind(tt.input)
			if result != tt.expected {
				t.Errorf("expected kind to be %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestIs(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", failure.InvalidPattern(errors.New("bad")))

	if !failure.Is(wrapped, failure.KindInvalidPattern) {
		t.Error("expected wrapped error to be classified as invalid pattern")
	}
	if failure.Is(wrapped, failure.KindBadRequest) {
		t.Error("expected wrapped error not to be classified as bad request")
	}
	if failure.Is(nil, failure.KindInternal) {
		t.Error("expected nil error never to match a kind")
	}
}
