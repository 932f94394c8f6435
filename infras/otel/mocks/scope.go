package mocks

import "sync"

// Scope records everything done to it instead of emitting a span.
type Scope struct {
	ScopeName string
	SpanName  string

	mu         sync.Mutex
	ended      bool
	errors     []error
	events     []string
	attributes map[string]any
}

func NewScope(scopeName, spanName string) *Scope {
	return &Scope{
		ScopeName:  scopeName,
		SpanName:   spanName,
		attributes: map[string]any{},
	}
}

// End implements otel.Scope.
func (s *Scope) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ended = true
}

// TraceError implements otel.Scope.
func (s *Scope) TraceError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errors = append(s.errors, err)
}

// TraceIfError implements otel.Scope.
func (s *Scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

// AddEvent implements otel.Scope.
func (s *Scope) AddEvent(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, name)
}

// SetAttribute implements otel.Scope.
func (s *Scope) SetAttribute(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attributes[key] = value
}

// SetAttributes implements otel.Scope.
func (s *Scope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}

func (s *Scope) Ended() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ended
}

func (s *Scope) Errors() []error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]error(nil), s.errors...)
}

func (s *Scope) Events() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.events...)
}

func (s *Scope) Attribute(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.attributes[key]

	return value, ok
}
