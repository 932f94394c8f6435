package mocks

import (
	"context"
	"hotel/infras/otel"
	"sync"
)

// Otel is an in-memory otel.Otel that keeps every scope it opens so tests can
// inspect what was traced.
type Otel struct {
	mu     sync.Mutex
	scopes []*Scope
}

// NewScope implements otel.Otel.
func (o *Otel) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, otel.Scope) {
	scope := NewScope(scopeName, spanName)

	o.mu.Lock()
	o.scopes = append(o.scopes, scope)
	o.mu.Unlock()

	return ctx, scope
}

// Shutdown implements otel.Otel.
func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

// Scopes returns the scopes opened so far, in order.
func (o *Otel) Scopes() []*Scope {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]*Scope(nil), o.scopes...)
}

// Scope returns the first scope opened for spanName, or nil.
func (o *Otel) Scope(spanName string) *Scope {
	for _, scope := range o.Scopes() {
		if scope.SpanName == spanName {
			return scope
		}
	}

	return nil
}

func NewOtel() *Otel {
	return &Otel{}
}
