package events

import (
	"context"
	"fmt"
	"sync"
)

// EventHandlerFunc consumes one engine event.
type EventHandlerFunc func(ctx context.Context, event DomainEvent) error

// subscription ties a handler to the event types it asked for. The literal
// "*" subscribes to everything.
type subscription struct {
	name    string
	types   []string
	handler EventHandlerFunc
}

func (s subscription) matches(eventType string) bool {
	for _, t := range s.types {
		if t == "*" || t == eventType {
			return true
		}
	}
	return false
}

// EventDispatcher fans reconciliation outcomes out to subscribers. The
// reconciler publishes, the presentation layer and the snapshot owner
// subscribe; subscribers run in registration order on the publishing
// goroutine.
type EventDispatcher struct {
	mu   sync.RWMutex
	subs []subscription
	// ContinueOnError keeps delivering after a handler fails, collecting
	// the errors, instead of stopping at the first one.
	ContinueOnError bool
}

func NewEventDispatcher() *EventDispatcher {
	return &EventDispatcher{}
}

// RegisterHandler subscribes handler to the given event types under a name
// used in error messages. A handler registered with no types receives
// nothing.
func (d *EventDispatcher) RegisterHandler(name string, handler EventHandlerFunc, eventTypes ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.subs = append(d.subs, subscription{name: name, types: eventTypes, handler: handler})
}

// Dispatch delivers event to every matching subscriber.
func (d *EventDispatcher) Dispatch(ctx context.Context, event DomainEvent) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var errs []error
	for _, sub := range d.subs {
		if !sub.matches(event.EventType()) {
			continue
		}
		if err := sub.handler(ctx, event); err != nil {
			wrapped := fmt.Errorf("handler %s failed for event %s: %w", sub.name, event.EventType(), err)
			if !d.ContinueOnError {
				return wrapped
			}
			errs = append(errs, wrapped)
		}
	}
	if len(errs) > 0 {
		return &DispatchError{Errors: errs}
	}
	return nil
}

// HasHandlers reports whether any subscriber would receive the event type.
func (d *EventDispatcher) HasHandlers(eventType string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, sub := range d.subs {
		if sub.matches(eventType) {
			return true
		}
	}
	return false
}

// DispatchError aggregates the handler errors collected during one dispatch.
type DispatchError struct {
	Errors []error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch failed: %d handler error(s), first: %v", len(e.Errors), e.Errors[0])
}

// Unwrap exposes the first error for errors.Is/As chains.
func (e *DispatchError) Unwrap() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e.Errors[0]
}
