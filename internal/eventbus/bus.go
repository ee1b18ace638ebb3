// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

package eventbus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fridgeworks/smartfridge/internal/logging"
	"github.com/fridgeworks/smartfridge/internal/metrics"
	"github.com/rs/zerolog"
)

// Handler consumes events for one concern (analytics, logging, ...).
// Name identifies the handler in logs and metrics; Handle processes a
// single event and may return an error, which the bus isolates.
type Handler interface {
	Name() string
	Handle(ctx context.Context, event Event) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc struct {
	HandlerName string
	Fn          func(ctx context.Context, event Event) error
}

// Name implements Handler.
func (h HandlerFunc) Name() string { return h.HandlerName }

// Handle implements Handler.
func (h HandlerFunc) Handle(ctx context.Context, event Event) error { return h.Fn(ctx, event) }

// Bus is an in-process publish/subscribe dispatcher with synchronous,
// registration-ordered fan-out.
//
// Dispatch contract:
//   - Publish invokes every subscriber for the event's type, in the
//     order they subscribed, and does not return until all have run.
//   - A handler error or panic is caught and logged per handler; it
//     never aborts delivery to the remaining subscribers and never
//     propagates to the publisher.
//   - Publishing a type with zero subscribers is a no-op.
//
// The registry is guarded for concurrent Subscribe/Publish. Handlers
// must not publish the same event type from within Handle: dispatch is
// re-entrant and such a cycle would recurse without bound.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[Type][]Handler
	log         zerolog.Logger
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{
		subscribers: make(map[Type][]Handler),
		log:         logging.WithComponent("eventbus"),
	}
}

// Subscribe appends the handler to the subscriber list for the given
// type. A handler may subscribe to any number of types; multiple
// handlers per type run in registration order.
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
	b.log.Debug().
		Str("event_type", string(eventType)).
		Str("handler", handler.Name()).
		Msg("Handler subscribed")
}

// SubscribeAll subscribes the handler to every known event type.
func (b *Bus) SubscribeAll(handler Handler) {
	for _, t := range Types() {
		b.Subscribe(t, handler)
	}
}

// Publish stamps the payload into an Event and delivers it
// synchronously to every current subscriber of the payload's type.
// It always succeeds from the publisher's point of view.
func (b *Bus) Publish(ctx context.Context, payload Payload) {
	event := Event{
		Type:      payload.EventType(),
		Timestamp: time.Now().UTC(),
		Data:      payload,
	}

	b.mu.RLock()
	handlers := b.subscribers[event.Type]
	b.mu.RUnlock()

	metrics.EventsPublished.WithLabelValues(string(event.Type)).Inc()

	for _, handler := range handlers {
		b.dispatch(ctx, handler, event)
	}
}

// dispatch runs one handler with panic recovery and error isolation.
func (b *Bus) dispatch(ctx context.Context, handler Handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			metrics.EventHandlerErrors.WithLabelValues(string(event.Type), handler.Name()).Inc()
			b.log.Error().
				Str("event_type", string(event.Type)).
				Str("handler", handler.Name()).
				Str("panic", fmt.Sprint(r)).
				Msg("Event handler panicked")
		}
	}()

	if err := handler.Handle(ctx, event); err != nil {
		metrics.EventHandlerErrors.WithLabelValues(string(event.Type), handler.Name()).Inc()
		b.log.Error().
			Err(err).
			Str("event_type", string(event.Type)).
			Str("handler", handler.Name()).
			Msg("Event handler failed")
	}
}

// SubscriberCount returns the number of handlers registered for the
// type. Primarily for tests and health reporting.
func (b *Bus) SubscriberCount(eventType Type) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers[eventType])
}
