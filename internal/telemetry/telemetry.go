// Package telemetry emits the estimate lifecycle events to an abstract sink.
// Fan-out to concrete monitoring backends is the sink's concern; core logic
// never learns whether a backend accepted an event.
package telemetry

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventKind is the closed set of lifecycle events.
type EventKind string

const (
	EventSubmitted        EventKind = "submitted"
	EventValidationFailed EventKind = "validation_failed"
	EventRequestSucceeded EventKind = "request_succeeded"
	EventRequestFailed    EventKind = "request_failed"
	EventRetried          EventKind = "retried"
)

type Event struct {
	ID     string         `json:"id"`
	Kind   EventKind      `json:"kind"`
	At     time.Time      `json:"at"`
	Fields map[string]any `json:"fields,omitempty"`
}

func NewEvent(kind EventKind, fields map[string]any) Event {
	return Event{
		ID:     uuid.NewString(),
		Kind:   kind,
		At:     time.Now().UTC(),
		Fields: fields,
	}
}

// Sink receives lifecycle events. Emit is fire-and-forget: implementations
// must not propagate backend failures to the caller.
type Sink interface {
	Emit(ctx context.Context, ev Event)
}

type nopSink struct{}

func (nopSink) Emit(context.Context, Event) {}

// Nop returns a sink that discards every event.
func Nop() Sink { return nopSink{} }

// LogSink writes events to the service logger.
type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Emit(_ context.Context, ev Event) {
	s.logger.Info("lifecycle event",
		zap.String("event_id", ev.ID),
		zap.String("kind", string(ev.Kind)),
		zap.Any("fields", ev.Fields),
	)
}

// MultiSink fans one event out to every configured backend.
type MultiSink struct {
	sinks []Sink
}

func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (s *MultiSink) Emit(ctx context.Context, ev Event) {
	for _, sink := range s.sinks {
		sink.Emit(ctx, ev)
	}
}
