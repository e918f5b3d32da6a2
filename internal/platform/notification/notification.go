// Package notification provides the in-process event channel that the
// admission flow publishes into, plus the observers that render, log and
// record those events.
package notification

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ---------------------------------------------------------------------------
// Event Kinds
// ---------------------------------------------------------------------------

// Kind identifies the state change an event describes.
type Kind string

const (
	KindAdmission Kind = "admission"
	KindBilling   Kind = "billing"
)

// ---------------------------------------------------------------------------
// Event
// ---------------------------------------------------------------------------

// Event is a fire-and-forget message delivered to observers by value.
type Event struct {
	ID         uuid.UUID `json:"id"`
	Kind       Kind      `json:"kind"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Observer receives published events. A returned error aborts the fan-out
// and is handed back to the publisher.
type Observer func(Event) error

// ---------------------------------------------------------------------------
// Channel
// ---------------------------------------------------------------------------

// Channel is a synchronous multicast dispatcher. Observers are registered
// during setup, before anything is published; it is not safe for concurrent
// use.
type Channel struct {
	observers map[Kind][]Observer
	now       func() time.Time
}

// NewChannel creates a Channel with no observers.
func NewChannel() *Channel {
	return &Channel{
		observers: make(map[Kind][]Observer),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Subscribe appends an observer for the given kind.
func (c *Channel) Subscribe(kind Kind, obs Observer) {
	c.observers[kind] = append(c.observers[kind], obs)
}

// Observers returns how many observers are registered for kind.
func (c *Channel) Observers(kind Kind) int {
	return len(c.observers[kind])
}

// Publish builds an event and invokes every observer of its kind in
// subscription order. With no observers it is a no-op apart from returning
// the event. The first observer error stops delivery.
func (c *Channel) Publish(kind Kind, message string) (Event, error) {
	evt := Event{
		ID:         uuid.New(),
		Kind:       kind,
		Message:    message,
		OccurredAt: c.now(),
	}
	for _, obs := range c.observers[kind] {
		if err := obs(evt); err != nil {
			return evt, fmt.Errorf("notify %s: %w", kind, err)
		}
	}
	return evt, nil
}

// ---------------------------------------------------------------------------
// Observers
// ---------------------------------------------------------------------------

// PrefixWriter writes each event as "[prefix] message" on its own line.
func PrefixWriter(w io.Writer, prefix string) Observer {
	return func(evt Event) error {
		_, err := fmt.Fprintf(w, "[%s] %s\n", prefix, evt.Message)
		return err
	}
}

// LogObserver emits one structured log line per event.
func LogObserver(logger zerolog.Logger) Observer {
	return func(evt Event) error {
		logger.Info().
			Str("event_id", evt.ID.String()).
			Str("kind", string(evt.Kind)).
			Time("occurred_at", evt.OccurredAt).
			Msg(evt.Message)
		return nil
	}
}

// Recorder keeps every event it observes, in delivery order.
type Recorder struct {
	events []Event
}

// Observe implements Observer.
func (r *Recorder) Observe(evt Event) error {
	r.events = append(r.events, evt)
	return nil
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Messages returns the recorded event messages.
func (r *Recorder) Messages() []string {
	out := make([]string, 0, len(r.events))
	for _, evt := range r.events {
		out = append(out, evt.Message)
	}
	return out
}
