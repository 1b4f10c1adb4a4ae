// Package events fans domain events out to in-process notifiers.
// The core domain stays free of output channels; anything that wants
// to react to a checkout or cart change subscribes here.
package events

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Event is an immutable record of something that happened in the domain.
type Event struct {
	Topic      string
	OccurredAt time.Time
	Payload    any
}

// Notifier reacts to emitted events (logging, metrics, etc.).
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

// Bus dispatches events to all configured notifiers. A nil bus is a
// valid no-op publisher.
type Bus struct {
	Notifiers []Notifier
	Now       func() time.Time
}

// Emit builds the event and dispatches it, joining notifier errors.
func (b *Bus) Emit(ctx context.Context, topic string, payload any) error {
	if b == nil {
		return nil
	}
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return errors.New("events: topic is required")
	}
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	event := Event{Topic: topic, OccurredAt: now(), Payload: payload}
	var joined error
	for _, notifier := range b.Notifiers {
		if notifier == nil {
			continue
		}
		if err := notifier.Notify(ctx, event); err != nil {
			joined = errors.Join(joined, fmt.Errorf("events: notifier: %w", err))
		}
	}
	return joined
}
