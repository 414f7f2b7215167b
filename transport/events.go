package transport

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/paginator"
)

// DefaultEventBuffer is the per-kind event buffer used when NewEvents is
// given a non-positive size.
const DefaultEventBuffer = 16

// Events is a channel-fed paginator.EventSource. Host plumbing pushes
// gateway traffic in through PushReaction and PushMessage; sessions take
// filtered events out through the bounded waits. Pushes never block: when a
// buffer is full the event is dropped, since a stalled gateway handler is
// worse than a lost reaction.
type Events struct {
	reactions chan paginator.ReactionEvent
	messages  chan paginator.Message
}

// NewEvents creates an event source buffering up to size pending events of
// each kind.
func NewEvents(size int) *Events {
	if size <= 0 {
		size = DefaultEventBuffer
	}
	return &Events{
		reactions: make(chan paginator.ReactionEvent, size),
		messages:  make(chan paginator.Message, size),
	}
}

// PushReaction offers a reaction event to any waiting session.
func (e *Events) PushReaction(ev paginator.ReactionEvent) {
	select {
	case e.reactions <- ev:
	default:
		logrus.WithFields(logrus.Fields{
			"function": "PushReaction",
			"glyph":    ev.Glyph,
		}).Warn("Reaction buffer full, event dropped")
	}
}

// PushMessage offers a sent-message event to any waiting session.
func (e *Events) PushMessage(msg paginator.Message) {
	select {
	case e.messages <- msg:
	default:
		logrus.WithFields(logrus.Fields{
			"function":   "PushMessage",
			"message_id": msg.ID,
		}).Warn("Message buffer full, event dropped")
	}
}

// AwaitReaction returns the first pushed reaction the filter accepts.
// Rejected events are discarded. Returns paginator.ErrTimeout when the
// bound elapses, or ctx.Err() when the context ends first.
func (e *Events) AwaitReaction(ctx context.Context, accept func(paginator.ReactionEvent) bool, timeout time.Duration) (*paginator.ReactionEvent, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case ev := <-e.reactions:
			if accept == nil || accept(ev) {
				return &ev, nil
			}
		case <-timer.C:
			return nil, paginator.ErrTimeout
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// AwaitMessage returns the first pushed message the filter accepts.
// Rejected events are discarded. Returns paginator.ErrTimeout when the
// bound elapses, or ctx.Err() when the context ends first.
func (e *Events) AwaitMessage(ctx context.Context, accept func(*paginator.Message) bool, timeout time.Duration) (*paginator.Message, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case msg := <-e.messages:
			if accept == nil || accept(&msg) {
				return &msg, nil
			}
		case <-timer.C:
			return nil, paginator.ErrTimeout
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
