package paginator

import (
	"context"
	"errors"
	"time"

	"github.com/opd-ai/paginator/page"
)

// ErrTimeout is returned by an EventSource wait when no qualifying event
// arrives within the bound.
var ErrTimeout = errors.New("paginator: wait timed out")

// ErrInvalidPageType indicates AddPage was called with something other than
// a *page.Document.
var ErrInvalidPageType = errors.New("paginator: page must be a *page.Document")

// Message is the opaque handle of a message a sink created or observed.
// IDs are host-assigned strings; the session never interprets them.
type Message struct {
	ID        string
	ChannelID string
	AuthorID  string
	Content   string
}

// ReactionEvent describes a reaction a user added to a message.
type ReactionEvent struct {
	MessageID string
	UserID    string
	Glyph     string
}

// MessageSink is the capability a session uses to create and mutate
// displayed content. All operations may fail; the session surfaces failures
// only from Send and Edit and treats every cosmetic or cleanup operation
// (reactions, deletions) as best effort.
type MessageSink interface {
	// Send posts a rich document to the channel and returns its handle.
	Send(ctx context.Context, channelID string, doc *page.Document) (*Message, error)

	// SendText posts a plain-text message to the channel.
	SendText(ctx context.Context, channelID, text string) (*Message, error)

	// Edit replaces the content of an existing message in place.
	Edit(ctx context.Context, msg *Message, doc *page.Document) error

	// Delete removes a single message.
	Delete(ctx context.Context, msg *Message) error

	// AddReaction attaches a glyph reaction to a message.
	AddReaction(ctx context.Context, msg *Message, glyph string) error

	// RemoveReaction removes one user's glyph reaction from a message.
	RemoveReaction(ctx context.Context, msg *Message, glyph, userID string) error

	// ClearReactions removes every reaction from a message.
	ClearReactions(ctx context.Context, msg *Message) error

	// DeleteMessages removes a batch of messages from a channel.
	DeleteMessages(ctx context.Context, channelID string, msgs []*Message) error
}

// EventSource is the capability a session waits on for user actions. Events
// rejected by the accept filter are discarded, not queued for later waits.
// Both waits return ErrTimeout when the bound elapses, or ctx.Err() when the
// context is cancelled first.
type EventSource interface {
	// AwaitReaction blocks until a reaction event passes the filter.
	AwaitReaction(ctx context.Context, accept func(ReactionEvent) bool, timeout time.Duration) (*ReactionEvent, error)

	// AwaitMessage blocks until a sent message passes the filter.
	AwaitMessage(ctx context.Context, accept func(*Message) bool, timeout time.Duration) (*Message, error)
}
