package transport

import (
	"context"
	"fmt"
	"sync"

	"github.com/opd-ai/paginator"
	"github.com/opd-ai/paginator/page"
)

// Sink is an in-memory paginator.MessageSink. It assigns sequential message
// IDs and records every operation so callers can assert on what a session
// displayed. All methods are safe for concurrent use.
type Sink struct {
	mu     sync.Mutex
	nextID int

	sent     []*paginator.Message
	history  map[string][]*page.Document
	texts    map[string]string
	deleted  map[string]int
	glyphs   map[string][]string
	cleared  map[string]int
	bulk     [][]string
	failWith error
}

// NewSink creates an empty in-memory sink.
func NewSink() *Sink {
	return &Sink{
		history: make(map[string][]*page.Document),
		texts:   make(map[string]string),
		deleted: make(map[string]int),
		glyphs:  make(map[string][]string),
		cleared: make(map[string]int),
	}
}

// SetError makes every subsequent operation fail with err. Pass nil to
// restore normal behavior. Used to exercise a session's best-effort paths.
func (s *Sink) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}

func (s *Sink) newMessageLocked(channelID string) *paginator.Message {
	s.nextID++
	msg := &paginator.Message{
		ID:        fmt.Sprintf("m%d", s.nextID),
		ChannelID: channelID,
	}
	s.sent = append(s.sent, msg)
	return msg
}

// Send records a rich document message and returns its handle. The document
// is cloned so later footer stamps do not rewrite the recorded history.
func (s *Sink) Send(_ context.Context, channelID string, doc *page.Document) (*paginator.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	msg := s.newMessageLocked(channelID)
	s.history[msg.ID] = append(s.history[msg.ID], doc.Clone())
	return msg, nil
}

// SendText records a plain-text message and returns its handle.
func (s *Sink) SendText(_ context.Context, channelID, text string) (*paginator.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	msg := s.newMessageLocked(channelID)
	msg.Content = text
	s.texts[msg.ID] = text
	return msg, nil
}

// Edit appends a cloned snapshot of doc to the message's content history.
func (s *Sink) Edit(_ context.Context, msg *paginator.Message, doc *page.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	s.history[msg.ID] = append(s.history[msg.ID], doc.Clone())
	return nil
}

// Delete records a single-message deletion.
func (s *Sink) Delete(_ context.Context, msg *paginator.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	s.deleted[msg.ID]++
	return nil
}

// AddReaction records a glyph attached to a message.
func (s *Sink) AddReaction(_ context.Context, msg *paginator.Message, glyph string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	s.glyphs[msg.ID] = append(s.glyphs[msg.ID], glyph)
	return nil
}

// RemoveReaction records removal of one user's glyph from a message.
func (s *Sink) RemoveReaction(_ context.Context, msg *paginator.Message, glyph, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	attached := s.glyphs[msg.ID]
	for i, g := range attached {
		if g == glyph {
			s.glyphs[msg.ID] = append(attached[:i:i], attached[i+1:]...)
			break
		}
	}
	return nil
}

// ClearReactions records removal of every reaction from a message.
func (s *Sink) ClearReactions(_ context.Context, msg *paginator.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	s.cleared[msg.ID]++
	s.glyphs[msg.ID] = nil
	return nil
}

// DeleteMessages records a batch deletion of message IDs.
func (s *Sink) DeleteMessages(_ context.Context, _ string, msgs []*paginator.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	ids := make([]string, 0, len(msgs))
	for _, m := range msgs {
		ids = append(ids, m.ID)
		s.deleted[m.ID]++
	}
	s.bulk = append(s.bulk, ids)
	return nil
}

// SentMessages returns the handles of every message created, in order.
func (s *Sink) SentMessages() []*paginator.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*paginator.Message(nil), s.sent...)
}

// History returns the successive document contents of a message, the send
// followed by each edit.
func (s *Sink) History(messageID string) []*page.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*page.Document(nil), s.history[messageID]...)
}

// TextOf returns the recorded plain-text content of a message.
func (s *Sink) TextOf(messageID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.texts[messageID]
}

// ReactionsOn returns the glyphs currently attached to a message, in the
// order they were added.
func (s *Sink) ReactionsOn(messageID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.glyphs[messageID]...)
}

// DeleteCount returns how many times deletion of a message was requested,
// counting both single and batch deletes.
func (s *Sink) DeleteCount(messageID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleted[messageID]
}

// ClearCount returns how many times a message's reactions were cleared.
func (s *Sink) ClearCount(messageID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cleared[messageID]
}

// BulkDeletes returns each recorded batch deletion as a slice of message IDs.
func (s *Sink) BulkDeletes() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]string, len(s.bulk))
	for i, ids := range s.bulk {
		out[i] = append([]string(nil), ids...)
	}
	return out
}
