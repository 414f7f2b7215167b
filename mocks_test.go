package paginator

import (
	"context"
	"fmt"
	"time"

	"github.com/opd-ai/paginator/page"
)

// mockSink records every sink operation. Individual operations can be made
// to fail to exercise the session's best-effort paths.
type mockSink struct {
	nextID  int
	sent    []*Message
	history map[string][]*page.Document
	texts   []string

	reactions map[string][]string
	removed   []string
	cleared   int
	deleted   map[string]int
	bulk      [][]string

	sendErr   error
	textErr   error
	editErr   error
	deleteErr error
	reactErr  error
	removeErr error
	clearErr  error
	bulkErr   error
}

func newMockSink() *mockSink {
	return &mockSink{
		history:   make(map[string][]*page.Document),
		reactions: make(map[string][]string),
		deleted:   make(map[string]int),
	}
}

func (m *mockSink) newMessage(channelID string) *Message {
	m.nextID++
	msg := &Message{ID: fmt.Sprintf("m%d", m.nextID), ChannelID: channelID}
	m.sent = append(m.sent, msg)
	return msg
}

func (m *mockSink) Send(_ context.Context, channelID string, doc *page.Document) (*Message, error) {
	if m.sendErr != nil {
		return nil, m.sendErr
	}
	msg := m.newMessage(channelID)
	m.history[msg.ID] = append(m.history[msg.ID], doc.Clone())
	return msg, nil
}

func (m *mockSink) SendText(_ context.Context, channelID, text string) (*Message, error) {
	if m.textErr != nil {
		return nil, m.textErr
	}
	msg := m.newMessage(channelID)
	msg.Content = text
	m.texts = append(m.texts, text)
	return msg, nil
}

func (m *mockSink) Edit(_ context.Context, msg *Message, doc *page.Document) error {
	if m.editErr != nil {
		return m.editErr
	}
	m.history[msg.ID] = append(m.history[msg.ID], doc.Clone())
	return nil
}

func (m *mockSink) Delete(_ context.Context, msg *Message) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted[msg.ID]++
	return nil
}

func (m *mockSink) AddReaction(_ context.Context, msg *Message, glyph string) error {
	if m.reactErr != nil {
		return m.reactErr
	}
	m.reactions[msg.ID] = append(m.reactions[msg.ID], glyph)
	return nil
}

func (m *mockSink) RemoveReaction(_ context.Context, _ *Message, glyph, userID string) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	m.removed = append(m.removed, glyph+":"+userID)
	return nil
}

func (m *mockSink) ClearReactions(_ context.Context, _ *Message) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.cleared++
	return nil
}

func (m *mockSink) DeleteMessages(_ context.Context, _ string, msgs []*Message) error {
	if m.bulkErr != nil {
		return m.bulkErr
	}
	ids := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		ids = append(ids, msg.ID)
		m.deleted[msg.ID]++
	}
	m.bulk = append(m.bulk, ids)
	return nil
}

// mockEvents replays scripted events. Waits pop from the front, discard
// what the filter rejects, and report a timeout once the script runs dry,
// which makes session runs fully deterministic with no real waiting.
type mockEvents struct {
	reactions []ReactionEvent
	messages  []Message
}

func (m *mockEvents) AwaitReaction(_ context.Context, accept func(ReactionEvent) bool, _ time.Duration) (*ReactionEvent, error) {
	for len(m.reactions) > 0 {
		ev := m.reactions[0]
		m.reactions = m.reactions[1:]
		if accept == nil || accept(ev) {
			return &ev, nil
		}
	}
	return nil, ErrTimeout
}

func (m *mockEvents) AwaitMessage(_ context.Context, accept func(*Message) bool, _ time.Duration) (*Message, error) {
	for len(m.messages) > 0 {
		msg := m.messages[0]
		m.messages = m.messages[1:]
		if accept == nil || accept(&msg) {
			return &msg, nil
		}
	}
	return nil, ErrTimeout
}

// newTestSession builds a session over the mocks with pageCount pages
// titled "Page A", "Page B", ... and no cleanup delay.
func newTestSession(pageCount int, opts *Options) (*Session, *mockSink, *mockEvents) {
	sink := newMockSink()
	events := &mockEvents{}
	s := New(sink, events, "chan-1", "user-1", opts)
	s.cleanupDelay = 0

	for i := 0; i < pageCount; i++ {
		doc := page.NewDocument()
		doc.Title = fmt.Sprintf("Page %c", 'A'+i)
		if err := s.AddPage(doc); err != nil {
			panic(err)
		}
	}
	return s, sink, events
}
