package paginator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/paginator/page"
)

// State represents the lifecycle state of a Session.
type State uint8

const (
	// StateNew means the session has not displayed anything yet.
	StateNew State = iota
	// StateRunning means the display message exists and is being edited in place.
	StateRunning
	// StateClosed means the session ended, either explicitly or by inactivity.
	StateClosed
)

// Action identifies the navigation action a control glyph triggers. The set
// is closed; dispatch is a switch over these values rather than stored
// callables, so every action is visible at the dispatch site.
type Action uint8

const (
	// ActionFirst jumps to the first page.
	ActionFirst Action = iota
	// ActionPrevious moves one page back.
	ActionPrevious
	// ActionClose ends the session and deletes the display message.
	ActionClose
	// ActionNext moves one page forward.
	ActionNext
	// ActionLast jumps to the last page.
	ActionLast
	// ActionJump asks the user to type a destination page number.
	ActionJump
	// ActionHelp shows the control reference page.
	ActionHelp
)

// Control binds a reaction glyph to its action. The order controls appear in
// a session's table is the order reactions are attached to the display
// message and the order they are listed on the help page.
type Control struct {
	Glyph       string
	Action      Action
	Description string
}

// defaultControls returns a fresh control table so one session's table can
// never alias another's.
func defaultControls() []Control {
	return []Control{
		{Glyph: "⏮", Action: ActionFirst, Description: "Go immediately to the first page."},
		{Glyph: "◀", Action: ActionPrevious, Description: "Go to the previous page."},
		{Glyph: "⏹", Action: ActionClose, Description: "Close the session and delete this message."},
		{Glyph: "▶", Action: ActionNext, Description: "Go to the next page."},
		{Glyph: "⏭", Action: ActionLast, Description: "Go immediately to the last page."},
		{Glyph: "🔢", Action: ActionJump, Description: "Type in the page number to jump to."},
		{Glyph: "🤔", Action: ActionHelp, Description: "Show this help page."},
	}
}

// Session interactively paginates a set of page documents inside one
// continuously edited chat message. A Session is created once per
// invocation, lives for exactly one Run call, and is not reusable.
type Session struct {
	id        string
	channelID string
	userID    string

	sink   MessageSink
	events EventSource

	pages    []*page.Document
	cursor   int
	controls []Control

	state   State
	display *Message

	timeout     time.Duration
	pageNumbers bool
	helpColor   uint32

	// Fixed by the dialog design; tests shrink them for determinism.
	jumpTimeout  time.Duration
	cleanupDelay time.Duration

	// Guards state, cursor, pages, and display. Run drives the session from
	// a single goroutine, but Close may be called from the host while Run
	// blocks on a wait.
	mu sync.Mutex
}

// New creates a session for the invoking user in the given channel. A nil
// opts uses NewOptions. Every session owns a freshly allocated page buffer;
// page slices are never shared between sessions.
func New(sink MessageSink, events EventSource, channelID, userID string, opts *Options) *Session {
	if opts == nil {
		opts = NewOptions()
	}

	s := &Session{
		id:           uuid.NewString(),
		channelID:    channelID,
		userID:       userID,
		sink:         sink,
		events:       events,
		pages:        make([]*page.Document, 0, 4),
		controls:     defaultControls(),
		state:        StateNew,
		timeout:      opts.Timeout,
		pageNumbers:  opts.PageNumbers,
		helpColor:    opts.HelpColor,
		jumpTimeout:  JumpTimeout,
		cleanupDelay: CleanupDelay,
	}
	if s.timeout <= 0 {
		s.timeout = DefaultTimeout
	}

	logrus.WithFields(logrus.Fields{
		"function":   "New",
		"session_id": s.id,
		"channel_id": channelID,
		"user_id":    userID,
		"timeout":    s.timeout,
	}).Info("Creating pagination session")

	return s
}

// AddPage appends a document to the page buffer. Only non-nil
// *page.Document values are accepted; anything else fails with
// ErrInvalidPageType. This is the session's sole surfaced validation error.
func (s *Session) AddPage(doc any) error {
	d, ok := doc.(*page.Document)
	if !ok || d == nil {
		return ErrInvalidPageType
	}

	s.mu.Lock()
	s.pages = append(s.pages, d)
	count := len(s.pages)
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"function":   "AddPage",
		"session_id": s.id,
		"pages":      count,
	}).Debug("Page added")

	return nil
}

// State returns the session's lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Running reports whether the session's display message exists and the
// event loop may still run.
func (s *Session) Running() bool {
	return s.State() == StateRunning
}

// Cursor returns the zero-based index of the currently displayed page.
func (s *Session) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// PageCount returns the number of pages in the buffer.
func (s *Session) PageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pages)
}

// displayMessage returns the handle of the message this session owns, or
// nil before the first render.
func (s *Session) displayMessage() *Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.display
}

// validIndexLocked reports whether i addresses a page. Callers hold s.mu.
func (s *Session) validIndexLocked(i int) bool {
	return i >= 0 && i < len(s.pages)
}

// ShowPage renders page i into the session's display message. Out-of-range
// indexes are silently ignored, so "previous" on the first page is a no-op
// rather than a wraparound or an error. The first successful call sends the
// display message, transitions the session to StateRunning, and attaches the
// control reactions; every later call edits the same message in place.
func (s *Session) ShowPage(ctx context.Context, i int) error {
	s.mu.Lock()
	if !s.validIndexLocked(i) {
		s.mu.Unlock()
		return nil
	}
	s.cursor = i
	doc := s.pages[i]
	if s.pageNumbers {
		doc.SetFooter(fmt.Sprintf("Page %d/%d", i+1, len(s.pages)))
	}
	running := s.state == StateRunning
	display := s.display
	twoPages := len(s.pages) == 2
	s.mu.Unlock()

	if running {
		if err := s.sink.Edit(ctx, display, doc); err != nil {
			return fmt.Errorf("edit display message: %w", err)
		}
		logrus.WithFields(logrus.Fields{
			"function":   "ShowPage",
			"session_id": s.id,
			"page":       i,
		}).Debug("Display message edited")
		return nil
	}

	msg, err := s.sink.Send(ctx, s.channelID, doc)
	if err != nil {
		return fmt.Errorf("send display message: %w", err)
	}

	s.mu.Lock()
	s.display = msg
	s.state = StateRunning
	s.mu.Unlock()

	for _, c := range s.controls {
		// First/last duplicate previous/next when there are exactly two pages.
		if twoPages && (c.Action == ActionFirst || c.Action == ActionLast) {
			continue
		}
		if err := s.sink.AddReaction(ctx, msg, c.Glyph); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"session_id": s.id,
				"glyph":      c.Glyph,
			}).Warn("Failed to attach control reaction")
		}
	}

	logrus.WithFields(logrus.Fields{
		"function":   "ShowPage",
		"session_id": s.id,
		"message_id": msg.ID,
		"pages":      s.PageCount(),
	}).Info("Pagination session started")

	return nil
}

// Close ends the session. With del set, the display message is deleted;
// the deletion is requested at most once across the session's lifetime, and
// a failure is discarded since the message may already be gone. Close is
// safe to call from the host while Run blocks.
func (s *Session) Close(ctx context.Context, del bool) {
	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		return
	}
	s.state = StateClosed
	display := s.display
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"function":   "Close",
		"session_id": s.id,
		"delete":     del,
	}).Info("Closing pagination session")

	if del && display != nil {
		if err := s.sink.Delete(ctx, display); err != nil {
			logrus.WithError(err).WithField("session_id", s.id).
				Warn("Failed to delete display message")
		}
	}
}
