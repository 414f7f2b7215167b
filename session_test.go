package paginator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/opd-ai/paginator/page"
)

func TestAddPage(t *testing.T) {
	testCases := []struct {
		name    string
		doc     any
		wantErr bool
	}{
		{"Document pointer", page.NewDocument(), false},
		{"String", "not a page", true},
		{"Nil", nil, true},
		{"Typed nil document", (*page.Document)(nil), true},
		{"Document value", *page.NewDocument(), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, _, _ := newTestSession(0, nil)
			err := s.AddPage(tc.doc)

			if tc.wantErr {
				if !errors.Is(err, ErrInvalidPageType) {
					t.Errorf("Expected ErrInvalidPageType, got %v", err)
				}
				if s.PageCount() != 0 {
					t.Errorf("Rejected page must not be buffered, count %d", s.PageCount())
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if s.PageCount() != 1 {
					t.Errorf("Expected 1 page, got %d", s.PageCount())
				}
			}
		})
	}
}

func TestNewAllocatesFreshPageBuffer(t *testing.T) {
	first, _, _ := newTestSession(0, nil)
	second, _, _ := newTestSession(0, nil)

	if err := first.AddPage(page.NewDocument()); err != nil {
		t.Fatalf("AddPage failed: %v", err)
	}
	if second.PageCount() != 0 {
		t.Errorf("Page buffer leaked between sessions: %d pages", second.PageCount())
	}
}

func TestShowPageInvalidIndexIsNoOp(t *testing.T) {
	s, sink, _ := newTestSession(3, nil)
	ctx := context.Background()

	for _, i := range []int{-1, 3, 42} {
		if err := s.ShowPage(ctx, i); err != nil {
			t.Errorf("ShowPage(%d) returned error: %v", i, err)
		}
	}

	if s.Cursor() != 0 {
		t.Errorf("Cursor moved to %d on invalid index", s.Cursor())
	}
	if len(sink.sent) != 0 {
		t.Errorf("Invalid index must not send, got %d messages", len(sink.sent))
	}
	if s.State() != StateNew {
		t.Errorf("Expected StateNew, got %v", s.State())
	}
}

func TestShowPageFirstRenderAttachesControls(t *testing.T) {
	s, sink, _ := newTestSession(3, nil)

	if err := s.ShowPage(context.Background(), 0); err != nil {
		t.Fatalf("ShowPage failed: %v", err)
	}

	if !s.Running() {
		t.Error("Session should be running after first render")
	}
	if len(sink.sent) != 1 {
		t.Fatalf("Expected exactly one display message, got %d", len(sink.sent))
	}

	want := []string{"⏮", "◀", "⏹", "▶", "⏭", "🔢", "🤔"}
	got := sink.reactions[sink.sent[0].ID]
	if len(got) != len(want) {
		t.Fatalf("Expected %d control reactions, got %v", len(want), got)
	}
	for i, glyph := range want {
		if got[i] != glyph {
			t.Errorf("Reaction %d: expected %q, got %q", i, glyph, got[i])
		}
	}

	if footer := sink.history[sink.sent[0].ID][0].Footer; footer != "Page 1/3" {
		t.Errorf("Expected footer %q, got %q", "Page 1/3", footer)
	}
}

func TestShowPageTwoPagesOmitsFirstLastGlyphs(t *testing.T) {
	s, sink, _ := newTestSession(2, nil)

	if err := s.ShowPage(context.Background(), 0); err != nil {
		t.Fatalf("ShowPage failed: %v", err)
	}

	want := []string{"◀", "⏹", "▶", "🔢", "🤔"}
	got := sink.reactions[sink.sent[0].ID]
	if len(got) != len(want) {
		t.Fatalf("Expected reactions %v, got %v", want, got)
	}
	for i, glyph := range want {
		if got[i] != glyph {
			t.Errorf("Reaction %d: expected %q, got %q", i, glyph, got[i])
		}
	}
}

func TestShowPageEditsInPlace(t *testing.T) {
	s, sink, _ := newTestSession(3, nil)
	ctx := context.Background()

	if err := s.ShowPage(ctx, 0); err != nil {
		t.Fatalf("first ShowPage failed: %v", err)
	}
	if err := s.ShowPage(ctx, 2); err != nil {
		t.Fatalf("second ShowPage failed: %v", err)
	}

	if len(sink.sent) != 1 {
		t.Fatalf("Page changes must edit, not resend: %d messages", len(sink.sent))
	}

	history := sink.history[sink.sent[0].ID]
	if len(history) != 2 {
		t.Fatalf("Expected send plus one edit, got %d revisions", len(history))
	}
	if history[1].Title != "Page C" {
		t.Errorf("Expected edited content %q, got %q", "Page C", history[1].Title)
	}
	if history[1].Footer != "Page 3/3" {
		t.Errorf("Expected footer %q, got %q", "Page 3/3", history[1].Footer)
	}
	if s.Cursor() != 2 {
		t.Errorf("Expected cursor 2, got %d", s.Cursor())
	}
}

func TestNavigationClampsAtBounds(t *testing.T) {
	s, sink, _ := newTestSession(3, nil)
	ctx := context.Background()

	if err := s.ShowPage(ctx, 0); err != nil {
		t.Fatalf("ShowPage failed: %v", err)
	}

	if err := s.PreviousPage(ctx); err != nil {
		t.Fatalf("PreviousPage failed: %v", err)
	}
	if s.Cursor() != 0 {
		t.Errorf("PreviousPage at first page moved cursor to %d", s.Cursor())
	}

	if err := s.LastPage(ctx); err != nil {
		t.Fatalf("LastPage failed: %v", err)
	}
	if err := s.NextPage(ctx); err != nil {
		t.Fatalf("NextPage failed: %v", err)
	}
	if s.Cursor() != 2 {
		t.Errorf("NextPage at last page moved cursor to %d", s.Cursor())
	}

	// Send plus the single LastPage edit; the clamped calls changed nothing.
	if got := len(sink.history[sink.sent[0].ID]); got != 2 {
		t.Errorf("Clamped navigation must not edit, got %d revisions", got)
	}

	if err := s.FirstPage(ctx); err != nil {
		t.Fatalf("FirstPage failed: %v", err)
	}
	if s.Cursor() != 0 {
		t.Errorf("FirstPage left cursor at %d", s.Cursor())
	}
}

func TestPageNumbersDisabled(t *testing.T) {
	opts := NewOptions()
	opts.PageNumbers = false
	s, sink, _ := newTestSession(3, opts)

	if err := s.ShowPage(context.Background(), 1); err != nil {
		t.Fatalf("ShowPage failed: %v", err)
	}
	if footer := sink.history[sink.sent[0].ID][0].Footer; footer != "" {
		t.Errorf("Expected no footer, got %q", footer)
	}
}

func TestCloseDeletesDisplayOnce(t *testing.T) {
	s, sink, _ := newTestSession(3, nil)
	ctx := context.Background()

	if err := s.ShowPage(ctx, 0); err != nil {
		t.Fatalf("ShowPage failed: %v", err)
	}

	s.Close(ctx, true)
	s.Close(ctx, true)

	if s.Running() {
		t.Error("Session still running after Close")
	}
	if s.State() != StateClosed {
		t.Errorf("Expected StateClosed, got %v", s.State())
	}
	if got := sink.deleted[sink.sent[0].ID]; got != 1 {
		t.Errorf("Display deletion requested %d times, expected 1", got)
	}
}

func TestCloseWithoutDelete(t *testing.T) {
	s, sink, _ := newTestSession(3, nil)
	ctx := context.Background()

	if err := s.ShowPage(ctx, 0); err != nil {
		t.Fatalf("ShowPage failed: %v", err)
	}
	s.Close(ctx, false)

	if got := sink.deleted[sink.sent[0].ID]; got != 0 {
		t.Errorf("Close(false) must not delete, got %d deletions", got)
	}
	if s.State() != StateClosed {
		t.Errorf("Expected StateClosed, got %v", s.State())
	}
}

func TestCloseSwallowsDeleteFailure(t *testing.T) {
	s, sink, _ := newTestSession(3, nil)
	ctx := context.Background()

	if err := s.ShowPage(ctx, 0); err != nil {
		t.Fatalf("ShowPage failed: %v", err)
	}
	sink.deleteErr = errors.New("gone already")

	s.Close(ctx, true)

	if s.State() != StateClosed {
		t.Errorf("Delete failure must not block closing, state %v", s.State())
	}
}

func TestShowHelpPage(t *testing.T) {
	s, sink, _ := newTestSession(3, nil)
	ctx := context.Background()

	if err := s.ShowPage(ctx, 1); err != nil {
		t.Fatalf("ShowPage failed: %v", err)
	}
	if err := s.showHelpPage(ctx); err != nil {
		t.Fatalf("showHelpPage failed: %v", err)
	}

	history := sink.history[sink.sent[0].ID]
	help := history[len(history)-1]

	if help.Title != "Pagination Session - Help" {
		t.Errorf("Unexpected help title %q", help.Title)
	}
	if help.Color != DefaultHelpColor {
		t.Errorf("Expected help color %#x, got %#x", DefaultHelpColor, help.Color)
	}
	if help.Footer != "Page 2/3" {
		t.Errorf("Expected footer %q, got %q", "Page 2/3", help.Footer)
	}
	if len(help.Fields) != 1 || help.Fields[0].Name != "Reactions?" {
		t.Fatalf("Expected a single Reactions? field, got %+v", help.Fields)
	}
	for _, c := range defaultControls() {
		if !strings.Contains(help.Fields[0].Value, c.Glyph) {
			t.Errorf("Help text missing glyph %q", c.Glyph)
		}
	}

	if s.Cursor() != 1 {
		t.Errorf("Help page moved cursor to %d", s.Cursor())
	}
	if s.PageCount() != 3 {
		t.Errorf("Help page altered page buffer, count %d", s.PageCount())
	}
}
