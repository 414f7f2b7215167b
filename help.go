package paginator

import (
	"context"
	"fmt"
	"strings"

	"github.com/opd-ai/paginator/page"
)

// showHelpPage edits the display message with an ephemeral control
// reference. The help document is never appended to the page buffer and the
// cursor does not move; the next navigation action replaces the help content
// with a real page.
func (s *Session) showHelpPage(ctx context.Context) error {
	doc := page.NewDocument()
	doc.Title = "Pagination Session - Help"
	doc.Description = "React with each of the following reactions to navigate."
	doc.Color = s.helpColor

	var lines strings.Builder
	for _, c := range s.controls {
		fmt.Fprintf(&lines, "%s - %s\n", c.Glyph, c.Description)
	}
	doc.AddField("Reactions?", lines.String())

	s.mu.Lock()
	if s.pageNumbers {
		doc.SetFooter(fmt.Sprintf("Page %d/%d", s.cursor+1, len(s.pages)))
	}
	display := s.display
	s.mu.Unlock()

	if err := s.sink.Edit(ctx, display, doc); err != nil {
		return fmt.Errorf("edit help page: %w", err)
	}
	return nil
}
