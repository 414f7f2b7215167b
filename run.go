package paginator

import (
	"context"

	"github.com/sirupsen/logrus"
)

// reactionFilter accepts reactions from the invoking user, on the display
// message, with a glyph present in the control table. Everything else is
// dropped, including glyphs hidden in the two-page case that a user somehow
// reacts with anyway.
func (s *Session) reactionFilter(ev ReactionEvent) bool {
	if ev.UserID != s.userID {
		return false
	}
	display := s.displayMessage()
	if display == nil || ev.MessageID != display.ID {
		return false
	}
	return s.controlFor(ev.Glyph) != nil
}

// controlFor returns the control bound to glyph, or nil for an unmapped
// glyph. The control table is immutable after construction.
func (s *Session) controlFor(glyph string) *Control {
	for i := range s.controls {
		if s.controls[i].Glyph == glyph {
			return &s.controls[i]
		}
	}
	return nil
}

// Run displays the first page and drives the control loop until the session
// closes or the invoker goes quiet for the configured timeout. Context
// cancellation takes the same path as the inactivity timeout: reactions are
// cleared and the session closes without deleting its message.
//
// Run returns an error only when the display message itself cannot be sent
// or edited; reaction and cleanup failures never abort the session.
func (s *Session) Run(ctx context.Context) error {
	if s.State() == StateNew {
		if err := s.ShowPage(ctx, 0); err != nil {
			return err
		}
	}

	for s.Running() {
		ev, err := s.events.AwaitReaction(ctx, s.reactionFilter, s.timeout)
		if err != nil {
			s.expire(ctx)
			break
		}

		// Removing the trigger reaction keeps the glyph usable as a button;
		// a failure only costs the user an extra tap.
		_ = s.sink.RemoveReaction(ctx, s.displayMessage(), ev.Glyph, ev.UserID)

		if err := s.dispatch(ctx, ev.Glyph); err != nil {
			return err
		}
	}

	return nil
}

// expire handles the inactivity path: reactions are cleared so the message
// stops looking interactive, then the session closes without deleting it.
func (s *Session) expire(ctx context.Context) {
	if display := s.displayMessage(); display != nil {
		_ = s.sink.ClearReactions(ctx, display) // best effort
	}
	s.Close(ctx, false)

	logrus.WithFields(logrus.Fields{
		"function":   "Run",
		"session_id": s.id,
	}).Info("Pagination session timed out")
}

// dispatch invokes the navigation action bound to glyph. The jump and help
// actions suspend on their own waits before control returns here.
func (s *Session) dispatch(ctx context.Context, glyph string) error {
	ctrl := s.controlFor(glyph)
	if ctrl == nil {
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"function":   "dispatch",
		"session_id": s.id,
		"glyph":      glyph,
		"cursor":     s.Cursor(),
	}).Debug("Dispatching control action")

	switch ctrl.Action {
	case ActionFirst:
		return s.FirstPage(ctx)
	case ActionPrevious:
		return s.PreviousPage(ctx)
	case ActionClose:
		s.Close(ctx, true)
		return nil
	case ActionNext:
		return s.NextPage(ctx)
	case ActionLast:
		return s.LastPage(ctx)
	case ActionJump:
		return s.askForPage(ctx)
	case ActionHelp:
		return s.showHelpPage(ctx)
	}
	return nil
}
