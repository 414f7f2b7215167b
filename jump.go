package paginator

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// jumpFilter accepts plain-text replies from the invoking user in the
// session channel whose content is entirely decimal digits.
func (s *Session) jumpFilter(m *Message) bool {
	if m == nil {
		return false
	}
	return m.AuthorID == s.userID && m.ChannelID == s.channelID && isDigits(m.Content)
}

// isDigits reports whether text is non-empty and all ASCII decimal digits.
func isDigits(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// askForPage runs the page-jump sub-dialog: prompt for a destination page
// number, wait up to the jump timeout for a digit-only reply, navigate when
// it names a real page, then sweep the whole exchange from the channel after
// a short grace delay. Nothing in here may fail the outer loop; every
// transport error is logged and dropped.
func (s *Session) askForPage(ctx context.Context) error {
	var sweep []*Message

	prompt, err := s.sink.SendText(ctx, s.channelID, "What page do you want to go to?")
	if err != nil {
		logrus.WithError(err).WithField("session_id", s.id).
			Warn("Failed to send page-jump prompt")
	} else {
		sweep = append(sweep, prompt)
	}

	reply, err := s.events.AwaitMessage(ctx, s.jumpFilter, s.jumpTimeout)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function":   "askForPage",
			"session_id": s.id,
		}).Debug("Page-jump dialog timed out")

		if notice, nerr := s.sink.SendText(ctx, s.channelID, "Took too long."); nerr == nil {
			sweep = append(sweep, notice)
		}
	} else {
		sweep = append(sweep, reply)

		// Atoi only fails here on overflow-sized digit strings; those fall
		// through to the invalid-page notice like any other bad target.
		target, perr := strconv.Atoi(reply.Content)
		total := s.PageCount()
		if perr == nil && target >= 1 && target <= total {
			// One-based user input, zero-based cursor.
			if serr := s.ShowPage(ctx, target-1); serr != nil {
				logrus.WithError(serr).WithField("session_id", s.id).
					Warn("Failed to show page-jump target")
			}
		} else {
			text := fmt.Sprintf("Invalid page given. (%d/%d)", target, total)
			if notice, nerr := s.sink.SendText(ctx, s.channelID, text); nerr == nil {
				sweep = append(sweep, notice)
			}
		}
	}

	// Grace delay so the user sees the outcome before the exchange vanishes.
	select {
	case <-time.After(s.cleanupDelay):
	case <-ctx.Done():
	}

	if len(sweep) > 0 {
		_ = s.sink.DeleteMessages(ctx, s.channelID, sweep) // best effort
	}
	return nil
}
