package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/opd-ai/paginator"
	"github.com/opd-ai/paginator/transport"
)

// Events bridges Discord gateway dispatches into a channel-fed event source.
// It embeds transport.Events, so it satisfies paginator.EventSource and can
// also be fed manually in tests.
type Events struct {
	*transport.Events
}

// NewEvents registers reaction-add and message-create handlers on the
// discordgo session and returns the bridged source. Register before calling
// Open so no early dispatches are missed.
func NewEvents(s *discordgo.Session, buffer int) *Events {
	e := &Events{Events: transport.NewEvents(buffer)}

	s.AddHandler(func(_ *discordgo.Session, r *discordgo.MessageReactionAdd) {
		e.PushReaction(paginator.ReactionEvent{
			MessageID: r.MessageID,
			UserID:    r.UserID,
			Glyph:     r.Emoji.Name,
		})
	})

	s.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil {
			return
		}
		e.PushMessage(paginator.Message{
			ID:        m.ID,
			ChannelID: m.ChannelID,
			AuthorID:  m.Author.ID,
			Content:   m.Content,
		})
	})

	return e
}
