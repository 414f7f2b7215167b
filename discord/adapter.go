// Package discord adapts the paginator's message sink and event source
// capabilities onto a live Discord connection using
// github.com/bwmarrin/discordgo.
//
// Sink maps sink operations onto Discord REST calls. Events bridges gateway
// dispatches into a channel-fed event source; register it with NewEvents
// before opening the gateway connection, and make sure the session's
// identify intents include guild messages, guild message reactions, and
// message content, or the gateway never delivers the events the paginator
// waits on.
//
// Example:
//
//	dg, err := discordgo.New("Bot " + token)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dg.Identify.Intents = discordgo.IntentGuildMessages |
//	    discordgo.IntentGuildMessageReactions |
//	    discordgo.IntentMessageContent
//
//	events := discord.NewEvents(dg, 16)
//	if err := dg.Open(); err != nil {
//	    log.Fatal(err)
//	}
//	defer dg.Close()
//
//	session := paginator.New(discord.NewSink(dg), events, channelID, userID, nil)
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/opd-ai/paginator"
	"github.com/opd-ai/paginator/page"
)

// Sink implements paginator.MessageSink over the Discord REST API.
type Sink struct {
	session *discordgo.Session
}

// NewSink wraps an established discordgo session.
func NewSink(s *discordgo.Session) *Sink {
	return &Sink{session: s}
}

// embedFromDocument converts a page document into a Discord embed.
func embedFromDocument(doc *page.Document) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       doc.Title,
		Description: doc.Description,
		Color:       int(doc.Color),
	}
	for _, f := range doc.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}
	if doc.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: doc.Footer}
	}
	return embed
}

// Send posts doc as an embed message in the channel.
func (s *Sink) Send(ctx context.Context, channelID string, doc *page.Document) (*paginator.Message, error) {
	msg, err := s.session.ChannelMessageSendEmbed(channelID, embedFromDocument(doc), discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("send embed: %w", err)
	}
	return &paginator.Message{ID: msg.ID, ChannelID: msg.ChannelID}, nil
}

// SendText posts a plain-text message in the channel.
func (s *Sink) SendText(ctx context.Context, channelID, text string) (*paginator.Message, error) {
	msg, err := s.session.ChannelMessageSend(channelID, text, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("send text: %w", err)
	}
	return &paginator.Message{ID: msg.ID, ChannelID: msg.ChannelID, Content: text}, nil
}

// Edit replaces the embed content of an existing message.
func (s *Sink) Edit(ctx context.Context, msg *paginator.Message, doc *page.Document) error {
	if _, err := s.session.ChannelMessageEditEmbed(msg.ChannelID, msg.ID, embedFromDocument(doc), discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("edit embed: %w", err)
	}
	return nil
}

// Delete removes a single message.
func (s *Sink) Delete(ctx context.Context, msg *paginator.Message) error {
	if err := s.session.ChannelMessageDelete(msg.ChannelID, msg.ID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	return nil
}

// AddReaction attaches a unicode glyph reaction to a message.
func (s *Sink) AddReaction(ctx context.Context, msg *paginator.Message, glyph string) error {
	if err := s.session.MessageReactionAdd(msg.ChannelID, msg.ID, glyph, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("add reaction: %w", err)
	}
	return nil
}

// RemoveReaction removes one user's glyph reaction from a message.
func (s *Sink) RemoveReaction(ctx context.Context, msg *paginator.Message, glyph, userID string) error {
	if err := s.session.MessageReactionRemove(msg.ChannelID, msg.ID, glyph, userID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("remove reaction: %w", err)
	}
	return nil
}

// ClearReactions removes every reaction from a message.
func (s *Sink) ClearReactions(ctx context.Context, msg *paginator.Message) error {
	if err := s.session.MessageReactionsRemoveAll(msg.ChannelID, msg.ID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("clear reactions: %w", err)
	}
	return nil
}

// DeleteMessages bulk-deletes a batch of messages from the channel.
func (s *Sink) DeleteMessages(ctx context.Context, channelID string, msgs []*paginator.Message) error {
	ids := make([]string, 0, len(msgs))
	for _, m := range msgs {
		ids = append(ids, m.ID)
	}
	if err := s.session.ChannelMessagesBulkDelete(channelID, ids, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("bulk delete: %w", err)
	}
	return nil
}
