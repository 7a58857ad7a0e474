// Package notify posts match summaries to chat channels.
package notify

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/hslog/hslog-go/pkg/hslog/event"
)

// messageSender is the part of *discordgo.Session used to post messages.
type messageSender interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Discord posts events to a Discord channel through the REST API.
type Discord struct {
	sender    messageSender
	channelID string
	allow     func(eventType string) bool
}

// NewDiscord creates a bot session for token. allow selects which event
// types are posted; nil posts match start and match over only.
func NewDiscord(token, channelID string, allow func(eventType string) bool) (*Discord, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discordgo session: %w", err)
	}
	return newDiscord(session, channelID, allow), nil
}

func newDiscord(sender messageSender, channelID string, allow func(string) bool) *Discord {
	if allow == nil {
		allow = func(t string) bool {
			return t == string(event.MatchStart) || t == string(event.MatchOver)
		}
	}
	return &Discord{sender: sender, channelID: channelID, allow: allow}
}

// Name identifies the channel in logs.
func (d *Discord) Name() string { return "discord" }

// Notify posts ev if its type is allowed and it has a text rendering.
func (d *Discord) Notify(ev event.Event) error {
	if !d.allow(string(ev.Type)) {
		return nil
	}
	msg := FormatEvent(ev)
	if msg == "" {
		return nil
	}
	if _, err := d.sender.ChannelMessageSend(d.channelID, msg); err != nil {
		return fmt.Errorf("send to Discord: %w", err)
	}
	return nil
}

// FormatEvent renders ev as a short chat message. Events without a
// rendering return "".
func FormatEvent(ev event.Event) string {
	switch ev.Type {
	case event.MatchStart:
		if len(ev.Players) != 2 {
			return ""
		}
		return fmt.Sprintf(":crossed_swords: Match started: %s vs %s",
			describe(ev.Players[0]), describe(ev.Players[1]))
	case event.MatchOver:
		parts := make([]string, 0, len(ev.Players))
		for _, p := range ev.Players {
			parts = append(parts, fmt.Sprintf("%s %s", describe(p), outcome(p.Status)))
		}
		return ":checkered_flag: Match over: " + strings.Join(parts, ", ")
	case event.Action:
		if ev.Action == nil {
			return ""
		}
		a := ev.Action
		return fmt.Sprintf(":flower_playing_cards: %s (%s) %s -> %s", a.Name, a.CardID, zone(a.FromTeam, a.FromZone), zone(a.ToTeam, a.ToZone))
	}
	return ""
}

func describe(p event.Player) string {
	name := p.Name
	if name == "" {
		name = fmt.Sprintf("Player %d", p.Team)
	}
	if p.Hero == "" {
		return "**" + name + "**"
	}
	return fmt.Sprintf("**%s** (%s, %s)", name, p.Hero, p.Class)
}

func outcome(s event.Status) string {
	switch s {
	case event.Won:
		return "won"
	case event.Lost:
		return "lost"
	case event.Tied:
		return "tied"
	}
	return "?"
}

func zone(team event.Side, name string) string {
	switch {
	case team == "" && name == "":
		return "nowhere"
	case team == "":
		return name
	case name == "":
		return string(team)
	}
	return string(team) + " " + name
}
