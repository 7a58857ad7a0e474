// Package event defines the event and player types produced by the Hearthstone log parser.
//
// This package is separated from the main hslog package to avoid import cycles
// between pkg/hslog and the internal parser and roster packages.
package event

import (
	"sort"
	"strings"
	"time"
)

// Type represents the type of Hearthstone log event.
type Type string

const (
	// Action is a card moving between zones (draw, play, death, ...).
	Action Type = "action"

	// MatchStart is emitted once both players of a match are known.
	MatchStart Type = "match_start"

	// MatchOver is emitted once both players carry a final play state.
	MatchOver Type = "match_over"
)

// allTypes is the canonical list of all event types.
var allTypes = []Type{Action, MatchStart, MatchOver}

// TypeNames returns a sorted list of all valid event type names.
func TypeNames() []string {
	names := make([]string, len(allTypes))
	for i, t := range allTypes {
		names[i] = string(t)
	}
	sort.Strings(names)
	return names
}

var typeByName = func() map[string]Type {
	m := make(map[string]Type, len(allTypes))
	for _, t := range allTypes {
		m[string(t)] = t
	}
	return m
}()

// ParseType converts a string to Type if valid.
// It is case-insensitive and trims leading/trailing whitespace.
func ParseType(name string) (Type, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	t, ok := typeByName[name]
	return t, ok
}

// Side is the perspective-relative label of a player or zone.
type Side string

const (
	Friendly Side = "FRIENDLY"
	Opposing Side = "OPPOSING"
)

// Status is the final play state of a player.
type Status string

const (
	Won  Status = "WON"
	Lost Status = "LOST"
	Tied Status = "TIED"
)

// Player is a partially known participant of a match. Zero-valued fields are
// not yet known.
type Player struct {
	Team   int    `json:"team,omitempty"`
	Name   string `json:"name,omitempty"`
	Hero   string `json:"hero,omitempty"`
	Class  string `json:"class,omitempty"`
	Side   Side   `json:"side,omitempty"`
	Status Status `json:"status,omitempty"`
}

// HasTeam reports whether the team is known. Team 0 is never a real team: it
// marks a team that was not logged or did not parse.
func (p Player) HasTeam() bool {
	return p.Team != 0
}

// Merge copies every known field of other over p. Unknown fields of other
// never erase what p already holds.
func (p *Player) Merge(other Player) {
	if other.Team != 0 {
		p.Team = other.Team
	}
	if other.Name != "" {
		p.Name = other.Name
	}
	if other.Hero != "" {
		p.Hero = other.Hero
	}
	if other.Class != "" {
		p.Class = other.Class
	}
	if other.Side != "" {
		p.Side = other.Side
	}
	if other.Status != "" {
		p.Status = other.Status
	}
}

// ZoneChange describes a card moving from one zone to another.
// The from/to team and zone are empty when the log line omits them.
type ZoneChange struct {
	Name     string `json:"name"`
	ID       int    `json:"id"`
	CardID   string `json:"card_id"`
	Player   int    `json:"player"`
	FromTeam Side   `json:"from_team,omitempty"`
	FromZone string `json:"from_zone,omitempty"`
	ToTeam   Side   `json:"to_team,omitempty"`
	ToZone   string `json:"to_zone,omitempty"`
}

// Event represents a parsed Hearthstone log event.
type Event struct {
	// Type is the event type.
	Type Type `json:"type"`

	// Timestamp is when the line producing the event was read.
	Timestamp time.Time `json:"timestamp"`

	// Action is set for Action events.
	Action *ZoneChange `json:"action,omitempty"`

	// Players is the roster snapshot for MatchStart and MatchOver events.
	Players []Player `json:"players,omitempty"`

	// RawLine is the original log line (only included if requested).
	RawLine string `json:"raw_line,omitempty"`
}
