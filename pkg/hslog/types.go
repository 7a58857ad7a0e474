package hslog

import (
	"io"
	"log/slog"

	"github.com/hslog/hslog-go/pkg/hslog/event"
)

// Re-export event types for convenience.
// Users can import just "github.com/hslog/hslog-go/pkg/hslog"
// and use hslog.Event, hslog.EventAction, etc.

// Event represents a parsed Hearthstone log event.
type Event = event.Event

// EventType represents the type of Hearthstone log event.
type EventType = event.Type

// Player is a participant of a match.
type Player = event.Player

// ZoneChange describes a card moving between zones.
type ZoneChange = event.ZoneChange

// Side is the perspective-relative label of a player or zone.
type Side = event.Side

// Status is the final play state of a player.
type Status = event.Status

// Event type constants.
const (
	EventAction     = event.Action
	EventMatchStart = event.MatchStart
	EventMatchOver  = event.MatchOver
)

// Side and status constants.
const (
	SideFriendly = event.Friendly
	SideOpposing = event.Opposing

	StatusWon  = event.Won
	StatusLost = event.Lost
	StatusTied = event.Tied
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
