package hslog

import "github.com/hslog/hslog-go/internal/parser"

// LineKind names the pattern a log line matched.
type LineKind string

const (
	LineUnknown    LineKind = "none"
	LineZoneChange LineKind = "zone_change"
	LineGameOver   LineKind = "game_over"
	LineGameStart  LineKind = "game_start"
	LineHeroReveal LineKind = "hero_reveal"
)

// Classification is the stateless reading of a single log line.
type Classification struct {
	Kind LineKind `json:"kind"`

	// Action is set for zone changes.
	Action *ZoneChange `json:"action,omitempty"`

	// Player is the partial player fact for game start, game over and hero
	// reveal lines.
	Player *Player `json:"player,omitempty"`
}

// Classify reads one line without touching any roster. Unrecognized lines
// return Kind LineUnknown.
func Classify(line string) Classification {
	r := parser.Classify(line)
	c := Classification{Kind: LineKind(r.Kind.String())}
	switch r.Kind {
	case parser.None:
	case parser.ZoneChange:
		c.Action = &r.ZoneChange
	default:
		c.Player = &r.Player
	}
	return c
}
