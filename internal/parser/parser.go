// Package parser classifies Hearthstone log lines into typed facts.
package parser

import (
	"regexp"
	"strconv"

	"github.com/hslog/hslog-go/internal/heroclass"
	"github.com/hslog/hslog-go/pkg/hslog/event"
)

// Kind identifies which pattern a line matched.
type Kind int

const (
	// None means the line matched no known pattern.
	None Kind = iota

	// ZoneChange is a card moving between zones.
	ZoneChange

	// GameOver is a player's final PLAYSTATE.
	GameOver

	// GameStart is a player's TEAM_ID assignment.
	GameStart

	// HeroReveal is a hero card entering play.
	HeroReveal
)

func (k Kind) String() string {
	switch k {
	case ZoneChange:
		return "zone_change"
	case GameOver:
		return "game_over"
	case GameStart:
		return "game_start"
	case HeroReveal:
		return "hero_reveal"
	default:
		return "none"
	}
}

// Result is the outcome of classifying one line.
//
// ZoneChange is set for Kind ZoneChange; Player holds the fact for the other
// kinds. BadFields lists numeric captures that did not convert; their value
// is left at zero.
type Result struct {
	Kind       Kind
	ZoneChange event.ZoneChange
	Player     event.Player
	BadFields  []string
}

// Matched reports whether the line matched any pattern.
func (r Result) Matched() bool {
	return r.Kind != None
}

var (
	zoneChangePattern = regexp.MustCompile(`^\[Zone\] ZoneChangeList\.ProcessChanges\(\) - id=\d+ local=.+ \[name=(.+) id=(\d+) zone=.+ zonePos=\d+ cardId=(.+) player=(\d)\] zone from ?(FRIENDLY|OPPOSING)? ?(.*)? -> ?(FRIENDLY|OPPOSING)? ?(.*)?$`)
	gameOverPattern   = regexp.MustCompile(`\[Power\] GameState\.DebugPrintPower\(\) - TAG_CHANGE Entity=(.+) tag=PLAYSTATE value=(LOST|WON|TIED)$`)
	gameStartPattern  = regexp.MustCompile(`^\[Power\] GameState\.DebugPrintPower\(\) - TAG_CHANGE Entity=(.+) tag=TEAM_ID value=(\d+)$`)
	heroPattern       = regexp.MustCompile(`TRANSITIONING card \[name=(.+) id=.+ zone=.+ zonePos=.+ cardId=.+ player=(\d)\] to (OPPOSING|FRIENDLY) PLAY \(Hero\)`)
)

// matchers in priority order; the first success wins.
var matchers = []func(string) (Result, bool){
	parseZoneChange,
	parseGameOver,
	parseGameStart,
	parseHeroReveal,
}

// Classify converts one raw log line into a Result. Lines that match no
// pattern return a Result of Kind None.
func Classify(line string) Result {
	for _, match := range matchers {
		if r, ok := match(line); ok {
			return r
		}
	}
	return Result{}
}

func parseZoneChange(line string) (Result, bool) {
	m := zoneChangePattern.FindStringSubmatch(line)
	if m == nil {
		return Result{}, false
	}
	r := Result{Kind: ZoneChange}
	id := r.atoi("id", m[2])
	player := r.atoi("player", m[4])
	r.ZoneChange = event.ZoneChange{
		Name:     m[1],
		ID:       id,
		CardID:   m[3],
		Player:   player,
		FromTeam: event.Side(m[5]),
		FromZone: m[6],
		ToTeam:   event.Side(m[7]),
		ToZone:   m[8],
	}
	return r, true
}

func parseGameOver(line string) (Result, bool) {
	m := gameOverPattern.FindStringSubmatch(line)
	if m == nil {
		return Result{}, false
	}
	return Result{
		Kind:   GameOver,
		Player: event.Player{Name: m[1], Status: event.Status(m[2])},
	}, true
}

func parseGameStart(line string) (Result, bool) {
	m := gameStartPattern.FindStringSubmatch(line)
	if m == nil {
		return Result{}, false
	}
	r := Result{Kind: GameStart}
	r.Player = event.Player{Name: m[1], Team: r.atoi("team", m[2])}
	return r, true
}

func parseHeroReveal(line string) (Result, bool) {
	m := heroPattern.FindStringSubmatch(line)
	if m == nil {
		return Result{}, false
	}
	r := Result{Kind: HeroReveal}
	r.Player = event.Player{
		Hero:  m[1],
		Class: heroclass.ClassOf(m[1]),
		Team:  r.atoi("player", m[2]),
		Side:  event.Side(m[3]),
	}
	return r, true
}

// atoi converts a numeric capture, recording the field on failure.
func (r *Result) atoi(field, s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		r.BadFields = append(r.BadFields, field)
		return 0
	}
	return n
}
