package hslog

import (
	"log/slog"

	"github.com/hslog/hslog-go/internal/heroclass"
	"github.com/hslog/hslog-go/internal/parser"
	"github.com/hslog/hslog-go/internal/roster"
)

// Handler receives the events produced by a Parser.
// Player slices are snapshots owned by the handler.
type Handler interface {
	OnAction(change ZoneChange)
	OnMatchStart(players []Player)
	OnMatchOver(players []Player)
}

// HandlerFuncs adapts plain functions to a Handler. Nil fields are skipped.
type HandlerFuncs struct {
	Action     func(change ZoneChange)
	MatchStart func(players []Player)
	MatchOver  func(players []Player)
}

func (h HandlerFuncs) OnAction(change ZoneChange) {
	if h.Action != nil {
		h.Action(change)
	}
}

func (h HandlerFuncs) OnMatchStart(players []Player) {
	if h.MatchStart != nil {
		h.MatchStart(players)
	}
}

func (h HandlerFuncs) OnMatchOver(players []Player) {
	if h.MatchOver != nil {
		h.MatchOver(players)
	}
}

// Parser turns Hearthstone log lines into events. It owns the roster of the
// current match, so lines must be fed in file order.
// A Parser is not safe for concurrent use.
type Parser struct {
	handler Handler
	logger  *slog.Logger
	roster  roster.Tracker
}

// NewParser creates a Parser that reports events to h.
// A nil logger disables diagnostics.
func NewParser(h Handler, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = discardLogger
	}
	return &Parser{handler: h, logger: logger}
}

// Process feeds a batch of lines in order.
func (p *Parser) Process(lines []string) {
	for _, line := range lines {
		p.ProcessLine(line)
	}
}

// ProcessLine feeds a single line. Unrecognized lines are ignored.
func (p *Parser) ProcessLine(line string) {
	r := parser.Classify(line)
	if len(r.BadFields) > 0 {
		p.logger.Debug("malformed numeric field", "kind", r.Kind, "fields", r.BadFields, "line", line)
	}

	switch r.Kind {
	case parser.ZoneChange:
		p.handler.OnAction(r.ZoneChange)

	case parser.GameOver:
		p.merge(r.Player, roster.ByName, line)
		if p.roster.Complete() {
			players := p.roster.Snapshot()
			p.roster.Reset()
			p.logger.Debug("match over", "players", players)
			p.handler.OnMatchOver(players)
		}

	case parser.GameStart:
		p.merge(r.Player, roster.ByTeam, line)
		if p.roster.ClaimStart() {
			players := p.roster.Snapshot()
			p.logger.Debug("match start", "players", players)
			p.handler.OnMatchStart(players)
		}

	case parser.HeroReveal:
		p.roster.MarkPlayerSet()
		p.merge(r.Player, roster.ByTeam, line)
	}
}

// Players returns a snapshot of the roster accumulated so far.
func (p *Parser) Players() []Player {
	return p.roster.Snapshot()
}

func (p *Parser) merge(fact Player, key roster.Key, line string) {
	if !p.roster.Merge(fact, key) {
		p.logger.Debug("roster full, dropping fact", "key", key, "fact", fact, "line", line)
	}
}

// ClassOf returns the class of a hero display name, or the lower-cased name
// when the hero is unknown.
func ClassOf(hero string) string {
	return heroclass.ClassOf(hero)
}
