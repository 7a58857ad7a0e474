// Package roster accumulates partial player facts into the two-player roster
// of the current match.
package roster

import "github.com/hslog/hslog-go/pkg/hslog/event"

// Size is the number of players in a match.
const Size = 2

// Key selects the field facts are correlated on.
type Key int

const (
	ByTeam Key = iota
	ByName
)

func (k Key) String() string {
	if k == ByName {
		return "name"
	}
	return "team"
}

// Tracker holds the roster of the current match. The zero value is an empty
// roster ready for use. A Tracker is not safe for concurrent use.
type Tracker struct {
	players   []event.Player
	playerSet bool
	started   bool
}

// Len returns the number of players on the roster.
func (t *Tracker) Len() int {
	return len(t.players)
}

// PlayerSet reports whether a hero reveal was recorded for the current match.
func (t *Tracker) PlayerSet() bool {
	return t.playerSet
}

// MarkPlayerSet records that a hero reveal was seen. From then on name-keyed
// facts merge into existing players instead of adding new ones.
func (t *Tracker) MarkPlayerSet() {
	t.playerSet = true
}

// Merge folds fact into the roster, correlating on key.
//
// A team-keyed fact whose team is unseen or unknown, or any name-keyed fact
// before a hero reveal, is added as a new player. Otherwise the fact is
// merged into every player whose key value equals the fact's, not only the
// first.
//
// Merge reports false when the fact had to be added but the roster was
// already full; the fact is dropped in that case.
func (t *Tracker) Merge(fact event.Player, key Key) bool {
	switch key {
	case ByTeam:
		if t.index(fact, key) < 0 {
			return t.add(fact)
		}
	case ByName:
		if !t.playerSet {
			// attached in the middle of a match
			return t.add(fact)
		}
	}

	for i := len(t.players) - 1; i >= 0; i-- {
		if sameKey(t.players[i], fact, key) {
			t.players[i].Merge(fact)
		}
	}
	return true
}

// ClaimStart reports whether the roster is full and the match start has not
// been claimed yet for it. A true result is returned once per roster fill.
func (t *Tracker) ClaimStart() bool {
	if len(t.players) != Size || t.started {
		return false
	}
	t.started = true
	return true
}

// Complete reports whether the roster is full and every player has a status.
func (t *Tracker) Complete() bool {
	if len(t.players) != Size {
		return false
	}
	for _, p := range t.players {
		if p.Status == "" {
			return false
		}
	}
	return true
}

// Snapshot returns a copy of the roster in insertion order.
func (t *Tracker) Snapshot() []event.Player {
	out := make([]event.Player, len(t.players))
	copy(out, t.players)
	return out
}

// Reset empties the roster and clears the hero reveal and start markers.
func (t *Tracker) Reset() {
	t.players = nil
	t.playerSet = false
	t.started = false
}

func (t *Tracker) add(fact event.Player) bool {
	if len(t.players) >= Size {
		return false
	}
	t.players = append(t.players, fact)
	return true
}

func (t *Tracker) index(fact event.Player, key Key) int {
	for i, p := range t.players {
		if sameKey(p, fact, key) {
			return i
		}
	}
	return -1
}

// sameKey reports whether a and b correlate on key. A missing or unparsed
// key value matches nothing, not even another missing one.
func sameKey(a, b event.Player, key Key) bool {
	if key == ByName {
		return a.Name != "" && a.Name == b.Name
	}
	return a.HasTeam() && b.HasTeam() && a.Team == b.Team
}
