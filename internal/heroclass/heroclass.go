// Package heroclass maps Hearthstone hero display names to class identifiers.
package heroclass

import (
	"sort"
	"strings"
)

// classByHero is keyed by the lower-cased hero display name.
var classByHero = map[string]string{
	"malfurion stormrage": "druid",
	"alleria windrunner":  "hunter",
	"rexxar":              "hunter",
	"jaina proudmoore":    "mage",
	"medivh":              "mage",
	"uther lightbringer":  "paladin",
	"lady liadrin":        "paladin",
	"anduin wrynn":        "priest",
	"valeera sanguinar":   "rogue",
	"thrall":              "shaman",
	"gul'dan":             "warlock",
	"garrosh hellscream":  "warrior",
	"magni bronzebeard":   "warrior",
}

// ClassOf returns the class of the named hero. Unknown heroes pass through
// lower-cased.
func ClassOf(hero string) string {
	hero = strings.ToLower(hero)
	if class, ok := classByHero[hero]; ok {
		return class
	}
	return hero
}

// Entry is one row of the hero table.
type Entry struct {
	Hero  string
	Class string
}

// Entries returns the hero table sorted by class, then hero.
func Entries() []Entry {
	out := make([]Entry, 0, len(classByHero))
	for hero, class := range classByHero {
		out = append(out, Entry{Hero: hero, Class: class})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Class != out[j].Class {
			return out[i].Class < out[j].Class
		}
		return out[i].Hero < out[j].Hero
	})
	return out
}
