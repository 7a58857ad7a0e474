package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hslog/hslog-go/pkg/hslog"
)

// ValidFormats lists the accepted --format values.
var ValidFormats = map[string]bool{
	"jsonl":  true,
	"pretty": true,
}

// OutputEvent writes ev to w in the given format.
func OutputEvent(format string, ev hslog.Event, w io.Writer) error {
	switch format {
	case "jsonl":
		return OutputJSON(ev, w)
	case "pretty":
		return OutputPretty(ev, w)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// OutputJSON writes ev as a single JSON line.
func OutputJSON(ev hslog.Event, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(ev)
}

// OutputPretty writes ev as one human-readable line.
func OutputPretty(ev hslog.Event, w io.Writer) error {
	ts := ev.Timestamp.Format("15:04:05")

	var line string
	switch ev.Type {
	case hslog.EventAction:
		if ev.Action == nil {
			line = "* (unknown card)"
			break
		}
		a := ev.Action
		line = fmt.Sprintf("* %s [%s] %s -> %s", a.Name, a.CardID,
			zoneLabel(a.FromTeam, a.FromZone), zoneLabel(a.ToTeam, a.ToZone))
	case hslog.EventMatchStart:
		names := make([]string, len(ev.Players))
		for i, p := range ev.Players {
			names[i] = playerLabel(p)
		}
		line = "> Match started: " + strings.Join(names, " vs ")
	case hslog.EventMatchOver:
		results := make([]string, len(ev.Players))
		for i, p := range ev.Players {
			results[i] = fmt.Sprintf("%s %s", playerLabel(p), p.Status)
		}
		line = "# Match over: " + strings.Join(results, ", ")
	default:
		line = fmt.Sprintf("? %s", ev.Type)
	}

	_, err := fmt.Fprintf(w, "[%s] %s\n", ts, line)
	return err
}

func playerLabel(p hslog.Player) string {
	name := p.Name
	if name == "" {
		name = fmt.Sprintf("team %d", p.Team)
	}
	if p.Hero == "" {
		return name
	}
	return fmt.Sprintf("%s (%s, %s)", name, p.Hero, p.Class)
}

func zoneLabel(team hslog.Side, zone string) string {
	parts := make([]string, 0, 2)
	if team != "" {
		parts = append(parts, string(team))
	}
	if zone != "" {
		parts = append(parts, zone)
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}
