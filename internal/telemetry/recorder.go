package telemetry

import (
	"context"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/metric"

	"github.com/hslog/hslog-go/pkg/hslog/event"
)

// Recorder counts events and mirrors each one as a structured log record.
type Recorder struct {
	logger  otellog.Logger
	events  metric.Int64Counter
	results metric.Int64Counter
}

// NewRecorder creates the Recorder instruments on meter.
func NewRecorder(meter metric.Meter, logger otellog.Logger) (*Recorder, error) {
	events, err := meter.Int64Counter("hslog.events",
		metric.WithDescription("Events parsed from the Hearthstone log"),
		metric.WithUnit("{event}"))
	if err != nil {
		return nil, fmt.Errorf("events counter: %w", err)
	}
	results, err := meter.Int64Counter("hslog.match.results",
		metric.WithDescription("Finished matches per hero class and play state"),
		metric.WithUnit("{player}"))
	if err != nil {
		return nil, fmt.Errorf("results counter: %w", err)
	}
	return &Recorder{logger: logger, events: events, results: results}, nil
}

// Record counts ev and emits it as a log record.
func (r *Recorder) Record(ctx context.Context, ev event.Event) {
	r.events.Add(ctx, 1, metric.WithAttributes(attribute.String("type", string(ev.Type))))

	if ev.Type == event.MatchOver {
		for _, p := range ev.Players {
			r.results.Add(ctx, 1, metric.WithAttributes(
				attribute.String("class", p.Class),
				attribute.String("status", string(p.Status)),
			))
		}
	}

	var rec otellog.Record
	rec.SetTimestamp(ev.Timestamp)
	rec.SetBody(otellog.StringValue(string(ev.Type)))
	rec.AddAttributes(attributes(ev)...)
	r.logger.Emit(ctx, rec)
}

func attributes(ev event.Event) []otellog.KeyValue {
	var attrs []otellog.KeyValue
	if a := ev.Action; a != nil {
		attrs = append(attrs,
			otellog.String("card.name", a.Name),
			otellog.Int("card.id", a.ID),
			otellog.String("card.card_id", a.CardID),
			otellog.Int("card.player", a.Player),
		)
		if a.FromZone != "" {
			attrs = append(attrs, otellog.String("from.zone", a.FromZone))
		}
		if a.FromTeam != "" {
			attrs = append(attrs, otellog.String("from.team", string(a.FromTeam)))
		}
		if a.ToZone != "" {
			attrs = append(attrs, otellog.String("to.zone", a.ToZone))
		}
		if a.ToTeam != "" {
			attrs = append(attrs, otellog.String("to.team", string(a.ToTeam)))
		}
	}
	for i, p := range ev.Players {
		prefix := "player." + strconv.Itoa(i+1) + "."
		attrs = append(attrs,
			otellog.String(prefix+"name", p.Name),
			otellog.String(prefix+"hero", p.Hero),
			otellog.String(prefix+"class", p.Class),
			otellog.Int(prefix+"team", p.Team),
		)
		if p.Side != "" {
			attrs = append(attrs, otellog.String(prefix+"side", string(p.Side)))
		}
		if p.Status != "" {
			attrs = append(attrs, otellog.String(prefix+"status", string(p.Status)))
		}
	}
	return attrs
}
