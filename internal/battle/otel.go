package battle

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/sapteams/battleapi/internal/battle"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Metrics instruments battle processing. With no meter provider
// installed the instruments are no-ops.
type Metrics struct {
	battles metric.Int64Counter
	turns   metric.Int64Histogram
}

// NewMetrics registers the battle instruments.
func NewMetrics() (*Metrics, error) {
	m := meter()

	battles, err := m.Int64Counter(
		"battles_processed_total",
		metric.WithDescription("Battles processed, by outcome"),
	)
	if err != nil {
		return nil, err
	}

	turns, err := m.Int64Histogram(
		"battle_turns",
		metric.WithDescription("Turns consumed per battle"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{battles: battles, turns: turns}, nil
}

// Record counts one completed battle run.
func (m *Metrics) Record(ctx context.Context, res Result) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("outcome", string(res.Outcome)),
		attribute.String("state", string(res.State)),
	)
	m.battles.Add(ctx, 1, attrs)
	m.turns.Record(ctx, int64(res.NumTurns), attrs)
}
