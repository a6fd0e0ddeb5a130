package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// meterName is the instrumentation scope name used for all simulation metrics.
const meterName = "github.com/samdwyer/marshcrawl"

// Metric names.
const (
	MetricSteps        = "marshcrawl.steps"
	MetricStepDuration = "marshcrawl.step.duration"
	MetricIndexerRuns  = "marshcrawl.indexer.runs"
	MetricRecomputes   = "marshcrawl.visibility.recomputes"
	MetricAIDecisions  = "marshcrawl.ai.decisions"
	MetricPlayerMoves  = "marshcrawl.player.moves"
)

// Metrics holds the OpenTelemetry instruments for the simulation.
type Metrics struct {
	// Steps counts completed AI -> indexing -> visibility pipeline runs.
	Steps metric.Int64Counter

	// StepDuration tracks pipeline latency in seconds.
	StepDuration metric.Float64Histogram

	// IndexerRuns counts blocked-grid rebuilds.
	IndexerRuns metric.Int64Counter

	// Recomputes counts viewshed recomputations. Use with attribute:
	//   attribute.Bool("player", ...)
	Recomputes metric.Int64Counter

	// AIDecisions counts monster decisions. Use with attribute:
	//   attribute.String("decision", "attack"|"chase"|"wander"|"idle")
	AIDecisions metric.Int64Counter

	// PlayerMoves counts accepted player intents. Use with attributes:
	//   attribute.String("intent", ...), attribute.Bool("moved", ...)
	PlayerMoves metric.Int64Counter
}

var stepBuckets = []float64{
	0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05,
}

// NewMetrics creates all instruments from mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.Steps, err = m.Int64Counter(MetricSteps,
		metric.WithDescription("Completed simulation steps."),
	); err != nil {
		return nil, err
	}
	if met.StepDuration, err = m.Float64Histogram(MetricStepDuration,
		metric.WithDescription("Latency of one simulation step."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(stepBuckets...),
	); err != nil {
		return nil, err
	}
	if met.IndexerRuns, err = m.Int64Counter(MetricIndexerRuns,
		metric.WithDescription("Blocked-grid rebuilds."),
	); err != nil {
		return nil, err
	}
	if met.Recomputes, err = m.Int64Counter(MetricRecomputes,
		metric.WithDescription("Viewshed recomputations."),
	); err != nil {
		return nil, err
	}
	if met.AIDecisions, err = m.Int64Counter(MetricAIDecisions,
		metric.WithDescription("Monster decisions by kind."),
	); err != nil {
		return nil, err
	}
	if met.PlayerMoves, err = m.Int64Counter(MetricPlayerMoves,
		metric.WithDescription("Player intents applied."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// GlobalMetrics creates instruments from the global MeterProvider installed by Setup.
func GlobalMetrics() (*Metrics, error) {
	return NewMetrics(otel.GetMeterProvider())
}

// NoopMetrics returns instruments that record nothing. Useful in tests.
func NoopMetrics() *Metrics {
	met, err := NewMetrics(metricnoop.NewMeterProvider())
	if err != nil {
		// the noop provider never fails
		panic(err)
	}
	return met
}

// Totals collects every Int64 sum from reader, keyed by metric name and summed
// across attribute sets.
func Totals(ctx context.Context, reader *sdkmetric.ManualReader) (map[string]int64, error) {
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		return nil, err
	}
	totals := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				totals[m.Name] += dp.Value
			}
		}
	}
	return totals, nil
}

// DecisionAttr is the attribute set for an AI decision.
func DecisionAttr(decision string) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String("decision", decision))
}
