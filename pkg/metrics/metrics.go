// Package metrics records pipeline counters and stage durations. Instruments
// are OpenTelemetry meters exported into a per-run Prometheus registry, which
// a batch run writes out once in the node-exporter textfile format.
package metrics

import (
	"context"
	"fmt"
	"logistics/pkg/logger"
	"time"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap/exp/zapslog"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const meterName = "logistics"

// Recorder holds the instruments of one run. A nil *Recorder is valid and
// records nothing.
type Recorder struct {
	registry *prometheus.Registry
	provider *sdkmetric.MeterProvider

	ingested metric.Int64Counter
	produced metric.Int64Counter
	exported metric.Int64Counter
	stages   metric.Float64Histogram
}

// New creates a Recorder backed by a fresh registry. OpenTelemetry internal
// diagnostics are routed to the logger found in ctx.
func New(ctx context.Context) (*Recorder, error) {
	otel.SetLogger(logr.FromSlogHandler(zapslog.NewHandler(logger.Get(ctx).Core())))

	registry := prometheus.NewRegistry()
	exp, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	meter := provider.Meter(meterName)

	r := &Recorder{registry: registry, provider: provider}
	if r.ingested, err = meter.Int64Counter("logistics.requests.ingested",
		metric.WithDescription("Delivery requests parsed, by input format.")); err != nil {
		return nil, fmt.Errorf("could not create counter: %w", err)
	}
	if r.produced, err = meter.Int64Counter("logistics.quotes.produced",
		metric.WithDescription("Delivery options computed before filtering.")); err != nil {
		return nil, fmt.Errorf("could not create counter: %w", err)
	}
	if r.exported, err = meter.Int64Counter("logistics.quotes.exported",
		metric.WithDescription("Delivery options written, by export format.")); err != nil {
		return nil, fmt.Errorf("could not create counter: %w", err)
	}
	if r.stages, err = meter.Float64Histogram("logistics.stage.duration",
		metric.WithDescription("Duration of pipeline stages."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...)); err != nil {
		return nil, fmt.Errorf("could not create histogram: %w", err)
	}

	return r, nil
}

// RequestIngested counts one parsed request of the given input format.
func (r *Recorder) RequestIngested(ctx context.Context, format string) {
	if r == nil {
		return
	}
	r.ingested.Add(ctx, 1, metric.WithAttributes(attribute.String("format", format)))
}

// QuotesProduced counts n computed options.
func (r *Recorder) QuotesProduced(ctx context.Context, n int) {
	if r == nil {
		return
	}
	r.produced.Add(ctx, int64(n))
}

// QuotesExported counts n options written in format.
func (r *Recorder) QuotesExported(ctx context.Context, format string, n int) {
	if r == nil {
		return
	}
	r.exported.Add(ctx, int64(n), metric.WithAttributes(attribute.String("format", format)))
}

// ObserveStage records how long stage took.
func (r *Recorder) ObserveStage(ctx context.Context, stage string, d time.Duration) {
	if r == nil {
		return
	}
	r.stages.Record(ctx, d.Seconds(), metric.WithAttributes(attribute.String("stage", stage)))
}

// Gatherer exposes the registry, e.g. for tests.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the current values to path in the Prometheus text
// format.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("could not write metrics: %w", err)
	}

	return nil
}

// Shutdown releases the meter provider.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}

	return r.provider.Shutdown(ctx)
}
