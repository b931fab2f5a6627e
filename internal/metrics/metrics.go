package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/global"
	export "go.opentelemetry.io/otel/sdk/export/metric"
	"go.opentelemetry.io/otel/sdk/metric/aggregator/histogram"
	controller "go.opentelemetry.io/otel/sdk/metric/controller/basic"
	processor "go.opentelemetry.io/otel/sdk/metric/processor/basic"
	selector "go.opentelemetry.io/otel/sdk/metric/selector/simple"
)

var outcomeKey = attribute.Key("outcome")

// NewExporter builds the Prometheus exporter and installs its meter provider
// as the global one. Serve the exporter on the diag port.
func NewExporter() (*prometheus.Exporter, error) {
	config := prometheus.Config{}
	c := controller.New(
		processor.New(
			selector.NewWithHistogramDistribution(
				histogram.WithExplicitBoundaries(config.DefaultHistogramBoundaries),
			),
			export.CumulativeExportKindSelector(),
			processor.WithMemory(true),
		),
	)
	exporter, err := prometheus.New(config, c)
	if err != nil {
		return nil, err
	}
	global.SetMeterProvider(exporter.MeterProvider())

	return exporter, nil
}

// Instruments are the site's counters.
type Instruments struct {
	articlesPublished metric.Int64Counter
	articlesUpdated   metric.Int64Counter
	articlesDeleted   metric.Int64Counter
	logins            metric.Int64Counter
	registrations     metric.Int64Counter
}

func NewInstruments(meter metric.Meter) *Instruments {
	m := metric.Must(meter)

	return &Instruments{
		articlesPublished: m.NewInt64Counter(
			"news/articles/published",
			metric.WithDescription("Count of articles published from the admin panel"),
		),
		articlesUpdated: m.NewInt64Counter(
			"news/articles/updated",
			metric.WithDescription("Count of article edits"),
		),
		articlesDeleted: m.NewInt64Counter(
			"news/articles/deleted",
			metric.WithDescription("Count of articles removed"),
		),
		logins: m.NewInt64Counter(
			"news/logins",
			metric.WithDescription("Count of login attempts, by outcome"),
		),
		registrations: m.NewInt64Counter(
			"news/registrations",
			metric.WithDescription("Count of registration attempts, by outcome"),
		),
	}
}

// Global returns instruments on the global meter provider.
func Global(name string) *Instruments {
	return NewInstruments(global.Meter(name))
}

func (i *Instruments) ArticlePublished(ctx context.Context) {
	i.articlesPublished.Add(ctx, 1)
}

func (i *Instruments) ArticleUpdated(ctx context.Context) {
	i.articlesUpdated.Add(ctx, 1)
}

func (i *Instruments) ArticleDeleted(ctx context.Context) {
	i.articlesDeleted.Add(ctx, 1)
}

func (i *Instruments) Login(ctx context.Context, outcome string) {
	i.logins.Add(ctx, 1, outcomeKey.String(outcome))
}

func (i *Instruments) Registration(ctx context.Context, outcome string) {
	i.registrations.Add(ctx, 1, outcomeKey.String(outcome))
}
