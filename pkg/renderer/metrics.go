package renderer

import (
	"context"

	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

var (
	rowsRendered  = stats.Int64("pathtracer/rows_rendered", "Image rows rendered", stats.UnitDimensionless)
	samplesTraced = stats.Int64("pathtracer/samples_traced", "Camera rays traced", stats.UnitDimensionless)
	renderLatency = stats.Float64("pathtracer/render_latency", "Wall time of a full render", stats.UnitMilliseconds)

	labelKey = tag.MustNewKey("label")
)

var (
	// RowsRenderedView counts rendered rows per render label
	RowsRenderedView = &view.View{
		Name:        "pathtracer/rows_rendered",
		Description: "Counter of image rows that have been rendered",
		TagKeys:     []tag.Key{labelKey},
		Measure:     rowsRendered,
		Aggregation: view.Count(),
	}

	// SamplesTracedView sums camera rays per render label
	SamplesTracedView = &view.View{
		Name:        "pathtracer/samples_traced",
		Description: "Total camera rays traced",
		TagKeys:     []tag.Key{labelKey},
		Measure:     samplesTraced,
		Aggregation: view.Sum(),
	}

	// RenderLatencyView is the distribution of full render times
	RenderLatencyView = &view.View{
		Name:        "pathtracer/render_latency",
		Description: "Distribution of render wall times",
		TagKeys:     []tag.Key{labelKey},
		Measure:     renderLatency,
		Aggregation: view.Distribution(10, 50, 100, 500, 1000, 5000, 10000, 60000, 300000),
	}
)

// RegisterViews registers all renderer views with opencensus
func RegisterViews() error {
	return view.Register(RowsRenderedView, SamplesTracedView, RenderLatencyView)
}

func recordRow(ctx context.Context, label string, samples int64) {
	stats.RecordWithOptions(
		ctx,
		stats.WithTags(tag.Insert(labelKey, label)),
		stats.WithMeasurements(rowsRendered.M(1), samplesTraced.M(samples)))
}

func recordRender(ctx context.Context, label string, milliseconds float64) {
	stats.RecordWithOptions(
		ctx,
		stats.WithTags(tag.Insert(labelKey, label)),
		stats.WithMeasurements(renderLatency.M(milliseconds)))
}
