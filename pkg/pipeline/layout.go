package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/cansdash/pkg/dashboard"
	"github.com/matzehuels/cansdash/pkg/observability"
	"github.com/matzehuels/cansdash/pkg/render/chart/layout"
)

// Layout computes the chart for validated options. The architecture view
// has no chart primitives and returns an empty chart.
func Layout(ctx context.Context, opts Options) (layout.Chart, error) {
	if opts.tab == dashboard.TabArchitecture {
		return layout.Chart{Name: opts.View}, nil
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, opts.View)
	start := time.Now()

	c, err := dashboard.Build(*opts.Data, opts.DashboardView(), opts.Size())

	hooks.OnLayoutComplete(ctx, opts.View, len(c.Primitives), time.Since(start), err)
	return c, err
}
