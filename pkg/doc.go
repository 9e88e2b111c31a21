// Package pkg provides the core libraries of the cansdash CANS outcomes
// dashboard.
//
// # Overview
//
// cansdash turns a dataset describing Kentucky's 14 Community Mental Health
// Centers (regions, caseloads, intake complexity, outcome levels, CANS domain
// scores, matched-pair improvement and monthly trends) into chart layouts,
// and the layouts into files, pages and terminal views.
//
// The typical data flow:
//
//	dataset file (JSON, YAML, TOML) or the bundled sample
//	         ↓
//	    [io] package (decode and validate)
//	         ↓
//	    [dashboard] package (tab state, cards, per-view chart builders)
//	         ↓
//	    [render/chart/layout] package (positioned primitives)
//	         ↓
//	    [render/chart/sink] package (SVG, PNG, PDF, JSON)
//
// # Quick Start
//
// Render the center comparison as SVG:
//
//	d := dashboard.Sample()
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    View:    "compare",
//	    Formats: []string{"svg"},
//	    Data:    &d,
//	})
//	svg := res.Artifacts["svg"]
//
// # Main Packages
//
// [dashboard] - The domain model: centers, regions, flow levels, domain
// scores, improvement pairs and trend points, plus the tab and selection
// state the views are drawn from. [dashboard.Build] lays out any tab.
//
// [render/chart/layout] - Pure chart geometry: ranked bars, stacked columns,
// flow ribbons, grouped bars and dual-axis trends. No I/O.
//
// [render/architecture] - The EHR integration diagram, rendered with Graphviz.
//
// [pipeline] - Validated options, layout, rendering and caching used by the
// CLI, the HTTP server and the terminal UI alike.
//
// [cache] - Artifact cache with file, Redis and no-op backends.
//
// [server] - The HTTP dashboard.
//
// [config], [errors], [observability] and [httputil] carry the shared
// settings, error codes, hooks and HTTP plumbing.
//
// # Testing
//
//	go test ./...
//	go test -run Example ./pkg/...
//
// [io]: https://pkg.go.dev/github.com/matzehuels/cansdash/pkg/io
// [dashboard]: https://pkg.go.dev/github.com/matzehuels/cansdash/pkg/dashboard
// [dashboard.Build]: https://pkg.go.dev/github.com/matzehuels/cansdash/pkg/dashboard#Build
// [render/chart/layout]: https://pkg.go.dev/github.com/matzehuels/cansdash/pkg/render/chart/layout
// [render/chart/sink]: https://pkg.go.dev/github.com/matzehuels/cansdash/pkg/render/chart/sink
// [render/architecture]: https://pkg.go.dev/github.com/matzehuels/cansdash/pkg/render/architecture
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/cansdash/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/cansdash/pkg/cache
// [server]: https://pkg.go.dev/github.com/matzehuels/cansdash/pkg/server
// [config]: https://pkg.go.dev/github.com/matzehuels/cansdash/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/cansdash/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/cansdash/pkg/observability
// [httputil]: https://pkg.go.dev/github.com/matzehuels/cansdash/pkg/httputil
package pkg
