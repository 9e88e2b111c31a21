// Package render provides the rendering side of the dashboard: chart layout,
// output sinks and format conversion.
//
// # Overview
//
// Rendering is split into a pure layout step and a drawing step:
//
//   - [chart/scale]: linear, band and point scales plus nice tick values
//   - [chart/layout]: datasets to positioned primitives (bars, stacked
//     columns, flow ribbons, grouped bars, dual-axis trends)
//   - [chart/styles]: themes that resolve color tokens and emit SVG defs
//   - [chart/sink]: primitives to SVG, PNG, PDF and JSON
//   - [architecture]: the integration diagram, rendered with Graphviz
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG with the external rsvg-convert tool
// (from librsvg). Both the chart sinks and the architecture diagram use them.
//
//	svg := sink.RenderSVG(chart)
//	pdf, err := render.ToPDF(svg)
//
// [chart/scale]: github.com/matzehuels/cansdash/pkg/render/chart/scale
// [chart/layout]: github.com/matzehuels/cansdash/pkg/render/chart/layout
// [chart/styles]: github.com/matzehuels/cansdash/pkg/render/chart/styles
// [chart/sink]: github.com/matzehuels/cansdash/pkg/render/chart/sink
// [architecture]: github.com/matzehuels/cansdash/pkg/render/architecture
package render
