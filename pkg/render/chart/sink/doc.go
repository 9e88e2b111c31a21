// Package sink draws chart layouts to output formats.
//
// # Formats
//
//   - SVG: [RenderSVG], a standalone document with tooltips and hover styles
//   - PNG: [RenderPNG], rasterized in-process with go-chart's renderer
//   - PDF: [RenderPDF], the SVG converted with rsvg-convert
//   - JSON: [RenderJSON], the primitive list with a "kind" tag per element
//
// Sinks never compute geometry. They resolve color tokens through a
// [styles.Theme] and translate each primitive one-to-one.
//
// # External Dependencies
//
// PDF output requires librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [styles.Theme]: github.com/matzehuels/cansdash/pkg/render/chart/styles.Theme
package sink
