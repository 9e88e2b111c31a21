// Package layout turns datasets into positioned drawing primitives.
//
// Every function in this package is a pure computation: it takes a [Dataset]
// and a [Config] (pixel dimensions, margins, value domain) and returns a
// complete []Primitive, or an error and no primitives at all. Nothing is
// cached between calls and inputs are never mutated, so calling a layout twice
// with the same arguments yields identical output.
//
// # Layouts
//
//   - [LayoutRankedBars]: stable descending sort, band slots, linear value
//     scale, optional dashed average line and alert markers.
//   - [LayoutStackedColumn] and [StackSegments]: proportional segments of a
//     single column, stacked top to bottom in input order with a fixed gap.
//   - [RouteRibbon]: a cubic bezier between the midpoints of two segments,
//     with stroke width derived from a caller-supplied weight.
//   - [LayoutFlow]: two stacked columns joined by one ribbon per [Flow].
//   - [LayoutGroupedBars]: horizontal bands holding one sub-bar per [Series].
//   - [LayoutTrend]: two series over a shared point scale with independent
//     left and right value axes.
//
// # Primitives
//
// The output is a slice of [Rect], [Text], [Line], [Path] and [Circle]
// values. Coordinates are resolved pixels; colors are style tokens that are
// either literal hex colors ("#22c55e") or theme names ([TokenText],
// [TokenAxis], ...) resolved by the styles package when a sink draws them.
//
// # Errors
//
// Failures carry a code from pkg/errors:
//
//   - INVALID_CONFIG: non-positive size, margins that leave no plot area,
//     inverted fixed domain
//   - INVALID_RECORD: a required numeric field is missing or not finite
//   - EMPTY_TOTAL: a stacked column whose values sum to zero
//   - EMPTY_DATASET: no records
package layout
