// Package scale maps data values to pixel coordinates.
//
// Three scales cover every chart in the dashboard:
//
//   - [Linear]: affine value → pixel mapping. Values outside the domain are
//     extrapolated, never clamped.
//   - [Band]: a fixed number of ordered categories → equal-width padded slots,
//     with the same semantics as d3's scaleBand (inner and outer padding equal,
//     align 0.5).
//   - [Point]: a band scale with zero bandwidth, for line charts.
//
// [Ticks] produces the "nice" 1/2/5 × 10^k tick values used by the axes.
//
// All scales are immutable values; constructing them never fails. Degenerate
// inputs (empty domains, zero slots) produce well-defined positions so that
// callers can validate inputs once, up front.
package scale
