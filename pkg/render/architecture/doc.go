// Package architecture renders the EHR integration diagram.
//
// The diagram shows the state oversight layer on top, the CANS assessment
// platform beneath it, the integration barrier, and the community mental
// health centers at the bottom grouped by EHR vendor. Unlike the chart views
// it has no primitive layout: [ToDOT] emits Graphviz DOT and Graphviz does
// the placement.
//
//	dot := architecture.ToDOT(d)
//	svg, err := architecture.RenderSVG(dot)
//
// PDF and PNG conversion requires librsvg (rsvg-convert).
package architecture
