package architecture

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	cerrors "github.com/matzehuels/cansdash/pkg/errors"
	"github.com/matzehuels/cansdash/pkg/render"
)

// Layer is one horizontal tier of the diagram.
type Layer struct {
	ID       string   `json:"id" yaml:"id" toml:"id"`
	Name     string   `json:"name" yaml:"name" toml:"name"`
	Subtitle string   `json:"subtitle,omitempty" yaml:"subtitle,omitempty" toml:"subtitle,omitempty"`
	Color    string   `json:"color" yaml:"color" toml:"color"`
	Items    []string `json:"items,omitempty" yaml:"items,omitempty" toml:"items,omitempty"`
	Barrier  bool     `json:"barrier,omitempty" yaml:"barrier,omitempty" toml:"barrier,omitempty"`
}

// Center is a CMHC and the EHR vendor it runs.
type Center struct {
	ID        int    `json:"id" yaml:"id" toml:"id"`
	Name      string `json:"name" yaml:"name" toml:"name"`
	Location  string `json:"location" yaml:"location" toml:"location"`
	Vendor    string `json:"vendor" yaml:"vendor" toml:"vendor"`
	Counties  int    `json:"counties" yaml:"counties" toml:"counties"`
	Confirmed bool   `json:"confirmed,omitempty" yaml:"confirmed,omitempty" toml:"confirmed,omitempty"`
}

// Vendor is an EHR vendor.
type Vendor struct {
	Name     string `json:"name" yaml:"name" toml:"name"`
	Color    string `json:"color" yaml:"color" toml:"color"`
	Products string `json:"products,omitempty" yaml:"products,omitempty" toml:"products,omitempty"`
}

// Diagram is the complete architecture description. Layers are listed top
// to bottom; the last layer holds the centers.
type Diagram struct {
	Layers  []Layer  `json:"layers" yaml:"layers" toml:"layers"`
	Centers []Center `json:"centers" yaml:"centers" toml:"centers"`
	Vendors []Vendor `json:"vendors" yaml:"vendors" toml:"vendors"`
}

const unknownVendorColor = "#6b7280"

// VendorColor returns the vendor's color, or grey for an unknown vendor.
func (d Diagram) VendorColor(name string) string {
	for _, v := range d.Vendors {
		if v.Name == name {
			return v.Color
		}
	}
	return unknownVendorColor
}

// Confirmed counts the centers whose vendor is confirmed, per vendor.
func (d Diagram) Confirmed() map[string]int {
	out := make(map[string]int, len(d.Vendors))
	for _, c := range d.Centers {
		if c.Confirmed {
			out[c.Vendor]++
		}
	}
	return out
}

// Validate checks that the diagram has at least one non-barrier layer and
// one center.
func (d Diagram) Validate() error {
	var tiers int
	for _, l := range d.Layers {
		if l.ID == "" {
			return cerrors.New(cerrors.ErrCodeInvalidInput, "layer %q: missing id", l.Name)
		}
		if !l.Barrier {
			tiers++
		}
	}
	if tiers == 0 {
		return cerrors.New(cerrors.ErrCodeInvalidInput, "architecture: no layers")
	}
	if len(d.Centers) == 0 {
		return cerrors.New(cerrors.ErrCodeEmptyDataset, "architecture: no centers")
	}
	return nil
}

// ToDOT converts the diagram to Graphviz DOT.
//
// Each non-barrier layer becomes a cluster. The bottom layer holds one node
// per center filled with its vendor color. Edges run from centers to their
// vendor, from each vendor up to the platform layer, and between consecutive
// tiers. A barrier layer is drawn as a dashed red node between the tiers it
// separates.
func ToDOT(d Diagram) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontname=\"Helvetica\", fontsize=12, fontcolor=white, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [color=\"#94a3b8\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.25;\n")

	tiers := make([]Layer, 0, len(d.Layers))
	for _, l := range d.Layers {
		if !l.Barrier {
			tiers = append(tiers, l)
		}
	}

	for i, l := range d.Layers {
		buf.WriteString("\n")
		if l.Barrier {
			fmt.Fprintf(&buf, "  %q [label=%q, style=\"dashed,bold\", color=%q, fontcolor=%q, shape=box];\n",
				l.ID, layerLabel(l), l.Color, l.Color)
			continue
		}
		fmt.Fprintf(&buf, "  subgraph %q {\n", "cluster_"+l.ID)
		fmt.Fprintf(&buf, "    label=%q;\n    fontcolor=%q;\n    color=%q;\n    style=\"rounded\";\n",
			l.Name, "#e2e8f0", l.Color)
		if i == len(d.Layers)-1 {
			writeCenters(&buf, d)
		} else {
			fmt.Fprintf(&buf, "    %q [label=%q, fillcolor=%q];\n", l.ID, layerLabel(l), l.Color)
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("\n")
	last := len(d.Layers) - 1
	var platform string
	if len(tiers) >= 2 {
		platform = tiers[len(tiers)-2].ID
	}
	if last >= 0 && !d.Layers[last].Barrier && platform != "" {
		for i, v := range d.Vendors {
			fmt.Fprintf(&buf, "  %q -> %q [color=%q];\n", vendorID(i), platform, v.Color)
		}
	}
	for i := 0; i+2 < len(tiers); i++ {
		fmt.Fprintf(&buf, "  %q -> %q [penwidth=2];\n", tiers[i+1].ID, tiers[i].ID)
	}
	for i, l := range d.Layers {
		if !l.Barrier || i == 0 || i == last {
			continue
		}
		below := d.Layers[i+1].ID
		if i+1 == last {
			below += "_anchor"
		}
		fmt.Fprintf(&buf, "  %q -> %q [style=invis];\n", below, l.ID)
		fmt.Fprintf(&buf, "  %q -> %q [style=invis];\n", l.ID, d.Layers[i-1].ID)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeCenters(buf *bytes.Buffer, d Diagram) {
	bottom := d.Layers[len(d.Layers)-1]
	fmt.Fprintf(buf, "    %q [shape=point, style=invis];\n", bottom.ID+"_anchor")
	for i, v := range d.Vendors {
		fmt.Fprintf(buf, "    %q [label=%q, fillcolor=%q, shape=ellipse];\n",
			vendorID(i), vendorLabel(v), v.Color)
	}
	for _, c := range d.Centers {
		id := "cmhc_" + strconv.Itoa(c.ID)
		label := fmt.Sprintf("%s\n%s · %d counties", c.Name, c.Location, c.Counties)
		attrs := fmt.Sprintf("label=%q, fillcolor=%q", label, d.VendorColor(c.Vendor))
		if !c.Confirmed {
			attrs += ", style=\"rounded,filled,dashed\""
		}
		fmt.Fprintf(buf, "    %q [%s];\n", id, attrs)
		if vi := vendorIndex(d, c.Vendor); vi >= 0 {
			fmt.Fprintf(buf, "    %q -> %q;\n", id, vendorID(vi))
		}
	}
}

func layerLabel(l Layer) string {
	parts := []string{l.Name}
	if l.Subtitle != "" {
		parts = append(parts, l.Subtitle)
	}
	if len(l.Items) > 0 {
		parts = append(parts, "", strings.Join(l.Items, " · "))
	}
	return strings.Join(parts, "\n")
}

func vendorLabel(v Vendor) string {
	if v.Products == "" {
		return v.Name
	}
	return v.Name + "\n" + v.Products
}

func vendorID(i int) string { return "vendor_" + strconv.Itoa(i) }

func vendorIndex(d Diagram, name string) int {
	for i, v := range d.Vendors {
		if v.Name == name {
			return i
		}
	}
	return -1
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-based svg header with a plain
// pixel viewBox so the diagram scales like the chart SVGs.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
