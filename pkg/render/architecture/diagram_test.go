package architecture

import (
	"strings"
	"testing"

	cerrors "github.com/matzehuels/cansdash/pkg/errors"
)

func testDiagram() Diagram {
	return Diagram{
		Layers: []Layer{
			{ID: "dbhdid", Name: "DBHDID State Oversight", Color: "#1e3a5f", Items: []string{"Statewide Dashboard"}},
			{ID: "cans", Name: "Objective Arts CANS Platform", Color: "#7c3aed"},
			{ID: "barrier", Name: "Integration Barrier", Color: "#dc2626", Barrier: true},
			{ID: "ehr", Name: "Fragmented EHR Systems", Color: "#374151"},
		},
		Centers: []Center{
			{ID: 9, Name: "Pathways", Location: "Ashland", Vendor: "Netsmart", Counties: 5, Confirmed: true},
			{ID: 1, Name: "Four Rivers", Location: "Paducah", Vendor: "Unknown/Other", Counties: 9},
		},
		Vendors: []Vendor{
			{Name: "Netsmart", Color: "#3b82f6", Products: "myAvatar, myEvolv"},
			{Name: "Unknown/Other", Color: "#6b7280"},
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testDiagram())

	for _, want := range []string{
		"digraph G {",
		`subgraph "cluster_dbhdid"`,
		`subgraph "cluster_ehr"`,
		`"cmhc_9" [label="Pathways\nAshland · 5 counties", fillcolor="#3b82f6"]`,
		`"cmhc_1" [label="Four Rivers\nPaducah · 9 counties", fillcolor="#6b7280", style="rounded,filled,dashed"]`,
		`"cmhc_9" -> "vendor_0"`,
		`"vendor_0" -> "cans"`,
		`"cans" -> "dbhdid"`,
		`"barrier" [label="Integration Barrier", style="dashed,bold"`,
		`"ehr_anchor" -> "barrier" [style=invis]`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q", want)
		}
	}
	if strings.Contains(dot, `subgraph "cluster_barrier"`) {
		t.Error("barrier rendered as a cluster")
	}
}

func TestVendorColor(t *testing.T) {
	d := testDiagram()
	if got := d.VendorColor("Netsmart"); got != "#3b82f6" {
		t.Errorf("VendorColor(Netsmart) = %q, want #3b82f6", got)
	}
	if got := d.VendorColor("Epic"); got != unknownVendorColor {
		t.Errorf("VendorColor(Epic) = %q, want %q", got, unknownVendorColor)
	}
	if got := d.Confirmed()["Netsmart"]; got != 1 {
		t.Errorf("Confirmed()[Netsmart] = %d, want 1", got)
	}
}

func TestValidate(t *testing.T) {
	if err := testDiagram().Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	noCenters := testDiagram()
	noCenters.Centers = nil
	if err := noCenters.Validate(); !cerrors.Is(err, cerrors.ErrCodeEmptyDataset) {
		t.Errorf("Validate(no centers) error = %v, want EMPTY_DATASET", err)
	}

	if err := (Diagram{Centers: noCenters.Centers}).Validate(); err == nil {
		t.Error("Validate(no layers) error = nil")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %q, want %q", got, want)
	}
}
