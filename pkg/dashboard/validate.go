package dashboard

import (
	"fmt"

	cerrors "github.com/matzehuels/cansdash/pkg/errors"
)

// Validate checks data loaded from outside the program. It requires at
// least one center, valid labels and colors, finite numbers, and flows
// whose indices fall inside the intake and outcome columns. An empty
// architecture section is allowed; a non-empty one must be complete.
func (d Data) Validate() error {
	if len(d.Centers) == 0 {
		return cerrors.New(cerrors.ErrCodeEmptyDataset, "data has no centers")
	}

	for _, r := range d.Regions {
		if err := cerrors.ValidateColor(r.Color); err != nil {
			return fmt.Errorf("region %d: %w", r.ID, err)
		}
	}

	ids := make(map[int]bool, len(d.Centers))
	for _, c := range d.Centers {
		if ids[c.ID] {
			return cerrors.New(cerrors.ErrCodeInvalidRecord, "duplicate center id %d", c.ID)
		}
		ids[c.ID] = true
		if err := validateRow(c.Name, map[string]float64{
			"avg_intake_complexity": c.AvgIntakeComplexity,
			"outcome_improvement":   c.OutcomeImprovement,
		}); err != nil {
			return fmt.Errorf("center %d: %w", c.ID, err)
		}
	}

	for name, levels := range map[string][]Level{"intake": d.Intake, "outcome": d.Outcome} {
		for _, l := range levels {
			if err := validateRow(l.Name, map[string]float64{"count": l.Count}); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if l.Count < 0 {
				return cerrors.New(cerrors.ErrCodeInvalidRecord, "%s %q: negative count", name, l.Name)
			}
			if err := cerrors.ValidateColor(l.Color); err != nil {
				return fmt.Errorf("%s %q: %w", name, l.Name, err)
			}
		}
	}
	for i, f := range d.Flows {
		if f.From < 0 || f.From >= len(d.Intake) || f.To < 0 || f.To >= len(d.Outcome) {
			return cerrors.New(cerrors.ErrCodeInvalidRecord, "flow %d: index out of range (%d -> %d)", i, f.From, f.To)
		}
		if err := cerrors.ValidateFinite("weight", f.Weight); err != nil {
			return fmt.Errorf("flow %d: %w", i, err)
		}
	}

	for _, c := range d.Complexity {
		if err := validateRow(c.Name, map[string]float64{"avg_complexity": c.AvgComplexity}); err != nil {
			return fmt.Errorf("complexity: %w", err)
		}
	}
	for region, color := range d.RegionColors {
		if err := cerrors.ValidateColor(color); err != nil {
			return fmt.Errorf("region color %q: %w", region, err)
		}
	}
	for _, s := range d.Domains {
		if err := validateRow(s.Domain, map[string]float64{
			FieldStatewide: s.Statewide, FieldEastern: s.Eastern,
			FieldCentral: s.Central, FieldWestern: s.Western,
		}); err != nil {
			return fmt.Errorf("domains: %w", err)
		}
	}
	for _, r := range d.Improvement {
		if err := validateRow(r.Center, map[string]float64{"improvement_pct": r.ImprovementPct}); err != nil {
			return fmt.Errorf("improvement: %w", err)
		}
	}
	for _, p := range d.Trend {
		if err := validateRow(p.Month, map[string]float64{
			"avg_complexity": p.AvgComplexity, "high_complexity_pct": p.HighComplexityPct,
		}); err != nil {
			return fmt.Errorf("trend: %w", err)
		}
	}

	a := d.Architecture
	if len(a.Layers) > 0 || len(a.Centers) > 0 {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("architecture: %w", err)
		}
	}
	return nil
}

func validateRow(label string, fields map[string]float64) error {
	if err := cerrors.ValidateLabel(label); err != nil {
		return err
	}
	for name, v := range fields {
		if err := cerrors.ValidateFinite(name, v); err != nil {
			return fmt.Errorf("%s: %w", label, err)
		}
	}
	return nil
}
