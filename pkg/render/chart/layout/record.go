package layout

import (
	"math"

	cerrors "github.com/matzehuels/cansdash/pkg/errors"
)

// FieldValue names a record's primary value in field lookups.
const FieldValue = "value"

// Common tag names.
const (
	TagColor  = "color"
	TagRegion = "region"
	TagCity   = "city"
)

// Record is one labeled data point. Fields holds auxiliary numeric values
// (caseload, alerts, ...) and Tags holds classifiers (region, color).
type Record struct {
	Label  string             `json:"label"`
	Value  float64            `json:"value"`
	Fields map[string]float64 `json:"fields,omitempty"`
	Tags   map[string]string  `json:"tags,omitempty"`
}

// Number resolves a numeric field. The empty name and [FieldValue] refer to
// Value; anything else is looked up in Fields.
func (r Record) Number(field string) (float64, bool) {
	if field == "" || field == FieldValue {
		return r.Value, true
	}
	v, ok := r.Fields[field]
	return v, ok
}

// Tag returns the named classifier, or "" when absent.
func (r Record) Tag(name string) string {
	return r.Tags[name]
}

// Dataset is an ordered sequence of records sharing a schema.
type Dataset []Record

// Labels returns the record labels in order.
func (d Dataset) Labels() []string {
	out := make([]string, len(d))
	for i, r := range d {
		out[i] = r.Label
	}
	return out
}

// Sum returns the total of a numeric field, or an INVALID_RECORD error.
func (d Dataset) Sum(field string) (float64, error) {
	values, err := numbers(d, field)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, v := range values {
		total += v
	}
	return total, nil
}

// numbers extracts a required finite numeric field from every record.
func numbers(records Dataset, field string) ([]float64, error) {
	out := make([]float64, len(records))
	for i, r := range records {
		v, ok := r.Number(field)
		if !ok {
			return nil, cerrors.New(cerrors.ErrCodeInvalidRecord,
				"record %d (%q): missing field %q", i, r.Label, field)
		}
		if !finite(v) {
			return nil, cerrors.New(cerrors.ErrCodeInvalidRecord,
				"record %d (%q): field %q is not finite", i, r.Label, field)
		}
		out[i] = v
	}
	return out, nil
}

// optionalNumbers is like numbers but treats a missing field as zero.
func optionalNumbers(records Dataset, field string) ([]float64, error) {
	out := make([]float64, len(records))
	for i, r := range records {
		v, ok := r.Number(field)
		if !ok {
			continue
		}
		if !finite(v) {
			return nil, cerrors.New(cerrors.ErrCodeInvalidRecord,
				"record %d (%q): field %q is not finite", i, r.Label, field)
		}
		out[i] = v
	}
	return out, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func emptyDataset(what string) error {
	return cerrors.New(cerrors.ErrCodeEmptyDataset, "%s: no records", what)
}
