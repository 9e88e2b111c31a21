// Package io reads and writes dashboard datasets as JSON, YAML or TOML.
//
// # Format
//
// All three encodings share the snake_case field names of
// [dashboard.Data]:
//
//	centers:
//	  - id: 1
//	    name: Four Rivers
//	    city: Paducah
//	    region: 1
//	    counties: 9
//	    caseload: 2394
//	    avg_intake_complexity: 2.4
//	    outcome_improvement: 11
//	    alerts: 1
//	intake:
//	  - {name: "Critical (3)", count: 6692, color: "#dc2626"}
//	flows:
//	  - {from: 0, to: 0, weight: 0.4}
//
// Unknown keys are rejected so that a misspelled field fails loudly
// instead of silently drawing zeros.
//
// # Import
//
// [ImportData] picks the decoder from the file extension (.json, .yaml,
// .yml, .toml); [ReadData] takes the format explicitly:
//
//	data, err := io.ImportData("centers.yaml")
//
// Both validate the result with [dashboard.Data.Validate].
//
// # Export
//
// [ExportData] and [WriteData] are the inverse. Exporting [dashboard.Sample]
// is the easiest way to get a template for a real dataset:
//
//	err := io.ExportData("sample.toml", dashboard.Sample())
package io
