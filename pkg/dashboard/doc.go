// Package dashboard is the CANS dashboard domain: the center and
// assessment datasets, the KPIs derived from them, and one chart builder
// per view.
//
// # Data
//
// [Data] bundles everything the dashboard draws. [Sample] returns the
// bundled illustrative fixtures; any conforming Data (for example one
// imported with pkg/io) works the same way.
//
// # Views
//
// A [View] is the only mutable state of a dashboard session: the active
// [Tab] and the selected center. Views are values. Transitions
// ([View.WithTab], [View.Toggle], [View.Next], [View.Prev]) return new
// views, and shells replace their current view wholesale.
//
//	v := dashboard.NewView().WithTab(dashboard.TabCompare)
//	chart, err := dashboard.Build(data, v, dashboard.Size{})
//
// [Build] is pure and synchronous. It recomputes the whole chart for the
// view from the injected data on every call.
//
// # Bands
//
// Outcome rates are banded at 12% (strong) and 8% (moderate); matched
// complexity reductions at 10% and 7%. Intake complexity at or above 2.5 is
// flagged.
package dashboard
