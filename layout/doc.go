// Package layout is a reference implementation of vellum.LayoutEngine:
// a single-pass flexbox solver over float64 pixel units.
//
// The vellum core treats layout as an external collaborator and never
// imports this package; hosts plug it in via vellum.WithLayoutEngine.
// The solver supports row/column direction, grow/shrink factors, gaps,
// min/max constraints, justify distribution, cross-axis alignment, and
// intrinsic content sizes as the auto fallback.
package layout
