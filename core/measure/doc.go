// Package measure implements the computation engine behind marginal
// abatement cost curve modeling. A Draft holds the editable state of a
// measure (driver lines, adoption ramp, cost stack); Engine.Compute
// evaluates it over the configured year grid into per-year emissions and
// cost figures plus a finance summary; Freeze collapses the result into
// an immutable Measure record for persistence and ranking.
//
// Key components:
//   - Engine: year grid, base year and currency unit scale; pure Compute.
//   - Draft / DriverLine / ElectricityLine / CostStack: editable inputs.
//   - Computation / YearResult / FinanceSummary: engine output.
//   - Measure / Details: frozen record, reconstructable into a Draft.
//   - Store: persistence interface implemented in infra/store.
//
// All computation is synchronous, side-effect free and deterministic:
// identical inputs always produce identical output, which the callers
// rely on for live recomputation on edit. Degenerate inputs (missing
// catalog keys, zero denominators, blank series entries) degrade to zero
// or nil values; Compute never returns an error.
package measure
