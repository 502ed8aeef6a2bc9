// Package report holds the result of a validation and aggregation run: order and line
// counts, the per-order problems, and the optional aggregates (GMV per order, top SKUs).
//
// A Report is built once by the report builder and never changed afterwards. Summary
// renders it as a single deterministic line of text; MarshalJSON renders the structured
// form used by the HTTP adapter and the CLI.
package report
