// Package report presents per-batch results.
//
// Three surfaces:
//   - WriteTable: tab-separated Batch/Average table on a writer, rows
//     ordered by numeric batch id
//   - RenderPlot: scatter plot of all points with the unit circle, built on
//     gonum.org/v1/plot
//   - WriteJSON: machine-readable results export via sonic
//
// The table and the plot are the program's contract; the JSON export is an
// opt-in extra for downstream tooling.
package report
