// Package dataset loads grouped measurement files.
//
// The input format is one record per line, four comma-separated fields:
//
//	<batch>,<x>,<y>,<value>
//
// batch is kept as an opaque string; x, y and value must parse as float64.
// Fields may be padded with whitespace. Lines that do not fit the format are
// skipped with a warning on the error stream; blank lines are skipped
// silently. Loading is idempotent: the same file always yields structurally
// identical batch groups.
package dataset
