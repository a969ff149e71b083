// Package analysis computes filtered per-batch statistics.
//
// Built on gonum.org/v1/gonum for the numeric work. The unit-circle filter
// admits points with squared Euclidean norm ≤ 1 from the origin; the batch
// average is the arithmetic mean of the admitted points' values, defined as
// 0.0 when no point is admitted.
package analysis
