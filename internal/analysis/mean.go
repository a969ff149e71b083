package analysis

import "gonum.org/v1/gonum/stat"

// Mean returns the arithmetic mean of values using gonum. The mean of zero
// elements is defined as 0.0 so that a batch with no retained points reports
// an average instead of failing on division by zero.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}
