package analysis

import "github.com/GriffinCanCode/batchplot/internal/dataset"

// InUnitCircle reports whether (x, y) lies inside or on the unit circle,
// i.e. x²+y² ≤ 1. The boundary is inclusive.
func InUnitCircle(x, y float64) bool {
	return x*x+y*y <= 1
}

// FilterInCircle returns the records whose sample position lies inside or on
// the unit circle. The input is not mutated and order is preserved.
func FilterInCircle(records []dataset.Record) []dataset.Record {
	var kept []dataset.Record
	for _, r := range records {
		if InUnitCircle(r.X, r.Y) {
			kept = append(kept, r)
		}
	}
	return kept
}
