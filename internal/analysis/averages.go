package analysis

import (
	"github.com/GriffinCanCode/batchplot/internal/dataset"
)

// BatchAverage is the filtered mean of one batch, with the point counts the
// mean was computed from.
type BatchAverage struct {
	Batch    string  `json:"batch"`
	Average  float64 `json:"average"`
	Points   int     `json:"points"`
	Retained int     `json:"retained"`
}

// BatchAverages computes the unit-circle-filtered mean of every batch in
// first-seen order. Points is the batch's full record count, Retained the
// count that passed the filter.
func BatchAverages(group *dataset.BatchGroup) []BatchAverage {
	averages := make([]BatchAverage, 0, group.Len())
	for _, batch := range group.Batches() {
		records := group.Records(batch)
		kept := FilterInCircle(records)

		values := make([]float64, len(kept))
		for i, r := range kept {
			values[i] = r.Value
		}

		averages = append(averages, BatchAverage{
			Batch:    batch,
			Average:  Mean(values),
			Points:   len(records),
			Retained: len(kept),
		})
	}
	return averages
}
