package report

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/GriffinCanCode/batchplot/internal/analysis"
)

// ErrMalformedBatchID reports a batch id that is not a numeric string. The
// table orders rows by numeric batch id, so a non-numeric id aborts the
// table stage.
var ErrMalformedBatchID = errors.New("batch id is not numeric")

// WriteTable prints the per-batch averages as a tab-separated two-column
// table, rows ordered by the numeric value of the batch id. Nothing is
// written when the sort key cannot be computed.
func WriteTable(w io.Writer, averages []analysis.BatchAverage) error {
	type row struct {
		key float64
		analysis.BatchAverage
	}

	rows := make([]row, len(averages))
	for i, avg := range averages {
		key, err := strconv.ParseFloat(avg.Batch, 64)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrMalformedBatchID, avg.Batch)
		}
		rows[i] = row{key: key, BatchAverage: avg}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].key < rows[j].key })

	fmt.Fprintln(w, "Batch\tAverage")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\n", r.Batch, strconv.FormatFloat(r.Average, 'g', -1, 64))
	}
	return nil
}
