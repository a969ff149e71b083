package report

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"

	"github.com/GriffinCanCode/batchplot/internal/analysis"
)

// WriteJSON writes the per-batch averages to path as indented JSON
// (fast encoding via sonic). Order follows the input slice.
func WriteJSON(path string, averages []analysis.BatchAverage) error {
	data, err := sonic.MarshalIndent(averages, "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
