package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/batchplot/internal/analysis"
	"github.com/GriffinCanCode/batchplot/internal/config"
	"github.com/GriffinCanCode/batchplot/internal/dataset"
	"github.com/GriffinCanCode/batchplot/internal/logging"
	"github.com/GriffinCanCode/batchplot/internal/report"
)

func main() {
	// Parse flags
	file := flag.String("file", "", "Input CSV file (skips the interactive prompt)")
	export := flag.String("export", "", "Write per-batch results as JSON to this file")
	flag.Parse()

	cfg := config.LoadOrDefault()
	logger := logging.NewOrNop(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	defer logger.Sync()

	os.Exit(run(*file, *export, cfg, logger))
}

// run executes the load → average → table → plot pipeline and returns the
// process exit code.
func run(path, export string, cfg *config.Config, logger *logging.Logger) int {
	if path == "" {
		path = promptForFile()
	}

	loader := dataset.NewLoader(logger, os.Stderr)
	group, err := loader.LoadFile(path)
	if err != nil {
		if errors.Is(err, dataset.ErrFileNotFound) {
			fmt.Fprintf(os.Stderr, "Error: File '%s' not found.\n", path)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}

	averages := analysis.BatchAverages(group)

	// A bad batch id aborts the table only; the plot still renders.
	failed := false
	if err := report.WriteTable(os.Stdout, averages); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		failed = true
	}

	if export != "" {
		if err := report.WriteJSON(export, averages); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed = true
		} else {
			logger.Debug("exported results", zap.String("path", export))
		}
	}

	base := strings.TrimSuffix(path, filepath.Ext(path))
	out, err := report.RenderPlot(group, base, cfg.Plot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		failed = true
	} else {
		fmt.Printf("A plot of the data can be found in %s\n", out)
	}

	if failed {
		return 1
	}
	return 0
}

// promptForFile asks for the input filename on stdin.
func promptForFile() string {
	fmt.Print("Which CSV file should be analyzed? ")
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
