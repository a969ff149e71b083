package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/batchplot/internal/config"
	"github.com/GriffinCanCode/batchplot/internal/logging"
)

func TestRun(t *testing.T) {
	logger := &logging.Logger{Logger: zap.NewNop()}

	t.Run("missing file exits non-zero", func(t *testing.T) {
		code := run(filepath.Join(t.TempDir(), "nope.csv"), "", config.Default(), logger)
		assert.Equal(t, 1, code)
	})

	t.Run("full pipeline", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "measurements.csv")
		require.NoError(t, os.WriteFile(input, []byte("1,0,0,10\n1,0.5,0.5,20\n2,2,2,99\n"), 0o644))

		cfg := config.Default()
		cfg.Plot.Format = "png"
		export := filepath.Join(dir, "results.json")

		code := run(input, export, cfg, logger)
		assert.Equal(t, 0, code)

		_, err := os.Stat(filepath.Join(dir, "measurements.png"))
		assert.NoError(t, err)
		_, err = os.Stat(export)
		assert.NoError(t, err)
	})

	t.Run("non-numeric batch id fails the run but still plots", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "named.csv")
		require.NoError(t, os.WriteFile(input, []byte("control,0,0,10\n"), 0o644))

		cfg := config.Default()
		cfg.Plot.Format = "png"

		code := run(input, "", cfg, logger)
		assert.Equal(t, 1, code)

		_, err := os.Stat(filepath.Join(dir, "named.png"))
		assert.NoError(t, err)
	})
}
