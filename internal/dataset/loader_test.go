package dataset

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/batchplot/internal/logging"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestLoader(warnings *bytes.Buffer) *Loader {
	return NewLoader(&logging.Logger{Logger: zap.NewNop()}, warnings)
}

func TestLoader(t *testing.T) {
	t.Run("groups records by batch in first-seen order", func(t *testing.T) {
		path := writeInput(t, "2,0,0,1\n1,0.5,0.5,20\n2,1,0,5\n")
		var warnings bytes.Buffer

		group, err := newTestLoader(&warnings).LoadFile(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"2", "1"}, group.Batches())
		assert.Len(t, group.Records("2"), 2)
		assert.Len(t, group.Records("1"), 1)
		assert.Equal(t, Record{Batch: "1", X: 0.5, Y: 0.5, Value: 20}, group.Records("1")[0])
		assert.Empty(t, warnings.String())
	})

	t.Run("trims whitespace around fields", func(t *testing.T) {
		path := writeInput(t, " 1 , 0.5 ,\t0.5 , 20 \n")
		var warnings bytes.Buffer

		group, err := newTestLoader(&warnings).LoadFile(path)
		require.NoError(t, err)

		require.Len(t, group.Records("1"), 1)
		assert.Equal(t, Record{Batch: "1", X: 0.5, Y: 0.5, Value: 20}, group.Records("1")[0])
	})

	t.Run("skips blank lines silently", func(t *testing.T) {
		path := writeInput(t, "\n1,0,0,10\n   \n\n1,0.5,0.5,20\n")
		var warnings bytes.Buffer

		group, err := newTestLoader(&warnings).LoadFile(path)
		require.NoError(t, err)

		assert.Len(t, group.Records("1"), 2)
		assert.Empty(t, warnings.String())
	})

	t.Run("warns once per malformed line and keeps loading", func(t *testing.T) {
		path := writeInput(t, "1,0,0,10\n2,0,oops,3\n3,0.1,0.1,7\n")
		var warnings bytes.Buffer

		group, err := newTestLoader(&warnings).LoadFile(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"1", "3"}, group.Batches())

		lines := strings.Split(strings.TrimRight(warnings.String(), "\n"), "\n")
		require.Len(t, lines, 1)
		assert.Contains(t, lines[0], "Warning: invalid data in line 2: 2,0,oops,3")
		assert.Contains(t, lines[0], "not a number")
	})

	t.Run("warns on wrong field count", func(t *testing.T) {
		path := writeInput(t, "1,0,0\n1,0,0,1,extra\n")
		var warnings bytes.Buffer

		group, err := newTestLoader(&warnings).LoadFile(path)
		require.NoError(t, err)

		assert.Zero(t, group.Len())
		assert.Contains(t, warnings.String(), "Warning: invalid data in line 1")
		assert.Contains(t, warnings.String(), "Warning: invalid data in line 2")
	})

	t.Run("missing file is ErrFileNotFound", func(t *testing.T) {
		var warnings bytes.Buffer

		_, err := newTestLoader(&warnings).LoadFile(filepath.Join(t.TempDir(), "nope.csv"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrFileNotFound))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("loading twice yields identical groups", func(t *testing.T) {
		path := writeInput(t, "1,0,0,10\n1,0.5,0.5,20\n2,2,2,99\n")
		var warnings bytes.Buffer
		loader := newTestLoader(&warnings)

		first, err := loader.LoadFile(path)
		require.NoError(t, err)
		second, err := loader.LoadFile(path)
		require.NoError(t, err)

		assert.Equal(t, first.Batches(), second.Batches())
		for _, batch := range first.Batches() {
			assert.Equal(t, first.Records(batch), second.Records(batch))
		}
	})
}

func TestBatchGroup(t *testing.T) {
	group := NewBatchGroup()
	group.Add(Record{Batch: "b", Value: 1})
	group.Add(Record{Batch: "a", Value: 2})
	group.Add(Record{Batch: "b", Value: 3})

	assert.Equal(t, []string{"b", "a"}, group.Batches())
	assert.Equal(t, 2, group.Len())
	assert.Equal(t, 3, group.Size())
	assert.Nil(t, group.Records("missing"))
}
