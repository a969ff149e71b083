package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/batchplot/internal/logging"
)

// ErrFileNotFound reports a missing input file. It wraps os.ErrNotExist so
// callers can still test with errors.Is(err, os.ErrNotExist).
var ErrFileNotFound = fmt.Errorf("input file not found: %w", os.ErrNotExist)

// fieldsPerRecord is the required field count of one input line:
// batch, x, y, value.
const fieldsPerRecord = 4

// Loader reads delimited measurement files into batch groups.
//
// Malformed lines are recoverable: each one produces a warning on the
// Warnings writer and is skipped. Only a missing or unreadable file aborts
// the load.
type Loader struct {
	log      *logging.Logger
	warnings io.Writer
}

// NewLoader creates a loader. Warnings for malformed lines go to warnings,
// which is normally os.Stderr.
func NewLoader(log *logging.Logger, warnings io.Writer) *Loader {
	return &Loader{log: log, warnings: warnings}
}

// LoadFile reads the file at path and groups its records by batch id.
// A missing file returns ErrFileNotFound; other open/read failures are
// returned wrapped.
func (l *Loader) LoadFile(path string) (*BatchGroup, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	group, err := l.load(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	l.log.Debug("loaded input file",
		zap.String("path", path),
		zap.Int("batches", group.Len()),
		zap.Int("records", group.Size()))
	return group, nil
}

// load scans r line by line. Blank lines are skipped silently; lines with
// the wrong field count or non-numeric fields are skipped with a warning.
func (l *Loader) load(r io.Reader) (*BatchGroup, error) {
	group := NewBatchGroup()
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		if strings.TrimSpace(raw) == "" {
			continue
		}

		rec, err := parseLine(raw)
		if err != nil {
			l.warn(lineNo, raw, err)
			continue
		}
		group.Add(rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return group, nil
}

// parseLine splits one raw line into a Record. The format is a bare
// comma-split (no quoting); fields may be padded with whitespace.
func parseLine(raw string) (Record, error) {
	fields := strings.Split(raw, ",")
	if len(fields) != fieldsPerRecord {
		return Record{}, fmt.Errorf("expected %d fields, got %d", fieldsPerRecord, len(fields))
	}
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}

	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Record{}, fmt.Errorf("field x: %q is not a number", fields[1])
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Record{}, fmt.Errorf("field y: %q is not a number", fields[2])
	}
	value, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return Record{}, fmt.Errorf("field value: %q is not a number", fields[3])
	}

	return Record{Batch: fields[0], X: x, Y: y, Value: value}, nil
}

// warn writes the fixed-format warning line for a skipped record.
func (l *Loader) warn(lineNo int, raw string, reason error) {
	fmt.Fprintf(l.warnings, "Warning: invalid data in line %d: %s (%s)\n", lineNo, raw, reason)
	l.log.Debug("skipped malformed line",
		zap.Int("line", lineNo),
		zap.Error(reason))
}
