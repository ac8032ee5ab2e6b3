// Package scores persists the best-known result for each solved level.
//
// The file is plain text:
//
//	<version>
//	<count>
//	<level> <pushes> <moves> <elapsed_seconds>
//	...
//
// level is the 0-based level index.
package scores

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Version is the only score file version this build reads and writes.
const Version = 1

// MaxRecords is the largest count the header field can hold.
const MaxRecords = math.MaxUint8

// Record is the first winning result of one level.
type Record struct {
	Level   uint16
	Pushes  uint16
	Moves   uint16
	Elapsed uint32 // seconds
}

// NewRecord builds a record, saturating counters that do not fit the
// file's field widths.
func NewRecord(level, pushes, moves int, elapsed uint32) Record {
	return Record{
		Level:   clamp16(level),
		Pushes:  clamp16(pushes),
		Moves:   clamp16(moves),
		Elapsed: elapsed,
	}
}

func clamp16(v int) uint16 {
	if v < 0 {
		return 0
	}
	if v > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(v)
}

// FormatError is returned by Load for a file this build cannot read.
// The only remedy is deleting the file.
type FormatError struct {
	Path   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("scores: %s. Please delete the scores file %s", e.Reason, e.Path)
}

// Load reads the score file at path. A missing file yields no records and
// no error.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scores: reading %s: %w", path, err)
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	header := func() (int, bool) {
		if !sc.Scan() {
			return 0, false
		}
		v, err := strconv.ParseUint(strings.TrimSpace(sc.Text()), 10, 8)
		return int(v), err == nil
	}

	version, ok := header()
	if !ok || version != Version {
		return nil, &FormatError{Path: path, Reason: "invalid scores version"}
	}
	count, ok := header()
	if !ok {
		return nil, &FormatError{Path: path, Reason: "invalid number of scores"}
	}

	var records []Record
	lineNo := 2
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		rec, err := parseRecord(line)
		if err != nil {
			return nil, &FormatError{Path: path, Reason: fmt.Sprintf("line %d: %v", lineNo, err)}
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scores: reading %s: %w", path, err)
	}

	if count != len(records) {
		return nil, &FormatError{
			Path:   path,
			Reason: fmt.Sprintf("invalid number of scores (read %d parsed %d)", count, len(records)),
		}
	}
	return records, nil
}

func parseRecord(line string) (Record, error) {
	f := strings.Fields(line)
	if len(f) != 4 {
		return Record{}, fmt.Errorf("want 4 fields, got %d", len(f))
	}
	var vals [3]uint16
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(f[i], 10, 16)
		if err != nil {
			return Record{}, fmt.Errorf("field %d: %w", i+1, err)
		}
		vals[i] = uint16(v)
	}
	elapsed, err := strconv.ParseUint(f[3], 10, 32)
	if err != nil {
		return Record{}, fmt.Errorf("field 4: %w", err)
	}
	return Record{
		Level:   vals[0],
		Pushes:  vals[1],
		Moves:   vals[2],
		Elapsed: uint32(elapsed),
	}, nil
}

// Save rewrites the score file with records. An empty list writes nothing,
// so a fresh game keeps having no file.
func Save(path string, records []Record) error {
	if len(records) == 0 {
		return nil
	}
	if len(records) > MaxRecords {
		return fmt.Errorf("scores: %d records exceed the file limit of %d", len(records), MaxRecords)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d\n%d\n", Version, len(records))
	for _, r := range records {
		fmt.Fprintf(&buf, "%d %d %d %d\n", r.Level, r.Pushes, r.Moves, r.Elapsed)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("scores: creating directory: %w", err)
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("scores: writing %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("scores: writing %s: %w", path, err)
	}
	return nil
}
