// Package input acquires the input records for a run: one record per line,
// fully materialized before any dispatch begins.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// maxRecordBytes caps a single input record (1 MiB).
const maxRecordBytes = 1024 * 1024

// ReadFile reads records from a file, one per line. An unreadable file is a
// configuration-time failure for the caller to report before dispatch.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	lines, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read input file %s: %w", path, err)
	}
	return lines, nil
}

// Read reads records from r, one per line. Empty lines are kept: they are
// legitimate records, the template decides what to do with them.
func Read(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordBytes)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}
	return lines, nil
}
