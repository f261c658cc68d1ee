// Package csvread loads a headered CSV source into a frame.Frame with
// typed cell inference.
package csvread

import (
	"bufio"
	"crypto/sha256"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"stressload/internal/frame"
)

// ErrNotFound wraps unreadable source paths so callers can distinguish a
// missing file from a malformed one.
var ErrNotFound = errors.New("source file not found")

// Read loads the CSV at path into a frame. The first record is the header;
// every data record must have the same field count. Empty fields become
// null cells.
func Read(path string) (*frame.Frame, error) {
	fh, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer fh.Close()

	r := csv.NewReader(bufio.NewReader(fh))
	r.ReuseRecord = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("read header: empty file %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	names := make([]string, len(header))
	copy(names, header)
	cols := make([][]frame.Value, len(names))

	for rowNum := 1; ; rowNum++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", rowNum, err)
		}
		for i, raw := range rec {
			cols[i] = append(cols[i], frame.Parse(raw))
		}
	}

	f := frame.New()
	for i, name := range names {
		if err := f.AddColumn(name, cols[i]); err != nil {
			return nil, fmt.Errorf("build frame: %w", err)
		}
	}
	return f, nil
}

// Fingerprint computes the hex-encoded SHA-256 of the file at path,
// recorded in run summaries for provenance.
func Fingerprint(path string) (string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for hash: %w", err)
	}
	defer fh.Close()

	h := sha256.New()
	if _, err := io.Copy(h, fh); err != nil {
		return "", fmt.Errorf("hash file: %w", err)
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
