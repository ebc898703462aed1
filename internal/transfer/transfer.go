// Package transfer reads and writes the CSV interchange format used to move
// status records between installations.
package transfer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"shuttle/internal/status"
)

// Header is the canonical column order of the interchange format.
var Header = []string{"id", "name", "status", "source", "lastUpdated", "remarks"}

// ErrHeaderMismatch reports input whose first row is not the expected header.
var ErrHeaderMismatch = errors.New("csv header mismatch")

// Write streams the given records as CSV, header first.
func Write(w io.Writer, files []status.File) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, file := range files {
		lastUpdated := ""
		if !file.LastUpdated.IsZero() {
			lastUpdated = file.LastUpdated.UTC().Format(time.RFC3339Nano)
		}
		row := []string{file.ID, file.Name, string(file.Status), file.Source, lastUpdated, file.Remarks}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row for %s: %w", file.Name, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// Read parses CSV produced by Write (or by hand, as long as the header
// matches) into status records. Rows missing an id are assigned a fresh one
// so hand-edited exports stay importable; everything else is validated and
// rejected with the offending row number.
func Read(r io.Reader) ([]status.File, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(Header)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: input is empty", ErrHeaderMismatch)
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if !headerMatches(header) {
		return nil, fmt.Errorf("%w: expected %q, got %q", ErrHeaderMismatch, strings.Join(Header, ","), strings.Join(header, ","))
	}

	var files []status.File
	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", row, err)
		}
		file, err := fromRow(record)
		if err != nil {
			return nil, fmt.Errorf("csv row %d: %w", row, err)
		}
		files = append(files, file)
	}
	return files, nil
}

func headerMatches(header []string) bool {
	if len(header) != len(Header) {
		return false
	}
	for i, column := range Header {
		if strings.TrimSpace(header[i]) != column {
			return false
		}
	}
	return true
}

func fromRow(record []string) (status.File, error) {
	name := strings.TrimSpace(record[1])
	if name == "" {
		return status.File{}, errors.New("name is required")
	}
	parsed, ok := status.ParseStatus(strings.TrimSpace(record[2]))
	if !ok {
		return status.File{}, fmt.Errorf("unknown status %q", record[2])
	}

	file := status.File{
		ID:      strings.TrimSpace(record[0]),
		Name:    name,
		Status:  parsed,
		Source:  strings.TrimSpace(record[3]),
		Remarks: record[5],
	}
	if file.ID == "" {
		file.ID = uuid.NewString()
	}
	if raw := strings.TrimSpace(record[4]); raw != "" {
		lastUpdated, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return status.File{}, fmt.Errorf("bad lastUpdated %q: %w", raw, err)
		}
		file.LastUpdated = lastUpdated.UTC()
	}
	return file, nil
}
