// Package wordpool loads clue datasets for batch auditing. CSV files use a
// header row to name columns; JSON files hold an array of clue records.
// Malformed rows are skipped and collected rather than aborting the load, so
// one bad row never sinks a whole archive.
package wordpool

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/setterlab/cluewright/internal/clue"
)

// RowError records a skipped dataset row.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Load reads a clue dataset from path, selected by extension (.csv or .json).
func Load(path string) ([]clue.Record, []RowError, error) {
	switch ext := filepath.Ext(path); ext {
	case ".csv":
		return LoadCSV(path)
	case ".json":
		records, err := LoadJSON(path)
		return records, nil, err
	default:
		return nil, nil, fmt.Errorf("unsupported dataset type %q (want .csv or .json)", ext)
	}
}

// LoadJSON reads a JSON array of clue records.
func LoadJSON(path string) ([]clue.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	var records []clue.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding dataset JSON: %w", err)
	}
	return records, nil
}

// csv columns recognized in the header row, case-insensitive.
const (
	colAnswer      = "answer"
	colClue        = "clue"
	colDefinition  = "definition"
	colType        = "type"
	colFodder      = "fodder"
	colIndicator   = "indicator"
	colMechanism   = "mechanism"
	colOuter       = "outer"
	colInner       = "inner"
	colEnumeration = "enumeration"
)

// LoadCSV reads a headered CSV clue dataset. Rows with no answer, or with
// the wrong field count, are skipped and reported.
func LoadCSV(path string) ([]clue.Record, []RowError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("reading dataset header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := index[colAnswer]; !ok {
		return nil, nil, fmt.Errorf("dataset header has no %q column", colAnswer)
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []clue.Record
	var skipped []RowError
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped = append(skipped, RowError{Line: line, Err: err})
			continue
		}

		answer := field(row, colAnswer)
		if answer == "" {
			skipped = append(skipped, RowError{Line: line, Err: fmt.Errorf("row has no answer")})
			continue
		}

		records = append(records, clue.Record{
			Answer:      strings.ToUpper(answer),
			Clue:        field(row, colClue),
			Definition:  field(row, colDefinition),
			Type:        field(row, colType),
			Enumeration: field(row, colEnumeration),
			Wordplay: clue.Wordplay{
				Fodder:    field(row, colFodder),
				Indicator: field(row, colIndicator),
				Mechanism: field(row, colMechanism),
				Outer:     field(row, colOuter),
				Inner:     field(row, colInner),
			},
		})
	}

	return records, skipped, nil
}
