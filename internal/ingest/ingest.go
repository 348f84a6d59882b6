package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrUnreadableFile means every parse strategy was exhausted
	ErrUnreadableFile = errors.New("unable to read file")
	// ErrUnsupportedFormat means the file extension is not csv/xls/xlsx
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// Table is an in-memory rectangular dataset with named columns. Header
// names are trimmed, lowercased and stripped of a leading BOM; every row
// has exactly len(Headers) cells.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Parse reads uploaded bytes into a Table based on the filename extension.
// CSV input goes through delimiter detection with comma and semicolon
// fallbacks; spreadsheets are read from the first sheet.
func Parse(data []byte, filename string) (*Table, error) {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".csv"):
		return parseCSV(data)
	case strings.HasSuffix(name, ".xls"), strings.HasSuffix(name, ".xlsx"):
		return parseExcel(data)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
}

func parseCSV(data []byte) (*Table, error) {
	var lastErr error
	for _, sep := range []rune{sniffDelimiter(data), ',', ';'} {
		table, err := readCSV(data, sep)
		if err == nil {
			return table, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, lastErr)
}

func readCSV(data []byte, sep rune) (*Table, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sep
	reader.FieldsPerRecord = -1 // Allow variable fields
	reader.LazyQuotes = true    // Allow bare quotes in non-quoted fields
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read headers: %w", err)
	}

	rows := [][]string{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		rows = append(rows, record)
	}
	return newTable(headers, rows), nil
}

func parseExcel(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrUnreadableFile)
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: first sheet is empty", ErrUnreadableFile)
	}
	return newTable(rows[0], rows[1:]), nil
}

// sniffDelimiter picks the separator with the most occurrences in the
// header line. Comma wins when nothing else shows up.
func sniffDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}

	best, bestCount := ',', 0
	for _, sep := range []rune{',', ';', '\t', '|'} {
		if c := bytes.Count(line, []byte(string(sep))); c > bestCount {
			best, bestCount = sep, c
		}
	}
	return best
}

func newTable(headers []string, rows [][]string) *Table {
	cleaned := make([]string, len(headers))
	for i, h := range headers {
		h = strings.ReplaceAll(h, "\ufeff", "")
		cleaned[i] = strings.ToLower(strings.TrimSpace(h))
	}

	// Pad ragged rows so every column ends up the same length.
	normalized := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) > len(cleaned) {
			row = row[:len(cleaned)]
		}
		if len(row) < len(cleaned) {
			padded := make([]string, len(cleaned))
			copy(padded, row)
			row = padded
		}
		normalized[i] = row
	}
	return &Table{Headers: cleaned, Rows: normalized}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Column returns the cells of the named column in row order, or nil when
// no such column exists.
func (t *Table) Column(name string) []string {
	idx := -1
	for i, h := range t.Headers {
		if h == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}
	return out
}
