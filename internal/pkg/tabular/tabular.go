// Package tabular decodes uploaded CSV and spreadsheet files into a header
// row plus string-field records, which is all the import pipeline needs.
package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/rcaa/rcaconnect/internal/pkg/apperrors"
)

// Table holds decoded tabular data. Headers are normalized (lower-case,
// trimmed, spaces replaced with underscores); each row maps header to the
// trimmed cell value, with missing trailing cells as empty strings.
type Table struct {
	Headers []string
	Rows    []map[string]string
}

// SupportedExtension reports whether the filename carries an importable
// extension.
func SupportedExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".xlsx", ".xls":
		return true
	}
	return false
}

// Read decodes the file content according to the filename's extension.
// Unsupported extensions (or a missing filename) fail with
// apperrors.ErrUnsupportedFormat before any row is touched.
func Read(filename string, r io.Reader) (*Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return readCSV(r)
	case ".xlsx":
		return readXLSX(r)
	case ".xls":
		return readXLS(r)
	default:
		return nil, apperrors.ErrUnsupportedFormat
	}
}

// NormalizeHeader canonicalizes a header cell: trimmed, lower-cased, inner
// spaces collapsed to underscores.
func NormalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.Join(strings.Fields(h), "_")
}

func readCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Ragged rows are tolerated
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}

	return fromRecords(records), nil
}

func readXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &Table{}, nil
	}

	// First sheet only; its first row supplies the headers.
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read xlsx rows: %w", err)
	}

	return fromRecords(records), nil
}

func readXLS(r io.Reader) (*Table, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read xls: %w", err)
	}

	wb, err := xls.OpenReader(bytes.NewReader(content), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open xls: %w", err)
	}

	records := wb.ReadAllCells(1 << 16)
	return fromRecords(records), nil
}

func fromRecords(records [][]string) *Table {
	if len(records) == 0 {
		return &Table{}
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = NormalizeHeader(h)
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(record) {
				row[h] = strings.TrimSpace(record[i])
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}

	return &Table{Headers: headers, Rows: rows}
}
