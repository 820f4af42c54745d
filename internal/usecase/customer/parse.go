package customer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	MaxImportRows  = 1000
	MaxImportBytes = 5 << 20
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrMissingColumns    = errors.New("header must contain name and phone columns")
	ErrTooManyRows       = fmt.Errorf("file has more than %d rows", MaxImportRows)
	ErrFileTooLarge      = fmt.Errorf("file is larger than %d bytes", MaxImportBytes)
)

// Row is one data line of an import file. Line is 1-based and counts the
// header.
type Row struct {
	Line  int
	Name  string
	Phone string
	Email string
}

var headerAliases = map[string]string{
	"name":     "name",
	"nome":     "name",
	"customer": "name",
	"cliente":  "name",
	"phone":    "phone",
	"telefone": "phone",
	"celular":  "phone",
	"whatsapp": "phone",
	"email":    "email",
	"e-mail":   "email",
}

// ParseFile reads a .csv or .xlsx file (first sheet) of at most
// MaxImportBytes. The first non-blank line is the header; blank lines are
// skipped.
func ParseFile(name string, r io.Reader) ([]Row, error) {
	ext := strings.ToLower(path.Ext(name))
	if ext != ".csv" && ext != ".xlsx" {
		return nil, ErrUnsupportedFormat
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxImportBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", ext, err)
	}
	if len(data) > MaxImportBytes {
		return nil, ErrFileTooLarge
	}

	var records []record
	if ext == ".csv" {
		records, err = readCSV(data)
	} else {
		records, err = readXLSX(data)
	}
	if err != nil {
		return nil, err
	}

	return mapRows(records)
}

type record struct {
	line  int
	cells []string
}

func readCSV(data []byte) ([]record, error) {
	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	// Spreadsheet exports in pt-BR locales use ';'.
	first, _, _ := bytes.Cut(bytes.TrimLeft(data, "\r\n"), []byte("\n"))
	if bytes.Contains(first, []byte(";")) && !bytes.Contains(first, []byte(",")) {
		cr.Comma = ';'
	}

	var out []record
	for {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		line, _ := cr.FieldPos(0)
		out = append(out, record{line: line, cells: cells})
	}
	return out, nil
}

func readXLSX(data []byte) ([]record, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("xlsx has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	out := make([]record, 0, len(rows))
	for i, cells := range rows {
		out = append(out, record{line: i + 1, cells: cells})
	}
	return out, nil
}

func mapRows(records []record) ([]Row, error) {
	header := -1
	for i, rec := range records {
		if !blank(rec.cells) {
			header = i
			break
		}
	}
	if header < 0 {
		return []Row{}, nil
	}

	idx := map[string]int{}
	for col, h := range records[header].cells {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if field, ok := headerAliases[key]; ok {
			if _, dup := idx[field]; !dup {
				idx[field] = col
			}
		}
	}
	if _, ok := idx["name"]; !ok {
		return nil, ErrMissingColumns
	}
	if _, ok := idx["phone"]; !ok {
		return nil, ErrMissingColumns
	}

	cell := func(rec []string, field string) string {
		col, ok := idx[field]
		if !ok || col >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[col])
	}

	out := []Row{}
	for _, rec := range records[header+1:] {
		if blank(rec.cells) {
			continue
		}
		if len(out) == MaxImportRows {
			return nil, ErrTooManyRows
		}
		out = append(out, Row{
			Line:  rec.line,
			Name:  cell(rec.cells, "name"),
			Phone: cell(rec.cells, "phone"),
			Email: cell(rec.cells, "email"),
		})
	}

	return out, nil
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
