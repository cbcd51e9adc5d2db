package csv2html

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Table is an in-memory CSV table: a header row plus data rows. Rows may
// be shorter than the header; missing cells read as empty.
type Table struct {
	Header []string
	Rows   [][]string
}

// utf8BOM is the byte-order mark some spreadsheet exports prepend.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadTable parses a CSV stream into a Table. A leading UTF-8 byte-order
// mark is tolerated and stripped. Records may have varying field counts.
func ReadTable(r io.Reader) (*Table, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoHeader
	}

	return &Table{Header: records[0], Rows: records[1:]}, nil
}

// ReadTableFile reads and parses a CSV file. The file handle is closed
// before returning.
func ReadTableFile(path string) (*Table, error) {
	f, err := os.Open(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, fmt.Errorf("opening csv: %w", err)
	}
	defer f.Close()

	t, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
