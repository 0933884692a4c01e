//Package table models the named tables emitted by the generator and provides
//the generic tab separated writer. A table is fully materialized in memory,
//written once and discarded; there are no partial writes.
package table

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//Table bundles a filename with an ordered header and the data rows.
//Every row must have exactly len(Header) cells. Cells are pre formatted,
//see Float, Sci and Int. Cells may not contain tab characters, the writer
//performs no escaping.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

//New creates an empty table for the given filename and column names
func New(name string, header ...string) *Table {
	return &Table{
		Name:   name,
		Header: header,
		Rows:   make([][]string, 0),
	}
}

//AppendRow adds one data row. An arity mismatch with the header is a
//programmer error in the calling recipe and panics
func (t *Table) AppendRow(cells ...string) {
	if len(cells) != len(t.Header) {
		panic(fmt.Sprintf("table %v : row has %v cells but header has %v columns", t.Name, len(cells), len(t.Header)))
	}
	t.Rows = append(t.Rows, cells)
}

//WriteTSV serializes t into dir/t.Name: first line is the tab joined header,
//followed by one tab joined line per row, in order. Returns the number of
//data rows written. I/O errors are propagated, not recovered.
func WriteTSV(dir string, t *Table) (int, error) {
	outFile, err := os.Create(filepath.Join(dir, t.Name))
	if err != nil {
		return 0, fmt.Errorf("failed to create %v : %w", t.Name, err)
	}

	buf := bufio.NewWriter(outFile)
	if _, err := buf.WriteString(strings.Join(t.Header, "\t") + "\n"); err != nil {
		_ = outFile.Close()
		return 0, fmt.Errorf("failed to write header of %v : %w", t.Name, err)
	}
	for i := range t.Rows {
		if _, err := buf.WriteString(strings.Join(t.Rows[i], "\t") + "\n"); err != nil {
			_ = outFile.Close()
			return 0, fmt.Errorf("failed to write row %v of %v : %w", i, t.Name, err)
		}
	}
	if err := buf.Flush(); err != nil {
		_ = outFile.Close()
		return 0, fmt.Errorf("failed to flush %v : %w", t.Name, err)
	}
	if err := outFile.Sync(); err != nil {
		_ = outFile.Close()
		return 0, fmt.Errorf("failed to sync %v : %w", t.Name, err)
	}
	if err := outFile.Close(); err != nil {
		return 0, fmt.Errorf("failed to close %v : %w", t.Name, err)
	}

	return len(t.Rows), nil
}

//ReadTSV parses a file written by WriteTSV back into a Table. Rows with a
//cell count different from the header are rejected
func ReadTSV(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %v : %w", path, err)
	}
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, fmt.Errorf("%v has no header line", path)
	}

	t := New(filepath.Base(path), strings.Split(lines[0], "\t")...)
	for i, line := range lines[1:] {
		cells := strings.Split(line, "\t")
		if len(cells) != len(t.Header) {
			return nil, fmt.Errorf("%v : row %v has %v cells but header has %v columns", path, i, len(cells), len(t.Header))
		}
		t.Rows = append(t.Rows, cells)
	}
	return t, nil
}

//Column returns the index of the named header column or an error
func (t *Table) Column(name string) (int, error) {
	for i := range t.Header {
		if t.Header[i] == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("table %v has no column %v", t.Name, name)
}
