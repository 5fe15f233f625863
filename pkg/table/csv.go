package table

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// ReadOptions locates the tabular body inside a semi-structured CSV
// export. The offsets are dataset configuration, not constants baked
// into the reader.
type ReadOptions struct {
	// SkipRows is the number of physical lines above the header row.
	SkipRows int
	// UseColumns restricts the read to the named columns. Column
	// order of the source file is preserved. Empty means all columns.
	UseColumns []string
	// IndexColumn promotes the named column to the timestamp index.
	IndexColumn string
	// TimeLayouts are tried in order when parsing the index column.
	TimeLayouts []string
}

// DefaultTimeLayouts cover the timestamp formats seen in the Cubico
// exports.
var DefaultTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"02/01/2006 15:04",
}

// ReadCSV reads one file into a Table. The file is opened, fully
// read and closed before returning; no handle outlives the call.
func ReadCSV(path string, opts ReadOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("table: open %s: %w", path, err)
	}
	defer f.Close()

	t, err := readCSV(f, opts)
	if err != nil {
		return nil, fmt.Errorf("table: read %s: %w", path, err)
	}
	return t, nil
}

func readCSV(r io.Reader, opts ReadOptions) (*Table, error) {
	br := bufio.NewReader(r)
	for i := 0; i < opts.SkipRows; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			return nil, fmt.Errorf("skipping %d rows: %w", opts.SkipRows, err)
		}
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header row: %w", err)
	}

	keep, indexPos, err := selectColumns(header, opts)
	if err != nil {
		return nil, err
	}

	layouts := opts.TimeLayouts
	if len(layouts) == 0 {
		layouts = DefaultTimeLayouts
	}

	t := &Table{}
	for _, pos := range keep {
		t.Columns = append(t.Columns, header[pos])
	}
	if indexPos >= 0 {
		t.IndexName = header[indexPos]
	}

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading body row: %w", err)
		}
		row := make([]string, len(keep))
		for i, pos := range keep {
			if pos < len(rec) {
				row[i] = rec[pos]
			}
		}
		t.Records = append(t.Records, row)

		if indexPos >= 0 {
			if indexPos >= len(rec) {
				return nil, fmt.Errorf("row %d: missing index column %q", len(t.Records), t.IndexName)
			}
			raw := rec[indexPos]
			ts, err := parseTime(raw, layouts)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", len(t.Records), err)
			}
			t.Index = append(t.Index, ts)
			t.rawIndex = append(t.rawIndex, raw)
		}
	}

	return t, nil
}

// selectColumns resolves UseColumns against the header row. Selected
// columns keep the source file's order; the index column is carried
// separately and excluded from the value columns.
func selectColumns(header []string, opts ReadOptions) (keep []int, indexPos int, err error) {
	indexPos = -1
	if opts.IndexColumn != "" {
		for i, name := range header {
			if name == opts.IndexColumn {
				indexPos = i
				break
			}
		}
		if indexPos < 0 {
			return nil, 0, fmt.Errorf("index column %q not found in header %v", opts.IndexColumn, header)
		}
	}

	if len(opts.UseColumns) == 0 {
		for i := range header {
			if i != indexPos {
				keep = append(keep, i)
			}
		}
		return keep, indexPos, nil
	}

	wanted := make(map[string]bool, len(opts.UseColumns))
	for _, name := range opts.UseColumns {
		wanted[name] = true
	}
	found := make(map[string]bool, len(opts.UseColumns))
	for i, name := range header {
		if !wanted[name] {
			continue
		}
		found[name] = true
		if i != indexPos {
			keep = append(keep, i)
		}
	}
	for _, name := range opts.UseColumns {
		if !found[name] {
			return nil, 0, fmt.Errorf("column %q not found in header %v", name, header)
		}
	}
	return keep, indexPos, nil
}

func parseTime(raw string, layouts []string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", raw)
}
