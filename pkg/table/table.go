package table

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Table is a column-ordered table of string cells with an optional
// timestamp index. Cell values are carried verbatim from the source
// file; parsing to numbers or times happens only where a consumer
// needs it. A Table is never mutated after its producing stage
// returns it.
type Table struct {
	Columns []string
	Records [][]string

	// IndexName names the index when one is present. Index holds the
	// parsed timestamps and rawIndex the unmodified source values,
	// both aligned with Records.
	IndexName string
	Index     []time.Time
	rawIndex  []string
}

// NumRows returns the number of data rows
func (t *Table) NumRows() int {
	return len(t.Records)
}

// NumCols returns the number of columns, index excluded
func (t *Table) NumCols() int {
	return len(t.Columns)
}

// HasIndex reports whether the table carries a timestamp index
func (t *Table) HasIndex() bool {
	return t.IndexName != ""
}

func (t *Table) columnPos(name string) (int, error) {
	for i, c := range t.Columns {
		if c == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("table: no column %q", name)
}

// Column returns the raw values of a named column.
func (t *Table) Column(name string) ([]string, error) {
	pos, err := t.columnPos(name)
	if err != nil {
		return nil, err
	}
	values := make([]string, len(t.Records))
	for i, rec := range t.Records {
		values[i] = rec[pos]
	}
	return values, nil
}

// Float64Column parses a named column as float64, skipping empty
// cells the way a missing value would be skipped.
func (t *Table) Float64Column(name string) ([]float64, error) {
	raw, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	values := make([]float64, 0, len(raw))
	for i, cell := range raw {
		if strings.TrimSpace(cell) == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return nil, fmt.Errorf("table: column %q row %d: %w", name, i, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// WithColumn returns a copy of the table with a constant-valued
// column appended.
func (t *Table) WithColumn(name, value string) *Table {
	out := &Table{
		Columns:   append(append([]string{}, t.Columns...), name),
		Records:   make([][]string, len(t.Records)),
		IndexName: t.IndexName,
		Index:     t.Index,
		rawIndex:  t.rawIndex,
	}
	for i, rec := range t.Records {
		out.Records[i] = append(append([]string{}, rec...), value)
	}
	return out
}

// RenameIndex returns a copy of the table with the index renamed.
func (t *Table) RenameIndex(name string) *Table {
	out := *t
	out.IndexName = name
	return &out
}

// ResetIndex returns a copy with the index demoted to a leading
// column holding the raw source values. The parsed timestamps are
// dropped; the column keeps the index name.
func (t *Table) ResetIndex() *Table {
	if !t.HasIndex() {
		return t
	}
	out := &Table{
		Columns: append([]string{t.IndexName}, t.Columns...),
		Records: make([][]string, len(t.Records)),
	}
	for i, rec := range t.Records {
		out.Records[i] = append([]string{t.rawIndex[i]}, rec...)
	}
	return out
}

// Select returns a copy restricted to the named columns, in the
// order given. The index is carried along unchanged.
func (t *Table) Select(names []string) (*Table, error) {
	positions := make([]int, len(names))
	for i, name := range names {
		pos, err := t.columnPos(name)
		if err != nil {
			return nil, err
		}
		positions[i] = pos
	}
	out := &Table{
		Columns:   append([]string{}, names...),
		Records:   make([][]string, len(t.Records)),
		IndexName: t.IndexName,
		Index:     t.Index,
		rawIndex:  t.rawIndex,
	}
	for i, rec := range t.Records {
		row := make([]string, len(positions))
		for j, pos := range positions {
			row[j] = rec[pos]
		}
		out.Records[i] = row
	}
	return out, nil
}

// DropEmptyRows returns a copy without rows whose cells are all
// empty.
func (t *Table) DropEmptyRows() *Table {
	out := &Table{
		Columns:   append([]string{}, t.Columns...),
		IndexName: t.IndexName,
	}
	for i, rec := range t.Records {
		empty := true
		for _, cell := range rec {
			if strings.TrimSpace(cell) != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}
		out.Records = append(out.Records, rec)
		if t.HasIndex() {
			out.Index = append(out.Index, t.Index[i])
			out.rawIndex = append(out.rawIndex, t.rawIndex[i])
		}
	}
	return out
}

// Concat appends the given tables in order. All tables must share
// the same column set and index shape; rows are kept as-is, exactly
// once, with no re-sorting or deduplication. Concatenating zero
// tables is an error.
func Concat(tables ...*Table) (*Table, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("table: concat of zero tables")
	}
	first := tables[0]
	out := &Table{
		Columns:   append([]string{}, first.Columns...),
		IndexName: first.IndexName,
	}
	for _, t := range tables {
		if len(t.Columns) != len(out.Columns) {
			return nil, fmt.Errorf("table: concat column mismatch: %v vs %v", out.Columns, t.Columns)
		}
		for i := range t.Columns {
			if t.Columns[i] != out.Columns[i] {
				return nil, fmt.Errorf("table: concat column mismatch: %v vs %v", out.Columns, t.Columns)
			}
		}
		if t.IndexName != out.IndexName {
			return nil, fmt.Errorf("table: concat index mismatch: %q vs %q", out.IndexName, t.IndexName)
		}
		out.Records = append(out.Records, t.Records...)
		out.Index = append(out.Index, t.Index...)
		out.rawIndex = append(out.rawIndex, t.rawIndex...)
	}
	return out, nil
}

// Mean returns the arithmetic mean of a numeric column.
func (t *Table) Mean(name string) (float64, error) {
	values, err := t.Float64Column(name)
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, fmt.Errorf("table: column %q has no numeric values", name)
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// Sum returns the sum of a numeric column.
func (t *Table) Sum(name string) (float64, error) {
	values, err := t.Float64Column(name)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum, nil
}
