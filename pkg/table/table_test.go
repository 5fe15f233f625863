package table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(rows int, offset int) *Table {
	t := &Table{
		Columns:   []string{"Power (kW)", "Wind speed (m/s)"},
		IndexName: "# Date and time",
	}
	start := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < rows; i++ {
		ts := start.Add(time.Duration(offset+i) * 10 * time.Minute)
		t.Records = append(t.Records, []string{"100", "5.0"})
		t.Index = append(t.Index, ts)
		t.rawIndex = append(t.rawIndex, ts.Format("2006-01-02 15:04:05"))
	}
	return t
}

func TestConcatPreservesEveryRow(t *testing.T) {
	a := sample(3, 0)
	b := sample(5, 3)
	c := sample(1, 8)

	out, err := Concat(a, b, c)
	require.NoError(t, err)

	assert.Equal(t, 9, out.NumRows())
	assert.Equal(t, a.Columns, out.Columns)
	assert.Len(t, out.Index, 9)
}

func TestConcatOfOneEqualsInput(t *testing.T) {
	a := sample(4, 0)

	out, err := Concat(a)
	require.NoError(t, err)

	assert.Equal(t, a.Records, out.Records)
	assert.Equal(t, a.Index, out.Index)
	assert.Equal(t, a.Columns, out.Columns)
}

func TestConcatOfZeroTablesFails(t *testing.T) {
	_, err := Concat()
	require.Error(t, err)
}

func TestConcatRejectsColumnMismatch(t *testing.T) {
	a := sample(2, 0)
	b := sample(2, 2)
	b.Columns = []string{"Power (kW)", "Pitch (°)"}

	_, err := Concat(a, b)
	require.Error(t, err)
}

func TestConcatDoesNotDeduplicate(t *testing.T) {
	// Overlapping files are concatenated as-is; downstream owns any
	// dedup.
	a := sample(3, 0)
	out, err := Concat(a, a)
	require.NoError(t, err)
	assert.Equal(t, 6, out.NumRows())
}

func TestWithColumnAppendsConstant(t *testing.T) {
	a := sample(2, 0)
	out := a.WithColumn("Turbine", "T1")

	assert.Equal(t, []string{"Power (kW)", "Wind speed (m/s)", "Turbine"}, out.Columns)
	for _, rec := range out.Records {
		assert.Equal(t, "T1", rec[len(rec)-1])
	}
	// source untouched
	assert.Len(t, a.Columns, 2)
}

func TestResetIndexDemotesRawValues(t *testing.T) {
	a := sample(2, 0).RenameIndex("Timestamp")
	out := a.ResetIndex()

	assert.False(t, out.HasIndex())
	assert.Equal(t, "Timestamp", out.Columns[0])
	assert.Equal(t, "2019-01-01 00:00:00", out.Records[0][0])
	assert.Equal(t, "2019-01-01 00:10:00", out.Records[1][0])
}

func TestSelectKeepsRequestedOrder(t *testing.T) {
	a := sample(2, 0)
	out, err := a.Select([]string{"Wind speed (m/s)"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Wind speed (m/s)"}, out.Columns)
	assert.Equal(t, "5.0", out.Records[0][0])

	_, err = a.Select([]string{"Nope"})
	assert.Error(t, err)
}

func TestDropEmptyRows(t *testing.T) {
	a := &Table{
		Columns: []string{"Title", "Latitude"},
		Records: [][]string{
			{"T1", "52.0"},
			{"", ""},
			{"T2", "53.0"},
			{" ", ""},
		},
	}

	out := a.DropEmptyRows()
	require.Equal(t, 2, out.NumRows())
	assert.Equal(t, "T1", out.Records[0][0])
	assert.Equal(t, "T2", out.Records[1][0])
}

func TestMeanAndSumSkipEmptyCells(t *testing.T) {
	a := &Table{
		Columns: []string{"Rated power (kW)"},
		Records: [][]string{{"2050"}, {""}, {"2050"}},
	}

	sum, err := a.Sum("Rated power (kW)")
	require.NoError(t, err)
	assert.InDelta(t, 4100, sum, 1e-9)

	mean, err := a.Mean("Rated power (kW)")
	require.NoError(t, err)
	assert.InDelta(t, 2050, mean, 1e-9)
}

func TestMeanFailsOnNonNumeric(t *testing.T) {
	a := &Table{
		Columns: []string{"Latitude"},
		Records: [][]string{{"abc"}},
	}
	_, err := a.Mean("Latitude")
	require.Error(t, err)
}
