package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scadaBody = `# preamble
# more preamble
# Date and time,Power (kW),Wind speed (m/s),Status
2019-01-01 00:00:00,120,6.1,OK
2019-01-01 00:10:00,130,6.4,OK
2019-01-01 00:20:00,125,6.2,OK
`

func TestReadCSVWithSkipAndIndex(t *testing.T) {
	out, err := readCSV(strings.NewReader(scadaBody), ReadOptions{
		SkipRows:    2,
		IndexColumn: "# Date and time",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Power (kW)", "Wind speed (m/s)", "Status"}, out.Columns)
	assert.Equal(t, 3, out.NumRows())
	require.Len(t, out.Index, 3)
	assert.Equal(t, "2019-01-01 00:10:00", out.Index[1].Format("2006-01-02 15:04:05"))
	assert.Equal(t, "# Date and time", out.IndexName)
}

func TestReadCSVColumnWhitelist(t *testing.T) {
	out, err := readCSV(strings.NewReader(scadaBody), ReadOptions{
		SkipRows:    2,
		UseColumns:  []string{"# Date and time", "Wind speed (m/s)"},
		IndexColumn: "# Date and time",
	})
	require.NoError(t, err)

	// The index column is carried separately; only the measurement
	// survives as a value column, in source order.
	assert.Equal(t, []string{"Wind speed (m/s)"}, out.Columns)
	assert.Equal(t, [][]string{{"6.1"}, {"6.4"}, {"6.2"}}, out.Records)
}

func TestReadCSVMissingColumnFails(t *testing.T) {
	_, err := readCSV(strings.NewReader(scadaBody), ReadOptions{
		SkipRows:   2,
		UseColumns: []string{"Blade angle (pitch position) A (°)"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Blade angle")
}

func TestReadCSVUnparseableTimestampFails(t *testing.T) {
	body := "# Date and time,Power (kW)\nnot-a-time,120\n"
	_, err := readCSV(strings.NewReader(body), ReadOptions{
		IndexColumn: "# Date and time",
	})
	require.Error(t, err)
}

func TestReadCSVSkipPastEOFFails(t *testing.T) {
	_, err := readCSV(strings.NewReader("one line\n"), ReadOptions{SkipRows: 5})
	require.Error(t, err)
}
