package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	plantsvc "github.com/windlab/plant-ingest/internal/service/plant"
	"github.com/windlab/plant-ingest/pkg/table"
)

func TestRootCommandHasPrepare(t *testing.T) {
	root := newRootCommand()

	prepare, _, err := root.Find([]string{"prepare"})
	require.NoError(t, err)
	assert.Equal(t, "prepare", prepare.Name())
	assert.NotNil(t, prepare.Flags().Lookup("root"))
	assert.NotNil(t, prepare.Flags().Lookup("year"))
	assert.NotNil(t, prepare.Flags().Lookup("no-extract"))
}

func TestSummarizeListsEveryTable(t *testing.T) {
	small := &table.Table{Columns: []string{"a"}, Records: [][]string{{"1"}, {"2"}}}
	result := &plantsvc.Result{
		SCADA:   small,
		Meter:   small,
		Curtail: small,
		Asset:   small,
		Reanalysis: map[string]*table.Table{
			"era5": small,
		},
	}

	out := summarize(result)
	assert.Contains(t, out, "scada")
	assert.Contains(t, out, "meter")
	assert.Contains(t, out, "curtail")
	assert.Contains(t, out, "asset")
	assert.Contains(t, out, "reanalysis/era5")
}

func TestRenderTableEmpty(t *testing.T) {
	assert.Equal(t, "", renderTable(nil, nil))
}
