package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windlab/plant-ingest/config"
	"github.com/windlab/plant-ingest/internal/models"
	"github.com/windlab/plant-ingest/internal/testsupport"
	"github.com/windlab/plant-ingest/pkg/logger"
	"github.com/windlab/plant-ingest/pkg/table"
)

func buildHeaders(t *testing.T, dir string, spec map[string][]string) *models.HeaderTable {
	t.Helper()
	profile := config.CubicoProfile()

	var paths []string
	offset := 0
	for _, turbine := range []string{"T1", "T2", "T3"} {
		for _, name := range spec[turbine] {
			paths = append(paths, testsupport.WriteScadaFile(t, dir, name, turbine, start.AddDate(0, 0, offset), 3))
			offset++
		}
	}

	headers, err := ExtractHeaders(paths, profile, logger.NewTestLogger())
	require.NoError(t, err)
	return headers
}

func TestBuildTimeSeriesRowConservation(t *testing.T) {
	dir := t.TempDir()
	profile := config.CubicoProfile()
	headers := buildHeaders(t, dir, map[string][]string{
		"T1": {"Turbine_Data_T1_a.csv", "Turbine_Data_T1_b.csv"},
		"T2": {"Turbine_Data_T2_a.csv"},
		"T3": {"Turbine_Data_T3_a.csv", "Turbine_Data_T3_b.csv", "Turbine_Data_T3_c.csv"},
	})

	out, err := BuildTimeSeries(headers, profile, nil, logger.NewTestLogger())
	require.NoError(t, err)

	// 6 files x 3 body rows each
	assert.Equal(t, 18, out.NumRows())
	assert.Equal(t, "Timestamp", out.IndexName)

	turbines, err := out.Column("Turbine")
	require.NoError(t, err)
	distinct := map[string]int{}
	for _, id := range turbines {
		distinct[id]++
	}
	assert.Len(t, distinct, 3)
	assert.Equal(t, 6, distinct["T1"])
	assert.Equal(t, 3, distinct["T2"])
	assert.Equal(t, 9, distinct["T3"])
}

func TestBuildTimeSeriesSingleFileMatchesManualConcat(t *testing.T) {
	dir := t.TempDir()
	profile := config.CubicoProfile()
	headers := buildHeaders(t, dir, map[string][]string{
		"T1": {"Turbine_Data_T1.csv"},
	})

	out, err := BuildTimeSeries(headers, profile, nil, logger.NewTestLogger())
	require.NoError(t, err)

	manual, err := table.ReadCSV(headers.Files[0].Path, table.ReadOptions{
		SkipRows:    profile.ScadaSkipRows,
		UseColumns:  profile.ScadaColumns,
		IndexColumn: profile.TimeColumn,
		TimeLayouts: profile.TimeLayouts,
	})
	require.NoError(t, err)
	manual = manual.WithColumn(profile.TurbineColumn, "T1").RenameIndex(profile.TimeIndex)

	assert.Equal(t, manual.Columns, out.Columns)
	assert.Equal(t, manual.Records, out.Records)
	assert.Equal(t, manual.Index, out.Index)
}

func TestCurtailmentIsColumnSubsetOfScada(t *testing.T) {
	dir := t.TempDir()
	profile := config.CubicoProfile()
	headers := buildHeaders(t, dir, map[string][]string{
		"T1": {"Turbine_Data_T1_a.csv", "Turbine_Data_T1_b.csv"},
		"T2": {"Turbine_Data_T2_a.csv"},
	})

	// Widen the SCADA selector to cover the curtailment fields, then
	// the derived view must equal a plain column selection of the
	// full build: same rows, same timestamps, same groupings.
	wide := append(append([]string{}, profile.ScadaColumns...),
		"Lost Production to Curtailment (Total) (kWh)",
		"Lost Production to Downtime (kWh)",
	)

	scada, err := BuildTimeSeries(headers, profile, wide, logger.NewTestLogger())
	require.NoError(t, err)

	curtail, err := BuildCurtailment(headers, profile, logger.NewTestLogger())
	require.NoError(t, err)

	require.Equal(t, scada.NumRows(), curtail.NumRows())
	assert.Equal(t, scada.Index, curtail.Index)

	subset, err := scada.Select(curtail.Columns)
	require.NoError(t, err)
	assert.Equal(t, subset.Records, curtail.Records)
}

func TestBuildTimeSeriesKeepsOverlappingRows(t *testing.T) {
	dir := t.TempDir()
	profile := config.CubicoProfile()

	// Two files for the same turbine covering the same interval: the
	// build concatenates as-is, duplicates included. Dedup belongs to
	// downstream consumers.
	a := testsupport.WriteScadaFile(t, dir, "Turbine_Data_T1_a.csv", "T1", start, 3)
	b := testsupport.WriteScadaFile(t, dir, "Turbine_Data_T1_b.csv", "T1", start, 3)

	headers, err := ExtractHeaders([]string{a, b}, profile, logger.NewTestLogger())
	require.NoError(t, err)

	out, err := BuildTimeSeries(headers, profile, nil, logger.NewTestLogger())
	require.NoError(t, err)
	assert.Equal(t, 6, out.NumRows())
	assert.Equal(t, out.Index[0], out.Index[3])
}

func TestBuildTimeSeriesUnreadableFileFails(t *testing.T) {
	profile := config.CubicoProfile()

	headers := models.NewHeaderTable([]models.FileHeader{
		{Path: "/nonexistent/Turbine_Data.csv", Fields: map[string]string{"Turbine": "T1"}, Keys: []string{"Turbine"}},
	}, "Turbine")

	_, err := BuildTimeSeries(headers, profile, nil, logger.NewTestLogger())
	require.Error(t, err)
}
