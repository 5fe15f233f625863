package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windlab/plant-ingest/config"
	"github.com/windlab/plant-ingest/internal/testsupport"
	"github.com/windlab/plant-ingest/pkg/logger"
)

func TestLoadMeter(t *testing.T) {
	dir := t.TempDir()
	profile := config.CubicoProfile()
	testsupport.WriteMeterFile(t, dir, "Device_PMU_2019.csv", start, 4)

	out, err := LoadMeter(dir, profile, logger.NewTestLogger())
	require.NoError(t, err)

	assert.Equal(t, 4, out.NumRows())
	assert.Equal(t, []string{"GMS Energy Export (kWh)"}, out.Columns)
	assert.Equal(t, "Timestamp", out.IndexName)
}

func TestLoadMeterFirstMatchIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	profile := config.CubicoProfile()

	// Lexicographically first file wins regardless of creation order.
	testsupport.WriteMeterFile(t, dir, "Device_PMU_b.csv", start, 9)
	testsupport.WriteMeterFile(t, dir, "Device_PMU_a.csv", start, 2)

	out, err := LoadMeter(dir, profile, logger.NewTestLogger())
	require.NoError(t, err)
	assert.Equal(t, 2, out.NumRows())
}

func TestLoadMeterFindsNestedFile(t *testing.T) {
	dir := t.TempDir()
	profile := config.CubicoProfile()
	testsupport.WriteMeterFile(t, dir, "exports/2019/Device_PMU.csv", start, 3)

	out, err := LoadMeter(dir, profile, logger.NewTestLogger())
	require.NoError(t, err)
	assert.Equal(t, 3, out.NumRows())
}

func TestLoadMeterNoMatches(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadMeter(dir, config.CubicoProfile(), logger.NewTestLogger())
	require.ErrorIs(t, err, ErrNoMeterFile)
}
