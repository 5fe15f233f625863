package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/windlab/plant-ingest/config"
	"github.com/windlab/plant-ingest/pkg/logger"
	"github.com/windlab/plant-ingest/pkg/table"
)

// LoadAsset reads the static asset table <asset><AssetSuffix> from
// dir, drops all-empty rows and tags every row as a turbine.
func LoadAsset(dir, asset string, profile config.DatasetProfile, log logger.Logger) (*table.Table, error) {
	path := filepath.Join(dir, asset+profile.AssetSuffix)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: asset table %s", ErrNoSourceFiles, path)
	}

	t, err := table.ReadCSV(path, table.ReadOptions{})
	if err != nil {
		return nil, err
	}

	t = t.DropEmptyRows().WithColumn("type", "turbine")

	log.Debug("Loaded asset data",
		logger.String("file", path),
		logger.Int("rows", t.NumRows()),
	)

	return t, nil
}
