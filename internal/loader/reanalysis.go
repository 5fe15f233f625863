package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/windlab/plant-ingest/config"
	"github.com/windlab/plant-ingest/pkg/logger"
	"github.com/windlab/plant-ingest/pkg/table"
)

// LoadReanalysis collects whichever reanalysis products exist under
// dir. Each product's file is existence-checked independently; a
// missing file is not an error, its key is simply absent from the
// result.
func LoadReanalysis(dir, asset string, profile config.DatasetProfile, log logger.Logger) (map[string]*table.Table, error) {
	sources := []struct {
		product string
		path    string
	}{
		{"merra2", filepath.Join(dir, fmt.Sprintf("%s_merra2.csv", asset))},
		{"era5", filepath.Join(dir, fmt.Sprintf("%s_era5.csv", asset))},
		{"merra2_monthly_10m", filepath.Join(dir, profile.MonthlySubdir, fmt.Sprintf("%s_merra2_monthly_10m.csv", asset))},
	}

	collection := make(map[string]*table.Table)
	for _, src := range sources {
		if _, err := os.Stat(src.path); err != nil {
			continue
		}
		t, err := table.ReadCSV(src.path, table.ReadOptions{})
		if err != nil {
			return nil, err
		}
		collection[src.product] = t
		log.Info("Loaded reanalysis product",
			logger.String("product", src.product),
			logger.Int("rows", t.NumRows()),
		)
	}

	return collection, nil
}
