package loader

import (
	"fmt"

	"github.com/windlab/plant-ingest/config"
	"github.com/windlab/plant-ingest/pkg/logger"
	"github.com/windlab/plant-ingest/pkg/table"
)

// LoadMeter locates the meter export under root and loads it. There
// is a single physical meter, so exactly one file is used: the first
// match in lexicographic path order. Zero matches is a configuration
// error.
func LoadMeter(root string, profile config.DatasetProfile, log logger.Logger) (*table.Table, error) {
	matches, err := Glob(root, profile.MeterPattern)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: pattern %q under %s", ErrNoMeterFile, profile.MeterPattern, root)
	}
	if len(matches) > 1 {
		log.Warn("Multiple meter files match, using first",
			logger.String("file", matches[0]),
			logger.Int("matches", len(matches)),
		)
	}

	t, err := table.ReadCSV(matches[0], table.ReadOptions{
		SkipRows:    profile.MeterSkipRows,
		UseColumns:  profile.MeterColumns,
		IndexColumn: profile.TimeColumn,
		TimeLayouts: profile.TimeLayouts,
	})
	if err != nil {
		return nil, err
	}

	log.Debug("Loaded meter data",
		logger.String("file", matches[0]),
		logger.Int("rows", t.NumRows()),
	)

	return t.RenameIndex(profile.TimeIndex), nil
}
