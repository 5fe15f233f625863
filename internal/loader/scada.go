package loader

import (
	"fmt"

	"github.com/windlab/plant-ingest/config"
	"github.com/windlab/plant-ingest/internal/models"
	"github.com/windlab/plant-ingest/pkg/logger"
	"github.com/windlab/plant-ingest/pkg/table"
)

// BuildTimeSeries groups the header table's files by turbine, reads
// the full body of every file with the given column selector,
// concatenates per turbine in file-list order, tags rows with the
// turbine identifier and stacks the turbines (discovery order) into
// one long-format table indexed by timestamp.
//
// Every input row appears in the output exactly once: no sorting,
// no deduplication. Overlapping files stay overlapping. A nil
// selector means the profile's SCADA columns.
func BuildTimeSeries(headers *models.HeaderTable, profile config.DatasetProfile, useColumns []string, log logger.Logger) (*table.Table, error) {
	if useColumns == nil {
		useColumns = profile.ScadaColumns
	}

	opts := table.ReadOptions{
		SkipRows:    profile.ScadaSkipRows,
		UseColumns:  useColumns,
		IndexColumn: profile.TimeColumn,
		TimeLayouts: profile.TimeLayouts,
	}

	turbines := headers.Turbines()
	perTurbine := make([]*table.Table, 0, len(turbines))
	for _, turbine := range turbines {
		paths := headers.FilesFor(turbine)
		if len(paths) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyTurbineGroup, turbine)
		}

		parts := make([]*table.Table, 0, len(paths))
		for _, path := range paths {
			t, err := table.ReadCSV(path, opts)
			if err != nil {
				return nil, err
			}
			parts = append(parts, t)
		}

		// A single file goes through the same concatenation path as
		// many.
		wt, err := table.Concat(parts...)
		if err != nil {
			return nil, fmt.Errorf("loader: concatenating turbine %q: %w", turbine, err)
		}
		wt = wt.WithColumn(profile.TurbineColumn, turbine).RenameIndex(profile.TimeIndex)

		log.Debug("Concatenated turbine time series",
			logger.String("turbine", turbine),
			logger.Int("files", len(paths)),
			logger.Int("rows", wt.NumRows()),
		)

		perTurbine = append(perTurbine, wt)
	}

	out, err := table.Concat(perTurbine...)
	if err != nil {
		return nil, fmt.Errorf("loader: stacking turbines: %w", err)
	}
	return out, nil
}

// BuildCurtailment produces the curtailment/availability view. It is
// the same traversal as the SCADA build with the lost-production
// column selector, over the same header table, so both views observe
// identical turbine groupings.
func BuildCurtailment(headers *models.HeaderTable, profile config.DatasetProfile, log logger.Logger) (*table.Table, error) {
	return BuildTimeSeries(headers, profile, profile.CurtailColumns, log)
}
