package plant

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/windlab/plant-ingest/config"
	"github.com/windlab/plant-ingest/internal/archive"
	"github.com/windlab/plant-ingest/internal/loader"
	"github.com/windlab/plant-ingest/internal/meta"
	"github.com/windlab/plant-ingest/internal/mirror"
	plantdata "github.com/windlab/plant-ingest/internal/plant"
	"github.com/windlab/plant-ingest/pkg/logger"
	"github.com/windlab/plant-ingest/pkg/table"
)

// lockFile guards the output directory: file creation there is
// unsynchronized, so two concurrent runs against the same directory
// are refused.
const lockFile = ".plant-ingest.lock"

type PlantService struct {
	cfg    *config.Config
	logger logger.Logger
}

// NewService creates a preparer with an explicit configuration.
func NewService(cfg *config.Config, log logger.Logger) Preparer {
	if cfg == nil {
		cfg = config.Default()
	}
	return &PlantService{cfg: cfg, logger: log}
}

// GetService creates a preparer with the default Cubico profile.
func GetService(log logger.Logger) (Preparer, error) {
	cfg := config.Default()
	if err := cfg.Dataset.Validate(); err != nil {
		return nil, fmt.Errorf("plant: default profile: %w", err)
	}
	return NewService(cfg, log), nil
}

// Prepare runs the pipeline: mirror sync and archive extraction when
// enabled, then asset load, header discovery, the SCADA build, the
// meter load, the curtailment build and reanalysis discovery, then
// metadata synthesis and packaging. Stages run strictly in sequence;
// the first failure aborts the run. The metadata files are written
// only after every table-producing stage has succeeded, so a failed
// run leaves no partial plant_meta.*.
func (s *PlantService) Prepare(ctx context.Context, opts Options) (*Result, error) {
	if opts.Root == "" || opts.Asset == "" || opts.OutputDir == "" {
		return nil, fmt.Errorf("plant: root, asset and output dir are required")
	}
	if opts.ReturnValue == "" {
		opts.ReturnValue = ReturnPlant
	}
	if opts.ReturnValue != ReturnTables && opts.ReturnValue != ReturnPlant {
		return nil, fmt.Errorf("plant: unknown return value %q", opts.ReturnValue)
	}

	runID := uuid.New().String()
	log := s.logger.With(
		logger.String("run_id", runID),
		logger.String("asset", opts.Asset),
	)

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("plant: creating output dir: %w", err)
	}

	lock := flock.New(filepath.Join(opts.OutputDir, lockFile))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("plant: locking output dir: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("plant: output dir %s is in use by another run", opts.OutputDir)
	}
	defer lock.Unlock()

	if opts.Mirror {
		m, err := mirror.New(log)
		if err != nil {
			return nil, err
		}
		log.Info("Syncing dataset from mirror")
		if err := m.Sync(ctx, opts.Root); err != nil {
			return nil, err
		}
	}

	if opts.Extract {
		log.Info("Extracting archives",
			logger.String("root", opts.Root),
			logger.String("dest", opts.OutputDir),
		)
		if err := archive.ExtractAll(opts.Root, opts.OutputDir, log); err != nil {
			return nil, err
		}
	}

	profile := s.cfg.Dataset

	log.Info("Reading in the asset data")
	assetDF, err := loader.LoadAsset(opts.OutputDir, opts.Asset, profile, log)
	if err != nil {
		return nil, err
	}

	log.Info("Reading in the SCADA data")
	pattern := profile.ScadaPattern
	if opts.Year != 0 {
		pattern = loader.YearPattern(pattern, opts.Year)
	}
	scadaFiles, err := loader.Glob(opts.OutputDir, pattern)
	if err != nil {
		return nil, err
	}
	if len(scadaFiles) == 0 {
		return nil, fmt.Errorf("%w: pattern %q under %s", loader.ErrNoSourceFiles, pattern, opts.OutputDir)
	}

	headers, err := loader.ExtractHeaders(scadaFiles, profile, log)
	if err != nil {
		return nil, err
	}

	scadaDF, err := loader.BuildTimeSeries(headers, profile, nil, log)
	if err != nil {
		return nil, err
	}
	scadaDF = scadaDF.ResetIndex()

	log.Info("Reading in the meter data")
	meterDF, err := loader.LoadMeter(opts.OutputDir, profile, log)
	if err != nil {
		return nil, err
	}
	meterDF = meterDF.ResetIndex()

	log.Info("Reading in the curtailment and availability losses data")
	curtailDF, err := loader.BuildCurtailment(headers, profile, log)
	if err != nil {
		return nil, err
	}
	curtailDF = curtailDF.ResetIndex()

	log.Info("Reading in the reanalysis data")
	reanalysis, err := loader.LoadReanalysis(opts.OutputDir, opts.Asset, profile, log)
	if err != nil {
		return nil, err
	}

	// All table stages succeeded; the metadata may now be persisted.
	doc, err := meta.Synthesize(assetDF)
	if err != nil {
		return nil, err
	}
	if err := meta.Write(doc, opts.OutputDir); err != nil {
		return nil, err
	}
	log.Info("Wrote plant metadata",
		logger.String("dir", opts.OutputDir),
		logger.String("capacity_mw", doc.Capacity),
	)

	result := &Result{
		RunID:      runID,
		SCADA:      scadaDF,
		Meter:      meterDF,
		Curtail:    curtailDF,
		Asset:      assetDF,
		Reanalysis: reanalysis,
	}

	if opts.ReturnValue == ReturnPlant {
		pd, err := plantdata.New(
			filepath.Join(opts.OutputDir, meta.YAMLFile),
			scadaDF, meterDF, curtailDF, assetDF, reanalysis,
		)
		if err != nil {
			return nil, err
		}
		result.Plant = pd
	}

	logTableSummary(log, result)

	return result, nil
}

func logTableSummary(log logger.Logger, r *Result) {
	for name, t := range map[string]*table.Table{
		"scada":   r.SCADA,
		"meter":   r.Meter,
		"curtail": r.Curtail,
		"asset":   r.Asset,
	} {
		log.Debug("Prepared table",
			logger.String("table", name),
			logger.Int("rows", t.NumRows()),
			logger.Int("columns", t.NumCols()),
		)
	}
}
