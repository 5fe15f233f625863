package plant

import (
	"context"

	plantdata "github.com/windlab/plant-ingest/internal/plant"
	"github.com/windlab/plant-ingest/pkg/table"
)

// ReturnValue selects the terminal shape of a run.
type ReturnValue string

const (
	// ReturnTables yields the raw tables only.
	ReturnTables ReturnValue = "tables"
	// ReturnPlant additionally packages the plant object from the
	// written metadata plus the tables.
	ReturnPlant ReturnValue = "plantdata"
)

// Options configures one pipeline run.
type Options struct {
	// Root is the input folder holding archives and/or extracted
	// files.
	Root string
	// Asset is the plant name, e.g. "Kelmarsh" or "Penmanshiel".
	Asset string
	// OutputDir receives extracted data and the metadata files.
	OutputDir string
	// Year, when non-zero, restricts SCADA discovery to files whose
	// name carries that year token.
	Year int
	// ReturnValue selects the output shape. Defaults to ReturnPlant.
	ReturnValue ReturnValue
	// Extract runs the archive-extraction stage.
	Extract bool
	// Mirror syncs the dataset from the configured object-store
	// mirror into Root before extraction.
	Mirror bool
}

// Result carries everything a run produced. Plant is nil unless
// ReturnPlant was requested.
type Result struct {
	RunID string

	SCADA      *table.Table
	Meter      *table.Table
	Curtail    *table.Table
	Asset      *table.Table
	Reanalysis map[string]*table.Table

	Plant *plantdata.PlantData
}

// Preparer runs the whole loading and preparation pipeline for one
// plant. One-shot: a run either completes or fails, with no partial
// recovery.
type Preparer interface {
	Prepare(ctx context.Context, opts Options) (*Result, error)
}
