package plant

import (
	"fmt"

	"github.com/windlab/plant-ingest/internal/meta"
	"github.com/windlab/plant-ingest/internal/models"
	"github.com/windlab/plant-ingest/pkg/table"
)

// AnalysisType tags the packaged plant for the downstream analytics
// consumer; any type accepted by its validation works here.
const AnalysisType = "MonteCarloAEP"

// PlantData is the packaged plant object handed to external
// analytics: the field-mapping metadata plus the four primary tables
// and whatever reanalysis products were found.
type PlantData struct {
	AnalysisType string
	Metadata     models.PlantMetadata

	SCADA      *table.Table
	Meter      *table.Table
	Curtail    *table.Table
	Asset      *table.Table
	Reanalysis map[string]*table.Table
}

// New builds the plant object from the metadata file written by the
// synthesis stage, consumed verbatim, plus the prepared tables.
func New(metaPath string, scada, meter, curtail, asset *table.Table, reanalysis map[string]*table.Table) (*PlantData, error) {
	doc, err := meta.Load(metaPath)
	if err != nil {
		return nil, fmt.Errorf("plant: %w", err)
	}

	return &PlantData{
		AnalysisType: AnalysisType,
		Metadata:     *doc,
		SCADA:        scada,
		Meter:        meter,
		Curtail:      curtail,
		Asset:        asset,
		Reanalysis:   reanalysis,
	}, nil
}
