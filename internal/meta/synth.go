package meta

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/windlab/plant-ingest/internal/models"
	"github.com/windlab/plant-ingest/pkg/table"
)

// File names of the two serializations at the output root.
const (
	JSONFile = "plant_meta.json"
	YAMLFile = "plant_meta.yml"
)

// Synthesize computes the plant-level aggregates from the asset
// table and fills in the canonical field mapping for the Cubico
// dataset family. Everything except the three aggregates is a static
// constant for this family: the mappings are declared, not
// discovered.
func Synthesize(asset *table.Table) (*models.PlantMetadata, error) {
	lat, err := asset.Mean("Latitude")
	if err != nil {
		return nil, fmt.Errorf("meta: plant latitude: %w", err)
	}
	lon, err := asset.Mean("Longitude")
	if err != nil {
		return nil, fmt.Errorf("meta: plant longitude: %w", err)
	}
	ratedKW, err := asset.Sum("Rated power (kW)")
	if err != nil {
		return nil, fmt.Errorf("meta: plant capacity: %w", err)
	}

	doc := &models.PlantMetadata{
		Asset: models.AssetFieldMap{
			Elevation:     "Elevation (m)",
			HubHeight:     "Hub Height (m)",
			AssetID:       "Title",
			Latitude:      "Latitude",
			Longitude:     "Longitude",
			RatedPower:    "Rated power (kW)",
			RotorDiameter: "Rotor Diameter (m)",
		},
		Curtail: models.CurtailFieldMap{
			IAVLDnWh:       "Lost Production to Downtime (kWh)",
			IAVLExtPwrDnWh: "Lost Production to Curtailment (Total) (kWh)",
			Frequency:      "10min",
			Time:           "Timestamp",
		},
		Latitude:  formatFloat(lat),
		Longitude: formatFloat(lon),
		Capacity:  formatFloat(ratedKW / 1000),
		Meter: models.MeterFieldMap{
			MMTRSupWh: "GMS Energy Export (kWh)",
			Time:      "Timestamp",
		},
		// Reanalysis field mapping is not populated by this dataset.
		Reanalysis: map[string]map[string]string{},
		Scada: models.ScadaFieldMap{
			WMETEnvTmp:      "Nacelle ambient temperature (°C)",
			WMETHorWdDir:    "Wind direction (°)",
			WMETHorWdSpd:    "Wind speed (m/s)",
			WROTBlPthAngVal: "Blade angle (pitch position) A (°)",
			AssetID:         "Turbine",
			WTURW:           "Power (kW)",
			Frequency:       "10min",
			Time:            "Timestamp",
		},
	}

	return doc, nil
}

// Write persists both serializations of the document at the output
// root: plant_meta.json with fixed field order and 2-space indent,
// and the equivalent plant_meta.yml.
func Write(doc *models.PlantMetadata, dir string) error {
	jsonData, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("meta: encoding json: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, JSONFile), jsonData, 0644); err != nil {
		return fmt.Errorf("meta: writing %s: %w", JSONFile, err)
	}

	yamlData, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("meta: encoding yaml: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, YAMLFile), yamlData, 0644); err != nil {
		return fmt.Errorf("meta: writing %s: %w", YAMLFile, err)
	}

	return nil
}

// Load reads either serialization back into a document.
func Load(path string) (*models.PlantMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("meta: read %s: %w", path, err)
	}

	doc := &models.PlantMetadata{}
	switch filepath.Ext(path) {
	case ".json":
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("meta: parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("meta: parse %s: %w", path, err)
		}
	}
	return doc, nil
}

// formatFloat renders an aggregate the way downstream consumers
// expect: shortest representation that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
