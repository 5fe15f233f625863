package config

import "fmt"

// DatasetProfile describes one dataset vintage: where the header and
// body blocks sit inside each file, how the files are named, and
// which columns each table selects. Offsets live here rather than in
// the parsing code so a new vintage is a config change, not a code
// change.
type DatasetProfile struct {
	// Header block layout (the "# key: value" lines near the top of
	// each per-turbine file).
	HeaderSkipRows  int    `yaml:"headerSkipRows"`
	HeaderRows      int    `yaml:"headerRows"`
	HeaderDelimiter string `yaml:"headerDelimiter"`
	CommentPrefix   string `yaml:"commentPrefix"`

	// StrictHeaders aborts the batch when a header block cannot be
	// parsed; when false the offending file is logged and skipped.
	StrictHeaders bool `yaml:"strictHeaders"`

	// Body offsets per file family.
	ScadaSkipRows int `yaml:"scadaSkipRows"`
	MeterSkipRows int `yaml:"meterSkipRows"`

	// File naming conventions.
	ScadaPattern  string `yaml:"scadaPattern"`
	MeterPattern  string `yaml:"meterPattern"`
	AssetSuffix   string `yaml:"assetSuffix"`
	MonthlySubdir string `yaml:"monthlySubdir"`

	// Header key holding the turbine identifier, and the name of the
	// column the identifier is written to in the output tables.
	TurbineKey    string `yaml:"turbineKey"`
	TurbineColumn string `yaml:"turbineColumn"`

	// Timestamp handling.
	TimeColumn  string   `yaml:"timeColumn"`
	TimeIndex   string   `yaml:"timeIndex"`
	TimeLayouts []string `yaml:"timeLayouts"`

	// Column selectors per table.
	ScadaColumns   []string `yaml:"scadaColumns"`
	CurtailColumns []string `yaml:"curtailColumns"`
	MeterColumns   []string `yaml:"meterColumns"`
}

// CubicoProfile is the profile for the Kelmarsh and Penmanshiel
// Zenodo exports.
func CubicoProfile() DatasetProfile {
	return DatasetProfile{
		HeaderSkipRows:  2,
		HeaderRows:      4,
		HeaderDelimiter: ": ",
		CommentPrefix:   "# ",
		StrictHeaders:   true,
		ScadaSkipRows:   9,
		MeterSkipRows:   10,
		ScadaPattern:    "Turbine_Data*.csv",
		MeterPattern:    "Device*PMU*.csv",
		AssetSuffix:     "_WT_static.csv",
		MonthlySubdir:   "merra2_monthly_10m",
		TurbineKey:      "Turbine",
		TurbineColumn:   "Turbine",
		TimeColumn:      "# Date and time",
		TimeIndex:       "Timestamp",
		TimeLayouts: []string{
			"2006-01-02 15:04:05",
			"2006-01-02 15:04",
		},
		ScadaColumns: []string{
			"# Date and time",
			"Power (kW)",
			"Wind speed (m/s)",
			"Wind direction (°)",
			"Nacelle position (°)",
			"Nacelle ambient temperature (°C)",
			"Blade angle (pitch position) A (°)",
		},
		CurtailColumns: []string{
			"# Date and time",
			"Lost Production to Curtailment (Total) (kWh)",
			"Lost Production to Downtime (kWh)",
		},
		MeterColumns: []string{
			"# Date and time",
			"GMS Energy Export (kWh)",
		},
	}
}

// Validate checks the profile invariants the loaders rely on.
func (p DatasetProfile) Validate() error {
	if p.HeaderRows <= 0 {
		return fmt.Errorf("dataset profile: headerRows must be positive")
	}
	if p.HeaderDelimiter == "" {
		return fmt.Errorf("dataset profile: headerDelimiter is required")
	}
	if p.TurbineKey == "" {
		return fmt.Errorf("dataset profile: turbineKey is required")
	}
	if p.TimeColumn == "" || p.TimeIndex == "" {
		return fmt.Errorf("dataset profile: timeColumn and timeIndex are required")
	}
	if p.ScadaPattern == "" || p.MeterPattern == "" || p.AssetSuffix == "" {
		return fmt.Errorf("dataset profile: file patterns are required")
	}
	if len(p.ScadaColumns) == 0 || len(p.CurtailColumns) == 0 || len(p.MeterColumns) == 0 {
		return fmt.Errorf("dataset profile: column selectors are required")
	}
	return nil
}
