package models

// PlantMetadata is the canonical field-mapping document: for every
// table the pipeline produces, it maps standardized semantic field
// names to the raw column names found in that table, plus the
// plant-level scalar attributes. Field order here is the serialized
// field order. The scalar aggregates are serialized as strings,
// matching the format downstream consumers already parse.
type PlantMetadata struct {
	Asset      AssetFieldMap                `json:"asset" yaml:"asset"`
	Curtail    CurtailFieldMap              `json:"curtail" yaml:"curtail"`
	Latitude   string                       `json:"latitude" yaml:"latitude"`
	Longitude  string                       `json:"longitude" yaml:"longitude"`
	Capacity   string                       `json:"capacity" yaml:"capacity"`
	Meter      MeterFieldMap                `json:"meter" yaml:"meter"`
	Reanalysis map[string]map[string]string `json:"reanalysis" yaml:"reanalysis"`
	Scada      ScadaFieldMap                `json:"scada" yaml:"scada"`
}

// AssetFieldMap maps semantic asset fields to static-table columns.
type AssetFieldMap struct {
	Elevation     string `json:"elevation" yaml:"elevation"`
	HubHeight     string `json:"hub_height" yaml:"hub_height"`
	AssetID       string `json:"asset_id" yaml:"asset_id"`
	Latitude      string `json:"latitude" yaml:"latitude"`
	Longitude     string `json:"longitude" yaml:"longitude"`
	RatedPower    string `json:"rated_power" yaml:"rated_power"`
	RotorDiameter string `json:"rotor_diameter" yaml:"rotor_diameter"`
}

// CurtailFieldMap maps curtailment/availability fields plus the
// table's frequency and time key.
type CurtailFieldMap struct {
	IAVLDnWh       string `json:"IAVL_DnWh" yaml:"IAVL_DnWh"`
	IAVLExtPwrDnWh string `json:"IAVL_ExtPwrDnWh" yaml:"IAVL_ExtPwrDnWh"`
	Frequency      string `json:"frequency" yaml:"frequency"`
	Time           string `json:"time" yaml:"time"`
}

// MeterFieldMap maps the energy-export field and the time key.
type MeterFieldMap struct {
	MMTRSupWh string `json:"MMTR_SupWh" yaml:"MMTR_SupWh"`
	Time      string `json:"time" yaml:"time"`
}

// ScadaFieldMap maps the SCADA measurement fields plus the table's
// asset-id column, frequency and time key.
type ScadaFieldMap struct {
	WMETEnvTmp      string `json:"WMET_EnvTmp" yaml:"WMET_EnvTmp"`
	WMETHorWdDir    string `json:"WMET_HorWdDir" yaml:"WMET_HorWdDir"`
	WMETHorWdSpd    string `json:"WMET_HorWdSpd" yaml:"WMET_HorWdSpd"`
	WROTBlPthAngVal string `json:"WROT_BlPthAngVal" yaml:"WROT_BlPthAngVal"`
	AssetID         string `json:"asset_id" yaml:"asset_id"`
	WTURW           string `json:"WTUR_W" yaml:"WTUR_W"`
	Frequency       string `json:"frequency" yaml:"frequency"`
	Time            string `json:"time" yaml:"time"`
}
