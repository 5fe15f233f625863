package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// BodyColumns is the tabular header row of a synthetic SCADA export.
// The curtailment fields live in the same export as the measurement
// fields, as in the real files.
const BodyColumns = "# Date and time,Power (kW),Wind speed (m/s),Wind direction (°)," +
	"Nacelle position (°),Nacelle ambient temperature (°C)," +
	"Blade angle (pitch position) A (°)," +
	"Lost Production to Curtailment (Total) (kWh),Lost Production to Downtime (kWh)"

// WriteScadaFile writes a per-turbine export in the Cubico layout:
// two preamble lines, four "# key: value" header lines, three filler
// lines, the body header at line 9 and then the data rows at
// 10-minute spacing.
func WriteScadaFile(t *testing.T, dir, name, turbine string, start time.Time, rows int) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("# SCADA export\n")
	b.WriteString("#\n")
	fmt.Fprintf(&b, "# Turbine: %s\n", turbine)
	b.WriteString("# Location: Synthetic Hill\n")
	b.WriteString("# Rated power: 2050\n")
	fmt.Fprintf(&b, "# Source file: %s\n", name)
	b.WriteString("#\n")
	b.WriteString("#\n")
	b.WriteString("#\n")
	b.WriteString(BodyColumns + "\n")
	for i := 0; i < rows; i++ {
		ts := start.Add(time.Duration(i) * 10 * time.Minute)
		fmt.Fprintf(&b, "%s,%d,%0.1f,%d,%d,%0.1f,%0.1f,%d,%d\n",
			ts.Format("2006-01-02 15:04:05"),
			100+i, 5.0+float64(i), 180+i, 180+i, 9.5, 1.5, i, i+1)
	}

	return writeFile(t, dir, name, b.String())
}

// WriteMeterFile writes a PMU meter export: ten preamble lines, the
// body header at line 10 and then the data rows.
func WriteMeterFile(t *testing.T, dir, name string, start time.Time, rows int) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("# Meter export\n")
	b.WriteString("#\n")
	b.WriteString("# Device: PMU\n")
	b.WriteString("# Location: Synthetic Hill\n")
	b.WriteString("# Serial: 0001\n")
	b.WriteString("# Units: kWh\n")
	for i := 0; i < 4; i++ {
		b.WriteString("#\n")
	}
	b.WriteString("# Date and time,GMS Energy Export (kWh),GMS Energy Import (kWh)\n")
	for i := 0; i < rows; i++ {
		ts := start.Add(time.Duration(i) * 10 * time.Minute)
		fmt.Fprintf(&b, "%s,%d,0\n", ts.Format("2006-01-02 15:04:05"), 300+i)
	}

	return writeFile(t, dir, name, b.String())
}

// AssetRow is one turbine in a synthetic static asset table.
type AssetRow struct {
	Title   string
	Lat     float64
	Lon     float64
	RatedKW float64
}

// WriteAssetFile writes the <asset>_WT_static.csv table, including a
// trailing all-empty row the loader must drop.
func WriteAssetFile(t *testing.T, dir, asset string, rows []AssetRow) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("Title,Latitude,Longitude,Rated power (kW),Hub Height (m),Rotor Diameter (m),Elevation (m)\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "%s,%g,%g,%g,78.5,92,145\n", r.Title, r.Lat, r.Lon, r.RatedKW)
	}
	b.WriteString(",,,,,,\n")

	return writeFile(t, dir, asset+"_WT_static.csv", b.String())
}

// WriteCSVFile writes an arbitrary plain CSV file.
func WriteCSVFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	return writeFile(t, dir, name, content)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
