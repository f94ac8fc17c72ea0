package units

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// DefaultUnit labels resource usage of platforms missing from the table.
const DefaultUnit = "hours"

// Defaults is the built-in platform table used when no file is configured.
var Defaults = map[string]string{
	"SpiNNaker":       "core-hours",
	"BrainScaleS":     "wafer-hours",
	"BrainScaleS-2":   "chip-hours",
	"BrainScaleS-ESS": "hours",
	"Spikey":          "hours",
	"Demo":            "hours",
}

// Table maps hardware platform identifiers to the unit their resource usage
// is measured in. It is read-only once built.
type Table struct {
	units map[string]string
}

type fileFormat struct {
	ResourceUsageUnits map[string]string `yaml:"resource_usage_units"`
}

// New builds a table from m. The map is copied.
func New(m map[string]string) *Table {
	units := make(map[string]string, len(m))
	for platform, unit := range m {
		units[platform] = unit
	}
	return &Table{units: units}
}

// Load reads a YAML file with a top-level resource_usage_units mapping.
func Load(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read units file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes the YAML representation of a table.
func Parse(raw []byte) (*Table, error) {
	var f fileFormat
	if err := yaml.UnmarshalStrict(raw, &f); err != nil {
		return nil, fmt.Errorf("parse units file: %w", err)
	}
	for platform, unit := range f.ResourceUsageUnits {
		if unit == "" {
			return nil, fmt.Errorf("parse units file: empty unit for platform %q", platform)
		}
	}
	return New(f.ResourceUsageUnits), nil
}

// For returns the unit of platform, or DefaultUnit when it is not listed.
func (t *Table) For(platform string) string {
	if t != nil {
		if unit, ok := t.units[platform]; ok {
			return unit
		}
	}
	return DefaultUnit
}
