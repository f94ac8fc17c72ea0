package units

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableFor(t *testing.T) {
	table := New(map[string]string{"SpiNNaker": "core-hours"})

	assert.Equal(t, "core-hours", table.For("SpiNNaker"))
	assert.Equal(t, DefaultUnit, table.For("unknown"))

	var nilTable *Table
	assert.Equal(t, DefaultUnit, nilTable.For("SpiNNaker"))
}

func TestNewCopiesInput(t *testing.T) {
	m := map[string]string{"a": "x"}
	table := New(m)
	m["a"] = "y"
	assert.Equal(t, "x", table.For("a"))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	content := "resource_usage_units:\n  BrainScaleS-2: chip-hours\n  SpiNNaker: core-hours\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "chip-hours", table.For("BrainScaleS-2"))
	assert.Equal(t, "core-hours", table.For("SpiNNaker"))
}

func TestParseRejectsBadFiles(t *testing.T) {
	_, err := Parse([]byte("resource_usage_units:\n  SpiNNaker: \"\"\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("platforms: {}\n"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
