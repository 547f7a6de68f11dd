package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")

	cfg := GetPreset("dice", "flatband")
	require.NotNil(t, cfg)
	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "lattice = ")
	assert.Contains(t, string(data), "[dos]")

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, *cfg, *got)
}

func TestParseTOMLFillsDefaults(t *testing.T) {
	cfg, err := ParseTOML([]byte("lattice = 'triangular'\n\n[grid]\nn1 = 8\nn2 = 4\n"))
	require.NoError(t, err)

	assert.Equal(t, "triangular", cfg.Lattice)
	assert.Equal(t, DefaultSegmentN, cfg.Path.N)
	assert.Equal(t, DefaultEnergySteps, cfg.DOS.Steps)
	assert.True(t, cfg.Grid.Enabled())
	assert.Equal(t, DefaultFormat, cfg.Output.Format)
}

func TestParseTOMLRejectsInvalid(t *testing.T) {
	_, err := ParseTOML([]byte("[dos]\nsteps = 0\n"))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = ParseTOML([]byte("lattice = \n"))
	assert.Error(t, err)
}

func TestLoadPicksCodecByExtension(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("lattice: dice\n"), 0644))

	cfg, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "dice", cfg.Lattice)

	tomlPath := filepath.Join(dir, "RUN.TOML")
	require.NoError(t, os.WriteFile(tomlPath, []byte("lattice = 'square'\n"), 0644))

	cfg, err = Load(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, "square", cfg.Lattice)
}
