package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 1.0, cfg.LeftHead)
	assert.Equal(t, 0.9, cfg.RightHead)
	assert.Equal(t, []int{1, 50, 1}, cfg.LayerWidths)
	assert.Equal(t, 5000, cfg.Epochs)
	assert.Equal(t, "adam", cfg.Optimizer)
}

func TestValidate_Domain(t *testing.T) {
	cfg := Default()
	cfg.XMin, cfg.XMax = 2, 2
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDomain)

	cfg.XMin, cfg.XMax = 5, 1
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidDomain)
}

func TestValidate_Architecture(t *testing.T) {
	cases := map[string][]int{
		"single width":   {1},
		"negative width": {1, -3, 1},
		"zero width":     {1, 0, 1},
		"wide input":     {2, 5, 1},
		"wide output":    {1, 5, 3},
	}
	for name, widths := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			cfg.LayerWidths = widths
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidArchitecture)
		})
	}
}

func TestValidate_Optimization(t *testing.T) {
	cfg := Default()
	cfg.LearningRate = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Epochs = -1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.PDEWeight = -0.5
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Optimizer = "lbfgs"
	assert.Error(t, cfg.Validate())

	// Empty optimizer falls back to the default choice.
	cfg = Default()
	cfg.Optimizer = ""
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solver.yaml")
	content := []byte("xmax: 2.0\nright_head: 0.5\nepochs: 1200\nlayer_widths: [1, 16, 16, 1]\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2.0, cfg.XMax)
	assert.Equal(t, 0.5, cfg.RightHead)
	assert.Equal(t, 1200, cfg.Epochs)
	assert.Equal(t, []int{1, 16, 16, 1}, cfg.LayerWidths)

	// Untouched keys keep their defaults.
	assert.Equal(t, 1.0, cfg.LeftHead)
	assert.Equal(t, 100, cfg.CollocationPoints)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidContentRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("xmin: 9\nxmax: 1\n"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidDomain)
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	cfg.ApplyOverrides(Overrides{
		Epochs:       100,
		LearningRate: 0.05,
		Optimizer:    "sgd",
		SampleSeed:   9,
	})

	assert.Equal(t, 100, cfg.Epochs)
	assert.Equal(t, 0.05, cfg.LearningRate)
	assert.Equal(t, "sgd", cfg.Optimizer)
	assert.Equal(t, int64(9), cfg.SampleSeed)

	// Zero values leave fields alone.
	assert.Equal(t, 100, cfg.CollocationPoints)
	assert.Equal(t, []int{1, 50, 1}, cfg.LayerWidths)
	assert.Equal(t, int64(42), cfg.InitSeed)
}
