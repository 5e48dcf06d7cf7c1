package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingGivesDefault(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadInvalidGivesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestSaveLoadKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "portfolio.json")
	want := Default()
	want.ShowFPS = true
	want.LayoutPath = "layouts/alt.yaml"
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, os.WriteFile(path, []byte(`{"width": 640}`), 0644))
	got, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 640, got.Width)
	assert.Equal(t, Default().Height, got.Height)
	assert.Equal(t, "clamp", got.OutOfRange)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"PORTFOLIO_WIDTH":        "1920",
		"PORTFOLIO_SHOW_FPS":     "true",
		"PORTFOLIO_SCROLL_STEP":  "60.5",
		"PORTFOLIO_ASSET_DIR":    "/srv/assets",
		"PORTFOLIO_OUT_OF_RANGE": "strict",
		"PORTFOLIO_HEIGHT":       "tall",
	}
	p := Default()
	err := p.ApplyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	assert.ErrorContains(t, err, "PORTFOLIO_HEIGHT")
	assert.Equal(t, 1920, p.Width)
	assert.Equal(t, Default().Height, p.Height)
	assert.True(t, p.ShowFPS)
	assert.InDelta(t, 60.5, p.ScrollStep, 1e-6)
	assert.Equal(t, "/srv/assets", p.AssetDir)
	assert.Equal(t, "strict", p.OutOfRange)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())
	p := Default()
	p.Width = 0
	assert.Error(t, p.Validate())
	p = Default()
	p.ScrollStep = 0
	assert.Error(t, p.Validate())
}
