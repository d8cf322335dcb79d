package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/fi-forecaster/internal/calculation"
)

func TestLoadSettings_MissingFileUsesDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadSettings_File(t *testing.T) {
	path := writeTemp(t, "settings_*.toml", `
[engine]
horizon_months = 240
narrowing = "earlier"

[log]
level = "debug"
format = "json"

[output]
format = "csv"

[server]
port = 9090
`)

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 240, s.Engine.HorizonMonths)
	assert.Equal(t, "debug", s.Log.Level)
	assert.Equal(t, "json", s.Log.Format)
	assert.Equal(t, "csv", s.Output.Format)
	assert.Equal(t, 9090, s.Server.Port)
	// unset keys keep their defaults
	assert.Equal(t, 10, s.Server.ShutdownTimeoutSeconds)

	opts, err := s.EngineOptions()
	require.NoError(t, err)
	assert.Equal(t, calculation.Options{HorizonMonths: 240, Narrowing: calculation.NarrowAlwaysEarlier}, opts)
}

func TestLoadSettings_EnvOverrides(t *testing.T) {
	t.Setenv("FIFORECAST_LOG_LEVEL", "warn")
	t.Setenv("FIFORECAST_PORT", "7000")
	t.Setenv("FIFORECAST_HORIZON_MONTHS", "36")
	t.Setenv("FIFORECAST_OUTPUT_FORMAT", "json")

	s, err := LoadSettings(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, "warn", s.Log.Level)
	assert.Equal(t, 7000, s.Server.Port)
	assert.Equal(t, 36, s.Engine.HorizonMonths)
	assert.Equal(t, "json", s.Output.Format)
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		errText string
	}{
		{name: "malformed", content: "[engine\n", errText: "parsing settings"},
		{name: "bad narrowing", content: "[engine]\nnarrowing = \"sideways\"\n", errText: "engine.narrowing"},
		{name: "bad level", content: "[log]\nlevel = \"loud\"\n", errText: "log.level"},
		{name: "bad port", content: "[server]\nport = 70000\n", errText: "out of range"},
		{name: "negative horizon", content: "[engine]\nhorizon_months = -1\n", errText: "horizon_months"},
		{name: "bad port env", env: map[string]string{"FIFORECAST_PORT": "eighty"}, errText: "FIFORECAST_PORT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := writeTemp(t, "settings_*.toml", tt.content)
			_, err := LoadSettings(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.toml")
	want := DefaultSettings()
	want.Engine.HorizonMonths = 120
	want.Server.Port = 8181

	require.NoError(t, SaveSettings(path, want))

	got, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "fiforecast", "settings.toml"), SettingsPath())
}
