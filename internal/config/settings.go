package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/rpgo/fi-forecaster/internal/calculation"
	"github.com/rpgo/fi-forecaster/internal/logging"
)

// Settings holds the tool's own preferences, as opposed to the forecast
// input.
type Settings struct {
	Engine EngineSettings `toml:"engine"`
	Log    logging.Config `toml:"log"`
	Output OutputSettings `toml:"output"`
	Server ServerSettings `toml:"server"`
}

// EngineSettings tunes the retirement-date search.
type EngineSettings struct {
	HorizonMonths int    `toml:"horizon_months"`
	Narrowing     string `toml:"narrowing"`
}

// OutputSettings holds report preferences.
type OutputSettings struct {
	Format string `toml:"format"`
}

// ServerSettings holds HTTP server settings.
type ServerSettings struct {
	Port                   int `toml:"port"`
	ShutdownTimeoutSeconds int `toml:"shutdown_timeout_seconds"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	return Settings{
		Engine: EngineSettings{
			Narrowing: string(calculation.DefaultNarrowingPolicy),
		},
		Log: logging.Config{
			Level:  "info",
			Format: "console",
		},
		Output: OutputSettings{
			Format: "console",
		},
		Server: ServerSettings{
			Port:                   8080,
			ShutdownTimeoutSeconds: 10,
		},
	}
}

// SettingsDir returns the XDG-compliant settings directory.
func SettingsDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fiforecast")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fiforecast")
}

// SettingsPath returns the default settings file path.
func SettingsPath() string {
	return filepath.Join(SettingsDir(), "settings.toml")
}

// LoadSettings reads path (SettingsPath when empty), falling back to the
// defaults when the file does not exist, then applies environment overrides.
func LoadSettings(path string) (Settings, error) {
	if path == "" {
		path = SettingsPath()
	}
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return s, fmt.Errorf("reading settings: %w", err)
	}
	if len(data) > 0 {
		if err := toml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("parsing settings %s: %w", path, err)
		}
	}

	if err := s.applyEnv(); err != nil {
		return s, err
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

// SaveSettings writes s to path (SettingsPath when empty).
func SaveSettings(path string, s Settings) error {
	if path == "" {
		path = SettingsPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating settings file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(s)
}

func (s *Settings) applyEnv() error {
	if v := os.Getenv("FIFORECAST_LOG_LEVEL"); v != "" {
		s.Log.Level = v
	}
	if v := os.Getenv("FIFORECAST_OUTPUT_FORMAT"); v != "" {
		s.Output.Format = v
	}
	if v := os.Getenv("FIFORECAST_NARROWING"); v != "" {
		s.Engine.Narrowing = v
	}
	if v := os.Getenv("FIFORECAST_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FIFORECAST_PORT: %w", err)
		}
		s.Server.Port = port
	}
	if v := os.Getenv("FIFORECAST_HORIZON_MONTHS"); v != "" {
		months, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FIFORECAST_HORIZON_MONTHS: %w", err)
		}
		s.Engine.HorizonMonths = months
	}
	return nil
}

// Validate checks value ranges and names.
func (s Settings) Validate() error {
	if s.Engine.HorizonMonths < 0 {
		return fmt.Errorf("engine.horizon_months cannot be negative")
	}
	if _, err := calculation.ParseNarrowingPolicy(s.Engine.Narrowing); err != nil {
		return fmt.Errorf("engine.narrowing: %w", err)
	}
	if _, err := logging.ParseLevel(s.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if s.Server.Port < 0 || s.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", s.Server.Port)
	}
	if s.Server.ShutdownTimeoutSeconds < 0 {
		return fmt.Errorf("server.shutdown_timeout_seconds cannot be negative")
	}
	return nil
}

// EngineOptions converts the engine settings into calculation options.
func (s Settings) EngineOptions() (calculation.Options, error) {
	policy, err := calculation.ParseNarrowingPolicy(s.Engine.Narrowing)
	if err != nil {
		return calculation.Options{}, err
	}
	return calculation.Options{
		HorizonMonths: s.Engine.HorizonMonths,
		Narrowing:     policy,
	}, nil
}
