// Package cli implements the fiforecast commands.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rpgo/fi-forecaster/internal/config"
	"github.com/rpgo/fi-forecaster/internal/logging"
)

// app carries what every command needs once the persistent flags are parsed.
type app struct {
	settingsPath string
	logLevel     string

	settings config.Settings
	logger   *logging.Logger
}

// NewRootCommand builds the command tree. A fresh tree is built per call so
// tests can run commands independently.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "fiforecast",
		Short: "Financial independence forecaster",
		Long: "Forecast monthly cash and net worth from expenses, income, assets and spending goals,\n" +
			"and find the earliest date undesirable income can stop.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.settingsPath, "settings", "", "Settings file (default "+config.SettingsPath()+")")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(
		newForecastCommand(a),
		newValidateCommand(a),
		newExampleCommand(a),
		newServeCommand(a),
		newSettingsCommand(a),
	)
	return root
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	settings, err := config.LoadSettings(a.settingsPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		settings.Log.Level = a.logLevel
	}
	logger, err := logging.New(settings.Log)
	if err != nil {
		return err
	}
	a.settings = settings
	a.logger = logger.Named(cmd.Name())
	return nil
}
