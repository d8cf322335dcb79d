package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/rpgo/fi-forecaster/internal/config"
)

func newSettingsCommand(a *app) *cobra.Command {
	var initFile bool
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show the effective settings, or write the defaults with --init",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.settingsPath
			if path == "" {
				path = config.SettingsPath()
			}
			out := cmd.OutOrStdout()

			if initFile {
				if err := config.SaveSettings(path, config.DefaultSettings()); err != nil {
					return err
				}
				fmt.Fprintf(out, "wrote default settings to %s\n", path)
				return nil
			}

			fmt.Fprintf(out, "# settings file: %s\n", path)
			return toml.NewEncoder(out).Encode(a.settings)
		},
	}
	cmd.Flags().BoolVar(&initFile, "init", false, "Write the default settings file")
	return cmd
}
