package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/fi-forecaster/internal/config"
	"github.com/rpgo/fi-forecaster/internal/output"
)

func newExampleCommand(a *app) *cobra.Command {
	var currentDate string
	cmd := &cobra.Command{
		Use:   "example [output-file]",
		Short: "Print or write an example input file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveCurrentDate(currentDate, time.Time{})
			if err != nil {
				return err
			}
			example := config.NewInputParser().CreateExampleInfluencers(date)

			if len(args) == 1 {
				if err := output.SaveInfluencers(example, args[0]); err != nil {
					return fmt.Errorf("writing example: %w", err)
				}
				a.logger.Info("example written", zap.String("file", args[0]))
				return nil
			}

			data, err := yaml.Marshal(example)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&currentDate, "current-date", "", "Anchor the example at this date (default today)")
	return cmd
}
