package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/fi-forecaster/internal/config"
)

func newValidateCommand(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <input-file>",
		Short: "Check an input file without running a forecast",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inf, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s is valid\n", args[0])
			fmt.Fprintf(out, "  once-off expenses: %d\n", len(inf.OnceOffExpenses))
			fmt.Fprintf(out, "  monthly expenses:  %d\n", len(inf.MonthlyExpenses))
			fmt.Fprintf(out, "  once-off incomes:  %d\n", len(inf.OnceOffIncomes))
			fmt.Fprintf(out, "  monthly incomes:   %d (%d undesirable)\n", len(inf.MonthlyIncomes), len(inf.UndesirableIncome()))
			fmt.Fprintf(out, "  assets:            %d\n", len(inf.Assets))
			fmt.Fprintf(out, "  purchases:         %d\n", len(inf.Purchases))
			fmt.Fprintf(out, "  spending goals:    %d\n", len(inf.SpendingGoals))
			return nil
		},
	}
}
