package cli

import (
	"github.com/spf13/cobra"
)

func newRouteCmd(a *app) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Evaluate a single trip and exit",
		Example: `  trip route --from "Santiago, Chile" --to "Valparaiso, Chile"
  trip route --from Lisbon --to Porto --language pt --polyline`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			presenter := NewPresenter(cmd.OutOrStdout(), a.showPolyline)

			ev, err := a.evaluator(presenter)
			if err != nil {
				return err
			}

			report, err := ev.Evaluate(cmd.Context(), from, to)
			if err != nil {
				return err
			}

			presenter.Report(report)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "origin place name")
	cmd.Flags().StringVar(&to, "to", "", "destination place name")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
