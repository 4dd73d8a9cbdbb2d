package cli

import (
	"errors"
	"time"
	"trip-route-cli/internal/ports"
	"trip-route-cli/internal/services"

	"github.com/spf13/cobra"
)

func newISSCmd(a *app) *cobra.Command {
	var cycles int
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "iss",
		Short: "Print the current position of the International Space Station",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.RequireISS(); err != nil {
				return err
			}

			presenter := NewPresenter(cmd.OutOrStdout(), false)
			poller := &services.ISSPoller{
				Provider: a.newPositions(a.cfg, a.log),
				Cycles:   cycles,
				Interval: interval,
				Log:      a.log,
			}

			err := poller.Run(cmd.Context(), func(cycle int, pos *ports.PositionReport, err error) {
				if err != nil {
					presenter.ISSError(cycle, err)
					return
				}
				presenter.ISSPosition(cycle, *pos)
			})
			if err != nil && errors.Is(err, cmd.Context().Err()) {
				// Interrupted by the user.
				return nil
			}
			return err
		},
	}

	cmd.Flags().IntVar(&cycles, "cycles", 3, "number of positions to print")
	cmd.Flags().DurationVar(&interval, "interval", time.Minute, "wait between positions")

	return cmd
}
