package cli

import (
	"trip-route-cli/internal/adapters/tokenfile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newTokenCmd(a *app) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Show the token and its remaining lifetime from a JSON token file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := tokenfile.Read(path)
			if err != nil {
				return err
			}
			a.log.Debug("token file loaded", zap.String("path", path), zap.Duration("ttl", tok.TTL()))

			NewPresenter(cmd.OutOrStdout(), false).Token(tok)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "myfile.json", "path to the token file")

	return cmd
}
