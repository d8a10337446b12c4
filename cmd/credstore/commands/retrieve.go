package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func retrieveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "retrieve <alias>",
		Short: "Print the secret stored under an alias",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := appCtx.Credentials.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), secret)
			return nil
		},
	}
}
