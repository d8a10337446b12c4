package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func storeCmd() *cobra.Command {
	var secret string
	cmd := &cobra.Command{
		Use:   "store <alias>",
		Short: "Save a secret under an alias",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alias := args[0]
			if !cmd.Flags().Changed("secret") {
				// Read the secret from stdin so it stays out of shell history.
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				secret = strings.TrimRight(string(b), "\r\n")
			}
			if err := appCtx.Credentials.Put(alias, secret); err != nil {
				return err
			}
			if err := appCtx.Credentials.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored %q.\n", alias)
			return nil
		},
	}
	cmd.Flags().StringVarP(&secret, "secret", "s", "", "secret value (reads stdin when omitted)")
	return cmd
}
