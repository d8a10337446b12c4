package commands

import (
	"github.com/spf13/cobra"

	"credstore/internal/app"
)

var (
	location  string
	storeName string
	logLevel  string
	logPretty bool

	appCtx *app.Wire
)

func Execute() error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}

	root := &cobra.Command{
		Use:           "credstore",
		Short:         "Alias-addressed credential store CLI",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Location = location
			cfg.Store = storeName
			cfg.LogLevel = logLevel
			cfg.LogPretty = logPretty

			appCtx, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&location, "location", cfg.Location, "backing credential file (default $CREDSTORE_LOCATION)")
	root.PersistentFlags().StringVar(&storeName, "store", cfg.Store, "store algorithm (default $CREDSTORE_STORE)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "log level")
	root.PersistentFlags().BoolVar(&logPretty, "log-pretty", cfg.LogPretty, "human-readable log output")

	root.AddCommand(storeCmd(), retrieveCmd(), removeCmd(), aliasesCmd(), fingerprintCmd())
	return root.Execute()
}
