package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:           "nirogya",
		Short:         "Nirogya entry screen: create or join consultation rooms",
		Long:          "nirogya resolves doctor and AI consultation rooms, encodes live translation settings into room links, and shows per-participant translation status from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return app.configureLogging(cmd.Context(), cmd.ErrOrStderr(), logLevel)
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRoomCmd(app),
		newLanguagesCmd(app),
		newSelectorCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}
