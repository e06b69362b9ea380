package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "criblprobe",
		Short:         "Probe Cribl control-plane connectivity and credentials",
		Long:          "criblprobe validates connectivity against a Cribl control-plane deployment by issuing a single read-only API call (listing git branches), authenticated with OAuth2 client credentials or a static bearer token.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newOAuth2Cmd(app),
		newBearerCmd(app),
		newEnvCmd(),
		newProfileCmd(app),
	)

	return rootCmd
}
