package cmd

import (
	"fmt"

	"github.com/nloira/criblprobe/internal/adapters/api"
	"github.com/nloira/criblprobe/internal/adapters/render/report"
	"github.com/nloira/criblprobe/internal/application"
	"github.com/nloira/criblprobe/internal/domain"
	"github.com/spf13/cobra"
)

func newBearerCmd(app *app) *cobra.Command {
	var profileName string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "bearer",
		Short: "Probe a control-plane server with a static bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBearerProbe(cmd, app, profileName, asJSON)
		},
	}

	cmd.Flags().StringVar(&profileName, "profile", "", "Stored credential profile to fill unset variables from")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func runBearerProbe(cmd *cobra.Command, app *app, profileName string, asJSON bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	creds, err := resolveCredentials(ctx, app, profileName)
	if err != nil {
		return err
	}

	if !asJSON {
		fmt.Fprintln(out, report.ServerLine(creds.ServerURL))
	}

	readiness := application.CheckReadiness(creds, domain.AuthModeBearer)
	if !readiness.Ready {
		if asJSON {
			return writeJSON(out, readiness)
		}
		_, err := fmt.Fprintln(out, report.NotReady(domain.AuthModeBearer, readiness.Hints))
		return err
	}

	client, err := api.NewBearerClient(creds, app.log)
	if err != nil {
		return fmt.Errorf("construct control-plane client: %w", err)
	}

	// Synchronous variant: the client handle is released on every exit path
	// inside ProbeScoped.
	outcome := application.ProbeScoped(ctx, client)

	if asJSON {
		return writeJSON(out, outcome)
	}

	_, err = fmt.Fprintln(out, report.Outcome(outcome))
	return err
}
