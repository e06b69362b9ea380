package cmd

import (
	"context"
	"fmt"

	"github.com/nloira/criblprobe/internal/adapters/api"
	"github.com/nloira/criblprobe/internal/adapters/render/report"
	"github.com/nloira/criblprobe/internal/application"
	"github.com/nloira/criblprobe/internal/domain"
	"github.com/spf13/cobra"
)

func newOAuth2Cmd(app *app) *cobra.Command {
	var profileName string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "oauth2",
		Short: "Probe a Cribl.Cloud deployment with OAuth2 client credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOAuth2Probe(cmd, app, profileName, asJSON)
		},
	}

	cmd.Flags().StringVar(&profileName, "profile", "", "Stored credential profile to fill unset variables from")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func runOAuth2Probe(cmd *cobra.Command, app *app, profileName string, asJSON bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	creds, err := resolveCredentials(ctx, app, profileName)
	if err != nil {
		return err
	}

	baseURL := api.CloudBaseURL(creds.WorkspaceName, creds.OrgID)
	if !asJSON {
		fmt.Fprintln(out, report.Banner())
		fmt.Fprintln(out, report.ServerLine(baseURL))
	}

	readiness := application.CheckReadiness(creds, domain.AuthModeOAuth2)
	if !readiness.Ready {
		if asJSON {
			return writeJSON(out, readiness)
		}
		_, err := fmt.Fprintln(out, report.NotReady(domain.AuthModeOAuth2, readiness.Hints))
		return err
	}

	client, err := api.NewOAuth2Client(ctx, creds, app.log)
	if err != nil {
		return fmt.Errorf("construct control-plane client: %w", err)
	}

	// The probe is a single awaited operation: the flow suspends only at
	// this network call boundary, behind the spinner.
	var outcome domain.ProbeOutcome
	probe := func(ctx context.Context) error {
		outcome = application.Probe(ctx, client)
		return nil
	}

	if asJSON {
		if err := probe(ctx); err != nil {
			return err
		}
		return writeJSON(out, outcome)
	}

	if err := runProbeSpinner(ctx, cmd.ErrOrStderr(), probe); err != nil {
		return err
	}

	fmt.Fprintln(out, report.Outcome(outcome))
	_, err = fmt.Fprintln(out, report.NextSteps())
	return err
}
