package cmd

import (
	"fmt"

	"github.com/nloira/criblprobe/internal/domain"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage stored credential profiles",
	}

	cmd.AddCommand(
		newProfileListCmd(app),
		newProfileSetCmd(app),
		newProfileRemoveCmd(app),
	)

	return cmd
}

func newProfileListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := app.store.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list profiles: %w", err)
			}

			if len(names) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No profiles stored.")
				return err
			}

			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newProfileSetCmd(app *app) *cobra.Command {
	var name string
	var creds domain.Credentials

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or update a profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.store.Save(cmd.Context(), name, creds); err != nil {
				return fmt.Errorf("save profile: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Profile %q saved.\n", name)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Profile name")
	cmd.Flags().StringVar(&creds.OrgID, "org-id", "", "Cribl.Cloud organization id")
	cmd.Flags().StringVar(&creds.ClientID, "client-id", "", "OAuth2 client id")
	cmd.Flags().StringVar(&creds.ClientSecret, "client-secret", "", "OAuth2 client secret")
	cmd.Flags().StringVar(&creds.WorkspaceName, "workspace", "", "Workspace name")
	cmd.Flags().StringVar(&creds.ServerURL, "server-url", "", "Server URL for bearer mode")
	cmd.Flags().StringVar(&creds.BearerToken, "bearer-token", "", "Static bearer token")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProfileRemoveCmd(app *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.store.Delete(cmd.Context(), name); err != nil {
				return fmt.Errorf("remove profile: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Profile %q removed.\n", name)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Profile name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
