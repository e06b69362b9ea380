package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/nloira/criblprobe/internal/adapters/render/report"
	"github.com/spf13/cobra"
)

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show environment diagnostics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), report.Environment(gatherEnvInfo()))
			return err
		},
	}
}

func gatherEnvInfo() report.EnvInfo {
	workingDir, err := os.Getwd()
	if err != nil {
		workingDir = "unknown"
	}

	runtimeLabel := "Local Machine"
	if os.Getenv("CODESPACES") != "" {
		runtimeLabel = "GitHub Codespaces"
	} else if os.Getenv("REMOTE_CONTAINERS") != "" {
		runtimeLabel = "VS Code Dev Container"
	}

	return report.EnvInfo{
		GoVersion:   runtime.Version(),
		WorkingDir:  workingDir,
		EnvVarCount: len(os.Environ()),
		Runtime:     runtimeLabel,
	}
}
