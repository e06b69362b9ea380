// Package report turns classified probe results into terminal output. Every
// function here is pure: it takes an outcome and returns the formatted text,
// leaving the output handle to the caller.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nloira/criblprobe/internal/domain"
)

// branchSeparator keeps branch ids one per line, indented under the summary.
const branchSeparator = "\n\t"

// Outcome renders a classified probe result. Branch ids stay in the order
// the server returned them; error messages are reproduced verbatim.
func Outcome(outcome domain.ProbeOutcome) string {
	s := newStyles()

	switch outcome.Kind {
	case domain.OutcomeBranches:
		ids := make([]string, 0, len(outcome.Branches))
		for _, branch := range outcome.Branches {
			ids = append(ids, branch.ID)
		}
		return s.success.Render("Client works! Your list of branches:") + branchSeparator + strings.Join(ids, branchSeparator)
	case domain.OutcomeNoBranches:
		return s.success.Render("Client works! No branches found (this is normal for new deployments)")
	case domain.OutcomeUnauthorized:
		return s.failure.Render("Authentication failed! Check your CRIBL_CLIENT_ID and CRIBL_CLIENT_SECRET.")
	case domain.OutcomeRateLimited:
		return s.warning.Render("You've reached the rate limit. Try again in a few seconds.")
	default:
		return s.failure.Render(fmt.Sprintf("Something went wrong: %s", outcome.Message))
	}
}

// NotReady renders the remediation hints for a not-ready readiness verdict.
func NotReady(mode domain.AuthMode, hints []string) string {
	s := newStyles()

	lines := []string{
		s.warning.Render("Using placeholder credentials. Set environment variables to test real API calls:"),
	}
	for _, hint := range hints {
		lines = append(lines, s.hint.Render("  - "+hint))
	}

	if mode == domain.AuthModeOAuth2 {
		lines = append(lines, "", s.hint.Render("Copy env.example to .env and fill in your values!"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Banner renders the welcome panel shown before the oauth2 flow.
func Banner() string {
	return newStyles().banner.Render("Cribl Control Plane Sandbox")
}

// ServerLine announces which endpoint the probe will hit.
func ServerLine(baseURL string) string {
	s := newStyles()
	return s.label.Render("Server URL: ") + s.value.Render(baseURL)
}

// NextSteps renders the epilogue printed after the oauth2 flow.
func NextSteps() string {
	s := newStyles()

	lines := []string{
		s.rule.Render(strings.Repeat("=", 70)),
		s.label.Render("Next steps:"),
		s.hint.Render("  1. Set your Cribl.Cloud OAuth2 credentials in environment variables"),
		s.hint.Render("  2. Store them once with `criblprobe profile set` to skip the exports"),
		s.hint.Render("  3. Check the API documentation for more operations to try"),
		s.rule.Render(strings.Repeat("=", 70)),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// EnvInfo is the environment diagnostics snapshot the env command renders.
type EnvInfo struct {
	GoVersion   string
	WorkingDir  string
	EnvVarCount int
	Runtime     string
}

// Environment renders the diagnostics as aligned label/value rows.
func Environment(info EnvInfo) string {
	s := newStyles()

	rows := []struct {
		label string
		value string
	}{
		{"Go Version", info.GoVersion},
		{"Working Directory", info.WorkingDir},
		{"Environment Variables", fmt.Sprintf("%d", info.EnvVarCount)},
		{"Environment", info.Runtime},
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, s.label.Render("Environment Information"))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("  %s %s", s.label.Render(fmt.Sprintf("%-22s", row.label)), s.value.Render(row.value)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
