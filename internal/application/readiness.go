package application

import (
	"github.com/nloira/criblprobe/internal/domain"
)

// Readiness is the pre-flight verdict: whether enough non-placeholder
// configuration exists to attempt the probe call. When not ready, Hints
// lists the variables to set, in a fixed order.
type Readiness struct {
	Ready bool
	Hints []string
}

// CheckReadiness judges resolved credentials for the selected auth mode. It
// runs strictly before any network I/O; a not-ready verdict means the run
// issues zero network calls. Placeholder or absent values are not-ready, not
// fatal.
func CheckReadiness(creds domain.Credentials, mode domain.AuthMode) Readiness {
	switch mode {
	case domain.AuthModeBearer:
		return checkBearer(creds)
	default:
		return checkOAuth2(creds)
	}
}

func checkOAuth2(creds domain.Credentials) Readiness {
	hints := make([]string, 0, 4)
	if domain.IsPlaceholder(creds.OrgID) {
		hints = append(hints, "CRIBL_ORG_ID")
	}
	if domain.IsPlaceholder(creds.ClientID) {
		hints = append(hints, "CRIBL_CLIENT_ID")
	}
	if domain.IsPlaceholder(creds.ClientSecret) {
		hints = append(hints, "CRIBL_CLIENT_SECRET")
	}

	if len(hints) == 0 {
		return Readiness{Ready: true}
	}

	hints = append(hints, "CRIBL_WORKSPACE_NAME (optional, defaults to 'main')")
	return Readiness{Hints: hints}
}

func checkBearer(creds domain.Credentials) Readiness {
	if creds.BearerToken != "" {
		return Readiness{Ready: true}
	}

	return Readiness{Hints: []string{
		"CRIBL_BEARER_TOKEN",
		"CRIBL_SERVER_URL (optional, defaults to 'https://api.example.com')",
	}}
}
