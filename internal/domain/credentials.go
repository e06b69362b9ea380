package domain

import "strings"

type AuthMode string

const (
	AuthModeOAuth2 AuthMode = "oauth2"
	AuthModeBearer AuthMode = "bearer"
)

// PlaceholderPrefix marks a default credential value that was never
// configured. Distinct from an empty string: a placeholder means "the
// variable exists but still holds its example value".
const PlaceholderPrefix = "your-"

// Credentials holds every secret the two auth modes may need. Resolution
// never fails; absent variables land here as defaults or empty strings and
// are judged by the readiness check.
type Credentials struct {
	OrgID         string
	ClientID      string
	ClientSecret  string
	WorkspaceName string
	ServerURL     string
	BearerToken   string
}

func IsPlaceholder(value string) bool {
	return strings.HasPrefix(value, PlaceholderPrefix)
}
