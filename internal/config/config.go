package config

import (
	"strings"

	"github.com/nloira/criblprobe/internal/domain"
	"github.com/spf13/viper"
)

const (
	envPrefix = "cribl"

	keyOrgID         = "org_id"
	keyClientID      = "client_id"
	keyClientSecret  = "client_secret"
	keyWorkspaceName = "workspace_name"
	keyServerURL     = "server_url"
	keyBearerToken   = "bearer_token"
)

// Documented defaults. The "your-" values are placeholder sentinels the
// readiness check treats as not-configured.
const (
	DefaultOrgID         = "your-org-id"
	DefaultClientID      = "your-client-id"
	DefaultClientSecret  = "your-client-secret"
	DefaultWorkspaceName = "main"
	DefaultServerURL     = "https://api.example.com"
)

// Resolve reads the CRIBL_* environment variables into a Credentials value.
// Missing variables resolve to their defaults; resolution itself never
// fails and performs no side effects beyond reading the environment.
func Resolve(cfg *viper.Viper) domain.Credentials {
	if cfg == nil {
		cfg = viper.New()
	}

	cfg.SetEnvPrefix(envPrefix)
	cfg.AutomaticEnv()

	cfg.SetDefault(keyOrgID, DefaultOrgID)
	cfg.SetDefault(keyClientID, DefaultClientID)
	cfg.SetDefault(keyClientSecret, DefaultClientSecret)
	cfg.SetDefault(keyWorkspaceName, DefaultWorkspaceName)
	cfg.SetDefault(keyServerURL, DefaultServerURL)
	cfg.SetDefault(keyBearerToken, "")

	return domain.Credentials{
		OrgID:         cfg.GetString(keyOrgID),
		ClientID:      cfg.GetString(keyClientID),
		ClientSecret:  cfg.GetString(keyClientSecret),
		WorkspaceName: cfg.GetString(keyWorkspaceName),
		ServerURL:     cfg.GetString(keyServerURL),
		BearerToken:   strings.TrimSpace(cfg.GetString(keyBearerToken)),
	}
}

// ApplyProfile fills credential fields that still hold their default or are
// empty from a stored profile. Environment values always win over profile
// values.
func ApplyProfile(creds domain.Credentials, profile domain.Credentials) domain.Credentials {
	if creds.OrgID == DefaultOrgID && profile.OrgID != "" {
		creds.OrgID = profile.OrgID
	}
	if creds.ClientID == DefaultClientID && profile.ClientID != "" {
		creds.ClientID = profile.ClientID
	}
	if creds.ClientSecret == DefaultClientSecret && profile.ClientSecret != "" {
		creds.ClientSecret = profile.ClientSecret
	}
	if creds.WorkspaceName == DefaultWorkspaceName && profile.WorkspaceName != "" {
		creds.WorkspaceName = profile.WorkspaceName
	}
	if creds.ServerURL == DefaultServerURL && profile.ServerURL != "" {
		creds.ServerURL = profile.ServerURL
	}
	if creds.BearerToken == "" && profile.BearerToken != "" {
		creds.BearerToken = profile.BearerToken
	}
	return creds
}
