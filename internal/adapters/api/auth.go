package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/nloira/criblprobe/internal/domain"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Cribl.Cloud OAuth2 endpoints are fixed; only the workspace API host varies
// per org.
const (
	CloudTokenURL = "https://login.cribl.cloud/oauth/token"
	CloudAudience = "https://api.cribl.cloud"
)

// CloudBaseURL derives the workspace API endpoint for a Cribl.Cloud org.
func CloudBaseURL(workspace, orgID string) string {
	return fmt.Sprintf("https://%s-%s.cribl.cloud/api/v1", workspace, orgID)
}

// NewOAuth2Client assembles a client-credentials authenticated client for
// the org's derived endpoint. Construction is purely local: the first token
// exchange happens lazily on the probe call itself.
func NewOAuth2Client(ctx context.Context, creds domain.Credentials, log zerolog.Logger) (*Client, error) {
	conf := clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     CloudTokenURL,
		EndpointParams: url.Values{
			"audience": {CloudAudience},
		},
	}

	return newClient(CloudBaseURL(creds.WorkspaceName, creds.OrgID), conf.Client(ctx), log)
}

// NewBearerClient assembles a static-token client for the configured server
// URL. `/api/v1` is appended when the URL carries no path.
func NewBearerClient(creds domain.Credentials, log zerolog.Logger) (*Client, error) {
	baseURL, err := normalizeServerURL(creds.ServerURL)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: creds.BearerToken}),
			Base:   http.DefaultTransport,
		},
	}

	return newClient(baseURL, httpClient, log)
}

func normalizeServerURL(serverURL string) (string, error) {
	parsed, err := url.Parse(serverURL)
	if err != nil {
		return "", fmt.Errorf("parse server url %q: %w", serverURL, err)
	}

	if parsed.Path == "" || parsed.Path == "/" {
		return strings.TrimRight(serverURL, "/") + "/api/v1", nil
	}

	return serverURL, nil
}
