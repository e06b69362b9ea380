package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nloira/criblprobe/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bearerCreds(serverURL string) domain.Credentials {
	return domain.Credentials{
		ServerURL:   serverURL,
		BearerToken: "token-123",
	}
}

func TestCloudBaseURLDerivation(t *testing.T) {
	assert.Equal(t, "https://acme-org123.cribl.cloud/api/v1", CloudBaseURL("acme", "org123"))
	assert.Equal(t, "https://main-your-org-id.cribl.cloud/api/v1", CloudBaseURL("main", "your-org-id"))
}

func TestNewOAuth2ClientConstructionIsLocal(t *testing.T) {
	creds := domain.Credentials{
		OrgID:         "org123",
		ClientID:      "client-abc",
		ClientSecret:  "secret-xyz",
		WorkspaceName: "acme",
	}

	client, err := NewOAuth2Client(context.Background(), creds, zerolog.Nop())

	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewBearerClientRejectsMalformedURL(t *testing.T) {
	tests := []struct {
		name      string
		serverURL string
	}{
		{name: "missing scheme", serverURL: "://bad"},
		{name: "unsupported scheme", serverURL: "ftp://cribl.internal"},
		{name: "missing host", serverURL: "https://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBearerClient(bearerCreds(tt.serverURL), zerolog.Nop())
			require.Error(t, err)
		})
	}
}

func TestListBranchesSendsBearerTokenAndParsesItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/versions/branches", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		_, _ = fmt.Fprint(w, `{"items":[{"id":"main"},{"id":"dev"},{"id":"feature/x"}]}`)
	}))
	defer server.Close()

	client, err := NewBearerClient(bearerCreds(server.URL), zerolog.Nop())
	require.NoError(t, err)

	branches, err := client.ListBranches(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.Branch{{ID: "main"}, {ID: "dev"}, {ID: "feature/x"}}, branches)
}

func TestListBranchesKeepsExplicitPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/custom/versions/branches", r.URL.Path)
		_, _ = fmt.Fprint(w, `{"items":[]}`)
	}))
	defer server.Close()

	client, err := NewBearerClient(bearerCreds(server.URL+"/custom"), zerolog.Nop())
	require.NoError(t, err)

	branches, err := client.ListBranches(context.Background())

	require.NoError(t, err)
	assert.Empty(t, branches)
}

func TestListBranchesSurfacesStatusCode(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantMsg    string
	}{
		{name: "unauthorized", statusCode: 401, body: "invalid client", wantMsg: "invalid client"},
		{name: "rate limited", statusCode: 429, body: "too many requests", wantMsg: "too many requests"},
		{name: "empty body falls back to status text", statusCode: 503, body: "", wantMsg: "Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			client, err := NewBearerClient(bearerCreds(server.URL), zerolog.Nop())
			require.NoError(t, err)

			_, err = client.ListBranches(context.Background())

			var apiErr *domain.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.statusCode, apiErr.StatusCode)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
		})
	}
}

func TestListBranchesNetworkErrorHasNoStatusCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	serverURL := server.URL
	server.Close()

	client, err := NewBearerClient(bearerCreds(serverURL), zerolog.Nop())
	require.NoError(t, err)

	_, err = client.ListBranches(context.Background())

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Message)
}

func TestListBranchesMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `not json`)
	}))
	defer server.Close()

	client, err := NewBearerClient(bearerCreds(server.URL), zerolog.Nop())
	require.NoError(t, err)

	_, err = client.ListBranches(context.Background())

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "decode branch listing")
}

func TestCloseIsSingleUse(t *testing.T) {
	client, err := NewBearerClient(bearerCreds("https://cribl.internal"), zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, client.Close())
	assert.Error(t, client.Close())
}
