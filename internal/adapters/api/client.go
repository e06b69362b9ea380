// Package api is a minimal Cribl control-plane client covering the single
// read-only operation the probe flows need: listing git version branches.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/nloira/criblprobe/internal/domain"
	"github.com/nloira/criblprobe/internal/ports"
	"github.com/rs/zerolog"
)

const branchesPath = "/versions/branches"

// maxResponseBytes bounds how much of a response body is read. Branch
// listings are tiny; anything larger is a misbehaving server.
const maxResponseBytes = 1 << 20

type branchItem struct {
	ID string `json:"id"`
}

type branchListResponse struct {
	Items []branchItem `json:"items"`
}

// Client issues requests against one control-plane deployment. It is built
// once per run and used for at most one call.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
	closed     bool
}

var _ ports.ScopedBranchLister = (*Client)(nil)

func newClient(baseURL string, httpClient *http.Client, log zerolog.Logger) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse server url %q: %w", baseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("server url %q: unsupported scheme %q", baseURL, parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("server url %q: missing host", baseURL)
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        log,
	}, nil
}

// ListBranches performs the probe call: one idempotent GET of the branch
// listing. Failures carry a *domain.APIError so callers can classify on the
// status code; no retries happen here.
func (c *Client) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	endpoint := c.baseURL + branchesPath

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", "criblprobe")

	c.log.Debug().Str("url", endpoint).Msg("listing branches")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, &domain.APIError{Message: err.Error()}
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return nil, &domain.APIError{Message: fmt.Sprintf("read response: %v", err)}
	}

	c.log.Debug().Int("status", response.StatusCode).Msg("branch listing response")

	if response.StatusCode < 200 || response.StatusCode > 299 {
		message := strings.TrimSpace(string(body))
		if message == "" {
			message = http.StatusText(response.StatusCode)
		}
		return nil, &domain.APIError{StatusCode: response.StatusCode, Message: message}
	}

	var payload branchListResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &domain.APIError{Message: fmt.Sprintf("decode branch listing: %v", err)}
	}

	branches := make([]domain.Branch, 0, len(payload.Items))
	for _, item := range payload.Items {
		branches = append(branches, domain.Branch{ID: item.ID})
	}

	return branches, nil
}

// Close releases the client handle. Safe to call exactly once per run; a
// second call is an error so scoped flows notice double releases.
func (c *Client) Close() error {
	if c.closed {
		return errors.New("client already closed")
	}
	c.closed = true
	c.httpClient.CloseIdleConnections()
	return nil
}
