package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/nloira/criblprobe/internal/domain"
	"github.com/nloira/criblprobe/internal/ports"
)

// Probe issues the single read-only branch listing and classifies the
// result. Every failure is caught and classified here; nothing propagates
// past the probe boundary, and no retries happen on any path.
func Probe(ctx context.Context, lister ports.BranchLister) domain.ProbeOutcome {
	branches, err := lister.ListBranches(ctx)
	if err != nil {
		return classifyError(err)
	}

	if len(branches) == 0 {
		return domain.ProbeOutcome{Kind: domain.OutcomeNoBranches}
	}

	return domain.ProbeOutcome{Kind: domain.OutcomeBranches, Branches: branches}
}

// ProbeScoped runs Probe with the client handle released on every exit path.
func ProbeScoped(ctx context.Context, client ports.ScopedBranchLister) domain.ProbeOutcome {
	defer func() {
		_ = client.Close()
	}()

	return Probe(ctx, client)
}

func classifyError(err error) domain.ProbeOutcome {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized:
			return domain.ProbeOutcome{Kind: domain.OutcomeUnauthorized, Message: apiErr.Message}
		case http.StatusTooManyRequests:
			return domain.ProbeOutcome{Kind: domain.OutcomeRateLimited, Message: apiErr.Message}
		}
	}

	return domain.ProbeOutcome{Kind: domain.OutcomeCallFailed, Message: err.Error()}
}
