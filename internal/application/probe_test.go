package application

import (
	"context"
	"errors"
	"testing"

	"github.com/nloira/criblprobe/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	branches []domain.Branch
	err      error
	calls    int
}

func (f *fakeLister) ListBranches(_ context.Context) ([]domain.Branch, error) {
	f.calls++
	return f.branches, f.err
}

type fakeScopedLister struct {
	fakeLister
	closes int
}

func (f *fakeScopedLister) Close() error {
	f.closes++
	return nil
}

func TestProbeNonEmptyKeepsServerOrder(t *testing.T) {
	lister := &fakeLister{branches: []domain.Branch{{ID: "main"}, {ID: "dev"}}}

	outcome := Probe(context.Background(), lister)

	require.Equal(t, domain.OutcomeBranches, outcome.Kind)
	assert.Equal(t, []domain.Branch{{ID: "main"}, {ID: "dev"}}, outcome.Branches)
	assert.Equal(t, 1, lister.calls, "exactly one call per run")
}

func TestProbeEmptyListIsNotAnError(t *testing.T) {
	lister := &fakeLister{branches: []domain.Branch{}}

	outcome := Probe(context.Background(), lister)

	assert.Equal(t, domain.OutcomeNoBranches, outcome.Kind)
	assert.Empty(t, outcome.Message)
}

func TestProbeClassifiesStatusCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind domain.OutcomeKind
	}{
		{
			name:     "401 is unauthorized",
			err:      &domain.APIError{StatusCode: 401, Message: "invalid client"},
			wantKind: domain.OutcomeUnauthorized,
		},
		{
			name:     "429 is rate limited",
			err:      &domain.APIError{StatusCode: 429, Message: "too many requests"},
			wantKind: domain.OutcomeRateLimited,
		},
		{
			name:     "500 is unclassified",
			err:      &domain.APIError{StatusCode: 500, Message: "boom"},
			wantKind: domain.OutcomeCallFailed,
		},
		{
			name:     "no status code is unclassified",
			err:      &domain.APIError{Message: "connection refused"},
			wantKind: domain.OutcomeCallFailed,
		},
		{
			name:     "plain error is unclassified",
			err:      errors.New("dial tcp: lookup failed"),
			wantKind: domain.OutcomeCallFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lister := &fakeLister{err: tt.err}

			outcome := Probe(context.Background(), lister)

			assert.Equal(t, tt.wantKind, outcome.Kind)
			assert.Equal(t, 1, lister.calls)
		})
	}
}

func TestProbePreservesUnclassifiedMessageVerbatim(t *testing.T) {
	lister := &fakeLister{err: errors.New("dial tcp 10.0.0.1:443: i/o timeout")}

	outcome := Probe(context.Background(), lister)

	assert.Equal(t, "dial tcp 10.0.0.1:443: i/o timeout", outcome.Message)
}

func TestProbeWrappedAPIErrorStillClassifies(t *testing.T) {
	wrapped := &domain.APIError{StatusCode: 429, Message: "slow down"}
	lister := &fakeLister{err: errors.Join(errors.New("list branches"), wrapped)}

	outcome := Probe(context.Background(), lister)

	assert.Equal(t, domain.OutcomeRateLimited, outcome.Kind)
}

func TestProbeScopedReleasesClientOnce(t *testing.T) {
	client := &fakeScopedLister{fakeLister: fakeLister{branches: []domain.Branch{{ID: "main"}}}}

	outcome := ProbeScoped(context.Background(), client)

	assert.Equal(t, domain.OutcomeBranches, outcome.Kind)
	assert.Equal(t, 1, client.closes)
}

func TestProbeScopedReleasesClientOnFailure(t *testing.T) {
	client := &fakeScopedLister{fakeLister: fakeLister{err: &domain.APIError{StatusCode: 401, Message: "nope"}}}

	outcome := ProbeScoped(context.Background(), client)

	assert.Equal(t, domain.OutcomeUnauthorized, outcome.Kind)
	assert.Equal(t, 1, client.closes)
}
