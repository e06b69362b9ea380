package domain

type OutcomeKind string

const (
	OutcomeBranches     OutcomeKind = "branches"
	OutcomeNoBranches   OutcomeKind = "no_branches"
	OutcomeUnauthorized OutcomeKind = "unauthorized"
	OutcomeRateLimited  OutcomeKind = "rate_limited"
	OutcomeCallFailed   OutcomeKind = "call_failed"
)

// ProbeOutcome is the classified result of the single probe call. Branches
// keeps the order the server returned. Message carries the original error
// text verbatim for the error kinds.
type ProbeOutcome struct {
	Kind     OutcomeKind
	Branches []Branch
	Message  string
}
