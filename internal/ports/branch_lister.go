package ports

import (
	"context"

	"github.com/nloira/criblprobe/internal/domain"
)

type BranchLister interface {
	ListBranches(ctx context.Context) ([]domain.Branch, error)
}

// ScopedBranchLister is a lister whose underlying client must be released
// after use.
type ScopedBranchLister interface {
	BranchLister
	Close() error
}
