package domain

import "context"

// QueryPort is the unified listing query surface
// Both deployments (trusted in-process and public HTTP) satisfy this contract
// and must produce identical cursors and ordering for identical inputs
type QueryPort interface {
	// Query returns one page for the given filter
	Query(ctx context.Context, in FilterSpec) (Page, error)

	// Search is the universal search entry point: always merges both
	// collections and applies the keyword predicate before truncation
	Search(ctx context.Context, in FilterSpec) (Page, error)
}
