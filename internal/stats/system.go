package stats

import "context"

// System defines the public contract for aggregation queries.
type System interface {
	Handler() *Handler

	// Summarize recomputes the aggregate summary for a reporting center from
	// the current store state. Unknown centers return an empty summary.
	Summarize(ctx context.Context, centerCode string) (*Summary, error)
}
