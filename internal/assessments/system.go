package assessments

import (
	"context"

	"github.com/google/uuid"

	"github.com/poshan-stack/nutriscan/pkg/pagination"
)

// System defines the public contract for assessment domain operations.
type System interface {
	Handler() *Handler

	// Evaluate runs the pure engine without persisting anything.
	Evaluate(m Measurement) Result

	// Record assesses a child and persists the classification record.
	// Error-status results are rejected with ErrNotScorable, not stored.
	Record(ctx context.Context, cmd RecordCommand) (*Assessment, error)

	// RecordBatch assesses and persists a roster of children with bounded
	// concurrency, reporting per-child outcomes.
	RecordBatch(ctx context.Context, cmds []RecordCommand) ([]BatchResult, error)

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Assessment], error)

	Find(ctx context.Context, id uuid.UUID) (*Assessment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
