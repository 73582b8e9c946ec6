package stats

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/poshan-stack/nutriscan/internal/assessments"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a stats repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "stats"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

// Summarize groups the center's records by status and counts every record
// globally. Both reads run in one query each with no snapshot coordination:
// a record committed mid-query may or may not be counted (read-committed).
func (r *repo) Summarize(ctx context.Context, centerCode string) (*Summary, error) {
	s := &Summary{
		CenterCode: centerCode,
		LocalStats: make(map[assessments.Status]int),
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT status, COUNT(*) FROM assessments WHERE center_code = $1 GROUP BY status",
		centerCode,
	)
	if err != nil {
		return nil, fmt.Errorf("count center assessments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status assessments.Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		s.LocalStats[status] = count
		s.TotalCheckedHere += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate status counts: %w", err)
	}

	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM assessments",
	).Scan(&s.TotalCheckedGlobal); err != nil {
		return nil, fmt.Errorf("count global assessments: %w", err)
	}

	return s, nil
}
