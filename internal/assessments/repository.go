package assessments

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/poshan-stack/nutriscan/pkg/pagination"
	"github.com/poshan-stack/nutriscan/pkg/query"
	"github.com/poshan-stack/nutriscan/pkg/repository"
)

// batchConcurrency bounds parallel inserts during roster screening.
const batchConcurrency = 4

type repo struct {
	db         *sql.DB
	engine     *Engine
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates an assessment repository implementing the System interface.
func New(
	db *sql.DB,
	engine *Engine,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		engine:     engine,
		logger:     logger.With("system", "assessments"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) Evaluate(m Measurement) Result {
	return r.engine.Assess(m)
}

func (r *repo) Record(ctx context.Context, cmd RecordCommand) (*Assessment, error) {
	result := r.engine.Assess(cmd.Measurement())
	if result.Status == StatusError {
		return nil, fmt.Errorf("%w: %s", ErrNotScorable, result.Message)
	}

	insertQ := `
		INSERT INTO assessments(
			center_code, child_name, age_years, sex,
			height_cm, weight_kg, status, z_score, color_code
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, center_code, child_name, age_years, sex,
				  height_cm, weight_kg, status, z_score, color_code,
				  assessed_at`

	insertArgs := []any{
		cmd.CenterCode,
		cmd.ChildName,
		cmd.AgeYears,
		cmd.Sex,
		cmd.HeightCM,
		cmd.WeightKG,
		result.Status,
		result.ZScore,
		result.ColorCode,
	}

	a, err := repository.QueryOne(ctx, r.db, insertQ, insertArgs, scanAssessment)
	if err != nil {
		return nil, fmt.Errorf("insert assessment: %w", err)
	}

	r.logger.Info("child assessed",
		"id", a.ID,
		"center_code", a.CenterCode,
		"status", a.Status,
		"z_score", a.ZScore,
	)
	return &a, nil
}

func (r *repo) RecordBatch(ctx context.Context, cmds []RecordCommand) ([]BatchResult, error) {
	results := make([]BatchResult, len(cmds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for i, cmd := range cmds {
		g.Go(func() error {
			a, err := r.Record(gctx, cmd)
			if err != nil {
				results[i] = BatchResult{
					ChildName: cmd.ChildName,
					Error:     err.Error(),
				}
				return nil
			}
			results[i] = BatchResult{
				ChildName:  cmd.ChildName,
				Assessment: a,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Assessment], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "ChildName", "CenterCode")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count assessments: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanAssessment)
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	a, err := repository.QueryOne(ctx, r.db, q, args, scanAssessment)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &a, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM assessments WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("assessment deleted", "id", id)
	return nil
}
