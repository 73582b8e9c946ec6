package workers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/poshan-stack/nutriscan/pkg/query"
	"github.com/poshan-stack/nutriscan/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a worker repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "workers"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Signup(ctx context.Context, cmd SignupCommand) (*Worker, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	insertQ := `
		INSERT INTO workers(name, aadhaar_number, center_code, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, aadhaar_number, center_code, password_hash, created_at`

	insertArgs := []any{
		cmd.Name,
		cmd.AadhaarNumber,
		cmd.CenterCode,
		string(hash),
	}

	w, err := repository.QueryOne(ctx, r.db, insertQ, insertArgs, scanWorker)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("worker registered",
		"id", w.ID,
		"center_code", w.CenterCode,
	)
	return &w, nil
}

func (r *repo) Login(ctx context.Context, cmd LoginCommand) (*Worker, error) {
	q, args := query.NewBuilder(projection).BuildSingle("AadhaarNumber", cmd.AadhaarNumber)

	w, err := repository.QueryOne(ctx, r.db, q, args, scanWorker)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("query worker: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(w.PasswordHash),
		[]byte(cmd.Password),
	); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &w, nil
}
