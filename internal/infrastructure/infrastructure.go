// Package infrastructure provides core service initialization for application
// startup. It assembles the common dependencies (logging, database, blob
// storage, growth-standard reference tables) that domain systems require.
package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/poshan-stack/nutriscan/internal/config"
	"github.com/poshan-stack/nutriscan/pkg/database"
	"github.com/poshan-stack/nutriscan/pkg/growthstd"
	"github.com/poshan-stack/nutriscan/pkg/lifecycle"
	"github.com/poshan-stack/nutriscan/pkg/storage"
)

// Infrastructure holds the core systems required by all domain modules.
// Storage is nil when blob storage is disabled; the resolver then serves the
// embedded WHO dataset.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Storage   storage.System
	Resolver  *growthstd.Resolver
}

// New creates an Infrastructure from the application configuration. It
// initializes all systems and resolves the growth-standard dataset, but does
// not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	var store storage.System
	if cfg.Storage.Enabled {
		store, err = storage.New(&cfg.Storage, logger)
		if err != nil {
			return nil, fmt.Errorf("storage init failed: %w", err)
		}
	}

	resolver, err := loadResolver(store, logger)
	if err != nil {
		return nil, fmt.Errorf("growth standard init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Storage:   store,
		Resolver:  resolver,
	}, nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if i.Storage != nil {
		if err := i.Storage.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("storage start failed: %w", err)
		}
	}
	return nil
}

// loadResolver resolves the growth-standard dataset at startup. When blob
// storage hosts a dataset under the configured key, that dataset takes
// precedence; otherwise the embedded WHO tables are used. A blob that exists
// but fails to parse aborts startup rather than silently degrading to the
// embedded data.
func loadResolver(store storage.System, logger *slog.Logger) (*growthstd.Resolver, error) {
	if store != nil {
		reader, err := store.Download(context.Background(), store.DatasetKey())
		switch {
		case err == nil:
			defer reader.Close()

			resolver, err := growthstd.Load(reader)
			if err != nil {
				return nil, fmt.Errorf("parse dataset %s: %w", store.DatasetKey(), err)
			}

			logger.Info("growth standard loaded from storage",
				"key", store.DatasetKey(),
				"standard", resolver.Standard(),
			)
			return resolver, nil
		case errors.Is(err, storage.ErrNotFound):
			logger.Info("no dataset in storage, using embedded tables",
				"key", store.DatasetKey(),
			)
		default:
			return nil, fmt.Errorf("download dataset %s: %w", store.DatasetKey(), err)
		}
	}

	resolver, err := growthstd.LoadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("load embedded dataset: %w", err)
	}

	logger.Info("growth standard loaded", "standard", resolver.Standard())
	return resolver, nil
}
