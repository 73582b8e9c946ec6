package api

import (
	"github.com/poshan-stack/nutriscan/internal/config"
	"github.com/poshan-stack/nutriscan/internal/infrastructure"
	"github.com/poshan-stack/nutriscan/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Storage:   infra.Storage,
			Resolver:  infra.Resolver,
		},
		Pagination: cfg.API.Pagination,
	}
}
