package api

import (
	"net/http"

	"github.com/poshan-stack/nutriscan/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, domain *Domain, runtime *Runtime) {
	groups := []routes.Group{
		domain.Assessments.Handler().Routes(),
		domain.Stats.Handler().Routes(),
		domain.Workers.Handler().Routes(),
	}

	if runtime.Storage != nil {
		dataset := newDatasetHandler(runtime.Storage, runtime.Logger)
		groups = append(groups, dataset.routes())
	}

	routes.Register(mux, groups...)
}
