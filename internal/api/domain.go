package api

import (
	"github.com/poshan-stack/nutriscan/internal/assessments"
	"github.com/poshan-stack/nutriscan/internal/stats"
	"github.com/poshan-stack/nutriscan/internal/workers"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Assessments assessments.System
	Stats       stats.System
	Workers     workers.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	engine := assessments.NewEngine(runtime.Resolver)

	assessmentsSystem := assessments.New(
		runtime.Database.Connection(),
		engine,
		runtime.Logger,
		runtime.Pagination,
	)

	statsSystem := stats.New(
		runtime.Database.Connection(),
		runtime.Logger,
	)

	workersSystem := workers.New(
		runtime.Database.Connection(),
		runtime.Logger,
	)

	return &Domain{
		Assessments: assessmentsSystem,
		Stats:       statsSystem,
		Workers:     workersSystem,
	}
}
