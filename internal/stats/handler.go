package stats

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/poshan-stack/nutriscan/pkg/handlers"
	"github.com/poshan-stack/nutriscan/pkg/routes"
)

// ErrCenterRequired indicates a stats request without a center code.
var ErrCenterRequired = errors.New("center code required")

// Handler provides HTTP endpoints for aggregate statistics.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "stats"),
	}
}

// Routes returns the route group definition for stats endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/stats",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{centerCode}", Handler: h.Summarize},
		},
	}
}

// Summarize returns the aggregate summary for the center code path parameter.
func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	centerCode := r.PathValue("centerCode")
	if centerCode == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrCenterRequired)
		return
	}

	summary, err := h.sys.Summarize(r.Context(), centerCode)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, summary)
}
