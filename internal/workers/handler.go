package workers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/poshan-stack/nutriscan/pkg/handlers"
	"github.com/poshan-stack/nutriscan/pkg/routes"
)

// Handler provides HTTP endpoints for worker registration and login.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "workers"),
	}
}

// Routes returns the route group definition for worker endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/workers",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/signup", Handler: h.Signup},
			{Method: "POST", Pattern: "/login", Handler: h.Login},
		},
	}
}

// Signup registers a health worker from a SignupCommand JSON body. Returns
// 201 with the stored worker; a reused Aadhaar number yields 409.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var cmd SignupCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	worker, err := h.sys.Signup(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, worker)
}

// Login verifies worker credentials from a LoginCommand JSON body. Returns
// 200 with the worker's name and center code; bad credentials yield 401.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var cmd LoginCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	worker, err := h.sys.Login(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, LoginResponse{
		Message:    "login successful",
		Name:       worker.Name,
		CenterCode: worker.CenterCode,
	})
}
