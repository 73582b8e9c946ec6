package api

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"

	"github.com/poshan-stack/nutriscan/pkg/growthstd"
	"github.com/poshan-stack/nutriscan/pkg/handlers"
	"github.com/poshan-stack/nutriscan/pkg/routes"
	"github.com/poshan-stack/nutriscan/pkg/storage"
)

// datasetHandler administers the growth-reference dataset blob. An uploaded
// dataset replaces the embedded tables on the next service start.
type datasetHandler struct {
	store  storage.System
	logger *slog.Logger
}

func newDatasetHandler(store storage.System, logger *slog.Logger) *datasetHandler {
	return &datasetHandler{
		store:  store,
		logger: logger.With("handler", "dataset"),
	}
}

func (h *datasetHandler) routes() routes.Group {
	return routes.Group{
		Prefix: "/dataset",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.download},
			{Method: "GET", Pattern: "/status", Handler: h.status},
			{Method: "PUT", Pattern: "", Handler: h.upload},
		},
	}
}

func (h *datasetHandler) download(w http.ResponseWriter, r *http.Request) {
	reader, err := h.store.Download(r.Context(), h.store.DatasetKey())
	if err != nil {
		handlers.RespondError(w, h.logger, storage.MapHTTPStatus(err), err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	io.Copy(w, reader)
}

func (h *datasetHandler) status(w http.ResponseWriter, r *http.Request) {
	exists, err := h.store.Exists(r.Context(), h.store.DatasetKey())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]any{
		"key":      h.store.DatasetKey(),
		"uploaded": exists,
	})
}

// upload validates the body as a parseable dataset before storing it, so a
// malformed upload can never brick the next startup.
func (h *datasetHandler) upload(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	resolver, err := growthstd.Load(bytes.NewReader(data))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.store.Upload(
		r.Context(),
		h.store.DatasetKey(),
		bytes.NewReader(data),
		"application/json",
	); err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	h.logger.Info("dataset uploaded",
		"key", h.store.DatasetKey(),
		"standard", resolver.Standard(),
	)

	handlers.RespondJSON(w, http.StatusOK, map[string]string{
		"key":      h.store.DatasetKey(),
		"standard": resolver.Standard(),
	})
}
