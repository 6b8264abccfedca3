package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"roomly/internal/seed"
	httputil "roomly/pkg/http"
	"roomly/pkg/logger"
)

type DataHandler struct {
	loader *seed.Loader
	log    *logger.Logger
}

func NewDataHandler(loader *seed.Loader, log *logger.Logger) *DataHandler {
	return &DataHandler{
		loader: loader,
		log:    log,
	}
}

func (h *DataHandler) Load(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	loaded, err := h.loader.Load(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Load", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	message := "Database is already populated."
	if loaded {
		message = "Data added to the database successfully."
	}

	if err := httputil.WriteMessage(w, message); err != nil {
		h.log.Error("failed to write message response", "handler", "Load", "operation", "WriteMessage", "error", err)
	}
}

func (h *DataHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/data/load", h.Load)
}
