package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"roomly/internal/clients/service"
	httputil "roomly/pkg/http"
	"roomly/pkg/logger"
	"roomly/pkg/model"
)

type ClientHandler struct {
	service service.ClientService
	log     *logger.Logger
}

func NewClientHandler(service service.ClientService, log *logger.Logger) *ClientHandler {
	return &ClientHandler{
		service: service,
		log:     log,
	}
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var client model.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := h.service.Create(r.Context(), &client); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, client); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *ClientHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	clients, err := h.service.GetAll(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, clients); err != nil {
		h.log.Error("failed to write success response", "handler", "GetAll", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ClientHandler) BookingsPerClient(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	counts, err := h.service.BookingsPerClient(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "BookingsPerClient", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, counts); err != nil {
		h.log.Error("failed to write success response", "handler", "BookingsPerClient", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ClientHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/clients", h.Create)
	router.GET("/api/v1/clients", h.GetAll)
	router.GET("/api/v1/clients/bookings", h.BookingsPerClient)
}
