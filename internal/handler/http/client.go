package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/client"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
)

type ClientHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

type clientHandlerImpl struct {
	clientService client.ClientService
}

func NewClientHandler(clientService client.ClientService) ClientHandler {
	return &clientHandlerImpl{
		clientService: clientService,
	}
}

// List implements ClientHandler.
func (h *clientHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	clients := h.clientService.List(r.Context())
	response.SuccessWithMeta(w, clients, &response.Meta{TotalItems: len(clients)})
}

// Create implements ClientHandler.
func (h *clientHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req client.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create client decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.clientService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create client service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Client created successfully", result)
}
