package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-backend-go/internal/service/state"
)

// StoreLoader reloads the in-memory mirror from the Record Store.
type StoreLoader interface {
	Load(ctx context.Context) (state.Summary, error)
}

type SyncHandler interface {
	Refresh(w http.ResponseWriter, r *http.Request)
}

type syncHandlerImpl struct {
	loader StoreLoader
}

func NewSyncHandler(loader StoreLoader) SyncHandler {
	return &syncHandlerImpl{
		loader: loader,
	}
}

// Refresh re-reads every collection. On failure the previous mirror is kept.
func (h *syncHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	summary, err := h.loader.Load(r.Context())
	if err != nil {
		slog.Error("Record store reload failed", "error", err)
		response.ErrorWithCode(w, http.StatusBadGateway, "STORE_UNAVAILABLE", "Failed to load data from the record store; showing previously loaded data")
		return
	}

	response.SuccessWithMessage(w, "Data reloaded successfully", summary)
}
