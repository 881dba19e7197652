package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/sse"
	"github.com/cmlabs-hris/attendance-backend-go/internal/service/state"
)

const keepaliveInterval = 30 * time.Second

type EventHandler interface {
	Token(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type eventHandlerImpl struct {
	hub        *sse.Hub
	jwtService jwt.Service
}

func NewEventHandler(hub *sse.Hub, jwtService jwt.Service) EventHandler {
	return &eventHandlerImpl{
		hub:        hub,
		jwtService: jwtService,
	}
}

// Token issues a short-lived token for opening the event stream.
func (h *eventHandlerImpl) Token(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	token, expiresIn, err := h.jwtService.GenerateSSEToken(userID)
	if err != nil {
		slog.Error("Failed to generate SSE token", "user_id", userID, "error", err)
		response.InternalServerError(w, "Failed to generate stream token")
		return
	}

	response.Success(w, auth.SSETokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
	})
}

// Stream handles SSE connection for session and data change events
func (h *eventHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	// EventSource cannot send headers, so the token comes in the query
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}

	userID, err := h.jwtService.ValidateSSEToken(tokenStr)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(userID)
	defer func() {
		cleanup()
		slog.Debug("SSE stream closed", "user_id", userID, "user_streams", h.hub.SubscriberCount(userID))
	}()
	slog.Debug("SSE stream opened", "user_id", userID, "user_streams", h.hub.SubscriberCount(userID))

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"user_id\":%q}\n\n", userID)
	flusher.Flush()

	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				slog.Warn("Failed to encode SSE event", "event", event.Event, "error", err)
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()
			if endsSession(event) {
				return
			}

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}

// endsSession reports whether ev signs its user out, after which the stream
// must stop delivering data.
func endsSession(ev sse.Event) bool {
	if ev.Event != sse.EventSessionChanged {
		return false
	}
	data, ok := ev.Data.(map[string]string)
	return ok && data["state"] == auth.SessionSignedOut
}

// BroadcastChanges forwards every mirror mutation to all connected streams.
func BroadcastChanges(store *state.Store, hub *sse.Hub) {
	store.OnChange(func(c state.Change) {
		hub.Broadcast(sse.Event{
			Event: sse.EventDataChanged,
			Data:  c,
		})
		slog.Debug("Broadcast data change", "collection", c.Collection, "op", c.Op, "streams", hub.TotalSubscribers())
	})
}
