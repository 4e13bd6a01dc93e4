package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/sse"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/validator"
)

type EventHandler interface {
	// Stream pushes store change events over SSE, optionally narrowed with
	// ?collections=employees,leave_requests
	Stream(w http.ResponseWriter, r *http.Request)
}

type eventHandlerImpl struct {
	hub         *sse.Hub
	collections []string
	keepalive   time.Duration
}

func NewEventHandler(hub *sse.Hub, collections []string) EventHandler {
	return &eventHandlerImpl{
		hub:         hub,
		collections: collections,
		keepalive:   30 * time.Second,
	}
}

func (h *eventHandlerImpl) topics(r *http.Request) ([]string, error) {
	raw := r.URL.Query().Get("collections")
	if raw == "" {
		return nil, nil
	}

	var topics []string
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !validator.IsInSlice(name, h.collections) {
			return nil, validator.ValidationErrors{{
				Field:   "collections",
				Message: "collections must be any of: " + strings.Join(h.collections, ", "),
			}}
		}
		topics = append(topics, name)
	}
	return topics, nil
}

// Stream handles SSE connection for store change events
func (h *eventHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	topics, err := h.topics(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Check if streaming is supported
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(topics...)
	defer cleanup()

	// Send initial connection event
	fmt.Fprint(w, "event: connected\ndata: {\"status\":\"connected\"}\n\n")
	flusher.Flush()

	keepalive := time.NewTicker(h.keepalive)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Collection, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
