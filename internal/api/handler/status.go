package handler

import (
	"net/http"

	"batepapo/internal/api/apierr"
	"batepapo/internal/api/middleware"
	"batepapo/internal/api/response"
	"batepapo/internal/services/chat"
)

// StatusHandler handles presence heartbeats
type StatusHandler struct {
	chatService *chat.Service
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(chatService *chat.Service) *StatusHandler {
	return &StatusHandler{chatService: chatService}
}

// Heartbeat handles POST /status
func (h *StatusHandler) Heartbeat(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())

	if err := h.chatService.Heartbeat(r.Context(), identity); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.OK(w)
}
