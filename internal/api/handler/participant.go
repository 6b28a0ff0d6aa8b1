package handler

import (
	"encoding/json"
	"net/http"

	"batepapo/internal/api/apierr"
	"batepapo/internal/api/request"
	"batepapo/internal/api/response"
	"batepapo/internal/services/chat"
)

// ParticipantHandler handles participant-related endpoints
type ParticipantHandler struct {
	chatService *chat.Service
}

// NewParticipantHandler creates a new participant handler
func NewParticipantHandler(chatService *chat.Service) *ParticipantHandler {
	return &ParticipantHandler{chatService: chatService}
}

// List handles GET /participants
func (h *ParticipantHandler) List(w http.ResponseWriter, r *http.Request) {
	participants, err := h.chatService.Participants(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ParticipantsFromModel(participants))
}

// Register handles POST /participants
func (h *ParticipantHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if _, err := h.chatService.Register(r.Context(), req.Name); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.Created(w)
}
