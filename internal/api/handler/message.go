package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"batepapo/internal/api/apierr"
	"batepapo/internal/api/middleware"
	"batepapo/internal/api/request"
	"batepapo/internal/api/response"
	"batepapo/internal/model"
	"batepapo/internal/services/chat"
)

// MessageHandler handles message-related endpoints
type MessageHandler struct {
	chatService *chat.Service
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(chatService *chat.Service) *MessageHandler {
	return &MessageHandler{chatService: chatService}
}

// List handles GET /messages
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.GetIdentity(r.Context())

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			apierr.WriteError(w, apierr.NewInvalidRequestError("limit must be a positive integer"))
			return
		}
		limit = n
	}

	messages, err := h.chatService.Messages(r.Context(), viewer, limit)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MessagesFromModel(messages))
}

// Post handles POST /messages
func (h *MessageHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req request.MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	sender := middleware.GetIdentity(r.Context())

	_, err := h.chatService.Post(r.Context(), sender, req.To, req.Text, model.Kind(req.Type))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.Created(w)
}

// Edit handles PUT /messages/{id}
func (h *MessageHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var req request.MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	id := mux.Vars(r)["id"]
	editor := middleware.GetIdentity(r.Context())

	_, err := h.chatService.Edit(r.Context(), id, editor, req.To, req.Text, model.Kind(req.Type))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.OK(w)
}

// Delete handles DELETE /messages/{id}
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	deleter := middleware.GetIdentity(r.Context())

	if err := h.chatService.Delete(r.Context(), id, deleter); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.OK(w)
}
