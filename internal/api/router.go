package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"batepapo/internal/api/handler"
	"batepapo/internal/api/middleware"
	"batepapo/internal/services/chat"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger      *slog.Logger
	ChatService *chat.Service
}

// NewRouter creates the API router: one route per chat operation
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	participantHandler := handler.NewParticipantHandler(cfg.ChatService)
	messageHandler := handler.NewMessageHandler(cfg.ChatService)
	statusHandler := handler.NewStatusHandler(cfg.ChatService)

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Identity())

	r.HandleFunc("/participants", participantHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/participants", participantHandler.Register).Methods(http.MethodPost)

	r.HandleFunc("/messages", messageHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/messages", messageHandler.Post).Methods(http.MethodPost)
	r.HandleFunc("/messages/{id}", messageHandler.Edit).Methods(http.MethodPut)
	r.HandleFunc("/messages/{id}", messageHandler.Delete).Methods(http.MethodDelete)

	r.HandleFunc("/status", statusHandler.Heartbeat).Methods(http.MethodPost)

	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Preflight requests for any route are answered by the CORS middleware
	r.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
