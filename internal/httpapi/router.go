package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"chatline/internal/common"
	"chatline/internal/dbmongo"
	"chatline/internal/identity"
	"chatline/internal/ledger"
	"chatline/internal/registry"
)

// Server maps HTTP requests onto the service operations. Wire shapes,
// status codes and CORS live here and only here.
type Server struct {
	identity identity.IdentityService
	registry registry.RegistryService
	ledger   ledger.LedgerService

	// media is nil when media storage is disabled.
	media *dbmongo.MediaStorage
}

func NewServer(identitySvc identity.IdentityService, registrySvc registry.RegistryService, ledgerSvc ledger.LedgerService, media *dbmongo.MediaStorage) *Server {
	return &Server{
		identity: identitySvc,
		registry: registrySvc,
		ledger:   ledgerSvc,
		media:    media,
	}
}

func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(corsMiddleware, requestLogMiddleware)

	router.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost, http.MethodOptions)

	api := router.NewRoute().Subrouter()
	api.Use(authMiddleware)

	api.HandleFunc("/auth/logout", s.handleLogout).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/users", s.handleSearchUsers).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/users/me", s.handleGetProfile).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/users/me", s.handleUpdateProfile).Methods(http.MethodPatch, http.MethodOptions)

	api.HandleFunc("/chats", s.handleListChats).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/chats", s.handleCreateChat).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/chats/private", s.handlePrivateChat).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/chats/search", s.handleSearchChats).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/chats/{chatId:[0-9]+}/avatar", s.handleUpdateChatAvatar).Methods(http.MethodPut, http.MethodOptions)
	api.HandleFunc("/chats/{chatId:[0-9]+}/messages", s.handleListMessages).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/chats/{chatId:[0-9]+}/messages", s.handleSendMessage).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/messages/{messageId:[0-9]+}", s.handleDeleteMessage).Methods(http.MethodDelete, http.MethodOptions)

	if s.media != nil {
		api.HandleFunc("/media", s.handleUploadMedia).Methods(http.MethodPost, http.MethodOptions)
		api.HandleFunc("/media/{fileId}", s.handleDownloadMedia).Methods(http.MethodGet, http.MethodOptions)
	}

	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	return router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("failed to encode response: %v", err)
		}
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := common.HTTPStatusFromError(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
		writeJSON(w, status, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
