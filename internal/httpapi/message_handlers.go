package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"chatline/internal/common"
)

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	chatID, err := pathID(r, "chatId")
	if err != nil {
		writeError(w, err)
		return
	}

	messages, err := s.ledger.List(r.Context(), chatID, requesterID(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messages)
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	chatID, err := pathID(r, "chatId")
	if err != nil {
		writeError(w, err)
		return
	}

	var req struct {
		Content     string `json:"content"`
		MessageType string `json:"message_type"`
		MediaID     string `json:"media_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: malformed body", common.ErrInvalidArgument))
		return
	}

	msg, err := s.ledger.Append(r.Context(), chatID, requesterID(r), req.Content, req.MessageType, req.MediaID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, msg)
}

func (s *Server) handleDeleteMessage(w http.ResponseWriter, r *http.Request) {
	messageID, err := pathID(r, "messageId")
	if err != nil {
		writeError(w, err)
		return
	}

	msg, err := s.ledger.SoftDelete(r.Context(), messageID, requesterID(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, msg)
}
