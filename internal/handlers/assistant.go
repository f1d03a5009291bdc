package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"crossfit-gym-platform/internal/models"
	"crossfit-gym-platform/internal/services"

	"github.com/gorilla/sessions"
)

// AssistantHandler drives the chat widget and the phone assistant shell.
// Transcripts live in the session; the LLM call happens per message.
type AssistantHandler struct {
	assistant *services.AssistantService
	store     sessions.Store
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(assistant *services.AssistantService, store sessions.Store) *AssistantHandler {
	return &AssistantHandler{
		assistant: assistant,
		store:     store,
	}
}

type assistantRequest struct {
	Message string `json:"message"`
}

// GetTranscript returns the session's chat transcript
func (h *AssistantHandler) GetTranscript(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, "session")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Session error")
		return
	}

	conv := h.getConversationFromSession(session)
	writeJSON(w, http.StatusOK, conv)
}

// Chat handles one chat message and returns the updated transcript
func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, "session")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Session error")
		return
	}

	var req assistantRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "Bitte gib eine Nachricht ein")
		return
	}

	conv := h.getConversationFromSession(session)

	reply, err := h.assistant.Chat(r.Context(), conv, req.Message)
	if err != nil {
		// Client went away during the thinking delay
		return
	}

	h.saveConversationToSession(session, conv)
	if err := session.Save(r, w); err != nil {
		writeError(w, http.StatusInternalServerError, "Session error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reply":        reply,
		"conversation": conv,
	})
}

// Reset discards the session's transcript
func (h *AssistantHandler) Reset(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, "session")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Session error")
		return
	}

	conv := h.assistant.NewConversation()
	h.saveConversationToSession(session, conv)
	if err := session.Save(r, w); err != nil {
		writeError(w, http.StatusInternalServerError, "Session error")
		return
	}

	writeJSON(w, http.StatusOK, conv)
}

// PhoneTurn handles one spoken turn of the phone assistant
func (h *AssistantHandler) PhoneTurn(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, "session")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Session error")
		return
	}

	var req assistantRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "Bitte gib eine Nachricht ein")
		return
	}

	conv := h.getConversationFromSession(session)

	reply, err := h.assistant.PhoneTurn(r.Context(), conv, req.Message)
	if err != nil {
		return
	}

	h.saveConversationToSession(session, conv)
	if err := session.Save(r, w); err != nil {
		writeError(w, http.StatusInternalServerError, "Session error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reply":        reply,
		"conversation": conv,
	})
}

// FinishSpeaking flips the phone assistant back to listening
func (h *AssistantHandler) FinishSpeaking(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, "session")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Session error")
		return
	}

	conv := h.getConversationFromSession(session)
	h.assistant.FinishSpeaking(conv)

	h.saveConversationToSession(session, conv)
	if err := session.Save(r, w); err != nil {
		writeError(w, http.StatusInternalServerError, "Session error")
		return
	}

	writeJSON(w, http.StatusOK, conv)
}

func (h *AssistantHandler) getConversationFromSession(session *sessions.Session) *models.Conversation {
	raw, ok := session.Values["assistant"]
	if !ok {
		return h.assistant.NewConversation()
	}

	encoded, ok := raw.(string)
	if !ok {
		return h.assistant.NewConversation()
	}

	var conv models.Conversation
	if err := json.Unmarshal([]byte(encoded), &conv); err != nil {
		return h.assistant.NewConversation()
	}

	return &conv
}

func (h *AssistantHandler) saveConversationToSession(session *sessions.Session, conv *models.Conversation) {
	encoded, err := json.Marshal(conv)
	if err != nil {
		return
	}
	session.Values["assistant"] = string(encoded)
}
