package handler

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alertlink/internal/middleware"
	"github.com/alertlink/internal/service"
)

type VoiceHandler struct {
	voiceSvc *service.VoiceService
	authSvc  *service.AuthService
}

func NewVoiceHandler(voiceSvc *service.VoiceService, authSvc *service.AuthService) *VoiceHandler {
	return &VoiceHandler{voiceSvc: voiceSvc, authSvc: authSvc}
}

// Start handles POST /{locale}/api/chats/{id}/voice.
func (h *VoiceHandler) Start(w http.ResponseWriter, r *http.Request) {
	current, err := h.authSvc.CurrentUser(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	recordingID, err := h.voiceSvc.Start(r.Context(), chi.URLParam(r, "id"), current)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"recording_id": recordingID})
}

// AppendChunk handles POST /{locale}/api/voice/{recordingId}/chunks. The body
// is raw audio bytes; Content-Type names the audio mime type.
func (h *VoiceHandler) AppendChunk(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	err = h.voiceSvc.AppendChunk(r.Context(), chi.URLParam(r, "recordingId"), data, r.Header.Get("Content-Type"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "buffered"})
}

// Stop handles POST /{locale}/api/voice/{recordingId}/stop. The finished
// recording is delivered to the chat as a voice message.
func (h *VoiceHandler) Stop(w http.ResponseWriter, r *http.Request) {
	msg, err := h.voiceSvc.Stop(r.Context(), chi.URLParam(r, "recordingId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

// Abort handles DELETE /{locale}/api/voice/{recordingId}.
func (h *VoiceHandler) Abort(w http.ResponseWriter, r *http.Request) {
	if err := h.voiceSvc.Abort(r.Context(), chi.URLParam(r, "recordingId")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "discarded"})
}
