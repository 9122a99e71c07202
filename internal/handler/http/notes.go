package http

import (
	"net/http"

	"github.com/MKhiriev/go-securnote/internal/app"
	"github.com/MKhiriev/go-securnote/internal/logger"
	"github.com/MKhiriev/go-securnote/internal/utils"
	"github.com/MKhiriev/go-securnote/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.NoteRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Debug().Err(err).Msg("invalid note body")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	username, key := credentialsFromContext(r)

	noteID, err := h.services.Notes.Create(ctx, username, req, key)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.NoteCreatedResponse{NoteID: noteID}, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing note response")
	}
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	username, key := credentialsFromContext(r)

	notes, err := h.services.Notes.List(r.Context(), username, key)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if notes == nil {
		notes = []models.PlainNote{}
	}

	if _, err = utils.WriteJSON(w, notes, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing notes response")
	}
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	username, key := credentialsFromContext(r)

	note, err := h.services.Notes.Get(r.Context(), username, chi.URLParam(r, "noteID"), key)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, note, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing note response")
	}
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	username, _ := credentialsFromContext(r)

	deleted, err := h.services.Notes.Delete(r.Context(), username, chi.URLParam(r, "noteID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !deleted {
		http.Error(w, app.MsgNoteNotFound, http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// credentialsFromContext returns what basicAuth stored for the request.
func credentialsFromContext(r *http.Request) (string, []byte) {
	ctx := r.Context()
	username, _ := utils.GetUsernameFromContext(ctx)
	key, _ := utils.GetNoteKeyFromContext(ctx)
	return username, key
}
