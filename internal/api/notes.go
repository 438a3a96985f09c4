package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"jotter/m/domain"
)

type createNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.notes.List(r.Context(), identityFrom(r).ID)
	if err != nil {
		h.respondErr(w, r, "list notes", err)
		return
	}
	respondJSON(w, http.StatusOK, notes)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	note, err := h.notes.Create(r.Context(), identityFrom(r).ID, req.Title, req.Content)
	if err != nil {
		h.respondErr(w, r, "create note", err)
		return
	}
	respondJSON(w, http.StatusCreated, note)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(w, r)
	if !ok {
		return
	}
	note, err := h.notes.Get(r.Context(), identityFrom(r).ID, id)
	if err != nil {
		h.respondErr(w, r, "note", err)
		return
	}
	respondJSON(w, http.StatusOK, note)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(w, r)
	if !ok {
		return
	}
	var req domain.NoteUpdate
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	note, err := h.notes.Update(r.Context(), identityFrom(r).ID, id, req)
	if err != nil {
		h.respondErr(w, r, "note", err)
		return
	}
	respondJSON(w, http.StatusOK, note)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(w, r)
	if !ok {
		return
	}
	if err := h.notes.Delete(r.Context(), identityFrom(r).ID, id); err != nil {
		h.respondErr(w, r, "note", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func noteID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid note id")
		return 0, false
	}
	return id, true
}
