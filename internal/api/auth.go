package api

import (
	"errors"
	"net/http"

	"jotter/m/domain"
	"jotter/m/internal/auth"
	"jotter/m/internal/store"
)

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	domain.Profile
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.users.Register(r.Context(), store.RegisterParams{
		Username: req.Username,
		Password: req.Password,
		Profile:  req.Profile,
	})
	if err != nil {
		h.respondErr(w, r, "register", err)
		return
	}
	h.log.Info(r.Context(), "user registered", "user_id", id)
	respondJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.FindByUsername(r.Context(), req.Username)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		auth.BurnCompare(req.Password)
		h.respondErr(w, r, "login", domain.ErrInvalidCredentials)
		return
	case err != nil:
		h.respondErr(w, r, "login", err)
		return
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		h.respondErr(w, r, "login", domain.ErrInvalidCredentials)
		return
	}

	token, err := h.tokens.Issue(user.Identity())
	if err != nil {
		h.respondErr(w, r, "issue token", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}
