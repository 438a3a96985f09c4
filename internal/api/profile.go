package api

import (
	"net/http"

	"jotter/m/domain"
)

// updateProfileRequest accepts the body GET /profile returns. id and
// username are read so the object can be sent back as is, but only the
// profile attributes are written.
type updateProfileRequest struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	domain.Profile
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.FindByID(r.Context(), identityFrom(r).ID)
	if err != nil {
		h.respondErr(w, r, "user", err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.users.UpdateProfile(r.Context(), identityFrom(r).ID, req.Profile); err != nil {
		h.respondErr(w, r, "update profile", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "profile updated"})
}
