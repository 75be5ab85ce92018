package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/koji-m/Bluedog/internal/utils"
)

type followRequest struct {
	DID string `json:"did"`
}

func (h *Handler) userProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.backend.FetchUserProfile(r.Context(), chi.URLParam(r, "did"))
	if err != nil {
		writeFailure(w, r, err, "profile")
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) myProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.backend.FetchMyProfile(r.Context())
	if err != nil {
		writeFailure(w, r, err, "my profile")
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) follow(w http.ResponseWriter, r *http.Request) {
	var req followRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeFailure(w, r, err, "follow")
		return
	}

	res, err := h.backend.FollowUser(r.Context(), req.DID)
	if err != nil {
		writeFailure(w, r, err, "follow")
		return
	}

	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) unfollow(w http.ResponseWriter, r *http.Request) {
	uri, err := requiredQuery(r, "uri")
	if err != nil {
		writeFailure(w, r, err, "unfollow")
		return
	}

	res, err := h.backend.UnfollowUser(r.Context(), uri)
	if err != nil {
		writeFailure(w, r, err, "unfollow")
		return
	}

	utils.WriteJSON(w, res, http.StatusOK)
}
