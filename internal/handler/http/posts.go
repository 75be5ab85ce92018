package http

import (
	"net/http"

	"github.com/koji-m/Bluedog/internal/client"
	"github.com/koji-m/Bluedog/internal/utils"
	"github.com/koji-m/Bluedog/models"
)

type createPostRequest struct {
	Text   string   `json:"text"`
	Images []string `json:"images"`
}

type likeRequest struct {
	URI string `json:"uri"`
	CID string `json:"cid"`
}

// getPost resolves a single post either by ?uri or by ?rkey&handle.
func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	var (
		page models.FeedPage
		err  error
	)

	if uri := r.URL.Query().Get("uri"); uri != "" {
		page, err = h.backend.FetchPostByURI(r.Context(), uri)
	} else {
		var rkey, handle string
		if rkey, err = requiredQuery(r, "rkey"); err == nil {
			if handle, err = requiredQuery(r, "handle"); err == nil {
				page, err = h.backend.FetchPost(r.Context(), rkey, handle)
			}
		}
	}
	if err != nil {
		writeFailure(w, r, err, "get post")
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) replies(w http.ResponseWriter, r *http.Request) {
	uri, err := requiredQuery(r, "uri")
	if err != nil {
		writeFailure(w, r, err, "replies")
		return
	}

	page, err := h.backend.FetchReplies(r.Context(), uri)
	if err != nil {
		writeFailure(w, r, err, "replies")
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

// createPost reports publishing failures in the result body with 200, the
// same way the backend does.
func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	if !h.backend.Initialized() {
		writeFailure(w, r, client.ErrUninitialized, "create post")
		return
	}

	var req createPostRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeFailure(w, r, err, "create post")
		return
	}

	res := h.backend.CreatePost(r.Context(), req.Text, req.Images...)
	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) like(w http.ResponseWriter, r *http.Request) {
	var req likeRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeFailure(w, r, err, "like")
		return
	}

	res, err := h.backend.LikePost(r.Context(), req.URI, req.CID)
	if err != nil {
		writeFailure(w, r, err, "like")
		return
	}

	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) unlike(w http.ResponseWriter, r *http.Request) {
	uri, err := requiredQuery(r, "uri")
	if err != nil {
		writeFailure(w, r, err, "unlike")
		return
	}

	res, err := h.backend.UnlikePost(r.Context(), uri)
	if err != nil {
		writeFailure(w, r, err, "unlike")
		return
	}

	utils.WriteJSON(w, res, http.StatusOK)
}
