package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/koji-m/Bluedog/internal/utils"
	"github.com/koji-m/Bluedog/models"
)

const feedKindAll = "all"

func (h *Handler) resetFeed(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")

	var err error
	switch models.FeedKind(kind) {
	case models.FeedTimeline:
		err = h.backend.ResetTimelineState()
	case models.FeedSearch:
		err = h.backend.ResetSearchState()
	case models.FeedAuthor:
		err = h.backend.ResetAuthorFeedState()
	case feedKindAll:
		err = h.backend.ResetState()
	default:
		err = fmt.Errorf("%w: unknown feed kind %q", errBadRequest, kind)
	}
	if err != nil {
		writeFailure(w, r, err, "reset feed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) timeline(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		writeFailure(w, r, err, "timeline")
		return
	}

	page, err := h.backend.FetchTimeline(r.Context(), limit, r.URL.Query().Get("cursor"))
	if err != nil {
		writeFailure(w, r, err, "timeline")
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	query, err := requiredQuery(r, "q")
	if err != nil {
		writeFailure(w, r, err, "search")
		return
	}
	limit, err := queryLimit(r)
	if err != nil {
		writeFailure(w, r, err, "search")
		return
	}

	page, err := h.backend.SearchPosts(r.Context(), query, limit, r.URL.Query().Get("cursor"))
	if err != nil {
		writeFailure(w, r, err, "search")
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) userPosts(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		writeFailure(w, r, err, "user posts")
		return
	}

	page, err := h.backend.FetchUserPosts(r.Context(), chi.URLParam(r, "did"), limit, r.URL.Query().Get("cursor"))
	if err != nil {
		writeFailure(w, r, err, "user posts")
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}
