package http

import (
	"net/http"

	"github.com/koji-m/Bluedog/internal/client"
	"github.com/koji-m/Bluedog/internal/logger"
	"github.com/koji-m/Bluedog/internal/utils"
)

type initRequest struct {
	DataDir string `json:"dataDir"`
}

type signInRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type sessionResponse struct {
	DID    string `json:"did"`
	Handle string `json:"handle"`
}

func (h *Handler) initialize(w http.ResponseWriter, r *http.Request) {
	var req initRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeFailure(w, r, err, "initialize")
		return
	}

	res := h.backend.Initialize(r.Context(), req.DataDir)
	if !res.Succeeded() {
		logger.FromRequest(r).Warn().Str("dir", req.DataDir).Str("reason", res.Message).Msg("initialize failed")
		utils.WriteJSON(w, res, http.StatusUnprocessableEntity)
		return
	}

	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.backend.Session(r.Context())
	if err != nil {
		writeFailure(w, r, err, "session")
		return
	}

	utils.WriteJSON(w, sessionResponse{DID: session.DID, Handle: session.Handle}, http.StatusOK)
}

// signIn answers 401 with the backend's result body when the credentials
// are rejected.
func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	if !h.backend.Initialized() {
		writeFailure(w, r, client.ErrUninitialized, "sign-in")
		return
	}

	var req signInRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeFailure(w, r, err, "sign-in")
		return
	}

	res := h.backend.SignIn(r.Context(), req.Identifier, req.Password)
	if !res.Succeeded() {
		utils.WriteJSON(w, res, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) signOut(w http.ResponseWriter, _ *http.Request) {
	h.backend.SignOut()
	w.WriteHeader(http.StatusNoContent)
}
