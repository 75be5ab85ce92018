package http

import (
	"net/http"

	"github.com/koji-m/Bluedog/internal/utils"
)

func (h *Handler) getVersion(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, h.buildInfo, http.StatusOK)
}
