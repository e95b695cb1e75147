package handler

import (
	"net/http"

	"github.com/avc-dev/shortlink/internal/apperror"
)

// GetUserURLs возвращает все URL для аутентифицированного пользователя
// @Summary List the current user's links
// @Tags urls
// @Produce json
// @Success 200 {object} UserURLsResponse
// @Failure 401 {object} response.ErrorBody
// @Router /api/user/urls [get]
func (h *Handler) GetUserURLs(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.getUserIDFromRequest(r)
	if !ok {
		h.handleError(w, r, apperror.Unauthorized("No token provided"))
		return
	}

	urls, err := h.urls.GetURLsByUserID(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, UserURLsResponse{Success: true, URLs: urls})
}
