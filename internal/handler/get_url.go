package handler

import (
	"net/http"

	"github.com/avc-dev/shortlink/internal/apperror"
	"github.com/go-chi/chi/v5"
)

// GetURL перенаправляет на оригинальный URL и засчитывает переход.
// @Summary Follow a short link
// @Tags urls
// @Param id path string true "Short code"
// @Success 302
// @Failure 404 {object} response.ErrorBody "Invalid Short URL"
// @Router /{id} [get]
func (h *Handler) GetURL(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "id")

	fullURL, err := h.urls.GetOriginalURL(r.Context(), code)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindNotFound && h.cfg.NotFoundURL != "" {
			http.Redirect(w, r, h.cfg.NotFoundURL, http.StatusFound)
			return
		}
		h.handleError(w, r, err)
		return
	}

	http.Redirect(w, r, fullURL, http.StatusFound)
}
