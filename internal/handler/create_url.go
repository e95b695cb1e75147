package handler

import (
	"net/http"
)

// CreateURL создает короткую ссылку.
// @Summary Create a short URL
// @Description Anonymous users get a random code. customId requires an authenticated session.
// @Tags urls
// @Accept json
// @Produce json
// @Param request body CreateURLRequest true "URL to shorten"
// @Success 201 {object} CreateURLResponse
// @Failure 400 {object} response.ErrorBody "Invalid URL"
// @Failure 401 {object} response.ErrorBody "customId without login"
// @Failure 409 {object} response.ErrorBody "Custom ID already exists"
// @Failure 500 {object} response.ErrorBody
// @Router /api/create [post]
func (h *Handler) CreateURL(w http.ResponseWriter, r *http.Request) {
	var req CreateURLRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	userID, _ := h.getUserIDFromRequest(r)

	var (
		shortURL string
		err      error
	)
	if req.CustomID != "" {
		shortURL, err = h.urls.CreateCustomShortURL(r.Context(), req.URL, req.CustomID, userID)
	} else {
		shortURL, err = h.urls.CreateShortURL(r.Context(), req.URL, userID)
	}
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, CreateURLResponse{URL: shortURL})
}

// CreateCustomURL создает ссылку с кодом, выбранным пользователем.
// @Summary Create a short URL with a custom code
// @Tags urls
// @Accept json
// @Produce json
// @Param request body CreateURLRequest true "URL and custom code"
// @Success 201 {object} CreateURLResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody "Custom ID already exists"
// @Router /api/create/custom [post]
func (h *Handler) CreateCustomURL(w http.ResponseWriter, r *http.Request) {
	var req CreateURLRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	userID, _ := h.getUserIDFromRequest(r)

	shortURL, err := h.urls.CreateCustomShortURL(r.Context(), req.URL, req.CustomID, userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, CreateURLResponse{URL: shortURL})
}
