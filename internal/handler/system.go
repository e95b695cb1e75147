package handler

import (
	"net/http"
	"time"

	"github.com/avc-dev/shortlink/internal/apperror"
	"go.uber.org/zap"
)

// Version версия API в ответе GET /
const Version = "1.0.0"

// Root отвечает на GET /
// @Summary Service banner
// @Tags system
// @Produce json
// @Success 200 {object} RootResponse
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, RootResponse{
		Success:   true,
		Message:   "URL Shortener API is running",
		Version:   Version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Health отвечает на GET /health без обращения к хранилищу
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, StatusResponse{
		Status:    "OK",
		Message:   "Server is healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Ping проверяет соединение с хранилищем
// @Summary Storage readiness probe
// @Tags system
// @Success 200
// @Failure 500
// @Router /ping [get]
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		h.logger.Error("storage is not configured")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := h.storage.Ping(r.Context()); err != nil {
		h.logger.Error("storage ping failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// NotFound отвечает на неизвестные маршруты
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.handleError(w, r, apperror.NotFound("Route not found"))
}

// MethodNotAllowed отвечает на известный маршрут с неподдерживаемым методом
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusMethodNotAllowed, map[string]any{
		"success": false,
		"message": "Method not allowed",
	})
}
