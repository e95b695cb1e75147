package app

import (
	"net/http"

	"github.com/avc-dev/shortlink/internal/config"
	_ "github.com/avc-dev/shortlink/internal/docs" // регистрирует swagger спецификацию
	"github.com/avc-dev/shortlink/internal/handler"
	"github.com/avc-dev/shortlink/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, auth *middleware.AuthMiddleware, logger *zap.Logger, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	// Gzip стоит раньше RequestSize, чтобы лимит считался по распакованному телу
	r.Use(middleware.Gzip(logger))
	r.Use(chimiddleware.RequestSize(cfg.BodyLimit))

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	// System
	r.Get("/", h.Root)
	r.Get("/health", h.Health)
	r.Get("/ping", h.Ping)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
			r.Post("/logout", h.Logout)
			r.Post("/verify-email", h.VerifyEmail)
			r.Post("/resend-verification", h.ResendVerification)
			r.Post("/forgot-password", h.ForgotPassword)
			r.Post("/reset-password", h.ResetPassword)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAuth)
				r.Get("/me", h.Me)
				r.Post("/me", h.Me)
				r.Put("/profile", h.UpdateProfile)
				r.Post("/change-password", h.ChangePassword)
			})
		})

		// Создание ссылок с опциональной аутентификацией
		r.With(auth.OptionalAuth).Post("/create", h.CreateURL)
		r.With(auth.RequireAuth).Post("/create/custom", h.CreateCustomURL)

		r.With(auth.RequireAuth).Get("/user/urls", h.GetUserURLs)
	})

	r.Get("/{id}", h.GetURL)

	return r
}
