package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/abhay963/Nagar-Sahayata-Portal/docs" //nolint:revive,nolintlint
	"github.com/abhay963/Nagar-Sahayata-Portal/pkg/metrics"
)

type RouterConfig struct {
	CorsOrigins []string
	UploadsDir  string
	UploadsPath string
}

func NewRouter(h *Handler, mw *Middleware, cfg RouterConfig) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, mw.Metrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Origin"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Handle("/metrics", metrics.Handler())

	uploads := strings.TrimRight(cfg.UploadsPath, "/")
	router.Handle(uploads+"/*", http.StripPrefix(uploads, http.FileServer(http.Dir(cfg.UploadsDir))))

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/swagger/*", httpSwagger.WrapHandler)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.Signup)
			r.Post("/complete-signup", h.CompleteSignup)
			r.Post("/login", h.Login)
			r.Post("/send-otp", h.SendOtp)
			r.Post("/verify-otp", h.VerifyOtp)
			r.Post("/forgot-password", h.ForgotPassword)
			r.Post("/reset-password", h.ResetPassword)

			r.With(mw.Auth).Get("/me", h.Me)
		})

		r.Route("/otp", func(r chi.Router) {
			r.Post("/send-otp", h.SendOtp)
			r.Post("/verify-otp", h.VerifyOtp)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Post("/", h.CreateReport)
			r.Get("/", h.Reports)
			r.Get("/stats", h.ReportStats)
			r.Put("/assign", h.AssignReport)

			r.Group(func(r chi.Router) {
				r.Use(mw.Auth)

				r.Get("/assigned", h.AssignedReports)
				r.Put("/{id}/resolve", h.ResolveReport)
			})
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Use(mw.Auth)

			r.Get("/", h.Notifications)
			r.Get("/unread-count", h.UnreadCount)
			r.Put("/mark-all-read", h.MarkAllNotificationsRead)
			r.Put("/{id}/read", h.MarkNotificationRead)
			r.Delete("/{id}", h.DeleteNotification)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(mw.Auth)

			r.Get("/junior-staff", h.JuniorStaff)
			r.Put("/update-profile", h.UpdateProfile)
		})
	})

	return router
}
