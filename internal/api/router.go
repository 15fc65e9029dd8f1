package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/megahand-az/megahand-be/internal/api/handlers"
	"github.com/megahand-az/megahand-be/internal/auth"
	"github.com/megahand-az/megahand-be/internal/config"
	"github.com/megahand-az/megahand-be/internal/mailer"
	"github.com/megahand-az/megahand-be/internal/metrics"
	"github.com/megahand-az/megahand-be/internal/services"
	"github.com/megahand-az/megahand-be/internal/session"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	cfg *config.Config,
	userService services.UserServiceProvider,
	articleService services.ArticleServiceProvider,
	locationService services.LocationServiceProvider,
	sessions session.Store,
	m mailer.Mailer,
	met *metrics.Metrics,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(met.Middleware)

	// CORS configuration for development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // Adjust for your frontend URL
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, sessions, cfg.SessionSecret, cfg.IsProduction())
	articleHandler := handlers.NewArticleHandler(articleService)
	locationHandler := handlers.NewLocationHandler(locationService)
	contactHandler := handlers.NewContactHandler(m, cfg.ContactFrom, cfg.ContactTo)
	downloadHandler := handlers.NewDownloadHandler(cfg.DownloadRoot)
	statusHandler := handlers.NewStatusHandler()

	requireSession := auth.RequireSession(sessions, cfg.SessionSecret)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.HandlerFor(met.Registry, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		// Auth
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.Get("/me", authHandler.Me)

		// Articles: reads are public, mutations require a session
		r.Route("/articles", func(r chi.Router) {
			r.Get("/", articleHandler.GetAll)
			r.With(requireSession).Post("/", articleHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", articleHandler.Get)
				r.With(requireSession).Put("/", articleHandler.Update)
				r.With(requireSession).Delete("/", articleHandler.Delete)
			})
		})

		// Locations, same shape as articles
		r.Route("/locations", func(r chi.Router) {
			r.Get("/", locationHandler.GetAll)
			r.With(requireSession).Post("/", locationHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", locationHandler.Get)
				r.With(requireSession).Put("/", locationHandler.Update)
				r.With(requireSession).Delete("/", locationHandler.Delete)
			})
		})

		r.Post("/contact", contactHandler.Send)
		r.Get("/download", downloadHandler.Get)
		r.With(requireSession).Get("/status", statusHandler.Get)
	})

	return r
}
