// Package router wires the HTTP surface: public content endpoints, the chat
// and contact APIs, and the JWT-protected admin routes.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/perspectivehealth/clinic-site/internal/chat"
	"github.com/perspectivehealth/clinic-site/internal/contact"
	httpmiddleware "github.com/perspectivehealth/clinic-site/internal/http/middleware"
	"github.com/perspectivehealth/clinic-site/internal/site"
	"github.com/perspectivehealth/clinic-site/internal/webchat"
	"github.com/perspectivehealth/clinic-site/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger             *logging.Logger
	ChatHandler        *chat.Handler
	ContactHandler     *contact.Handler
	SiteHandler        *site.Handler
	WidgetHandler      *webchat.Handler
	AdminAuthSecret    string
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Group(func(public chi.Router) {
		public.Get("/health", handleHealth)
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}

		if cfg.ChatHandler != nil {
			public.Post("/api/chat", cfg.ChatHandler.HandleChat)
			public.Get("/api/chat/welcome", cfg.ChatHandler.HandleWelcome)
		}
		if cfg.ContactHandler != nil {
			public.Post("/api/contact", cfg.ContactHandler.HandleSubmit)
		}
		if cfg.WidgetHandler != nil {
			public.Get("/widget.js", cfg.WidgetHandler.HandleWidgetJS)
		}
		if cfg.SiteHandler != nil {
			public.Get("/api/blog", cfg.SiteHandler.HandleListPosts)
			public.Get("/api/blog/{slug}", cfg.SiteHandler.HandleGetPost)
			public.Get("/api/pages/home", cfg.SiteHandler.HandleHomePage)
			public.Get("/api/pages/services/{slug}", cfg.SiteHandler.HandleServicePage)
			public.Get("/api/pages/insurance", cfg.SiteHandler.HandleInsurancePage)
			public.Get("/sitemap.xml", cfg.SiteHandler.HandleSitemap)
		}
	})

	if cfg.ContactHandler != nil {
		r.Route("/admin", func(admin chi.Router) {
			admin.Use(httpmiddleware.AdminJWT(cfg.AdminAuthSecret))
			admin.Get("/contact", cfg.ContactHandler.HandleList)
		})
	}

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
