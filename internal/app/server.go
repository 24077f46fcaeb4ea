package app

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/healthmate/healthmate/internal/api/handlers"
	appMiddleware "github.com/healthmate/healthmate/internal/api/middlewares"
	"github.com/healthmate/healthmate/internal/config"
	"github.com/healthmate/healthmate/internal/core"
	db "github.com/healthmate/healthmate/internal/core/database"
	"github.com/healthmate/healthmate/internal/session"
)

// Server wraps the HTTP server instance and its handlers.
type Server struct {
	httpServer *http.Server
}

// NewServer builds and wires all routes.
func NewServer(ctx context.Context, cfg *config.Config, dbclient db.DbClient, llm core.LLMProvider, sessions *session.Manager) *Server {
	authHandler := handlers.NewAuthHandler(dbclient, sessions, cfg)
	chatHandler := handlers.NewChatHandler(dbclient, llm)
	pageHandler := handlers.NewPageHandler(dbclient)
	adminHandler := handlers.NewAdminHandler(dbclient)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Use(appMiddleware.Sessions(sessions))

	// public endpoints
	r.Get("/register", authHandler.RegisterPage)
	r.Post("/register", authHandler.Register)
	r.Get("/login", authHandler.LoginPage)
	r.Post("/login", authHandler.Login)
	r.Get("/logout", authHandler.Logout)
	r.Get("/admin", authHandler.AdminLoginPage)
	r.Post("/admin", authHandler.AdminLogin)
	r.Get("/analytics", pageHandler.Analytics)

	// user pages: anonymous requests are redirected to /login
	r.Group(func(pages chi.Router) {
		pages.Use(appMiddleware.RequireUserPage)
		pages.Get("/", pageHandler.Home)
		pages.Get("/symptoms", pageHandler.SymptomsPage)
		pages.Get("/export_pdf", pageHandler.ExportPDF)
	})

	// user JSON API: anonymous requests get a 401
	r.Group(func(api chi.Router) {
		api.Use(appMiddleware.RequireUserJSON)
		api.Post("/ask", chatHandler.Ask)
		api.Post("/check_symptoms", chatHandler.CheckSymptoms)
		api.Post("/get_suggestions", chatHandler.GetSuggestions)
	})

	// admin-only
	r.Group(func(admin chi.Router) {
		admin.Use(appMiddleware.RequireAdmin)
		admin.Get("/admin/dashboard", adminHandler.Dashboard)
	})

	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	return &Server{httpServer: httpSrv}
}

// Handler exposes the wired router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start runs the HTTP server.
func (s *Server) Start() {
	log.Printf("HTTP server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down HTTP server...")
	return s.httpServer.Shutdown(ctx)
}
