package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"blogapi/internal/api"
	apiMiddleware "blogapi/internal/api/middleware"
	"blogapi/internal/service/auth"
	"blogapi/internal/store"
)

// routerDeps carries the collaborators the router wires into handlers.
type routerDeps struct {
	userStore        store.UserStore
	blogStore        store.BlogStore
	tokenService     auth.TokenService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
}

// newRouter creates and configures the application router with all routes
// and middleware.
func newRouter(deps routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	authHandler := api.NewAuthHandler(deps.userStore, deps.tokenService, deps.passwordVerifier)
	userHandler := api.NewUserHandler(deps.userStore, deps.passwordHasher)
	blogHandler := api.NewBlogHandler(deps.blogStore)
	authMiddleware := apiMiddleware.NewAuthMiddleware(deps.tokenService)

	// Authentication
	r.Post("/login", authHandler.Login)

	// Users (public)
	r.Post("/user", userHandler.Create)
	r.Get("/user/{id}", userHandler.GetByID)

	// Blogs. Only the listing requires a bearer token; the remaining routes
	// are public, matching the original surface.
	r.Route("/blog", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Get("/", blogHandler.List)
		})

		r.Post("/", blogHandler.Create)
		r.Get("/{id}", blogHandler.GetByID)
		r.Put("/{id}", blogHandler.Update)
		r.Delete("/{id}", blogHandler.Delete)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			// Nothing useful to do beyond noting it.
			return
		}
	})

	return r
}
