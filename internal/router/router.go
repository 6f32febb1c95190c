package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/beanwise/coffee-api/internal/api/auth"
	"github.com/beanwise/coffee-api/internal/api/coffee"
	"github.com/beanwise/coffee-api/internal/api/pack"
	"github.com/beanwise/coffee-api/internal/api/producer"
)

// Config contains dependencies needed for the router setup
type Config struct {
	AuthHandler            *auth.AuthHandler
	ProducerHandler        *producer.Handler
	CoffeeHandler          *coffee.Handler
	PackHandler            *pack.Handler
	AuthenticateMiddleware func(http.Handler) http.Handler
}

const notFoundBody = `{"success":false,"error":"URL not found. Try another URL"}`

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) are expected to be
// applied before mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Liveness. Both paths respond, matching what clients already probe.
	liveness := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"success":true,"message":"Coffee server up and running"}`))
	}
	r.Get("/", liveness)
	r.Get("/status", liveness)

	r.Route("/producers", func(r chi.Router) {
		r.Get("/", cfg.ProducerHandler.List)
		r.Post("/create", cfg.ProducerHandler.Create)
		r.Put("/edit/{id}", cfg.ProducerHandler.Update)
		r.Delete("/delete/{id}", cfg.ProducerHandler.Delete)
		r.Get("/{id}", cfg.ProducerHandler.GetByID)
	})

	r.Route("/coffees", func(r chi.Router) {
		r.Get("/", cfg.CoffeeHandler.List)
		r.Post("/create", cfg.CoffeeHandler.Create)
		r.Put("/edit/{id}", cfg.CoffeeHandler.Update)
		r.Delete("/delete/{id}", cfg.CoffeeHandler.Delete)
		r.Get("/{id}", cfg.CoffeeHandler.GetByID)
	})

	r.Route("/packs", func(r chi.Router) {
		r.Get("/", cfg.PackHandler.List)
		r.Post("/create", cfg.PackHandler.Create)
		r.Put("/edit/{id}", cfg.PackHandler.Update)
		r.Delete("/delete/{id}", cfg.PackHandler.Delete)
		r.Get("/{id}", cfg.PackHandler.GetByID)
	})

	r.Route("/users", func(r chi.Router) {
		// Public auth routes
		r.Post("/register", cfg.AuthHandler.Register)
		r.Post("/login", cfg.AuthHandler.Login)
		r.Post("/refresh", cfg.AuthHandler.RefreshSession)
		r.Post("/logout", cfg.AuthHandler.Logout)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(cfg.AuthenticateMiddleware)
			r.Get("/check-session", cfg.AuthHandler.CheckSession)
		})
	})

	// Catch-all: every unmatched path gets the same fixed body.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(notFoundBody))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(notFoundBody))
	})

	return r
}
