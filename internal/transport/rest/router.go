package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/flashdeck-backend/internal/transport/middleware"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Auth    *AuthHandler
	Deck    *DeckHandler
	Card    *CardHandler
	Session *SessionHandler
	Health  *HealthHandler
}

// NewRouter builds the chi router: health probes and auth endpoints are
// public, everything else sits behind the bearer-token middleware.
func NewRouter(h Handlers, global middleware.Middleware, authMW middleware.Middleware) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", h.Health.Health)
	r.Get("/ready", h.Health.Ready)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(authMW)

			r.Route("/decks", func(r chi.Router) {
				r.Post("/", h.Deck.Create)
				r.Get("/", h.Deck.List)
				r.Post("/import", h.Deck.Import)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Deck.Get)
					r.Put("/", h.Deck.Update)
					r.Delete("/", h.Deck.Delete)
					r.Get("/export", h.Deck.Export)
					r.Get("/sessions", h.Session.Recent)

					r.Route("/session", func(r chi.Router) {
						r.Post("/", h.Session.Start)
						r.Delete("/", h.Session.Clear)
						r.Get("/next", h.Session.Next)
						r.Get("/jump", h.Session.Jump)
						r.Post("/outcome", h.Session.Outcome)
						r.Get("/stats", h.Session.Stats)
					})
				})
			})

			r.Route("/cards", func(r chi.Router) {
				r.Post("/", h.Card.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Card.Get)
					r.Put("/", h.Card.Update)
					r.Delete("/", h.Card.Delete)
					r.Put("/stars", h.Session.SetStars)
				})
			})
		})
	})

	return global(r)
}
