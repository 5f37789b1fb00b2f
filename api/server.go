/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontend

ROUTE GROUPS:
  /api/schedule/*     State, import/export, share links
  /api/pattern/*      Pattern history edits
  /api/days/*         Per-date records
  /api/resolve/*      Assignment resolution
  /api/week/*         Week views
  /api/suggestions/*  Autocomplete feeds

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Schedule routes
		r.Route("/schedule", func(r chi.Router) {
			r.Get("/", h.GetSchedule)
			r.Post("/import", h.ImportSchedule)
			r.Get("/export", h.ExportSchedule)
			r.Get("/share", h.ShareSchedule)
		})

		// Pattern routes
		r.Route("/pattern", func(r chi.Router) {
			r.Post("/", h.SetPattern)
			r.Post("/people", h.AddPerson)
			r.Delete("/people/{index}", h.RemovePerson)
			r.Post("/swap", h.SwapPeople)
			r.Post("/move", h.MovePerson)
		})

		// Day routes
		r.Route("/days/{date}", func(r chi.Router) {
			r.Get("/", h.GetDay)
			r.Post("/tasks", h.CreateTask)
			r.Put("/tasks/{id}", h.UpdateTask)
			r.Delete("/tasks/{id}", h.DeleteTask)
		})

		r.Get("/resolve/{date}", h.GetResolved)
		r.Get("/week/{date}", h.GetWeek)

		// Suggestion routes
		r.Route("/suggestions", func(r chi.Router) {
			r.Get("/descriptions", h.ListDescriptions)
			r.Get("/assignees", h.ListAssignees)
			r.Get("/times", h.SuggestTimes)
		})
	})

	return r
}
