// Package handler implements the HTTP handlers for the station registry API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, station.go) but share the same Server struct so they can
// access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/radio-stations/backend/internal/domain"
)

// StationServicer defines the business operations the station handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the store or service layer.
type StationServicer interface {
	Create(ctx context.Context, station domain.Station) (domain.Station, error)
	List(ctx context.Context) ([]domain.Station, error)
	GetByID(ctx context.Context, id string) (domain.Station, error)
	Delete(ctx context.Context, id string) (domain.Station, error)
	Update(ctx context.Context, id string, patch domain.StationPatch) (domain.Station, error)
	Ready(ctx context.Context) error
}

// Server holds the dependencies shared by every handler.
type Server struct {
	stations StationServicer
	log      *slog.Logger
}

// NewServer constructs the Server. A nil logger falls back to slog.Default().
func NewServer(stations StationServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{stations: stations, log: log}
}

// Routes returns a chi router with every API endpoint registered.
// Cross-cutting middleware is applied by the caller in main.go.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, notFoundBody("route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("method_not_allowed", "method not allowed"))
	})

	r.Get("/healthz", s.GetHealth)
	r.Get("/readyz", s.GetReady)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/stations", func(r chi.Router) {
		r.Post("/", s.CreateStation)
		r.Get("/", s.ListStations)
		r.Get("/{id}", s.GetStation)
		r.Delete("/{id}", s.DeleteStation)
		r.Patch("/{id}", s.UpdateStation)
	})

	return r
}
