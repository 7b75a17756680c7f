// Package handler implements the HTTP API of the travel approval planner.
// All handlers are methods on Server. Routes are registered in Routes; the
// methods are split into files by resource (plans, profiles, config) but
// share the Server struct so they can reach its dependencies.
package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/travel-approval/internal/document"
	"github.com/pkordes/travel-approval/internal/domain"
	"github.com/pkordes/travel-approval/internal/planner"
	"github.com/pkordes/travel-approval/internal/transfer"
	"github.com/pkordes/travel-approval/spec"
)

// PlanServicer defines the plan operations the handlers depend on.
// Declared here, in the consumer, so tests can inject a mock.
type PlanServicer interface {
	Generate(ctx context.Context, cfg domain.TripConfiguration) (domain.TravelPlan, error)
	Render(ctx context.Context, w io.Writer, cfg domain.TripConfiguration, f document.Format) (domain.TravelPlan, error)
}

// ProfileServicer defines the saved-profile operations the handlers depend on.
type ProfileServicer interface {
	ListPaged(ctx context.Context, p domain.PaginationParams) (domain.ProfilePage, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.TravelProfile, error)
	Save(ctx context.Context, cfg domain.TripConfiguration) (domain.TravelProfile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ConfigServicer defines the form-support operations the handlers depend on.
type ConfigServicer interface {
	Defaults() domain.TripConfiguration
	Universities() []planner.University
	Derive(prev, next domain.TripConfiguration) domain.TripConfiguration
	Import(ctx context.Context, base domain.TripConfiguration, r io.Reader, f transfer.Format) (domain.TripConfiguration, error)
	Export(ctx context.Context, w io.Writer, cfg domain.TripConfiguration, f transfer.Format) error
}

// Server holds the dependencies shared by every handler.
type Server struct {
	plans    PlanServicer
	profiles ProfileServicer
	config   ConfigServicer
	log      *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger discards output.
func NewServer(plans PlanServicer, profiles ProfileServicer, config ConfigServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Server{plans: plans, profiles: profiles, config: config, log: log}
}

// Routes returns a router serving every API endpoint. Cross-cutting
// middleware (request IDs, logging, CORS, limits) is applied by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "no route for "+r.Method+" "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, r.Method+" not allowed on "+r.URL.Path)
	})

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", serveOpenAPI)

	r.Get("/universities", s.ListUniversities)
	r.Route("/config", func(r chi.Router) {
		r.Get("/defaults", s.GetDefaults)
		r.Post("/derive", s.DeriveConfig)
		r.Post("/import", s.ImportConfig)
		r.Post("/export", s.ExportConfig)
	})

	r.Route("/plans", func(r chi.Router) {
		r.Post("/", s.CreatePlan)
		r.Post("/document", s.RenderPlan)
	})

	r.Route("/profiles", func(r chi.Router) {
		r.Get("/", s.ListProfiles)
		r.Put("/", s.SaveProfile)
		r.Get("/{id}", s.GetProfile)
		r.Delete("/{id}", s.DeleteProfile)
	})

	return r
}

func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(spec.OpenAPI)
}
