package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/pkordes/travel-approval/internal/domain"
	"github.com/pkordes/travel-approval/internal/repo"
)

// ProfileService saves and loads trip configurations, one per university.
type ProfileService struct {
	repo   repo.ProfileRepo
	log    *slog.Logger
	tracer trace.Tracer
	now    func() time.Time
}

// NewProfileService constructs a ProfileService backed by the provided ProfileRepo.
func NewProfileService(r repo.ProfileRepo, log *slog.Logger) *ProfileService {
	return &ProfileService{
		repo:   r,
		log:    orDiscard(log),
		tracer: otel.Tracer(tracerName),
		now:    time.Now,
	}
}

// List returns every saved profile, most recent first.
// Always returns a non-nil slice.
func (s *ProfileService) List(ctx context.Context) ([]domain.TravelProfile, error) {
	ctx, span := s.tracer.Start(ctx, "ProfileService.List")
	defer span.End()

	profiles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ProfileService.List: %w", err)
	}
	if profiles == nil {
		return []domain.TravelProfile{}, nil
	}
	return profiles, nil
}

// ListPaged returns one page of List.
func (s *ProfileService) ListPaged(ctx context.Context, p domain.PaginationParams) (domain.ProfilePage, error) {
	all, err := s.List(ctx)
	if err != nil {
		return domain.ProfilePage{}, err
	}
	start, end := p.Window(len(all))
	return domain.ProfilePage{
		Items: all[start:end],
		Total: len(all),
		Page:  p.Page,
		Limit: p.Limit,
	}, nil
}

// GetByID returns a single profile.
// Returns domain.ErrNotFound if it does not exist.
func (s *ProfileService) GetByID(ctx context.Context, id uuid.UUID) (domain.TravelProfile, error) {
	ctx, span := s.tracer.Start(ctx, "ProfileService.GetByID",
		trace.WithAttributes(attribute.String("profile.id", id.String())),
	)
	defer span.End()

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.TravelProfile{}, fmt.Errorf("service.ProfileService.GetByID: %w", err)
	}
	return p, nil
}

// Save stores cfg as the profile for its university, replacing any earlier
// one. The stored profile gets a fresh ID and the current time.
// Returns domain.ErrValidation if the university is blank.
func (s *ProfileService) Save(ctx context.Context, cfg domain.TripConfiguration) (domain.TravelProfile, error) {
	university := strings.TrimSpace(cfg.University)
	if university == "" {
		return domain.TravelProfile{}, fmt.Errorf("%w: university is required", domain.ErrValidation)
	}

	ctx, span := s.tracer.Start(ctx, "ProfileService.Save",
		trace.WithAttributes(attribute.String("profile.university", university)),
	)
	defer span.End()

	cfg.University = university
	p := domain.TravelProfile{
		ID:          uuid.New(),
		University:  university,
		LastUpdated: s.now().UTC().Truncate(time.Microsecond),
		Data:        cfg,
	}

	saved, err := s.repo.Save(ctx, p)
	if err != nil {
		return domain.TravelProfile{}, fmt.Errorf("service.ProfileService.Save: %w", err)
	}
	s.log.InfoContext(ctx, "profile saved", "id", saved.ID, "university", saved.University)
	return saved, nil
}

// Delete removes a profile.
// Returns domain.ErrNotFound if it does not exist.
func (s *ProfileService) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := s.tracer.Start(ctx, "ProfileService.Delete",
		trace.WithAttributes(attribute.String("profile.id", id.String())),
	)
	defer span.End()

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ProfileService.Delete: %w", err)
	}
	s.log.InfoContext(ctx, "profile deleted", "id", id)
	return nil
}
