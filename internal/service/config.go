package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/pkordes/travel-approval/internal/domain"
	"github.com/pkordes/travel-approval/internal/planner"
	"github.com/pkordes/travel-approval/internal/transfer"
)

// ConfigService serves the form: its defaults, the university list, derived
// field values and configuration file import/export.
type ConfigService struct {
	log *slog.Logger
}

// NewConfigService constructs a ConfigService.
func NewConfigService(log *slog.Logger) *ConfigService {
	return &ConfigService{log: orDiscard(log)}
}

// Defaults returns the configuration a fresh form starts with.
func (s *ConfigService) Defaults() domain.TripConfiguration {
	return planner.DefaultConfiguration()
}

// Universities returns the known universities and their cities.
func (s *ConfigService) Universities() []planner.University {
	return planner.Universities()
}

// Derive applies the automatic field updates triggered by editing prev into next.
func (s *ConfigService) Derive(prev, next domain.TripConfiguration) domain.TripConfiguration {
	return planner.DeriveDefaults(prev, next)
}

// Import decodes a configuration file and applies it over base.
// On any decode error base is returned unchanged together with a
// domain.ErrValidation.
func (s *ConfigService) Import(ctx context.Context, base domain.TripConfiguration, r io.Reader, f transfer.Format) (domain.TripConfiguration, error) {
	cfg, err := transfer.Import(base, r, f)
	if err != nil {
		s.log.DebugContext(ctx, "configuration import rejected", "format", f, "error", err)
		return base, fmt.Errorf("service.ConfigService.Import: %w", err)
	}
	s.log.InfoContext(ctx, "configuration imported", "format", f, "university", cfg.University)
	return cfg, nil
}

// Export writes cfg as a configuration file.
func (s *ConfigService) Export(ctx context.Context, w io.Writer, cfg domain.TripConfiguration, f transfer.Format) error {
	if err := transfer.Encode(w, cfg, f); err != nil {
		return fmt.Errorf("service.ConfigService.Export: %w", err)
	}
	s.log.DebugContext(ctx, "configuration exported", "format", f)
	return nil
}
