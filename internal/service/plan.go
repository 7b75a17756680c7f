// Package service contains the application logic of the travel approval
// planner. Services validate inputs, call the planner and the profile store,
// and are the only layer that logs business events. No SQL or HTTP lives
// here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/pkordes/travel-approval/internal/document"
	"github.com/pkordes/travel-approval/internal/domain"
	"github.com/pkordes/travel-approval/internal/planner"
)

const tracerName = "github.com/pkordes/travel-approval/internal/service"

// PlanService builds travel plans and renders them as approval documents.
type PlanService struct {
	log    *slog.Logger
	tracer trace.Tracer
}

// NewPlanService constructs a PlanService. A nil logger discards output.
func NewPlanService(log *slog.Logger) *PlanService {
	return &PlanService{log: orDiscard(log), tracer: otel.Tracer(tracerName)}
}

// Generate builds the plan for cfg.
// Returns domain.ErrValidation when required fields are missing or malformed.
func (s *PlanService) Generate(ctx context.Context, cfg domain.TripConfiguration) (domain.TravelPlan, error) {
	ctx, span := s.tracer.Start(ctx, "PlanService.Generate",
		trace.WithAttributes(attribute.String("plan.university", cfg.University)),
	)
	defer span.End()

	plan, err := planner.Build(cfg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build failed")
		s.log.DebugContext(ctx, "plan rejected", "university", cfg.University, "error", err)
		return domain.TravelPlan{}, fmt.Errorf("service.PlanService.Generate: %w", err)
	}

	span.SetAttributes(
		attribute.Float64("plan.total", plan.TotalEstimatedExpense),
		attribute.Int("plan.nights", plan.Accommodation.Days),
	)
	s.log.InfoContext(ctx, "plan generated",
		"university", plan.University,
		"start", plan.StartDate,
		"end", plan.EndDate,
		"total", plan.TotalEstimatedExpense,
	)
	return plan, nil
}

// Render builds the plan for cfg and writes it to w as an approval document.
// Nothing is written when the plan cannot be built.
func (s *PlanService) Render(ctx context.Context, w io.Writer, cfg domain.TripConfiguration, f document.Format) (domain.TravelPlan, error) {
	ctx, span := s.tracer.Start(ctx, "PlanService.Render",
		trace.WithAttributes(attribute.String("document.format", string(f))),
	)
	defer span.End()

	plan, err := s.Generate(ctx, cfg)
	if err != nil {
		return domain.TravelPlan{}, err
	}
	if err := document.Render(w, plan, f); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		return domain.TravelPlan{}, fmt.Errorf("service.PlanService.Render: %w", err)
	}
	return plan, nil
}

func orDiscard(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return log
}
