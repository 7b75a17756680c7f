package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-approval/internal/document"
	"github.com/pkordes/travel-approval/internal/domain"
	"github.com/pkordes/travel-approval/internal/handler"
	"github.com/pkordes/travel-approval/internal/planner"
	"github.com/pkordes/travel-approval/internal/service"
)

// mockPlanServicer is a test double for handler.PlanServicer.
// Set only the method fields your test needs.
type mockPlanServicer struct {
	generate func(ctx context.Context, cfg domain.TripConfiguration) (domain.TravelPlan, error)
	render   func(ctx context.Context, w io.Writer, cfg domain.TripConfiguration, f document.Format) (domain.TravelPlan, error)
}

func (m *mockPlanServicer) Generate(ctx context.Context, cfg domain.TripConfiguration) (domain.TravelPlan, error) {
	return m.generate(ctx, cfg)
}
func (m *mockPlanServicer) Render(ctx context.Context, w io.Writer, cfg domain.TripConfiguration, f document.Format) (domain.TravelPlan, error) {
	return m.render(ctx, w, cfg, f)
}

// mockProfileServicer is a test double for handler.ProfileServicer.
type mockProfileServicer struct {
	listPaged func(ctx context.Context, p domain.PaginationParams) (domain.ProfilePage, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.TravelProfile, error)
	save      func(ctx context.Context, cfg domain.TripConfiguration) (domain.TravelProfile, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockProfileServicer) ListPaged(ctx context.Context, p domain.PaginationParams) (domain.ProfilePage, error) {
	return m.listPaged(ctx, p)
}
func (m *mockProfileServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.TravelProfile, error) {
	return m.getByID(ctx, id)
}
func (m *mockProfileServicer) Save(ctx context.Context, cfg domain.TripConfiguration) (domain.TravelProfile, error) {
	return m.save(ctx, cfg)
}
func (m *mockProfileServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// compile-time checks: the mocks and the real services satisfy the handler interfaces.
var (
	_ handler.PlanServicer    = (*mockPlanServicer)(nil)
	_ handler.ProfileServicer = (*mockProfileServicer)(nil)
	_ handler.PlanServicer    = (*service.PlanService)(nil)
	_ handler.ProfileServicer = (*service.ProfileService)(nil)
	_ handler.ConfigServicer  = (*service.ConfigService)(nil)
)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server the way main.go does. Nil plan services get
// the real PlanService; the config service is always the real one.
func newHTTPHandler(plans handler.PlanServicer, profiles handler.ProfileServicer) http.Handler {
	if plans == nil {
		plans = service.NewPlanService(nil)
	}
	srv := handler.NewServer(plans, profiles, service.NewConfigService(nil), nil)
	return srv.Routes()
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorDetail {
	t.Helper()
	var body handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error
}

// plannableConfig is a complete June trip that builds without errors.
func plannableConfig() domain.TripConfiguration {
	cfg := planner.DefaultConfiguration()
	cfg.University = "RV University"
	cfg.TargetCity = "Bangalore"
	cfg.TripStartDate = "2024-06-10"
	cfg.TripStartTime = "09:00"
	cfg.TripReachDate = "2024-06-10"
	cfg.TripReachTime = "13:00"
	cfg.ReturnStartDate = "2024-06-12"
	cfg.ReturnStartTime = "10:00"
	cfg.ReturnReachDate = "2024-06-12"
	cfg.ReturnReachTime = "18:00"
	cfg.WorkStartDate = "2024-06-10"
	cfg.WorkEndDate = "2024-06-11"
	return cfg
}
