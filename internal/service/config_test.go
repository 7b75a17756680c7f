package service_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-approval/internal/domain"
	"github.com/pkordes/travel-approval/internal/service"
	"github.com/pkordes/travel-approval/internal/transfer"
)

func TestConfigService_ExportImportRoundTrip(t *testing.T) {
	svc := service.NewConfigService(nil)
	ctx := context.Background()
	cfg := validConfig()
	cfg.Reason = "Guest lecture, lab review"

	for _, f := range []transfer.Format{transfer.FormatCSV, transfer.FormatJSON} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, svc.Export(ctx, &buf, cfg, f))

			got, err := svc.Import(ctx, domain.TripConfiguration{}, &buf, f)
			require.NoError(t, err)
			assert.Equal(t, cfg, got)
		})
	}
}

func TestConfigService_Import_ErrorKeepsBase(t *testing.T) {
	svc := service.NewConfigService(nil)
	base := svc.Defaults()

	got, err := svc.Import(context.Background(), base, strings.NewReader("{not json"), transfer.FormatJSON)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, base, got)
}

func TestConfigService_Derive_FillsTargetCity(t *testing.T) {
	svc := service.NewConfigService(nil)
	prev := svc.Defaults()
	next := prev
	next.University = svc.Universities()[0].Name

	got := svc.Derive(prev, next)

	assert.Equal(t, svc.Universities()[0].City, got.TargetCity)
}
