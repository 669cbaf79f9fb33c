package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-customer-keeper/internal/config"
	"github.com/MKhiriev/go-customer-keeper/internal/logger"
	"github.com/MKhiriev/go-customer-keeper/internal/mock"
	"github.com/MKhiriev/go-customer-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, nil, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: ""}, nil, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

// ─────────────────────────────────────────────
// GetAppVersion
// ─────────────────────────────────────────────

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "3.1.4"}, nil, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_DifferentInstances_IndependentVersions(t *testing.T) {
	svc1, err := NewAppInfoService(config.App{Version: "1.0.0"}, nil, logger.Nop())
	require.NoError(t, err)

	svc2, err := NewAppInfoService(config.App{Version: "2.0.0"}, nil, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", svc1.GetAppVersion(context.Background()))
	assert.Equal(t, "2.0.0", svc2.GetAppVersion(context.Background()))
}

// ─────────────────────────────────────────────
// Health
// ─────────────────────────────────────────────

func newTestAppInfoSvc(t *testing.T, pinger *mock.MockPinger) *appInfoService {
	t.Helper()
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, pinger, logger.Nop())
	require.NoError(t, err)

	s := svc.(*appInfoService)
	s.startedAt = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return s.startedAt.Add(90 * time.Second) }
	return s
}

func TestHealth_Connected(t *testing.T) {
	ctrl := gomock.NewController(t)
	pinger := mock.NewMockPinger(ctrl)
	pinger.EXPECT().PingContext(gomock.Any()).Return(nil)

	got := newTestAppInfoSvc(t, pinger).Health(context.Background())

	assert.Equal(t, models.Health{
		Status:    models.HealthStatusOK,
		Timestamp: time.Date(2026, 1, 1, 12, 1, 30, 0, time.UTC),
		Uptime:    90,
		Database:  models.DatabaseConnected,
		Version:   "1.0.0",
	}, got)
}

func TestHealth_PingFails_Degraded(t *testing.T) {
	ctrl := gomock.NewController(t)
	pinger := mock.NewMockPinger(ctrl)
	pinger.EXPECT().PingContext(gomock.Any()).Return(errors.New("database is closed"))

	got := newTestAppInfoSvc(t, pinger).Health(context.Background())

	assert.Equal(t, models.HealthStatusDegraded, got.Status)
	assert.Equal(t, models.DatabaseDisconnected, got.Database)
}

func TestHealth_PingHasDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	pinger := mock.NewMockPinger(ctrl)
	pinger.EXPECT().PingContext(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		assert.True(t, ok, "ping must be bounded")
		return nil
	})

	newTestAppInfoSvc(t, pinger).Health(context.Background())
}

func TestHealth_NoPinger_Degraded(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, nil, logger.Nop())
	require.NoError(t, err)

	got := svc.Health(context.Background())
	assert.Equal(t, models.HealthStatusDegraded, got.Status)
}
