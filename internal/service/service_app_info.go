package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-customer-keeper/internal/config"
	"github.com/MKhiriev/go-customer-keeper/internal/logger"
	"github.com/MKhiriev/go-customer-keeper/internal/store"
	"github.com/MKhiriev/go-customer-keeper/models"
)

// healthPingTimeout bounds the database ping of a health report.
const healthPingTimeout = 2 * time.Second

type appInfoService struct {
	appVersion string
	pinger     store.Pinger

	startedAt time.Time
	now       func() time.Time

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, pinger store.Pinger, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		pinger:     pinger,
		startedAt:  time.Now(),
		now:        time.Now,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Health(ctx context.Context) models.Health {
	now := s.now()
	health := models.Health{
		Status:    models.HealthStatusOK,
		Timestamp: now.UTC(),
		Uptime:    now.Sub(s.startedAt).Seconds(),
		Database:  models.DatabaseConnected,
		Version:   s.appVersion,
	}

	if err := s.ping(ctx); err != nil {
		s.logger.Err(err).Str("func", "*appInfoService.Health").Msg("database ping failed")
		health.Status = models.HealthStatusDegraded
		health.Database = models.DatabaseDisconnected
	}

	return health
}

func (s *appInfoService) ping(ctx context.Context) error {
	if s.pinger == nil {
		return store.ErrExecutingQuery
	}

	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	return s.pinger.PingContext(ctx)
}
