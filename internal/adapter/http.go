package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-customer-keeper/internal/config"
	"github.com/MKhiriev/go-customer-keeper/internal/logger"
	"github.com/MKhiriev/go-customer-keeper/internal/utils"
	"github.com/MKhiriev/go-customer-keeper/models"
)

const healthPath = "/api/health"

type httpHealthAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPHealthAdapter builds a [HealthProber] over HTTP. cfg.HTTPAddress may
// omit the scheme, "http://" is assumed then.
func NewHTTPHealthAdapter(cfg config.Adapter, logger *logger.Logger) (HealthProber, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpHealthAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Health implements [HealthProber].
func (h *httpHealthAdapter) Health(ctx context.Context) (models.Health, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(healthPath)
	if err != nil {
		return models.Health{}, fmt.Errorf("health request: %w", err)
	}

	statusErr := mapHTTPError(resp)
	if statusErr != nil && resp.StatusCode() != http.StatusServiceUnavailable {
		return models.Health{}, statusErr
	}

	var health models.Health
	if err = json.Unmarshal(resp.Body(), &health); err != nil {
		return models.Health{}, errors.Join(statusErr, fmt.Errorf("decode health response: %w", err))
	}

	h.logger.Debug().
		Str("func", "*httpHealthAdapter.Health").
		Str("status", health.Status).
		Str("database", health.Database).
		Msg("health report received")

	return health, statusErr
}
