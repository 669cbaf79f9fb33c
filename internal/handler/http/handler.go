package http

import (
	"github.com/MKhiriev/go-customer-keeper/internal/config"
	"github.com/MKhiriev/go-customer-keeper/internal/logger"
	"github.com/MKhiriev/go-customer-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	// production hides internal error detail from clients.
	production bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		production: cfg.IsProduction(),
		logger:     logger,
	}
}
