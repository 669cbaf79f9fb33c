// Package grpc exposes the service health over the standard gRPC health
// checking protocol.
package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-customer-keeper/internal/logger"
	"github.com/MKhiriev/go-customer-keeper/internal/service"
	"github.com/MKhiriev/go-customer-keeper/models"
)

// ServiceName is the name reported next to the overall ("") service.
const ServiceName = "customers.v1.CustomerService"

// Handler is the root gRPC transport handler. It answers health checks from
// the same report as GET /api/health, so a probe fails while the database is
// unreachable.
type Handler struct {
	healthpb.UnimplementedHealthServer

	// services provides access to the application health report.
	services *service.Services

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Check implements [healthpb.HealthServer]. Unknown service names are
// answered with NotFound as the protocol requires.
func (h *Handler) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if name := req.GetService(); name != "" && name != ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", name)
	}

	health := h.services.AppInfoService.Health(ctx)

	servingStatus := healthpb.HealthCheckResponse_SERVING
	if health.Status != models.HealthStatusOK {
		servingStatus = healthpb.HealthCheckResponse_NOT_SERVING
		h.logger.Warn().
			Str("func", "*Handler.Check").
			Str("database", health.Database).
			Msg("reporting not serving")
	}

	return &healthpb.HealthCheckResponse{Status: servingStatus}, nil
}
