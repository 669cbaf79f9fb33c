// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound clients for talking to a running customer
// API instance.
//
// The only client today is [HealthProber], used by the healthcheck command to
// decide whether a container is healthy. HTTP status codes are mapped to the
// sentinel errors in errors.go by mapHTTPError so that callers can use
// [errors.Is] (e.g. [ErrServiceUnavailable] for 503).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-customer-keeper/models"
)

// HealthProber reads the health report of a customer API instance.
type HealthProber interface {
	// Health fetches GET /api/health. A degraded instance answers 503 with a
	// full report: both the decoded report and an error wrapping
	// [ErrServiceUnavailable] are returned in that case.
	Health(ctx context.Context) (models.Health, error)
}
