// Command healthcheck probes GET /api/health of a running instance and exits
// non-zero unless it reports OK. It is meant for container HEALTHCHECK
// directives. The probed address defaults to localhost on the server port.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-customer-keeper/internal/adapter"
	"github.com/MKhiriev/go-customer-keeper/internal/config"
	"github.com/MKhiriev/go-customer-keeper/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		return 2
	}

	log := logger.NewLogger("customer-healthcheck", cfg.App.Environment)

	prober, err := adapter.NewHTTPHealthAdapter(cfg.Adapter, log)
	if err != nil {
		log.Err(err).Msg("error creating health adapter")
		return 2
	}

	health, err := prober.Health(context.Background())
	if err != nil {
		log.Err(err).Str("status", health.Status).Str("database", health.Database).Msg("unhealthy")
		return 1
	}

	log.Info().Str("status", health.Status).Float64("uptime", health.Uptime).Msg("healthy")
	return 0
}
