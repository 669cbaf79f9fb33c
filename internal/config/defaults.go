package config

import "time"

// Built-in values used when no other source sets a field.
const (
	DefaultEnvironment     = EnvDevelopment
	DefaultVersion         = "1.0.0"
	DefaultPort            = 5000
	DefaultDriver          = DriverSQLite
	DefaultSQLitePath      = "database/customer_management.db"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultRequestTimeout  = 5 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment: DefaultEnvironment,
			Version:     DefaultVersion,
		},
		Storage: Storage{
			DB: DB{
				Driver: DefaultDriver,
				DSN:    DefaultSQLitePath,
			},
		},
		Server: Server{
			Port:            DefaultPort,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
