// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). Framework-level settings such
// as ports, TLS and log level live in WAFFLE's CoreConfig instead.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Catalog configuration
	CatalogSeedDir   string // Directory with programs.json / institutions.json upserted at startup (blank: no seeding)
	CourseGroupsFile string // YAML course group table replacing the built-in one (blank: built-in)

	// Handler timeouts (zero keeps the package defaults)
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
}
