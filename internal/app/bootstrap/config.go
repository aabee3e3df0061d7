// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"os"

	"github.com/dalemusser/coursecompare/internal/app/system/classify"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for coursecompare.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, catalog_seed_dir, etc.
//   - Environment variables: COURSECOMPARE_MONGO_URI, COURSECOMPARE_CATALOG_SEED_DIR, etc.
//   - Command-line flags: --mongo_uri, --catalog_seed_dir, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "coursecompare", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Catalog
	{Name: "catalog_seed_dir", Default: "", Desc: "Directory with programs.json and institutions.json to upsert at startup"},
	{Name: "course_groups_file", Default: "", Desc: "YAML course group table (blank uses the built-in table)"},

	// Handler timeouts
	{Name: "timeout_short", Default: "5s", Desc: "Timeout for single-document reads (e.g., 5s)"},
	{Name: "timeout_medium", Default: "10s", Desc: "Timeout for catalog snapshots (e.g., 10s)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE merges flags > env > files > defaults; app keys read from the
// environment use the COURSECOMPARE_ prefix.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "COURSECOMPARE", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		CatalogSeedDir:   appValues.String("catalog_seed_dir"),
		CourseGroupsFile: appValues.String("course_groups_file"),

		TimeoutShort:  appValues.Duration("timeout_short", 0),
		TimeoutMedium: appValues.Duration("timeout_medium", 0),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// The MongoDB URI is checked before any connection attempt, and a custom
// course group table must compile so a bad pattern fails startup rather
// than the first comparison request.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if appCfg.MongoDatabase == "" {
		return fmt.Errorf("mongo_database must not be empty")
	}
	if appCfg.MongoMinPoolSize > appCfg.MongoMaxPoolSize {
		return fmt.Errorf("mongo_min_pool_size (%d) exceeds mongo_max_pool_size (%d)", appCfg.MongoMinPoolSize, appCfg.MongoMaxPoolSize)
	}
	if _, err := loadRules(appCfg.CourseGroupsFile); err != nil {
		logger.Error("invalid course group table", zap.String("file", appCfg.CourseGroupsFile), zap.Error(err))
		return err
	}
	if appCfg.CatalogSeedDir != "" {
		if fi, err := os.Stat(appCfg.CatalogSeedDir); err != nil || !fi.IsDir() {
			return fmt.Errorf("catalog_seed_dir %q is not a directory", appCfg.CatalogSeedDir)
		}
	}
	return nil
}

// loadRules returns the course group rules named by path, or the built-in
// table when path is blank.
func loadRules(path string) (*classify.Rules, error) {
	if path == "" {
		return classify.DefaultRules(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("course groups: %w", err)
	}
	defer f.Close()
	rules, err := classify.LoadRules(f)
	if err != nil {
		return nil, fmt.Errorf("course groups %s: %w", path, err)
	}
	return rules, nil
}
