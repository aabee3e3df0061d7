// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"

	catalogstore "github.com/dalemusser/coursecompare/internal/app/store/catalog"
	"github.com/dalemusser/coursecompare/internal/app/system/catalogseed"
	"github.com/dalemusser/coursecompare/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built: handler
// timeouts are applied and, when configured, the catalog is seeded.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.Config{
		Short:  appCfg.TimeoutShort,
		Medium: appCfg.TimeoutMedium,
	})
	logger.Info("handler timeouts configured",
		zap.Duration("short", timeouts.Short()),
		zap.Duration("medium", timeouts.Medium()))

	if appCfg.CatalogSeedDir == "" {
		return nil
	}
	return seedCatalog(ctx, deps, appCfg.CatalogSeedDir, logger)
}

func seedCatalog(ctx context.Context, deps DBDeps, dir string, logger *zap.Logger) error {
	cat, err := catalogseed.LoadDir(dir)
	if err != nil {
		return fmt.Errorf("load catalog seed: %w", err)
	}
	if err := catalogseed.Seed(ctx, catalogstore.New(deps.MongoDatabase), cat, logger); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	return nil
}
