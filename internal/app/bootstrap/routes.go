// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	comparefeature "github.com/dalemusser/coursecompare/internal/app/features/compare"
	healthfeature "github.com/dalemusser/coursecompare/internal/app/features/health"
	institutionsfeature "github.com/dalemusser/coursecompare/internal/app/features/institutions"
	programsfeature "github.com/dalemusser/coursecompare/internal/app/features/programs"
	reachablefeature "github.com/dalemusser/coursecompare/internal/app/features/reachable"
	catalogstore "github.com/dalemusser/coursecompare/internal/app/store/catalog"
	"github.com/dalemusser/coursecompare/internal/app/system/classify"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// the Startup hook have completed. Every feature shares one catalog store
// and one set of course group rules.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	rules, err := loadRules(appCfg.CourseGroupsFile)
	if err != nil {
		logger.Error("course group rules init failed", zap.Error(err))
		return nil, err
	}
	catalog := catalogstore.New(deps.MongoDatabase)

	return newRouter(deps, catalog, rules, logger), nil
}

func newRouter(deps DBDeps, catalog *catalogstore.Store, rules *classify.Rules, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, catalog, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Program listing, cost and related suggestions
	programsHandler := programsfeature.NewHandler(catalog, rules, logger)
	r.Mount("/programs", programsfeature.Routes(programsHandler))

	institutionsHandler := institutionsfeature.NewHandler(catalog, logger)
	r.Mount("/institutions", institutionsfeature.Routes(institutionsHandler))

	// Course group comparison
	compareHandler := comparefeature.NewHandler(catalog, rules, logger)
	r.Mount("/compare", comparefeature.Routes(compareHandler))
	r.Get("/groups", compareHandler.ServeGroups)

	reachableHandler := reachablefeature.NewHandler(logger)
	r.Mount("/reachable", reachablefeature.Routes(reachableHandler))

	return r
}
