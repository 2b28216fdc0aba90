// Package di provides dependency injection configuration for the Reseña
// server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/resenia/resenia-server/internal/auth"
	"github.com/resenia/resenia-server/internal/config"
	"github.com/resenia/resenia-server/internal/di/providers"
	"github.com/resenia/resenia-server/internal/logger"
	"github.com/resenia/resenia-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideSlogLogger)
	do.Provide(injector, providers.ProvideAuthKey)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Search layer
	do.Provide(injector, providers.ProvideSearchIndex)
	do.Provide(injector, providers.ProvideSearchService)

	// Auth layer
	do.Provide(injector, providers.ProvideTokenService)

	// Text analysis
	do.Provide(injector, providers.ProvideTokenizer)
	do.Provide(injector, providers.ProvideClassifier)
	do.Provide(injector, providers.ProvideSimilarity)

	// Business services
	do.Provide(injector, providers.ProvideSessionService)
	do.Provide(injector, providers.ProvideAuthService)
	do.Provide(injector, providers.ProvideBookService)
	do.Provide(injector, providers.ProvideReviewService)
	do.Provide(injector, providers.ProvideQuizService)
	do.Provide(injector, providers.ProvideRecommendationService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns once the server is running.
// This triggers lazy initialization of every provider in dependency order.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[providers.AuthKey](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*providers.SearchIndexHandle](injector)
	_ = do.MustInvoke[*service.SearchService](injector)
	_ = do.MustInvoke[*auth.TokenService](injector)

	// Business services
	_ = do.MustInvoke[*service.SessionService](injector)
	_ = do.MustInvoke[*service.AuthService](injector)
	_ = do.MustInvoke[*service.BookService](injector)
	_ = do.MustInvoke[*service.ReviewService](injector)
	_ = do.MustInvoke[*service.QuizService](injector)
	_ = do.MustInvoke[*service.RecommendationService](injector)

	// Server
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	// Rebuild the search index if it is out of step with the store.
	providers.TriggerSearchReindexIfNeeded(injector)

	return nil
}
