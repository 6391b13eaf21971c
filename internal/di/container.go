// Package di provides dependency injection configuration for the Gava Wrapped server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/eac85/gava-wrapped/internal/config"
	"github.com/eac85/gava-wrapped/internal/di/providers"
	"github.com/eac85/gava-wrapped/internal/logger"
	"github.com/eac85/gava-wrapped/internal/service"
	"github.com/eac85/gava-wrapped/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideValidator)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Business services
	do.Provide(injector, providers.ProvideProfileService)
	do.Provide(injector, providers.ProvideWrappedService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns once the dependency
// graph is fully constructed.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*validation.Validator](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)

	_ = do.MustInvoke[*service.ProfileService](injector)
	_ = do.MustInvoke[*service.WrappedService](injector)

	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
