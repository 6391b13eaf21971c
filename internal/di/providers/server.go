package providers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/eac85/gava-wrapped/internal/api"
	"github.com/eac85/gava-wrapped/internal/config"
	"github.com/eac85/gava-wrapped/internal/logger"
	"github.com/eac85/gava-wrapped/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
	api *api.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := h.Server.Shutdown(ctx)
	h.api.Close()
	return err
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	services := &api.Services{
		Wrapped: do.MustInvoke[*service.WrappedService](i),
		Profile: do.MustInvoke[*service.ProfileService](i),
	}

	apiServer := api.NewServer(storeHandle.Store, services, log.Logger, api.Options{
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		ReportRPS:          cfg.Reports.RateLimitRPS,
		ReportBurst:        cfg.Reports.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      apiServer,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	return &HTTPServerHandle{Server: srv, api: apiServer}, nil
}
