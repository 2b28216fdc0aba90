package providers

import (
	"context"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/resenia/resenia-server/internal/api"
	"github.com/resenia/resenia-server/internal/config"
	"github.com/resenia/resenia-server/internal/logger"
	"github.com/resenia/resenia-server/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server and starts it in the background.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	services := &api.Services{
		Auth:      do.MustInvoke[*service.AuthService](i),
		Book:      do.MustInvoke[*service.BookService](i),
		Review:    do.MustInvoke[*service.ReviewService](i),
		Quiz:      do.MustInvoke[*service.QuizService](i),
		Recommend: do.MustInvoke[*service.RecommendationService](i),
		Search:    do.MustInvoke[*service.SearchService](i),
	}

	handler := api.NewServer(storeHandle.Store, services, api.Options{
		Name:          cfg.Server.Name,
		AuthRateRPS:   cfg.Server.AuthRateRPS,
		AuthRateBurst: cfg.Server.AuthRateBurst,
	}, log.Logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	return &HTTPServerHandle{Server: srv}, nil
}
