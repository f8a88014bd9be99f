package main

import (
	"context"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/taskweb/frontend/api/handler"
	"github.com/taskweb/frontend/internal/config"
	"github.com/taskweb/frontend/internal/infrastructure/monitor"
	"github.com/taskweb/frontend/internal/router"
	"github.com/taskweb/frontend/internal/services/lifecycle"
	"github.com/taskweb/frontend/internal/upstream"
	"github.com/taskweb/frontend/pkg/httpcontext"
	"github.com/taskweb/frontend/pkg/logger"
	"github.com/taskweb/frontend/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	readiness := monitor.NewReadiness()

	manager := lifecycle.New(cfg.Shutdown.Timeout, cfg.Shutdown.DrainDelay, zapLogger)
	manager.Listen(readiness.MarkDown, cancel)

	views, err := web.NewRenderer()
	if err != nil {
		zapLogger.Fatal("template parsing failed", zap.Error(err))
	}

	api := upstream.NewClient(cfg.Upstream.BaseURL, nil, zapLogger)
	ctxAdapter := httpcontext.NewAdapter(cfg.Upstream.RequestTimeout)

	handlers := router.Handlers{
		Home:   apiHandler.NewHomeHandler(views, ctxAdapter, zapLogger),
		Task:   apiHandler.NewTaskHandler(api, views, ctxAdapter, zapLogger),
		Health: apiHandler.NewHealthHandler(readiness, zapLogger),
	}
	r := router.New(handlers)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		if cfg.TLSEnabled() {
			zapLogger.Info("server started",
				zap.String("address", "https://"+cfg.Address()),
				zap.String("upstream", cfg.Upstream.BaseURL),
			)
			if err := server.ListenAndServeTLS(cfg.Address(), cfg.HTTP.TLSCertPath, cfg.HTTP.TLSKeyPath); err != nil {
				zapLogger.Fatal("server crashed", zap.Error(err))
			}
			return
		}
		zapLogger.Info("server started",
			zap.String("address", "http://"+cfg.Address()),
			zap.String("upstream", cfg.Upstream.BaseURL),
		)
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
