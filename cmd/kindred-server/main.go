// Command kindred-server runs the Kindred pedigree and relatedness API.
//
// Configuration is read from the environment (and an optional .env file):
//
//   - PORT: HTTP listen port (default: 4040)
//   - LISTEN_HOST: HTTP listen host (default: 127.0.0.1)
//   - LOG_LEVEL: logrus level (default: info)
//   - MAX_SESSIONS: concurrent session cap (default: 100)
//   - SESSION_TTL: idle session lifetime (default: 24h)
//   - CORS_ORIGINS: comma-separated allowed origins (default: http://localhost:3000)
//   - SCENARIOS_FILE: TOML consanguinity scenario catalog (default: embedded)
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/kindredlab/kindred/internal/api"
	"github.com/kindredlab/kindred/internal/config"
	"github.com/kindredlab/kindred/internal/genetics"
	"github.com/kindredlab/kindred/internal/service"
	"github.com/kindredlab/kindred/internal/ws"
)

// shutdownTimeout bounds how long in-flight requests may run after SIGTERM.
const shutdownTimeout = 10 * time.Second

func main() {
	// Optional; absence of a .env file is the normal production case.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("loading configuration")
	}

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("level", cfg.LogLevel).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	scenarios, err := genetics.LoadScenarios(cfg.ScenariosFile)
	if err != nil {
		log.WithError(err).Fatal("loading consanguinity scenarios")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := ws.NewHub(log)
	journal := service.NewJournal(log, 0, 0)
	manager := service.NewManager(log, hub, journal, cfg.MaxSessions, cfg.SessionTTL)

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(ctx, &api.RouterDeps{
		Log:         log,
		Hub:         hub,
		Sessions:    manager,
		Pedigree:    manager,
		Genetics:    manager,
		Scenarios:   scenarios,
		CORSOrigins: cfg.CORSOrigins,
		Version:     config.Version,
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
		// No blanket read/write timeouts; /ws connections are long-lived.
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hub.Run(gctx)
		return nil
	})
	g.Go(func() error {
		journal.Run(gctx)
		return nil
	})
	g.Go(func() error {
		manager.RunReaper(gctx)
		return nil
	})
	g.Go(func() error {
		log.WithFields(logrus.Fields{
			"addr":         cfg.Addr(),
			"version":      config.Version,
			"max_sessions": cfg.MaxSessions,
			"session_ttl":  cfg.SessionTTL.String(),
			"scenarios":    len(scenarios),
		}).Info("kindred server listening")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		// Shutdown ignores hijacked WebSocket connections; the hub drains those.
		err := srv.Shutdown(shutdownCtx)
		hub.Shutdown()
		return err
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Fatal("server exited")
	}
	log.Info("kindred server stopped")
}
