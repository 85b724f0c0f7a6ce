package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"logistics/cmd"
	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/pkg/logger"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the delay report job",
		RunE: func(c *cobra.Command, _ []string) error {
			config, err := cmd.LoadConfig(envFile)
			if err != nil {
				return err
			}
			if err = config.ValidateServe(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, config)
		},
	}
}

func serve(ctx context.Context, config cmd.Config) error {
	log := logger.New(logger.Config{Env: config.AppEnv, Level: config.LogLevel})

	db, err := openDB(config, logger.WithComponent(log, "gorm"))
	if err != nil {
		return err
	}

	app := cmd.NewCompositionRoot(config, db, log)

	router, err := httpin.NewRouter(httpin.RouterConfig{
		JWTSecret:    []byte(config.JWTSecret),
		RateLimitRPS: config.RateLimitRPS,
		Debug:        config.IsDevelopment(),
	}, app.CreateServer(), logger.WithComponent(log, "http"))
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	addr := net.JoinHostPort("0.0.0.0", config.HTTPPort)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", addr).Msg("http server started")
		if startErr := router.Start(addr); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			return startErr
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		log.Info().Msg("shutting down")
		return router.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
