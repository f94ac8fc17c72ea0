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
	"github.com/linskybing/simqueue/internal/api/middleware"
	"github.com/linskybing/simqueue/internal/api/routes"
	"github.com/linskybing/simqueue/internal/application"
	"github.com/linskybing/simqueue/internal/config"
	"github.com/linskybing/simqueue/internal/config/db"
	"github.com/linskybing/simqueue/internal/repository"
	"github.com/linskybing/simqueue/pkg/units"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"k8s.io/utils/clock"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "simqueue",
		Short: "simqueue is the job queue and quota service for simulation platforms.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load configuration from environment variables and .env file
			config.LoadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "Migrate the schema before serving")

	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			gormDB, err := db.Open()
			if err != nil {
				return err
			}
			if err := db.Migrate(gormDB); err != nil {
				log.Error().Err(err).Msg("failed to migrate database")
				return err
			}
			log.Info().Msg("database schema up to date")
			return nil
		},
	})
	return cmd
}

func serve(ctx context.Context, migrate bool) error {
	// Initialize JWT signing key
	middleware.Init()

	table := units.New(units.Defaults)
	if config.UnitsFile != "" {
		loaded, err := units.Load(config.UnitsFile)
		if err != nil {
			log.Error().Err(err).Str("path", config.UnitsFile).Msg("failed to load units table")
			return err
		}
		table = loaded
	}

	gormDB, err := db.Open()
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to database")
		return err
	}
	if migrate {
		if err := db.Migrate(gormDB); err != nil {
			log.Error().Err(err).Msg("failed to migrate database")
			return err
		}
	}

	repos := repository.NewRepositories(gormDB)
	services := application.New(repos, table, clock.RealClock{})

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	routes.RegisterRoutes(router, repos, services)

	srv := &http.Server{
		Addr:              ":" + config.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("starting API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
