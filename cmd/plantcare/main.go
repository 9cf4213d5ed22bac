package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/wb-go/wbf/zlog"
	"golang.org/x/sync/errgroup"

	analyticsh "github.com/aliskhannn/plant-care/internal/api/handlers/analytics"
	planth "github.com/aliskhannn/plant-care/internal/api/handlers/plant"
	reminderh "github.com/aliskhannn/plant-care/internal/api/handlers/reminder"
	userh "github.com/aliskhannn/plant-care/internal/api/handlers/user"
	"github.com/aliskhannn/plant-care/internal/api/router"
	"github.com/aliskhannn/plant-care/internal/api/server"
	"github.com/aliskhannn/plant-care/internal/config"
	"github.com/aliskhannn/plant-care/internal/migrations"
	remindermsg "github.com/aliskhannn/plant-care/internal/rabbitmq/handlers/reminder"
	"github.com/aliskhannn/plant-care/internal/worker"
)

var configDir string

func main() {
	zlog.Init()

	rootCmd := &cobra.Command{
		Use:           "plantcare",
		Short:         "Plant care schedule and reminder service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", "./config", "directory holding config.yaml")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API and the reminder dispatcher",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "poll",
			Short: "Run a single dispatcher cycle and exit",
			RunE:  runPoll,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply database migrations",
			RunE:  runMigrate,
		},
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close()

	val := validator.New()

	r := router.New(router.Handlers{
		Users:     userh.NewHandler(a.care, val),
		Plants:    planth.NewHandler(a.care, val),
		Reminders: reminderh.NewHandler(a.care),
		Analytics: analyticsh.NewHandler(a.analytics),
	}, cfg.Server.CORSOrigins)
	s := server.New(cfg.Server.HTTPPort, r)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		zlog.Logger.Info().Str("addr", cfg.Server.HTTPPort).Msg("starting server")
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := a.dispatcher.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	if a.queue != nil {
		messageHandler := remindermsg.NewHandler(a.direct, a.deliveries, a.cache)
		notifier := worker.NewNotifier(a.queue, messageHandler, a.care)

		g.Go(func() error {
			notifier.Run(gctx, cfg.Retry, cfg.Workers.Count)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		zlog.Logger.Info().Msg("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		zlog.Logger.Info().Msg("shutting down server")
		if err := s.Shutdown(shutdownCtx); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
		}

		if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
			zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
		}

		return nil
	})

	return g.Wait()
}

func runPoll(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}

	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.close()

	st, err := a.dispatcher.Poll(cmd.Context(), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("poll cycle failed: %w", err)
	}

	zlog.Logger.Info().
		Int("expired", st.Expired).
		Int("created", st.Created).
		Int("sent", st.Sent).
		Int("failed", st.Failed).
		Int("escalated", st.Escalated).
		Int("deferred", st.Deferred).
		Msg("poll cycle finished")

	return nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}

	if cfg.Storage.Driver != config.StoragePostgres {
		return fmt.Errorf("migrate needs the %s storage driver", config.StoragePostgres)
	}

	a := &app{cfg: cfg}
	if err := a.openStorage(); err != nil {
		return err
	}
	defer a.close()

	if err := migrations.Up(cmd.Context(), a.db.Master); err != nil {
		return err
	}

	zlog.Logger.Info().Msg("migrations applied")
	return nil
}
