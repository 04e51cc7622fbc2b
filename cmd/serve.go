package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/pillars/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the pillars HTTP API",
	Long: `Starts the HTTP API: catalog lookups under /api/pillars, rendered
articles under /api/content and reading sessions under /api/sessions.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	port := cfg.Port
	if p, _ := cmd.Flags().GetInt("port"); p != 0 {
		port = p
	}

	srv := server.New(server.Config{
		Port:           port,
		AllowAll:       cfg.AllowAllOrigins,
		RequestTimeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
		MaxSessions:    cfg.MaxSessions,
		SessionIdleTTL: time.Duration(cfg.SessionIdleMinutes) * time.Minute,
	}, c, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", zap.Int("sessions", srv.Sessions().Len()))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}
