package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tperticaro.dev/internal/handlers"
	"tperticaro.dev/internal/session"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	projects := loadProjects()
	contact := newContactService()

	sessions := session.NewStore(handlers.PageFactory(cfg, projects, contact, logger), session.Options{
		CookieName: cfg.Session.Cookie,
		TTL:        cfg.Session.TTL,
		Logger:     logger,
	})
	defer sessions.Close()

	srv := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: handlers.SetupRoutes(handlers.Deps{
			Config:   cfg,
			Logger:   logger,
			Projects: projects,
			Contact:  contact,
			Sessions: sessions,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", cfg.Server.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
