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

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jfarleigh/certrun/internal/bank"
	"github.com/jfarleigh/certrun/internal/config"
	"github.com/jfarleigh/certrun/internal/httpapi"
	"github.com/jfarleigh/certrun/internal/logging"
	"github.com/jfarleigh/certrun/internal/practice"
	"github.com/jfarleigh/certrun/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// runServe opens the store, builds the services, and serves the API
// until interrupted.
func runServe(cmd *cobra.Command) error {
	// A .env file is a convenience for local runs; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
	}

	log := logging.New("certrun", cfg.LogLevel)

	// --db wins over CERTRUN_DB; both beat the XDG default.
	dbPath := cfg.DBPath
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		dbPath = p
	}
	if dbPath == "" {
		if dbPath, err = store.DefaultDBPath(); err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
	} else if err := store.EnsureDir(dbPath); err != nil {
		return fmt.Errorf("create database directory: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	srv := httpapi.NewServer(
		bank.NewService(st.BankRepo()),
		practice.NewService(st.BankRepo(), st.HistoryRepo(), st.SessionRepo()),
		log,
		httpapi.Options{
			CORSOrigins: cfg.CORSOrigins,
			SessionSize: cfg.SessionSize,
		},
	)

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Addr).WithField("db", dbPath).Info("http server listening")
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-stop:
		log.WithField("signal", sig.String()).Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}
