// Package main boots the Bookshop catalog HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fairyhunter13/bookshop-service/internal/config"
	httpapi "github.com/fairyhunter13/bookshop-service/internal/http"
	"github.com/fairyhunter13/bookshop-service/internal/obs"
	"github.com/fairyhunter13/bookshop-service/internal/store"
)

func main() {
	cfg := config.Load()
	obs.InitLogger(cfg.ServiceName, cfg.LogLevel)
	obs.Logger.Info("service_starting", "version", httpapi.Version)

	st := store.NewSeeded()
	obs.Logger.Info("catalog_loaded", "book_count", st.Len())

	app := httpapi.NewApp(cfg, st)
	mux := httpapi.NewRouter(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		obs.Logger.Info("http_listen", "addr", cfg.HTTPAddr, "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			obs.Logger.Error("http_server_error", "error", err)
			os.Exit(1)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	obs.Logger.Info("shutdown_signal", "signal", s.String())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		obs.Logger.Error("http_shutdown_error", "error", err)
	}
	obs.Logger.Info("service_stopped")
}
