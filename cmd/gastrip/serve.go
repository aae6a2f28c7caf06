package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/gastrip/internal/middleware"
	"github.com/mmynk/gastrip/internal/service"
	"github.com/mmynk/gastrip/internal/session"
	"github.com/mmynk/gastrip/pkg/proto/protoconnect"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the trip session over Connect RPC",
		Args:  cobra.NoArgs,
		RunE:  runServeCmd,
	}

	cmd.Flags().String("bind", "", "bind address (overrides config)")
	cmd.Flags().String("static", "", "directory of a web frontend to serve (overrides config)")

	return cmd
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	bindOverride, _ := cmd.Flags().GetString("bind")
	staticOverride, _ := cmd.Flags().GetString("static")

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	bind := a.cfg.Server.Bind
	if bindOverride != "" {
		bind = bindOverride
	}
	staticDir := a.cfg.Server.StaticDir
	if staticOverride != "" {
		staticDir = staticOverride
	}

	handler, err := newServerHandler(a.session, staticDir)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              bind,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", bind, "database", a.cfg.Storage.DBPath)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// newServerHandler builds the full HTTP handler: Connect service, metrics,
// health check and the optional static frontend.
func newServerHandler(sess *session.Session, staticDir string) (http.Handler, error) {
	mux := http.NewServeMux()

	interceptors := connect.WithInterceptors(
		middleware.RequestIDInterceptor(),
		middleware.LoggingInterceptor(),
		middleware.MetricsInterceptor(),
	)
	tripPath, tripHandler := protoconnect.NewTripServiceHandler(service.NewTripService(sess), interceptors)
	mux.Handle(tripPath, tripHandler)

	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	if staticDir != "" {
		dir, err := filepath.Abs(staticDir)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve static path: %w", err)
		}
		slog.Info("Serving static files", "path", dir)
		mux.HandleFunc("/", staticHandler(dir, tripPath))
	}

	// Wrap with h2c for HTTP/2 without TLS
	return h2c.NewHandler(loggingMiddleware(corsMiddleware(mux)), &http2.Server{}), nil
}

// staticHandler serves files from dir, falling back to index.html.
func staticHandler(dir, apiPrefix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, apiPrefix) {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(dir, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(dir, "index.html"))
			return
		}

		http.ServeFile(w, r, filePath)
	}
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		slog.Debug("Request received",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
		)

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms, "+middleware.RequestIDHeader)
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms, "+middleware.RequestIDHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
