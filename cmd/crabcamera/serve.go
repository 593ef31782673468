package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpadapter "github.com/Seif10284/crabcamera/internal/adapters/http"
	redisadapter "github.com/Seif10284/crabcamera/internal/adapters/redis"
	"github.com/Seif10284/crabcamera/internal/config"
	"github.com/Seif10284/crabcamera/internal/logging"
	"github.com/Seif10284/crabcamera/internal/stats"
	"github.com/Seif10284/crabcamera/pkg/catalog"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the report HTTP server",
	Long: `Serves the demonstration report over HTTP:

  GET /report       plain-text report
  GET /report.json  catalog as JSON
  GET /healthz      liveness probe
  GET /metrics      Prometheus metrics

Delivery counts are kept in memory, or in Redis when --redis (or the
config file) points at a server.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.DefaultServe()

		if path, _ := cmd.Flags().GetString("config"); path != "" {
			loaded, err := config.LoadServe(path)
			if err != nil {
				fmt.Printf("Error loading config: %v\n", err)
				os.Exit(1)
			}
			cfg = loaded
		}

		// Flags override file values.
		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetInt("port")
		}
		if cmd.Flags().Changed("redis") {
			cfg.RedisAddr, _ = cmd.Flags().GetString("redis")
		}
		if cmd.Flags().Changed("debug") {
			cfg.Debug, _ = cmd.Flags().GetBool("debug")
		}

		logger := logging.NewNop()
		if cfg.Debug {
			logger = logging.New(slog.LevelDebug)
		}

		var recorder stats.Recorder = stats.NewMemoryRecorder()
		if cfg.RedisAddr != "" {
			opts := []redisadapter.Option{}
			if cfg.RedisPrefix != "" {
				opts = append(opts, redisadapter.WithPrefix(cfg.RedisPrefix))
			}
			rec := redisadapter.New(cfg.RedisAddr, "", cfg.RedisDB, opts...)
			defer rec.Close()
			recorder = rec
			logger.Info("using redis delivery recorder", "addr", cfg.RedisAddr)
		}

		server := httpadapter.NewServer(catalog.Default(), recorder, logger)
		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Port),
			Handler: server.Handler(),
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting CrabCamera report server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("CrabCamera report server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("config", "", "Path to a YAML config file")
	serveCmd.Flags().String("redis", "", "Redis address for the delivery recorder")
	serveCmd.Flags().Bool("debug", false, "Enable debug logging on stderr")
}
