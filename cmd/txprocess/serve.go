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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sharetribe/txprocess"
	httpAdapter "github.com/sharetribe/txprocess/internal/adapters/http"
	"github.com/sharetribe/txprocess/internal/adapters/memory"
	redisAdapter "github.com/sharetribe/txprocess/internal/adapters/redis"
	"github.com/sharetribe/txprocess/internal/logging"
	"github.com/sharetribe/txprocess/internal/presentation/tui"
	"github.com/sharetribe/txprocess/pkg/ports"
)

// serveConfig is the optional YAML configuration for server mode. Flags
// override file values.
type serveConfig struct {
	Listen string `yaml:"listen"`
	Redis  struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the decision HTTP server",
	Long: `Starts the stateless decision server, exposing process introspection and
state-data resolution as a JSON API with Prometheus metrics. With a redis
address configured, computed descriptors are cached; otherwise an in-process
cache is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		configPath, _ := cmd.Flags().GetString("config")
		redisAddr, _ := cmd.Flags().GetString("redis")
		debug, _ := cmd.Flags().GetBool("debug")

		cfg := serveConfig{Listen: ":" + port}
		if configPath != "" {
			raw, err := os.ReadFile(configPath)
			if err != nil {
				fmt.Printf("Error reading config: %v\n", err)
				os.Exit(1)
			}
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				fmt.Printf("Error parsing config: %v\n", err)
				os.Exit(1)
			}
			if cfg.Listen == "" {
				cfg.Listen = ":" + port
			}
		}
		if redisAddr != "" {
			cfg.Redis.Addr = redisAddr
		}

		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		logger := logging.NewJSON(level)

		engine, err := txprocess.New(txprocess.WithLogger(logger))
		if err != nil {
			fmt.Printf("Error initializing engine: %v\n", err)
			os.Exit(1)
		}

		var cache ports.DecisionCache
		if cfg.Redis.Addr != "" {
			redisCache := redisAdapter.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
				redisAdapter.WithTTL(cfg.CacheTTL))
			defer redisCache.Close()
			cache = redisCache
			logger.Info("using redis decision cache", "addr", cfg.Redis.Addr)
		} else {
			cache = memory.New()
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		handler := httpAdapter.NewHandler(engine, reg,
			httpAdapter.WithCache(cache),
			httpAdapter.WithLogger(logger),
		)

		srv := &http.Server{
			Addr:    cfg.Listen,
			Handler: handler,
		}

		tui.PrintBanner()

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting decision server", "addr", srv.Addr)
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
			logger.Info("shutdown started", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					logger.Error("error killing server", "error", err)
				}
			}
			logger.Info("decision server stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("config", "", "Path to a YAML config file")
	serveCmd.Flags().String("redis", "", "Redis address for the decision cache (overrides config)")
}
