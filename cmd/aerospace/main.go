package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Sy3drizvi/Aerospace/internal/api"
	"github.com/Sy3drizvi/Aerospace/internal/auth"
	"github.com/Sy3drizvi/Aerospace/internal/cache"
	"github.com/Sy3drizvi/Aerospace/web"
)

func main() {
	logger := newLogger()

	authCfg, err := loadAuthConfig(logger)
	if err != nil {
		logger.Error("invalid auth configuration", "error", err)
		os.Exit(1)
	}

	apiCfg := loadAPIConfig(logger)
	cacheCfg := loadCacheConfig(logger)

	results := cache.NewResultCache(cacheCfg, logger)
	srv := api.NewServer(apiCfg, logger, authCfg, results, web.Content)

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", apiCfg.Addr, "auth_enabled", authCfg.Enabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server listen error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.HTTPServer().Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// newLogger builds the JSON logger. With AEROSPACE_LOG_DIR set, log output
// goes to a size-rotated file in that directory instead of stdout.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	switch os.Getenv("AEROSPACE_LOG_LEVEL") {
	case "debug":
		level = slog.LevelDebug
	case "", "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var w io.Writer = os.Stdout
	if dir := os.Getenv("AEROSPACE_LOG_DIR"); dir != "" {
		w = &lumberjack.Logger{
			Filename: filepath.Join(dir, "aerospace.slog"),
			MaxSize:  64, // MB
			MaxAge:   14,
			Compress: true,
		}
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func loadAuthConfig(logger *slog.Logger) (auth.Config, error) {
	cfg := auth.Config{}

	enabledStr := os.Getenv("AEROSPACE_AUTH_ENABLED")
	if enabledStr != "" {
		enabled, err := strconv.ParseBool(enabledStr)
		if err != nil {
			return cfg, errors.New("AEROSPACE_AUTH_ENABLED must be a boolean value (true/false/1/0)")
		}
		cfg.Enabled = enabled
	}

	if cfg.Enabled {
		cfg.Token = os.Getenv("AEROSPACE_AUTH_TOKEN")
		if cfg.Token == "" {
			return cfg, errors.New("AEROSPACE_AUTH_TOKEN is required when auth is enabled")
		}
		logger.Info("auth enabled")
	}

	return cfg, nil
}

func loadAPIConfig(logger *slog.Logger) api.Config {
	cfg := api.Config{
		Addr:               ":8080",
		MaxConcurrentPerIP: 4,
	}

	if v := os.Getenv("AEROSPACE_HTTP_ADDR"); v != "" {
		cfg.Addr = v
	}

	if v := os.Getenv("AEROSPACE_TRUST_PROXY"); v != "" {
		trust, err := strconv.ParseBool(v)
		if err != nil {
			logger.Warn("invalid AEROSPACE_TRUST_PROXY value, defaulting to false", "value", v)
		} else {
			cfg.TrustProxy = trust
		}
	}

	if v := os.Getenv("AEROSPACE_MAX_CONCURRENT_PER_IP"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			logger.Warn("invalid AEROSPACE_MAX_CONCURRENT_PER_IP value, using default", "value", v, "default", cfg.MaxConcurrentPerIP)
		} else {
			cfg.MaxConcurrentPerIP = n
		}
	}

	logger.Info("api config",
		"addr", cfg.Addr,
		"trust_proxy", cfg.TrustProxy,
		"max_concurrent_per_ip", cfg.MaxConcurrentPerIP,
	)

	return cfg
}

func loadCacheConfig(logger *slog.Logger) cache.Config {
	cfg := cache.Config{
		MaxEntries: 128,
	}

	if v := os.Getenv("AEROSPACE_CACHE_MAX_ENTRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			logger.Warn("invalid AEROSPACE_CACHE_MAX_ENTRIES value, using default", "value", v, "default", cfg.MaxEntries)
		} else {
			cfg.MaxEntries = n
		}
	}

	logger.Info("cache config", "max_entries", cfg.MaxEntries)

	return cfg
}
