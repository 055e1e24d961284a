package api

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Sy3drizvi/Aerospace/internal/auth"
	"github.com/Sy3drizvi/Aerospace/internal/cache"
	"github.com/Sy3drizvi/Aerospace/internal/envelope"
	"github.com/Sy3drizvi/Aerospace/internal/health"
	"github.com/Sy3drizvi/Aerospace/internal/httputil"
	"github.com/Sy3drizvi/Aerospace/internal/metrics"
)

// maxBodyBytes caps the envelope request body; eight floats never need more.
const maxBodyBytes = 1 << 16

// Config holds API server configuration.
type Config struct {
	Addr               string
	TrustProxy         bool // trust X-Forwarded-For / X-Real-IP for limiter keys
	MaxConcurrentPerIP int  // in-flight compute cap per client IP
}

// Server holds the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates a configured HTTP server.
func NewServer(cfg Config, logger *slog.Logger, authCfg auth.Config, results *cache.ResultCache, webContent fs.FS) *Server {
	limiter := newComputeLimiter(cfg.MaxConcurrentPerIP)

	mux := http.NewServeMux()

	// Register routes.
	mux.HandleFunc("GET /healthz", health.Healthz)
	mux.HandleFunc("GET /readyz", health.Readyz)
	mux.Handle("GET /metrics", metrics.Handler())
	mux.HandleFunc("POST /api/v1/envelope", envelopeHandler(logger, results, limiter, cfg.TrustProxy))
	mux.HandleFunc("GET /api/v1/envelope/defaults", defaultsHandler())
	mux.HandleFunc("GET /api/v1/cache/stats", cacheStatsHandler(results))
	mux.Handle("GET /", http.FileServerFS(webContent))

	// Build middleware chain: metrics -> logging -> auth -> mux.
	var handler http.Handler = mux
	handler = auth.Middleware(authCfg)(handler)
	handler = loggingMiddleware(logger)(handler)
	handler = metrics.Middleware(handler)

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadTimeout:       10 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		logger: logger,
	}
}

// HTTPServer returns the underlying *http.Server for external control (e.g. shutdown).
func (s *Server) HTTPServer() *http.Server {
	return s.httpServer
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// envelopeHandler computes the climb envelope for a posted AircraftConfig.
// Identical configurations are served from the result cache.
func envelopeHandler(logger *slog.Logger, results *cache.ResultCache, limiter *computeLimiter, trustProxy bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cfg envelope.AircraftConfig

		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request body: " + err.Error()})
			return
		}

		if res := results.Get(cfg); res != nil {
			metrics.IncEnvelopeComputes("cached")
			writeJSON(w, http.StatusOK, res)
			return
		}

		ip := httputil.ClientIP(r, trustProxy)
		if !limiter.acquire(ip) {
			logger.Warn("compute limit reached", "component", "api", "remote_ip", ip)
			writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "too many concurrent computations"})
			return
		}
		defer limiter.release(ip)

		start := time.Now()
		res, err := envelope.Compute(r.Context(), envelope.Request{Config: cfg})
		if err != nil {
			metrics.IncEnvelopeComputes("invalid")
			var cerr *envelope.ConfigError
			if errors.As(err, &cerr) {
				writeJSON(w, http.StatusBadRequest, map[string]string{
					"error": cerr.Error(),
					"field": cerr.Field,
				})
				return
			}
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		metrics.IncEnvelopeComputes("ok")
		metrics.ObserveSolveDuration(time.Since(start))

		d := envelope.Diagnose(res)
		metrics.AddFlaggedPoints("not_representable", d.NotRepresentable)
		metrics.AddFlaggedPoints("efficiency_out_of_range", d.EfficiencyOutOfRange)
		envelope.LogDiagnostics(logger, res)

		results.Put(cfg, res)
		writeJSON(w, http.StatusOK, res)
	}
}

// defaultsHandler serves the reference airframe so the frontend can prefill
// its form.
func defaultsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, envelope.ReferenceConfig())
	}
}

// cacheStatsHandler exposes result cache statistics.
func cacheStatsHandler(results *cache.ResultCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, results.Stats())
	}
}

// probePath returns true for health/readiness probe paths that should not log at INFO.
func probePath(path string) bool {
	return path == "/healthz" || path == "/readyz"
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.statusCode = code
	sr.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(sr, r)

			duration := time.Since(start)
			level := slog.LevelInfo
			if probePath(r.URL.Path) {
				level = slog.LevelDebug
			}

			logger.Log(r.Context(), level, "request",
				"component", "api",
				"method", r.Method,
				"path", r.URL.Path,
				"status", strconv.Itoa(sr.statusCode),
				"duration_ms", duration.Milliseconds(),
				"remote_ip", r.RemoteAddr,
			)
		})
	}
}
