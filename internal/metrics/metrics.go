package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aerospace_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"path", "method", "code"},
	)

	httpDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aerospace_http_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	envelopeComputesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aerospace_envelope_computes_total",
			Help: "Total envelope computations by outcome.",
		},
		[]string{"outcome"},
	)

	envelopeSolveSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "aerospace_envelope_solve_duration_seconds",
			Help:    "Duration of one full envelope computation.",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
		},
	)

	envelopeFlaggedPointsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aerospace_envelope_flagged_points_total",
			Help: "Solved points carrying a diagnostic flag.",
		},
		[]string{"flag"},
	)

	cacheEntries = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "aerospace_cache_entries",
			Help: "Number of envelope results currently cached.",
		},
	)

	cacheHitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "aerospace_cache_hits_total",
			Help: "Envelope cache hits.",
		},
	)

	cacheMissesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "aerospace_cache_misses_total",
			Help: "Envelope cache misses.",
		},
	)

	cacheEvictionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "aerospace_cache_evictions_total",
			Help: "Envelope cache evictions.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpDurationSeconds,
		envelopeComputesTotal,
		envelopeSolveSeconds,
		envelopeFlaggedPointsTotal,
		cacheEntries,
		cacheHitsTotal,
		cacheMissesTotal,
		cacheEvictionsTotal,
	)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// IncEnvelopeComputes records one compute attempt with the given outcome
// ("ok", "invalid" or "cached").
func IncEnvelopeComputes(outcome string) {
	envelopeComputesTotal.WithLabelValues(outcome).Inc()
}

// ObserveSolveDuration records the duration of one full envelope solve.
func ObserveSolveDuration(d time.Duration) {
	envelopeSolveSeconds.Observe(d.Seconds())
}

// AddFlaggedPoints records solved points that carried the given diagnostic flag.
func AddFlaggedPoints(flag string, n int) {
	if n > 0 {
		envelopeFlaggedPointsTotal.WithLabelValues(flag).Add(float64(n))
	}
}

// SetCacheEntries publishes the current envelope cache size.
func SetCacheEntries(n int) {
	cacheEntries.Set(float64(n))
}

// IncCacheHits increments the cache hit counter.
func IncCacheHits() {
	cacheHitsTotal.Inc()
}

// IncCacheMisses increments the cache miss counter.
func IncCacheMisses() {
	cacheMissesTotal.Inc()
}

// AddCacheEvictions adds to the cache eviction counter.
func AddCacheEvictions(n int) {
	cacheEvictionsTotal.Add(float64(n))
}

// knownRoutes are the exact paths this service serves.
var knownRoutes = map[string]bool{
	"/":                         true,
	"/app.js":                   true,
	"/styles.css":               true,
	"/healthz":                  true,
	"/readyz":                   true,
	"/metrics":                  true,
	"/api/v1/envelope":          true,
	"/api/v1/envelope/defaults": true,
	"/api/v1/cache/stats":       true,
}

// normalizeRoute maps a request path to a bounded label set so bot scans
// cannot inflate metric cardinality.
func normalizeRoute(path string) string {
	if knownRoutes[path] {
		return path
	}
	return "other"
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware records request count and duration for each request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		code := strconv.Itoa(rw.statusCode)
		route := normalizeRoute(r.URL.Path)

		httpRequestsTotal.WithLabelValues(route, r.Method, code).Inc()
		httpDurationSeconds.WithLabelValues(route, r.Method).Observe(duration)
	})
}
