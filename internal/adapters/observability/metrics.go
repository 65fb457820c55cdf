package observability

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "bankreviews", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bankreviews", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	ScrapedReviews = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "bankreviews", Name: "scraped_reviews_total", Help: "Raw reviews fetched per app."},
		[]string{"app_id"},
	)
	ScrapeFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "bankreviews", Name: "scrape_failures_total", Help: "Failed scrape runs per app."},
		[]string{"app_id"},
	)
	PipelineRows = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "bankreviews", Name: "pipeline_rows_total", Help: "Preprocessed rows by outcome (emitted or drop reason)."},
		[]string{"outcome"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "bankreviews", Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
)

func Serve() {
	addr := os.Getenv("METRICS_ADDR")
	if addr == "" {
		return // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, ScrapedReviews, ScrapeFailures, PipelineRows, CacheEvents)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveScrape(appID string, fetched int, err error) {
	if err != nil {
		ScrapeFailures.WithLabelValues(appID).Inc()
		return
	}
	ScrapedReviews.WithLabelValues(appID).Add(float64(fetched))
}

func ObservePipelineRows(outcome string, n int) {
	PipelineRows.WithLabelValues(outcome).Add(float64(n))
}

func ObserveCache(cache, event string) { // event: hit|miss|set|del
	CacheEvents.WithLabelValues(cache, event).Inc()
}
