// internal/middleware/metrics.go
package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics は HTTP と辞書検索の Prometheus メトリクスをまとめます
type Metrics struct {
	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	dictionaryLookups *prometheus.CounterVec
}

// NewMetrics はメトリクスを reg に登録します。テストでは prometheus.NewRegistry() を渡してください。
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tsumitan_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tsumitan_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		dictionaryLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tsumitan_dictionary_lookups_total",
			Help: "Dictionary lookups by result (cache_hit, found, not_found, unavailable)",
		}, []string{"result"}),
	}
	reg.MustRegister(m.requestsTotal, m.requestDuration, m.dictionaryLookups)
	return m
}

// Handler はリクエスト数と処理時間を記録するミドルウェアです。
// 単語ごとにラベルが増えないよう、パスではなく chi のルートパターンで集計します。
func (m *Metrics) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		m.requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// ObserveDictionaryLookup は dictionary.WithLookupObserver に渡します
func (m *Metrics) ObserveDictionaryLookup(result string) {
	m.dictionaryLookups.WithLabelValues(result).Inc()
}
