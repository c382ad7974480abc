// Package server wires the handlers into an http.Handler with metrics,
// request IDs, request logging and CORS.
package server

import (
	"net/http"
	"time"

	"NumberClassifierService/config"
	"NumberClassifierService/handlers"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

// RequestIDHeader carries the per-request correlation ID.
const RequestIDHeader = "X-Request-ID"

// A func type that represents a handler function with metrics.
type HandlerFuncWithMetrics func(http.ResponseWriter, *http.Request, *prometheus.CounterVec, *prometheus.CounterVec)

// Metrics holds the per-endpoint counters passed to every handler.
type Metrics struct {
	EndPointCounter *prometheus.CounterVec
	ErrorCounter    *prometheus.CounterVec
}

// NewMetrics creates the endpoint counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		EndPointCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "numberclassifier_endpoint_calls_total",
			Help: "Total number of calls per endpoint.",
		}, []string{"endpoint"}),
		ErrorCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "numberclassifier_errors_total",
			Help: "Total number of errors occurred in the application.",
		}, []string{"endpoint"}),
	}
	reg.MustRegister(m.EndPointCounter, m.ErrorCounter)
	return m
}

// MetricsHandler is a middleware function that wraps the provided handler function
// with metrics collection.
// It takes in a handler function, Prometheus counter vectors for endpoint and error metrics,
// and returns an http.HandlerFunc.
func MetricsHandler(handlerFunc HandlerFuncWithMetrics, endPointCounter *prometheus.CounterVec, errorCounter *prometheus.CounterVec) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		handlerFunc(res, req, endPointCounter, errorCounter)
	}
}

// New returns the service's root handler.
//
// The following endpoints are available:
//
//  1. GET /api/classify-number?number=<value> - Classify a number
//  2. GET /health - Report service health
//  3. GET /metrics - Display Prometheus metrics
func New(cfg *config.Config, classifier *handlers.ClassifyHandler, registry *prometheus.Registry, log *logrus.Logger) http.Handler {
	metrics := NewMetrics(registry)

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+handlers.ClassifyEndpoint, MetricsHandler(classifier.ClassifyNumberHandler, metrics.EndPointCounter, metrics.ErrorCounter))
	mux.HandleFunc("GET "+handlers.HealthEndpoint, MetricsHandler(handlers.HealthHandler, metrics.EndPointCounter, metrics.ErrorCounter))
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet},
	})
	return requestID(logRequests(log, c.Handler(mux)))
}

// requestID makes sure every request and response carries an X-Request-ID.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		id := req.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
			req.Header.Set(RequestIDHeader, id)
		}
		res.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(res, req)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(log *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: res, status: http.StatusOK}
		next.ServeHTTP(rec, req)
		log.WithFields(logrus.Fields{
			"method":      req.Method,
			"path":        req.URL.Path,
			"query":       req.URL.RawQuery,
			"status":      rec.status,
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  req.Header.Get(RequestIDHeader),
		}).Info("request handled")
	})
}
