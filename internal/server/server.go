package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/enderryno/nuclearcraft-items/internal/database"
	"github.com/enderryno/nuclearcraft-items/internal/handler"
	"github.com/enderryno/nuclearcraft-items/internal/logger"
	"github.com/enderryno/nuclearcraft-items/internal/metrics"
	"github.com/enderryno/nuclearcraft-items/internal/naming"
	"github.com/enderryno/nuclearcraft-items/internal/registry"
)

// Options holds everything the HTTP server needs
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	DBPool         database.Pool // nil when the database mirror is disabled
	Registry       *registry.Registry
	Resolver       naming.Resolver
	CatalogVersion string

	// Limits bounds per-client traffic; zero fields use the defaults
	Limits Limits
	// PublicPaths skip the API key check; nil means DefaultPublicPaths
	PublicPaths []string
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the chi router with the full middleware stack
func NewRouter(opts Options) http.Handler {
	limits := opts.Limits.withDefaults()
	public := opts.PublicPaths
	if public == nil {
		public = DefaultPublicPaths
	}
	proxies := newProxySet(opts.TrustedProxies)
	tracker := newClientTracker(limits)

	r := chi.NewRouter()

	// Outermost first. Rejections below the logger are still logged with their request id.
	r.Use(requestIDMiddleware)
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(rateLimitMiddleware(proxies, tracker))
	r.Use(authMiddleware(opts.APIKey, public, proxies, tracker))
	r.Use(RequestSizeLimitMiddleware(limits.MaxBodyBytes))
	r.Use(metrics.Middleware)

	r.Get(PathHealthz, handler.HandleHealthz())
	r.Get(PathReadyz, handler.HandleReadyz(opts.DBPool, opts.Registry.Len()))
	r.Get(PathVersion, handler.HandleVersion(opts.CatalogVersion))
	r.Handle(PathMetrics, promhttp.Handler())

	items := handler.NewItemHandler(opts.Registry, opts.Resolver)
	r.Route("/api/v1/items", func(r chi.Router) {
		r.Get("/", items.HandleList)
		r.Get("/resolve", items.HandleResolve)
		r.Get("/by-name/{name}", items.HandleGetByName)
		r.Get("/{id}", items.HandleGetByID)
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// requestIDMiddleware reuses an upstream X-Request-ID or mints one, echoes it
// on the response and stores it in the request context for logging.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := strings.TrimSpace(r.Header.Get(HeaderRequestID))
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), requestID)))
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if matchesPath(r.URL.Path, quietPaths) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		log := logger.FromContext(r.Context())

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds())
	})
}

// redactHeaders copies h with credential headers masked
func redactHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
			continue
		}
		out[k] = v
	}
	return out
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
