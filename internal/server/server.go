package server

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/gitfolio/internal/analytics"
	"github.com/osse101/gitfolio/internal/database"
	"github.com/osse101/gitfolio/internal/handler"
	"github.com/osse101/gitfolio/internal/logger"
	"github.com/osse101/gitfolio/internal/metrics"
	"github.com/osse101/gitfolio/internal/profile"
	"github.com/osse101/gitfolio/internal/validation"
)

type Server struct {
	httpServer *http.Server
}

// NewServer wires the router. hasGitHubToken is reported by /readyz.
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, analyticsService analytics.Service, profileService profile.Service, schemas validation.SchemaValidator, hasGitHubToken bool) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(apiKey, trustedProxies, dbPool, analyticsService, profileService, schemas, hasGitHubToken),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the HTTP routes. Middleware runs in the order listed.
func NewRouter(apiKey string, trustedProxies []string, dbPool database.Pool, analyticsService analytics.Service, profileService profile.Service, schemas validation.SchemaValidator, hasGitHubToken bool) http.Handler {
	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetector(DefaultRateLimit, DefaultRateWindow)

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool, hasGitHubToken))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/github/{username}", func(r chi.Router) {
			r.Get("/", handler.HandleGetAnalytics(analyticsService))
			r.Get("/contributions", handler.HandleGetContributions(analyticsService))
			r.Get("/languages", handler.HandleGetLanguages(analyticsService))
			r.Get("/activity", handler.HandleGetActivity(analyticsService))
			r.Get("/export", handler.HandleExport(analyticsService, time.Now))
		})

		r.Route("/profiles", func(r chi.Router) {
			r.Get("/latest", handler.HandleLatestProfiles(profileService))

			r.Group(func(r chi.Router) {
				r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
				r.Get("/", handler.HandleListProfiles(profileService))
				r.Post("/", handler.HandleSaveProfile(profileService, schemas))
				r.Delete("/{id}", handler.HandleDeleteProfile(profileService))
			})
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
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

// loggingMiddleware assigns every request an id, echoes it in X-Request-ID
// and logs start and completion through the request-scoped logger.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if slices.ContainsFunc(unloggedPaths, func(p string) bool { return strings.HasPrefix(r.URL.Path, p) }) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" || len(requestID) > 64 {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())

		sanitized := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitized[k] = []string{RedactedValue}
			} else {
				sanitized[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitized)

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start serves until Stop is called; http.ErrServerClosed signals a clean stop.
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	logger.Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
