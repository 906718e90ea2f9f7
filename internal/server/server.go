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
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/docs"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/auth"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/batch"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/database"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/deployment"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/eventlog"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/handler"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/inventory"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/ledger"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/logger"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/metrics"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/sse"
)

// Services are the domain services the API exposes.
type Services struct {
	Inventory   inventory.Service
	Batches     batch.Service
	Deployments deployment.Service
	Ledger      ledger.Service
	Audit       eventlog.Service
}

// Options configures the HTTP layer.
type Options struct {
	Port           int
	TrustedProxies []string
	Issuer         *auth.Issuer
	DBPool         database.Pool
	// ReadinessChecks are pinged by /readyz next to the database.
	ReadinessChecks map[string]handler.Pinger
	// Stream enables GET /api/v1/stream when set.
	Stream *sse.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, svc),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// NewRouter builds the full route tree. Reads need any valid token,
// mutations other than notification acknowledgement need the admin role.
func NewRouter(opts Options, svc Services) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(AuthMiddleware(opts.Issuer, opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(DefaultMaxBodyBytes, map[string]int64{ImportPath: handler.MaxImportBytes}))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.DBPool, opts.ReadinessChecks))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	inv := handler.NewInventoryHandler(svc.Inventory)
	batches := handler.NewBatchHandler(svc.Batches)
	deployments := handler.NewDeploymentHandler(svc.Deployments)
	led := handler.NewLedgerHandler(svc.Ledger)
	audit := handler.NewAuditHandler(svc.Audit)
	admin := RequireRole(auth.RoleAdmin)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", inv.HandleListCategories)
			r.With(admin).Post("/", inv.HandleCreateCategory)
		})

		r.Route("/items", func(r chi.Router) {
			r.Get("/", inv.HandleListItems)
			r.With(admin).Post("/", inv.HandleCreateItem)
			r.Get("/{id}", inv.HandleGetItem)
		})

		r.Route("/serials", func(r chi.Router) {
			r.Get("/", inv.HandleListSerializedItems)
			r.Get("/{id}", inv.HandleGetSerializedItem)
			r.With(admin).Patch("/{id}/status", inv.HandleUpdateSerialStatus)
		})

		r.Route("/batches", func(r chi.Router) {
			r.Get("/", batches.HandleListBatches)
			r.Get("/{id}", batches.HandleGetBatch)
			r.Group(func(r chi.Router) {
				r.Use(admin)
				r.Post("/", batches.HandleReceiveBatch)
				r.Post("/import", batches.HandleImportBatches)
				r.Delete("/{id}", batches.HandleDeleteBatch)
			})
		})

		r.Route("/deployments", func(r chi.Router) {
			r.Get("/", deployments.HandleListDeployments)
			r.Get("/overdue", deployments.HandleListOverdue)
			r.Get("/{id}", deployments.HandleGetDeployment)
			r.Group(func(r chi.Router) {
				r.Use(admin)
				r.Post("/", deployments.HandleCreateDeployment)
				r.Post("/{id}/return", deployments.HandleReturnDeployment)
			})
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", inv.HandleListNotifications)
			r.Post("/{id}/read", inv.HandleMarkNotificationRead)
		})

		r.Route("/ledger", func(r chi.Router) {
			r.With(admin).Get("/", led.HandleVerifyAll)
			r.Get("/items/{id}", led.HandleVerifyItem)
		})

		r.With(admin).Get("/events", audit.HandleListEvents)

		if opts.Stream != nil {
			r.Get("/stream", sse.Handler(opts.Stream))
		}
	})

	return r
}

// Handler exposes the root handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

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

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter { return rw.ResponseWriter }

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, "Cookie") {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
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
