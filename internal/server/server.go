package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/studentjobsgroningen/site-services/api/internal/catalog"
	"github.com/studentjobsgroningen/site-services/api/internal/config"
	"github.com/studentjobsgroningen/site-services/api/internal/employer/application"
	mongodoc "github.com/studentjobsgroningen/site-services/api/internal/infrastructure/mongo"
	"github.com/studentjobsgroningen/site-services/api/internal/interfaces/http/common"
	publichttp "github.com/studentjobsgroningen/site-services/api/internal/interfaces/http/public"
)

// Server is the composition root: it owns the HTTP lifecycle and injects the
// catalog and the submission use-cases into the public handler set.
type Server struct {
	logger         *zap.Logger
	client         *mongo.Client
	catalog        *catalog.Catalog
	submitService  application.SubmitService
	logoStore      application.LogoStore
	notifier       application.Notifier
	addr           string
	allowedOrigins []string
	defaultCity    string
	region         string
}

// New assembles the server from config, the Mongo client, and the blob
// store / notifier collaborators constructed in main.
func New(cfg config.Config, logger *zap.Logger, client *mongo.Client, logos application.LogoStore, notifier application.Notifier) *Server {
	database := client.Database(cfg.MongoDatabase)
	repo := mongodoc.NewSubmissionRepository(database, cfg.SubmissionCollection)

	return &Server{
		logger:         logger,
		client:         client,
		catalog:        catalog.Default(),
		submitService:  application.NewSubmitService(repo),
		logoStore:      logos,
		notifier:       notifier,
		addr:           cfg.Addr,
		allowedOrigins: append([]string(nil), cfg.AllowedOrigins...),
		defaultCity:    cfg.DefaultCity,
		region:         cfg.Region,
	}
}

// Run starts the HTTP server and blocks until shutdown.
func (s *Server) Run() error {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(s.logger))
	router.Use(jsonRecoverer(s.logger))
	router.Use(withCORS(s.allowedOrigins))

	router.Get("/healthz", s.healthHandler())

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:      s.logger,
		Catalog:     s.catalog,
		Submissions: s.submitService,
		Logos:       s.logoStore,
		Notifier:    s.notifier,
		DefaultCity: s.defaultCity,
		Region:      s.region,
	})
	publicHandler.Register(router)

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", zap.String("addr", s.addr))
		errChan <- httpServer.ListenAndServe()
	}()

	waitForShutdown(httpServer, errChan, s)
	return nil
}

// jsonRecoverer converts panics into the generic JSON 500 the API promises;
// the detail only goes to the log.
func jsonRecoverer(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic while handling request",
						zap.String("path", r.URL.Path),
						zap.Any("panic", rec))
					common.Error(logger, w, http.StatusInternalServerError,
						"An unexpected error occurred. Please try again later.")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("requestId", middleware.GetReqID(r.Context())))
		})
	}
}

// withCORS adds CORS headers for the allowed origins.
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && len(allowed) > 0 && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// healthHandler reports the Mongo connection state for monitoring.
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
			// Backend error text stays in the log, never in the response body.
			s.logger.Warn("health check failed", zap.Error(err))
			common.WriteJSON(s.logger, w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
			})
			return
		}

		common.WriteJSON(s.logger, w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

// shutdown disconnects the Mongo client with a bounded timeout.
func (s *Server) shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(shutdownCtx); err != nil {
		s.logger.Warn("error disconnecting from MongoDB", zap.Error(err))
	}
}

// waitForShutdown watches ListenAndServe and OS signals for a graceful stop.
func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.logger.Fatal("server exited abnormally", zap.Error(err))
		}
	case sig := <-sigChan:
		srv.logger.Info("signal received, shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.Warn("error during server shutdown", zap.Error(err))
		}
	}

	srv.shutdown(context.Background())
}
