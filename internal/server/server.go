// Package server exposes the ingest pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/abhisek/itemizer/internal/ingest"
	"github.com/abhisek/itemizer/internal/store"
)

// Options configures a Server.
type Options struct {
	Addr            string
	MaxContentBytes int64          // per content field; default 64 KiB
	Items           store.ItemRepo // optional; item routes answer 503 without it
	Logger          *zap.Logger    // optional
}

// Server serves the classify, taxonomy and item routes.
type Server struct {
	svc      *ingest.Service
	items    store.ItemRepo
	logger   *zap.Logger
	addr     string
	maxBytes int64
}

// New creates a Server around svc.
func New(svc *ingest.Service, opts Options) *Server {
	s := &Server{
		svc:      svc,
		items:    opts.Items,
		logger:   opts.Logger,
		addr:     opts.Addr,
		maxBytes: opts.MaxContentBytes,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.maxBytes <= 0 {
		s.maxBytes = 64 << 10
	}
	return s
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/classify", s.handleClassify)
		r.Post("/classify/batch", s.handleBatch)
		r.Get("/taxonomy", s.handleTaxonomy)

		r.Route("/items", func(r chi.Router) {
			r.Post("/", s.handleSaveItem)
			r.Get("/", s.handleListItems)
			r.Get("/{id}", s.handleGetItem)
			r.Post("/{id}/approve", s.handleReview(store.StatusApproved))
			r.Post("/{id}/reject", s.handleReview(store.StatusRejected))
		})
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", s.addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("http server stopped")
	return nil
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("http request",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
