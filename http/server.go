package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/scrapeview"
	"golang.org/x/sync/errgroup"
)

// DefaultPageTimeout bounds the work done for a single /scrape call.
const DefaultPageTimeout = 75 * time.Second

// ShutdownTimeout is how long in-flight requests get on shutdown.
const ShutdownTimeout = 10 * time.Second

const maxRequestBody = 1 << 20

// Server exposes a PageScraper as the extraction service.
type Server struct {
	scraper     scrapeview.PageScraper
	logger      *slog.Logger
	pageTimeout time.Duration
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithPageTimeout sets the per-request scrape timeout.
// Defaults to DefaultPageTimeout if not specified.
func WithPageTimeout(d time.Duration) ServerOption {
	return func(s *Server) {
		s.pageTimeout = d
	}
}

// WithLogger sets the request logger. Defaults to discarding output.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new Server backed by scraper.
func NewServer(scraper scrapeview.PageScraper, opts ...ServerOption) *Server {
	s := &Server{
		scraper:     scraper,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		pageTimeout: DefaultPageTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routes wrapped in request id and logging middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+ScrapePath, s.handleScrape)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	return RequestID(Logging(s.logger)(mux))
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

type scrapeBody struct {
	Result *scrapeview.PageResult `json:"result"`
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	var req scrapeview.ScrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.renderJSON(w, http.StatusBadRequest, errorBody{Error: `Invalid request body. Send a JSON object with a "url" field.`})
		return
	}
	url := strings.TrimSpace(req.URL)
	if url == "" {
		s.renderJSON(w, http.StatusBadRequest, errorBody{Error: `The "url" field is required.`})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.pageTimeout)
	defer cancel()

	result := s.scraper.ScrapePage(ctx, url)
	s.renderJSON(w, http.StatusOK, scrapeBody{Result: result})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	s.renderJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) renderJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}
