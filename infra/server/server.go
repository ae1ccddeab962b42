// Package server is the backend stub behind the product finder UI.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func init() {
	// Prices go out as JSON numbers, the shape the UI and DummyJSON use.
	decimal.MarshalJSONWithoutQuotes = true
}

var (
	popularTerms = []string{"phone", "laptop", "skin care", "groceries", "shoes"}
	examples     = []string{"iPhone 9", "perfume", "watch", "motorcycle", "sunglasses"}
)

// Server serves the search API over a Source.
type Server struct {
	src    Source
	logger *zap.Logger
}

func New(src Source, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{src: src, logger: logger}
}

// Handler returns the routed API with CORS, request ids and access logs.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("GET /api/search-suggestions", s.handleSuggestions)
	mux.HandleFunc("GET /api/products", s.handleProducts)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	return withCommonHeaders(withRequestID(withAccessLog(s.logger, mux)))
}

// ListenAndServe runs until ctx is cancelled, then drains for up to 5s.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr), zap.String("source", s.src.Describe()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeJSON(w, http.StatusOK, []any{})
		return
	}
	products, err := s.src.Search(r.Context(), q)
	if err != nil {
		s.fail(w, r, "Failed to fetch products from external API", err)
		return
	}
	if len(products) == 0 {
		writeJSON(w, http.StatusOK, []any{})
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	categories, err := s.src.Categories(r.Context())
	if err != nil {
		s.fail(w, r, "Failed to fetch suggestions", err)
		return
	}
	if categories == nil {
		categories = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{
		"categories":    categories,
		"popular_terms": popularTerms,
		"examples":      examples,
	})
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.src.All(r.Context())
	if err != nil {
		s.fail(w, r, "Failed to fetch products from external API", err)
		return
	}
	titles := make([]string, 0, len(products))
	for _, p := range products {
		titles = append(titles, p.Title)
	}
	writeJSON(w, http.StatusOK, map[string][]string{"products": titles})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": s.src.Describe(),
	})
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	s.logger.Error(msg, zap.Error(err), zap.String("request_id", RequestID(r.Context())))
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(v)
}
