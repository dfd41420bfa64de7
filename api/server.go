// Package api - Thin HTTP layer over the conversion packages
// The API only decodes requests, calls core/conversion or core/table, and
// serializes the result. It never does arithmetic itself.
package api

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"basecalc/core/conversion"
	"basecalc/core/output"
	"basecalc/core/table"
	apperrors "basecalc/internal/errors"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 1 << 20

// Limits bounds the work a single request may ask for
type Limits struct {
	MaxSteps         int
	MaxDecimalPlaces int32
	MaxTableEntries  int
}

// DefaultLimits returns the limits used when none are configured
func DefaultLimits() Limits {
	return Limits{
		MaxSteps:         1000,
		MaxDecimalPlaces: 100,
		MaxTableEntries:  36,
	}
}

// ResultCache stores serialized conversions keyed by request hash
type ResultCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte) error
}

// Server is the API server
type Server struct {
	router   chi.Router
	version  string
	logger   *zap.Logger
	cache    ResultCache
	limits   Limits
	registry *prometheus.Registry
	metrics  *metrics
}

// Option configures a Server
type Option func(*Server)

// WithLogger sets the logger; the default discards logs
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithLimits replaces the default request limits
func WithLimits(limits Limits) Option {
	return func(s *Server) {
		s.limits = limits
	}
}

// WithCache caches /convert results
func WithCache(cache ResultCache) Option {
	return func(s *Server) {
		s.cache = cache
	}
}

// NewServer creates a new API server
func NewServer(version string, opts ...Option) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		version:  version,
		logger:   zap.NewNop(),
		limits:   DefaultLimits(),
		registry: prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics = newMetrics(s.registry)
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.Use(s.instrument)

	s.router.Post("/convert", s.handleConvert)
	s.router.Post("/table", s.handleTable)
	s.router.Get("/health", s.handleHealth)
	s.router.Get("/version", s.handleVersion)
	s.router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
}

// handleConvert handles POST /convert
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req ConvertRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	maxSteps := conversion.DefaultMaxSteps
	if req.MaxSteps != nil {
		maxSteps = *req.MaxSteps
	}
	if msg := s.checkLimits(maxSteps, req.DecimalPlaces); msg != "" {
		s.writeError(w, "VALIDATION_ERROR", msg, http.StatusBadRequest)
		return
	}

	key := computeInputHash(&req)
	conv, ok := s.cached(r.Context(), key)
	if !ok {
		trace, err := conversion.Convert(conversion.Request{
			Input:      req.Input,
			InputBase:  req.InputBase,
			OutputBase: req.OutputBase,
			MaxSteps:   maxSteps,
		})
		if err != nil {
			s.writeFailure(w, "converting "+req.Input, err)
			return
		}

		conv = output.NewConversion(req.Input, req.InputBase, req.OutputBase, trace)
		if req.DecimalPlaces > 0 {
			value, err := conversion.DecimalValue(req.Input, req.InputBase, req.DecimalPlaces)
			if err != nil {
				s.writeFailure(w, "computing decimal value", err)
				return
			}
			conv.Decimal = value.StringFixed(req.DecimalPlaces)
		}

		s.logger.Debug("converted",
			zap.String("input", req.Input),
			zap.Int("from", req.InputBase),
			zap.Int("to", req.OutputBase),
			zap.String("result", conv.Result),
		)
		s.store(r.Context(), key, conv)
	}

	s.writeJSON(w, ConvertResponse{
		Conversion: conv,
		Metadata:   s.metadata(key, start),
	}, http.StatusOK)
}

// handleTable handles POST /table
func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req TableRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Entries) == 0 {
		s.writeError(w, "VALIDATION_ERROR", "entries is required", http.StatusBadRequest)
		return
	}

	if len(req.Entries) > s.limits.MaxTableEntries {
		s.writeError(w, "VALIDATION_ERROR",
			fmt.Sprintf("at most %d entries allowed, got %d", s.limits.MaxTableEntries, len(req.Entries)),
			http.StatusBadRequest)
		return
	}

	maxSteps := table.DefaultMaxSteps
	if req.MaxSteps != nil {
		maxSteps = *req.MaxSteps
	}
	if msg := s.checkLimits(maxSteps, 0); msg != "" {
		s.writeError(w, "VALIDATION_ERROR", msg, http.StatusBadRequest)
		return
	}

	report := table.New()
	for _, e := range req.Entries {
		if err := report.Add(e.Value, e.Base); err != nil {
			s.writeFailure(w, "adding entry", err)
			return
		}
	}
	rows, err := report.Results(maxSteps)
	if err != nil {
		s.writeFailure(w, "tabulating", err)
		return
	}

	resp := TableResponse{
		Bases: report.Bases(),
		Rows:  make([]TableRow, len(rows)),
	}
	for i, row := range rows {
		resp.Rows[i] = TableRow{Label: row.Entry.Label(), Cells: row.Cells}
	}
	resp.Metadata = s.metadata(computeInputHash(&req), start)

	s.writeJSON(w, resp, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "basecalc",
		"api_version": "v1",
	}, http.StatusOK)
}

func (s *Server) metadata(inputHash string, start time.Time) *ResponseMetadata {
	return &ResponseMetadata{
		InputHash:  inputHash,
		Version:    s.version,
		DurationMs: time.Since(start).Milliseconds(),
	}
}

// checkLimits describes the first limit the request exceeds, or returns ""
func (s *Server) checkLimits(maxSteps int, decimalPlaces int32) string {
	if maxSteps > s.limits.MaxSteps {
		return fmt.Sprintf("max_steps must be at most %d, got %d", s.limits.MaxSteps, maxSteps)
	}
	if decimalPlaces > s.limits.MaxDecimalPlaces {
		return fmt.Sprintf("decimal_places must be at most %d, got %d", s.limits.MaxDecimalPlaces, decimalPlaces)
	}
	return ""
}

// writeFailure maps a conversion error onto a status code
func (s *Server) writeFailure(w http.ResponseWriter, message string, err error) {
	e := apperrors.Classify(message, err)
	status := http.StatusInternalServerError
	switch e.Type {
	case apperrors.TypeInput:
		status = http.StatusBadRequest
	case apperrors.TypeArithmetic:
		status = http.StatusUnprocessableEntity
	default:
		s.logger.Error("request failed", zap.Error(err))
	}
	s.writeError(w, string(e.Type), e.Error(), status)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("writing response", zap.Error(err))
	}
}

// cached looks key up, treating cache failures and undecodable entries as
// misses
func (s *Server) cached(ctx context.Context, key string) (output.Conversion, bool) {
	var conv output.Conversion
	if s.cache == nil {
		return conv, false
	}
	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache get failed", zap.Error(err))
		return conv, false
	}
	if !ok {
		return conv, false
	}
	if err := json.Unmarshal(data, &conv); err != nil {
		s.logger.Warn("cache entry unreadable", zap.String("key", key), zap.Error(err))
		return conv, false
	}
	s.metrics.cacheHits.Inc()
	return conv, true
}

func (s *Server) store(ctx context.Context, key string, conv output.Conversion) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(conv)
	if err != nil {
		s.logger.Warn("encoding cache entry", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, data); err != nil {
		s.logger.Warn("cache set failed", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}, status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func computeInputHash(req interface{}) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

