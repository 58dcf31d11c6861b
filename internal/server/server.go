package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mateo/resume-checkup/internal/catalog"
	"github.com/mateo/resume-checkup/internal/config"
	"github.com/mateo/resume-checkup/internal/logging"
	"github.com/mateo/resume-checkup/internal/payments"
	"github.com/mateo/resume-checkup/internal/pipeline"
	"github.com/mateo/resume-checkup/internal/rendering"
	"github.com/mateo/resume-checkup/internal/server/middleware"
	"github.com/mateo/resume-checkup/internal/server/ratelimit"
	"github.com/mateo/resume-checkup/internal/session"
	"github.com/mateo/resume-checkup/internal/skills"
)

// storeCleanupInterval is how often expired sessions are evicted.
const storeCleanupInterval = 10 * time.Minute

// PDFRenderer renders report HTML to PDF bytes.
type PDFRenderer interface {
	PDF(ctx context.Context, html string) ([]byte, error)
}

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	cfg         *config.Config
	log         *zap.Logger
	store       *session.Store
	runner      *pipeline.Runner
	provider    payments.Provider
	tokens      *TokenService
	rateLimiter *ratelimit.Limiter
	pdf         PDFRenderer

	// now is the clock for the daily scan gate; tests override it.
	now func() time.Time
}

// New creates a server instance wired for production: catalog and vocabulary
// from disk, Stripe when STRIPE_SECRET_KEY is set, a fake in-memory provider
// otherwise.
func New(cfg *config.Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	vocab := skills.Default()
	if cfg.Vocabulary != "" {
		loaded, err := skills.Load(cfg.Vocabulary)
		if err != nil {
			return nil, fmt.Errorf("failed to load vocabulary: %w", err)
		}
		vocab = loaded
	}

	jobs, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to load job catalog: %w", err)
	}

	tokenCfg, err := config.NewTokenConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create token config: %w", err)
	}

	var provider payments.Provider
	if secretKey := os.Getenv("STRIPE_SECRET_KEY"); secretKey != "" {
		provider = payments.NewStripeProvider(payments.StripeConfig{
			SecretKey:  secretKey,
			PriceID:    cfg.StripePriceID,
			SuccessURL: cfg.CheckoutSuccess,
			CancelURL:  cfg.CheckoutCancel,
		})
	} else {
		log.Warn("STRIPE_SECRET_KEY not set, using in-memory fake payment provider")
		provider = payments.NewFakeProvider()
	}

	s := &Server{
		cfg:         cfg,
		log:         log,
		store:       session.NewStore(time.Duration(cfg.SessionTTLHours)*time.Hour, storeCleanupInterval),
		runner:      pipeline.NewRunner(vocab, jobs, log),
		provider:    provider,
		tokens:      NewTokenService(tokenCfg),
		rateLimiter: ratelimit.NewLimiter(ratelimit.DefaultConfig()),
		pdf:         rendering.NewPDFPrinter(),
		now:         time.Now,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // PDF rendering can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the router with middleware applied.
func (s *Server) routes() http.Handler {
	authed := middleware.SessionAuth(s.tokens.AsTokenValidator())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /sessions", s.handleCreateSession)
	mux.Handle("GET /sessions/me", authed(http.HandlerFunc(s.handleSessionMe)))
	mux.Handle("POST /scan", authed(http.HandlerFunc(s.handleScan)))
	mux.Handle("POST /bullets/export", authed(http.HandlerFunc(s.handleExportBullets)))
	mux.Handle("POST /billing/checkout", authed(http.HandlerFunc(s.handleCheckout)))
	mux.Handle("GET /billing/confirm", authed(http.HandlerFunc(s.handleConfirm)))

	return s.withRateLimit(s.withLogging(s.withCORS(mux)))
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.log.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.rateLimiter.Stop()
	s.store.Stop()

	s.log.Info("server stopped")
	return nil
}

// withRateLimit adds per-client rate limiting.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; a deployment behind a trusted
// proxy would read X-Forwarded-For instead.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
