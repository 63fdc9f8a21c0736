package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"github.com/snapsell/vision-api/internal/analytics"
	"github.com/snapsell/vision-api/internal/vision"
)

// Server wires the HTTP surface: the analyze endpoint, the health probe,
// CORS, and request logging. It holds no per-request state.
type Server struct {
	registry        *vision.Registry
	analytics       *analytics.Client
	defaultProvider string
}

// New creates a Server. analyticsClient may be nil (analytics disabled).
func New(registry *vision.Registry, analyticsClient *analytics.Client, defaultProvider string) *Server {
	return &Server{
		registry:        registry,
		analytics:       analyticsClient,
		defaultProvider: defaultProvider,
	}
}

// Handler builds the router with CORS and logging middleware applied.
func (s *Server) Handler(allowedOrigins []string) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/analyze-image", s.handleAnalyzeImage).Methods(http.MethodPost)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
	})
	return c.Handler(requestLogger(r))
}

// requestLogger logs one line per request with status and duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sw.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
