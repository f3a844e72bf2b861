package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/finners68/textract-proxy/config"
	"github.com/finners68/textract-proxy/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	*config.Config

	router chi.Router
}

func New(cfg *config.Config) (*Server, error) {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(requestLogger)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	handler, err := api.New(cfg)

	if err != nil {
		return nil, err
	}

	router.Route("/v1", handler.Attach)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return &Server{
		Config: cfg,

		router: router,
	}, nil
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) ListenAndServe() error {
	return http.ListenAndServe(s.Address, s.router)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		slog.InfoContext(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}
