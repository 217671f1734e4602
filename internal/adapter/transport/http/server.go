package http_server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dayanaadylkhanova/pageviews/internal/entity"
	"github.com/dayanaadylkhanova/pageviews/internal/service"
	"github.com/dayanaadylkhanova/pageviews/pkg/pageviews"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type Server struct {
	log     *zap.Logger
	addr    string
	stats   service.StatsPort
	httpSrv *http.Server
}

func NewServer(log *zap.Logger, addr string, stats service.StatsPort) *Server {
	s := &Server{log: log, addr: addr, stats: stats}
	s.httpSrv = &http.Server{Addr: addr, Handler: s.Routes()}
	return s
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(zapLogger(s.log))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	r.Get("/articles/{project}", s.handleArticles())
	r.Get("/projects", s.handleProjects())
	r.Get("/top/{project}", s.handleTop())
	return r
}

func (s *Server) Start() error {
	s.log.Info("http listen", zap.String("addr", s.addr))
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

func zapLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info("http",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.Duration("latency", time.Since(start)),
			)
		})
	}
}

func (s *Server) handleArticles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		resp, err := s.stats.ArticleViews(r.Context(), entity.ArticleViewsRequest{
			Project:     chi.URLParam(r, "project"),
			Articles:    q["article"],
			Access:      q.Get("access"),
			Agent:       q.Get("agent"),
			Granularity: q.Get("granularity"),
			Start:       q.Get("start"),
			End:         q.Get("end"),
		})
		if err != nil {
			s.writeError(w, err)
			return
		}
		writeJSON(w, resp)
	}
}

func (s *Server) handleProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		resp, err := s.stats.ProjectViews(r.Context(), entity.ProjectViewsRequest{
			Projects:    q["project"],
			Access:      q.Get("access"),
			Agent:       q.Get("agent"),
			Granularity: q.Get("granularity"),
			Start:       q.Get("start"),
			End:         q.Get("end"),
		})
		if err != nil {
			s.writeError(w, err)
			return
		}
		writeJSON(w, resp)
	}
}

func (s *Server) handleTop() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		req := entity.TopArticlesRequest{
			Project: chi.URLParam(r, "project"),
			Access:  q.Get("access"),
		}
		for _, f := range []struct {
			name string
			dst  *int
		}{
			{"year", &req.Year}, {"month", &req.Month}, {"day", &req.Day}, {"limit", &req.Limit},
		} {
			n, err := parseOptionalInt(q.Get(f.name))
			if err != nil {
				http.Error(w, "invalid "+f.name, http.StatusBadRequest)
				return
			}
			*f.dst = n
		}

		resp, err := s.stats.TopArticles(r.Context(), req)
		if err != nil {
			s.writeError(w, err)
			return
		}
		writeJSON(w, resp)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	var apiErr *pageviews.APIError
	switch {
	case errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, pageviews.ErrInvalidDate),
		errors.Is(err, pageviews.ErrInvalidGranularity):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500:
		http.Error(w, apiErr.Error(), apiErr.Status)
	default:
		s.log.Error("upstream", zap.Error(err))
		http.Error(w, "upstream error", http.StatusBadGateway)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func parseOptionalInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
