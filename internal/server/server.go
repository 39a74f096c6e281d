// Package server exposes the graph pipeline over HTTP for `scholarnet serve`.
package server

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/scholarnet/pkg/analysis"
	"github.com/matzehuels/scholarnet/pkg/buildinfo"
	"github.com/matzehuels/scholarnet/pkg/builds"
	"github.com/matzehuels/scholarnet/pkg/coauthor"
	apperr "github.com/matzehuels/scholarnet/pkg/errors"
	"github.com/matzehuels/scholarnet/pkg/integrations/dblp"
	"github.com/matzehuels/scholarnet/pkg/pipeline"
)

const (
	shutdownTimeout = 10 * time.Second
	cleanupInterval = 10 * time.Minute
)

// Options configures a Server.
type Options struct {
	// Render holds default render options; query parameters override them.
	Render   pipeline.Options
	BuildTTL time.Duration
	Logger   *log.Logger
	// BaseURL is the only site profiles may be fetched from. Empty means the
	// backend's own base URL, or DBLP when the backend has none.
	BaseURL string
}

// baseURLer is implemented by backends that know the site they fetch from,
// such as *dblp.Client.
type baseURLer interface {
	BaseURL() string
}

// Server routes HTTP requests to a pipeline runner.
type Server struct {
	runner *pipeline.Runner
	store  builds.Store
	host   string
	opts   Options
	logger *log.Logger
	router chi.Router
}

// New creates a server. A nil store keeps builds in memory.
func New(runner *pipeline.Runner, store builds.Store, opts Options) *Server {
	if store == nil {
		store = builds.NewMemoryStore()
	}
	if opts.Logger == nil {
		opts.Logger = runner.Logger
	}
	if opts.BuildTTL <= 0 {
		opts.BuildTTL = builds.DefaultTTL
	}
	if opts.BaseURL == "" {
		opts.BaseURL = dblp.DefaultBaseURL
		if b, ok := runner.Backend.(baseURLer); ok && b.BaseURL() != "" {
			opts.BaseURL = b.BaseURL()
		}
	}
	s := &Server{
		runner: runner,
		store:  store,
		host:   hostOf(opts.BaseURL),
		opts:   opts,
		logger: opts.Logger,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/graph", s.handleGraph(pipeline.FormatHTML))
	r.Get("/graph.json", s.handleGraph(pipeline.FormatJSON))
	r.Get("/stats", s.handleStats)
	r.Post("/graphs", s.handleCreateBuild)
	r.Get("/graphs/{id}", s.handleGetBuild)
	r.Delete("/graphs/{id}", s.handleDeleteBuild)
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run listens on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.cleanupLoop(ctx, cleanupInterval)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// cleanupLoop drops expired builds every interval until ctx is canceled.
func (s *Server) cleanupLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.store.Cleanup(ctx)
			if err != nil {
				s.logger.Warn("build cleanup failed", "error", err)
				continue
			}
			if n > 0 {
				s.logger.Debug("removed expired builds", "count", n)
			}
		}
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleGraph(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := s.renderOptions(r, format)
		profile, err := s.fetch(r)
		if err != nil {
			s.writeError(w, err)
			return
		}
		g := s.runner.Build(r.Context(), profile)
		out, err := s.runner.Render(r.Context(), g, opts)
		if err != nil {
			s.writeError(w, err)
			return
		}
		writeArtifact(w, format, out[format])
	}
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	top, err := intParam(r, "top", 10)
	if err != nil {
		s.writeError(w, err)
		return
	}
	profile, err := s.fetch(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	g := s.runner.Build(r.Context(), profile)
	writeJSON(w, http.StatusOK, analysis.Summarize(g, top))
}

type buildResponse struct {
	ID        string    `json:"id"`
	Locator   string    `json:"locator"`
	Primary   string    `json:"primary"`
	Records   int       `json:"records"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Server) handleCreateBuild(w http.ResponseWriter, r *http.Request) {
	profile, err := s.fetch(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	b := builds.New(r.URL.Query().Get("q"), profile, s.opts.BuildTTL)
	if err := s.store.Put(r.Context(), b); err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Info("stored build", "id", b.ID, "author", profile.PrimaryAuthor)
	writeJSON(w, http.StatusCreated, buildResponse{
		ID:        b.ID,
		Locator:   profile.Locator,
		Primary:   profile.PrimaryAuthor,
		Records:   len(profile.Records),
		URL:       "/graphs/" + b.ID,
		ExpiresAt: b.ExpiresAt,
	})
}

func (s *Server) handleGetBuild(w http.ResponseWriter, r *http.Request) {
	b, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = pipeline.FormatHTML
	}
	opts := s.renderOptions(r, format)
	out, err := s.runner.Render(r.Context(), b.Graph(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeArtifact(w, format, out[format])
}

func (s *Server) handleDeleteBuild(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := s.store.Get(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// fetch resolves the q parameter and fetches the profile.
func (s *Server) fetch(r *http.Request) (*coauthor.Profile, error) {
	q := r.URL.Query()
	query := q.Get("q")
	if err := apperr.ValidateQuery(query); err != nil {
		return nil, err
	}
	locator, err := s.runner.Resolve(r.Context(), query)
	if err != nil {
		return nil, err
	}
	if err := s.checkLocator(locator); err != nil {
		return nil, err
	}
	refresh, _ := strconv.ParseBool(q.Get("refresh"))
	return s.runner.Fetch(r.Context(), locator, refresh)
}

// checkLocator rejects profile URLs outside the configured site, whether
// passed in directly or found on a search page.
func (s *Server) checkLocator(locator string) error {
	u, err := url.Parse(locator)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || !strings.EqualFold(u.Host, s.host) {
		return apperr.New(apperr.ErrCodeInvalidInput, "profile URL must be on %s", s.host)
	}
	return nil
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Host
}

// renderOptions starts from the server defaults and applies query
// parameters.
func (s *Server) renderOptions(r *http.Request, format string) pipeline.Options {
	opts := s.opts.Render
	opts.Formats = []string{format}
	opts.Logger = s.logger
	q := r.URL.Query()
	for param, dst := range map[string]*string{
		"height":     &opts.Height,
		"width":      &opts.Width,
		"bg_color":   &opts.BgColor,
		"font_color": &opts.FontColor,
	} {
		if v := q.Get(param); v != "" {
			*dst = v
		}
	}
	if v, err := strconv.ParseBool(q.Get("refresh")); err == nil {
		opts.Refresh = v
	}
	if v, err := strconv.ParseBool(q.Get("detailed")); err == nil {
		opts.Detailed = v
	}
	return opts
}

func intParam(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, apperr.New(apperr.ErrCodeInvalidInput, "%s must be a non-negative integer", name)
	}
	return n, nil
}
