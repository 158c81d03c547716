// Package web serves the theme preference over HTTP: a preview page whose
// root element carries the dark class, a JSON API, websocket push and
// Prometheus metrics.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/bnema/colorpref/internal/application/port"
	"github.com/bnema/colorpref/internal/application/usecase"
	"github.com/bnema/colorpref/internal/domain/entity"
	"github.com/bnema/colorpref/internal/logging"
	"github.com/bnema/colorpref/internal/reactive"
	"github.com/bnema/colorpref/internal/ui/document"
	"github.com/bnema/colorpref/internal/ui/theme"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
	maxBodyBytes      = 1 << 10
)

//go:embed templates/index.html.tmpl
var templatesFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html.tmpl"))

// Preference is what the server needs from the theme preference.
type Preference interface {
	port.ThemePreference
	Snapshot() theme.Snapshot
	Subscribe(run reactive.Subscriber[entity.Effective], invalidate func()) reactive.Unsubscriber
	SubscribeOption(run reactive.Subscriber[entity.ThemeOption], invalidate func()) reactive.Unsubscriber
}

// Options configures a Server.
type Options struct {
	Preference Preference

	// Document is rendered as the page root. Defaults to document.Default().
	Document *document.Root

	// Registry receives the metrics. Defaults to a fresh registry with the
	// Go and process collectors.
	Registry *prometheus.Registry
}

// Server is the HTTP surface of the preference.
type Server struct {
	pref     Preference
	change   *usecase.ChangeThemeUseCase
	root     *document.Root
	hub      *Hub
	metrics  *Metrics
	registry *prometheus.Registry
	router   chi.Router
	logger   zerolog.Logger

	mu     sync.Mutex
	unsubs []func()
}

// NewServer creates a server and starts following the preference.
func NewServer(ctx context.Context, opts Options) (*Server, error) {
	if opts.Preference == nil {
		return nil, errors.New("web: preference is required")
	}
	root := opts.Document
	if root == nil {
		root = document.Default()
	}
	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	logger := *logging.FromContext(logging.WithComponent(ctx, "web"))
	metrics := NewMetrics(registry)

	s := &Server{
		pref:     opts.Preference,
		change:   usecase.NewChangeThemeUseCase(opts.Preference),
		root:     root,
		hub:      NewHub(logger, metrics.setClients),
		metrics:  metrics,
		registry: registry,
		logger:   logger,
	}
	s.router = s.routes()
	s.follow()
	return s, nil
}

// follow pushes every option or effective change to websocket clients and
// metrics. The first delivery of each subscription only primes state.
func (s *Server) follow() {
	primedOption := false
	unsubOption := s.pref.SubscribeOption(func(o entity.ThemeOption) {
		if primedOption {
			s.metrics.observeOption(o)
		}
		primedOption = true
		s.hub.Broadcast(s.pref.Snapshot())
	}, nil)

	primedEffective := false
	unsubEffective := s.pref.Subscribe(func(e entity.Effective) {
		s.metrics.observeEffective(e, primedEffective)
		primedEffective = true
		snap := s.pref.Snapshot()
		snap.Effective = e
		s.hub.Broadcast(snap)
	}, nil)

	s.mu.Lock()
	s.unsubs = append(s.unsubs, unsubOption, unsubEffective)
	s.mu.Unlock()
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/api/theme", s.handleGetTheme)
	r.Put("/api/theme", s.handlePutTheme)
	r.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		s.hub.ServeWS(w, r, s.pref.Snapshot)
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Hub returns the websocket hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

type indexData struct {
	Class    string
	Snapshot theme.Snapshot
	Options  []entity.ThemeOption
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	data := indexData{
		Class:    s.root.ClassAttr(),
		Snapshot: s.pref.Snapshot(),
		Options:  entity.ThemeOptions(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		s.logger.Error().Err(err).Msg("render index")
	}
}

func (s *Server) handleGetTheme(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.pref.Snapshot())
}

type putThemeRequest struct {
	Option string `json:"option"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handlePutTheme(w http.ResponseWriter, r *http.Request) {
	var req putThemeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	out, err := s.change.Execute(r.Context(), usecase.ChangeThemeInput{Option: req.Option})
	switch {
	case errors.Is(err, entity.ErrInvalidThemeOption):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	case err != nil:
		s.logger.Error().Err(err).Str("option", req.Option).Msg("change theme")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "could not save theme option"})
		return
	}
	// The effective cell may still be behind if an OS refresh is delivering.
	snap := s.pref.Snapshot()
	snap.Option = out.Current
	snap.Effective = out.Effective
	writeJSON(w, http.StatusOK, snap)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// requestLogger logs each request at debug level and records HTTP metrics
// under the matched chi route pattern.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ctx := logging.WithContext(r.Context(), s.logger)

		next.ServeHTTP(ww, r.WithContext(ctx))

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)

		s.metrics.requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
		s.metrics.requestDuration.WithLabelValues(route).Observe(elapsed.Seconds())

		s.logger.Debug().
			Str("method", r.Method).
			Str("route", route).
			Int("status", status).
			Dur("elapsed", elapsed).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("http request")
	})
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", ln.Addr().String()).Msg("serving theme preference")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.hub.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Close stops following the preference and disconnects websocket clients.
func (s *Server) Close() {
	s.mu.Lock()
	unsubs := s.unsubs
	s.unsubs = nil
	s.mu.Unlock()

	for _, unsub := range unsubs {
		unsub()
	}
	s.hub.Close()
}
