package httpapi

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/1broseidon/wmhttp/internal/config"
	"github.com/1broseidon/wmhttp/internal/platform"
)

// Server exposes the window manager over HTTP.
type Server struct {
	cfg     *config.Config
	backend platform.Backend
	auth    *Authenticator
	logger  *slog.Logger
	router  *chi.Mux

	// backendMu serializes window-manager access so requests are handled
	// one at a time, as the WM itself would process them.
	backendMu sync.Mutex

	lifecycleMu sync.Mutex
	listener    net.Listener
	httpServer  *http.Server
}

// NewServer creates a server for cfg backed by backend. A nil logger uses slog.Default().
func NewServer(cfg *config.Config, backend platform.Backend, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if backend == nil {
		return nil, errors.New("window manager backend is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		cfg:     cfg,
		backend: backend,
		auth:    NewAuthenticator(cfg.CredentialDigest),
		logger:  logger,
	}
	s.router = s.routes()
	return s, nil
}

// Handler returns the request handler, for embedding or tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start binds the IPv4 listen address and serves in the background.
func (s *Server) Start() error {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()

	if s.httpServer != nil {
		return errors.New("control server already started")
	}

	listener, err := net.Listen("tcp4", s.cfg.Listen)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Listen, err)
	}

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}
	s.listener = listener
	s.httpServer = srv

	s.logger.Info("control server listening", "addr", listener.Addr().String())

	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("control server failed", "error", err)
		}
	}()
	return nil
}

// Stop closes the listener and every open connection immediately; in-flight
// requests are not drained. Stop on a stopped server is a no-op, and a
// stopped server may be started again.
func (s *Server) Stop() {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()

	if s.httpServer == nil {
		return
	}
	if err := s.httpServer.Close(); err != nil {
		s.logger.Warn("control server close failed", "error", err)
	}
	s.httpServer = nil
	s.listener = nil
	s.logger.Info("control server stopped")
}

// Addr returns the bound address, or nil when the server is not running.
func (s *Server) Addr() net.Addr {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// routes builds the dispatcher. Middleware order is the precedence order:
// OPTIONS is answered before authentication, and authentication runs before
// route matching so unknown paths still need a valid credential.
func (s *Server) routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(s.logRequests)
	r.Use(s.recoverPanics)
	r.Use(s.parse)
	r.Use(s.preflight)
	r.Use(s.authenticate)

	r.Get("/windows", s.handleListWindows)
	r.Get("/state", s.handleState)
	r.Post("/move-window", s.handleMoveWindow)

	r.NotFound(s.handleNotFound)
	r.MethodNotAllowed(s.handleNotFound)
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start))
	})
}

// recoverPanics turns a panicking handler into a 500 that still carries the
// CORS headers. http.ErrAbortHandler is re-raised for net/http to handle.
func (s *Server) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			s.logger.Error("panic serving request",
				"method", r.Method,
				"path", r.URL.Path,
				"panic", rec,
				"stack", string(debug.Stack()))
			s.respond(w, &Request{Path: r.URL.Path, Headers: lastHeaderValues(r.Header)}, http.StatusInternalServerError, nil)
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) parse(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := ParseRequest(r)
		if err != nil {
			s.logger.Debug("request parse failed", "path", r.URL.Path, "error", err)
			s.respond(w, &Request{}, http.StatusBadRequest, nil)
			return
		}
		next.ServeHTTP(w, r.WithContext(withRequest(r.Context(), req)))
	})
}

func (s *Server) preflight(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			s.respond(w, requestFrom(r.Context()), http.StatusOK, nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := requestFrom(r.Context())
		if !s.auth.Admit(req.Credential()) {
			s.respond(w, req, http.StatusUnauthorized, nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) respond(w http.ResponseWriter, req *Request, status int, data any) {
	if err := writeJSON(w, req.Origin(), status, data); err != nil {
		s.logger.Error("failed to encode response", "path", req.Path, "error", err)
	}
}
