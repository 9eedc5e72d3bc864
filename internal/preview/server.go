// Package preview serves a live view of a document file: its canonical
// encoding, the regenerated source, and reload notifications over
// WebSocket when the file changes.
package preview

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kryon-dev/kir/pkg/codegen"
	"github.com/kryon-dev/kir/pkg/ir"
	"github.com/kryon-dev/kir/pkg/kir"
)

// Config configures the preview server.
type Config struct {
	// Path is the document file to serve and watch.
	Path string

	// Addr is the listen address (default: ":8090").
	Addr string

	// Language overrides the metadata language when re-encoding.
	// Empty keeps the document's own language.
	Language string

	// Logger is the structured logger (default: slog.Default()).
	Logger *slog.Logger

	// Registry is the Prometheus registry (default: a fresh registry).
	Registry *prometheus.Registry
}

// Server serves a live view of a document: the canonical encoding,
// the regenerated source, and a WebSocket that pushes reload messages
// whenever the file changes on disk.
type Server struct {
	config   Config
	logger   *slog.Logger
	hub      *ReloadHub
	watcher  *Watcher
	metrics  *metrics
	registry *prometheus.Registry

	mu      sync.RWMutex
	doc     *kir.Document
	root    *ir.Node
	loadErr error
}

// New creates a preview server for the document at config.Path.
// The initial load happens on first request; a load failure is
// reported per request rather than failing construction, so the
// server can come up before the file exists.
func New(config Config) *Server {
	if config.Addr == "" {
		config.Addr = ":8090"
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Registry == nil {
		config.Registry = prometheus.NewRegistry()
	}

	mc := defaultMetricsConfig()
	mc.Registry = config.Registry

	s := &Server{
		config:   config,
		logger:   config.Logger,
		hub:      NewReloadHub(),
		metrics:  newMetrics(mc),
		registry: config.Registry,
	}
	s.watcher = NewWatcher(WatcherConfig{Path: config.Path})
	s.watcher.OnChange(func(c Change) { s.reload(c) })
	s.load()
	return s
}

// Document returns the most recently loaded document, or the load error.
func (s *Server) Document() (*kir.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.doc == nil {
		return nil, kir.ErrMissingRoot
	}
	return s.doc, nil
}

// load reads and decodes the watched file.
func (s *Server) load() {
	doc, err := kir.ReadFile(s.config.Path)

	var root *ir.Node
	if err == nil {
		root, err = kir.Decode(doc)
	}

	s.mu.Lock()
	s.loadErr = err
	if err == nil {
		s.doc = doc
		s.root = root
	}
	s.mu.Unlock()
}

// reload re-reads the document after a file change and notifies clients.
func (s *Server) reload(c Change) {
	if c.Removed {
		s.logger.Warn("document removed", "path", c.Path)
		return
	}

	s.load()

	s.mu.RLock()
	err := s.loadErr
	s.mu.RUnlock()

	if err != nil {
		s.logger.Error("document reload failed", "path", c.Path, "error", err)
		s.metrics.decodeErrors.Inc()
		s.hub.NotifyError(err.Error())
		return
	}

	s.logger.Info("document reloaded", "path", c.Path)
	s.metrics.reloadsTotal.Inc()
	s.hub.ClearError()
	s.hub.NotifyDocument(c.Path)
}

// Router builds the HTTP routes.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(s.requestLogger)
	r.Use(s.metrics.Middleware)
	r.Use(OpenTelemetry(WithRequestFilter(func(req *http.Request) bool {
		return req.URL.Path != "/metrics" && req.URL.Path != "/healthz"
	})))

	r.Get("/", s.handleIndex)
	r.Get("/document", s.handleDocument)
	r.Get("/source", s.handleSource)
	r.Get("/healthz", s.handleHealthz)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Get("/ws", s.handleWebSocket)

	return r
}

// ListenAndServe runs the watcher and HTTP server until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	go s.watcher.Start(ctx)
	defer s.watcher.Stop()
	defer s.hub.Close()

	srv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", s.config.Addr, "path", s.config.Path)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.Document()
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	out := *doc
	if s.config.Language != "" {
		out.Metadata.Language = s.config.Language
	}
	data, err := kir.MarshalIndent(&out)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Write(data)
	w.Write([]byte("\n"))
}

func (s *Server) handleSource(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	root, err := s.root, s.loadErr
	s.mu.RUnlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if root == nil {
		http.Error(w, kir.ErrMissingRoot.Error(), http.StatusUnprocessableEntity)
		return
	}
	src := codegen.Generate(root)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(src))
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Write([]byte(`{"status":"ok"}` + "\n"))
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	s.metrics.wsClients.Inc()
	defer s.metrics.wsClients.Dec()
	s.hub.HandleWebSocket(w, r)
}

// requestLogger logs each request with method, path, status, and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(start),
		)
	})
}

// indexHTML is the minimal viewer page. It renders the canonical
// document and reconnects the reload socket when the connection drops.
const indexHTML = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>KIR Preview</title>
<style>
body { font-family: ui-monospace, monospace; margin: 2rem; }
pre { background: #f6f8fa; padding: 1rem; overflow: auto; }
#error { color: #b91c1c; white-space: pre-wrap; }
</style>
</head>
<body>
<h1>KIR Preview</h1>
<div id="error"></div>
<h2>Document</h2>
<pre id="document"></pre>
<h2>Source</h2>
<pre id="source"></pre>
<script>
(function() {
    'use strict';

    var reconnectDelay = 1000;
    var maxReconnectDelay = 30000;

    function refresh() {
        fetch('/document').then(function(r) { return r.text(); }).then(function(t) {
            document.getElementById('document').textContent = t;
        });
        fetch('/source').then(function(r) { return r.text(); }).then(function(t) {
            document.getElementById('source').textContent = t;
        });
    }

    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        var ws = new WebSocket(protocol + '//' + location.host + '/ws');

        ws.onopen = function() {
            reconnectDelay = 1000;
            refresh();
        };

        ws.onmessage = function(e) {
            var msg;
            try { msg = JSON.parse(e.data); } catch (err) { return; }
            if (msg.type === 'document') {
                document.getElementById('error').textContent = '';
                refresh();
            } else if (msg.type === 'error') {
                document.getElementById('error').textContent = msg.error;
            } else if (msg.type === 'clear') {
                document.getElementById('error').textContent = '';
            }
        };

        ws.onclose = function() {
            setTimeout(connect, reconnectDelay);
            reconnectDelay = Math.min(reconnectDelay * 2, maxReconnectDelay);
        };
    }

    refresh();
    connect();
})();
</script>
</body>
</html>
`
