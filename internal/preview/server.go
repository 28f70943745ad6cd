package preview

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/KunalPoonia/smart-attendance-system/internal/config"
	"github.com/KunalPoonia/smart-attendance-system/internal/enhance"
	"github.com/KunalPoonia/smart-attendance-system/internal/logging"
)

// reloadScript is injected before </body> in every served page. It opens
// a WebSocket to the preview server and refreshes when told to.
const reloadScript = `<script>
(function() {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/ws");
  ws.onmessage = function(ev) {
    if (ev.data === "reload") {
      location.reload();
    }
  };
})();
</script>`

// Config holds the preview server configuration
type Config struct {
	Addr   string // Listen address, e.g. "localhost:8675"
	Source string // Path to the HTML file to enhance and serve
	Width  int    // Default simulated viewport width in pixels
}

// Server serves an enhanced page with live reload
type Server struct {
	config  *Config
	cfg     *config.Config
	clients *clientRegistry
	httpSrv *http.Server
}

// New creates a preview server for the given source file
func New(sc *Config, cfg *config.Config) (*Server, error) {
	if sc.Source == "" {
		return nil, fmt.Errorf("no source file given")
	}
	if _, err := os.Stat(sc.Source); err != nil {
		return nil, fmt.Errorf("cannot read source file: %w", err)
	}

	s := &Server{
		config:  sc,
		cfg:     cfg,
		clients: newClientRegistry(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/ws", s.handleWebSocket)

	s.httpSrv = &http.Server{
		Addr:              sc.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s, nil
}

// Run starts the server and blocks until the context is cancelled or the
// listener fails.
func (s *Server) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory rather than the file itself. Editors commonly
	// replace files on save, which drops a watch placed on the file.
	dir := filepath.Dir(s.config.Source)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	go s.watchLoop(ctx, watcher)

	logging.Info("Preview server listening",
		zap.String("addr", s.config.Addr),
		zap.String("source", s.config.Source),
		zap.Int("width", s.config.Width),
	)

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logging.Info("Shutting down preview server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
			logging.Error("Error during shutdown", zap.Error(err))
		}
		s.clients.closeAll()
		logging.Sync()
		return nil
	case err := <-errChan:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// watchLoop broadcasts a reload whenever the source file changes
func (s *Server) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	base := filepath.Base(s.config.Source)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			n := s.clients.broadcastReload()
			logging.LogReload(s.config.Source, n)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logging.Warn("File watcher error", zap.Error(err))
		}
	}
}

// handleIndex serves the enhanced page
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	width := s.config.Width
	if q := r.URL.Query().Get("width"); q != "" {
		parsed, err := strconv.Atoi(q)
		if err != nil {
			http.Error(w, "invalid width parameter", http.StatusBadRequest)
			return
		}
		width = parsed
	}

	src, err := os.ReadFile(s.config.Source)
	if err != nil {
		logging.Error("Failed to read source file",
			zap.String("path", s.config.Source),
			zap.Error(err),
		)
		http.Error(w, "failed to read source file", http.StatusInternalServerError)
		return
	}

	out, err := enhance.Apply(bytes.NewReader(src), s.cfg, width)
	if err != nil {
		logging.Error("Failed to enhance page",
			zap.String("path", s.config.Source),
			zap.Error(err),
		)
		http.Error(w, "failed to enhance page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(injectReloadScript(out)))

	logging.Debug("Served enhanced page",
		zap.String("remote_addr", r.RemoteAddr),
		zap.Int("width", width),
	)
}

// injectReloadScript places the live-reload script before the closing
// body tag, or appends it when no body tag is present.
func injectReloadScript(doc string) string {
	idx := strings.LastIndex(doc, "</body>")
	if idx < 0 {
		return doc + reloadScript
	}
	return doc[:idx] + reloadScript + doc[idx:]
}
