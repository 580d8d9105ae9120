package preview

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/klauspost/compress/gzhttp"
	"github.com/zishang520/socket.io/v2/socket"

	"github.com/vk/surfgrid/internal/ctxlog"
	"github.com/vk/surfgrid/internal/export"
	"github.com/vk/surfgrid/internal/scene"
)

// SceneEvent is the socket.io event name snapshots are pushed under. Viewers
// may emit "refresh" to request the current snapshot again.
const SceneEvent = "scene"

// Config holds the preview server settings.
type Config struct {
	Addr      string        // listen address
	ScenePath string        // scene file or directory
	Watch     bool          // rebuild and push on scene file changes
	StepsCap  int           // clamp plot sampling steps, 0 leaves them alone
	Debounce  time.Duration // quiet period before a watched rebuild
}

// Server serves scene snapshots to socket.io viewers and over plain HTTP.
type Server struct {
	cfg Config

	mu       sync.RWMutex
	snapshot *export.Scene
	clients  map[socket.SocketId]*socket.Socket

	io      *socket.Server
	http    *http.Server
	ln      net.Listener
	watcher *watcher
	errCh   chan error
}

// New creates an unstarted preview server.
func New(cfg Config) *Server {
	if cfg.Debounce <= 0 {
		cfg.Debounce = 250 * time.Millisecond
	}
	return &Server{
		cfg:     cfg,
		clients: make(map[socket.SocketId]*socket.Socket),
		errCh:   make(chan error, 1),
	}
}

// Start loads the scene, binds the listener and begins serving in the
// background. The initial load must succeed; later reloads keep the last
// good snapshot on failure.
func (s *Server) Start(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	snap, err := s.buildSnapshot(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()

	if s.cfg.Watch {
		w, err := newWatcher(s.cfg.ScenePath, s.cfg.Debounce, func() { s.reload(ctx) })
		if err != nil {
			return err
		}
		if err := w.Start(ctx); err != nil {
			w.Close()
			return err
		}
		s.watcher = w
	}

	io := socket.NewServer(nil, nil)
	s.io = io
	io.On("connection", func(clients ...any) {
		client := clients[0].(*socket.Socket)
		s.handleConnection(ctx, client)
	})

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", io.ServeHandler(nil))
	mux.Handle("/scene", withCompression(http.HandlerFunc(s.sceneHandler(ctx))))
	mux.HandleFunc("/health", s.healthHandler(ctx))

	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		if s.watcher != nil {
			s.watcher.Close()
		}
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	s.ln = ln
	s.http = &http.Server{Handler: mux}

	go func() {
		logger.Info("🚀 Preview server starting", "address", fmt.Sprintf("http://%s/", ln.Addr()))
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.errCh <- err
		}
	}()
	return nil
}

// Run starts the server and blocks until ctx is cancelled or serving fails.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return s.Shutdown(ctx)
	case err := <-s.errCh:
		s.Shutdown(ctx)
		return fmt.Errorf("preview server failed: %w", err)
	}
}

// Shutdown closes the watcher, the socket.io server and the HTTP listener.
func (s *Server) Shutdown(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Info("Shutting down preview server...")

	if s.watcher != nil {
		if err := s.watcher.Close(); err != nil {
			logger.Error("File watcher close failed", "error", err)
		}
	}
	if s.io != nil {
		s.io.Close(nil)
	}
	if s.http == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		logger.Error("Preview server shutdown failed", "error", err)
		return err
	}
	logger.Debug("Preview server shut down gracefully.")
	return nil
}

// Addr returns the bound listen address once Start has succeeded.
func (s *Server) Addr() string {
	if s.ln == nil {
		return s.cfg.Addr
	}
	return s.ln.Addr().String()
}

// Viewers returns the number of connected socket.io clients.
func (s *Server) Viewers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// Snapshot returns the snapshot viewers currently receive.
func (s *Server) Snapshot() *export.Scene {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *Server) buildSnapshot(ctx context.Context) (*export.Scene, error) {
	doc, err := scene.LoadPathWith(ctx, s.cfg.ScenePath, scene.Options{StepsCap: s.cfg.StepsCap})
	if err != nil {
		return nil, err
	}
	return export.Snapshot(ctx, doc), nil
}

// reload rebuilds the snapshot after a file change and pushes it to every
// connected viewer. Failures keep the previous snapshot so a half-saved
// scene file does not blank screens.
func (s *Server) reload(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)

	snap, err := s.buildSnapshot(ctx)
	if err != nil {
		logger.Error("Scene reload failed, keeping previous snapshot", "error", err)
		return
	}

	s.mu.Lock()
	s.snapshot = snap
	clients := make([]*socket.Socket, 0, len(s.clients))
	for _, c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()

	for _, c := range clients {
		c.Emit(SceneEvent, snap)
	}
	logger.Info("Scene rebuilt and pushed", "plots", len(snap.Plots), "viewers", len(clients))
}

func (s *Server) handleConnection(ctx context.Context, client *socket.Socket) {
	logger := ctxlog.FromContext(ctx)

	s.mu.Lock()
	s.clients[client.Id()] = client
	snap := s.snapshot
	viewers := len(s.clients)
	s.mu.Unlock()
	logger.Info("Viewer connected", "sid", client.Id(), "viewers", viewers)

	client.On("refresh", func(...any) {
		s.mu.RLock()
		snap := s.snapshot
		s.mu.RUnlock()
		client.Emit(SceneEvent, snap)
	})

	client.On("disconnect", func(...any) {
		s.mu.Lock()
		delete(s.clients, client.Id())
		viewers := len(s.clients)
		s.mu.Unlock()
		logger.Info("Viewer disconnected", "sid", client.Id(), "viewers", viewers)
	})

	client.Emit(SceneEvent, snap)
}

func (s *Server) sceneHandler(ctx context.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctxlog.FromContext(ctx).Debug("Scene endpoint hit.", "remote_addr", r.RemoteAddr)

		s.mu.RLock()
		snap := s.snapshot
		s.mu.RUnlock()

		w.Header().Set("Content-Type", "application/json")
		if err := export.Write(w, snap); err != nil {
			ctxlog.FromContext(ctx).Error("Failed to write scene response", "error", err)
		}
	}
}

func (s *Server) healthHandler(ctx context.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctxlog.FromContext(ctx).Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "OK")
	}
}

// withCompression wraps h with gzip compression middleware. The socket.io
// endpoint stays unwrapped: its websocket upgrade must not go through a
// wrapping response writer.
func withCompression(h http.Handler) http.Handler {
	wrapper, err := gzhttp.NewWrapper(gzhttp.MinSize(1024))
	if err != nil {
		return h
	}
	return wrapper(h)
}
