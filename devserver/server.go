// Package devserver serves a sketch's static files with live reload and a headless snapshot endpoint
//
// File changes under the root are debounced and pushed to open pages over
// server-sent events, or a websocket for clients without EventSource.
package devserver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/gridsketch/config"
	"github.com/lixenwraith/gridsketch/parameter"
	"github.com/lixenwraith/gridsketch/watch"
)

// ErrRoot is returned when the static root is missing or not a directory
var ErrRoot = errors.New("static root is not a directory")

// Server is the development HTTP server
type Server struct {
	root       string
	addr       string
	liveReload bool
	defaults   config.Config
	hub        *Hub
	mux        *http.ServeMux
	files      http.Handler

	upgrader websocket.Upgrader
}

// Option configures a Server
type Option func(*Server)

// WithAddr sets the listen address
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithLiveReload toggles file watching and script injection
func WithLiveReload(enabled bool) Option {
	return func(s *Server) {
		s.liveReload = enabled
	}
}

// WithDefaults sets the configuration snapshots start from
func WithDefaults(cfg config.Config) Option {
	return func(s *Server) {
		s.defaults = cfg
	}
}

// New prepares a server for the static directory root
func New(root string, opts ...Option) (*Server, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRoot, root)
	}

	s := &Server{
		root:       abs,
		addr:       fmt.Sprintf(":%d", parameter.DevServerDefaultPort),
		liveReload: true,
		defaults:   config.Default(),
		hub:        NewHub(),
		mux:        http.NewServeMux(),
		files:      http.FileServer(http.Dir(abs)),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Dev only, pages may be opened from any local origin
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mux.HandleFunc(parameter.ReloadEventPath, s.handleEvents)
	s.mux.HandleFunc(parameter.ReloadSocketPath, s.handleSocket)
	s.mux.HandleFunc(parameter.SnapshotPath, s.handleSnapshot)
	s.mux.HandleFunc("/", s.handleStatic)
	return s, nil
}

// Handler exposes the routes for embedding or tests
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Hub exposes the reload broadcaster
func (s *Server) Hub() *Hub {
	return s.hub
}

func (s *Server) Addr() string {
	return s.addr
}

// ResolveAddr picks the listen address: explicit port, then $PORT, then the default
func ResolveAddr(port int, getenv func(string) string) (string, error) {
	if port > 0 {
		return fmt.Sprintf(":%d", port), nil
	}
	if env := getenv("PORT"); env != "" {
		p, err := strconv.Atoi(env)
		if err != nil || p <= 0 || p > 65535 {
			return "", fmt.Errorf("invalid PORT %q", env)
		}
		return fmt.Sprintf(":%d", p), nil
	}
	return fmt.Sprintf(":%d", parameter.DevServerDefaultPort), nil
}

// Run serves until ctx is done, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	var watcher *watch.Watcher
	if s.liveReload {
		w, err := watch.New(s.root,
			watch.WithDebounce(parameter.ReloadDebounce),
			watch.WithFilter(watch.IgnoreHidden),
			watch.WithOnChange(s.notify),
			watch.WithOnError(func(err error) { log.Printf("watch: %v", err) }),
		)
		if err != nil {
			ln.Close()
			return err
		}
		watcher = w
	}

	srv := &http.Server{
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("serving %s on %s (live reload %v)", s.root, ln.Addr(), s.liveReload)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if watcher != nil {
		g.Go(func() error { return watcher.Run(gctx) })
	}

	g.Go(func() error {
		<-gctx.Done()
		// Streams never finish on their own
		s.hub.closeAll()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), parameter.ShutdownGracePeriod)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// notify broadcasts one reload for a debounced batch of changes
func (s *Server) notify(paths []string) {
	if len(paths) == 0 {
		return
	}
	rel, err := filepath.Rel(s.root, paths[0])
	if err != nil {
		rel = paths[0]
	}
	log.Printf("reload: %d change(s), first %s", len(paths), rel)
	s.hub.Broadcast(Message{Type: MsgReload, Path: filepath.ToSlash(rel)})
}

func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	if !s.liveReload {
		s.files.ServeHTTP(w, r)
		return
	}
	name := r.URL.Path
	if strings.HasSuffix(name, "/") {
		name += "index.html"
	}
	if !strings.EqualFold(path.Ext(name), ".html") {
		s.files.ServeHTTP(w, r)
		return
	}

	f, err := http.Dir(s.root).Open(name)
	if err != nil {
		s.files.ServeHTTP(w, r)
		return
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil || info.IsDir() {
		s.files.ServeHTTP(w, r)
		return
	}
	page, err := io.ReadAll(f)
	if err != nil {
		http.Error(w, "read failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	http.ServeContent(w, r, name, info.ModTime(), bytes.NewReader(InjectReloadScript(page)))
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	c := s.hub.register()
	defer s.hub.unregister(c.ID)

	fmt.Fprintf(w, "id: %s\ndata: {\"type\":%q}\n\n", c.ID, MsgHello)
	flusher.Flush()

	keepAlive := time.NewTicker(parameter.SSEKeepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case data, ok := <-c.send:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", data)
			flusher.Flush()
		case <-keepAlive.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		}
	}
}

func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	defer ws.Close()

	c := s.hub.register()
	defer s.hub.unregister(c.ID)
	log.Printf("reload client connected: %s", c.ID)

	// Reads only detect the close, clients never send
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	hello := fmt.Sprintf(`{"type":%q}`, MsgHello)
	if err := ws.WriteMessage(websocket.TextMessage, []byte(hello)); err != nil {
		return
	}

	keepAlive := time.NewTicker(parameter.SSEKeepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-done:
			return
		case data, ok := <-c.send:
			if !ok {
				_ = ws.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown"),
					time.Now().Add(time.Second))
				return
			}
			_ = ws.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := ws.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-keepAlive.C:
			if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(time.Second)); err != nil {
				return
			}
		}
	}
}
