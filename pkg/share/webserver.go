package share

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"
)

// WebServer manages the HTTP server for the share page.
type WebServer struct {
	server    *http.Server
	listener  net.Listener
	isRunning bool
	mu        sync.RWMutex
	addr      string
	snapshot  SnapshotFunc
}

func NewWebServer(addr string, snapshot SnapshotFunc) *WebServer {
	return &WebServer{
		addr:     addr,
		snapshot: snapshot,
	}
}

// Handler returns the routes served by the web server.
func (ws *WebServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", ws.handleRoot)
	mux.HandleFunc("/gradient.png", ws.handlePNG)
	mux.HandleFunc("/gradient.css", ws.handleCSS)
	mux.HandleFunc("/stops.json", ws.handleStops)
	return mux
}

// Start binds the listener synchronously and serves in a goroutine.
func (ws *WebServer) Start() error {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if ws.isRunning {
		return fmt.Errorf("web server already running")
	}

	ln, err := net.Listen("tcp", ws.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", ws.addr, err)
	}
	ws.listener = ln
	ws.server = &http.Server{
		Handler:      ws.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	ws.isRunning = true

	server := ws.server
	go func() {
		log.Printf("Starting share web server on %s", ln.Addr())
		if err := server.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Printf("Web server error: %v", err)
			ws.mu.Lock()
			ws.isRunning = false
			ws.mu.Unlock()
		}
	}()

	return nil
}

// Stop gracefully shuts down the HTTP server.
func (ws *WebServer) Stop() error {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if !ws.isRunning {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ws.isRunning = false
	if err := ws.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown web server: %w", err)
	}
	log.Println("Share web server stopped")
	return nil
}

func (ws *WebServer) IsRunning() bool {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return ws.isRunning
}

// Addr returns the bound address, which differs from the configured one
// when port 0 was requested.
func (ws *WebServer) Addr() net.Addr {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	if ws.listener == nil {
		return &net.TCPAddr{}
	}
	return ws.listener.Addr()
}
