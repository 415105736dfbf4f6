// Package share serves the current gradient over HTTP so a phone can pick it
// up by scanning a QR code.
package share

import (
	"errors"
	"fmt"
	"log"
	"net"
	"sync"

	"github.com/skip2/go-qrcode"

	"gradient-frame/pkg/colorstop"
	"gradient-frame/pkg/geometry"
)

const DefaultAddr = ":8090"

// QRCodeSize is the edge length of the generated QR code in pixels.
const QRCodeSize = 200

var ErrNotRunning = errors.New("share server is not running")

// Snapshot is the state served to clients.
type Snapshot struct {
	Title   string
	Segment geometry.Segment
	Stops   colorstop.Collection
	Width   int
	Height  int
}

// SnapshotFunc returns the gradient as it is right now. It is called from
// HTTP goroutines and must be safe for concurrent use.
type SnapshotFunc func() Snapshot

// Server manages the web server and the QR code pointing at it.
type Server struct {
	web        *WebServer
	isRunning  bool
	mu         sync.RWMutex
	addr       string
	url        string
	qrCodeData []byte
}

// NewServer creates a share server listening on addr once started.
func NewServer(addr string, snapshot SnapshotFunc) *Server {
	if addr == "" {
		addr = DefaultAddr
	}
	return &Server{
		addr: addr,
		web:  NewWebServer(addr, snapshot),
	}
}

// Start binds the listener and generates the QR code for its URL.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		log.Println("Share server is already running")
		return nil
	}

	if err := s.web.Start(); err != nil {
		return fmt.Errorf("failed to start web server: %w", err)
	}

	url := urlFor(s.web.Addr())
	qrCode, err := qrcode.Encode(url, qrcode.Medium, QRCodeSize)
	if err != nil {
		_ = s.web.Stop()
		return fmt.Errorf("failed to generate QR code: %w", err)
	}
	s.url = url
	s.qrCodeData = qrCode
	s.isRunning = true
	log.Printf("Share server started on %s", url)
	return nil
}

// Stop shuts the web server down. Stopping a stopped server is a no-op.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return nil
	}
	s.isRunning = false
	s.qrCodeData = nil
	if err := s.web.Stop(); err != nil {
		return err
	}
	log.Println("Share server stopped")
	return nil
}

func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning && s.web.IsRunning()
}

// URL returns the address phones should open, or "" when stopped.
func (s *Server) URL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.isRunning {
		return ""
	}
	return s.url
}

// QRCodePNG returns the QR code for URL as PNG bytes.
func (s *Server) QRCodePNG() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil, ErrNotRunning
	}
	if s.qrCodeData == nil {
		return nil, fmt.Errorf("QR code not generated")
	}
	return s.qrCodeData, nil
}

// urlFor turns a bound listener address into a URL reachable from the LAN.
// Wildcard hosts are replaced with the first non-loopback IPv4 address.
func urlFor(addr net.Addr) string {
	tcp, ok := addr.(*net.TCPAddr)
	if !ok {
		return "http://" + addr.String()
	}
	host := tcp.IP.String()
	if tcp.IP == nil || tcp.IP.IsUnspecified() {
		host = lanIP()
	}
	return fmt.Sprintf("http://%s", net.JoinHostPort(host, fmt.Sprint(tcp.Port)))
}

func lanIP() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		log.Printf("Warning: failed to list interface addresses: %v", err)
		return "localhost"
	}
	for _, a := range addrs {
		ipNet, ok := a.(*net.IPNet)
		if !ok || ipNet.IP.IsLoopback() {
			continue
		}
		if ip4 := ipNet.IP.To4(); ip4 != nil {
			return ip4.String()
		}
	}
	return "localhost"
}
