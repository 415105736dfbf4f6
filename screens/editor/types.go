package editor

import (
	"context"
	"sync"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"gradient-frame/pkg/colorstop"
	"gradient-frame/pkg/drag"
	"gradient-frame/pkg/export"
	"gradient-frame/pkg/input"
	"gradient-frame/pkg/settings"
	"gradient-frame/pkg/share"
	"gradient-frame/ui"
	sharewidget "gradient-frame/widgets/share"
	"gradient-frame/widgets/stops"
	"gradient-frame/widgets/toolbar"
)

const (
	// Margin around the canvas inside the window.
	Margin = int32(24)
	// SidebarWidth is the width of the stops panel and toolbar.
	SidebarWidth = int32(380)
	// MinHeight keeps the sidebar usable for small canvases.
	MinHeight = int32(480)

	activeStopRadius = 9
	statusHeight     = int32(28)
	statusDuration   = 2 * time.Second
)

// WindowSize returns the window dimensions needed for the given canvas.
func WindowSize(prefs settings.Preferences) (int32, int32) {
	w := int32(prefs.CanvasWidth) + 2*Margin + SidebarWidth
	h := int32(prefs.CanvasHeight) + 2*Margin
	if h < MinHeight {
		h = MinHeight
	}
	return w, h
}

// status is the line of feedback under the toolbar. Uploads finish on a
// background goroutine, so it is guarded.
type status struct {
	mu    sync.Mutex
	text  string
	until time.Time
}

func (s *status) set(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
	s.until = time.Now().Add(statusDuration)
}

func (s *status) get(now time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now.After(s.until) {
		s.text = ""
	}
	return s.text
}

// sharer is the part of share.Server the editor drives.
type sharer interface {
	Start() error
	Stop() error
	URL() string
	QRCodePNG() ([]byte, error)
}

var _ sharer = (*share.Server)(nil)

// EditorScreen is the gradient editor: a canvas with the axis, handles and
// stops on the left, the stops panel and toolbar on the right.
type EditorScreen struct {
	// SDL2 rendering
	window   *sdl.Window
	renderer *sdl.Renderer

	config settings.Config
	prefs  settings.Preferences

	// Gradient state
	canvas      *canvasHost
	store       *colorstop.Store
	controller  *drag.Controller
	dispatcher  *drag.Dispatcher
	unsubscribe func()
	gradient    *ui.GradientTexture

	// UI components
	fonts        *ui.Fonts
	stopsWidget  *stops.Widget
	toolbar      *toolbar.Widget
	status       status
	shareServer  sharer
	shareWidget  *sharewidget.Widget
	showShare    bool
	uploader     *export.S3Uploader
	uploads      sync.WaitGroup
	uploadCtx    context.Context
	uploadCancel context.CancelFunc

	// Input tracking
	keyState   []uint8
	keyTracker input.KeyPressTracker
	pointer    input.PointerTracker
}
