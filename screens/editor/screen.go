package editor

import (
	"context"
	"errors"
	"log"

	"github.com/veandco/go-sdl2/sdl"

	"gradient-frame/pkg/colorstop"
	"gradient-frame/pkg/drag"
	"gradient-frame/pkg/export"
	"gradient-frame/pkg/geometry"
	"gradient-frame/pkg/input"
	"gradient-frame/pkg/settings"
	"gradient-frame/pkg/share"
	"gradient-frame/ui"
	"gradient-frame/widgets/stops"
	"gradient-frame/widgets/toolbar"
)

// NewEditorScreen creates the editor with the default three-stop gradient
// running from the top-left to the bottom-right corner of the canvas.
func NewEditorScreen(window *sdl.Window, renderer *sdl.Renderer, cfg settings.Config, prefs settings.Preferences) *EditorScreen {
	ctx, cancel := context.WithCancel(context.Background())

	es := &EditorScreen{
		window:       window,
		renderer:     renderer,
		config:       cfg,
		prefs:        prefs,
		canvas:       newCanvasHost(window, int32(prefs.CanvasWidth), int32(prefs.CanvasHeight)),
		store:        colorstop.NewStore(colorstop.NewCollection(colorstop.DefaultStops()...)),
		stopsWidget:  stops.NewWidget(),
		toolbar:      toolbar.NewWidget(),
		keyTracker:   input.NewKeyPressTracker(),
		pointer:      input.NewPointerTracker(sdl.ButtonLMask()),
		uploadCtx:    ctx,
		uploadCancel: cancel,
	}

	// The lease on pointer events doubles as a global mouse capture so a
	// release outside the window still ends the drag.
	es.dispatcher = &drag.Dispatcher{
		OnAcquire: func() {
			if err := sdl.CaptureMouse(true); err != nil {
				log.Printf("Warning: Failed to capture mouse: %v", err)
			}
		},
		OnRelease: func() {
			if err := sdl.CaptureMouse(false); err != nil {
				log.Printf("Warning: Failed to release mouse capture: %v", err)
			}
		},
	}
	es.controller = drag.NewController(es.canvas, es.store, es.dispatcher)
	es.controller.OnChange = func(_, to drag.Target) {
		if id, ok := to.StopID(); ok {
			es.stopsWidget.Select(id)
		}
	}
	es.unsubscribe = es.store.Subscribe(es.stopsWidget.Sync)
	es.stopsWidget.Sync(es.store.Colors())

	fonts, err := ui.LoadFonts()
	if err != nil {
		log.Printf("Warning: Failed to initialize fonts: %v", err)
		fonts = &ui.Fonts{}
	}
	es.fonts = fonts

	gradient, err := ui.NewGradientTexture(renderer, int32(prefs.CanvasWidth), int32(prefs.CanvasHeight))
	if err != nil {
		log.Printf("Warning: Failed to create gradient texture: %v", err)
	}
	es.gradient = gradient

	uploader, err := export.NewS3UploaderFromConfig(cfg.S3())
	switch {
	case errors.Is(err, export.ErrNoBucket):
		log.Println("S3_BUCKET not set, uploads disabled")
	case err != nil:
		log.Printf("Warning: Uploads disabled: %v", err)
	default:
		es.uploader = uploader
	}

	es.shareServer = share.NewServer(cfg.ShareAddr, es.snapshot)

	return es
}

// snapshot is called from share server goroutines.
func (es *EditorScreen) snapshot() share.Snapshot {
	return share.Snapshot{
		Title:   es.config.Title,
		Segment: es.canvas.Segment(),
		Stops:   es.store.Colors(),
		Width:   es.prefs.CanvasWidth,
		Height:  es.prefs.CanvasHeight,
	}
}

// sidebarX is where the sidebar starts in window coordinates.
func (es *EditorScreen) sidebarX() int32 {
	return int32(es.prefs.CanvasWidth) + 2*Margin
}

// Update handles SDL2 input and updates screen state
func (es *EditorScreen) Update() error {
	es.keyState = sdl.GetKeyboardState()

	// Global state keeps reporting while the pointer is outside the window,
	// which is what makes pointer-up global.
	gx, gy, buttons := sdl.GetGlobalMouseState()
	wx, wy := es.window.GetPosition()
	pos := geometry.Pt(float64(gx-wx), float64(gy-wy))

	for _, ev := range es.pointer.Sample(pos, buttons) {
		es.handlePointer(ev)
	}

	es.handleKeys()
	return nil
}

func (es *EditorScreen) handlePointer(ev input.Event) {
	switch ev.Kind {
	case input.PointerMove:
		es.toolbar.Hover(int32(ev.Pos.X), int32(ev.Pos.Y))
		es.dispatcher.Move(ev.Pos)
	case input.PointerUp:
		es.dispatcher.Up()
	case input.PointerDown:
		es.handlePointerDown(ev.Pos)
	}
}

func (es *EditorScreen) handlePointerDown(pos geometry.Point) {
	x, y := int32(pos.X), int32(pos.Y)

	if es.showShare {
		if b, ok := es.toolbar.HitTest(x, y); ok && b == toolbar.ShareButton {
			es.toggleShare()
		}
		return
	}

	if x < es.sidebarX() {
		origin, ok := es.canvas.Origin()
		if !ok {
			return
		}
		regions := drag.Regions(es.canvas.Segment(), es.store.Colors(), es.prefs.HandleRadius)
		if target, ok := es.controller.Pick(regions, pos.Sub(origin)); ok {
			es.controller.PointerDown(target, pos)
		}
		return
	}

	if b, ok := es.toolbar.HitTest(x, y); ok {
		es.activate(b)
		return
	}

	switch id, action := es.stopsWidget.HitTest(x, y); action {
	case stops.ActionSelect:
		es.stopsWidget.Select(id)
	case stops.ActionRemove:
		es.removeStop(id)
	}
}

// handleKeys processes keyboard shortcuts
func (es *EditorScreen) handleKeys() {
	pressed := func(sc sdl.Scancode) bool {
		return es.keyTracker.IsPressed(es.keyState, int(sc))
	}

	if pressed(sdl.SCANCODE_ESCAPE) && es.showShare {
		es.toggleShare()
	}
	if es.showShare {
		return
	}

	if pressed(sdl.SCANCODE_A) {
		es.activate(toolbar.AddColorButton)
	}
	if pressed(sdl.SCANCODE_C) {
		es.copyCSS()
	}
	if pressed(sdl.SCANCODE_R) {
		es.resetGradient()
	}
	if es.keyTracker.AnyPressed(es.keyState, int(sdl.SCANCODE_DELETE), int(sdl.SCANCODE_BACKSPACE)) {
		if id, ok := es.stopsWidget.Selected(); ok {
			es.removeStop(id)
		}
	}
	if pressed(sdl.SCANCODE_DOWN) {
		es.stopsWidget.MoveSelection(es.store.Colors(), 1)
	}
	if pressed(sdl.SCANCODE_UP) {
		es.stopsWidget.MoveSelection(es.store.Colors(), -1)
	}
	if pressed(sdl.SCANCODE_LEFT) {
		es.nudgeSelected(-1)
	}
	if pressed(sdl.SCANCODE_RIGHT) {
		es.nudgeSelected(1)
	}
	if pressed(sdl.SCANCODE_LEFTBRACKET) {
		es.cycleSelected(-1)
	}
	if pressed(sdl.SCANCODE_RIGHTBRACKET) {
		es.cycleSelected(1)
	}
}

// Close cleans up resources
func (es *EditorScreen) Close() {
	es.controller.Close()
	if es.unsubscribe != nil {
		es.unsubscribe()
	}

	es.uploadCancel()
	es.uploads.Wait()

	es.stopShareServer()
	if es.shareWidget != nil {
		es.shareWidget.Destroy()
	}
	if es.gradient != nil {
		es.gradient.Destroy()
	}
	if es.fonts != nil {
		es.fonts.Close()
	}

	if err := settings.Save(es.config.SettingsPath, es.prefs); err != nil {
		log.Printf("Warning: Failed to save settings: %v", err)
	}
}
