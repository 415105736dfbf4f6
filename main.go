package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/joho/godotenv"
	"github.com/veandco/go-sdl2/sdl"

	"gradient-frame/pkg/logging"
	"gradient-frame/pkg/performance"
	"gradient-frame/pkg/settings"
	"gradient-frame/screens/editor"
)

const (
	targetFPS      = 60
	reportInterval = time.Minute
)

func main() {
	// SDL must stay on the main thread
	runtime.LockOSThread()

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := settings.FromEnv()
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(cfg.LogLevel),
	})))

	prefs := settings.Load(cfg.SettingsPath)

	if err := initializeSDL2(); err != nil {
		log.Fatalf("Failed to initialize SDL2: %v", err)
	}
	defer func() {
		log.Println("Shutting down SDL2...")
		sdl.Quit()
	}()

	width, height := editor.WindowSize(prefs)
	log.Printf("Starting %s | Canvas: %dx%d | Window: %dx%d",
		cfg.Title, prefs.CanvasWidth, prefs.CanvasHeight, width, height)

	window, err := createWindow(cfg.Title, width, height)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer window.Destroy()

	renderer, err := createRenderer(window)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer renderer.Destroy()

	screen := editor.NewEditorScreen(window, renderer, cfg, prefs)
	defer screen.Close()

	runEditorLoop(screen)

	log.Printf("%s shutting down...", cfg.Title)
}

// initializeSDL2 initializes SDL2 with fallback video drivers
func initializeSDL2() error {
	var videoDrivers []string
	if envDriver := os.Getenv("SDL_VIDEODRIVER"); envDriver != "" {
		log.Printf("Using environment SDL_VIDEODRIVER: %s", envDriver)
		videoDrivers = []string{envDriver}
	}

	switch runtime.GOOS {
	case "darwin":
		videoDrivers = append(videoDrivers, "cocoa", "dummy")
	case "windows":
		videoDrivers = append(videoDrivers, "windows", "dummy")
	default:
		videoDrivers = append(videoDrivers, "wayland", "x11", "kmsdrm", "dummy")
	}

	for _, driver := range videoDrivers {
		log.Printf("Attempting SDL2 initialization with %s driver", driver)
		if err := trySDLInitialization(driver); err != nil {
			log.Printf("SDL2 initialization failed with %s driver: %v", driver, err)
			continue
		}
		log.Printf("SDL2 successfully initialized with %s driver", driver)
		return nil
	}

	return fmt.Errorf("all SDL2 video drivers failed")
}

func trySDLInitialization(driver string) error {
	sdl.Quit()

	sdl.SetHint(sdl.HINT_VIDEODRIVER, driver)
	switch driver {
	case "x11":
		sdl.SetHint("SDL_VIDEO_X11_NET_WM_BYPASS_COMPOSITOR", "0")
	case "wayland":
		sdl.SetHint("SDL_VIDEO_WAYLAND_WMCLASS", "gradient-frame")
	}
	sdl.SetHint(sdl.HINT_RENDER_BATCHING, "1")
	sdl.SetHint(sdl.HINT_VIDEO_MINIMIZE_ON_FOCUS_LOSS, "0")
	// Clicks that focus the window also start a drag.
	sdl.SetHint(sdl.HINT_MOUSE_FOCUS_CLICKTHROUGH, "1")

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("SDL_INIT_VIDEO failed: %v", err)
	}

	driverName, err := sdl.GetCurrentVideoDriver()
	if err != nil {
		return fmt.Errorf("failed to get video driver: %v", err)
	}
	log.Printf("Video driver initialized: %s", driverName)
	return nil
}

// createWindow creates a centred, fixed-size SDL2 window
func createWindow(title string, width, height int32) (*sdl.Window, error) {
	return sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		width,
		height,
		sdl.WINDOW_SHOWN,
	)
}

// createRenderer creates an accelerated renderer, falling back to software
func createRenderer(window *sdl.Window) (*sdl.Renderer, error) {
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		log.Printf("Hardware acceleration failed, trying software: %v", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			return nil, err
		}
	}

	// Enable alpha blending for overlays
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	return renderer, nil
}

// runEditorLoop executes the main SDL2 loop
func runEditorLoop(screen *editor.EditorScreen) {
	frameTime := time.Second / targetFPS
	monitor := performance.NewFrameMonitor(2*targetFPS, frameTime)

	running := true
	for running {
		frameStart := time.Now()

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch event.(type) {
			case *sdl.QuitEvent:
				running = false
			}
		}

		if err := screen.Update(); err != nil {
			log.Printf("Editor update error: %v", err)
			break
		}
		updated := time.Now()
		monitor.RecordUpdate(updated.Sub(frameStart))

		if err := screen.Draw(); err != nil {
			log.Printf("Editor draw error: %v", err)
			break
		}
		monitor.RecordDraw(time.Since(updated))

		elapsed := time.Since(frameStart)
		monitor.RecordFrame(elapsed)
		if monitor.ReportDue(time.Now(), reportInterval) {
			performance.LogReport(monitor.GetReport())
		}

		// Frame rate limiting
		if elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
	}
}
