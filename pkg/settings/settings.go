package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Preferences are the editor options that persist across restarts. The
// gradient itself is not persisted.
type Preferences struct {
	CanvasWidth  int     `json:"canvasWidth"`
	CanvasHeight int     `json:"canvasHeight"`
	HandleRadius float64 `json:"handleRadius"`
	ExportScale  float64 `json:"exportScale"`
}

var defaultPreferences = Preferences{
	CanvasWidth:  600,
	CanvasHeight: 400,
	HandleRadius: 8,
	ExportScale:  2,
}

// Defaults returns the preferences used when no file exists.
func Defaults() Preferences {
	return defaultPreferences
}

// Load reads preferences from path. When the file is missing or cannot be
// parsed, defaults are returned instead so the editor can continue running.
func Load(path string) Preferences {
	f, err := os.Open(path)
	if err != nil {
		return defaultPreferences
	}
	defer f.Close()

	var p Preferences
	if err := json.NewDecoder(f).Decode(&p); err != nil {
		return defaultPreferences
	}

	// Partially written files keep working when fields are added.
	if p.CanvasWidth <= 0 {
		p.CanvasWidth = defaultPreferences.CanvasWidth
	}
	if p.CanvasHeight <= 0 {
		p.CanvasHeight = defaultPreferences.CanvasHeight
	}
	if p.HandleRadius <= 0 {
		p.HandleRadius = defaultPreferences.HandleRadius
	}
	if p.ExportScale <= 0 {
		p.ExportScale = defaultPreferences.ExportScale
	}

	return p
}

// Save writes p to path as indented JSON, creating parent directories.
func Save(path string, p Preferences) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}
