package ui

import (
	"fmt"

	"github.com/veandco/go-sdl2/ttf"
)

// Fonts manages a set of TrueType fonts at different sizes
type Fonts struct {
	Large  *ttf.Font // 22px for panel titles and the share overlay
	Medium *ttf.Font // 16px for buttons and stop rows
	Small  *ttf.Font // 13px for hints and the status line
}

var fontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
}

// openFirst returns the first font in fontPaths that opens at size.
func openFirst(size int) *ttf.Font {
	for _, path := range fontPaths {
		if font, err := ttf.OpenFont(path, size); err == nil {
			return font
		}
	}
	return nil
}

// LoadFonts loads system fonts with fallbacks for different platforms.
// Missing fonts are left nil; text drawing skips them.
func LoadFonts() (*Fonts, error) {
	if err := ttf.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize TTF: %v", err)
	}

	return &Fonts{
		Large:  openFirst(22),
		Medium: openFirst(16),
		Small:  openFirst(13),
	}, nil
}

// Close cleans up font resources
func (f *Fonts) Close() {
	for _, font := range []*ttf.Font{f.Large, f.Medium, f.Small} {
		if font != nil {
			font.Close()
		}
	}
	ttf.Quit()
}
