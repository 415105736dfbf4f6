package share

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"github.com/veandco/go-sdl2/sdl"

	"gradient-frame/ui"
)

// Widget displays the share QR code overlay
type Widget struct {
	qrTexture *sdl.Texture
	url       string
	qrWidth   int32
	qrHeight  int32
}

// NewWidget decodes the QR code PNG into a texture.
func NewWidget(renderer *sdl.Renderer, qrPNG []byte, url string) (*Widget, error) {
	src, err := png.Decode(bytes.NewReader(qrPNG))
	if err != nil {
		return nil, fmt.Errorf("failed to decode QR code PNG: %w", err)
	}

	// QR codes decode as paletted images; normalise to straight RGBA bytes.
	bounds := src.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(img, img.Bounds(), src, bounds.Min, draw.Src)

	width, height := int32(bounds.Dx()), int32(bounds.Dy())
	texture, err := renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGBA32), sdl.TEXTUREACCESS_STREAMING, width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR texture: %w", err)
	}
	pixels, pitch, err := texture.Lock(nil)
	if err != nil {
		texture.Destroy()
		return nil, fmt.Errorf("failed to lock QR texture: %w", err)
	}
	for y := 0; y < int(height); y++ {
		copy(pixels[y*pitch:], img.Pix[y*img.Stride:y*img.Stride+int(width)*4])
	}
	texture.Unlock()

	return &Widget{
		qrTexture: texture,
		url:       url,
		qrWidth:   width,
		qrHeight:  height,
	}, nil
}

// Render draws the share overlay modal
func (w *Widget) Render(renderer *sdl.Renderer, windowWidth, windowHeight int32, fonts *ui.Fonts) error {
	modalWidth := int32(400)
	modalHeight := w.qrHeight + 200

	modalX := (windowWidth - modalWidth) / 2
	modalY := (windowHeight - modalHeight) / 2

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	renderer.SetDrawColor(0, 0, 0, 220)
	renderer.FillRect(&sdl.Rect{X: 0, Y: 0, W: windowWidth, H: windowHeight})

	renderer.SetDrawColor(30, 41, 59, 255)
	renderer.FillRect(&sdl.Rect{X: modalX, Y: modalY, W: modalWidth, H: modalHeight})
	renderer.SetDrawColor(59, 130, 246, 255)
	renderer.DrawRect(&sdl.Rect{X: modalX, Y: modalY, W: modalWidth, H: modalHeight})

	currentY := modalY + 20

	if err := ui.RenderText(renderer, "Share Gradient", modalX+20, currentY, ui.White, fonts.Large); err != nil {
		return fmt.Errorf("failed to render title: %w", err)
	}
	currentY += 40

	if err := ui.RenderText(renderer, "Scan to open the gradient on your phone", modalX+20, currentY, ui.Gray, fonts.Small); err != nil {
		return fmt.Errorf("failed to render instructions: %w", err)
	}
	currentY += 30

	qrX := modalX + (modalWidth-w.qrWidth)/2
	if err := renderer.Copy(w.qrTexture, nil, &sdl.Rect{X: qrX, Y: currentY, W: w.qrWidth, H: w.qrHeight}); err != nil {
		return fmt.Errorf("failed to render QR code: %w", err)
	}
	currentY += w.qrHeight + 20

	if err := ui.RenderText(renderer, w.url, modalX+20, currentY, ui.White, fonts.Medium); err != nil {
		return fmt.Errorf("failed to render URL: %w", err)
	}
	currentY += 30

	return ui.RenderText(renderer, "Press Esc or Share to stop sharing", modalX+20, currentY, ui.Gray, fonts.Small)
}

// Destroy cleans up widget resources
func (w *Widget) Destroy() {
	if w.qrTexture != nil {
		w.qrTexture.Destroy()
		w.qrTexture = nil
	}
}
