package editor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"gradient-frame/pkg/colorstop"
	"gradient-frame/pkg/export"
	"gradient-frame/pkg/raster"
	sharewidget "gradient-frame/widgets/share"
	"gradient-frame/widgets/toolbar"
)

const uploadTimeout = 30 * time.Second

// activate runs the action behind a toolbar button or its shortcut.
func (es *EditorScreen) activate(b toolbar.ButtonID) {
	switch b {
	case toolbar.AddColorButton:
		es.addStop()
	case toolbar.ExportButton:
		es.exportPNG()
	case toolbar.UploadButton:
		es.upload()
	case toolbar.ShareButton:
		es.toggleShare()
	}
}

func (es *EditorScreen) addStop() {
	color := colorstop.Palette[0]
	if id, ok := es.stopsWidget.Selected(); ok {
		if s, found := es.store.Colors().Find(id); found {
			color = s.Color
		}
	}
	_, stop := es.store.AddColor(color, 0)
	es.stopsWidget.Select(stop.ID)
	es.status.set(fmt.Sprintf("Added %s at %.0f%%", stop.Color.Hex(), stop.Offset))
}

func (es *EditorScreen) removeStop(id colorstop.ID) {
	if target, ok := es.controller.Target().StopID(); ok && target == id {
		// Removing the stop under the pointer ends the drag first.
		es.controller.PointerUp()
	}
	es.store.RemoveColor(id)
}

// resetGradient restores the initial axis and stops, ending any gesture in
// progress first.
func (es *EditorScreen) resetGradient() {
	if es.controller.Dragging() {
		es.controller.PointerUp()
	}
	es.canvas.Reset()
	es.store.Reset(colorstop.NewCollection(colorstop.DefaultStops()...))
	es.status.set("Gradient reset")
}

func (es *EditorScreen) nudgeSelected(delta float64) {
	id, ok := es.stopsWidget.Selected()
	if !ok {
		return
	}
	if s, found := es.store.Colors().Find(id); found {
		es.store.UpdateOffset(id, s.Offset+delta)
	}
}

func (es *EditorScreen) cycleSelected(dir int) {
	id, ok := es.stopsWidget.Selected()
	if !ok {
		return
	}
	if s, found := es.store.Colors().Find(id); found {
		es.store.UpdateColor(id, colorstop.Cycle(s.Color, dir))
	}
}

// copyCSS puts the CSS linear-gradient() value on the system clipboard.
func (es *EditorScreen) copyCSS() {
	css := raster.CSS(es.canvas.Segment(), es.store.Colors())
	if err := sdl.SetClipboardText(css); err != nil {
		log.Printf("Warning: Failed to copy CSS: %v", err)
		es.status.set("Copy failed")
		return
	}
	es.status.set("Copied CSS to clipboard")
}

// exportSize returns the export dimensions and axis scaled by ExportScale.
func (es *EditorScreen) exportSize() (int, int, float64) {
	scale := es.prefs.ExportScale
	return int(float64(es.prefs.CanvasWidth) * scale), int(float64(es.prefs.CanvasHeight) * scale), scale
}

func (es *EditorScreen) exportPNG() {
	w, h, scale := es.exportSize()
	seg := raster.Scale(es.canvas.Segment(), scale)

	path, err := export.SavePNG(es.config.ExportDir, seg, es.store.Colors(), w, h)
	if err != nil {
		log.Printf("Export failed: %v", err)
		es.status.set("Export failed")
		return
	}
	log.Printf("Exported gradient to %s", path)
	es.status.set("Saved " + filepath.Base(path))
}

// upload renders on the UI thread and hands the bytes to a goroutine.
func (es *EditorScreen) upload() {
	if es.uploader == nil {
		es.status.set("Upload disabled: set S3_BUCKET")
		return
	}

	w, h, scale := es.exportSize()
	data, err := export.RenderPNG(raster.Scale(es.canvas.Segment(), scale), es.store.Colors(), w, h)
	if err != nil {
		log.Printf("Render for upload failed: %v", err)
		es.status.set("Upload failed")
		return
	}

	name := export.FileName(time.Now())
	es.status.set("Uploading " + name + "...")
	es.uploads.Add(1)
	go func() {
		defer es.uploads.Done()
		ctx, cancel := context.WithTimeout(es.uploadCtx, uploadTimeout)
		defer cancel()

		location, err := es.uploader.Upload(ctx, name, data)
		switch {
		case errors.Is(err, context.Canceled):
			return
		case err != nil:
			log.Printf("Upload failed: %v", err)
			es.status.set("Upload failed")
		default:
			es.status.set("Uploaded " + location)
		}
	}()
}

// toggleShare starts the share server and shows its QR code, or hides the
// overlay and stops the server.
func (es *EditorScreen) toggleShare() {
	if es.showShare {
		es.hideShare()
		return
	}

	if err := es.shareServer.Start(); err != nil {
		log.Printf("Error starting share server: %v", err)
		es.status.set("Share failed")
		return
	}

	qrPNG, err := es.shareServer.QRCodePNG()
	if err != nil {
		log.Printf("Error getting QR code: %v", err)
		es.stopShareServer()
		es.status.set("Share failed")
		return
	}

	widget, err := sharewidget.NewWidget(es.renderer, qrPNG, es.shareServer.URL())
	if err != nil {
		log.Printf("Error creating share widget: %v", err)
		es.stopShareServer()
		es.status.set("Share failed")
		return
	}

	if es.shareWidget != nil {
		es.shareWidget.Destroy()
	}
	es.shareWidget = widget
	es.showShare = true
	es.toolbar.SetActive(toolbar.ShareButton, true)
	log.Printf("Sharing gradient at %s", es.shareServer.URL())
}

func (es *EditorScreen) hideShare() {
	es.showShare = false
	es.toolbar.SetActive(toolbar.ShareButton, false)

	if es.shareWidget != nil {
		es.shareWidget.Destroy()
		es.shareWidget = nil
	}
	es.stopShareServer()
	es.status.set("Sharing stopped")
}

func (es *EditorScreen) stopShareServer() {
	if err := es.shareServer.Stop(); err != nil {
		log.Printf("Error stopping share server: %v", err)
	}
}
