package share

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"gradient-frame/pkg/colorstop"
	"gradient-frame/pkg/geometry"
	"gradient-frame/pkg/raster"
)

//go:embed share_page.html
var sharePageHTML string

var sharePage = template.Must(template.New("share").Parse(sharePageHTML))

type pageData struct {
	Title  string
	CSS    template.CSS
	Width  int
	Height int
	Stops  []stopView
}

// stopView is the JSON and template shape of a single stop.
type stopView struct {
	ID     colorstop.ID   `json:"id"`
	Color  colorstop.RGBA `json:"color"`
	Hex    string         `json:"hex"`
	Offset float64        `json:"offset"`
}

type stopsResponse struct {
	Start geometry.Point `json:"start"`
	End   geometry.Point `json:"end"`
	Angle float64        `json:"angle"`
	CSS   string         `json:"css"`
	Stops []stopView     `json:"stops"`
}

func stopViews(c colorstop.Collection) []stopView {
	views := make([]stopView, 0, c.Len())
	for _, s := range c.Stops() {
		views = append(views, stopView{ID: s.ID, Color: s.Color, Hex: s.Color.Hex(), Offset: s.Offset})
	}
	return views
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// handleRoot serves the HTML preview page.
func (ws *WebServer) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if !allowGet(w, r) {
		return
	}

	snap := ws.snapshot()
	data := pageData{
		Title:  snap.Title,
		CSS:    template.CSS(raster.CSS(snap.Segment, snap.Stops)),
		Width:  snap.Width,
		Height: snap.Height,
		Stops:  stopViews(snap.Stops),
	}
	if data.Title == "" {
		data.Title = "Gradient"
	}

	var buf bytes.Buffer
	if err := sharePage.Execute(&buf, data); err != nil {
		log.Printf("Failed to render share page: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// handlePNG serves the gradient rendered at the snapshot size.
func (ws *WebServer) handlePNG(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	snap := ws.snapshot()
	var buf bytes.Buffer
	if err := raster.EncodePNG(&buf, snap.Segment, snap.Stops, snap.Width, snap.Height); err != nil {
		log.Printf("Failed to render gradient PNG: %v", err)
		http.Error(w, "Failed to render gradient", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(buf.Bytes())
}

func (ws *WebServer) handleCSS(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	snap := ws.snapshot()
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte("background: " + raster.CSS(snap.Segment, snap.Stops) + ";\n"))
}

// handleStops returns the axis and the stops in render order.
func (ws *WebServer) handleStops(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	snap := ws.snapshot()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stopsResponse{
		Start: snap.Segment.Start,
		End:   snap.Segment.End,
		Angle: raster.Angle(snap.Segment),
		CSS:   raster.CSS(snap.Segment, snap.Stops),
		Stops: stopViews(snap.Stops),
	})
}
