// Package export writes rendered gradients to local disk and to S3.
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gradient-frame/pkg/colorstop"
	"gradient-frame/pkg/geometry"
	"gradient-frame/pkg/raster"
)

// FileName returns the export file name for the given instant.
func FileName(at time.Time) string {
	return fmt.Sprintf("gradient-%d.png", at.UnixNano())
}

// RenderPNG renders the gradient to PNG bytes.
func RenderPNG(seg geometry.Segment, stops colorstop.Collection, width, height int) ([]byte, error) {
	var buf bytes.Buffer
	if err := raster.EncodePNG(&buf, seg, stops, width, height); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SavePNG renders the gradient into dir and returns the written path.
// The directory is created if it does not exist.
func SavePNG(dir string, seg geometry.Segment, stops colorstop.Collection, width, height int) (string, error) {
	data, err := RenderPNG(seg, stops, width, height)
	if err != nil {
		return "", fmt.Errorf("failed to render gradient: %w", err)
	}

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, FileName(time.Now()))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
