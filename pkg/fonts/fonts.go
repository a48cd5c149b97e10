// Package fonts provides the truetype faces used for panel strips, pairs
// annotations and figure titles.
//
// The regular face is the chart library's default font, so overlay text
// matches axis labels. The bold face is Go Bold from golang.org/x/image.
// Parsed fonts are cached after first use and faces are cached per
// (weight, size, dpi), so callers can ask for a face on every draw.
package fonts

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

// Weight selects a font variant.
type Weight int

const (
	Regular Weight = iota
	Bold
)

// Cache for parsed fonts (computed once on first access).
var (
	regularFont *truetype.Font
	regularErr  error
	regularOnce sync.Once

	boldFont *truetype.Font
	boldErr  error
	boldOnce sync.Once
)

// Font returns the parsed font for w.
func Font(w Weight) (*truetype.Font, error) {
	if w == Bold {
		boldOnce.Do(func() {
			boldFont, boldErr = truetype.Parse(gobold.TTF)
		})
		return boldFont, boldErr
	}
	regularOnce.Do(func() {
		regularFont, regularErr = chart.GetDefaultFont()
	})
	return regularFont, regularErr
}

type faceKey struct {
	w    Weight
	size float64
	dpi  float64
}

var (
	facesMu sync.Mutex
	faces   = map[faceKey]font.Face{}
)

// Face returns a face of size points at dpi.
//
// Faces from truetype are not safe for concurrent use, so each returned face
// must stay on one goroutine; callers rendering concurrently should use
// NewFace instead.
func Face(w Weight, size, dpi float64) (font.Face, error) {
	k := faceKey{w, size, dpi}
	facesMu.Lock()
	defer facesMu.Unlock()
	if f, ok := faces[k]; ok {
		return f, nil
	}
	f, err := NewFace(w, size, dpi)
	if err != nil {
		return nil, err
	}
	faces[k] = f
	return f, nil
}

// NewFace returns a fresh, uncached face.
func NewFace(w Weight, size, dpi float64) (font.Face, error) {
	f, err := Font(w)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	}), nil
}
