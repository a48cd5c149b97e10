package plot

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/facetplot/pkg/fonts"
)

// canvas is the figure being composed.
type canvas struct {
	img *image.RGBA
	dpi float64
}

func newCanvas(w, h int, dpi float64) *canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return &canvas{img: img, dpi: dpi}
}

// paste draws src with its top-left corner at p.
func (c *canvas) paste(src image.Image, p image.Point) {
	b := src.Bounds()
	draw.Draw(c.img, image.Rectangle{Min: p, Max: p.Add(b.Size())}, src, b.Min, draw.Src)
}

// title draws s centered horizontally in the band [top, top+height).
func (c *canvas) title(s string, size float64, top, height int) error {
	face, err := fonts.NewFace(fonts.Bold, size, c.dpi)
	if err != nil {
		return err
	}
	defer face.Close()

	d := &font.Drawer{Dst: c.img, Src: image.NewUniform(color.Black), Face: face}
	w := d.MeasureString(s).Ceil()
	m := face.Metrics()
	baseline := top + (height+m.Ascent.Ceil()-m.Descent.Ceil())/2
	d.Dot = fixed.P((c.img.Bounds().Dx()-w)/2, baseline)
	d.DrawString(s)
	return nil
}
