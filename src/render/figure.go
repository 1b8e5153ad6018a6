package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Panel is one rendered subplot: the spec it was drawn from, the finished
// image and the legend text that was applied, in draw order.
type Panel struct {
	Spec   PanelSpec
	Image  image.Image
	Legend []string
}

// Figure is the rendered output of one chart request: panels in request
// order. The caller decides whether to display it or write it to a file.
type Figure struct {
	Title  string
	Panels []Panel
}

const titleBandHeight = 28

// Image composites all panels into a single vertical stack, with a title
// band on top when the figure carries a title.
func (f *Figure) Image() image.Image {
	var width, height int
	for _, p := range f.Panels {
		b := p.Image.Bounds()
		if b.Dx() > width {
			width = b.Dx()
		}
		height += b.Dy()
	}
	titleH := 0
	if f.Title != "" {
		titleH = titleBandHeight
	}
	out := image.NewRGBA(image.Rect(0, 0, width, height+titleH))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	if f.Title != "" {
		drawCaption(out, f.Title)
	}
	y := titleH
	for _, p := range f.Panels {
		b := p.Image.Bounds()
		draw.Draw(out, image.Rect(0, y, b.Dx(), y+b.Dy()), p.Image, b.Min, draw.Src)
		y += b.Dy()
	}
	return out
}

// EncodePNG writes the composite figure image as PNG.
func (f *Figure) EncodePNG(w io.Writer) error {
	return png.Encode(w, f.Image())
}

// SavePNG writes the composite figure image to a file.
func (f *Figure) SavePNG(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.EncodePNG(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// drawCaption draws the title text into the top band of the composite image.
func drawCaption(dst *image.RGBA, text string) {
	face := basicfont.Face7x13
	dr := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{R: 30, G: 30, B: 30, A: 255}),
		Face: face,
	}
	x := 12
	y := (titleBandHeight + face.Metrics().Ascent.Ceil()) / 2
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
}
