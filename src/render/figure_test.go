package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func solidPanel(w, h int, c color.RGBA) Panel {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return Panel{Image: img}
}

func TestFigureImageStacksPanels(t *testing.T) {
	red := color.RGBA{R: 200, A: 255}
	blue := color.RGBA{B: 200, A: 255}
	fig := &Figure{Panels: []Panel{solidPanel(100, 40, red), solidPanel(100, 60, blue)}}
	img := fig.Image()
	b := img.Bounds()
	if b.Dx() != 100 || b.Dy() != 100 {
		t.Fatalf("composite is %dx%d, want 100x100", b.Dx(), b.Dy())
	}
	if got := img.At(50, 20); !sameColor(got, red) {
		t.Fatalf("top panel pixel wrong: %v", got)
	}
	if got := img.At(50, 70); !sameColor(got, blue) {
		t.Fatalf("bottom panel pixel wrong: %v", got)
	}
}

func TestFigureImageWithTitleBand(t *testing.T) {
	red := color.RGBA{R: 200, A: 255}
	fig := &Figure{Title: "Proof size", Panels: []Panel{solidPanel(80, 40, red)}}
	img := fig.Image()
	if got := img.Bounds().Dy(); got != 40+titleBandHeight {
		t.Fatalf("height %d, want %d", got, 40+titleBandHeight)
	}
	// panel content shifts below the band
	if got := img.At(40, titleBandHeight+10); !sameColor(got, red) {
		t.Fatalf("panel pixel wrong below title band: %v", got)
	}
}

func TestFigureEncodeAndSavePNG(t *testing.T) {
	fig := &Figure{Panels: []Panel{solidPanel(20, 10, color.RGBA{G: 100, A: 255})}}
	var buf bytes.Buffer
	if err := fig.EncodePNG(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Fatalf("output is not decodable png: %v", err)
	}

	path := filepath.Join(t.TempDir(), "figure.png")
	if err := fig.SavePNG(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open saved file: %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Fatalf("saved file is not decodable png: %v", err)
	}
}

func sameColor(a color.Color, b color.RGBA) bool {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	return ar == br && ag == bg && ab == bb
}
