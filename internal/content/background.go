package content

import (
	"fmt"
	"image"
	"strings"
	"sync"

	"github.com/charmbracelet/x/cellbuf"
	"github.com/disintegration/imaging"
	"github.com/mattn/go-runewidth"

	// Register the extra decoders imaging.Open can hand off to.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Background paints full-surface content for a holder.
type Background interface {
	Paint(w, h int) *cellbuf.Buffer
}

// Fill paints every cell with the same glyph and colours.
type Fill struct {
	Color string
	Glyph rune
	FG    string
}

func (f Fill) Paint(w, h int) *cellbuf.Buffer {
	glyph := f.Glyph
	if glyph == 0 {
		glyph = ' '
	}
	return NewCanvas(w, h, NewCell(glyph, Hex(f.FG), Hex(f.Color)))
}

// Text paints multi-line art centred on a filled background.
type Text struct {
	Lines []string
	FG    string
	BG    string
}

// NewText splits art into lines, dropping a single trailing newline.
func NewText(art, fg, bg string) Text {
	art = strings.TrimSuffix(strings.ReplaceAll(art, "\r\n", "\n"), "\n")
	return Text{Lines: strings.Split(art, "\n"), FG: fg, BG: bg}
}

func (t Text) Paint(w, h int) *cellbuf.Buffer {
	c := Fill{Color: t.BG, FG: t.FG}.Paint(w, h)
	fg, bg := Hex(t.FG), Hex(t.BG)
	width := 0
	for _, line := range t.Lines {
		width = max(width, runewidth.StringWidth(line))
	}
	y0 := (h - len(t.Lines)) / 2
	x0 := (w - width) / 2
	for row, line := range t.Lines {
		x := x0
		for _, r := range line {
			cell := NewCell(r, fg, bg)
			if cell.Width == 0 {
				continue
			}
			c.SetCell(x, y0+row, cell)
			x += cell.Width
		}
	}
	return c
}

// Image paints a picture scaled to cover the surface, two pixels per cell
// using upper half blocks.
type Image struct {
	src image.Image

	mu     sync.Mutex
	cached *cellbuf.Buffer
}

// OpenImage decodes the picture at path.
func OpenImage(path string) (*Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	return &Image{src: img}, nil
}

func (im *Image) Paint(w, h int) *cellbuf.Buffer {
	if w <= 0 || h <= 0 {
		return NewCanvas(0, 0, nil)
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	if im.cached != nil && im.cached.Width() == w && im.cached.Height() == h {
		return im.cached
	}

	scaled := imaging.Fill(im.src, w, h*2, imaging.Center, imaging.Lanczos)
	c := NewCanvas(w, h, nil)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.SetCell(x, y, NewCell('▀', scaled.NRGBAAt(x, y*2), scaled.NRGBAAt(x, y*2+1)))
		}
	}
	im.cached = c
	return c
}
