package content

import (
	"image/color"

	"github.com/charmbracelet/x/cellbuf"
	"github.com/lucasb-eyer/go-colorful"
)

// Hex parses a "#rrggbb" or "#rgb" colour. Empty or malformed input yields
// nil, the terminal default.
func Hex(s string) color.Color {
	if s == "" {
		return nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil
	}
	return c
}

// NewCell returns a cell drawing ch in fg on bg.
func NewCell(ch rune, fg, bg color.Color) *cellbuf.Cell {
	c := cellbuf.NewCell(ch)
	c.Style.Fg = fg
	c.Style.Bg = bg
	return c
}

// NewCanvas returns a w×h buffer with every cell set to fill. A nil fill
// leaves blank cells.
func NewCanvas(w, h int, fill *cellbuf.Cell) *cellbuf.Buffer {
	b := cellbuf.NewBuffer(max(w, 0), max(h, 0))
	b.Fill(fill)
	return b
}

// Blit copies the cells of src inside r onto dst at the same positions.
// Wide glyphs cut by an edge of r become blanks in their own style.
func Blit(dst, src *cellbuf.Buffer, r cellbuf.Rectangle) {
	r = r.Intersect(src.Bounds()).Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := src.Cell(x, y)
			switch {
			case c == nil:
				continue
			case c.Width == 0:
				// The right half of a wide glyph. Only the left edge
				// of r can start on one; elsewhere the glyph was
				// already written.
				if x > r.Min.X {
					continue
				}
				c = blankLike(src.Cell(x-1, y))
			case x+c.Width > r.Max.X:
				c = c.Clone().Blank()
			}
			dst.SetCell(x, y, c)
		}
	}
}

func blankLike(c *cellbuf.Cell) *cellbuf.Cell {
	if c == nil {
		blank := cellbuf.BlankCell
		return &blank
	}
	return c.Clone().Blank()
}
