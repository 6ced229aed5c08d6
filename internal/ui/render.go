package ui

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
	"github.com/mattn/go-runewidth"

	"github.com/five82/slicer/internal/content"
	"github.com/five82/slicer/internal/holder"
)

// painter caches per-holder canvases for the current surface size and the
// colour profile cells are rendered in.
type painter struct {
	w, h     int
	canvases map[*holder.Holder]*cellbuf.Buffer
	profile  colorprofile.Profile
}

func newPainter(profile colorprofile.Profile) *painter {
	return &painter{
		canvases: make(map[*holder.Holder]*cellbuf.Buffer),
		profile:  profile,
	}
}

func (p *painter) canvas(h *holder.Holder, w, ht int) (*cellbuf.Buffer, bool) {
	if w != p.w || ht != p.h {
		clear(p.canvases)
		p.w, p.h = w, ht
	}
	if c, ok := p.canvases[h]; ok {
		return c, true
	}
	bg := h.Background()
	if bg == nil {
		return nil, false
	}
	c := bg.Paint(w, ht)
	p.canvases[h] = c
	return c, true
}

// compose paints the surface at now: the empty background, every mounted
// holder bottom to top clipped by its animated region, then the grid
// overlay while the portal is below it.
func (m Model) compose(now time.Time) *cellbuf.Buffer {
	w, h := m.layout.width, m.layout.height
	surface := content.NewCanvas(w, h, content.NewCell(' ', nil, content.Hex(m.theme.Background)))

	for _, hd := range m.machine.Portal().Mounted() {
		cv, ok := m.paint.canvas(hd, w, h)
		if !ok {
			continue
		}
		content.Blit(surface, cv, m.machine.ClipAt(hd, now).Visible(w, h))
	}

	p := m.machine.Portal()
	if !p.OnTop && !p.GridHidden {
		m.paintGrid(surface)
	}
	return surface
}

// paintGrid draws column separators and slice labels over the surface.
func (m Model) paintGrid(surface *cellbuf.Buffer) {
	active := m.highlighted()
	for i, x := range m.layout.boundaries() {
		fg := m.theme.Border
		// Boundary i separates slice i from slice i+1.
		if active == i || active == i+1 {
			fg = m.theme.BorderFocus
		}
		for y := 0; y < surface.Height(); y++ {
			surface.SetCell(x, y, content.NewCell('│', content.Hex(fg), bgAt(surface, x, y)))
		}
	}

	y := surface.Height() - LabelInset
	if y < 0 {
		return
	}
	for i, s := range m.machine.Slices() {
		col := m.layout.SliceRect(i)
		room := int(col.W) - 2
		if room <= 0 {
			continue
		}
		label := runewidth.Truncate(s.Label, room, "…")
		x := int(col.X) + (int(col.W)-runewidth.StringWidth(label))/2
		fg := m.theme.Text
		if i == active {
			fg = m.theme.Accent
		}
		for _, r := range label {
			bg := bgAt(surface, x, y)
			if i == m.focus {
				bg = content.Hex(m.theme.FocusBg)
			}
			cell := content.NewCell(r, content.Hex(fg), bg)
			if cell.Width == 0 {
				continue
			}
			surface.SetCell(x, y, cell)
			x += cell.Width
		}
	}
}

func bgAt(b *cellbuf.Buffer, x, y int) color.Color {
	if c := b.Cell(x, y); c != nil {
		return c.Style.Bg
	}
	return nil
}

// encode renders the surface as one styled line per row.
func (m Model) encode(c *cellbuf.Buffer) string {
	var src cellbuf.CellBuffer = c
	if m.paint.profile != colorprofile.TrueColor {
		src = profiled{Buffer: c, profile: m.paint.profile}
	}
	lines := make([]string, c.Height())
	for y := range lines {
		_, lines[y] = cellbuf.RenderLine(src, y)
	}
	return strings.Join(lines, "\n")
}

// profiled downsamples cell colours to what the terminal can show.
type profiled struct {
	*cellbuf.Buffer
	profile colorprofile.Profile
}

func (p profiled) Cell(x, y int) *cellbuf.Cell {
	c := p.Buffer.Cell(x, y)
	if c == nil {
		return nil
	}
	out := *c
	out.Style = cellbuf.ConvertStyle(c.Style, p.profile)
	return &out
}

// renderStatus renders the one-line status bar.
func (m Model) renderStatus() string {
	styles := m.theme.Styles()
	st := m.machine.State()

	parts := []string{styles.AccentText.Bold(true).Render("slicer")}
	phase := st.Phase.String()
	if st.Current != "" {
		phase = fmt.Sprintf("%s %s", st.Current, phase)
	}
	parts = append(parts, styles.Text.Render(phase))
	if st.Animating {
		parts = append(parts, styles.WarningText.Render("busy"))
	}
	if len(st.Mounted) > 1 {
		parts = append(parts, styles.MutedText.Render(fmt.Sprintf("%d mounted", len(st.Mounted))))
	}
	if !m.hover {
		parts = append(parts, styles.FaintText.Render("click-only"))
	}
	left := strings.Join(parts, styles.FaintText.Render(" · "))

	inner := m.width - 2
	right := m.help.ShortHelpView(m.keys.ShortHelp())
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	line := left
	if gap >= 2 {
		line = left + strings.Repeat(" ", gap) + right
	}
	return styles.Footer.Width(m.width).MaxWidth(m.width).MaxHeight(1).Render(line)
}
