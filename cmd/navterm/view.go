package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-theft-auto/imcore"
	"github.com/go-theft-auto/imcore/internal/demo"
)

// cellStyle is the visual state of one terminal cell.
type cellStyle int

const (
	styleBlank cellStyle = iota
	styleBorder
	styleBorderFocused
	styleTitle
	styleItem
	styleHovered
	styleActive
	styleNav
	styleDimmed
)

var styles = map[cellStyle]lipgloss.Style{
	styleBlank:         lipgloss.NewStyle(),
	styleBorder:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	styleBorderFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	styleTitle:         lipgloss.NewStyle().Bold(true),
	styleItem:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	styleHovered:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Underline(true),
	styleActive:        lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")),
	styleNav:           lipgloss.NewStyle().Reverse(true).Bold(true),
	styleDimmed:        lipgloss.NewStyle().Faint(true),
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62"))

type cell struct {
	r     rune
	style cellStyle
}

// canvas is a character grid that windows and items are painted onto.
type canvas struct {
	w, h  int
	cells []cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([]cell, w*h)}
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
	return c
}

func (c *canvas) set(x, y int, r rune, s cellStyle) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell{r: r, style: s}
}

func (c *canvas) text(x, y, maxW int, s string, style cellStyle) {
	i := 0
	for _, r := range s {
		if i >= maxW {
			return
		}
		c.set(x+i, y, r, style)
		i++
	}
}

func (c *canvas) fill(x, y, w, h int, style cellStyle) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			c.set(xx, yy, ' ', style)
		}
	}
}

func (c *canvas) dim() {
	for i := range c.cells {
		c.cells[i].style = styleDimmed
	}
}

func (c *canvas) frame(x, y, w, h int, title string, style cellStyle) {
	if w < 2 || h < 2 {
		return
	}
	c.fill(x, y, w, h, styleBlank)
	for xx := x + 1; xx < x+w-1; xx++ {
		c.set(xx, y, '─', style)
		c.set(xx, y+h-1, '─', style)
	}
	for yy := y + 1; yy < y+h-1; yy++ {
		c.set(x, yy, '│', style)
		c.set(x+w-1, yy, '│', style)
	}
	c.set(x, y, '┌', style)
	c.set(x+w-1, y, '┐', style)
	c.set(x, y+h-1, '└', style)
	c.set(x+w-1, y+h-1, '┘', style)
	if title != "" {
		c.text(x+2, y, w-4, " "+title+" ", styleTitle)
	}
}

// String renders the grid, one lipgloss call per run of equal style.
func (c *canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := c.cells[y*c.w : (y+1)*c.w]
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].style == row[start].style {
				continue
			}
			var run strings.Builder
			for _, cl := range row[start:x] {
				run.WriteRune(cl.r)
			}
			b.WriteString(styles[row[start].style].Render(run.String()))
			start = x
		}
	}
	return b.String()
}

// itemStyle maps the interaction state of id to a style.
func itemStyle(ctx *imcore.Context, id imcore.ID) cellStyle {
	switch {
	case id != 0 && ctx.ActiveID() == id:
		return styleActive
	case ctx.NavHighlightVisible() && ctx.NavID() == id:
		return styleNav
	case id != 0 && ctx.HoveredID() == id:
		return styleHovered
	}
	return styleItem
}

// windowTitle strips the "##" suffix used for ID disambiguation.
func windowTitle(w *imcore.Window) string {
	if w.IsPopup() {
		return ""
	}
	return imcore.LabelText(w.Name)
}

// render paints the windows of ctx back to front with their items.
func render(ctx *imcore.Context, items []demo.Item) string {
	c := newCanvas(int(ctx.DisplaySize.X), int(ctx.DisplaySize.Y))
	modal := ctx.GetTopMostPopupModal()
	focused := ctx.FocusedWindow()

	for _, w := range ctx.Windows() {
		if !w.Active || w == ctx.DefaultWindow() {
			continue
		}
		if w == modal {
			c.dim()
		}
		style := styleBorder
		if w == focused {
			style = styleBorderFocused
		}
		c.frame(int(w.Pos.X), int(w.Pos.Y), int(w.Size.X), int(w.Size.Y), windowTitle(w), style)

		for _, it := range items {
			if it.Window != w {
				continue
			}
			s := itemStyle(ctx, it.ID)
			if s != styleItem {
				c.fill(int(it.Rect.X), int(it.Rect.Y), int(it.Rect.W), int(it.Rect.H), s)
			}
			c.text(int(it.Rect.X), int(it.Rect.Y), int(it.Rect.W), it.Text, s)
		}
	}
	return c.String()
}
