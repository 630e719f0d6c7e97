// Package overlay turns the interaction state of an imcore.Context into
// colored rectangles that a backend can draw over the host application.
package overlay

import (
	"github.com/go-theft-auto/imcore"
)

// Vertex is one overlay vertex: position and packed ABGR color.
type Vertex struct {
	X, Y  float32
	Color uint32
}

// Overlay colors (packed ABGR, as read by the vertex shader)
const (
	ColorWindow      uint32 = 0x60302828
	ColorWindowFocus uint32 = 0xFFFFB040
	ColorHovered     uint32 = 0x8000C0FF
	ColorActive      uint32 = 0xC00080FF
	ColorNav         uint32 = 0xFF40FF40
	ColorSnapGuide   uint32 = 0xFF00FFFF
	ColorModalDim    uint32 = 0x80000000
)

// Overlay is a triangle list of colored rectangles describing the
// interaction state of an imcore.Context: window frames, the hovered and
// active items, the nav highlight and window snap guides.
type Overlay struct {
	Vtx []Vertex
	Idx []uint32
}

// Reset empties the overlay, keeping its buffers.
func (o *Overlay) Reset() {
	o.Vtx = o.Vtx[:0]
	o.Idx = o.Idx[:0]
}

// AddRectFilled appends a filled rectangle.
func (o *Overlay) AddRectFilled(r imcore.Rect, col uint32) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	base := uint32(len(o.Vtx))
	o.Vtx = append(o.Vtx,
		Vertex{X: r.X, Y: r.Y, Color: col},
		Vertex{X: r.X + r.W, Y: r.Y, Color: col},
		Vertex{X: r.X + r.W, Y: r.Y + r.H, Color: col},
		Vertex{X: r.X, Y: r.Y + r.H, Color: col},
	)
	o.Idx = append(o.Idx, base, base+1, base+2, base, base+2, base+3)
}

// AddRect appends a rectangle outline of the given thickness, drawn inside r.
func (o *Overlay) AddRect(r imcore.Rect, col uint32, thickness float32) {
	t := min(thickness, r.W/2, r.H/2)
	if t <= 0 {
		return
	}
	o.AddRectFilled(imcore.Rect{X: r.X, Y: r.Y, W: r.W, H: t}, col)
	o.AddRectFilled(imcore.Rect{X: r.X, Y: r.Y + r.H - t, W: r.W, H: t}, col)
	o.AddRectFilled(imcore.Rect{X: r.X, Y: r.Y + t, W: t, H: r.H - 2*t}, col)
	o.AddRectFilled(imcore.Rect{X: r.X + r.W - t, Y: r.Y + t, W: t, H: r.H - 2*t}, col)
}

// addGuide appends an axis-aligned snap guide.
func (o *Overlay) addGuide(g imcore.SnapGuide, col uint32) {
	if g.Horizontal {
		o.AddRectFilled(imcore.Rect{X: g.X1, Y: g.Y1, W: g.X2 - g.X1, H: 1}, col)
		return
	}
	o.AddRectFilled(imcore.Rect{X: g.X1, Y: g.Y1, W: 1, H: g.Y2 - g.Y1}, col)
}

// Build fills the overlay from the state ctx reached at its last EndFrame.
// Windows are drawn back to front, without the default window.
func (o *Overlay) Build(ctx *imcore.Context) {
	o.Reset()

	focused := ctx.FocusedWindow()
	modal := ctx.GetTopMostPopupModal()
	display := imcore.Rect{W: ctx.DisplaySize.X, H: ctx.DisplaySize.Y}

	for _, w := range ctx.Windows() {
		if !w.Active || w == ctx.DefaultWindow() {
			continue
		}
		if w == modal {
			o.AddRectFilled(display, ColorModalDim)
		}
		col := ColorWindow
		if w == focused {
			col = ColorWindowFocus
		}
		o.AddRect(w.Rect(), col, 1)
	}

	if r, ok := ctx.HoveredItemRect(); ok {
		col := ColorHovered
		if ctx.ActiveID() == ctx.HoveredID() {
			col = ColorActive
		}
		o.AddRectFilled(r, col)
	}
	if r, ok := ctx.NavHighlightRect(); ok {
		o.AddRect(imcore.Rect{X: r.X - 2, Y: r.Y - 2, W: r.W + 4, H: r.H + 4}, ColorNav, 2)
	}
	for _, g := range ctx.SnapGuides() {
		o.addGuide(g, ColorSnapGuide)
	}
}
