package imcore

// SnapGuide is a guide line shown while a window snaps during a move.
type SnapGuide struct {
	X1, Y1, X2, Y2 float32
	Horizontal     bool
}

// SnapGuides returns the guides of the current window move, for overlays.
func (ctx *Context) SnapGuides() []SnapGuide {
	return ctx.snapGuides
}

// snapWindow snaps a moving window at pos to the display edges and center,
// then to the edges of other visible windows, within
// Config.WindowSnapMargin. Each axis snaps at most once.
func (ctx *Context) snapWindow(w *Window, pos Vec2) (Vec2, []SnapGuide) {
	guides := ctx.snapGuides[:0]
	margin := ctx.cfg.WindowSnapMargin
	if margin <= 0 {
		return pos, guides
	}

	b := Rect{X: pos.X, Y: pos.Y, W: w.Size.X, H: w.Size.Y}
	screen := ctx.DisplaySize
	snappedX, snappedY := false, false

	snapX := func(target, newX float32, g SnapGuide) {
		if !snappedX && absf(target) < margin {
			pos.X = newX
			snappedX = true
			guides = append(guides, g)
		}
	}
	snapY := func(target, newY float32, g SnapGuide) {
		if !snappedY && absf(target) < margin {
			pos.Y = newY
			snappedY = true
			guides = append(guides, g)
		}
	}

	if screen.X > 0 && screen.Y > 0 {
		snapX(b.X, 0, SnapGuide{X1: 0, Y1: 0, X2: 0, Y2: screen.Y})
		snapY(b.Y, 0, SnapGuide{X1: 0, Y1: 0, X2: screen.X, Y2: 0, Horizontal: true})
		snapX(b.X+b.W-screen.X, screen.X-b.W, SnapGuide{X1: screen.X, Y1: 0, X2: screen.X, Y2: screen.Y})
		snapY(b.Y+b.H-screen.Y, screen.Y-b.H, SnapGuide{X1: 0, Y1: screen.Y, X2: screen.X, Y2: screen.Y, Horizontal: true})

		center := screen.Mul(0.5)
		snapX(b.X+b.W/2-center.X, center.X-b.W/2, SnapGuide{X1: center.X, Y1: 0, X2: center.X, Y2: screen.Y})
		snapY(b.Y+b.H/2-center.Y, center.Y-b.H/2, SnapGuide{X1: 0, Y1: center.Y, X2: screen.X, Y2: center.Y, Horizontal: true})
	}

	for _, other := range ctx.windows {
		if other == w || other == ctx.defaultWindow || other.IsPopup() || !(other.Active || other.WasActive) {
			continue
		}
		o := other.Rect()
		top, bottom := minf(b.Y, o.Y), maxf(b.Y+b.H, o.Y+o.H)
		left, right := minf(b.X, o.X), maxf(b.X+b.W, o.X+o.W)

		// Vertical edges: abut, then align
		snapX(b.X+b.W-o.X, o.X-b.W, SnapGuide{X1: o.X, Y1: top, X2: o.X, Y2: bottom})
		snapX(b.X-o.X, o.X, SnapGuide{X1: o.X, Y1: top, X2: o.X, Y2: bottom})
		snapX(b.X-(o.X+o.W), o.X+o.W, SnapGuide{X1: o.X + o.W, Y1: top, X2: o.X + o.W, Y2: bottom})
		snapX(b.X+b.W-(o.X+o.W), o.X+o.W-b.W, SnapGuide{X1: o.X + o.W, Y1: top, X2: o.X + o.W, Y2: bottom})

		// Horizontal edges
		snapY(b.Y+b.H-o.Y, o.Y-b.H, SnapGuide{X1: left, Y1: o.Y, X2: right, Y2: o.Y, Horizontal: true})
		snapY(b.Y-o.Y, o.Y, SnapGuide{X1: left, Y1: o.Y, X2: right, Y2: o.Y, Horizontal: true})
		snapY(b.Y-(o.Y+o.H), o.Y+o.H, SnapGuide{X1: left, Y1: o.Y + o.H, X2: right, Y2: o.Y + o.H, Horizontal: true})
		snapY(b.Y+b.H-(o.Y+o.H), o.Y+o.H-b.H, SnapGuide{X1: left, Y1: o.Y + o.H, X2: right, Y2: o.Y + o.H, Horizontal: true})
	}

	return pos, guides
}
