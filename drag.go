package imcore

// Window moving. A left press on a window's empty space (no item claimed
// the press) makes the window's MoveID active; while the button is held the
// window follows the pointer, clamped to the display and snapped.

// startMovingWindow begins a move of w from the current pointer position.
func (ctx *Context) startMovingWindow(w *Window) {
	ctx.FocusWindow(w)
	ctx.setActiveID(w.MoveID, w)
	ctx.activeIDSource = InputSourceMouse
	ctx.activeIDMouseButton = MouseButtonLeft
	ctx.activeIDClickOffset = ctx.Input.MousePos().Sub(w.Pos)
	ctx.movingWindow = w
	ctx.logger.Debug("start moving window", "window", w.Name)
}

// MovingWindow returns the window being dragged, or nil.
func (ctx *Context) MovingWindow() *Window {
	return ctx.movingWindow
}

// updateMouseMovingWindowNewFrame applies the pointer motion of the last
// frame to the moving window, or ends the move on release.
func (ctx *Context) updateMouseMovingWindowNewFrame() {
	mw := ctx.movingWindow
	if mw == nil {
		return
	}
	ctx.KeepAliveID(mw.MoveID)

	in := ctx.Input
	if ctx.activeID != mw.MoveID || !in.MouseDown(MouseButtonLeft) {
		ctx.endMovingWindow()
		return
	}
	if !in.MousePosValid() {
		return
	}

	pos := in.MousePos().Sub(ctx.activeIDClickOffset)

	// Clamp to screen bounds
	if ctx.DisplaySize.X > 0 && ctx.DisplaySize.Y > 0 {
		pos.X = clampf(pos.X, 0, maxf(0, ctx.DisplaySize.X-mw.Size.X))
		pos.Y = clampf(pos.Y, 0, maxf(0, ctx.DisplaySize.Y-mw.Size.Y))
	}
	pos, ctx.snapGuides = ctx.snapWindow(mw, pos)
	mw.Pos = pos
}

// endMovingWindow ends a move, applying grid snapping to the final position.
func (ctx *Context) endMovingWindow() {
	mw := ctx.movingWindow
	ctx.movingWindow = nil
	ctx.snapGuides = ctx.snapGuides[:0]
	if ctx.activeID == mw.MoveID {
		ctx.ClearActiveID()
	}
	if grid := ctx.cfg.WindowSnapGrid; grid > 0 {
		mw.Pos = snapToGrid(mw.Pos, grid)
	}
	ctx.logger.Debug("stop moving window", "window", mw.Name, "x", mw.Pos.X, "y", mw.Pos.Y)
}

// snapToGrid rounds a position to the nearest grid point.
func snapToGrid(p Vec2, grid float32) Vec2 {
	return Vec2{
		X: float32(int(p.X/grid+0.5)) * grid,
		Y: float32(int(p.Y/grid+0.5)) * grid,
	}
}
