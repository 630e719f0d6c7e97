package imcore

import "math"

// NavLayer separates a window's items into independently navigated groups.
type NavLayer int

const (
	NavLayerMain NavLayer = iota // Regular content
	NavLayerMenu                 // Items between BeginMenuBar and EndMenuBar
	NavLayerCount
)

// String returns the layer name for logging.
func (l NavLayer) String() string {
	if l == NavLayerMenu {
		return "menu"
	}
	return "main"
}

// NavMoveFlags modify how a move request resolves.
type NavMoveFlags uint32

const (
	NavMoveNone NavMoveFlags = 0
	// NavMoveWrap retries from the opposite edge on the same line when
	// nothing lies in the requested direction.
	NavMoveWrap NavMoveFlags = 1 << iota
	// NavMoveLoop retries from the opposite edge on the next line, then from
	// the start of the window.
	NavMoveLoop
	// NavMoveAllowCurrent lets the currently focused item be a candidate.
	NavMoveAllowCurrent
)

// NavMoveResult is the best candidate found for a move request.
type NavMoveResult struct {
	ID        ID
	Window    *Window
	RectRel   Rect // Window-relative
	DistAxial float32
	DistPerp  float32
	DistBox   float32
}

// NavMoveRequest is a pending directional move, resolved at EndFrame.
type NavMoveRequest struct {
	Dir        Dir
	SourceRect Rect // Window-relative
	Flags      NavMoveFlags
	Layer      NavLayer
	Window     *Window
	Result     NavMoveResult

	found bool
}

// navItem is a navigation candidate submitted this frame.
type navItem struct {
	ID      ID
	RectRel Rect
	Flags   ItemFlags
	Window  *Window
	Layer   NavLayer
}

type navState struct {
	window            *Window
	id                ID
	layer             NavLayer
	idIsAlive         bool
	disableHighlight  bool
	disableMouseHover bool
	lastMousePos      Vec2

	// Activation, valid for the current frame
	activateID        ID // Activation requested this frame (press edge)
	activateDownID    ID // Activation key held
	activatePressedID ID // Activation key pressed this frame
	activateRepeatID  ID // Activation key repeated this frame

	// Candidates in the nav window + layer in submission order, or every
	// item while no window has focus
	items []navItem

	// FindInitial
	initRequest        bool
	initWindow         *Window
	initLayer          NavLayer
	initResultID       ID
	initResultRectRel  Rect
	initResultExplicit bool

	// MoveRequested
	moveSubmitted bool
	move          NavMoveRequest

	// Resolved, readable until the next NewFrame
	lastResult      NavMoveResult
	lastResultValid bool

	// Focus changes made by a move request or a Tab
	justMovedToID   ID
	justMovedToNext ID
	justTabbedID    ID

	// Tab stop index of the nav item: this frame's and last frame's
	idTabCounter     int
	lastIDTabCounter int

	altArmed bool
}

func (n *navState) init() {
	n.items = make([]navItem, 0, 64)
	n.disableHighlight = true
	n.idTabCounter, n.lastIDTabCounter = noFocusRequest, noFocusRequest
}

func (n *navState) cancelMove() {
	n.moveSubmitted = false
	n.move = NavMoveRequest{}
}

// NavID returns the item that owns keyboard/gamepad focus.
func (ctx *Context) NavID() ID { return ctx.nav.id }

// NavWindow returns the window that owns keyboard/gamepad focus.
func (ctx *Context) NavWindow() *Window { return ctx.nav.window }

// NavLayer returns the active navigation layer of the nav window.
func (ctx *Context) NavLayer() NavLayer { return ctx.nav.layer }

// NavHighlightVisible reports whether renderers should draw the focus
// highlight around NavID.
func (ctx *Context) NavHighlightVisible() bool {
	return ctx.nav.id != 0 && !ctx.nav.disableHighlight
}

// NavHighlightRect returns the screen rectangle of the nav item when the
// highlight is visible.
func (ctx *Context) NavHighlightRect() (Rect, bool) {
	n := &ctx.nav
	if !ctx.NavHighlightVisible() || n.window == nil {
		return Rect{}, false
	}
	return n.window.NavRectRel[n.layer].Translate(n.window.Pos), true
}

// SetNavLayer switches the nav window to layer, restoring that layer's
// remembered item or requesting an initial one.
func (ctx *Context) SetNavLayer(layer NavLayer) {
	if layer < 0 || layer >= NavLayerCount || ctx.nav.window == nil {
		return
	}
	ctx.navRestoreLayer(layer)
}

// SetFocus moves navigation focus to id in the current window.
func (ctx *Context) SetFocus(id ID) {
	w := ctx.currentWindow
	if w == nil {
		w = ctx.nav.window
	}
	if w == nil {
		return
	}
	if ctx.nav.window != w {
		ctx.FocusWindow(w)
	}
	ctx.SetFocusID(id, w)
	ctx.nav.disableHighlight = false
}

// SetFocusID sets navigation focus without bringing w to the front. When
// id is the last submitted item its rectangle becomes the layer's
// remembered source rect.
func (ctx *Context) SetFocusID(id ID, w *Window) {
	if w == nil {
		return
	}
	layer := w.navLayerCurrent
	rel := w.NavRectRel[layer]
	if ctx.lastItem.ID == id {
		rel = ctx.lastItem.Rect.Translate(w.Pos.Mul(-1))
	}
	ctx.setNavID(id, layer, w, rel)
	ctx.nav.cancelMove()
	ctx.nav.initRequest = false
}

func (ctx *Context) setNavID(id ID, layer NavLayer, w *Window, rectRel Rect) {
	if ctx.nav.id != id || ctx.nav.window != w {
		ctx.navLog.Debug("nav focus", "id", id, "window", windowName(w), "layer", layer)
	}
	ctx.nav.id = id
	ctx.nav.layer = layer
	ctx.nav.window = w
	ctx.nav.idIsAlive = true
	w.NavLastIDs[layer] = id
	w.NavRectRel[layer] = rectRel
}

// RequestNavMove submits a move request from source (window-relative) in
// the nav window's active layer. With no nav window the request targets the
// main layer of the current window. Items already submitted this frame are
// scored immediately; the rest are scored as they are submitted. The
// request resolves at EndFrame.
func (ctx *Context) RequestNavMove(dir Dir, source Rect, flags NavMoveFlags) {
	w, layer := ctx.nav.window, ctx.nav.layer
	if w == nil {
		w, layer = ctx.currentWindow, NavLayerMain
	}
	if w == nil || dir == DirNone {
		ctx.navLog.Debug("move request dropped", "dir", dir, "reason", "no nav window")
		return
	}
	ctx.nav.move = NavMoveRequest{
		Dir:        dir,
		SourceRect: source,
		Flags:      flags,
		Layer:      layer,
		Window:     w,
	}
	ctx.nav.moveSubmitted = true
	for _, it := range ctx.nav.items {
		ctx.navScore(&ctx.nav.move, it, source, nil)
	}
}

// NavJustMovedToID returns the item a move request just focused. It stays
// readable until the end of the frame after the move resolved.
func (ctx *Context) NavJustMovedToID() ID { return ctx.nav.justMovedToID }

// NavJustTabbedID returns the item that Tab or SetKeyboardFocusHere focused
// this frame, or 0.
func (ctx *Context) NavJustTabbedID() ID { return ctx.nav.justTabbedID }

// GetNavMoveResult returns the item chosen by this frame's move request.
// The result is available after EndFrame until the next NewFrame.
func (ctx *Context) GetNavMoveResult() (ID, bool) {
	if !ctx.nav.lastResultValid {
		return 0, false
	}
	return ctx.nav.lastResult.ID, true
}

// NavMoveResult returns the full result of the last resolved request.
func (ctx *Context) NavMoveResult() (NavMoveResult, bool) {
	return ctx.nav.lastResult, ctx.nav.lastResultValid
}

// navInitWindow issues a FindInitial request for w's active layer.
func (ctx *Context) navInitWindow(w *Window) {
	ctx.nav.initRequest = true
	ctx.nav.initWindow = w
	ctx.nav.initLayer = ctx.nav.layer
	ctx.nav.initResultID = 0
	ctx.nav.initResultExplicit = false
	ctx.navLog.Debug("find initial", "window", windowName(w), "layer", ctx.nav.layer)
}

// navRestoreLayer activates layer in the nav window.
func (ctx *Context) navRestoreLayer(layer NavLayer) {
	w := ctx.nav.window
	ctx.nav.layer = layer
	ctx.nav.cancelMove()
	if id := w.NavLastIDs[layer]; id != 0 {
		ctx.setNavID(id, layer, w, w.NavRectRel[layer])
	} else {
		ctx.nav.id = 0
		ctx.navInitWindow(w)
	}
	ctx.nav.disableHighlight = false
}

// navProcessItem records a submitted item as a navigation candidate and
// feeds the pending FindInitial and move requests.
func (ctx *Context) navProcessItem(w *Window, id ID, bb Rect, flags ItemFlags) {
	layer := w.navLayerCurrent
	if w.Flags&WindowFlagsNoNav != 0 || flags&(ItemFlagsNoNav|ItemFlagsDisabled) != 0 {
		return
	}
	w.navLayersActiveMaskNext |= 1 << layer
	rel := bb.Translate(w.Pos.Mul(-1))

	if id == ctx.nav.id && w == ctx.nav.window {
		ctx.nav.idIsAlive = true
		w.NavRectRel[layer] = rel
	}

	n := &ctx.nav
	if n.initRequest && w == n.initWindow && layer == n.initLayer {
		explicit := flags&ItemFlagsDefaultFocus != 0
		if n.initResultID == 0 || explicit && !n.initResultExplicit {
			n.initResultID = id
			n.initResultRectRel = rel
			n.initResultExplicit = explicit
		}
	}

	// Without a nav window every item is kept: a request may still target
	// the current window.
	if n.window != nil && (w != n.window || layer != n.layer) {
		return
	}
	it := navItem{ID: id, RectRel: rel, Flags: flags, Window: w, Layer: layer}
	n.items = append(n.items, it)
	if n.moveSubmitted {
		ctx.navScore(&n.move, it, n.move.SourceRect, nil)
	}
}

// navDistances measures a candidate against the source rectangle.
// axial is the center delta along dir (positive means in front), perp the
// absolute center delta across dir, box the gap between the rectangles.
func navDistances(dir Dir, src, cand Rect) (axial, perp, box float32) {
	sc, cc := src.Center(), cand.Center()
	switch dir {
	case DirLeft:
		axial, perp = sc.X-cc.X, absf(cc.Y-sc.Y)
	case DirRight:
		axial, perp = cc.X-sc.X, absf(cc.Y-sc.Y)
	case DirUp:
		axial, perp = sc.Y-cc.Y, absf(cc.X-sc.X)
	case DirDown:
		axial, perp = cc.Y-sc.Y, absf(cc.X-sc.X)
	}
	return axial, perp, rectDistance(src, cand)
}

// rectDistance returns the euclidean gap between two rectangles, zero when
// they touch or overlap.
func rectDistance(a, b Rect) float32 {
	dx := maxf(0, maxf(a.X-(b.X+b.W), b.X-(a.X+a.W)))
	dy := maxf(0, maxf(a.Y-(b.Y+b.H), b.Y-(a.Y+a.H)))
	return float32(math.Hypot(float64(dx), float64(dy)))
}

// navScore offers a candidate to req using src as the source rectangle.
// Candidates are compared by axial, then perpendicular, then box distance;
// an exact tie keeps the earlier submission. accept optionally filters
// candidates for fallback passes.
func (ctx *Context) navScore(req *NavMoveRequest, it navItem, src Rect, accept func(navItem) bool) {
	if !req.owns(it) || it.ID == ctx.nav.id && req.Flags&NavMoveAllowCurrent == 0 {
		return
	}
	if accept != nil && !accept(it) {
		return
	}
	axial, perp, box := navDistances(req.Dir, src, it.RectRel)
	// Zero is a center tie: the candidate is on neither side.
	if axial <= 0 {
		return
	}
	if verbose() {
		ctx.navLog.Debug("nav candidate", "id", it.ID, "axial", axial, "perp", perp, "box", box)
	}
	res := &req.Result
	if req.found && !navBetter(axial, perp, box, res) {
		return
	}
	req.found = true
	*res = NavMoveResult{
		ID:        it.ID,
		Window:    req.Window,
		RectRel:   it.RectRel,
		DistAxial: axial,
		DistPerp:  perp,
		DistBox:   box,
	}
}

// owns reports whether it was submitted in the request's window and layer.
func (req *NavMoveRequest) owns(it navItem) bool {
	return it.Window == req.Window && it.Layer == req.Layer
}

func navBetter(axial, perp, box float32, best *NavMoveResult) bool {
	if axial != best.DistAxial {
		return axial < best.DistAxial
	}
	if perp != best.DistPerp {
		return perp < best.DistPerp
	}
	return box < best.DistBox
}

// navRescore runs a fallback pass over this frame's candidates.
func (ctx *Context) navRescore(req *NavMoveRequest, src Rect, accept func(navItem) bool) {
	for _, it := range ctx.nav.items {
		ctx.navScore(req, it, src, accept)
	}
}

// navApplyFallbacks retries a request that found nothing: Wrap restarts
// from the opposite edge of the window on the same line; Loop moves to the
// next line, then to the start of the window.
func (ctx *Context) navApplyFallbacks(req *NavMoveRequest) {
	w := req.Window
	src := req.SourceRect
	bounds := Rect{W: w.Size.X, H: w.Size.Y}
	for _, it := range ctx.nav.items {
		if req.owns(it) {
			bounds = unionRect(bounds, it.RectRel)
		}
	}

	// A source just outside the opposite edge, on the same line.
	edge := src
	switch req.Dir {
	case DirRight:
		edge.X = bounds.X - src.W
	case DirLeft:
		edge.X = bounds.X + bounds.W
	case DirDown:
		edge.Y = bounds.Y - src.H
	case DirUp:
		edge.Y = bounds.Y + bounds.H
	}

	if req.Flags&NavMoveWrap != 0 {
		sameLine := func(it navItem) bool { return onSameLine(req.Dir, src, it.RectRel) }
		ctx.navRescore(req, edge, sameLine)
		if req.found {
			ctx.navLog.Debug("nav wrap", "dir", req.Dir, "id", req.Result.ID)
			return
		}
	}

	if req.Flags&NavMoveLoop != 0 {
		next := edge
		var beyond func(it navItem) bool
		switch req.Dir {
		case DirRight:
			next.Y = src.Y + src.H
			beyond = func(it navItem) bool { return it.RectRel.Center().Y > src.Y+src.H }
		case DirLeft:
			next.Y = src.Y - src.H
			beyond = func(it navItem) bool { return it.RectRel.Center().Y < src.Y }
		case DirDown:
			next.X = src.X + src.W
			beyond = func(it navItem) bool { return it.RectRel.Center().X > src.X+src.W }
		case DirUp:
			next.X = src.X - src.W
			beyond = func(it navItem) bool { return it.RectRel.Center().X < src.X }
		}
		if line, ok := ctx.navNearestLine(req, beyond); ok {
			if req.Dir.horizontal() {
				next.Y, next.H = line.Y, line.H
			} else {
				next.X, next.W = line.X, line.W
			}
			onLine := func(it navItem) bool { return beyond(it) && onSameLine(req.Dir, line, it.RectRel) }
			ctx.navRescore(req, next, onLine)
		}
		if req.found {
			ctx.navLog.Debug("nav loop", "dir", req.Dir, "id", req.Result.ID)
			return
		}

		// No next line: restart from the first line of the window.
		start := edge
		switch req.Dir {
		case DirRight:
			start.Y = bounds.Y - src.H
		case DirLeft:
			start.Y = bounds.Y + bounds.H
		case DirDown:
			start.X = bounds.X - src.W
		case DirUp:
			start.X = bounds.X + bounds.W
		}
		ctx.navRescoreFromCorner(req, start)
		if req.found {
			ctx.navLog.Debug("nav loop to start", "dir", req.Dir, "id", req.Result.ID)
		}
	}
}

// navNearestLine returns the rect of the candidate whose line lies closest
// past the source, so that a shorter line is never skipped for a longer
// one further on.
func (ctx *Context) navNearestLine(req *NavMoveRequest, beyond func(navItem) bool) (Rect, bool) {
	var line Rect
	found := false
	for _, it := range ctx.nav.items {
		if !req.owns(it) || it.ID == ctx.nav.id && req.Flags&NavMoveAllowCurrent == 0 || !beyond(it) {
			continue
		}
		r := it.RectRel
		closer := false
		switch req.Dir {
		case DirRight:
			closer = r.Y < line.Y
		case DirLeft:
			closer = r.Y+r.H > line.Y+line.H
		case DirDown:
			closer = r.X < line.X
		case DirUp:
			closer = r.X+r.W > line.X+line.W
		}
		if !found || closer {
			line, found = r, true
		}
	}
	return line, found
}

// navRescoreFromCorner picks the candidate closest to the start corner:
// first along the line direction, then across it.
func (ctx *Context) navRescoreFromCorner(req *NavMoveRequest, corner Rect) {
	cross := DirDown
	switch req.Dir {
	case DirLeft:
		cross = DirUp
	case DirDown:
		cross = DirRight
	case DirUp:
		cross = DirLeft
	}
	for _, it := range ctx.nav.items {
		if !req.owns(it) || it.ID == ctx.nav.id && req.Flags&NavMoveAllowCurrent == 0 {
			continue
		}
		line, _, box := navDistances(cross, corner, it.RectRel)
		along, _, _ := navDistances(req.Dir, corner, it.RectRel)
		if line <= 0 || along <= 0 {
			continue
		}
		res := &req.Result
		if req.found && !navBetter(line, along, box, res) {
			continue
		}
		req.found = true
		*res = NavMoveResult{ID: it.ID, Window: req.Window, RectRel: it.RectRel,
			DistAxial: line, DistPerp: along, DistBox: box}
	}
}

// onSameLine reports whether cand overlaps src across the move direction.
func onSameLine(dir Dir, src, cand Rect) bool {
	if dir.horizontal() {
		return cand.Y < src.Y+src.H && cand.Y+cand.H > src.Y
	}
	return cand.X < src.X+src.W && cand.X+cand.W > src.X
}

func unionRect(a, b Rect) Rect {
	minX, minY := minf(a.X, b.X), minf(a.Y, b.Y)
	maxX, maxY := maxf(a.X+a.W, b.X+b.W), maxf(a.Y+a.H, b.Y+b.H)
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// navNewFrame reads navigation input and turns it into activation state
// and move/init requests for this frame.
func (ctx *Context) navNewFrame() {
	n := &ctx.nav
	in := ctx.Input

	n.items = n.items[:0]
	n.lastResultValid = false
	n.lastResult = NavMoveResult{}
	n.activateID, n.activateDownID, n.activatePressedID, n.activateRepeatID = 0, 0, 0, 0
	n.idIsAlive = false
	n.cancelMove()
	n.justMovedToID, n.justMovedToNext = n.justMovedToNext, 0
	n.justTabbedID = 0
	n.lastIDTabCounter, n.idTabCounter = n.idTabCounter, noFocusRequest

	if pos, ok := ctx.mousePos(); ok && pos != n.lastMousePos {
		n.disableMouseHover = false
		n.lastMousePos = pos
	}

	// The focused window went away.
	if n.window != nil && !n.window.WasActive && !n.window.Active {
		ctx.focusTopMostWindow(n.window)
	}

	// A click hands control back to the pointer and cancels requests.
	if in.AnyMouseClicked() {
		n.disableHighlight = true
		n.disableMouseHover = false
		n.altArmed = false
		n.initRequest = false
		return
	}

	ctx.navUpdateLayerToggle()
	ctx.navUpdateCancel()
	ctx.navUpdateActivate()
	ctx.navUpdateMove()
}

func (ctx *Context) navUpdateLayerToggle() {
	n := &ctx.nav
	in := ctx.Input
	toggle := false
	if in.KeyPressed(KeyAlt) {
		n.altArmed = true
	} else if n.altArmed && in.AnyKeyPressed(KeyAlt) {
		n.altArmed = false
	}
	if in.KeyReleased(KeyAlt) && n.altArmed {
		n.altArmed = false
		toggle = true
	}
	if in.KeyPressed(KeyGamepadStart) {
		toggle = true
	}
	if !toggle || n.window == nil {
		return
	}
	w := n.window
	if w.navLayersActiveMask&(1<<NavLayerMenu) == 0 && w.Flags&WindowFlagsMenuBar == 0 {
		return
	}
	layer := NavLayerMenu
	if n.layer == NavLayerMenu {
		layer = NavLayerMain
	}
	ctx.navLog.Debug("nav layer toggle", "window", w.Name, "layer", layer)
	ctx.navRestoreLayer(layer)
}

// navUpdateCancel handles Escape / gamepad B: release the active item,
// leave the menu layer, close the top popup, or hide the highlight.
func (ctx *Context) navUpdateCancel() {
	in := ctx.Input
	if !in.KeyPressed(KeyEscape) && !in.KeyPressed(KeyGamepadFaceRight) {
		return
	}
	n := &ctx.nav
	switch {
	case ctx.activeID != 0:
		ctx.ClearActiveID()
	case n.window != nil && n.layer != NavLayerMain:
		ctx.navRestoreLayer(NavLayerMain)
	case len(ctx.openPopupStack) > 0 && ctx.openPopupStack[len(ctx.openPopupStack)-1].Window != nil &&
		ctx.openPopupStack[len(ctx.openPopupStack)-1].Window.Flags&WindowFlagsModal == 0:
		ctx.ClosePopupToLevel(len(ctx.openPopupStack)-1, true)
	default:
		n.disableHighlight = true
	}
}

func (ctx *Context) navUpdateActivate() {
	n := &ctx.nav
	in := ctx.Input
	if n.id == 0 || n.window == nil || n.window.Flags&WindowFlagsNoNav != 0 {
		return
	}
	down := in.KeyDown(KeySpace) || in.KeyDown(KeyEnter) || in.KeyDown(KeyGamepadFaceDown)
	pressed := in.KeyPressed(KeySpace) || in.KeyPressed(KeyEnter) || in.KeyPressed(KeyGamepadFaceDown)
	if !down && !pressed {
		return
	}
	if pressed {
		n.disableHighlight = false
	}
	if ctx.activeID != 0 && ctx.activeID != n.id {
		return
	}
	n.activateDownID = n.id
	if pressed {
		n.activateID = n.id
		n.activatePressedID = n.id
	}
	delay, rate := ctx.cfg.KeyRepeatDelay, ctx.cfg.KeyRepeatRate
	if in.KeyRepeated(KeySpace, delay, rate) || in.KeyRepeated(KeyEnter, delay, rate) ||
		in.KeyRepeated(KeyGamepadFaceDown, delay, rate) {
		n.activateRepeatID = n.id
	}
}

func (ctx *Context) navUpdateMove() {
	n := &ctx.nav
	in := ctx.Input
	delay, rate := ctx.cfg.KeyRepeatDelay, ctx.cfg.KeyRepeatRate
	dir := DirNone
	switch {
	case in.KeyRepeated(KeyLeft, delay, rate) || in.KeyRepeated(KeyGamepadDpadLeft, delay, rate):
		dir = DirLeft
	case in.KeyRepeated(KeyRight, delay, rate) || in.KeyRepeated(KeyGamepadDpadRight, delay, rate):
		dir = DirRight
	case in.KeyRepeated(KeyUp, delay, rate) || in.KeyRepeated(KeyGamepadDpadUp, delay, rate):
		dir = DirUp
	case in.KeyRepeated(KeyDown, delay, rate) || in.KeyRepeated(KeyGamepadDpadDown, delay, rate):
		dir = DirDown
	}
	if dir == DirNone || in.ModCtrl {
		return
	}
	// A pointer-held item blocks every move; a nav-activated one only the
	// directions it consumes.
	if ctx.activeID != 0 && (ctx.activeIDSource != InputSourceNav || ctx.IsActiveIDUsingNavDir(dir)) {
		return
	}

	if n.window == nil {
		ctx.focusTopMostWindow(nil)
		if n.window == nil {
			return
		}
	}
	if n.window.Flags&WindowFlagsNoNav != 0 {
		return
	}
	n.disableHighlight = false
	n.disableMouseHover = true

	if n.id == 0 {
		ctx.navInitWindow(n.window)
		return
	}
	ctx.RequestNavMove(dir, n.window.NavRectRel[n.layer], ctx.cfg.navMoveFlags())
}

// navEndFrame resolves this frame's requests and drops a nav focus whose
// item was not submitted.
func (ctx *Context) navEndFrame() {
	n := &ctx.nav

	if n.initRequest && n.initWindow != nil {
		switch {
		case n.initWindow != n.window:
			n.initRequest = false
		case n.initResultID != 0:
			ctx.setNavID(n.initResultID, n.initLayer, n.initWindow, n.initResultRectRel)
			n.initRequest = false
		case !n.initWindow.Active:
			n.initRequest = false
		}
	}

	if n.moveSubmitted {
		req := &n.move
		if !req.found && req.Flags&(NavMoveWrap|NavMoveLoop) != 0 {
			ctx.navApplyFallbacks(req)
		}
		if req.found {
			res := req.Result
			ctx.setNavID(res.ID, req.Layer, res.Window, res.RectRel)
			n.lastResult = res
			n.lastResultValid = true
			n.justMovedToID, n.justMovedToNext = res.ID, res.ID
			if ctx.activeID != 0 && ctx.activeID != res.ID && ctx.activeIDSource == InputSourceNav {
				ctx.ClearActiveID()
			}
			ctx.navLog.Debug("nav move", "dir", req.Dir, "id", res.ID,
				"axial", res.DistAxial, "perp", res.DistPerp, "box", res.DistBox)
		} else {
			ctx.navLog.Debug("nav move found nothing", "dir", req.Dir, "window", windowName(req.Window))
		}
		n.cancelMove()
	}

	if n.id != 0 && !n.idIsAlive && n.window != nil && n.window.Active {
		ctx.navLog.Debug("clearing stale nav id", "id", n.id, "window", n.window.Name)
		if n.window.NavLastIDs[n.layer] == n.id {
			n.window.NavLastIDs[n.layer] = 0
		}
		n.id = 0
		ctx.navInitWindow(n.window)
	}
}
