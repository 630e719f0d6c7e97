package imcore

import "math"

// Tab focus. Tab and Shift+Tab step keyboard focus through the tab stops of
// the nav window in submission order, wrapping at both ends.
// SetKeyboardFocusHere targets an item by its position after the call.
// Requests are indices into a window's item sequence and resolve when the
// item with that index is submitted.

// noFocusRequest marks an unset focus index.
const noFocusRequest = math.MinInt32

// tabFocusState counts the focusable items of a window as they are
// submitted and holds its pending focus requests.
type tabFocusState struct {
	allCounter   int // Focusable items submitted this frame, minus one
	tabCounter   int // Tab stops submitted this frame, minus one
	tabCountLast int // Tab stops submitted the last frame the window was begun

	reqAllCur, reqTabCur   int // Resolving this frame
	reqAllNext, reqTabNext int // Resolving at the window's next Begin
}

func (t *tabFocusState) reset() {
	t.allCounter, t.tabCounter, t.tabCountLast = -1, -1, 0
	t.reqAllCur, t.reqTabCur = noFocusRequest, noFocusRequest
	t.reqAllNext, t.reqTabNext = noFocusRequest, noFocusRequest
}

// beginFrame moves pending requests into place at the window's first Begin
// of a frame. Tab requests wrap around last frame's tab stop count.
func (t *tabFocusState) beginFrame() {
	t.tabCountLast = t.tabCounter + 1
	t.reqAllCur, t.reqTabCur = t.reqAllNext, noFocusRequest
	if t.reqTabNext != noFocusRequest {
		t.reqTabCur = wrapTabIndex(t.reqTabNext, t.tabCountLast)
	}
	t.reqAllNext, t.reqTabNext = noFocusRequest, noFocusRequest
	t.allCounter, t.tabCounter = -1, -1
}

func wrapTabIndex(i, n int) int {
	if n <= 0 {
		return noFocusRequest
	}
	return (i%n + n) % n
}

// tabFocusNewFrame turns a Tab press into a tab stop request on the nav
// window. Tab is ignored while an item is active or Ctrl is held.
func (ctx *Context) tabFocusNewFrame() {
	n := &ctx.nav
	in := ctx.Input
	if !in.KeyPressed(KeyTab) || in.ModCtrl || ctx.activeID != 0 {
		return
	}
	if n.window == nil {
		ctx.focusTopMostWindow(nil)
	}
	w := n.window
	if w == nil || w.Flags&WindowFlagsNoNav != 0 || !(w.Active || w.WasActive) {
		return
	}
	step := 1
	if in.ModShift {
		step = -1
	}
	idx := 0
	if step < 0 {
		idx = -1
	}
	if n.id != 0 && n.lastIDTabCounter != noFocusRequest {
		idx = n.lastIDTabCounter + step
	}

	t := &w.tab
	if w.LastFrameActive == ctx.frameCount {
		t.reqTabCur = wrapTabIndex(idx, t.tabCountLast)
	} else {
		t.reqTabNext = idx
	}
	n.disableHighlight = false
	n.disableMouseHover = true
	ctx.navLog.Debug("tab focus request", "window", w.Name, "index", idx)
}

// tabFocusItem counts a submitted item against its window's requests and
// moves keyboard focus to it when a request names it. Only main-layer items
// are tab stops.
func (ctx *Context) tabFocusItem(w *Window, id ID, bb Rect, flags ItemFlags) {
	if w.Flags&WindowFlagsNoNav != 0 || flags&(ItemFlagsDisabled|ItemFlagsNoNav) != 0 {
		return
	}
	t := &w.tab
	t.allCounter++
	tabStop := flags&ItemFlagsNoTabStop == 0 && w.navLayerCurrent == NavLayerMain
	if tabStop {
		t.tabCounter++
	}

	if t.allCounter == t.reqAllCur || tabStop && t.tabCounter == t.reqTabCur {
		t.reqAllCur, t.reqTabCur = noFocusRequest, noFocusRequest
		ctx.tabFocusTake(w, id, bb)
	}
	if tabStop && id == ctx.nav.id && w == ctx.nav.window {
		ctx.nav.idTabCounter = t.tabCounter
	}
}

func (ctx *Context) tabFocusTake(w *Window, id ID, bb Rect) {
	if ctx.nav.window != w {
		ctx.FocusWindow(w)
	}
	ctx.setNavID(id, w.navLayerCurrent, w, bb.Translate(w.Pos.Mul(-1)))
	ctx.nav.cancelMove()
	ctx.nav.initRequest = false
	ctx.nav.disableHighlight = false
	ctx.nav.justTabbedID = id
}

// SetKeyboardFocusHere focuses the next item submitted in the current
// window on the next frame. A positive offset skips that many items; -1
// targets the item submitted just before the call.
func (ctx *Context) SetKeyboardFocusHere(offset int) {
	w := ctx.currentWindow
	if !ctx.assert(w != nil && offset >= -1, "SetKeyboardFocusHere needs a window and an offset >= -1", "offset", offset) {
		return
	}
	w.tab.reqAllNext = w.tab.allCounter + 1 + offset
	w.tab.reqTabNext = noFocusRequest
}
