package imcore

// WindowFlags configure a window at Begin.
type WindowFlags uint32

const (
	WindowFlagsNone WindowFlags = 0
	// WindowFlagsNoMove disables moving the window by dragging its background.
	WindowFlagsNoMove WindowFlags = 1 << iota
	// WindowFlagsNoInputs makes the window transparent to the pointer.
	WindowFlagsNoInputs
	// WindowFlagsNoNav excludes the window's items from navigation.
	WindowFlagsNoNav
	// WindowFlagsMenuBar enables the menu navigation layer (BeginMenuBar).
	WindowFlagsMenuBar
	WindowFlagsNoFocusOnAppearing
	WindowFlagsNoBringToFrontOnFocus

	// Set by BeginPopup / BeginPopupModal / BeginMenu.
	WindowFlagsPopup
	WindowFlagsModal
	WindowFlagsChildMenu
)

// Cond controls when SetNextWindowPos/SetNextWindowSize apply.
type Cond int

const (
	CondAlways    Cond = iota
	CondOnce           // only the first time the window is created
	CondAppearing      // whenever the window appears after being hidden
)

// Window is a container of items with its own ID scope and z-order.
// Windows persist across frames and are looked up by name at Begin.
type Window struct {
	ctx *Context

	Name   string
	ID     ID
	Flags  WindowFlags
	Pos    Vec2
	Size   Vec2
	MoveID ID

	// PopupID is the ID the popup was opened with, zero for regular windows.
	PopupID      ID
	ParentWindow *Window
	RootWindow   *Window

	idStack []ID

	Active          bool // Begun this frame
	WasActive       bool // Begun last frame
	Appearing       bool // Begun this frame after not being begun last frame
	LastFrameActive uint64
	FocusOrder      int

	// Per-frame layout state
	navLayerCurrent         NavLayer
	navLayersActiveMask     uint8 // Layers that had nav items last frame
	navLayersActiveMaskNext uint8

	// Remembered focus per layer, restored when the window or layer regains focus.
	NavLastIDs [NavLayerCount]ID
	NavRectRel [NavLayerCount]Rect

	tab tabFocusState
}

// Rect returns the window rectangle in screen space.
func (w *Window) Rect() Rect {
	return Rect{X: w.Pos.X, Y: w.Pos.Y, W: w.Size.X, H: w.Size.Y}
}

// IsPopup reports whether the window was begun as a popup or modal.
func (w *Window) IsPopup() bool {
	return w.Flags&WindowFlagsPopup != 0
}

// nextWindowData holds SetNextWindow* values consumed by the next Begin.
type nextWindowData struct {
	posSet   bool
	posCond  Cond
	pos      Vec2
	sizeSet  bool
	sizeCond Cond
	size     Vec2
}

// SetNextWindowPos sets the position of the next window begun.
func (ctx *Context) SetNextWindowPos(pos Vec2, cond Cond) {
	ctx.nextWindow.posSet = true
	ctx.nextWindow.posCond = cond
	ctx.nextWindow.pos = pos
}

// SetNextWindowSize sets the size of the next window begun.
func (ctx *Context) SetNextWindowSize(size Vec2, cond Cond) {
	ctx.nextWindow.sizeSet = true
	ctx.nextWindow.sizeCond = cond
	ctx.nextWindow.size = size
}

func condApplies(cond Cond, created, appearing bool) bool {
	switch cond {
	case CondOnce:
		return created
	case CondAppearing:
		return appearing
	default:
		return true
	}
}

// FindWindowByName returns the window with the given name, or nil.
func (ctx *Context) FindWindowByName(name string) *Window {
	return ctx.windowsByID[HashString(name, RootSeed)]
}

// Windows returns all windows in display order, back to front.
func (ctx *Context) Windows() []*Window {
	return ctx.windows
}

// DefaultWindow returns the implicit full-display window that hosts items
// submitted outside Begin/End.
func (ctx *Context) DefaultWindow() *Window {
	return ctx.defaultWindow
}

// CurrentWindow returns the window items are currently submitted to.
func (ctx *Context) CurrentWindow() *Window {
	return ctx.currentWindow
}

// HoveredWindow returns the window under the pointer, after modal filtering.
func (ctx *Context) HoveredWindow() *Window {
	return ctx.hoveredWindow
}

// FocusedWindow returns the window that owns navigation focus.
func (ctx *Context) FocusedWindow() *Window {
	return ctx.nav.window
}

func (ctx *Context) createWindow(name string, id ID) *Window {
	w := &Window{
		ctx:     ctx,
		Name:    name,
		ID:      id,
		Pos:     Vec2{X: 60, Y: 60},
		Size:    Vec2{X: 320, Y: 240},
		MoveID:  HashString("#MOVE", id),
		idStack: make([]ID, 0, 8),
	}
	w.RootWindow = w
	w.tab.reset()
	ctx.windowsByID[id] = w
	ctx.windows = append(ctx.windows, w)
	ctx.windowsCreation = append(ctx.windowsCreation, w)
	ctx.logger.Debug("window created", "name", name, "id", id)
	return w
}

// Begin pushes a window and makes it current. Items submitted until the
// matching End belong to it. Begin always returns true; the return value
// exists for symmetry with BeginPopup.
func (ctx *Context) Begin(name string, flags WindowFlags) bool {
	if !ctx.assert(ctx.withinFrame, "Begin called outside of a frame", "window", name) {
		return false
	}

	id := HashString(name, RootSeed)
	w := ctx.windowsByID[id]
	created := w == nil
	if created {
		w = ctx.createWindow(name, id)
	}

	parent := ctx.currentWindow
	firstBegin := w.LastFrameActive != ctx.frameCount

	var popupRef *PopupData
	if flags&WindowFlagsPopup != 0 {
		level := len(ctx.beginPopupStack)
		if !ctx.assert(level < len(ctx.openPopupStack), "Begin of a popup that is not open", "window", name) {
			ctx.nextWindow = nextWindowData{}
			return false
		}
		popupRef = &ctx.openPopupStack[level]
		popupRef.Window = w
		w.PopupID = popupRef.PopupID
		ctx.beginPopupStack = append(ctx.beginPopupStack, *popupRef)
	}

	ctx.windowStack = append(ctx.windowStack, w)
	ctx.currentWindow = w

	if firstBegin {
		w.Flags = flags
		// A reopened popup appears again even if its window was shown last frame.
		w.Appearing = !w.WasActive || popupRef != nil && !popupRef.placed
		w.Active = true
		w.LastFrameActive = ctx.frameCount
		w.ParentWindow = nil
		if flags&WindowFlagsPopup != 0 {
			w.ParentWindow = parent
		}

		nw := ctx.nextWindow
		if nw.sizeSet && condApplies(nw.sizeCond, created, w.Appearing) {
			w.Size = nw.size
		}
		if nw.posSet && condApplies(nw.posCond, created, w.Appearing) {
			w.Pos = nw.pos
		}
		if popupRef != nil && !popupRef.placed {
			ctx.placePopup(w, popupRef, nw)
		}

		w.idStack = w.idStack[:0]
		w.idStack = append(w.idStack, w.ID)
		w.navLayerCurrent = NavLayerMain
		w.navLayersActiveMaskNext = 0
		w.tab.beginFrame()

		if ctx.activeID == w.MoveID {
			ctx.KeepAliveID(w.MoveID)
		}

		if w.Appearing {
			ctx.logger.Debug("window appearing", "name", name, "frame", ctx.frameCount)
			if flags&WindowFlagsNoFocusOnAppearing == 0 {
				ctx.FocusWindow(w)
			}
		}
	} else {
		// Appending to a window already begun this frame restarts at its root scope.
		w.idStack = append(w.idStack[:0], w.ID)
	}

	ctx.nextWindow = nextWindowData{}
	ctx.lastItem = lastItemData{}
	return true
}

// End pops the current window.
func (ctx *Context) End() {
	if !ctx.assert(len(ctx.windowStack) > 1, "End called without matching Begin") {
		return
	}
	ctx.endWindow()
}

// endWindow pops the window stack, including the implicit default window
// at EndFrame.
func (ctx *Context) endWindow() {
	w := ctx.currentWindow

	if n := len(w.idStack); n != 1 {
		ctx.frameErrs = append(ctx.frameErrs, unbalancedIDStackError(w.Name, n-1))
		if !ctx.assert(false, "ID stack unbalanced at End", "window", w.Name, "depth", n-1) {
			w.idStack = w.idStack[:1]
		}
	}
	if w.navLayerCurrent != NavLayerMain {
		ctx.assert(false, "menu bar not ended before End", "window", w.Name)
		w.navLayerCurrent = NavLayerMain
	}
	w.navLayersActiveMask = w.navLayersActiveMaskNext

	if w.Flags&WindowFlagsPopup != 0 && len(ctx.beginPopupStack) > 0 {
		ctx.beginPopupStack = ctx.beginPopupStack[:len(ctx.beginPopupStack)-1]
	}

	ctx.windowStack = ctx.windowStack[:len(ctx.windowStack)-1]
	if n := len(ctx.windowStack); n > 0 {
		ctx.currentWindow = ctx.windowStack[n-1]
	} else {
		ctx.currentWindow = nil
	}
	ctx.lastItem = lastItemData{}
}

// FocusWindow gives navigation focus to w and brings it to the front of the
// display order. Passing nil clears focus.
func (ctx *Context) FocusWindow(w *Window) {
	if ctx.nav.window != w {
		ctx.nav.window = w
		ctx.nav.layer = NavLayerMain
		ctx.nav.id = 0
		ctx.nav.idIsAlive = false
		ctx.nav.cancelMove()
		if w != nil {
			ctx.nav.id = w.NavLastIDs[NavLayerMain]
			if ctx.nav.id == 0 && w.Flags&WindowFlagsNoNav == 0 {
				ctx.navInitWindow(w)
			}
		}
		ctx.logger.Debug("focus window", "window", windowName(w))
	}

	if w == nil {
		return
	}
	ctx.focusCounter++
	w.FocusOrder = ctx.focusCounter

	// Focus loss of the item being held
	if ctx.activeID != 0 && ctx.activeIDWindow != nil && ctx.activeIDWindow.RootWindow != w.RootWindow &&
		ctx.activeID != ctx.activeIDWindow.MoveID {
		ctx.ClearActiveID()
	}

	if w.Flags&WindowFlagsNoBringToFrontOnFocus == 0 {
		ctx.bringWindowToFront(w)
	}
}

// bringWindowToFront moves w to the end of the display order, then
// re-raises open popups so they stay above their parents.
func (ctx *Context) bringWindowToFront(w *Window) {
	ctx.raise(w)
	for _, p := range ctx.openPopupStack {
		if p.Window != nil && p.Window != w {
			ctx.raise(p.Window)
		}
	}
}

func (ctx *Context) raise(w *Window) {
	n := len(ctx.windows)
	if n > 0 && ctx.windows[n-1] == w {
		return
	}
	for i, other := range ctx.windows {
		if other == w {
			copy(ctx.windows[i:], ctx.windows[i+1:])
			ctx.windows[n-1] = w
			return
		}
	}
}

// focusTopMostWindow focuses the front-most window that was active last
// frame and accepts focus, skipping ignore.
func (ctx *Context) focusTopMostWindow(ignore *Window) {
	for i := len(ctx.windows) - 1; i >= 0; i-- {
		w := ctx.windows[i]
		if w == ignore || !(w.WasActive || w.Active) {
			continue
		}
		if w.IsPopup() && !ctx.IsPopupOpenID(w.PopupID, PopupFlagsAnyPopupLevel) {
			continue
		}
		if w.Flags&WindowFlagsNoBringToFrontOnFocus != 0 && w != ctx.defaultWindow {
			continue
		}
		ctx.FocusWindow(w)
		return
	}
	ctx.FocusWindow(nil)
}

// updateHoveredWindow resolves the window under the pointer using last
// frame's rectangles, then drops it when a modal sits above it.
func (ctx *Context) updateHoveredWindow() {
	ctx.hoveredWindow = nil
	if ctx.movingWindow != nil {
		ctx.hoveredWindow = ctx.movingWindow
		return
	}

	pos, ok := ctx.mousePos()
	if !ok {
		return
	}
	for i := len(ctx.windows) - 1; i >= 0; i-- {
		w := ctx.windows[i]
		if !(w.WasActive || w.Active) || w.Flags&WindowFlagsNoInputs != 0 {
			continue
		}
		if w.IsPopup() && !ctx.IsPopupOpenID(w.PopupID, PopupFlagsAnyPopupLevel) {
			continue
		}
		if w.Rect().Contains(pos) {
			ctx.hoveredWindow = w
			break
		}
	}

	if modal := ctx.GetTopMostPopupModal(); modal != nil && ctx.hoveredWindow != nil {
		if !ctx.isWindowAboveModal(ctx.hoveredWindow, modal) {
			ctx.hoveredWindow = nil
		}
	}
}

// isWindowAboveModal reports whether w is the modal itself or a popup
// opened on top of it.
func (ctx *Context) isWindowAboveModal(w, modal *Window) bool {
	if w.RootWindow == modal.RootWindow {
		return true
	}
	modalLevel, level := -1, -1
	for i, p := range ctx.openPopupStack {
		if p.Window == modal {
			modalLevel = i
		}
		if p.Window == w {
			level = i
		}
	}
	return level > modalLevel && modalLevel >= 0
}

// isWindowContentHoverable reports whether items of w may be hovered while
// popups are open. The top-most open popup blocks every window outside its
// tree whether or not it took focus, and a modal blocks everything beneath
// it regardless of flags.
func (ctx *Context) isWindowContentHoverable(w *Window, flags HoveredFlags) bool {
	top := ctx.topMostPopup()
	if top == nil || top.RootWindow == w.RootWindow {
		return true
	}
	if modal := ctx.GetTopMostPopupModal(); modal != nil && !ctx.isWindowAboveModal(w, modal) {
		return false
	}
	if top.Flags&WindowFlagsModal != 0 || flags&HoveredFlagsAllowWhenBlockedByPopup != 0 {
		return true
	}
	return isInMenuChain(w, top)
}

// isInMenuChain reports whether w is an ancestor of a child-menu popup.
func isInMenuChain(w, popup *Window) bool {
	for p := popup; p != nil && p.Flags&WindowFlagsChildMenu != 0; p = p.ParentWindow {
		if p.ParentWindow == w {
			return true
		}
	}
	return false
}

func windowName(w *Window) string {
	if w == nil {
		return "<none>"
	}
	return w.Name
}
