package imcore

import "fmt"

// PopupFlags modify OpenPopup and IsPopupOpen.
type PopupFlags uint32

const (
	PopupFlagsNone PopupFlags = 0
	// PopupFlagsNoReopen leaves an open popup in place instead of reopening it.
	PopupFlagsNoReopen PopupFlags = 1 << iota
	// PopupFlagsAnyPopupID matches any popup at the level (IsPopupOpen).
	PopupFlagsAnyPopupID
	// PopupFlagsAnyPopupLevel searches the whole stack (IsPopupOpen).
	PopupFlagsAnyPopupLevel
)

// PopupData is one entry of the open popup stack.
type PopupData struct {
	PopupID         ID      // Identity passed to OpenPopup
	Window          *Window // Resolved window, nil until the popup is first begun
	BackupNavWindow *Window // Window that had focus when the popup was opened
	OpenFrameCount  uint64
	OpenParentID    ID   // Scope the popup was opened from
	OpenPopupPos    Vec2 // Preferred position, from the pointer or the nav rect
	OpenMousePos    Vec2

	placed bool
}

// OpenPopup marks the popup keyed by strID under the current scope as open.
// The popup's contents are submitted with BeginPopup(strID).
func (ctx *Context) OpenPopup(strID string, flags PopupFlags) {
	ctx.OpenPopupEx(ctx.GetID(strID), flags)
}

// OpenPopupEx opens the popup id at the current popup level. An entry
// already at that level is replaced, closing it and everything above,
// unless it is the same popup re-opened on consecutive frames.
func (ctx *Context) OpenPopupEx(id ID, flags PopupFlags) {
	parent := ctx.currentWindow
	level := len(ctx.beginPopupStack)
	if flags&PopupFlagsNoReopen != 0 && ctx.IsPopupOpenID(id, PopupFlagsNone) {
		return
	}

	entry := PopupData{
		PopupID:         id,
		BackupNavWindow: ctx.nav.window,
		OpenFrameCount:  ctx.frameCount,
		OpenParentID:    ctx.CurrentSeed(),
	}
	pos, ok := ctx.mousePos()
	entry.OpenMousePos = pos
	switch {
	case ok:
		entry.OpenPopupPos = pos
	case ctx.nav.window != nil && ctx.nav.id != 0:
		r := ctx.nav.window.NavRectRel[ctx.nav.layer].Translate(ctx.nav.window.Pos)
		entry.OpenPopupPos = Vec2{X: r.X, Y: r.Y + r.H}
	case parent != nil:
		entry.OpenPopupPos = parent.Pos
	}

	if len(ctx.openPopupStack) <= level {
		ctx.openPopupStack = append(ctx.openPopupStack, entry)
		ctx.popupLog.Debug("open popup", "id", id, "level", level, "frame", ctx.frameCount)
		return
	}

	cur := &ctx.openPopupStack[level]
	if cur.PopupID == id && cur.OpenFrameCount+1 >= ctx.frameCount {
		cur.OpenFrameCount = ctx.frameCount
		return
	}
	ctx.ClosePopupToLevel(level, false)
	ctx.openPopupStack = append(ctx.openPopupStack, entry)
	ctx.popupLog.Debug("open popup", "id", id, "level", level, "replaced", true, "frame", ctx.frameCount)
}

// IsPopupOpen reports whether the popup keyed by strID is open at the
// current popup level.
func (ctx *Context) IsPopupOpen(strID string, flags PopupFlags) bool {
	var id ID
	if flags&PopupFlagsAnyPopupID == 0 {
		id = ctx.GetID(strID)
	}
	return ctx.IsPopupOpenID(id, flags)
}

// IsPopupOpenID is IsPopupOpen for a precomputed ID.
func (ctx *Context) IsPopupOpenID(id ID, flags PopupFlags) bool {
	if flags&PopupFlagsAnyPopupID != 0 {
		if flags&PopupFlagsAnyPopupLevel != 0 {
			return len(ctx.openPopupStack) > 0
		}
		return len(ctx.openPopupStack) > len(ctx.beginPopupStack)
	}
	if flags&PopupFlagsAnyPopupLevel != 0 {
		for _, p := range ctx.openPopupStack {
			if p.PopupID == id {
				return true
			}
		}
		return false
	}
	level := len(ctx.beginPopupStack)
	return len(ctx.openPopupStack) > level && ctx.openPopupStack[level].PopupID == id
}

// OpenPopupStack returns the open popups, root first.
func (ctx *Context) OpenPopupStack() []PopupData {
	return ctx.openPopupStack
}

// BeginPopup begins the popup keyed by strID if it is open at the current
// level. When it returns true the caller must call EndPopup.
func (ctx *Context) BeginPopup(strID string, flags WindowFlags) bool {
	return ctx.beginPopupEx(ctx.GetID(strID), flags|WindowFlagsNoMove)
}

// BeginPopupModal begins a modal popup. Modals block interaction with every
// window beneath them and survive clicks outside; they close only through
// CloseCurrentPopup or ClosePopupToLevel.
func (ctx *Context) BeginPopupModal(name string, flags WindowFlags) bool {
	return ctx.beginPopupEx(ctx.GetID(name), flags|WindowFlagsModal)
}

func (ctx *Context) beginPopupEx(id ID, flags WindowFlags) bool {
	if !ctx.IsPopupOpenID(id, PopupFlagsNone) {
		ctx.nextWindow = nextWindowData{}
		return false
	}
	name := fmt.Sprintf("##Popup_%08x", uint32(id))
	return ctx.Begin(name, flags|WindowFlagsPopup)
}

// EndPopup ends a popup begun with BeginPopup or BeginPopupModal.
func (ctx *Context) EndPopup() {
	w := ctx.currentWindow
	if !ctx.assert(w != nil && w.IsPopup() && len(ctx.beginPopupStack) > 0, "EndPopup without BeginPopup") {
		return
	}
	ctx.End()
}

// placePopup positions a popup the first time it is begun after opening.
func (ctx *Context) placePopup(w *Window, ref *PopupData, nw nextWindowData) {
	ref.placed = true
	if !nw.sizeSet {
		w.Size = ctx.cfg.PopupSize
	}
	if nw.posSet {
		return
	}
	if w.Flags&WindowFlagsModal != 0 {
		w.Pos = ctx.DisplaySize.Sub(w.Size).Mul(0.5)
		return
	}
	pos := ref.OpenPopupPos
	if ctx.DisplaySize.X > 0 && ctx.DisplaySize.Y > 0 {
		pos.X = clampf(pos.X, 0, maxf(0, ctx.DisplaySize.X-w.Size.X))
		pos.Y = clampf(pos.Y, 0, maxf(0, ctx.DisplaySize.Y-w.Size.Y))
	}
	w.Pos = pos
}

// CloseCurrentPopup closes the popup being submitted, and the parent menus
// of a child menu.
func (ctx *Context) CloseCurrentPopup() {
	idx := len(ctx.beginPopupStack) - 1
	if idx < 0 || idx >= len(ctx.openPopupStack) || ctx.beginPopupStack[idx].PopupID != ctx.openPopupStack[idx].PopupID {
		return
	}
	for idx > 0 {
		w := ctx.openPopupStack[idx].Window
		parent := ctx.openPopupStack[idx-1].Window
		if w == nil || parent == nil || w.Flags&WindowFlagsChildMenu == 0 || parent.Flags&WindowFlagsChildMenu == 0 {
			break
		}
		idx--
	}
	ctx.ClosePopupToLevel(idx, true)
}

// ClosePopupToLevel truncates the open popup stack to remaining entries.
// With restoreFocus, focus returns to the window that had it when the
// first closed popup was opened.
func (ctx *Context) ClosePopupToLevel(remaining int, restoreFocus bool) {
	if !ctx.assert(remaining >= 0 && remaining < len(ctx.openPopupStack), "ClosePopupToLevel out of range",
		"remaining", remaining, "open", len(ctx.openPopupStack)) {
		return
	}
	closed := ctx.openPopupStack[remaining]
	ctx.popupLog.Debug("close popups", "remaining", remaining, "closed", len(ctx.openPopupStack)-remaining,
		"first", closed.PopupID, "frame", ctx.frameCount)
	ctx.openPopupStack = ctx.openPopupStack[:remaining]

	if !restoreFocus {
		return
	}
	focus := closed.BackupNavWindow
	if focus != nil && focus.IsPopup() && !ctx.IsPopupOpenID(focus.PopupID, PopupFlagsAnyPopupLevel) {
		focus = nil
	}
	if focus != nil && (focus.Active || focus.WasActive) {
		ctx.FocusWindow(focus)
	} else {
		ctx.focusTopMostWindow(closed.Window)
	}
}

// ClosePopupsOverWindow closes the popups above ref, keeping the chain of
// popups ref belongs to and any modal. A nil ref (click on the void) closes
// every non-modal popup from the top.
func (ctx *Context) ClosePopupsOverWindow(ref *Window, restoreFocus bool) {
	if len(ctx.openPopupStack) == 0 {
		return
	}
	if ref != nil && !ref.IsPopup() {
		// A click on a regular window closes every popup above the modal, if any.
		ref = nil
	}

	keep := 0
	if ref != nil {
		for i, p := range ctx.openPopupStack {
			if p.Window == ref {
				keep = i + 1
				break
			}
		}
	}
	for i := len(ctx.openPopupStack) - 1; i >= keep; i-- {
		if w := ctx.openPopupStack[i].Window; w != nil && w.Flags&WindowFlagsModal != 0 {
			keep = i + 1
			break
		}
	}
	if keep < len(ctx.openPopupStack) {
		ctx.ClosePopupToLevel(keep, restoreFocus)
	}
}

// GetTopMostPopupModal returns the highest open modal, or nil.
func (ctx *Context) GetTopMostPopupModal() *Window {
	for i := len(ctx.openPopupStack) - 1; i >= 0; i-- {
		if w := ctx.openPopupStack[i].Window; w != nil && w.Flags&WindowFlagsModal != 0 {
			return w
		}
	}
	return nil
}

// OpenPopupOnItemClick opens the popup strID when the last item is
// released with button. An empty strID keys the popup by the last item.
func (ctx *Context) OpenPopupOnItemClick(strID string, button MouseButton) {
	if ctx.Input.MouseReleased(button) && ctx.IsItemHovered(HoveredFlagsAllowWhenBlockedByPopup) {
		ctx.OpenPopupEx(ctx.popupIDForItem(strID), PopupFlagsNone)
	}
}

// BeginPopupContextItem opens and begins a context popup for the last item
// on right-button release. An empty strID keys the popup by the last item.
func (ctx *Context) BeginPopupContextItem(strID string) bool {
	id := ctx.popupIDForItem(strID)
	if ctx.Input.MouseReleased(MouseButtonRight) && ctx.IsItemHovered(HoveredFlagsAllowWhenBlockedByPopup) {
		ctx.OpenPopupEx(id, PopupFlagsNone)
	}
	return ctx.beginPopupEx(id, WindowFlagsNoMove)
}

func (ctx *Context) popupIDForItem(strID string) ID {
	if strID == "" && ctx.lastItem.ID != 0 {
		return ctx.lastItem.ID
	}
	return ctx.GetID(strID)
}

// updateMouseFocusEndFrame applies the effects of a click that no item
// claimed: focus and raise the clicked window, start moving it, or clear
// focus when clicking the void. Any click closes the popups it lands
// outside of.
func (ctx *Context) updateMouseFocusEndFrame() {
	in := ctx.Input
	if !in.AnyMouseClicked() {
		return
	}
	hovered := ctx.hoveredWindow
	// The click that opened a popup does not close it.
	openedNow := false
	if n := len(ctx.openPopupStack); n > 0 {
		openedNow = ctx.openPopupStack[n-1].OpenFrameCount == ctx.frameCount
	}
	if !openedNow && (in.MouseClicked(MouseButtonLeft) || in.MouseClicked(MouseButtonRight)) {
		ctx.ClosePopupsOverWindow(hovered, in.MouseClicked(MouseButtonRight) || hovered == nil)
	}
	if !in.MouseClicked(MouseButtonLeft) {
		return
	}

	// A hovered item handled the click itself.
	if ctx.activeID != 0 || ctx.hoveredID != 0 {
		return
	}
	switch {
	case hovered != nil && (!hovered.IsPopup() || ctx.IsPopupOpenID(hovered.PopupID, PopupFlagsAnyPopupLevel)):
		ctx.FocusWindow(hovered)
		if hovered.Flags&WindowFlagsNoMove == 0 {
			ctx.startMovingWindow(hovered)
		}
	case hovered == nil && ctx.nav.window != nil && ctx.GetTopMostPopupModal() == nil:
		ctx.FocusWindow(nil)
	}
}

// popupsEndFrame closes popups that were not begun in a frame after the
// one they were opened in.
func (ctx *Context) popupsEndFrame() {
	for i, p := range ctx.openPopupStack {
		if p.OpenFrameCount >= ctx.frameCount {
			continue
		}
		if p.Window == nil || p.Window.LastFrameActive != ctx.frameCount {
			ctx.popupLog.Debug("closing popup not submitted", "id", p.PopupID, "level", i)
			ctx.ClosePopupToLevel(i, true)
			return
		}
	}
}

// topMostPopup returns the window of the highest open popup that was begun
// this frame or the previous one.
func (ctx *Context) topMostPopup() *Window {
	for i := len(ctx.openPopupStack) - 1; i >= 0; i-- {
		if w := ctx.openPopupStack[i].Window; w != nil && (w.Active || w.WasActive) {
			return w
		}
	}
	return nil
}
