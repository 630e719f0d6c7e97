package imcore

// ItemFlags modify how an item takes part in interaction and navigation.
type ItemFlags uint32

const (
	ItemFlagsNone ItemFlags = 0
	// ItemFlagsDisabled makes the item neither hoverable nor navigable.
	ItemFlagsDisabled ItemFlags = 1 << iota
	// ItemFlagsNoNav excludes the item from navigation scoring.
	ItemFlagsNoNav
	// ItemFlagsDefaultFocus makes the item win a FindInitial request.
	ItemFlagsDefaultFocus
	// ItemFlagsNoTabStop skips the item when cycling focus with Tab.
	ItemFlagsNoTabStop
)

// ItemStatusFlags describe what happened to the last item this frame.
type ItemStatusFlags uint32

const (
	ItemStatusNone        ItemStatusFlags = 0
	ItemStatusHoveredRect ItemStatusFlags = 1 << iota
	ItemStatusHoverTested
	ItemStatusEdited
)

// HoveredFlags relax the rules of ItemHoverable and IsItemHovered.
type HoveredFlags uint32

const (
	HoveredFlagsNone HoveredFlags = 0
	// Return true even if a popup window is blocking access to this item.
	HoveredFlagsAllowWhenBlockedByPopup HoveredFlags = 1 << iota
	// Return true even if another item is active.
	HoveredFlagsAllowWhenBlockedByActiveItem
	// Return true even if a later overlapping item won last frame.
	HoveredFlagsAllowWhenOverlapped
	// Ignore keyboard/gamepad focus standing in for hover.
	HoveredFlagsNoNavOverride
)

type lastItemData struct {
	ID          ID
	Rect        Rect
	InFlags     ItemFlags
	StatusFlags ItemStatusFlags
}

// SetNextItemFlags applies flags to the next ItemAdd only.
func (ctx *Context) SetNextItemFlags(flags ItemFlags) {
	ctx.nextItem |= flags
}

// ItemAdd registers an item for this frame: it keeps the item's ActiveID
// alive, records it as the last item and offers it to navigation and tab
// focus.
// Items with ID 0 are decorative and take no part in interaction.
func (ctx *Context) ItemAdd(bb Rect, id ID, flags ItemFlags) bool {
	w := ctx.currentWindow
	if !ctx.assert(w != nil, "ItemAdd called outside of a window") {
		return false
	}
	flags |= ctx.nextItem
	ctx.nextItem = 0

	ctx.lastItem = lastItemData{ID: id, Rect: bb, InFlags: flags}
	if id == 0 {
		return true
	}
	ctx.KeepAliveID(id)
	ctx.navProcessItem(w, id, bb, flags)
	ctx.tabFocusItem(w, id, bb, flags)
	return true
}

// ItemHoverable reports whether the item with the given rectangle and ID
// is hovered this frame, and records it as the hovered item when it is.
//
// Among overlapping items the one submitted last wins, except that an item
// yields while last frame's winner, submitted after it in the same window,
// still contains the pointer.
func (ctx *Context) ItemHoverable(bb Rect, id ID, flags HoveredFlags) bool {
	w := ctx.currentWindow
	if w == nil {
		return false
	}
	ctx.hoverSeq++
	seq := ctx.hoverSeq
	if ctx.lastItem.ID == id {
		ctx.lastItem.StatusFlags |= ItemStatusHoverTested
	}

	if ctx.hoveredWindow != w {
		return false
	}
	pos, ok := ctx.mousePos()
	if !ok || !bb.Contains(pos) {
		return false
	}
	if ctx.lastItem.ID == id {
		ctx.lastItem.StatusFlags |= ItemStatusHoveredRect
	}
	if ctx.nav.disableMouseHover {
		return false
	}
	if ctx.activeID != 0 && ctx.activeID != id && !ctx.activeIDAllowOverlap &&
		flags&HoveredFlagsAllowWhenBlockedByActiveItem == 0 {
		return false
	}
	if !ctx.isWindowContentHoverable(w, flags) {
		return false
	}
	if ctx.lastItem.ID == id && ctx.lastItem.InFlags&ItemFlagsDisabled != 0 {
		return false
	}
	if flags&HoveredFlagsAllowWhenOverlapped == 0 && ctx.yieldsToPreviousWinner(id, w, pos, seq) {
		return false
	}

	ctx.SetHoveredID(id)
	ctx.hoveredRect = bb
	ctx.hoveredRectWindow = w
	ctx.hoveredSeq = seq
	return true
}

func (ctx *Context) yieldsToPreviousWinner(id ID, w *Window, pos Vec2, seq int) bool {
	prev := ctx.hoveredIDPreviousFrame
	if prev == 0 || prev == id || ctx.hoveredPrevWindow != w {
		return false
	}
	return ctx.hoveredPrevSeq > seq && ctx.hoveredPrevRect.Contains(pos)
}

// SetHoveredID records id as the hovered item, restarting the hover timers
// when it differs from last frame's.
func (ctx *Context) SetHoveredID(id ID) {
	ctx.hoveredID = id
	ctx.hoveredIDAllowOverlap = false
	if id != 0 && ctx.hoveredIDPreviousFrame != id {
		ctx.hoveredIDTimer = 0
		ctx.hoveredIDNotActiveTimer = 0
	}
}

// SetItemAllowOverlap lets items submitted later take hover from the last
// item even while it is hovered or active.
func (ctx *Context) SetItemAllowOverlap() {
	id := ctx.lastItem.ID
	if id == 0 {
		return
	}
	if ctx.hoveredID == id {
		ctx.hoveredIDAllowOverlap = true
	}
	if ctx.activeID == id {
		ctx.activeIDAllowOverlap = true
	}
}

// HoveredID returns the item hovered so far this frame.
func (ctx *Context) HoveredID() ID { return ctx.hoveredID }

// HoveredItemRect returns the screen rectangle of the hovered item.
func (ctx *Context) HoveredItemRect() (Rect, bool) {
	return ctx.hoveredRect, ctx.hoveredID != 0
}

// HoveredIDPreviousFrame returns last frame's hovered item.
func (ctx *Context) HoveredIDPreviousFrame() ID { return ctx.hoveredIDPreviousFrame }

// LastItemID returns the ID of the last item submitted.
func (ctx *Context) LastItemID() ID { return ctx.lastItem.ID }

// LastItemRect returns the rectangle of the last item submitted.
func (ctx *Context) LastItemRect() Rect { return ctx.lastItem.Rect }

// IsItemHovered reports whether the last item is hovered. While the user
// navigates with keys or gamepad the focused item counts as hovered.
func (ctx *Context) IsItemHovered(flags HoveredFlags) bool {
	w := ctx.currentWindow
	item := ctx.lastItem
	if w == nil {
		return false
	}
	if ctx.nav.disableMouseHover && !ctx.nav.disableHighlight && flags&HoveredFlagsNoNavOverride == 0 {
		return item.ID != 0 && ctx.IsItemFocused()
	}
	if item.ID != 0 && item.StatusFlags&ItemStatusHoverTested != 0 && flags == 0 {
		return ctx.hoveredID == item.ID
	}

	if ctx.hoveredWindow != w {
		return false
	}
	pos, ok := ctx.mousePos()
	if !ok || !item.Rect.Contains(pos) {
		return false
	}
	if item.InFlags&ItemFlagsDisabled != 0 {
		return false
	}
	if ctx.activeID != 0 && ctx.activeID != item.ID && !ctx.activeIDAllowOverlap &&
		flags&HoveredFlagsAllowWhenBlockedByActiveItem == 0 {
		return false
	}
	if !ctx.isWindowContentHoverable(w, flags) {
		return false
	}
	if flags&HoveredFlagsAllowWhenOverlapped == 0 && ctx.hoveredID != 0 && ctx.hoveredID != item.ID &&
		!ctx.hoveredIDAllowOverlap {
		return false
	}
	return true
}

// IsItemHoveredDelayed reports hover that lasted at least Config.HoverDelay.
func (ctx *Context) IsItemHoveredDelayed() bool {
	return ctx.IsItemHovered(HoveredFlagsNone) && ctx.hoveredIDTimer >= ctx.cfg.HoverDelay
}

// IsItemActive reports whether the last item holds ActiveID.
func (ctx *Context) IsItemActive() bool {
	return ctx.activeID != 0 && ctx.activeID == ctx.lastItem.ID
}

// IsItemActivated reports whether the last item became active this frame.
func (ctx *Context) IsItemActivated() bool {
	return ctx.lastItem.ID != 0 && ctx.WasJustActivated(ctx.lastItem.ID)
}

// IsItemDeactivated reports whether the last item stopped being active this frame.
func (ctx *Context) IsItemDeactivated() bool {
	return ctx.lastItem.ID != 0 && ctx.WasJustDeactivated(ctx.lastItem.ID)
}

// IsItemDeactivatedAfterEdit reports whether the last item stopped being
// active this frame after its value was edited during the activation.
func (ctx *Context) IsItemDeactivatedAfterEdit() bool {
	return ctx.lastItem.ID != 0 && ctx.WasDeactivatedAfterEdit(ctx.lastItem.ID)
}

// IsItemEdited reports whether the last item changed its value this frame.
func (ctx *Context) IsItemEdited() bool {
	return ctx.lastItem.StatusFlags&ItemStatusEdited != 0
}

// IsItemFocused reports whether the last item owns navigation focus.
func (ctx *Context) IsItemFocused() bool {
	return ctx.lastItem.ID != 0 && ctx.nav.id == ctx.lastItem.ID && ctx.nav.window == ctx.currentWindow
}

// IsItemClicked reports a press of button over the hovered last item.
func (ctx *Context) IsItemClicked(button MouseButton) bool {
	return ctx.Input.MouseClicked(button) && ctx.IsItemHovered(HoveredFlagsNone)
}
