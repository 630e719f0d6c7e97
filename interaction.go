package imcore

// ButtonFlags select the press policy of ButtonBehavior.
type ButtonFlags uint32

const (
	ButtonFlagsNone ButtonFlags = 0
	// Return true on click + release on the same item (default).
	ButtonFlagsPressedOnClickRelease ButtonFlags = 1 << iota
	// Return true on the press edge, without waiting for release.
	ButtonFlagsPressedOnClick
	// Return true on the release edge, without requiring a press on the item.
	ButtonFlagsPressedOnRelease
	// Return true on the second press of a double-click.
	ButtonFlagsPressedOnDoubleClick
	// Keep returning true at the key repeat rate while held.
	ButtonFlagsRepeat
	// Do not take ActiveID on press.
	ButtonFlagsNoHoldingActiveID
	// Let later items take hover from this one.
	ButtonFlagsAllowOverlap
	// Do not move navigation focus on click.
	ButtonFlagsNoNavFocus
	// Accept the right and middle buttons as well.
	ButtonFlagsMouseButtonRight
	ButtonFlagsMouseButtonMiddle

	buttonFlagsPressedOnMask = ButtonFlagsPressedOnClickRelease | ButtonFlagsPressedOnClick |
		ButtonFlagsPressedOnRelease | ButtonFlagsPressedOnDoubleClick
)

// ButtonBehavior runs the press state machine of a button-like item.
// It returns whether the item was pressed this frame, whether it is hovered
// and whether it is held.
//
// Mouse presses take ActiveID on the press edge; a release outside the item
// deactivates without a press. Navigation activation (Space, Enter, gamepad
// A on the focused item) drives the same machine with InputSourceNav.
func (ctx *Context) ButtonBehavior(bb Rect, id ID, flags ButtonFlags) (pressed, hovered, held bool) {
	w := ctx.currentWindow
	if w == nil || id == 0 {
		return false, false, false
	}
	if flags&buttonFlagsPressedOnMask == 0 {
		flags |= ButtonFlagsPressedOnClickRelease
	}
	in := ctx.Input

	hoverFlags := HoveredFlagsNone
	if flags&ButtonFlagsAllowOverlap != 0 {
		hoverFlags |= HoveredFlagsAllowWhenOverlapped
	}
	hovered = ctx.ItemHoverable(bb, id, hoverFlags)
	if hovered && flags&ButtonFlagsAllowOverlap != 0 {
		ctx.hoveredIDAllowOverlap = true
	}

	// Mouse press edges
	if hovered {
		if button, ok := ctx.clickedButton(flags); ok {
			switch {
			case flags&ButtonFlagsPressedOnDoubleClick != 0 && in.MouseDoubleClicked(button):
				pressed = true
				ctx.pressAndHold(id, w, button, flags)
			case flags&ButtonFlagsPressedOnClick != 0:
				pressed = true
				ctx.pressAndHold(id, w, button, flags)
			case flags&ButtonFlagsPressedOnClickRelease != 0:
				ctx.pressAndHold(id, w, button, flags)
			}
		}
		if flags&ButtonFlagsPressedOnRelease != 0 && ctx.releasedButton(flags) {
			if ctx.activeID == 0 || ctx.activeID == id {
				pressed = true
				ctx.focusOnClick(id, w, flags)
			}
			if ctx.activeID == id {
				ctx.ClearActiveID()
			}
		}
		if flags&ButtonFlagsRepeat != 0 && ctx.activeID == id && ctx.activeIDSource == InputSourceMouse &&
			ctx.activeIDMouseButton >= 0 && !in.MouseClicked(ctx.activeIDMouseButton) &&
			in.MouseDown(ctx.activeIDMouseButton) && ctx.mouseRepeated(ctx.activeIDMouseButton) {
			pressed = true
		}
	}

	// Navigation activation
	if ctx.nav.id == id && ctx.nav.window == w {
		if ctx.nav.activateDownID == id && ctx.activeID == 0 && ctx.SetActiveID(id, w) {
			ctx.activeIDSource = InputSourceNav
			if flags&(ButtonFlagsPressedOnClick|ButtonFlagsPressedOnDoubleClick) != 0 {
				pressed = true
			}
		}
		if flags&ButtonFlagsRepeat != 0 && ctx.nav.activateRepeatID == id && !ctx.activeIDIsJustActivated {
			pressed = true
		}
	}

	// Held state and release
	if ctx.activeID == id {
		switch ctx.activeIDSource {
		case InputSourceMouse:
			if ctx.activeIDIsJustActivated {
				ctx.activeIDClickOffset = in.MousePos().Sub(bb.Min())
			}
			button := ctx.activeIDMouseButton
			if button >= 0 && in.MouseDown(button) {
				held = true
			} else {
				if hovered && flags&ButtonFlagsPressedOnClickRelease != 0 && button >= 0 && in.MouseReleased(button) {
					pressed = true
				}
				ctx.ClearActiveID()
			}
		case InputSourceNav:
			if ctx.nav.activateDownID == id {
				held = true
			} else {
				if flags&ButtonFlagsPressedOnClickRelease != 0 {
					pressed = true
				}
				ctx.ClearActiveID()
			}
		}
	}

	if pressed {
		ctx.activeIDHasBeenPressedBefore = true
		ctx.logger.Debug("pressed", "id", id, "window", w.Name, "frame", ctx.frameCount)
	}
	return pressed, hovered, held
}

func (ctx *Context) pressAndHold(id ID, w *Window, button MouseButton, flags ButtonFlags) {
	if flags&ButtonFlagsNoHoldingActiveID == 0 && ctx.SetActiveID(id, w) {
		ctx.activeIDSource = InputSourceMouse
		ctx.activeIDMouseButton = button
	}
	ctx.focusOnClick(id, w, flags)
	ctx.nav.disableHighlight = true
}

// focusOnClick moves navigation focus to a clicked item so that key and
// gamepad input continue from it.
func (ctx *Context) focusOnClick(id ID, w *Window, flags ButtonFlags) {
	ctx.FocusWindow(w)
	if flags&ButtonFlagsNoNavFocus == 0 {
		ctx.SetFocusID(id, w)
	}
}

// clickedButton returns the first accepted button pressed this frame.
func (ctx *Context) clickedButton(flags ButtonFlags) (MouseButton, bool) {
	for _, b := range acceptedButtons(flags) {
		if ctx.Input.MouseClicked(b) {
			return b, true
		}
	}
	return MouseButtonLeft, false
}

func (ctx *Context) releasedButton(flags ButtonFlags) bool {
	for _, b := range acceptedButtons(flags) {
		if ctx.Input.MouseReleased(b) {
			return true
		}
	}
	return false
}

func acceptedButtons(flags ButtonFlags) []MouseButton {
	buttons := []MouseButton{MouseButtonLeft}
	if flags&ButtonFlagsMouseButtonRight != 0 {
		buttons = append(buttons, MouseButtonRight)
	}
	if flags&ButtonFlagsMouseButtonMiddle != 0 {
		buttons = append(buttons, MouseButtonMiddle)
	}
	return buttons
}

// mouseRepeated applies the key repeat timing to a held mouse button.
func (ctx *Context) mouseRepeated(button MouseButton) bool {
	t := ctx.Input.mouseDownDuration[button]
	prev := t - ctx.DeltaTime
	delay, rate := ctx.cfg.KeyRepeatDelay, ctx.cfg.KeyRepeatRate
	if t < delay || rate <= 0 {
		return false
	}
	count := int((t - delay) / rate)
	prevCount := -1
	if prev >= delay {
		prevCount = int((prev - delay) / rate)
	}
	return count > prevCount
}

// SetActiveID claims ActiveID for id, owned by w. The first claim wins: it
// fails while another item is active, unless that item allowed overlap.
// Passing 0 deactivates.
func (ctx *Context) SetActiveID(id ID, w *Window) bool {
	if id != 0 && ctx.activeID != 0 && ctx.activeID != id && !ctx.activeIDAllowOverlap {
		ctx.logger.Debug("active id claim rejected", "held", ctx.activeID, "claim", id, "frame", ctx.frameCount)
		return false
	}
	ctx.setActiveID(id, w)
	return true
}

// setActiveID replaces ActiveID unconditionally.
func (ctx *Context) setActiveID(id ID, w *Window) {
	ctx.activeIDIsJustActivated = ctx.activeID != id
	if ctx.activeIDIsJustActivated {
		ctx.logger.Debug("set active id", "old", ctx.activeID, "new", id, "frame", ctx.frameCount)
		if ctx.activeID != 0 {
			ctx.deactivated = deactivatedItem{ID: ctx.activeID, HadEdit: ctx.activeIDHasBeenEditedBefore}
		}
		ctx.activeIDTimer = 0
		ctx.activeIDHasBeenPressedBefore = false
		ctx.activeIDHasBeenEditedBefore = false
		ctx.activeIDMouseButton = -1
		ctx.activeIDUsingNavDirMask = 0
		if id != 0 {
			ctx.lastActiveID = id
			ctx.lastActiveIDTimer = 0
		}
	}
	ctx.activeID = id
	ctx.activeIDAllowOverlap = false
	ctx.activeIDWindow = w
	ctx.activeIDHasBeenEditedThisFrame = false
	if id != 0 {
		ctx.activeIDIsAlive = id
		ctx.activeIDSource = InputSourceMouse
		if ctx.nav.activateID == id || ctx.nav.activateDownID == id {
			ctx.activeIDSource = InputSourceNav
		}
	} else {
		ctx.activeIDSource = InputSourceNone
	}
}

// ClearActiveID deactivates the active item.
func (ctx *Context) ClearActiveID() {
	ctx.setActiveID(0, nil)
}

// SetActive claims ActiveID for id in the current window. It reports
// whether the claim succeeded.
func (ctx *Context) SetActive(id ID) bool {
	return ctx.SetActiveID(id, ctx.currentWindow)
}

// SetActiveIDUsingNavDir marks dir as consumed by the active item: while it
// stays active, presses in that direction are left to the item instead of
// moving nav focus.
func (ctx *Context) SetActiveIDUsingNavDir(dir Dir) {
	if ctx.activeID == 0 || dir == DirNone {
		return
	}
	ctx.activeIDUsingNavDirMask |= 1 << uint(dir)
}

// IsActiveIDUsingNavDir reports whether the active item consumes dir.
func (ctx *Context) IsActiveIDUsingNavDir(dir Dir) bool {
	return dir != DirNone && ctx.activeIDUsingNavDirMask&(1<<uint(dir)) != 0
}

// ClearActive is shorthand for ClearActiveID.
func (ctx *Context) ClearActive() {
	ctx.ClearActiveID()
}

// IsHovered reports whether id is the hovered item so far this frame.
func (ctx *Context) IsHovered(id ID) bool {
	return id != 0 && ctx.hoveredID == id
}

// IsActive reports whether id holds ActiveID.
func (ctx *Context) IsActive(id ID) bool {
	return id != 0 && ctx.activeID == id
}

// IsFocused reports whether id owns navigation focus.
func (ctx *Context) IsFocused(id ID) bool {
	return id != 0 && ctx.nav.id == id
}

// KeepAliveID marks id as submitted this frame so that it keeps ActiveID.
func (ctx *Context) KeepAliveID(id ID) {
	if ctx.activeID == id {
		ctx.activeIDIsAlive = id
	}
	if ctx.activeIDPreviousFrame == id {
		ctx.activeIDPreviousFrameIsAlive = true
	}
}

// MarkItemEdited records that the item changed its value this frame.
func (ctx *Context) MarkItemEdited(id ID) {
	if ctx.activeID == id {
		ctx.activeIDHasBeenEditedThisFrame = true
		ctx.activeIDHasBeenEditedBefore = true
	}
	ctx.editedIDs = append(ctx.editedIDs, id)
	if ctx.lastItem.ID == id {
		ctx.lastItem.StatusFlags |= ItemStatusEdited
	}
}

// ActiveID returns the item currently being interacted with.
func (ctx *Context) ActiveID() ID { return ctx.activeID }

// ActiveIDPreviousFrame returns last frame's active item.
func (ctx *Context) ActiveIDPreviousFrame() ID { return ctx.activeIDPreviousFrame }

// ActiveIDSource reports what activated the active item.
func (ctx *Context) ActiveIDSource() InputSource { return ctx.activeIDSource }

// ActiveIDTimer returns how long the active item has been active, in seconds.
func (ctx *Context) ActiveIDTimer() float32 { return ctx.activeIDTimer }

// LastActiveID returns the most recent item to become active.
func (ctx *Context) LastActiveID() ID { return ctx.lastActiveID }

// HoveredIDTimer returns how long the hovered item has been hovered, in seconds.
func (ctx *Context) HoveredIDTimer() float32 { return ctx.hoveredIDTimer }

// WasJustActivated reports whether id became active this frame.
func (ctx *Context) WasJustActivated(id ID) bool {
	return id != 0 && ctx.activeID == id && ctx.activeIDPreviousFrame != id
}

// WasJustDeactivated reports whether id stopped being active this frame.
func (ctx *Context) WasJustDeactivated(id ID) bool {
	return id != 0 && ctx.activeIDPreviousFrame == id && ctx.activeID != id
}

// WasDeactivatedAfterEdit reports whether id stopped being active this
// frame after being edited at any point during the activation.
func (ctx *Context) WasDeactivatedAfterEdit(id ID) bool {
	if !ctx.WasJustDeactivated(id) {
		return false
	}
	if ctx.deactivated.ID == id {
		return ctx.deactivated.HadEdit
	}
	return ctx.activeIDPreviousFrameHasBeenEditedBefore
}

// WasEditedThisFrame reports whether MarkItemEdited was called for id this frame.
func (ctx *Context) WasEditedThisFrame(id ID) bool {
	for _, e := range ctx.editedIDs {
		if e == id {
			return true
		}
	}
	return false
}
