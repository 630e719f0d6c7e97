package imcore

// Reference widgets. They take explicit rectangles (the engine has no
// layout) and do no drawing: hosts render from the item state they expose
// (IsItemHovered, IsItemActive, NavID, ...). They double as templates for
// custom widgets built on ItemAdd and ButtonBehavior.

// itemID resolves the ID of a widget from its label and options.
func (ctx *Context) itemID(label string, o options) ID {
	if optID := GetOpt(o, OptID); optID != "" {
		return ctx.GetID(optID)
	}
	return ctx.GetID(label)
}

// Button submits a button and returns true when it is pressed.
func (ctx *Context) Button(label string, bb Rect, opts ...Option) bool {
	o := applyOptions(opts)
	id := ctx.itemID(label, o)

	if !ctx.ItemAdd(bb, id, o.itemFlags()) || GetOpt(o, OptDisabled) {
		return false
	}
	pressed, _, _ := ctx.ButtonBehavior(bb, id, o.buttonFlags())
	return pressed
}

// InvisibleButton is a Button without a label, keyed by strID.
func (ctx *Context) InvisibleButton(strID string, bb Rect, flags ButtonFlags) bool {
	id := ctx.GetID(strID)
	if !ctx.ItemAdd(bb, id, ItemFlagsNone) {
		return false
	}
	pressed, _, _ := ctx.ButtonBehavior(bb, id, flags)
	return pressed
}

// Checkbox toggles *v when pressed. Returns true on the frame it changed.
func (ctx *Context) Checkbox(label string, bb Rect, v *bool, opts ...Option) bool {
	o := applyOptions(opts)
	id := ctx.itemID(label, o)

	if !ctx.ItemAdd(bb, id, o.itemFlags()) || GetOpt(o, OptDisabled) {
		return false
	}
	pressed, _, _ := ctx.ButtonBehavior(bb, id, o.buttonFlags())
	if pressed {
		*v = !*v
		ctx.MarkItemEdited(id)
	}
	return pressed
}

// Selectable is a button that reports selection. Inside a popup a press
// closes the popup unless KeepPopupOpen is set.
func (ctx *Context) Selectable(label string, selected bool, bb Rect, opts ...Option) bool {
	o := applyOptions(opts)
	id := ctx.itemID(label, o)

	if !ctx.ItemAdd(bb, id, o.itemFlags()) || GetOpt(o, OptDisabled) {
		return false
	}
	pressed, _, _ := ctx.ButtonBehavior(bb, id, o.buttonFlags())
	if pressed {
		if !selected {
			ctx.MarkItemEdited(id)
		}
		if w := ctx.currentWindow; w.IsPopup() && !GetOpt(o, OptKeepPopupOpen) {
			ctx.CloseCurrentPopup()
		}
	}
	return pressed
}

// MenuItem is a Selectable for menus. Returns true when activated.
func (ctx *Context) MenuItem(label string, bb Rect, opts ...Option) bool {
	return ctx.Selectable(label, false, bb, opts...)
}

// SliderFloat edits *v in [min, max] from the pointer's horizontal position.
// The item activates on the press edge so the value tracks the pointer
// immediately. With navigation focus, activation enters edit mode where
// Left/Right step the value; activate or cancel again to leave.
// Returns true on frames the value changed.
func (ctx *Context) SliderFloat(label string, bb Rect, v *float32, minVal, maxVal float32, opts ...Option) bool {
	o := applyOptions(opts)
	id := ctx.itemID(label, o)
	w := ctx.currentWindow

	if !ctx.ItemAdd(bb, id, o.itemFlags()) || GetOpt(o, OptDisabled) {
		return false
	}
	in := ctx.Input

	hovered := ctx.ItemHoverable(bb, id, GetOpt(o, OptHoveredFlags))
	if hovered && in.MouseClicked(MouseButtonLeft) && ctx.SetActiveID(id, w) {
		ctx.activeIDSource = InputSourceMouse
		ctx.activeIDMouseButton = MouseButtonLeft
		ctx.focusOnClick(id, w, o.buttonFlags())
		ctx.nav.disableHighlight = true
	}
	if ctx.nav.activatePressedID == id && ctx.nav.window == w {
		if ctx.activeID == id {
			ctx.ClearActiveID()
			return false
		}
		if ctx.SetActiveID(id, w) {
			ctx.activeIDSource = InputSourceNav
		}
	}
	if ctx.activeID != id {
		return false
	}
	if ctx.activeIDSource == InputSourceNav {
		ctx.SetActiveIDUsingNavDir(DirLeft)
		ctx.SetActiveIDUsingNavDir(DirRight)
	}

	value := *v
	switch ctx.activeIDSource {
	case InputSourceMouse:
		if !in.MouseDown(MouseButtonLeft) {
			ctx.ClearActiveID()
			return false
		}
		if bb.W > 0 && in.MousePosValid() {
			t := clampf((in.MouseX-bb.X)/bb.W, 0, 1)
			value = minVal + t*(maxVal-minVal)
		}
	case InputSourceNav:
		step := GetOpt(o, OptStep)
		if step <= 0 {
			step = (maxVal - minVal) / 100
		}
		delay, rate := ctx.cfg.KeyRepeatDelay, ctx.cfg.KeyRepeatRate
		if in.KeyRepeated(KeyLeft, delay, rate) || in.KeyRepeated(KeyGamepadDpadLeft, delay, rate) {
			value -= step
		}
		if in.KeyRepeated(KeyRight, delay, rate) || in.KeyRepeated(KeyGamepadDpadRight, delay, rate) {
			value += step
		}
		value = clampf(value, minVal, maxVal)
	}

	if value == *v {
		return false
	}
	*v = value
	ctx.MarkItemEdited(id)
	return true
}

// DragFloat edits *v by dragging horizontally: once the pointer has moved
// past Config.DragThreshold the value follows the pointer at speed units
// per pixel from its value at the press.
func (ctx *Context) DragFloat(label string, bb Rect, v *float32, opts ...Option) bool {
	o := applyOptions(opts)
	id := ctx.itemID(label, o)
	w := ctx.currentWindow

	if !ctx.ItemAdd(bb, id, o.itemFlags()) || GetOpt(o, OptDisabled) {
		return false
	}
	in := ctx.Input
	st := ctx.dragStates.Get(id, dragState{})

	hovered := ctx.ItemHoverable(bb, id, GetOpt(o, OptHoveredFlags))
	if hovered && in.MouseClicked(MouseButtonLeft) && ctx.SetActiveID(id, w) {
		ctx.activeIDSource = InputSourceMouse
		ctx.activeIDMouseButton = MouseButtonLeft
		ctx.focusOnClick(id, w, o.buttonFlags())
		*st = dragState{StartMouseX: in.MouseX, StartValue: *v}
	}
	if ctx.activeID != id || ctx.activeIDSource != InputSourceMouse {
		return false
	}
	if !in.MouseDown(MouseButtonLeft) {
		ctx.ClearActiveID()
		st.Dragging = false
		return false
	}
	if !st.Dragging {
		if !in.MouseDragging(MouseButtonLeft, ctx.cfg.DragThreshold) {
			return false
		}
		st.Dragging = true
	}

	value := st.StartValue + (in.MouseX-st.StartMouseX)*GetOpt(o, OptDragSpeed)
	if r, ok := ApplyAndCheck(opts, OptRange); ok {
		value = clampf(value, r.Min, r.Max)
	}
	if value == *v {
		return false
	}
	*v = value
	ctx.MarkItemEdited(id)
	return true
}

// BeginMenuBar starts submitting items to the window's menu layer. Items
// until EndMenuBar are navigated separately and reached with Alt or the
// gamepad Menu button. Requires WindowFlagsMenuBar.
func (ctx *Context) BeginMenuBar() bool {
	w := ctx.currentWindow
	if w == nil || w.Flags&WindowFlagsMenuBar == 0 {
		return false
	}
	ctx.PushOverrideID(HashString("##menubar", w.ID))
	w.navLayerCurrent = NavLayerMenu
	return true
}

// EndMenuBar ends the menu layer started by BeginMenuBar.
func (ctx *Context) EndMenuBar() {
	w := ctx.currentWindow
	if !ctx.assert(w != nil && w.navLayerCurrent == NavLayerMenu, "EndMenuBar without BeginMenuBar") {
		return
	}
	w.navLayerCurrent = NavLayerMain
	ctx.PopID()
}

// BeginMenu submits a menu header at bb and begins its popup when open.
// Pressing the header toggles the menu; hovering another header while a
// sibling menu is open switches to it. Returns true when the caller must
// submit the menu items and call EndMenu.
func (ctx *Context) BeginMenu(label string, bb Rect, opts ...Option) bool {
	o := applyOptions(opts)
	id := ctx.itemID(label, o)
	w := ctx.currentWindow
	if !ctx.ItemAdd(bb, id, o.itemFlags()) {
		return false
	}

	open := ctx.IsPopupOpenID(id, PopupFlagsNone)
	if !GetOpt(o, OptDisabled) {
		pressed, hovered, _ := ctx.ButtonBehavior(bb, id, ButtonFlagsPressedOnClick|ButtonFlagsNoHoldingActiveID)
		siblingOpen := !open && ctx.IsPopupOpenID(0, PopupFlagsAnyPopupID)
		navOpen := ctx.nav.activatePressedID == id && ctx.nav.window == w
		switch {
		case pressed && open:
			ctx.ClosePopupToLevel(len(ctx.beginPopupStack), true)
			open = false
		case pressed, navOpen, hovered && siblingOpen:
			ctx.OpenPopupEx(id, PopupFlagsNone)
			open = true
		}
	}
	if !open {
		return false
	}

	if w.IsPopup() {
		ctx.SetNextWindowPos(Vec2{X: bb.X + bb.W, Y: bb.Y}, CondAppearing)
	} else {
		ctx.SetNextWindowPos(Vec2{X: bb.X, Y: bb.Y + bb.H}, CondAppearing)
	}
	return ctx.beginPopupEx(id, WindowFlagsNoMove|WindowFlagsChildMenu)
}

// EndMenu ends a menu begun with BeginMenu.
func (ctx *Context) EndMenu() {
	ctx.EndPopup()
}
