package imcore

// Window cycling with Ctrl+Tab / Ctrl+Shift+Tab. Windows are cycled in
// creation order so repeated presses visit every window, even though
// focusing a window raises it.

// windowingNewFrame handles the cycling keys.
func (ctx *Context) windowingNewFrame() {
	in := ctx.Input
	if !in.KeyPressed(KeyTab) || !in.ModCtrl {
		return
	}
	if ctx.GetTopMostPopupModal() != nil {
		return
	}
	if in.ModShift {
		ctx.FocusPrevWindow()
	} else {
		ctx.FocusNextWindow()
	}
}

// FocusNextWindow focuses the next cycling candidate after the focused window.
func (ctx *Context) FocusNextWindow() {
	ctx.cycleWindowFocus(1)
}

// FocusPrevWindow focuses the previous cycling candidate.
func (ctx *Context) FocusPrevWindow() {
	ctx.cycleWindowFocus(-1)
}

func (ctx *Context) cycleWindowFocus(step int) {
	candidates := ctx.cyclableWindows()
	if len(candidates) == 0 {
		return
	}

	idx := -1
	for i, w := range candidates {
		if w == ctx.nav.window {
			idx = i
			break
		}
	}
	switch {
	case idx < 0 && step > 0:
		idx = 0
	case idx < 0:
		idx = len(candidates) - 1
	default:
		idx = (idx + step + len(candidates)) % len(candidates)
	}

	w := candidates[idx]
	ctx.ClosePopupsOverWindow(w, false)
	ctx.FocusWindow(w)
	ctx.nav.disableHighlight = false
	ctx.logger.Debug("cycle window focus", "window", w.Name, "step", step)
}

// cyclableWindows returns visible regular windows that accept navigation.
func (ctx *Context) cyclableWindows() []*Window {
	out := make([]*Window, 0, len(ctx.windowsCreation))
	for _, w := range ctx.windowsCreation {
		if w == ctx.defaultWindow || w.IsPopup() || !(w.WasActive || w.Active) {
			continue
		}
		if w.Flags&WindowFlagsNoNav != 0 {
			continue
		}
		out = append(out, w)
	}
	return out
}
