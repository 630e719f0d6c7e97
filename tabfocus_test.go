package imcore

import "testing"

func TestTabFocus_CyclesTabStops(t *testing.T) {
	h := newHarness(t)
	items := column()
	h.frame(items.submit)

	h.in.SetKey(KeyTab, true)
	h.frame(items.submit)
	expectNav(t, h, items, "a")
	if h.ctx.NavJustTabbedID() != items.ids["a"] {
		t.Error("Expected the Tab target to be reported for the frame")
	}
	if !h.ctx.NavHighlightVisible() {
		t.Error("Expected Tab to show the nav highlight")
	}
	h.in.SetKey(KeyTab, false)
	h.frame(items.submit)
	if h.ctx.NavJustTabbedID() != 0 {
		t.Error("Expected NavJustTabbedID to clear on the next frame")
	}

	h.tap(KeyTab, items.submit)
	expectNav(t, h, items, "b")
	h.tap(KeyTab, items.submit)
	expectNav(t, h, items, "c")

	// Past the last tab stop, focus wraps to the first.
	h.tap(KeyTab, items.submit)
	expectNav(t, h, items, "a")

	h.in.ModShift = true
	h.tap(KeyTab, items.submit)
	expectNav(t, h, items, "c")
	h.tap(KeyTab, items.submit)
	expectNav(t, h, items, "b")
	h.in.ModShift = false
}

func TestTabFocus_SkipsNoTabStop(t *testing.T) {
	h := newHarness(t)
	items := column()
	items.before = func(ctx *Context, label string) {
		if label == "b" {
			ctx.SetNextItemFlags(ItemFlagsNoTabStop)
		}
	}
	h.frame(items.submit)

	h.tap(KeyTab, items.submit)
	expectNav(t, h, items, "a")
	h.tap(KeyTab, items.submit)
	expectNav(t, h, items, "c")

	// Arrow navigation still reaches the item.
	h.tap(KeyUp, items.submit)
	expectNav(t, h, items, "b")
}

func TestTabFocus_IgnoredWhileActive(t *testing.T) {
	h := newHarness(t)
	items := column()
	h.tap(KeyTab, items.submit)
	expectNav(t, h, items, "a")

	h.in.SetKey(KeySpace, true)
	h.frame(func(ctx *Context) {
		items.submit(ctx)
		ctx.SetActive(items.ids["a"])
	})
	h.tap(KeyTab, func(ctx *Context) {
		items.submit(ctx)
		ctx.KeepAliveID(items.ids["a"])
	})
	expectNav(t, h, items, "a")
	h.in.SetKey(KeySpace, false)
}

func TestSetKeyboardFocusHere(t *testing.T) {
	h := newHarness(t)
	items := column()
	items.before = func(ctx *Context, label string) {
		if label == "a" {
			ctx.SetKeyboardFocusHere(1)
		}
	}
	h.frame(items.submit)
	items.before = nil
	if h.ctx.NavID() == items.ids["b"] {
		t.Fatal("Expected the request to wait for the next frame")
	}

	h.frame(items.submit)
	expectNav(t, h, items, "b")
	if h.ctx.NavJustTabbedID() != items.ids["b"] {
		t.Error("Expected the focused item to be reported as just tabbed")
	}

	items.before = func(ctx *Context, label string) {
		if label == "a" {
			ctx.SetKeyboardFocusHere(2)
		}
	}
	h.frame(items.submit)
	items.before = nil
	h.frame(items.submit)
	expectNav(t, h, items, "c")

	// -1 targets the item submitted just before the call.
	items.before = func(ctx *Context, label string) {
		if label == "b" {
			ctx.SetKeyboardFocusHere(-1)
		}
	}
	h.frame(items.submit)
	items.before = nil
	h.frame(items.submit)
	expectNav(t, h, items, "a")
}
