package imcore

import "testing"

// navItems submits plain navigable items in the default window and
// remembers their IDs by label.
type navItems struct {
	rects  map[string]Rect
	order  []string
	ids    map[string]ID
	before func(ctx *Context, label string) // runs before an item is submitted
}

func newNavItems() *navItems {
	return &navItems{rects: make(map[string]Rect), ids: make(map[string]ID)}
}

func (n *navItems) add(label string, r Rect) *navItems {
	n.rects[label] = r
	n.order = append(n.order, label)
	return n
}

func (n *navItems) submit(ctx *Context) {
	for _, label := range n.order {
		if n.before != nil {
			n.before(ctx, label)
		}
		id := ctx.GetID(label)
		n.ids[label] = id
		ctx.ItemAdd(n.rects[label], id, ItemFlagsNone)
	}
}

func (n *navItems) labelOf(id ID) string {
	for label, v := range n.ids {
		if v == id {
			return label
		}
	}
	return "<none>"
}

// column returns three items stacked vertically.
func column() *navItems {
	return newNavItems().
		add("a", rect(0, 0, 100, 20)).
		add("b", rect(0, 30, 100, 20)).
		add("c", rect(0, 60, 100, 20))
}

func expectNav(t *testing.T, h *harness, items *navItems, want string) {
	t.Helper()
	if got := items.labelOf(h.ctx.NavID()); got != want {
		t.Errorf("Expected nav focus on %q, got %q", want, got)
	}
}

func TestNav_FindInitial(t *testing.T) {
	h := newHarness(t)
	items := column()
	h.tap(KeyDown, items.submit)
	expectNav(t, h, items, "a")
	if !h.ctx.NavHighlightVisible() {
		t.Error("Expected the highlight to show after a nav key")
	}
}

func TestNav_FindInitial_DefaultFocus(t *testing.T) {
	h := newHarness(t)
	items := column()
	items.before = func(ctx *Context, label string) {
		if label == "b" {
			ctx.SetNextItemFlags(ItemFlagsDefaultFocus)
		}
	}
	h.tap(KeyDown, items.submit)
	expectNav(t, h, items, "b")
}

func TestNav_MoveDownUp(t *testing.T) {
	h := newHarness(t)
	items := column()
	h.tap(KeyDown, items.submit)

	h.tap(KeyDown, items.submit)
	expectNav(t, h, items, "b")
	h.tap(KeyDown, items.submit)
	expectNav(t, h, items, "c")
	h.tap(KeyUp, items.submit)
	expectNav(t, h, items, "b")
}

func TestNav_Monotonic(t *testing.T) {
	h := newHarness(t)
	items := column()
	h.tap(KeyDown, items.submit)

	h.in.SetKey(KeyDown, true)
	h.frame(items.submit)
	res, ok := h.ctx.NavMoveResult()
	if !ok {
		t.Fatal("Expected a move result")
	}
	if res.DistAxial <= 0 {
		t.Errorf("Expected a positive axial distance, got %v", res.DistAxial)
	}
	if res.RectRel.Center().Y <= items.rects["a"].Center().Y {
		t.Error("Expected the result to lie below the source")
	}
}

func TestNav_NoCandidate(t *testing.T) {
	h := newHarness(t)
	items := column()
	h.tap(KeyDown, items.submit)

	h.in.SetKey(KeyUp, true)
	h.frame(items.submit)
	if _, ok := h.ctx.GetNavMoveResult(); ok {
		t.Error("Expected no result above the first item")
	}
	expectNav(t, h, items, "a")
}

func TestNav_ScoringPrefersAxial(t *testing.T) {
	h := newHarness(t)
	items := newNavItems().
		add("src", rect(0, 0, 100, 20)).
		add("far", rect(0, 100, 100, 20)).
		add("near", rect(200, 30, 100, 20))
	h.tap(KeyDown, items.submit)
	expectNav(t, h, items, "src")

	h.tap(KeyDown, items.submit)
	expectNav(t, h, items, "near")
}

func TestNav_TieKeepsFirst(t *testing.T) {
	h := newHarness(t)
	items := newNavItems().
		add("src", rect(100, 0, 100, 20)).
		add("left", rect(0, 40, 100, 20)).
		add("right", rect(200, 40, 100, 20))
	h.tap(KeyDown, items.submit)
	h.tap(KeyDown, items.submit)
	expectNav(t, h, items, "left")
}

func row() *navItems {
	return newNavItems().
		add("r0", rect(0, 0, 100, 20)).
		add("r1", rect(110, 0, 100, 20)).
		add("r2", rect(220, 0, 100, 20))
}

func TestNav_Wrap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NavWrap = true
	h := newHarness(t, WithConfig(cfg))
	items := row()
	h.tap(KeyDown, items.submit)
	h.tap(KeyRight, items.submit)
	h.tap(KeyRight, items.submit)
	expectNav(t, h, items, "r2")

	h.tap(KeyRight, items.submit)
	expectNav(t, h, items, "r0")

	h.tap(KeyLeft, items.submit)
	expectNav(t, h, items, "r2")
}

func TestNav_NoWrapStays(t *testing.T) {
	h := newHarness(t)
	items := row()
	h.tap(KeyDown, items.submit)
	h.tap(KeyLeft, items.submit)
	expectNav(t, h, items, "r0")
}

func grid() *navItems {
	return newNavItems().
		add("00", rect(0, 0, 100, 20)).
		add("01", rect(110, 0, 100, 20)).
		add("10", rect(0, 30, 100, 20)).
		add("11", rect(110, 30, 100, 20))
}

func TestNav_Loop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NavLoop = true
	h := newHarness(t, WithConfig(cfg))
	items := grid()
	h.tap(KeyDown, items.submit)
	h.tap(KeyRight, items.submit)
	expectNav(t, h, items, "01")

	// End of a line continues on the next line.
	h.tap(KeyRight, items.submit)
	expectNav(t, h, items, "10")

	h.tap(KeyRight, items.submit)
	expectNav(t, h, items, "11")

	// End of the last line restarts at the first item.
	h.tap(KeyRight, items.submit)
	expectNav(t, h, items, "00")
}

func TestNav_LoopRaggedRows(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NavLoop = true
	h := newHarness(t, WithConfig(cfg))
	// The middle line is short and starts further right than the last one.
	items := newNavItems().
		add("a", rect(0, 0, 50, 20)).
		add("b", rect(60, 0, 50, 20)).
		add("c", rect(40, 30, 30, 20)).
		add("d", rect(0, 60, 30, 20)).
		add("e", rect(40, 60, 30, 20))
	items.before = func(ctx *Context, label string) {
		if label == "c" {
			ctx.SetFocus(items.ids["b"])
		}
	}
	h.frame(items.submit)
	items.before = nil
	expectNav(t, h, items, "b")

	h.tap(KeyRight, items.submit)
	expectNav(t, h, items, "c")
}

func TestNav_AllowCurrent(t *testing.T) {
	h := newHarness(t)
	items := column()
	h.tap(KeyDown, items.submit)

	above := rect(0, -100, 100, 20)
	h.frame(func(ctx *Context) {
		items.submit(ctx)
		ctx.RequestNavMove(DirDown, above, NavMoveNone)
	})
	expectNav(t, h, items, "b")

	h.frame(func(ctx *Context) {
		items.submit(ctx)
		ctx.RequestNavMove(DirUp, rect(0, 200, 100, 20), NavMoveAllowCurrent)
	})
	expectNav(t, h, items, "c")

	h.frame(func(ctx *Context) {
		items.submit(ctx)
		ctx.RequestNavMove(DirDown, rect(0, 45, 100, 5), NavMoveAllowCurrent)
	})
	expectNav(t, h, items, "c")
}

func TestNav_RequestWithoutNavWindow(t *testing.T) {
	h := newHarness(t)
	items := column()
	h.frame(func(ctx *Context) {
		ctx.Begin("Tools", WindowFlagsNoFocusOnAppearing)
		items.submit(ctx)
		ctx.End()
	})
	if h.ctx.NavWindow() != nil {
		t.Fatal("Expected no nav window before the request")
	}

	h.frame(func(ctx *Context) {
		ctx.Begin("Tools", WindowFlagsNoFocusOnAppearing)
		items.submit(ctx)
		ctx.RequestNavMove(DirDown, rect(-60, -100, 100, 20), NavMoveNone)
		ctx.End()
	})
	expectNav(t, h, items, "a")
	if w := h.ctx.NavWindow(); w == nil || w.Name != "Tools" {
		t.Error("Expected the request to resolve in the current window")
	}
}

func TestNav_JustMovedTo(t *testing.T) {
	h := newHarness(t)
	items := column()
	h.tap(KeyDown, items.submit)
	if h.ctx.NavJustMovedToID() != 0 {
		t.Error("Expected FindInitial not to count as a move")
	}

	h.tap(KeyDown, items.submit)
	if h.ctx.NavJustMovedToID() != items.ids["b"] {
		t.Errorf("Expected the move target to be reported, got %08x", h.ctx.NavJustMovedToID())
	}
	h.frame(items.submit)
	if h.ctx.NavJustMovedToID() != 0 {
		t.Error("Expected NavJustMovedToID to clear two frames after the move")
	}
}

func TestNav_CenterTieIsNotACandidate(t *testing.T) {
	h := newHarness(t)
	items := column()
	h.tap(KeyDown, items.submit)
	expectNav(t, h, items, "a")

	// b and c share a's center X, so they are neither left nor right of it.
	h.tap(KeyRight, items.submit)
	expectNav(t, h, items, "a")
	h.tap(KeyLeft, items.submit)
	expectNav(t, h, items, "a")
}

func TestNav_MidFrameRequest(t *testing.T) {
	h := newHarness(t)
	items := column()
	h.tap(KeyDown, items.submit)

	items.before = func(ctx *Context, label string) {
		if label == "c" {
			// a and b are already submitted; c arrives after the request.
			ctx.RequestNavMove(DirDown, items.rects["a"], NavMoveNone)
		}
	}
	h.frame(items.submit)
	expectNav(t, h, items, "b")
	if id, ok := h.ctx.GetNavMoveResult(); !ok || id != items.ids["b"] {
		t.Error("Expected GetNavMoveResult to report b after EndFrame")
	}
}

func TestNav_RequestExpires(t *testing.T) {
	h := newHarness(t)
	items := column()
	h.tap(KeyDown, items.submit)

	h.frame(func(ctx *Context) {
		items.submit(ctx)
		ctx.RequestNavMove(DirDown, items.rects["a"], NavMoveNone)
	})
	if _, ok := h.ctx.GetNavMoveResult(); !ok {
		t.Fatal("Expected the request to resolve at EndFrame")
	}

	h.frame(items.submit)
	if _, ok := h.ctx.GetNavMoveResult(); ok {
		t.Error("Expected no result in a frame without a request")
	}
	expectNav(t, h, items, "b")
}

func TestNav_MouseClickCancels(t *testing.T) {
	h := newHarness(t)
	items := column()
	h.tap(KeyDown, items.submit)

	h.mouseAt(700, 500)
	h.mouseDown()
	h.in.SetKey(KeyDown, true)
	h.frame(items.submit)
	if _, ok := h.ctx.GetNavMoveResult(); ok {
		t.Error("Expected the click to cancel the move request")
	}
	if h.ctx.NavHighlightVisible() {
		t.Error("Expected the click to hide the highlight")
	}
}

func TestNav_StaleIDReinitializes(t *testing.T) {
	h := newHarness(t)
	items := column()
	h.tap(KeyDown, items.submit)
	h.tap(KeyDown, items.submit)
	expectNav(t, h, items, "b")

	without := newNavItems().
		add("a", items.rects["a"]).
		add("c", items.rects["c"])
	h.frame(without.submit)
	if h.ctx.NavID() != 0 {
		t.Fatal("Expected the vanished item to lose nav focus")
	}
	h.frame(without.submit)
	expectNav(t, h, without, "a")
}

func TestNav_EscapeHidesHighlight(t *testing.T) {
	h := newHarness(t)
	items := column()
	h.tap(KeyDown, items.submit)
	h.tap(KeyEscape, items.submit)
	if h.ctx.NavHighlightVisible() {
		t.Error("Expected Escape to hide the highlight")
	}
	expectNav(t, h, items, "a")
}

func TestNav_LayerToggle(t *testing.T) {
	h := newHarness(t)
	var menuID, mainID ID
	submit := func(ctx *Context) {
		ctx.SetNextWindowPos(Vec2{X: 0, Y: 0}, CondOnce)
		ctx.Begin("App", WindowFlagsMenuBar)
		if ctx.BeginMenuBar() {
			menuID = ctx.GetID("File")
			ctx.ItemAdd(rect(0, 0, 50, 20), menuID, ItemFlagsNone)
			ctx.EndMenuBar()
		}
		mainID = ctx.GetID("Body")
		ctx.ItemAdd(rect(0, 30, 100, 20), mainID, ItemFlagsNone)
		ctx.End()
	}

	h.frame(submit)
	if h.ctx.NavID() != mainID {
		t.Fatal("Expected the appearing window to focus its main layer")
	}

	h.tap(KeyAlt, submit)
	if h.ctx.NavLayer() != NavLayerMenu {
		t.Fatalf("Expected Alt to switch to the menu layer, got %v", h.ctx.NavLayer())
	}
	if h.ctx.NavID() != menuID {
		t.Error("Expected the menu item to get focus")
	}

	h.tap(KeyEscape, submit)
	if h.ctx.NavLayer() != NavLayerMain {
		t.Error("Expected Escape to leave the menu layer")
	}
	if h.ctx.NavID() != mainID {
		t.Error("Expected the main layer to restore its item")
	}

	h.tap(KeyGamepadStart, submit)
	if h.ctx.NavLayer() != NavLayerMenu {
		t.Error("Expected gamepad Start to toggle the layer")
	}
}

func TestNav_AltChordDoesNotToggle(t *testing.T) {
	h := newHarness(t)
	submit := func(ctx *Context) {
		ctx.Begin("App", WindowFlagsMenuBar)
		if ctx.BeginMenuBar() {
			ctx.ItemAdd(rect(0, 0, 50, 20), ctx.GetID("File"), ItemFlagsNone)
			ctx.EndMenuBar()
		}
		ctx.ItemAdd(rect(0, 30, 100, 20), ctx.GetID("Body"), ItemFlagsNone)
		ctx.End()
	}
	h.frame(submit)

	h.in.SetKey(KeyAlt, true)
	h.frame(submit)
	h.in.SetKey(KeyTab, true)
	h.frame(submit)
	h.in.SetKey(KeyTab, false)
	h.in.SetKey(KeyAlt, false)
	h.frame(submit)
	if h.ctx.NavLayer() != NavLayerMain {
		t.Error("Expected Alt used as a modifier not to toggle the layer")
	}
}

func TestNav_GamepadMove(t *testing.T) {
	h := newHarness(t)
	items := column()
	h.tap(KeyGamepadDpadDown, items.submit)
	h.tap(KeyGamepadDpadDown, items.submit)
	expectNav(t, h, items, "b")
}

func TestNavDistances(t *testing.T) {
	src := rect(0, 0, 10, 10)
	axial, perp, box := navDistances(DirRight, src, rect(30, 10, 10, 10))
	if axial != 30 || perp != 10 || box != 20 {
		t.Errorf("Expected (30, 10, 20), got (%v, %v, %v)", axial, perp, box)
	}
	if axial, _, _ := navDistances(DirLeft, src, rect(30, 0, 10, 10)); axial >= 0 {
		t.Errorf("Expected a candidate behind the source to have negative axial, got %v", axial)
	}
	if d := rectDistance(src, rect(5, 5, 10, 10)); d != 0 {
		t.Errorf("Expected overlapping rects at distance 0, got %v", d)
	}
}
