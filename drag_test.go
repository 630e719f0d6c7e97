package imcore

import "testing"

// panelAt submits a window named name at a fixed initial rectangle.
func panelAt(name string, r Rect, flags WindowFlags) func(ctx *Context) {
	return func(ctx *Context) {
		ctx.SetNextWindowPos(Vec2{X: r.X, Y: r.Y}, CondOnce)
		ctx.SetNextWindowSize(Vec2{X: r.W, Y: r.H}, CondOnce)
		ctx.Begin(name, flags)
		ctx.End()
	}
}

func TestWindowMove_BasicDrag(t *testing.T) {
	h := newHarness(t)
	submit := panelAt("Panel", rect(100, 100, 200, 150), WindowFlagsNone)
	h.frame(submit)
	w := h.ctx.FindWindowByName("Panel")

	h.mouseAt(150, 110)
	h.mouseDown()
	h.frame(submit)
	if h.ctx.MovingWindow() != w {
		t.Fatal("Expected a press on empty window space to start a move")
	}
	if h.ctx.ActiveID() != w.MoveID {
		t.Error("Expected the move to hold the window's MoveID")
	}

	h.mouseAt(250, 210)
	h.frame(submit)
	if w.Pos.X != 200 || w.Pos.Y != 200 {
		t.Errorf("Expected position (200, 200) after drag, got (%f, %f)", w.Pos.X, w.Pos.Y)
	}

	h.mouseUp()
	h.frame(submit)
	if h.ctx.MovingWindow() != nil {
		t.Error("Expected the move to end on release")
	}
	if h.ctx.ActiveID() != 0 {
		t.Error("Expected release to clear ActiveID")
	}
}

func TestWindowMove_ScreenBoundsClamp(t *testing.T) {
	h := newHarness(t)
	submit := panelAt("Panel", rect(100, 100, 200, 150), WindowFlagsNone)
	h.frame(submit)
	w := h.ctx.FindWindowByName("Panel")

	h.mouseAt(150, 110)
	h.mouseDown()
	h.frame(submit)

	h.mouseAt(-100, -100)
	h.frame(submit)
	if w.Pos.X != 0 || w.Pos.Y != 0 {
		t.Errorf("Expected position clamped to (0, 0), got (%f, %f)", w.Pos.X, w.Pos.Y)
	}

	h.mouseAt(2000, 2000)
	h.frame(submit)
	if w.Pos.X != 600 || w.Pos.Y != 450 {
		t.Errorf("Expected position clamped to (600, 450), got (%f, %f)", w.Pos.X, w.Pos.Y)
	}
}

func TestWindowMove_SnapToDisplayEdge(t *testing.T) {
	h := newHarness(t)
	submit := panelAt("Panel", rect(100, 100, 200, 150), WindowFlagsNone)
	h.frame(submit)
	w := h.ctx.FindWindowByName("Panel")

	h.mouseAt(150, 110)
	h.mouseDown()
	h.frame(submit)

	// Pointer offset is (50, 10): target (5, 200)
	h.mouseAt(55, 210)
	h.frame(submit)
	if w.Pos.X != 0 || w.Pos.Y != 200 {
		t.Errorf("Expected snap to the left edge at (0, 200), got (%f, %f)", w.Pos.X, w.Pos.Y)
	}
	if len(h.ctx.SnapGuides()) == 0 {
		t.Error("Expected a snap guide while snapped")
	}

	h.mouseUp()
	h.frame(submit)
	if len(h.ctx.SnapGuides()) != 0 {
		t.Error("Expected guides cleared after the move")
	}
}

func TestWindowMove_SnapToOtherWindow(t *testing.T) {
	h := newHarness(t)
	panel := panelAt("Panel", rect(100, 100, 200, 150), WindowFlagsNone)
	other := panelAt("Other", rect(400, 100, 100, 100), WindowFlagsNone)
	submit := func(ctx *Context) {
		other(ctx)
		panel(ctx)
	}
	h.frame(submit)
	w := h.ctx.FindWindowByName("Panel")

	h.mouseAt(150, 110)
	h.mouseDown()
	h.frame(submit)

	// Target (195, 300): right edge 395 abuts Other's left edge at 400.
	h.mouseAt(245, 310)
	h.frame(submit)
	if w.Pos.X != 200 || w.Pos.Y != 300 {
		t.Errorf("Expected snap against Other at (200, 300), got (%f, %f)", w.Pos.X, w.Pos.Y)
	}
}

func TestWindowMove_GridOnRelease(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WindowSnapMargin = 0
	cfg.WindowSnapGrid = 25
	h := newHarness(t, WithConfig(cfg))
	submit := panelAt("Panel", rect(100, 100, 200, 150), WindowFlagsNone)
	h.frame(submit)
	w := h.ctx.FindWindowByName("Panel")

	h.mouseAt(150, 110)
	h.mouseDown()
	h.frame(submit)
	h.mouseAt(253, 208)
	h.frame(submit)
	if w.Pos.X != 203 || w.Pos.Y != 198 {
		t.Fatalf("Expected unsnapped (203, 198) while dragging, got (%f, %f)", w.Pos.X, w.Pos.Y)
	}
	h.mouseUp()
	h.frame(submit)
	if w.Pos.X != 200 || w.Pos.Y != 200 {
		t.Errorf("Expected grid snap to (200, 200), got (%f, %f)", w.Pos.X, w.Pos.Y)
	}
}

func TestWindowMove_NoMove(t *testing.T) {
	h := newHarness(t)
	submit := panelAt("Fixed", rect(100, 100, 200, 150), WindowFlagsNoMove)
	h.frame(submit)

	h.mouseAt(150, 110)
	h.mouseDown()
	h.frame(submit)
	if h.ctx.MovingWindow() != nil {
		t.Error("Expected a NoMove window not to move")
	}
}

func TestWindowMove_ItemClaimsPress(t *testing.T) {
	h := newHarness(t)
	var id ID
	submit := func(ctx *Context) {
		ctx.SetNextWindowPos(Vec2{X: 100, Y: 100}, CondOnce)
		ctx.SetNextWindowSize(Vec2{X: 200, Y: 150}, CondOnce)
		ctx.Begin("Panel", WindowFlagsNone)
		ctx.Button("OK", rect(110, 110, 50, 20))
		id = ctx.LastItemID()
		ctx.End()
	}
	h.frame(submit)

	h.mouseAt(120, 115)
	h.mouseDown()
	h.frame(submit)
	if h.ctx.MovingWindow() != nil {
		t.Error("Expected a press on an item not to move the window")
	}
	if h.ctx.ActiveID() != id {
		t.Error("Expected the item to hold ActiveID")
	}
}
