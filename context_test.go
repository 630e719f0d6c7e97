package imcore

import (
	"errors"
	"testing"
)

func TestEndFrame_WithoutNewFrame(t *testing.T) {
	ctx := New()
	if err := ctx.EndFrame(); !errors.Is(err, ErrFrameNotStarted) {
		t.Errorf("Expected ErrFrameNotStarted, got %v", err)
	}
}

func TestFrameCount(t *testing.T) {
	h := newHarness(t)
	for range 3 {
		h.frame(nil)
	}
	if got := h.ctx.FrameCount(); got != 3 {
		t.Errorf("Expected 3 frames, got %d", got)
	}
	if h.ctx.WithinFrame() {
		t.Error("Expected no frame in progress after EndFrame")
	}
}

func TestUnbalancedWindowStack(t *testing.T) {
	h := newHarness(t)
	h.ctx.NewFrame()
	h.ctx.Begin("A", WindowFlagsNone)
	h.ctx.Begin("B", WindowFlagsNone)
	h.ctx.End()
	err := h.ctx.EndFrame()
	if !errors.Is(err, ErrUnbalancedWindowStack) {
		t.Fatalf("Expected ErrUnbalancedWindowStack, got %v", err)
	}

	// Repaired for the next frame.
	h.frame(func(ctx *Context) {
		if ctx.CurrentWindow() != ctx.defaultWindow {
			t.Error("Expected the default window to be current at frame start")
		}
	})
}

func TestNewFrame_TwiceCarriesErrors(t *testing.T) {
	h := newHarness(t)
	h.ctx.NewFrame()
	h.ctx.Begin("A", WindowFlagsNone)
	h.ctx.NewFrame() // the open frame ends with A still begun

	err := h.ctx.EndFrame()
	if !errors.Is(err, ErrFrameNotEnded) {
		t.Errorf("Expected ErrFrameNotEnded, got %v", err)
	}
	if !errors.Is(err, ErrUnbalancedWindowStack) {
		t.Errorf("Expected the unended frame's ErrUnbalancedWindowStack, got %v", err)
	}

	h.frame(nil)
}

func TestEnd_WithoutBegin(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *Context) {
		ctx.End() // ignored: only the default window is on the stack
		if ctx.CurrentWindow() == nil {
			t.Error("Expected the default window to remain current")
		}
	})
}

func TestActiveID_ClearedWhenNotSubmitted(t *testing.T) {
	h := newHarness(t)
	var id ID
	h.frame(func(ctx *Context) {
		id = ctx.GetID("drag")
		ctx.ItemAdd(rect(0, 0, 10, 10), id, ItemFlagsNone)
		ctx.SetActive(id)
	})
	if h.ctx.ActiveID() != id {
		t.Fatal("Expected ActiveID to survive the frame it was set in")
	}

	h.frame(func(ctx *Context) {
		ctx.ItemAdd(rect(0, 0, 10, 10), id, ItemFlagsNone)
	})
	if h.ctx.ActiveID() != id {
		t.Fatal("Expected ActiveID to survive while the item is submitted")
	}

	h.frame(nil)
	if h.ctx.ActiveID() != 0 {
		t.Errorf("Expected ActiveID to clear when its item vanished, got %08x", h.ctx.ActiveID())
	}
	if h.ctx.ActiveIDPreviousFrame() != id {
		t.Error("Expected ActiveIDPreviousFrame to still report the vanished item")
	}
}

func TestWindowLiveness(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *Context) {
		ctx.Begin("Tools", WindowFlagsNone)
		ctx.End()
	})
	w := h.ctx.FindWindowByName("Tools")
	if w == nil || !w.Active || !w.Appearing {
		t.Fatal("Expected Tools to be active and appearing on its first frame")
	}

	h.frame(func(ctx *Context) {
		ctx.Begin("Tools", WindowFlagsNone)
		ctx.End()
	})
	if w.Appearing {
		t.Error("Expected Tools not to be appearing on its second frame")
	}

	h.frame(nil)
	if w.Active || !w.WasActive {
		t.Error("Expected Tools to be inactive after a frame without Begin")
	}
}

func TestSetNextWindowPos_Cond(t *testing.T) {
	h := newHarness(t)
	submit := func(ctx *Context) {
		ctx.SetNextWindowPos(Vec2{X: 10, Y: 20}, CondOnce)
		ctx.Begin("Panel", WindowFlagsNone)
		ctx.End()
	}
	h.frame(submit)
	w := h.ctx.FindWindowByName("Panel")
	if w.Pos != (Vec2{X: 10, Y: 20}) {
		t.Fatalf("Expected CondOnce to apply on creation, got %v", w.Pos)
	}
	w.Pos = Vec2{X: 100, Y: 100}
	h.frame(submit)
	if w.Pos != (Vec2{X: 100, Y: 100}) {
		t.Errorf("Expected CondOnce to be ignored afterwards, got %v", w.Pos)
	}
}

func TestShutdown(t *testing.T) {
	h := newHarness(t)
	h.frame(nil)
	h.ctx.Shutdown()
	defer func() {
		if recover() == nil {
			t.Error("Expected NewFrame after Shutdown to panic")
		}
	}()
	h.ctx.NewFrame()
}

func TestWantCapture(t *testing.T) {
	h := newHarness(t)
	submit := func(ctx *Context) {
		ctx.SetNextWindowPos(Vec2{X: 100, Y: 100}, CondOnce)
		ctx.SetNextWindowSize(Vec2{X: 200, Y: 200}, CondOnce)
		ctx.Begin("Panel", WindowFlagsNone)
		ctx.End()
	}
	h.mouseAt(150, 150)
	h.frame(submit)
	h.frame(submit)
	if !h.ctx.WantCaptureMouse {
		t.Error("Expected WantCaptureMouse over a window")
	}

	h.mouseAt(700, 500)
	h.frame(submit)
	if h.ctx.WantCaptureMouse {
		t.Error("Expected no WantCaptureMouse over the background")
	}
}
