package imcore

import (
	"io"
	"log/slog"
	"testing"
)

// harness drives a Context frame by frame with a scripted input snapshot.
type harness struct {
	t   *testing.T
	ctx *Context
	in  *InputState
}

func newHarness(t *testing.T, opts ...ContextOption) *harness {
	t.Helper()
	in := NewInputState()
	base := []ContextOption{
		WithInput(in),
		WithDisplaySize(Vec2{X: 800, Y: 600}),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
	return &harness{t: t, ctx: New(append(base, opts...)...), in: in}
}

// frame runs one NewFrame/EndFrame pair around body and fails the test on
// a frame error.
func (h *harness) frame(body func(ctx *Context)) {
	h.t.Helper()
	h.ctx.NewFrame()
	if body != nil {
		body(h.ctx)
	}
	if err := h.ctx.EndFrame(); err != nil {
		h.t.Fatalf("EndFrame returned error: %v", err)
	}
}

func (h *harness) mouseAt(x, y float32) {
	h.in.SetMousePos(x, y)
}

func (h *harness) mouseDown() {
	h.in.SetMouseButton(MouseButtonLeft, true)
}

func (h *harness) mouseUp() {
	h.in.SetMouseButton(MouseButtonLeft, false)
}

// tap presses key for one frame and releases it on the next, running body
// on both frames.
func (h *harness) tap(key Key, body func(ctx *Context)) {
	h.t.Helper()
	h.in.SetKey(key, true)
	h.frame(body)
	h.in.SetKey(key, false)
	h.frame(body)
}

// click presses the left button at (x, y) for one frame and releases it on
// the next, running body on both frames.
func (h *harness) click(x, y float32, body func(ctx *Context)) {
	h.t.Helper()
	h.mouseAt(x, y)
	h.mouseDown()
	h.frame(body)
	h.mouseUp()
	h.frame(body)
}

func rect(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}
