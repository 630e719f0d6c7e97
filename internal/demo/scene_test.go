package demo

import (
	"io"
	"log/slog"
	"testing"

	"github.com/go-theft-auto/imcore"
)

type sceneHarness struct {
	t     *testing.T
	ctx   *imcore.Context
	in    *imcore.InputState
	scene *Scene
}

// newSceneHarness runs the scene on an 80x24 grid with one unit per cell.
func newSceneHarness(t *testing.T) *sceneHarness {
	in := imcore.NewInputState()
	scene := New(imcore.Vec2{X: 1, Y: 1})
	ctx := imcore.New(
		imcore.WithInput(in),
		imcore.WithDisplaySize(imcore.Vec2{X: 80, Y: 24}),
		imcore.WithConfig(scene.Config(imcore.DefaultConfig())),
		imcore.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	h := &sceneHarness{t: t, ctx: ctx, in: in, scene: scene}
	h.frame()
	return h
}

func (h *sceneHarness) frame() {
	h.t.Helper()
	h.ctx.NewFrame()
	h.scene.Draw(h.ctx)
	if err := h.ctx.EndFrame(); err != nil {
		h.t.Fatalf("EndFrame returned error: %v", err)
	}
}

func (h *sceneHarness) click(x, y float32) {
	h.t.Helper()
	h.in.SetMousePos(x, y)
	h.in.SetMouseButton(imcore.MouseButtonLeft, true)
	h.frame()
	h.in.SetMouseButton(imcore.MouseButtonLeft, false)
	h.frame()
}

func TestScene_Items(t *testing.T) {
	h := newSceneHarness(t)
	texts := map[string]bool{}
	for _, it := range h.scene.Items() {
		texts[it.Text] = true
		if it.ID == 0 {
			t.Errorf("Expected %q to have an ID", it.Text)
		}
	}
	for _, want := range []string{"File", "View", "Click me (0)", "[ ] Mute", "Volume 0.50", "> Alpha", "Focus Demo"} {
		if !texts[want] {
			t.Errorf("Expected item %q to be recorded", want)
		}
	}
}

func TestScene_ClickButton(t *testing.T) {
	h := newSceneHarness(t)
	h.click(5, 4.5)
	if h.scene.Clicks != 1 {
		t.Errorf("Expected 1 click, got %d", h.scene.Clicks)
	}
	if h.scene.LastEvent() != "clicked 1 time(s)" {
		t.Errorf("Unexpected event %q", h.scene.LastEvent())
	}
}

func TestScene_ConfirmReset(t *testing.T) {
	h := newSceneHarness(t)
	h.scene.Clicks = 5

	h.click(26, 10.5)
	if len(h.ctx.OpenPopupStack()) != 1 {
		t.Fatal("Expected Reset... to open the confirmation modal")
	}
	modal := h.ctx.GetTopMostPopupModal()
	if modal == nil || modal.Pos != (imcore.Vec2{X: 31, Y: 10}) {
		t.Fatalf("Expected a centered modal, got %+v", modal)
	}

	h.frame()
	h.click(33, 12.5)
	if h.scene.Clicks != 0 {
		t.Errorf("Expected Yes to reset the counter, got %d", h.scene.Clicks)
	}
	if len(h.ctx.OpenPopupStack()) != 0 {
		t.Error("Expected the modal to close")
	}
}

func TestScene_MenuQuit(t *testing.T) {
	h := newSceneHarness(t)
	h.click(3, 2.5)
	if len(h.ctx.OpenPopupStack()) != 1 {
		t.Fatal("Expected File to open")
	}
	h.click(5, 4.5)
	if !h.scene.QuitRequested {
		t.Error("Expected File > Quit to request quit")
	}
	if len(h.ctx.OpenPopupStack()) != 0 {
		t.Error("Expected the menu to close")
	}
}
