package imcore

import "testing"

// step runs one input frame at time now.
func step(s *InputState, cfg Config, now float64, dt float32) {
	s.newFrame(cfg, now, dt)
}

func TestInputState_ClickEdges(t *testing.T) {
	s := NewInputState()
	cfg := DefaultConfig()

	s.SetMouseButton(MouseButtonLeft, true)
	step(s, cfg, 0, 0.016)
	if !s.MouseClicked(MouseButtonLeft) || !s.MouseDown(MouseButtonLeft) {
		t.Error("Expected clicked and down on the press frame")
	}
	s.Reset()
	step(s, cfg, 0.016, 0.016)
	if s.MouseClicked(MouseButtonLeft) {
		t.Error("Expected the click edge to last one frame")
	}
	if !s.MouseDown(MouseButtonLeft) {
		t.Error("Expected the button to stay down")
	}

	s.Reset()
	s.SetMouseButton(MouseButtonLeft, false)
	step(s, cfg, 0.032, 0.016)
	if !s.MouseReleased(MouseButtonLeft) || s.MouseDown(MouseButtonLeft) {
		t.Error("Expected released and up on the release frame")
	}
}

func TestInputState_DoubleClick(t *testing.T) {
	s := NewInputState()
	cfg := DefaultConfig()
	s.SetMousePos(100, 100)

	click := func(now float64) {
		s.SetMouseButton(MouseButtonLeft, true)
		step(s, cfg, now, 0.05)
	}
	release := func(now float64) {
		s.Reset()
		s.SetMouseButton(MouseButtonLeft, false)
		step(s, cfg, now, 0.05)
		s.Reset()
	}

	click(1.0)
	if s.MouseDoubleClicked(MouseButtonLeft) {
		t.Error("Expected the first click not to be a double-click")
	}
	release(1.05)

	click(1.1)
	if !s.MouseDoubleClicked(MouseButtonLeft) {
		t.Error("Expected a second click within the time limit to be a double-click")
	}
	s.Reset()
	s.SetMouseButton(MouseButtonLeft, false)
	step(s, cfg, 1.15, 0.05)
	if !s.MouseReleasedAfterDoubleClick(MouseButtonLeft) {
		t.Error("Expected the release to end a double-click")
	}
	s.Reset()

	// A third click starts a new sequence.
	click(1.2)
	if s.MouseDoubleClicked(MouseButtonLeft) {
		t.Error("Expected a third click not to be a double-click")
	}
	release(1.25)

	// Too slow.
	click(3.0)
	release(3.05)
	click(4.0)
	if s.MouseDoubleClicked(MouseButtonLeft) {
		t.Error("Expected a slow second click not to be a double-click")
	}
	release(4.05)

	// Too far.
	click(5.0)
	release(5.05)
	s.SetMousePos(150, 100)
	click(5.1)
	if s.MouseDoubleClicked(MouseButtonLeft) {
		t.Error("Expected a distant second click not to be a double-click")
	}
}

func TestInputState_DragThreshold(t *testing.T) {
	s := NewInputState()
	cfg := DefaultConfig()
	s.SetMousePos(10, 10)
	s.SetMouseButton(MouseButtonLeft, true)
	step(s, cfg, 0, 0.016)
	s.Reset()

	s.SetMousePos(13, 10)
	step(s, cfg, 0.016, 0.016)
	if s.MouseDragging(MouseButtonLeft, cfg.DragThreshold) {
		t.Error("Expected no drag under the threshold")
	}
	s.Reset()

	s.SetMousePos(20, 10)
	step(s, cfg, 0.032, 0.016)
	if !s.MouseDragging(MouseButtonLeft, cfg.DragThreshold) {
		t.Error("Expected a drag past the threshold")
	}
	s.Reset()

	// Returning to the origin keeps the drag: the max distance is tracked.
	s.SetMousePos(10, 10)
	step(s, cfg, 0.048, 0.016)
	if !s.MouseDragging(MouseButtonLeft, cfg.DragThreshold) {
		t.Error("Expected the drag to persist after returning to the origin")
	}
	s.Reset()

	s.SetMouseButton(MouseButtonLeft, false)
	step(s, cfg, 0.064, 0.016)
	if s.MouseDragging(MouseButtonLeft, cfg.DragThreshold) {
		t.Error("Expected no drag once released")
	}
}

func TestInputState_KeyRepeat(t *testing.T) {
	s := NewInputState()
	const delay, rate = 0.5, 0.1

	s.SetKey(KeyRight, true)
	want := []bool{true, false, true, true}
	for i, w := range want {
		step(s, DefaultConfig(), float64(i)*0.25, 0.25)
		if got := s.KeyRepeated(KeyRight, delay, rate); got != w {
			t.Errorf("frame %d: Expected KeyRepeated %v, got %v", i, w, got)
		}
		s.Reset()
	}

	s.SetKey(KeyRight, false)
	step(s, DefaultConfig(), 1.0, 0.25)
	if s.KeyRepeated(KeyRight, delay, rate) {
		t.Error("Expected no repeat after release")
	}
	if !s.KeyReleased(KeyRight) {
		t.Error("Expected a release edge")
	}
}

func TestInputState_KeyEdges(t *testing.T) {
	s := NewInputState()
	s.SetKey(KeyEnter, true)
	if !s.KeyPressed(KeyEnter) || !s.KeyDown(KeyEnter) {
		t.Error("Expected pressed and down")
	}
	if !s.AnyKeyPressed(KeyNone) || s.AnyKeyPressed(KeyEnter) {
		t.Error("Expected AnyKeyPressed to honor its exception")
	}
	s.Reset()
	if s.KeyPressed(KeyEnter) || !s.KeyDown(KeyEnter) {
		t.Error("Expected Reset to clear only the edge")
	}
	if s.KeyDown(KeyNone) || s.KeyDown(KeyCount) {
		t.Error("Expected out-of-range keys to report up")
	}
}

func TestInputState_PointerValidity(t *testing.T) {
	s := NewInputState()
	if s.MousePosValid() {
		t.Error("Expected no valid pointer before the first position")
	}
	s.SetMousePos(1, 2)
	if !s.MousePosValid() || s.MousePos() != (Vec2{X: 1, Y: 2}) {
		t.Error("Expected a valid pointer at (1, 2)")
	}
	s.SetMousePosInvalid()
	if s.MousePosValid() {
		t.Error("Expected the pointer to be invalid")
	}
}

func TestKeyName(t *testing.T) {
	if KeyName(KeyTab) != "Tab" {
		t.Errorf("Expected Tab, got %q", KeyName(KeyTab))
	}
}
