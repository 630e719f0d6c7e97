package imcore

import "math"

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key or a gamepad button.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeySpace
	KeyEnter
	KeyEscape
	KeyAlt

	// Gamepad buttons, fed by backends that poll a controller.
	KeyGamepadDpadLeft
	KeyGamepadDpadRight
	KeyGamepadDpadUp
	KeyGamepadDpadDown
	KeyGamepadFaceDown  // A / Cross: activate
	KeyGamepadFaceRight // B / Circle: cancel
	KeyGamepadStart     // Menu: toggle nav layer
	KeyCount
)

// InputState holds the input snapshot for the current frame.
// It is populated by the host (see backend/opengl) before NewFrame and its
// one-frame edges are cleared by EndFrame.
type InputState struct {
	// Mouse position
	MouseX, MouseY float32
	mousePosValid  bool

	// Mouse buttons - current frame state
	mouseDown          [MouseButtonCount]bool
	mouseClicked       [MouseButtonCount]bool // True on the frame button was pressed
	mouseUp            [MouseButtonCount]bool // True on the frame button was released
	mouseDoubleClicked [MouseButtonCount]bool // True on the second press of a double-click

	// Derived mouse tracking, updated by newFrame
	mouseClickedTime    [MouseButtonCount]float64
	mouseClickedPos     [MouseButtonCount]Vec2
	mouseDownDuration   [MouseButtonCount]float32
	mouseDragMaxDistSqr [MouseButtonCount]float32
	mouseDownWasDouble  [MouseButtonCount]bool

	// Keyboard - current frame state
	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool // True on the frame key was pressed
	keyUp      [KeyCount]bool // True on the frame key was released

	// Key repeat tracking
	keyHoldTime     [KeyCount]float32 // How long each key has been held
	keyPrevHoldTime [KeyCount]float32 // Hold time at the previous frame

	// Modifiers
	ModCtrl  bool
	ModShift bool
	ModAlt   bool
}

// NewInputState creates a new InputState with no valid pointer.
func NewInputState() *InputState {
	s := &InputState{}
	for i := range s.mouseClickedTime {
		s.mouseClickedTime[i] = math.Inf(-1)
	}
	return s
}

// Reset clears per-frame input edges.
// EndFrame calls this; hosts may also call it before collecting input.
func (s *InputState) Reset() {
	clear(s.mouseClicked[:])
	clear(s.mouseUp[:])
	clear(s.mouseDoubleClicked[:])
	clear(s.keyPressed[:])
	clear(s.keyUp[:])
}

// SetMousePos sets the mouse position and marks it valid.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
	s.mousePosValid = true
}

// SetMousePosInvalid marks the pointer as unavailable (left the window,
// touch released). Nothing is hovered while the pointer is invalid.
func (s *InputState) SetMousePosInvalid() {
	s.mousePosValid = false
}

// MousePos returns the pointer position.
func (s *InputState) MousePos() Vec2 {
	return Vec2{X: s.MouseX, Y: s.MouseY}
}

// MousePosValid reports whether the pointer position can be trusted.
func (s *InputState) MousePosValid() bool {
	return s.mousePosValid
}

// SetMouseButton sets mouse button state.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down && !wasDown {
		s.keyPressed[key] = true
		s.keyHoldTime[key] = 0 // Reset hold time on fresh press
		s.keyPrevHoldTime[key] = 0
	}
	if !down && wasDown {
		s.keyUp[key] = true
		s.keyHoldTime[key] = 0 // Reset hold time on release
		s.keyPrevHoldTime[key] = 0
	}
}

// newFrame derives timing-based state (double-click, drag distance, key
// hold time) from the raw edges. Called once by Context.NewFrame.
func (s *InputState) newFrame(cfg Config, now float64, dt float32) {
	pos := s.MousePos()
	for b := range s.mouseDown {
		s.mouseDoubleClicked[b] = false
		if s.mouseClicked[b] {
			delta := pos.Sub(s.mouseClickedPos[b])
			if now-s.mouseClickedTime[b] < float64(cfg.DoubleClickTime) &&
				delta.LengthSqr() < cfg.DoubleClickMaxDist*cfg.DoubleClickMaxDist {
				s.mouseDoubleClicked[b] = true
				// a third click starts a new sequence
				s.mouseClickedTime[b] = math.Inf(-1)
			} else {
				s.mouseClickedTime[b] = now
			}
			s.mouseClickedPos[b] = pos
			s.mouseDownWasDouble[b] = s.mouseDoubleClicked[b]
			s.mouseDragMaxDistSqr[b] = 0
			s.mouseDownDuration[b] = 0
		} else if s.mouseDown[b] {
			s.mouseDownDuration[b] += dt
			if s.mousePosValid {
				d := pos.Sub(s.mouseClickedPos[b]).LengthSqr()
				s.mouseDragMaxDistSqr[b] = maxf(s.mouseDragMaxDistSqr[b], d)
			}
		}
		if !s.mouseDown[b] && !s.mouseUp[b] {
			s.mouseDownDuration[b] = -1
		}
	}

	for key := Key(0); key < KeyCount; key++ {
		s.keyPrevHoldTime[key] = s.keyHoldTime[key]
		if s.keyDown[key] && !s.keyPressed[key] {
			s.keyHoldTime[key] += dt
		}
	}
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button was just clicked (pressed this frame).
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseDoubleClicked returns true on the second press of a double-click.
func (s *InputState) MouseDoubleClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDoubleClicked[button]
}

// MouseReleased returns true if a mouse button was just released.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// MouseReleasedAfterDoubleClick returns true on the release that ends a
// double-click press.
func (s *InputState) MouseReleasedAfterDoubleClick(button MouseButton) bool {
	return s.MouseReleased(button) && s.mouseDownWasDouble[button]
}

// MouseDragging returns true if the button is held and the pointer has
// travelled at least threshold pixels since the press.
func (s *InputState) MouseDragging(button MouseButton, threshold float32) bool {
	if !s.MouseDown(button) {
		return false
	}
	return s.mouseDragMaxDistSqr[button] >= threshold*threshold
}

// AnyMouseClicked returns true if any button was pressed this frame.
func (s *InputState) AnyMouseClicked() bool {
	for _, c := range s.mouseClicked {
		if c {
			return true
		}
	}
	return false
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key was just pressed (pressed this frame).
func (s *InputState) KeyPressed(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyReleased returns true if a key was just released.
func (s *InputState) KeyReleased(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyUp[key]
}

// KeyRepeated returns true if a key should trigger this frame: on the
// initial press, then after delay, then every rate seconds.
func (s *InputState) KeyRepeated(key Key, delay, rate float32) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	if s.keyPressed[key] {
		return true
	}
	if !s.keyDown[key] || rate <= 0 {
		return false
	}

	t, prev := s.keyHoldTime[key], s.keyPrevHoldTime[key]
	if t < delay {
		return false
	}
	// Trigger when an interval boundary was crossed since the previous frame.
	count := int((t - delay) / rate)
	prevCount := -1
	if prev >= delay {
		prevCount = int((prev - delay) / rate)
	}
	return count > prevCount
}

// AnyKeyPressed returns true if any key other than except was pressed this frame.
func (s *InputState) AnyKeyPressed(except Key) bool {
	for k, p := range s.keyPressed {
		if p && Key(k) != except {
			return true
		}
	}
	return false
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "?"
}

var keyNames = map[Key]string{
	KeyNone:             "--",
	KeyTab:              "Tab",
	KeyLeft:             "Left",
	KeyRight:            "Right",
	KeyUp:               "Up",
	KeyDown:             "Down",
	KeyPageUp:           "PgUp",
	KeyPageDown:         "PgDn",
	KeyHome:             "Home",
	KeyEnd:              "End",
	KeySpace:            "Space",
	KeyEnter:            "Enter",
	KeyEscape:           "Esc",
	KeyAlt:              "Alt",
	KeyGamepadDpadLeft:  "DpadLeft",
	KeyGamepadDpadRight: "DpadRight",
	KeyGamepadDpadUp:    "DpadUp",
	KeyGamepadDpadDown:  "DpadDown",
	KeyGamepadFaceDown:  "A",
	KeyGamepadFaceRight: "B",
	KeyGamepadStart:     "Start",
}
