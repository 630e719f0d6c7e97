package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/imcore"
)

// GamepadDeadzone is the stick deflection below which the left stick does
// not count as a d-pad press.
const GamepadDeadzone = 0.5

// GLFWInputAdapter feeds GLFW keyboard, mouse and gamepad events into an
// imcore.InputState. Edges are cleared by Context.EndFrame, so callbacks
// may fire any time between frames.
type GLFWInputAdapter struct {
	window   *glfw.Window
	input    *imcore.InputState
	joystick glfw.Joystick
}

// NewGLFWInputAdapter installs input callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window:   window,
		input:    imcore.NewInputState(),
		joystick: glfw.Joystick1,
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)
	window.SetCursorEnterCallback(adapter.cursorEnterCallback)

	return adapter
}

// Update samples modifiers and the gamepad. Call it after glfw.PollEvents
// and before Context.NewFrame.
func (a *GLFWInputAdapter) Update() *imcore.InputState {
	a.input.ModCtrl = a.pressed(glfw.KeyLeftControl) || a.pressed(glfw.KeyRightControl)
	a.input.ModShift = a.pressed(glfw.KeyLeftShift) || a.pressed(glfw.KeyRightShift)
	a.input.ModAlt = a.pressed(glfw.KeyLeftAlt) || a.pressed(glfw.KeyRightAlt)

	a.pollGamepad()
	return a.input
}

// Input returns the input state the adapter writes to.
func (a *GLFWInputAdapter) Input() *imcore.InputState {
	return a.input
}

func (a *GLFWInputAdapter) pressed(key glfw.Key) bool {
	return a.window.GetKey(key) == glfw.Press
}

// pollGamepad maps the first connected gamepad onto the KeyGamepad* keys.
// The left stick doubles as the d-pad.
func (a *GLFWInputAdapter) pollGamepad() {
	var state *glfw.GamepadState
	if a.joystick.IsGamepad() {
		state = a.joystick.GetGamepadState()
	}
	down := func(b glfw.GamepadButton) bool {
		return state != nil && state.Buttons[b] == glfw.Press
	}
	axis := func(ax glfw.GamepadAxis) float32 {
		if state == nil {
			return 0
		}
		return state.Axes[ax]
	}

	lx, ly := axis(glfw.AxisLeftX), axis(glfw.AxisLeftY)
	a.input.SetKey(imcore.KeyGamepadDpadLeft, down(glfw.ButtonDpadLeft) || lx < -GamepadDeadzone)
	a.input.SetKey(imcore.KeyGamepadDpadRight, down(glfw.ButtonDpadRight) || lx > GamepadDeadzone)
	a.input.SetKey(imcore.KeyGamepadDpadUp, down(glfw.ButtonDpadUp) || ly < -GamepadDeadzone)
	a.input.SetKey(imcore.KeyGamepadDpadDown, down(glfw.ButtonDpadDown) || ly > GamepadDeadzone)
	a.input.SetKey(imcore.KeyGamepadFaceDown, down(glfw.ButtonA))
	a.input.SetKey(imcore.KeyGamepadFaceRight, down(glfw.ButtonB))
	a.input.SetKey(imcore.KeyGamepadStart, down(glfw.ButtonStart))
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == imcore.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButton(button)
	if b < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// The pointer is invalid while outside the window so nothing stays hovered.
func (a *GLFWInputAdapter) cursorEnterCallback(w *glfw.Window, entered bool) {
	if !entered {
		a.input.SetMousePosInvalid()
		return
	}
	x, y := w.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))
}

func glfwKeyToKey(key glfw.Key) imcore.Key {
	switch key {
	case glfw.KeyTab:
		return imcore.KeyTab
	case glfw.KeyLeft:
		return imcore.KeyLeft
	case glfw.KeyRight:
		return imcore.KeyRight
	case glfw.KeyUp:
		return imcore.KeyUp
	case glfw.KeyDown:
		return imcore.KeyDown
	case glfw.KeyPageUp:
		return imcore.KeyPageUp
	case glfw.KeyPageDown:
		return imcore.KeyPageDown
	case glfw.KeyHome:
		return imcore.KeyHome
	case glfw.KeyEnd:
		return imcore.KeyEnd
	case glfw.KeySpace:
		return imcore.KeySpace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return imcore.KeyEnter
	case glfw.KeyEscape:
		return imcore.KeyEscape
	case glfw.KeyLeftAlt, glfw.KeyRightAlt:
		return imcore.KeyAlt
	default:
		return imcore.KeyNone
	}
}

func glfwMouseButton(button glfw.MouseButton) imcore.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return imcore.MouseButtonLeft
	case glfw.MouseButtonRight:
		return imcore.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return imcore.MouseButtonMiddle
	default:
		return -1
	}
}
