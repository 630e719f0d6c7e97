// Package demo is the sample UI shared by the navdemo and navterm commands.
//
// Layout is expressed on a character grid; hosts pass the size of one grid
// cell in their own units (pixels for OpenGL, 1x1 for a terminal).
package demo

import (
	"fmt"

	"github.com/go-theft-auto/imcore"
)

// Item is a widget submitted during the last Draw, for hosts that render
// from the item list rather than from their own widget code.
type Item struct {
	ID     imcore.ID
	Text   string
	Rect   imcore.Rect
	Window *imcore.Window
}

// Scene holds the application state edited by the sample UI.
type Scene struct {
	Clicks   int
	Muted    bool
	Volume   float32
	Speed    float32
	Selected int
	Wrap     bool

	// QuitRequested is set by File > Quit.
	QuitRequested bool

	unit        imcore.Vec2
	items       []Item
	event       string
	openConfirm bool
}

var rowNames = []string{"Alpha", "Beta", "Gamma"}

// New returns a scene for the given grid cell size.
func New(unit imcore.Vec2) *Scene {
	return &Scene{Volume: 0.5, Speed: 10, unit: unit}
}

// Config adapts cfg to the scene's grid: popups get a size in cells.
func (s *Scene) Config(cfg imcore.Config) imcore.Config {
	cfg.PopupSize = imcore.Vec2{X: 18 * s.unit.X, Y: 4 * s.unit.Y}
	cfg.NavWrap = s.Wrap
	return cfg
}

// Items returns the widgets submitted by the last Draw.
func (s *Scene) Items() []Item {
	return s.items
}

// LastEvent describes the last user action, for status lines.
func (s *Scene) LastEvent() string {
	return s.event
}

// cell converts grid coordinates to a rectangle in host units.
func (s *Scene) cell(x, y, w, h float32) imcore.Rect {
	return imcore.Rect{X: x * s.unit.X, Y: y * s.unit.Y, W: w * s.unit.X, H: h * s.unit.Y}
}

// inWindow converts grid coordinates relative to the current window.
func (s *Scene) inWindow(ctx *imcore.Context, x, y, w, h float32) imcore.Rect {
	return s.cell(x, y, w, h).Translate(ctx.CurrentWindow().Pos)
}

// record adds the last submitted item.
func (s *Scene) record(ctx *imcore.Context, text string) {
	s.recordAt(ctx, ctx.LastItemID(), text, ctx.LastItemRect())
}

func (s *Scene) recordAt(ctx *imcore.Context, id imcore.ID, text string, r imcore.Rect) {
	s.items = append(s.items, Item{ID: id, Text: text, Rect: r, Window: ctx.CurrentWindow()})
}

// Draw submits the sample UI. Call it between NewFrame and EndFrame.
func (s *Scene) Draw(ctx *imcore.Context) {
	s.items = s.items[:0]
	s.drawMain(ctx)
	s.drawInspector(ctx)
}

func (s *Scene) drawMain(ctx *imcore.Context) {
	ctx.SetNextWindowPos(s.cell(1, 1, 0, 0).Min(), imcore.CondOnce)
	ctx.SetNextWindowSize(imcore.Vec2{X: 44 * s.unit.X, Y: 16 * s.unit.Y}, imcore.CondOnce)
	ctx.Begin("Demo", imcore.WindowFlagsMenuBar)
	defer ctx.End()

	s.drawMenuBar(ctx)

	if ctx.Button("Click me", s.inWindow(ctx, 2, 3, 14, 1)) {
		s.Clicks++
		s.event = fmt.Sprintf("clicked %d time(s)", s.Clicks)
	}
	s.record(ctx, fmt.Sprintf("Click me (%d)", s.Clicks))

	if ctx.Checkbox("Mute", s.inWindow(ctx, 18, 3, 10, 1), &s.Muted) {
		s.event = fmt.Sprintf("mute %v", s.Muted)
	}
	s.record(ctx, checkText("Mute", s.Muted))

	if ctx.SliderFloat("Volume", s.inWindow(ctx, 2, 5, 30, 1), &s.Volume, 0, 1, imcore.WithStep(0.05)) {
		s.event = fmt.Sprintf("volume %.2f", s.Volume)
	}
	s.record(ctx, fmt.Sprintf("Volume %.2f", s.Volume))

	if ctx.DragFloat("Speed", s.inWindow(ctx, 2, 7, 30, 1), &s.Speed, imcore.WithDragSpeed(0.5), imcore.WithRange(0, 100)) {
		s.event = fmt.Sprintf("speed %.1f", s.Speed)
	}
	s.record(ctx, fmt.Sprintf("Speed %.1f", s.Speed))

	for i, name := range rowNames {
		ctx.PushIDInt(i)
		if ctx.Selectable(name, s.Selected == i, s.inWindow(ctx, 2, float32(9+i), 20, 1)) {
			s.Selected = i
			s.event = "selected " + name
		}
		s.record(ctx, selectText(name, s.Selected == i))
		if ctx.BeginPopupContextItem("") {
			if ctx.MenuItem("Select", s.inWindow(ctx, 0, 0, 18, 1)) {
				s.Selected = i
				s.event = "selected " + name + " from its context menu"
			}
			s.record(ctx, "Select")
			ctx.EndPopup()
		}
		ctx.PopID()
	}

	if ctx.Button("Reset...", s.inWindow(ctx, 24, 9, 12, 1)) {
		ctx.OpenPopup("Confirm reset", imcore.PopupFlagsNone)
	}
	s.record(ctx, "Reset...")
	s.drawConfirm(ctx)
}

func (s *Scene) drawMenuBar(ctx *imcore.Context) {
	if !ctx.BeginMenuBar() {
		return
	}
	defer ctx.EndMenuBar()

	file := s.inWindow(ctx, 1, 1, 6, 1)
	s.recordAt(ctx, ctx.GetID("File"), "File", file)
	if ctx.BeginMenu("File", file) {
		if ctx.MenuItem("Reset...", s.inWindow(ctx, 0, 0, 18, 1)) {
			s.openConfirm = true
		}
		s.record(ctx, "Reset...")
		if ctx.MenuItem("Quit", s.inWindow(ctx, 0, 1, 18, 1)) {
			s.QuitRequested = true
		}
		s.record(ctx, "Quit")
		ctx.EndMenu()
	}

	view := s.inWindow(ctx, 8, 1, 6, 1)
	s.recordAt(ctx, ctx.GetID("View"), "View", view)
	if ctx.BeginMenu("View", view) {
		if ctx.MenuItem("Wrap navigation", s.inWindow(ctx, 0, 0, 18, 1)) {
			s.Wrap = !s.Wrap
			ctx.SetConfig(s.Config(ctx.Config()))
			s.event = fmt.Sprintf("wrap %v", s.Wrap)
		}
		s.record(ctx, checkText("Wrap navigation", s.Wrap))
		ctx.EndMenu()
	}
}

func (s *Scene) drawConfirm(ctx *imcore.Context) {
	// File > Reset... asks from inside the menu; the modal is keyed in the Demo window.
	if s.openConfirm {
		ctx.OpenPopup("Confirm reset", imcore.PopupFlagsNone)
		s.openConfirm = false
	}
	if !ctx.BeginPopupModal("Confirm reset", imcore.WindowFlagsNone) {
		return
	}
	defer ctx.EndPopup()

	if ctx.Button("Yes", s.inWindow(ctx, 1, 2, 6, 1), imcore.DefaultFocus()) {
		s.Clicks, s.Muted, s.Volume, s.Speed, s.Selected = 0, false, 0.5, 10, 0
		s.event = "reset"
		ctx.CloseCurrentPopup()
	}
	s.record(ctx, "Yes")
	if ctx.Button("No", s.inWindow(ctx, 9, 2, 6, 1)) {
		s.event = "reset cancelled"
		ctx.CloseCurrentPopup()
	}
	s.record(ctx, "No")
}

func (s *Scene) drawInspector(ctx *imcore.Context) {
	ctx.SetNextWindowPos(s.cell(47, 1, 0, 0).Min(), imcore.CondOnce)
	ctx.SetNextWindowSize(imcore.Vec2{X: 30 * s.unit.X, Y: 8 * s.unit.Y}, imcore.CondOnce)
	ctx.Begin("Inspector", imcore.WindowFlagsNone)
	defer ctx.End()

	for i, label := range []string{"Top left", "Top right", "Bottom left", "Bottom right"} {
		col, row := float32(i%2), float32(i/2)
		if ctx.Button(label, s.inWindow(ctx, 1+col*14, 2+row*2, 13, 1)) {
			s.event = "pressed " + label
		}
		s.record(ctx, label)
	}
	if ctx.Button("Focus Demo", s.inWindow(ctx, 1, 6, 13, 1)) {
		ctx.FocusWindow(ctx.FindWindowByName("Demo"))
	}
	s.record(ctx, "Focus Demo")
}

func checkText(label string, v bool) string {
	if v {
		return "[x] " + label
	}
	return "[ ] " + label
}

func selectText(label string, v bool) string {
	if v {
		return "> " + label
	}
	return "  " + label
}
