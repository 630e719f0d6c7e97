/*
Package imcore is the identity and interaction core of an immediate-mode GUI.

# Overview

The UI is described from scratch every frame. imcore gives each widget a
stable identity across frames and tracks which item is hovered, which one
is active (being pressed or dragged), which one has keyboard/gamepad focus,
and which popups are open. It does not lay out, draw or shape text: callers
pass the screen rectangle of every item, and hosts draw from the state
imcore exposes.

# Quick Start

	in := imcore.NewInputState()
	ctx := imcore.New(
	    imcore.WithInput(in),
	    imcore.WithDisplaySize(imcore.Vec2{X: 1280, Y: 720}),
	)
	defer ctx.Shutdown()

	for running {
	    pollInto(in) // SetMousePos, SetMouseButton, SetKey
	    ctx.DeltaTime = dt

	    ctx.NewFrame()
	    ctx.SetNextWindowPos(imcore.Vec2{X: 20, Y: 20}, imcore.CondOnce)
	    ctx.SetNextWindowSize(imcore.Vec2{X: 300, Y: 200}, imcore.CondOnce)
	    if ctx.Begin("Settings", 0) {
	        if ctx.Button("Apply", imcore.Rect{X: 30, Y: 40, W: 100, H: 24}) {
	            apply()
	        }
	    }
	    ctx.End()
	    if err := ctx.EndFrame(); err != nil {
	        log.Println(err) // unbalanced Push/Pop or Begin/End
	    }
	}

# Identity

IDs are seeded 32-bit FNV-1a hashes. Every window carries an ID stack
whose top is the seed for the next hash:

	ctx.PushIDInt(i)
	ctx.Selectable("Row", sel == i, r) // same label, distinct ID per row
	ctx.PopID()

In "Label##suffix" only the part after "##" is hashed, so two buttons can
both show "OK". LabelText returns the visible part. Set Config.DebugIDs to
record the key behind every ID (IDKey) and log collisions.

# Frames and Liveness

NewFrame copies hovered/active/nav state into previous-frame shadows and
clears the alive flags. Submitting an item re-asserts its ID. At EndFrame an
ActiveID nobody re-asserted is cleared, nav focus in a window that was
submitted without its focused item is dropped, and popups whose window was
not begun are closed. Per-ID widget state lives in a FrameStore and is
dropped once it goes a full frame untouched.

EndFrame reports contract violations (ErrUnbalancedIDStack,
ErrUnbalancedWindowStack, ErrUnbalancedPopupStack, ErrFrameNotStarted) and
repairs the stacks so the next frame starts clean.

# Interaction

ActiveID is claimed first-come: SetActiveID and SetActive fail while
another item holds it, unless the holder called SetItemAllowOverlap.

ItemHoverable decides hover in a fixed order: hovered window, blocking
active item, pointer inside, popup occlusion, disabled, overlap with last
frame's winner. ButtonBehavior builds the press/hold/release machine on top
of it:

	PressedOnClickRelease  press inside, release inside (default)
	PressedOnClick         fire on the press edge
	PressedOnRelease       fire on any release over the item
	PressedOnDoubleClick   fire on the second click
	Repeat                 fire again while held, at key repeat rate

Edge queries: IsItemActivated, IsItemDeactivated, IsItemDeactivatedAfterEdit,
WasJustActivated, WasJustDeactivated, WasEditedThisFrame.

# Navigation

	Arrow keys / D-pad    Move focus to the best item in that direction
	Enter / Space / A     Activate the focused item
	Escape / B            Close the top popup, leave the menu layer, or hide the highlight
	Alt / Start           Toggle between the main and menu layers
	Tab / Shift+Tab       Step through the tab stops of the focused window
	Ctrl+Tab              Focus the next window (Shift for previous)

Candidates are scored on axial distance, then perpendicular distance, then
box distance. Config.NavWrap and Config.NavLoop retry from the opposite edge
when nothing is found. RequestNavMove issues a request programmatically;
GetNavMoveResult reads the item it resolved to.

An item activated from the keyboard blocks only the directions it claims
with SetActiveIDUsingNavDir; any other direction moves focus and ends the
activation. A pointer-held item blocks every move. ItemFlagsNoTabStop keeps
an item out of the Tab order, and SetKeyboardFocusHere focuses an item by
its position on the next frame.

# Popups

	if ctx.Button("Delete...", r) {
	    ctx.OpenPopup("Confirm", 0)
	}
	if ctx.BeginPopupModal("Confirm", 0) {
	    if ctx.Button("Yes", yes) {
	        del()
	        ctx.CloseCurrentPopup()
	    }
	    ctx.EndPopup()
	}

A click outside closes non-modal popups. Modals survive outside clicks and
block hover of every window beneath them. Any open popup blocks hover of
windows outside its tree, whether or not it took focus.

# Windows

Windows order hover and give items an ID scope. Pressing empty window space
focuses the window and drags it, clamped to the display, snapping to the
display edges, its center and other windows within Config.WindowSnapMargin,
and to Config.WindowSnapGrid on release.

# Configuration

Config is plain data with TOML tags. LoadConfig reads a file on top of
DefaultConfig and validates it:

	double_click_time = 0.3
	key_repeat_delay  = 0.275
	nav_wrap          = true
	window_snap_grid  = 8.0

# Logging

Logs go through log/slog. SetVerbose(true) enables the debug loggers of the
core, nav and popup subsystems; WithLogger replaces the handler for one
Context.
*/
package imcore
