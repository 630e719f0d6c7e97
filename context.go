package imcore

import (
	"errors"
	"fmt"
	"log/slog"
)

// InputSource identifies what drove the current activation.
type InputSource int

const (
	InputSourceNone InputSource = iota
	InputSourceMouse
	InputSourceNav // keyboard or gamepad through the navigation engine
)

// Context holds all interaction state that survives across frames:
// hovered/active/focused IDs, windows, the navigation engine and the popup
// stack. It is not safe for concurrent use; hosts that run UI code from
// several goroutines must serialize calls.
//
// Lifecycle: New at startup, then NewFrame/EndFrame once per frame, then
// Shutdown.
type Context struct {
	cfg      Config
	logger   *slog.Logger
	navLog   *slog.Logger
	popupLog *slog.Logger

	// Input snapshot (read-only during frame, edges cleared by EndFrame)
	Input *InputState

	// Screen
	DisplaySize Vec2
	DeltaTime   float32
	time        float64

	// Frame info
	frameCount      uint64
	frameCountEnded uint64
	withinFrame     bool
	frameErrs       []error
	shutdown        bool

	// Windows, kept in display order (back to front)
	windows         []*Window
	windowsCreation []*Window
	windowsByID     map[ID]*Window
	windowStack     []*Window // Begin/End nesting
	currentWindow   *Window
	defaultWindow   *Window
	hoveredWindow   *Window
	movingWindow    *Window
	snapGuides      []SnapGuide
	nextWindow      nextWindowData
	focusCounter    int

	// Last submitted item
	lastItem  lastItemData
	nextItem  ItemFlags
	hoverSeq  int // ItemHoverable calls this frame, used to order overlapping items
	editedIDs []ID

	// Hover
	hoveredID               ID
	hoveredIDPreviousFrame  ID
	hoveredIDAllowOverlap   bool
	hoveredIDTimer          float32
	hoveredIDNotActiveTimer float32
	hoveredRect             Rect
	hoveredRectWindow       *Window
	hoveredSeq              int
	hoveredPrevRect         Rect
	hoveredPrevWindow       *Window
	hoveredPrevSeq          int

	// Active
	activeID                                 ID
	activeIDIsAlive                          ID
	activeIDTimer                            float32
	activeIDIsJustActivated                  bool
	activeIDAllowOverlap                     bool
	activeIDHasBeenPressedBefore             bool
	activeIDHasBeenEditedBefore              bool
	activeIDHasBeenEditedThisFrame           bool
	activeIDWindow                           *Window
	activeIDSource                           InputSource
	activeIDMouseButton                      MouseButton
	activeIDUsingNavDirMask                  uint8
	activeIDClickOffset                      Vec2
	activeIDPreviousFrame                    ID
	activeIDPreviousFrameIsAlive             bool
	activeIDPreviousFrameHasBeenEditedBefore bool
	activeIDPreviousFrameWindow              *Window
	lastActiveID                             ID
	lastActiveIDTimer                        float32
	deactivated                              deactivatedItem

	// Navigation
	nav navState

	// Popups
	openPopupStack  []PopupData // Popups currently open, root first
	beginPopupStack []PopupData // Popups begun this frame, mirrors the Begin stack

	// Input capture flags (output from the engine to the application)
	// These tell the application whether the UI wants to consume input.
	WantCaptureMouse    bool
	WantCaptureKeyboard bool

	// Widget state stores cleaned every frame
	stores     []cleanable
	dragStates *FrameStore[dragState]

	debugIDKeys map[ID]string
}

// deactivatedItem remembers the last item that lost ActiveID this frame.
type deactivatedItem struct {
	ID      ID
	HadEdit bool
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithConfig sets the engine configuration.
func WithConfig(cfg Config) ContextOption {
	return func(ctx *Context) { ctx.cfg = cfg }
}

// WithLogger sets the logger used for debug and misuse reports.
func WithLogger(l *slog.Logger) ContextOption {
	return func(ctx *Context) {
		if l != nil {
			ctx.logger = l
		}
	}
}

// WithInput sets the input snapshot the context reads every frame.
func WithInput(in *InputState) ContextOption {
	return func(ctx *Context) { ctx.Input = in }
}

// WithDisplaySize sets the initial display size.
func WithDisplaySize(size Vec2) ContextOption {
	return func(ctx *Context) { ctx.DisplaySize = size }
}

// New creates a context. Create one at startup and pass it to every
// widget call; tests create a fresh one per case.
func New(opts ...ContextOption) *Context {
	ctx := &Context{
		cfg:         DefaultConfig(),
		logger:      defaultLogger,
		windowsByID: make(map[ID]*Window),
		windows:     make([]*Window, 0, 16),
		windowStack: make([]*Window, 0, 8),
		DeltaTime:   1.0 / 60.0,
	}
	for _, opt := range opts {
		opt(ctx)
	}
	if ctx.Input == nil {
		ctx.Input = NewInputState()
	}
	ctx.navLog = ctx.logger.With("subsystem", "nav")
	ctx.popupLog = ctx.logger.With("subsystem", "popup")
	ctx.nav.init()
	ctx.dragStates = NewFrameStore[dragState](ctx)
	return ctx
}

// Shutdown releases all state. The context must not be used afterwards.
func (ctx *Context) Shutdown() {
	for _, s := range ctx.stores {
		s.clear()
	}
	ctx.stores = nil
	ctx.windows = nil
	ctx.windowsCreation = nil
	clear(ctx.windowsByID)
	ctx.windowStack = nil
	ctx.currentWindow = nil
	ctx.defaultWindow = nil
	ctx.hoveredWindow = nil
	ctx.movingWindow = nil
	ctx.snapGuides = nil
	ctx.openPopupStack = nil
	ctx.beginPopupStack = nil
	ctx.nav = navState{}
	ctx.activeID = 0
	ctx.activeIDWindow = nil
	ctx.hoveredID = 0
	ctx.debugIDKeys = nil
	ctx.shutdown = true
}

// Config returns the active configuration.
func (ctx *Context) Config() Config {
	return ctx.cfg
}

// SetConfig replaces the configuration. Call between frames.
func (ctx *Context) SetConfig(cfg Config) {
	ctx.cfg = cfg
}

// FrameCount returns the number of frames started so far.
func (ctx *Context) FrameCount() uint64 {
	return ctx.frameCount
}

// Time returns the accumulated frame time in seconds.
func (ctx *Context) Time() float64 {
	return ctx.time
}

// NewFrame starts a frame: shadows last frame's state into the
// *PreviousFrame fields, clears liveness flags, resolves the hovered window
// from last frame's rectangles and processes navigation input.
func (ctx *Context) NewFrame() {
	if ctx.shutdown {
		panic("imcore: NewFrame on a context after Shutdown")
	}
	// A frame left open is closed here; its errors surface at the next EndFrame.
	var carried error
	if ctx.withinFrame {
		ctx.assert(false, "NewFrame called twice without EndFrame", "frame", ctx.frameCount)
		carried = ErrFrameNotEnded
		if err := ctx.EndFrame(); err != nil {
			ctx.logger.Warn("errors from the unended frame", "frame", ctx.frameCount, "error", err)
			carried = fmt.Errorf("%w: %w", ErrFrameNotEnded, err)
		}
	}

	ctx.frameCount++
	ctx.withinFrame = true
	ctx.frameErrs = ctx.frameErrs[:0]
	if carried != nil {
		ctx.frameErrs = append(ctx.frameErrs, carried)
	}
	dt := ctx.DeltaTime
	ctx.time += float64(dt)

	ctx.Input.newFrame(ctx.cfg, ctx.time, dt)
	for _, s := range ctx.stores {
		s.cleanup(ctx.frameCount)
	}

	// Hover shadow
	if ctx.hoveredID != 0 {
		ctx.hoveredIDTimer += dt
		if ctx.activeID != ctx.hoveredID {
			ctx.hoveredIDNotActiveTimer += dt
		}
	}
	ctx.hoveredIDPreviousFrame = ctx.hoveredID
	ctx.hoveredPrevRect = ctx.hoveredRect
	ctx.hoveredPrevWindow = ctx.hoveredRectWindow
	ctx.hoveredPrevSeq = ctx.hoveredSeq
	ctx.hoveredID = 0
	ctx.hoveredIDAllowOverlap = false
	ctx.hoveredRectWindow = nil
	ctx.hoverSeq = 0

	// Active shadow
	if ctx.activeID != 0 {
		ctx.activeIDTimer += dt
	}
	ctx.lastActiveIDTimer += dt
	ctx.activeIDPreviousFrame = ctx.activeID
	ctx.activeIDPreviousFrameWindow = ctx.activeIDWindow
	ctx.activeIDPreviousFrameHasBeenEditedBefore = ctx.activeIDHasBeenEditedBefore
	ctx.activeIDPreviousFrameIsAlive = false
	ctx.activeIDIsAlive = 0
	ctx.activeIDHasBeenEditedThisFrame = false
	ctx.activeIDIsJustActivated = false
	ctx.deactivated = deactivatedItem{}
	ctx.editedIDs = ctx.editedIDs[:0]

	// Window liveness
	for _, w := range ctx.windows {
		w.WasActive = w.Active
		w.Active = false
	}
	ctx.windowStack = ctx.windowStack[:0]
	ctx.currentWindow = nil
	ctx.lastItem = lastItemData{}
	ctx.nextItem = 0

	ctx.updateMouseMovingWindowNewFrame()

	// The implicit window that hosts items submitted outside Begin/End.
	ctx.SetNextWindowPos(Vec2{}, CondAlways)
	ctx.SetNextWindowSize(ctx.DisplaySize, CondAlways)
	ctx.Begin("Default##imcore.default", WindowFlagsNoMove|WindowFlagsNoFocusOnAppearing|WindowFlagsNoBringToFrontOnFocus)
	ctx.defaultWindow = ctx.currentWindow

	ctx.updateHoveredWindow()
	ctx.navNewFrame()
	ctx.windowingNewFrame()
	ctx.tabFocusNewFrame()
}

// EndFrame finishes the frame: resolves navigation requests, applies
// click-to-focus and click-outside popup closing, and clears every tracked
// ID whose liveness was not re-asserted this frame.
//
// The returned error reports unbalanced stacks; the stacks are repaired
// before returning.
func (ctx *Context) EndFrame() error {
	if !ctx.withinFrame {
		return ErrFrameNotStarted
	}

	if n := len(ctx.windowStack); n > 1 {
		ctx.frameErrs = append(ctx.frameErrs,
			fmt.Errorf("%w: %d window(s) not ended, innermost %q", ErrUnbalancedWindowStack, n-1, ctx.currentWindow.Name))
		for len(ctx.windowStack) > 1 {
			ctx.endWindow()
		}
	}
	if len(ctx.beginPopupStack) > 0 {
		ctx.frameErrs = append(ctx.frameErrs,
			fmt.Errorf("%w: %d popup(s) left begun", ErrUnbalancedPopupStack, len(ctx.beginPopupStack)))
		ctx.beginPopupStack = ctx.beginPopupStack[:0]
	}
	if len(ctx.windowStack) == 1 {
		ctx.endWindow()
	}

	ctx.navEndFrame()
	ctx.updateMouseFocusEndFrame()
	ctx.popupsEndFrame()

	// An ActiveID whose owner was not submitted this frame vanished.
	if ctx.activeID != 0 && ctx.activeIDIsAlive != ctx.activeID {
		ctx.logger.Debug("clearing stale active id", "id", ctx.activeID, "frame", ctx.frameCount)
		ctx.ClearActiveID()
	}

	ctx.WantCaptureMouse = ctx.hoveredWindow != nil && ctx.hoveredWindow != ctx.defaultWindow ||
		ctx.activeID != 0 || len(ctx.openPopupStack) > 0
	ctx.WantCaptureKeyboard = ctx.activeID != 0 && ctx.activeIDSource == InputSourceNav ||
		ctx.nav.id != 0 && !ctx.nav.disableHighlight

	ctx.Input.Reset()
	ctx.withinFrame = false
	ctx.frameCountEnded = ctx.frameCount

	return errors.Join(ctx.frameErrs...)
}

// WithinFrame reports whether NewFrame has been called without EndFrame.
func (ctx *Context) WithinFrame() bool {
	return ctx.withinFrame
}

// mousePos returns the pointer position and whether it is valid.
func (ctx *Context) mousePos() (Vec2, bool) {
	return ctx.Input.MousePos(), ctx.Input.MousePosValid()
}
