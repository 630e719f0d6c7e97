package imcore

import (
	"errors"
	"fmt"
)

// Frame contract violations reported by EndFrame.
// The engine repairs the offending stack before returning, so the next
// frame starts from a clean state.
var (
	ErrFrameNotStarted       = errors.New("imcore: EndFrame called without NewFrame")
	ErrFrameNotEnded         = errors.New("imcore: NewFrame called before EndFrame")
	ErrUnbalancedIDStack     = errors.New("imcore: unbalanced PushID/PopID")
	ErrUnbalancedWindowStack = errors.New("imcore: unbalanced Begin/End")
	ErrUnbalancedPopupStack  = errors.New("imcore: unbalanced BeginPopup/EndPopup")
)

// assert checks a caller precondition.
// With Config.Debug set a failed check panics; otherwise it is logged and
// the caller is expected to degrade to a no-op. Returns cond.
func (ctx *Context) assert(cond bool, msg string, args ...any) bool {
	if cond {
		return true
	}
	if ctx.cfg.Debug {
		panic("imcore: " + msg)
	}
	ctx.logger.Warn(msg, args...)
	return false
}

func unbalancedIDStackError(window string, depth int) error {
	return fmt.Errorf("%w: window %q ended with %d scope(s) still pushed", ErrUnbalancedIDStack, window, depth)
}
