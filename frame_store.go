package imcore

// cleanable is implemented by stores that need frame-based cleanup.
// Each frame, stale entries (not accessed last frame) are removed.
type cleanable interface {
	cleanup(currentFrame uint64)
	clear()
}

// stateEntry wraps a state value with frame tracking for staleness detection.
type stateEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore is a type-safe store for per-widget state keyed by ID.
// Entries not accessed during a frame are dropped at the next NewFrame, so
// state follows the liveness of the widget that owns it.
//
// A store belongs to one Context and is cleaned by its NewFrame:
//
//	var dragStore = imcore.NewFrameStore[DragState](ctx)
//
//	func MyDrag(ctx *imcore.Context, label string) {
//	    id := ctx.GetID(label)
//	    st := dragStore.Get(id, DragState{})
//	    st.Start = ...
//	}
//
// Like the Context itself, a FrameStore must not be used from several
// goroutines at once.
type FrameStore[T any] struct {
	ctx    *Context
	states map[ID]*stateEntry[T]
}

// NewFrameStore creates a store and registers it with ctx for cleanup.
func NewFrameStore[T any](ctx *Context) *FrameStore[T] {
	store := &FrameStore[T]{
		ctx:    ctx,
		states: make(map[ID]*stateEntry[T]),
	}
	ctx.stores = append(ctx.stores, store)
	return store
}

// Get retrieves state for the given ID, or creates it with defaultVal if not found.
// Returns a pointer to the state, allowing direct modification.
// The entry is marked as used this frame.
func (s *FrameStore[T]) Get(id ID, defaultVal T) *T {
	if entry, ok := s.states[id]; ok {
		entry.lastFrame = s.ctx.frameCount
		return &entry.value
	}
	entry := &stateEntry[T]{
		value:     defaultVal,
		lastFrame: s.ctx.frameCount,
	}
	s.states[id] = entry
	return &entry.value
}

// GetIfExists retrieves state only if it already exists.
// Does not create default state or mark the entry as used.
func (s *FrameStore[T]) GetIfExists(id ID) *T {
	if entry, ok := s.states[id]; ok {
		return &entry.value
	}
	return nil
}

// Set explicitly sets state for an ID and marks it as used this frame.
func (s *FrameStore[T]) Set(id ID, value T) {
	if entry, ok := s.states[id]; ok {
		entry.value = value
		entry.lastFrame = s.ctx.frameCount
		return
	}
	s.states[id] = &stateEntry[T]{value: value, lastFrame: s.ctx.frameCount}
}

// Delete removes state for an ID.
func (s *FrameStore[T]) Delete(id ID) {
	delete(s.states, id)
}

// cleanup removes entries that weren't accessed in the previous frame.
// frame is the frame just started.
func (s *FrameStore[T]) cleanup(frame uint64) {
	if frame < 2 {
		return
	}
	threshold := frame - 1
	for id, entry := range s.states {
		if entry.lastFrame < threshold {
			delete(s.states, id)
		}
	}
}

// Len returns the number of stored entries.
func (s *FrameStore[T]) Len() int {
	return len(s.states)
}

// clear removes all entries immediately.
func (s *FrameStore[T]) clear() {
	clear(s.states)
}

// Clear removes all entries immediately.
func (s *FrameStore[T]) Clear() {
	s.clear()
}
