package imcore

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"reflect"
	"strings"
)

// ID uniquely identifies a widget invocation within a frame.
// IDs are pure values recomputed every frame; the same key under the same
// parent scope always produces the same ID.
type ID uint32

// RootSeed is the seed used when the ID stack is empty.
const RootSeed ID = 0

// LabelSeparator splits a display label from the part that is hashed.
// "Save##toolbar" displays "Save" and hashes "toolbar".
const LabelSeparator = "##"

// HashString hashes a string key under the given seed.
// Only the text after the first LabelSeparator takes part in hashing.
func HashString(key string, seed ID) ID {
	return hashBytes([]byte(hashedPart(key)), seed)
}

// hashedPart returns the portion of a key that takes part in hashing.
func hashedPart(key string) string {
	if i := strings.Index(key, LabelSeparator); i >= 0 {
		return key[i+len(LabelSeparator):]
	}
	return key
}

// HashInt hashes an integer key under the given seed.
func HashInt(n int, seed ID) ID {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	return hashBytes(buf[:], seed)
}

// HashPtr hashes the address held by a pointer-like value under the given seed.
// Values that carry no address (ints, strings, structs) are hashed by their
// formatted representation instead.
func HashPtr(p any, seed ID) ID {
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Slice:
		var buf [9]byte
		buf[0] = 'p' // keep pointer keys apart from int keys with the same bits
		binary.LittleEndian.PutUint64(buf[1:], uint64(v.Pointer()))
		return hashBytes(buf[:], seed)
	default:
		return hashBytes([]byte(fmt.Sprintf("%T:%v", p, p)), seed)
	}
}

// hashBytes is seeded 32-bit FNV-1a: the seed is fed first, then the key.
func hashBytes(key []byte, seed ID) ID {
	var s [4]byte
	binary.LittleEndian.PutUint32(s[:], uint32(seed))

	h := fnv.New32a()
	h.Write(s[:])
	h.Write(key)
	return ID(h.Sum32())
}

// LabelText returns the displayed part of a label, dropping anything from
// the first LabelSeparator on.
func LabelText(label string) string {
	if i := strings.Index(label, LabelSeparator); i >= 0 {
		return label[:i]
	}
	return label
}

// seed returns the top of the window's ID stack.
func (w *Window) seed() ID {
	if len(w.idStack) == 0 {
		return RootSeed
	}
	return w.idStack[len(w.idStack)-1]
}

// GetID returns the ID of key inside the window's current scope
// without modifying the stack.
func (w *Window) GetID(key string) ID {
	id := HashString(key, w.seed())
	if w.ctx != nil {
		w.ctx.recordIDKey(id, w.seed(), key)
	}
	return id
}

// GetIDInt returns the ID of an integer key inside the current scope.
func (w *Window) GetIDInt(n int) ID {
	return HashInt(n, w.seed())
}

// GetIDPtr returns the ID of a pointer key inside the current scope.
func (w *Window) GetIDPtr(p any) ID {
	return HashPtr(p, w.seed())
}

// GetID hashes key under the current window's ID scope.
// Outside any window the root seed is used.
func (ctx *Context) GetID(key string) ID {
	if w := ctx.currentWindow; w != nil {
		return w.GetID(key)
	}
	id := HashString(key, RootSeed)
	ctx.recordIDKey(id, RootSeed, key)
	return id
}

// GetIDInt hashes an integer key under the current scope.
// Useful for items in arrays/slices.
func (ctx *Context) GetIDInt(n int) ID {
	if w := ctx.currentWindow; w != nil {
		return w.GetIDInt(n)
	}
	return HashInt(n, RootSeed)
}

// GetIDPtr hashes a pointer key under the current scope.
func (ctx *Context) GetIDPtr(p any) ID {
	if w := ctx.currentWindow; w != nil {
		return w.GetIDPtr(p)
	}
	return HashPtr(p, RootSeed)
}

// PushID pushes a string-keyed scope.
// All GetID calls until the matching PopID are relative to it.
func (ctx *Context) PushID(key string) {
	ctx.PushOverrideID(ctx.GetID(key))
}

// PushIDInt pushes an integer-keyed scope.
func (ctx *Context) PushIDInt(n int) {
	ctx.PushOverrideID(ctx.GetIDInt(n))
}

// PushIDPtr pushes a pointer-keyed scope.
func (ctx *Context) PushIDPtr(p any) {
	ctx.PushOverrideID(ctx.GetIDPtr(p))
}

// PushOverrideID pushes an already computed ID as the new seed.
func (ctx *Context) PushOverrideID(id ID) {
	w := ctx.currentWindow
	if !ctx.assert(w != nil, "PushID called outside of a window") {
		return
	}
	w.idStack = append(w.idStack, id)
}

// PopID removes the last pushed scope.
// Popping the window's own root entry is a no-op.
func (ctx *Context) PopID() {
	w := ctx.currentWindow
	if !ctx.assert(w != nil, "PopID called outside of a window") {
		return
	}
	if !ctx.assert(len(w.idStack) > 1, "PopID past the window root", "window", w.Name) {
		return
	}
	w.idStack = w.idStack[:len(w.idStack)-1]
}

// CurrentSeed returns the seed the next GetID call will use.
func (ctx *Context) CurrentSeed() ID {
	if w := ctx.currentWindow; w != nil {
		return w.seed()
	}
	return RootSeed
}

// IDKey returns the key an ID was hashed from.
// Only populated when Config.DebugIDs is enabled.
func (ctx *Context) IDKey(id ID) (string, bool) {
	k, ok := ctx.debugIDKeys[id]
	return k, ok
}

// recordIDKey keeps a reverse map for diagnosing collisions.
func (ctx *Context) recordIDKey(id, seed ID, key string) {
	if !ctx.cfg.DebugIDs {
		return
	}
	if ctx.debugIDKeys == nil {
		ctx.debugIDKeys = make(map[ID]string)
	}
	path := fmt.Sprintf("%08x/%s", uint32(seed), hashedPart(key))
	if prev, ok := ctx.debugIDKeys[id]; ok && prev != path {
		ctx.logger.Warn("ID collision", "id", id, "first", prev, "second", path)
		return
	}
	ctx.debugIDKeys[id] = path
}
