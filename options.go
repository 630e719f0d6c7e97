package imcore

// Option configures a widget call.
type Option func(*options)

// options holds all widget configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
// All options (built-in and custom) use this system for consistency.
//
// Example:
//
//	// Define option keys (built-in ones are already defined below)
//	var OptCustomThing = imcore.NewOptKey("customThing", defaultValue)
//
//	// Set options
//	MyWidget(ctx, "id", imcore.WithOpt(OptCustomThing, value))
//
//	// Read in widget implementation
//	value := imcore.GetOpt(opts, OptCustomThing)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages to create custom widgets.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyAndCheck returns the option value and whether it was explicitly set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return GetOpt(o, key), HasOpt(o, key)
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

// RangeValue holds min/max range for sliders.
type RangeValue struct {
	Min, Max float32
}

var (
	// Identity and interaction
	OptID            = NewOptKey("id", "") // Hash this key instead of the label
	OptDisabled      = NewOptKey("disabled", false)
	OptButtonFlags   = NewOptKey("buttonFlags", ButtonFlagsNone)
	OptHoveredFlags  = NewOptKey("hoveredFlags", HoveredFlagsNone)
	OptDefaultFocus  = NewOptKey("defaultFocus", false) // Preferred target of FindInitial
	OptNoNav         = NewOptKey("noNav", false)
	OptKeepPopupOpen = NewOptKey("keepPopupOpen", false) // Selectable/MenuItem leave the popup open

	// Value widgets
	OptRange     = NewOptKey("range", RangeValue{Min: 0, Max: 1})
	OptStep      = NewOptKey[float32]("step", 0)
	OptDragSpeed = NewOptKey[float32]("dragSpeed", 1)
)

// WithID overrides the hashed key of the widget.
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithDisabled disables the widget.
func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }

// WithButtonFlags sets the press policy of the widget.
func WithButtonFlags(flags ButtonFlags) Option { return WithOpt(OptButtonFlags, flags) }

// WithHoveredFlags relaxes the hover rules of the widget.
func WithHoveredFlags(flags HoveredFlags) Option { return WithOpt(OptHoveredFlags, flags) }

// DefaultFocus makes the widget the target of FindInitial in its window.
func DefaultFocus() Option { return WithOpt(OptDefaultFocus, true) }

// NoNav excludes the widget from keyboard/gamepad navigation.
func NoNav() Option { return WithOpt(OptNoNav, true) }

// KeepPopupOpen stops Selectable and MenuItem from closing their popup.
func KeepPopupOpen() Option { return WithOpt(OptKeepPopupOpen, true) }

// WithRange sets the value range of a slider.
func WithRange(minVal, maxVal float32) Option {
	return WithOpt(OptRange, RangeValue{Min: minVal, Max: maxVal})
}

// WithStep sets the keyboard/gamepad step of a value widget.
func WithStep(step float32) Option { return WithOpt(OptStep, step) }

// WithDragSpeed sets the value change per pixel of a drag widget.
func WithDragSpeed(speed float32) Option { return WithOpt(OptDragSpeed, speed) }

// itemFlags converts the interaction options to ItemFlags.
func (o options) itemFlags() ItemFlags {
	var f ItemFlags
	if GetOpt(o, OptDisabled) {
		f |= ItemFlagsDisabled
	}
	if GetOpt(o, OptNoNav) {
		f |= ItemFlagsNoNav
	}
	if GetOpt(o, OptDefaultFocus) {
		f |= ItemFlagsDefaultFocus
	}
	return f
}

// buttonFlags returns OptButtonFlags, adding NoNavFocus for NoNav widgets.
func (o options) buttonFlags() ButtonFlags {
	f := GetOpt(o, OptButtonFlags)
	if GetOpt(o, OptNoNav) {
		f |= ButtonFlagsNoNavFocus
	}
	return f
}
