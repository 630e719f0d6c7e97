package imcore

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the tunables of the interaction engine.
// It can be loaded from a TOML file with LoadConfig.
type Config struct {
	// Mouse
	DoubleClickTime    float32 `toml:"double_click_time"`     // Seconds between clicks of a double-click
	DoubleClickMaxDist float32 `toml:"double_click_max_dist"` // Max pointer travel between the two clicks
	DragThreshold      float32 `toml:"drag_threshold"`        // Distance before a held button counts as dragging

	// Keyboard
	KeyRepeatDelay float32 `toml:"key_repeat_delay"` // Initial delay before repeat starts (seconds)
	KeyRepeatRate  float32 `toml:"key_repeat_rate"`  // Repeat interval once repeating (seconds)

	// HoverDelay is the hover time after which IsItemHoveredDelayed reports true.
	HoverDelay float32 `toml:"hover_delay"`

	// Navigation fallbacks applied to requests issued from keys or the gamepad.
	NavWrap bool `toml:"nav_wrap"`
	NavLoop bool `toml:"nav_loop"`

	// Window moving: snap to display edges and other windows within the
	// margin, then to a grid when WindowSnapGrid > 0.
	WindowSnapMargin float32 `toml:"window_snap_margin"`
	WindowSnapGrid   float32 `toml:"window_snap_grid"`

	// PopupSize is the size given to popups that did not call SetNextWindowSize.
	PopupSize Vec2 `toml:"popup_size"`

	// Debug makes caller misuse (unbalanced stacks, PopID past root) panic
	// instead of logging and degrading.
	Debug bool `toml:"debug"`

	// DebugIDs records the key of every hashed ID so collisions can be
	// diagnosed with Context.IDKey.
	DebugIDs bool `toml:"debug_ids"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		DoubleClickTime:    0.30,
		DoubleClickMaxDist: 6,
		DragThreshold:      6,
		KeyRepeatDelay:     0.4,
		KeyRepeatRate:      0.03,
		HoverDelay:         0.5,
		WindowSnapMargin:   10,
		PopupSize:          Vec2{X: 160, Y: 120},
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig.
// Keys missing from the file keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	switch {
	case c.DoubleClickTime < 0:
		return fmt.Errorf("double_click_time must be >= 0, got %v", c.DoubleClickTime)
	case c.DoubleClickMaxDist < 0:
		return fmt.Errorf("double_click_max_dist must be >= 0, got %v", c.DoubleClickMaxDist)
	case c.DragThreshold < 0:
		return fmt.Errorf("drag_threshold must be >= 0, got %v", c.DragThreshold)
	case c.KeyRepeatDelay < 0:
		return fmt.Errorf("key_repeat_delay must be >= 0, got %v", c.KeyRepeatDelay)
	case c.KeyRepeatRate <= 0:
		return fmt.Errorf("key_repeat_rate must be > 0, got %v", c.KeyRepeatRate)
	case c.WindowSnapMargin < 0 || c.WindowSnapGrid < 0:
		return fmt.Errorf("window snap values must be >= 0, got margin %v grid %v", c.WindowSnapMargin, c.WindowSnapGrid)
	case c.PopupSize.X <= 0 || c.PopupSize.Y <= 0:
		return fmt.Errorf("popup_size must be positive, got %vx%v", c.PopupSize.X, c.PopupSize.Y)
	}
	return nil
}

// navMoveFlags returns the fallback flags for key-issued move requests.
func (c Config) navMoveFlags() NavMoveFlags {
	var f NavMoveFlags
	if c.NavWrap {
		f |= NavMoveWrap
	}
	if c.NavLoop {
		f |= NavMoveLoop
	}
	return f
}
