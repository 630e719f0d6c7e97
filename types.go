package imcore

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X float32 `toml:"x"`
	Y float32 `toml:"y"`
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// LengthSqr returns the squared length of the vector.
func (v Vec2) LengthSqr() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// RectFromMinMax builds a rect from two corners.
func RectFromMinMax(min, max Vec2) Rect {
	return Rect{X: min.X, Y: min.Y, W: max.X - min.X, H: max.Y - min.Y}
}

// Min returns the top-left corner.
func (r Rect) Min() Vec2 { return Vec2{X: r.X, Y: r.Y} }

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 { return Vec2{X: r.X + r.W, Y: r.Y + r.H} }

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W*0.5, Y: r.Y + r.H*0.5}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Translate returns the rectangle moved by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Dir is a cardinal direction used by navigation.
type Dir int

const (
	DirNone Dir = iota - 1
	DirLeft
	DirRight
	DirUp
	DirDown
)

// String returns the direction name for logging.
func (d Dir) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// Opposite returns the reverse direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		return DirNone
	}
}

// horizontal reports whether the direction moves along X.
func (d Dir) horizontal() bool {
	return d == DirLeft || d == DirRight
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// minf returns the minimum of two float32 values.
func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
