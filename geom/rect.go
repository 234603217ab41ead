package geom

import "math"

// Rect is an inclusive integer bounding box. The zero Rect is a single point
// at the origin; start from RectAt to bound anything else.
//
// Grow, Width, Height and Area saturate at the int64 range instead of
// wrapping, so a box around extreme coordinates reports a huge area rather
// than a negative one.
type Rect struct {
	Min, Max Vec2
}

// RectAt returns the one-point box around p.
func RectAt(p Vec2) Rect {
	return Rect{Min: p, Max: p}
}

// Include returns the smallest box containing r and p.
func (r Rect) Include(p Vec2) Rect {
	r.Min = Vec2{min(r.Min.X, p.X), min(r.Min.Y, p.Y)}
	r.Max = Vec2{max(r.Max.X, p.X), max(r.Max.Y, p.Y)}
	return r
}

// Grow returns r expanded by n cells on every side, clamped to the int64 range.
func (r Rect) Grow(n int64) Rect {
	return Rect{
		Min: Vec2{satAdd(r.Min.X, -n), satAdd(r.Min.Y, -n)},
		Max: Vec2{satAdd(r.Max.X, n), satAdd(r.Max.Y, n)},
	}
}

// Width returns the number of columns covered by r.
func (r Rect) Width() int64 { return span(r.Min.X, r.Max.X) }

// Height returns the number of rows covered by r.
func (r Rect) Height() int64 { return span(r.Min.Y, r.Max.Y) }

// Area returns Width()*Height(), saturating at the int64 maximum.
func (r Rect) Area() int64 {
	w, h := r.Width(), r.Height()
	if w > 0 && h > math.MaxInt64/w {
		return math.MaxInt64
	}
	return w * h
}

// Contains reports whether p lies inside r, borders included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// span counts the integers in lo..hi. A difference that wrapped is reported
// as math.MaxInt64.
func span(lo, hi int64) int64 {
	d := hi - lo
	if d < 0 || d == math.MaxInt64 {
		return math.MaxInt64
	}
	return d + 1
}

func satAdd(a, b int64) int64 {
	s := a + b
	switch {
	case b > 0 && s < a:
		return math.MaxInt64
	case b < 0 && s > a:
		return math.MinInt64
	}
	return s
}
