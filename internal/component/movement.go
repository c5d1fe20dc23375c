// internal/component/movement.go
package component

import "math"

// Vec2 - точка или вектор в мировых координатах (пиксели).
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// Normalize returns the unit vector and the original length.
// A zero vector stays zero.
func (v Vec2) Normalize() (Vec2, float64) {
	l := v.Len()
	if l == 0 {
		return Vec2{}, 0
	}
	return Vec2{v.X / l, v.Y / l}, l
}

// Rect - прямоугольник, выровненный по осям (арена, границы полёта).
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

func (r Rect) Right() float64  { return r.Left + r.Width }
func (r Rect) Bottom() float64 { return r.Top + r.Height }

func (r Rect) Center() Vec2 {
	return Vec2{r.Left + r.Width/2, r.Top + r.Height/2}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Left && p.X <= r.Right() && p.Y >= r.Top && p.Y <= r.Bottom()
}

// Inset shrinks r by d on every side. The result never has negative size.
func (r Rect) Inset(d float64) Rect {
	out := Rect{Left: r.Left + d, Top: r.Top + d, Width: r.Width - 2*d, Height: r.Height - 2*d}
	if out.Width < 0 {
		out.Left, out.Width = r.Left+r.Width/2, 0
	}
	if out.Height < 0 {
		out.Top, out.Height = r.Top+r.Height/2, 0
	}
	return out
}

// Clamp returns p moved onto the nearest point of r.
func (r Rect) Clamp(p Vec2) Vec2 {
	return Vec2{
		X: math.Max(r.Left, math.Min(p.X, r.Right())),
		Y: math.Max(r.Top, math.Min(p.Y, r.Bottom())),
	}
}
