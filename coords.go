package rowan

import "fmt"

// System identifies one of the four screen coordinate systems.
//
// All systems share a common normalized basis (the "gl" system): origin at
// the viewport center, x in [-1, 1] growing right, y in [-1, 1] growing up.
// The pixel-like systems (px, vw, vh) have their origin at the top-left with
// y growing down.
type System uint8

const (
	SystemPx System = iota // pixels from the top-left corner
	SystemGL               // normalized device coordinates, origin center, ±1
	SystemVW               // percent of the viewport width
	SystemVH               // percent of the viewport height
)

// String returns the short lowercase name of the system.
func (s System) String() string {
	switch s {
	case SystemPx:
		return "px"
	case SystemGL:
		return "gl"
	case SystemVW:
		return "vw"
	case SystemVH:
		return "vh"
	default:
		return "unknown"
	}
}

// Viewport is the active drawing surface size in pixels. It parameterizes
// every conversion between coordinate systems.
type Viewport struct {
	Width, Height float64
}

// ScreenPosition is a point on the screen, tagged with the system it was
// created in. It is stored internally in the gl basis, so positions created
// in different systems compare and combine without loss.
//
// Two positions cannot be added together; subtract them to obtain a
// ScreenVector, and add that to a position instead.
type ScreenPosition struct {
	gl  Vec2
	sys System
}

// ScreenVector is a displacement on the screen, tagged with the system it
// was created in and stored internally in the gl basis.
type ScreenVector struct {
	gl  Vec2
	sys System
}

// --- Constructors ---

// Px creates a position from pixel coordinates (top-left origin, y down).
func (vp Viewport) Px(x, y float64) ScreenPosition {
	return ScreenPosition{
		gl:  Vec2{x*2/vp.Width - 1, 1 - y*2/vp.Height},
		sys: SystemPx,
	}
}

// GL creates a position directly in the normalized basis. The viewport is
// not consulted.
func (vp Viewport) GL(x, y float64) ScreenPosition {
	return ScreenPosition{gl: Vec2{x, y}, sys: SystemGL}
}

// VW creates a position measured in percent of the viewport width.
// 100 vw spans the full width on both axes.
func (vp Viewport) VW(x, y float64) ScreenPosition {
	return ScreenPosition{
		gl:  Vec2{x*2/100 - 1, 1 - y*2/100*vp.Width/vp.Height},
		sys: SystemVW,
	}
}

// VH creates a position measured in percent of the viewport height.
// 100 vh spans the full height on both axes.
func (vp Viewport) VH(x, y float64) ScreenPosition {
	return ScreenPosition{
		gl:  Vec2{x*2/100*vp.Height/vp.Width - 1, 1 - y*2/100},
		sys: SystemVH,
	}
}

// PxVec creates a displacement from pixel deltas (y down).
func (vp Viewport) PxVec(x, y float64) ScreenVector {
	return ScreenVector{
		gl:  Vec2{x * 2 / vp.Width, -y * 2 / vp.Height},
		sys: SystemPx,
	}
}

// GLVec creates a displacement directly in the normalized basis.
func (vp Viewport) GLVec(x, y float64) ScreenVector {
	return ScreenVector{gl: Vec2{x, y}, sys: SystemGL}
}

// VWVec creates a displacement measured in percent of the viewport width.
func (vp Viewport) VWVec(x, y float64) ScreenVector {
	return ScreenVector{
		gl:  Vec2{x * 2 / 100, -y * 2 / 100 * vp.Width / vp.Height},
		sys: SystemVW,
	}
}

// VHVec creates a displacement measured in percent of the viewport height.
func (vp Viewport) VHVec(x, y float64) ScreenVector {
	return ScreenVector{
		gl:  Vec2{x * 2 / 100 * vp.Height / vp.Width, -y * 2 / 100},
		sys: SystemVH,
	}
}

// --- Position accessors ---

// System returns the system the position was created in.
func (p ScreenPosition) System() System { return p.sys }

// GL returns the position in the normalized basis.
func (p ScreenPosition) GL() Vec2 { return p.gl }

// Px returns the position in pixels (top-left origin, y down).
func (p ScreenPosition) Px(vp Viewport) Vec2 {
	return Vec2{
		X: (p.gl.X + 1) * 0.5 * vp.Width,
		Y: (1 - p.gl.Y) * 0.5 * vp.Height,
	}
}

// VW returns the position in percent of the viewport width.
func (p ScreenPosition) VW(vp Viewport) Vec2 {
	return Vec2{
		X: (p.gl.X + 1) * 50,
		Y: (1 - p.gl.Y) * 50 * vp.Height / vp.Width,
	}
}

// VH returns the position in percent of the viewport height.
func (p ScreenPosition) VH(vp Viewport) Vec2 {
	return Vec2{
		X: (p.gl.X + 1) * 50 * vp.Width / vp.Height,
		Y: (1 - p.gl.Y) * 50,
	}
}

// In returns the position expressed in the given system.
func (p ScreenPosition) In(sys System, vp Viewport) Vec2 {
	switch sys {
	case SystemPx:
		return p.Px(vp)
	case SystemVW:
		return p.VW(vp)
	case SystemVH:
		return p.VH(vp)
	default:
		return p.GL()
	}
}

// Sub returns the displacement from q to p. Positions from different
// systems subtract freely through the common basis; the result is tagged
// with the receiver's system when both match, gl otherwise.
func (p ScreenPosition) Sub(q ScreenPosition) ScreenVector {
	sys := SystemGL
	if p.sys == q.sys {
		sys = p.sys
	}
	return ScreenVector{gl: p.gl.Sub(q.gl), sys: sys}
}

// Add returns the position displaced by v. The vector's originating system
// is irrelevant; it is applied through the common basis.
func (p ScreenPosition) Add(v ScreenVector) ScreenPosition {
	return ScreenPosition{gl: p.gl.Add(v.gl), sys: p.sys}
}

func (p ScreenPosition) String() string {
	return fmt.Sprintf("ScreenPosition(%v, %v)", p.gl.X, p.gl.Y)
}

// --- Vector accessors ---

// System returns the system the vector was created in.
func (v ScreenVector) System() System { return v.sys }

// GL returns the displacement in the normalized basis.
func (v ScreenVector) GL() Vec2 { return v.gl }

// Px returns the displacement in pixels (y down).
func (v ScreenVector) Px(vp Viewport) Vec2 {
	return Vec2{
		X: v.gl.X * 0.5 * vp.Width,
		Y: -v.gl.Y * 0.5 * vp.Height,
	}
}

// VW returns the displacement in percent of the viewport width.
func (v ScreenVector) VW(vp Viewport) Vec2 {
	return Vec2{
		X: v.gl.X * 50,
		Y: -v.gl.Y * 50 * vp.Height / vp.Width,
	}
}

// VH returns the displacement in percent of the viewport height.
func (v ScreenVector) VH(vp Viewport) Vec2 {
	return Vec2{
		X: v.gl.X * 50 * vp.Width / vp.Height,
		Y: -v.gl.Y * 50,
	}
}

// In returns the displacement expressed in the given system.
func (v ScreenVector) In(sys System, vp Viewport) Vec2 {
	switch sys {
	case SystemPx:
		return v.Px(vp)
	case SystemVW:
		return v.VW(vp)
	case SystemVH:
		return v.VH(vp)
	default:
		return v.GL()
	}
}

// Add returns v + o.
func (v ScreenVector) Add(o ScreenVector) ScreenVector {
	sys := SystemGL
	if v.sys == o.sys {
		sys = v.sys
	}
	return ScreenVector{gl: v.gl.Add(o.gl), sys: sys}
}

// Scale returns v scaled by k.
func (v ScreenVector) Scale(k float64) ScreenVector {
	return ScreenVector{gl: v.gl.Scale(k), sys: v.sys}
}

// Neg returns the opposite displacement.
func (v ScreenVector) Neg() ScreenVector {
	return ScreenVector{gl: Vec2{-v.gl.X, -v.gl.Y}, sys: v.sys}
}

func (v ScreenVector) String() string {
	return fmt.Sprintf("ScreenVector(%v, %v)", v.gl.X, v.gl.Y)
}
