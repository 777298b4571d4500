package rowan

import (
	"math"
	"testing"
)

const coordEps = 1e-9

func vecNear(a, b Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func TestPositionRoundTripAcrossSystems(t *testing.T) {
	viewports := []Viewport{
		{800, 600},
		{1200, 800},
		{1920, 1080},
		{500, 500},
	}
	for _, vp := range viewports {
		// A point at 30% across and 70% down, expressed in each system.
		px := Vec2{vp.Width * 0.3, vp.Height * 0.7}

		made := map[string]ScreenPosition{
			"px": vp.Px(px.X, px.Y),
			"gl": vp.GL(px.X*2/vp.Width-1, 1-px.Y*2/vp.Height),
			"vw": vp.VW(px.X/vp.Width*100, px.Y/vp.Width*100),
			"vh": vp.VH(px.X/vp.Height*100, px.Y/vp.Height*100),
		}
		for name, pos := range made {
			got := pos.Px(vp)
			if !vecNear(got, px, 1e-9*vp.Width) {
				t.Errorf("vp %v: %s construction: Px() = %v, want %v", vp, name, got, px)
			}
		}
	}
}

func TestConversionDoesNotDrift(t *testing.T) {
	vp := Viewport{1200, 800}
	p := vp.Px(341.5, 622.25)

	// Bounce the value through every accessor repeatedly; the stored basis
	// must stay bit-stable because accessors never mutate.
	for i := 0; i < 1000; i++ {
		_ = p.VW(vp)
		_ = p.VH(vp)
		_ = p.GL()
	}
	got := p.Px(vp)
	if !vecNear(got, Vec2{341.5, 622.25}, coordEps) {
		t.Errorf("after repeated reads Px() = %v, want {341.5 622.25}", got)
	}
}

func TestVWAndVHAgreeOnSquareViewport(t *testing.T) {
	vp := Viewport{500, 500}
	a := vp.VW(25, 75)
	b := vp.VH(25, 75)
	if !vecNear(a.GL(), b.GL(), coordEps) {
		t.Errorf("vw %v != vh %v on a square viewport", a.GL(), b.GL())
	}
}

func TestGLConstructorIgnoresViewport(t *testing.T) {
	a := Viewport{100, 100}.GL(0.25, -0.5)
	b := Viewport{1920, 1080}.GL(0.25, -0.5)
	if a.GL() != b.GL() {
		t.Errorf("GL position depends on viewport: %v vs %v", a.GL(), b.GL())
	}
}

func TestPixelSystemsAreYDown(t *testing.T) {
	vp := Viewport{1000, 500}
	tests := []struct {
		name string
		pos  ScreenPosition
	}{
		{"px", vp.Px(0, 0)},
		{"vw", vp.VW(0, 0)},
		{"vh", vp.VH(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Origin of every pixel-like system is the top-left corner,
			// which is (-1, 1) in the normalized basis.
			if !vecNear(tt.pos.GL(), Vec2{-1, 1}, coordEps) {
				t.Errorf("origin GL() = %v, want {-1 1}", tt.pos.GL())
			}
		})
	}
}

func TestSubtractPositionsGivesVector(t *testing.T) {
	vp := Viewport{800, 600}
	a := vp.Px(100, 100)
	b := vp.Px(60, 130)

	v := a.Sub(b)
	if v.System() != SystemPx {
		t.Errorf("same-system difference tagged %v, want px", v.System())
	}
	if !vecNear(v.Px(vp), Vec2{40, -30}, coordEps) {
		t.Errorf("difference = %v px, want {40 -30}", v.Px(vp))
	}

	// Adding the difference back recovers the original position.
	got := b.Add(v).Px(vp)
	if !vecNear(got, Vec2{100, 100}, coordEps) {
		t.Errorf("b + (a-b) = %v, want {100 100}", got)
	}
}

func TestMixedSystemDifferenceFallsBackToGL(t *testing.T) {
	vp := Viewport{800, 600}
	a := vp.Px(400, 300)
	b := vp.VW(50, 37.5) // same point
	v := a.Sub(b)
	if v.System() != SystemGL {
		t.Errorf("cross-system difference tagged %v, want gl", v.System())
	}
	if !vecNear(v.GL(), Vec2{}, coordEps) {
		t.Errorf("difference of equal points = %v, want zero", v.GL())
	}
}

func TestAddKeepsReceiverSystem(t *testing.T) {
	vp := Viewport{800, 600}
	p := vp.VH(10, 10).Add(vp.PxVec(8, 6))
	if p.System() != SystemVH {
		t.Errorf("sum tagged %v, want vh", p.System())
	}
}

func TestVectorAccessorsAreYDown(t *testing.T) {
	vp := Viewport{800, 600}
	v := vp.PxVec(0, 60) // 60 pixels downward
	if got := v.Px(vp); !vecNear(got, Vec2{0, 60}, coordEps) {
		t.Errorf("Px() = %v, want {0 60}", got)
	}
	if got := v.GL(); !(got.Y < 0) {
		t.Errorf("downward pixel vector has GL y %v, want negative", got.Y)
	}
	if got := v.VH(vp); !vecNear(got, Vec2{0, 10}, coordEps) {
		t.Errorf("VH() = %v, want {0 10}", got)
	}
}

func TestVectorScaleAndNeg(t *testing.T) {
	vp := Viewport{800, 600}
	v := vp.VWVec(10, 0)
	if got := v.Scale(2.5).VW(vp); !vecNear(got, Vec2{25, 0}, coordEps) {
		t.Errorf("scaled = %v, want {25 0}", got)
	}
	if got := v.Neg().Add(v).GL(); !vecNear(got, Vec2{}, coordEps) {
		t.Errorf("v + (-v) = %v, want zero", got)
	}
}

func TestInSelectsSystem(t *testing.T) {
	vp := Viewport{1000, 500}
	p := vp.Px(250, 125)
	tests := []struct {
		sys  System
		want Vec2
	}{
		{SystemPx, Vec2{250, 125}},
		{SystemGL, Vec2{-0.5, 0.5}},
		{SystemVW, Vec2{25, 12.5}},
		{SystemVH, Vec2{50, 25}},
	}
	for _, tt := range tests {
		t.Run(tt.sys.String(), func(t *testing.T) {
			if got := p.In(tt.sys, vp); !vecNear(got, tt.want, coordEps) {
				t.Errorf("In(%v) = %v, want %v", tt.sys, got, tt.want)
			}
		})
	}
}

func TestSystemString(t *testing.T) {
	if SystemPx.String() != "px" || SystemGL.String() != "gl" ||
		SystemVW.String() != "vw" || SystemVH.String() != "vh" {
		t.Error("unexpected system names")
	}
}
