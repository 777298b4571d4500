package rowan

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestValueTweenReachesTarget(t *testing.T) {
	tw := NewValueTween(0, 100, 1.0, ease.Linear)

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	v, done := tw.Update(0.5)
	if done {
		t.Fatal("done at half duration")
	}
	if math.Abs(v-50) > 0.5 {
		t.Errorf("midpoint = %f, want ~50", v)
	}

	v, done = tw.Update(0.5)
	if !done {
		t.Fatal("not done after full duration")
	}
	if math.Abs(v-100) > 0.5 {
		t.Errorf("end = %f, want ~100", v)
	}
}

func TestValueTweenNilEasingIsLinear(t *testing.T) {
	tw := NewValueTween(0, 10, 1.0, nil)
	v, _ := tw.Update(0.5)
	if math.Abs(v-5) > 0.1 {
		t.Errorf("midpoint = %f, want ~5", v)
	}
}

func TestValueTweenReset(t *testing.T) {
	tw := NewValueTween(0, 10, 1.0, ease.Linear)
	tw.Update(0.5)
	tw.Update(0.5)
	tw.Reset()
	v, done := tw.Update(0)
	if done || math.Abs(v) > 0.01 {
		t.Errorf("after Reset value = %f done = %v", v, done)
	}
}

func TestPositionTweenInterpolatesAcrossSystems(t *testing.T) {
	vp := Viewport{800, 600}
	from := vp.Px(0, 0)
	to := vp.VW(100, 0) // right edge, same height basis

	tw := NewPositionTween(from, to, 1.0, ease.Linear)
	p, done := tw.Update(0.5)
	if done {
		t.Fatal("done at half duration")
	}
	mid := p.Px(vp)
	if math.Abs(mid.X-400) > 1 {
		t.Errorf("midpoint x = %f px, want ~400", mid.X)
	}

	p, done = tw.Update(0.5)
	if !done {
		t.Fatal("not done after full duration")
	}
	end := p.Px(vp)
	if math.Abs(end.X-800) > 1 || math.Abs(end.Y-0) > 1 {
		t.Errorf("end = %v px, want ~{800 0}", end)
	}
}

func TestPositionTweenKeepsStartSystem(t *testing.T) {
	vp := Viewport{800, 600}
	tw := NewPositionTween(vp.VH(0, 0), vp.Px(100, 100), 1.0, ease.Linear)
	p, _ := tw.Update(0.25)
	if p.System() != SystemVH {
		t.Errorf("tweened position tagged %v, want vh", p.System())
	}
}
