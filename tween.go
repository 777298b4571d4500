package rowan

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ValueTween animates a scalar over a fixed duration with an easing curve.
type ValueTween struct {
	tw *gween.Tween
}

// NewValueTween animates from begin to end over duration seconds. A nil
// easing defaults to linear.
func NewValueTween(begin, end, duration float64, easing ease.TweenFunc) *ValueTween {
	if easing == nil {
		easing = ease.Linear
	}
	return &ValueTween{
		tw: gween.New(float32(begin), float32(end), float32(duration), easing),
	}
}

// Update advances the tween by dt seconds and returns the current value and
// whether the tween has finished. Finished tweens keep returning the end
// value.
func (t *ValueTween) Update(dt float64) (float64, bool) {
	v, done := t.tw.Update(float32(dt))
	return float64(v), done
}

// Reset rewinds the tween to its beginning.
func (t *ValueTween) Reset() {
	t.tw.Reset()
}

// PositionTween animates a screen position between two points. The endpoints
// may come from different coordinate systems; interpolation happens in the
// shared normalized basis.
type PositionTween struct {
	x, y *gween.Tween
	sys  System
}

// NewPositionTween animates from one position to another over duration
// seconds. A nil easing defaults to linear.
func NewPositionTween(from, to ScreenPosition, duration float64, easing ease.TweenFunc) *PositionTween {
	if easing == nil {
		easing = ease.Linear
	}
	a, b := from.GL(), to.GL()
	return &PositionTween{
		x:   gween.New(float32(a.X), float32(b.X), float32(duration), easing),
		y:   gween.New(float32(a.Y), float32(b.Y), float32(duration), easing),
		sys: from.System(),
	}
}

// Update advances the tween by dt seconds and returns the current position
// and whether the tween has finished.
func (t *PositionTween) Update(dt float64) (ScreenPosition, bool) {
	x, doneX := t.x.Update(float32(dt))
	y, doneY := t.y.Update(float32(dt))
	return ScreenPosition{
		gl:  Vec2{float64(x), float64(y)},
		sys: t.sys,
	}, doneX && doneY
}

// Reset rewinds the tween to its starting position.
func (t *PositionTween) Reset() {
	t.x.Reset()
	t.y.Reset()
}
