package rowan

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay draws the current FPS and TPS in the top-left corner. The text
// refreshes every ~0.5 seconds to stay readable.
type fpsOverlay struct {
	img         *ebiten.Image
	sinceUpdate float64
	primed      bool
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsOverlay{img: ebiten.NewImage(100, 32)}
}

func (f *fpsOverlay) update(dt float64) {
	f.sinceUpdate += dt
	if f.primed && f.sinceUpdate < 0.5 {
		return
	}
	f.sinceUpdate = 0
	f.primed = true

	f.img.Clear()
	// Semi-transparent background for readability
	f.img.Fill(color.RGBA{0, 0, 0, 128})
	fps := ebiten.ActualFPS()
	tps := ebiten.ActualTPS()
	ebitenutil.DebugPrint(f.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps))
}

func (f *fpsOverlay) draw(dst *ebiten.Image) {
	dst.DrawImage(f.img, nil)
}
