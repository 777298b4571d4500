package rowan

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// toPx converts a point in the normalized basis to pixels on the target.
func (c *Canvas) toPx(p Vec2) Vec2 {
	return Vec2{
		X: (p.X + 1) * 0.5 * c.vp.Width,
		Y: (1 - p.Y) * 0.5 * c.vp.Height,
	}
}

// submit flushes the queued commands onto dst in order and resets the queue.
func (c *Canvas) submit(dst *ebiten.Image) {
	for i := range c.ops {
		op := &c.ops[i]
		switch op.kind {
		case opClear:
			dst.Fill(op.color.rgba())
		case opRect:
			c.submitRect(dst, op)
		case opCircle:
			c.submitCircle(dst, op)
		case opPolygon:
			c.submitPolygon(dst, op)
		case opImage:
			c.submitImage(dst, op)
		case opImageQuad:
			c.submitImageQuad(dst, op)
		case opText:
			c.submitText(dst, op)
		}
	}
	c.reset()
}

func (c *Canvas) submitRect(dst *ebiten.Image, op *drawOp) {
	a := c.toPx(op.pos)
	b := c.toPx(op.pos.Add(op.size))
	x := math.Min(a.X, b.X)
	y := math.Min(a.Y, b.Y)
	w := math.Abs(b.X - a.X)
	h := math.Abs(b.Y - a.Y)
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), op.color.rgba(), true)
}

func (c *Canvas) submitCircle(dst *ebiten.Image, op *drawOp) {
	p := c.toPx(op.pos)
	// Radius scales with the viewport height so circles stay round.
	r := op.radius * c.vp.Height * 0.5
	vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(r), op.color.rgba(), true)
}

func (c *Canvas) submitPolygon(dst *ebiten.Image, op *drawOp) {
	var path vector.Path
	for i, pt := range op.points {
		p := c.toPx(pt)
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
		} else {
			path.LineTo(float32(p.X), float32(p.Y))
		}
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = float32(op.color.R)
		vs[i].ColorG = float32(op.color.G)
		vs[i].ColorB = float32(op.color.B)
		vs[i].ColorA = float32(op.color.A)
	}
	dst.DrawTriangles(vs, is, WhitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (c *Canvas) submitImage(dst *ebiten.Image, op *drawOp) {
	img := op.handle.Image()
	a := c.toPx(op.pos)
	b := c.toPx(op.pos.Add(op.size))
	w := b.X - a.X
	h := b.Y - a.Y
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}

	var g ebiten.DrawImageOptions
	g.GeoM.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
	g.GeoM.Translate(a.X, a.Y)
	dst.DrawImage(img, &g)
}

func (c *Canvas) submitImageQuad(dst *ebiten.Image, op *drawOp) {
	img := op.handle.Image()
	bounds := img.Bounds()

	srcPos := op.uvPos
	srcSize := op.uvSize
	if srcSize.X == 0 || srcSize.Y == 0 {
		srcPos = Vec2{}
		srcSize = Vec2{float64(bounds.Dx()), float64(bounds.Dy())}
	}
	sx0 := float32(float64(bounds.Min.X) + srcPos.X)
	sy0 := float32(float64(bounds.Min.Y) + srcPos.Y)
	sx1 := sx0 + float32(srcSize.X)
	sy1 := sy0 + float32(srcSize.Y)

	// Corners run top-left, top-right, bottom-right, bottom-left.
	src := [4][2]float32{{sx0, sy0}, {sx1, sy0}, {sx1, sy1}, {sx0, sy1}}
	vs := make([]ebiten.Vertex, 4)
	for i, pt := range op.quad {
		p := c.toPx(pt)
		vs[i] = ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: src[i][0], SrcY: src[i][1],
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		}
	}
	is := []uint16{0, 1, 2, 0, 2, 3}
	dst.DrawTriangles(vs, is, img, &ebiten.DrawTrianglesOptions{})
}

func (c *Canvas) submitText(dst *ebiten.Image, op *drawOp) {
	face := &text.GoTextFace{
		Source: op.handle.FontSource(),
		Size:   op.fontSize,
	}
	p := c.toPx(op.pos)
	topt := &text.DrawOptions{}
	topt.GeoM.Translate(p.X, p.Y)
	topt.ColorScale.ScaleWithColor(op.color.rgba())
	text.Draw(dst, op.text, face, topt)
}
