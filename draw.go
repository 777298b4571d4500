package rowan

// opKind discriminates queued drawing commands.
type opKind uint8

const (
	opClear opKind = iota
	opRect
	opCircle
	opPolygon
	opImage
	opImageQuad
	opText
)

// drawOp is one queued drawing command. Positions and sizes are stored in
// the normalized basis and converted to pixels at submission.
type drawOp struct {
	kind     opKind
	pos      Vec2
	size     Vec2
	radius   float64
	color    Color
	points   []Vec2
	handle   *Handle
	quad     [4]Vec2
	uvPos    Vec2
	uvSize   Vec2
	text     string
	fontSize float64
}

// PointArg is any value usable as a drawing position: a ScreenPosition from
// any coordinate system, or a raw Vec2 taken as normalized coordinates.
type PointArg interface {
	glPoint(vp Viewport) Vec2
}

func (p ScreenPosition) glPoint(Viewport) Vec2 { return p.gl }
func (v Vec2) glPoint(Viewport) Vec2           { return v }

// SizeArg is any value usable as a drawing extent: a ScreenVector from any
// coordinate system, or a raw Vec2 taken as a normalized extent.
type SizeArg interface {
	glSize(vp Viewport) Vec2
}

func (v ScreenVector) glSize(Viewport) Vec2 { return v.gl }
func (v Vec2) glSize(Viewport) Vec2         { return v }

// Canvas queues drawing commands for the current frame. Commands render in
// submission order when the runtime flushes the queue; nothing touches the
// screen until then.
type Canvas struct {
	ops     []drawOp
	vp      Viewport
	console *Console
}

// NewCanvas creates a canvas for the given viewport. The console may be nil;
// if set, skipped draws are reported there.
func NewCanvas(vp Viewport, console *Console) *Canvas {
	return &Canvas{vp: vp, console: console}
}

// Viewport returns the viewport the canvas currently draws into.
func (c *Canvas) Viewport() Viewport { return c.vp }

func (c *Canvas) setViewport(vp Viewport) { c.vp = vp }

// Clear queues a full-surface fill. Usually the first call of a frame.
func (c *Canvas) Clear(col Color) {
	c.ops = append(c.ops, drawOp{kind: opClear, color: col})
}

// DrawRect queues an axis-aligned filled rectangle. Position is the top-left
// corner, the size extends right and down in its originating system.
func (c *Canvas) DrawRect(pos PointArg, size SizeArg, col Color) {
	c.ops = append(c.ops, drawOp{
		kind:  opRect,
		pos:   pos.glPoint(c.vp),
		size:  size.glSize(c.vp),
		color: col,
	})
}

// DrawCircle queues a filled circle. The radius is measured in the
// normalized basis against the viewport height, so a circle stays round on
// any aspect ratio.
func (c *Canvas) DrawCircle(pos PointArg, radius float64, col Color) {
	c.ops = append(c.ops, drawOp{
		kind:   opCircle,
		pos:    pos.glPoint(c.vp),
		radius: radius,
		color:  col,
	})
}

// DrawPolygon queues a filled polygon through the given points. Fewer than
// three points draws nothing.
func (c *Canvas) DrawPolygon(col Color, points ...PointArg) {
	if len(points) < 3 {
		c.warnf("polygon needs at least 3 points, got %d", len(points))
		return
	}
	pts := make([]Vec2, len(points))
	for i, p := range points {
		pts[i] = p.glPoint(c.vp)
	}
	c.ops = append(c.ops, drawOp{kind: opPolygon, points: pts, color: col})
}

// DefaultArrowWidth is the shaft width used by DrawArrow when width is zero,
// in normalized units.
const DefaultArrowWidth = 0.01

// DrawArrow queues an arrow from one point to another as a shaft polygon and
// a triangular head. Width is the shaft thickness in normalized units; zero
// selects DefaultArrowWidth. The head is twice the shaft width.
func (c *Canvas) DrawArrow(from, to PointArg, width float64, col Color) {
	if width <= 0 {
		width = DefaultArrowWidth
	}
	a := from.glPoint(c.vp)
	b := to.glPoint(c.vp)
	dir := b.Sub(a)
	if dir.Len() == 0 {
		return
	}
	dir = dir.Normalized()
	perp := dir.Perp()

	headSize := width * 2
	neck := b.Sub(dir.Scale(headSize))

	half := perp.Scale(width / 2)
	c.ops = append(c.ops, drawOp{
		kind:   opPolygon,
		points: []Vec2{a.Add(half), neck.Add(half), neck.Sub(half), a.Sub(half)},
		color:  col,
	})
	wing := perp.Scale(headSize)
	c.ops = append(c.ops, drawOp{
		kind:   opPolygon,
		points: []Vec2{b, neck.Add(wing), neck.Sub(wing)},
		color:  col,
	})
}

// DrawImage queues an image resource stretched into the given extent. A nil
// or not yet ready handle is skipped with a console warning.
func (c *Canvas) DrawImage(h *Handle, pos PointArg, size SizeArg) {
	if !c.imageReady(h) {
		return
	}
	c.ops = append(c.ops, drawOp{
		kind:   opImage,
		handle: h,
		pos:    pos.glPoint(c.vp),
		size:   size.glSize(c.vp),
	})
}

// DrawImageQuad queues an arbitrary quadrilateral mapped from a sub-region
// of an image resource. srcPos and srcSize select the region in texels of
// the source image; a zero srcSize selects the whole image. The corners run
// top-left, top-right, bottom-right, bottom-left of the source region.
func (c *Canvas) DrawImageQuad(h *Handle, p1, p2, p3, p4 PointArg, srcPos, srcSize Vec2) {
	if !c.imageReady(h) {
		return
	}
	c.ops = append(c.ops, drawOp{
		kind:   opImageQuad,
		handle: h,
		quad: [4]Vec2{
			p1.glPoint(c.vp), p2.glPoint(c.vp),
			p3.glPoint(c.vp), p4.glPoint(c.vp),
		},
		uvPos:  srcPos,
		uvSize: srcSize,
	})
}

// DrawText queues a text run at the given position using a loaded font
// resource. Size is the font size in pixels. A nil or unready font handle is
// skipped with a console warning.
func (c *Canvas) DrawText(s string, font *Handle, pos PointArg, size float64, col Color) {
	if font == nil {
		c.warnf("draw text: nil font handle")
		return
	}
	if !font.IsReady() || font.FontSource() == nil {
		c.warnf("draw text: font %q not ready (%s)", font.Path(), font.Status())
		return
	}
	c.ops = append(c.ops, drawOp{
		kind:     opText,
		handle:   font,
		pos:      pos.glPoint(c.vp),
		text:     s,
		fontSize: size,
		color:    col,
	})
}

// Len returns the number of queued commands.
func (c *Canvas) Len() int { return len(c.ops) }

func (c *Canvas) reset() { c.ops = c.ops[:0] }

func (c *Canvas) imageReady(h *Handle) bool {
	if h == nil {
		c.warnf("draw image: nil handle")
		return false
	}
	if !h.IsReady() || h.Image() == nil {
		c.warnf("draw image: %q not ready (%s)", h.Path(), h.Status())
		return false
	}
	return true
}

func (c *Canvas) warnf(format string, args ...any) {
	if c.console != nil {
		c.console.Warnf(format, args...)
	}
}
