package motview

// This file draws the root track of a motion: where the actor's root sits,
// frame by frame, according to the position channels.

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"io"

	"github.com/bradfitz/iter"
	"github.com/ericpauley/go-quantize/quantize"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-afteralive/mot"
)

const margin = 4

var (
	backgroundColor = color.RGBA{0x20, 0x20, 0x28, 0xFF}
	axisColor       = color.RGBA{0x50, 0x50, 0x60, 0xFF}
	lineColor       = color.RGBA{0x60, 0x90, 0xC0, 0xFF}
	pointColor      = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	keyFrameColor   = color.RGBA{0xE0, 0x40, 0x40, 0xFF}
	currentColor    = color.RGBA{0xFF, 0xD0, 0x30, 0xFF}
)

// trackPoint is the root offset in effect at a frame.
type trackPoint struct {
	frame uint8
	x, y  int
}

// track returns the root offset for every frame that sets a position. A frame
// setting only one axis keeps the previous value of the other, starting at 0.
func track(m *mot.Motion) []trackPoint {
	var pts []trackPoint
	x, y := 0, 0
	for f := range iter.N(m.FrameSpan()) {
		frame := uint8(f)
		vx, okX := m.PosX[frame]
		vy, okY := m.PosY[frame]
		if !okX && !okY {
			continue
		}
		if okX {
			x = int(vx)
		}
		if okY {
			y = int(vy)
		}
		pts = append(pts, trackPoint{frame: frame, x: x, y: y})
	}
	return pts
}

// projection maps motion coordinates onto a size x size canvas, keeping the
// origin and every track point visible and the aspect ratio intact.
type projection struct {
	minX, minY int
	scale      float64
}

func newProjection(pts []trackPoint, size int) projection {
	minX, minY, maxX, maxY := 0, 0, 0, 0
	for _, p := range pts {
		minX, maxX = min(minX, p.x), max(maxX, p.x)
		minY, maxY = min(minY, p.y), max(maxY, p.y)
	}
	extent := max(maxX-minX, maxY-minY, 1)
	avail := max(size-2*margin-1, 1)
	return projection{minX: minX, minY: minY, scale: float64(avail) / float64(extent)}
}

func (pr projection) point(x, y int) image.Point {
	return image.Pt(
		margin+int(float64(x-pr.minX)*pr.scale+0.5),
		margin+int(float64(y-pr.minY)*pr.scale+0.5),
	)
}

func drawLine(img *image.RGBA, a, b image.Point, c color.Color) {
	dx, dy := abs(b.X-a.X), -abs(b.Y-a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	e := dx + dy
	for {
		img.Set(a.X, a.Y, c)
		if a == b {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			a.X += sx
		}
		if e2 <= dx {
			e += dx
			a.Y += sy
		}
	}
}

func drawDot(img *image.RGBA, p image.Point, r int, c color.Color) {
	draw.Draw(img, image.Rect(p.X-r, p.Y-r, p.X+r+1, p.Y+r+1), image.NewUniform(c), image.Point{}, draw.Src)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// renderTrack draws the track up to and including point index upto; upto < 0
// draws all of it without marking a current frame.
func renderTrack(m *mot.Motion, pts []trackPoint, pr projection, size, upto int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	o := pr.point(0, 0)
	drawLine(img, image.Pt(0, o.Y), image.Pt(size-1, o.Y), axisColor)
	drawLine(img, image.Pt(o.X, 0), image.Pt(o.X, size-1), axisColor)

	last := len(pts) - 1
	if upto >= 0 && upto < last {
		last = upto
	}
	for i := 1; i <= last; i++ {
		drawLine(img, pr.point(pts[i-1].x, pts[i-1].y), pr.point(pts[i].x, pts[i].y), lineColor)
	}
	for i := 0; i <= last; i++ {
		c := pointColor
		if _, ok := m.KeyFrames[pts[i].frame]; ok {
			c = keyFrameColor
		}
		drawDot(img, pr.point(pts[i].x, pts[i].y), 1, c)
	}
	if upto >= 0 && last >= 0 {
		drawDot(img, pr.point(pts[last].x, pts[last].y), 2, currentColor)
	}
	return img
}

// RenderTrack draws the whole root track of the motion on a size x size
// image. Frames carrying a key frame value are drawn in red.
func RenderTrack(m *mot.Motion, size int) *image.RGBA {
	pts := track(m)
	return renderTrack(m, pts, newProjection(pts, size), size, -1)
}

// RenderFrames returns one image per positioned frame, each showing the track
// so far with the current position highlighted. A motion without positions
// yields a single blank image.
func RenderFrames(m *mot.Motion, size int) []*image.RGBA {
	pts := track(m)
	pr := newProjection(pts, size)
	if len(pts) == 0 {
		return []*image.RGBA{renderTrack(m, pts, pr, size, -1)}
	}
	imgs := make([]*image.RGBA, len(pts))
	for i := range pts {
		imgs[i] = renderTrack(m, pts, pr, size, i)
	}
	return imgs
}

// EncodeGIF writes RenderFrames as an animated GIF. delay is in 100ths of a
// second per frame.
func EncodeGIF(w io.Writer, m *mot.Motion, size, delay int) error {
	q := quantize.MedianCutQuantizer{}
	g := &gif.GIF{}
	for _, img := range RenderFrames(m, size) {
		palette := q.Quantize(make(color.Palette, 0, 64), img)
		pal := image.NewPaletted(img.Bounds(), palette)
		draw.Draw(pal, img.Bounds(), img, image.Point{}, draw.Src)

		g.Image = append(g.Image, pal)
		g.Delay = append(g.Delay, delay)
		g.Disposal = append(g.Disposal, gif.DisposalNone)
	}
	return errors.Wrap(gif.EncodeAll(w, g), "encoding track gif")
}

// EncodePNG writes img as a PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return errors.Wrap(png.Encode(w, img), "encoding track png")
}

// Thumbnail scales img down to fit maxW x maxH, keeping its aspect ratio.
// Images already small enough are returned unchanged.
func Thumbnail(img image.Image, maxW, maxH int) image.Image {
	if maxW <= 0 || maxH <= 0 {
		return img
	}
	return resize.Thumbnail(uint(maxW), uint(maxH), img, resize.Lanczos3)
}
