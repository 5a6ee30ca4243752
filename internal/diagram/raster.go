package diagram

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	ink   = color.RGBA{R: 0x1f, G: 0x1f, B: 0x1f, A: 0xff}
	paper = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Raster is a Canvas backed by an in-memory RGBA image.
//
// World coordinates are mapped with the same scale on both axes, so circles
// stay round. Raster implements drivers.Displayer, which is what tinyfont
// renders text into.
type Raster struct {
	img     *image.RGBA
	bounds  Bounds
	scale   float64
	originX int // Pixel column of bounds.MinX.
	originY int // Pixel row of bounds.MaxY.
	font    tinyfont.Fonter
	clipped int
}

var _ drivers.Displayer = (*Raster)(nil)

// NewRaster creates a blank raster sized so that l, its labels and title all fit.
func NewRaster(l *Layout, title string) (*Raster, error) {
	scale := l.Config.PixelsPerUnit
	if !(scale > 0) {
		return nil, fmt.Errorf("diagram: %w: pixels per unit %v", ErrInvalidConfig, scale)
	}

	font := tinyfont.Fonter(&proggy.TinySZ8pt7b)
	lineHeight := int(font.GetYAdvance())

	// Labels are centred on their layer and may overhang the world bounds.
	margin := 4
	for _, layer := range l.Layers {
		margin = max(margin, textWidth(font, layer.Label)/2+4)
	}

	titleBand := 0
	if title != "" {
		titleBand = lineHeight + 8
	}

	b := l.Bounds()
	contentW := int(math.Ceil(b.Width() * scale))
	contentH := int(math.Ceil(b.Height() * scale))

	width := contentW + 2*margin
	if tw := textWidth(font, title) + 8; tw > width {
		width = tw
	}
	originY := titleBand + lineHeight
	height := originY + contentH + margin

	if width > math.MaxInt16 || height > math.MaxInt16 {
		return nil, fmt.Errorf("diagram: image of %dx%d pixels is too large", width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(paper), image.Point{}, draw.Src)

	return &Raster{
		img:     img,
		bounds:  b,
		scale:   scale,
		originX: (width - contentW) / 2,
		originY: originY,
		font:    font,
	}, nil
}

// Render creates a raster sized for l and draws l onto it.
func Render(l *Layout, title string) (*Raster, error) {
	r, err := NewRaster(l, title)
	if err != nil {
		return nil, err
	}
	Draw(r, l, title)
	return r, nil
}

// Size implements drivers.Displayer.
func (r *Raster) Size() (x, y int16) {
	b := r.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

// SetPixel implements drivers.Displayer. Pixels outside the image are
// dropped and counted; see Clipped.
func (r *Raster) SetPixel(x, y int16, c color.RGBA) {
	r.set(int(x), int(y), c)
}

// Display implements drivers.Displayer. The image is always up to date.
func (r *Raster) Display() error {
	return nil
}

// Clipped returns how many pixels fell outside the image while drawing.
func (r *Raster) Clipped() int {
	return r.clipped
}

// Image returns the rendered image.
func (r *Raster) Image() image.Image {
	return r.img
}

// WritePNG encodes the rendered image as PNG.
func (r *Raster) WritePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("diagram: encode png: %w", err)
	}
	return nil
}

// Circle implements Canvas using the midpoint circle algorithm.
func (r *Raster) Circle(center Point, radius float64) {
	cx, cy := r.toPixel(center)
	rad := int(math.Round(radius * r.scale))

	x, y := rad, 0
	d := 1 - rad
	for x >= y {
		r.set(cx+x, cy+y, ink)
		r.set(cx+y, cy+x, ink)
		r.set(cx-y, cy+x, ink)
		r.set(cx-x, cy+y, ink)
		r.set(cx-x, cy-y, ink)
		r.set(cx-y, cy-x, ink)
		r.set(cx+y, cy-x, ink)
		r.set(cx+x, cy-y, ink)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// Line implements Canvas using Bresenham's algorithm.
func (r *Raster) Line(from, to Point) {
	x0, y0 := r.toPixel(from)
	x1, y1 := r.toPixel(to)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	e := dx + dy
	for {
		r.set(x0, y0, ink)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Text implements Canvas.
func (r *Raster) Text(at Point, s string) {
	x, y := r.toPixel(at)
	x -= textWidth(r.font, s) / 2
	tinyfont.WriteLine(r, r.font, int16(x), int16(y), s, ink)
}

// Title implements Canvas. The title is centred in the band above the diagram.
func (r *Raster) Title(s string) {
	x := (r.img.Bounds().Dx() - textWidth(r.font, s)) / 2
	y := int(r.font.GetYAdvance()) + 2
	tinyfont.WriteLine(r, r.font, int16(x), int16(y), s, ink)
}

// toPixel maps a world point to image coordinates (y grows downwards).
func (r *Raster) toPixel(p Point) (int, int) {
	x := r.originX + int(math.Round((p.X-r.bounds.MinX)*r.scale))
	y := r.originY + int(math.Round((r.bounds.MaxY-p.Y)*r.scale))
	return x, y
}

func (r *Raster) set(x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(r.img.Rect) {
		r.clipped++
		return
	}
	r.img.SetRGBA(x, y, c)
}

func textWidth(f tinyfont.Fonter, s string) int {
	if s == "" {
		return 0
	}
	_, outbox := tinyfont.LineWidth(f, s)
	return int(outbox)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
