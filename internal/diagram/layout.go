// Package diagram lays out and draws left-to-right diagrams of fully
// connected network topologies.
//
// Layout is computed from the layer sizes alone, before anything is drawn;
// drawing goes through an explicit Canvas.
package diagram

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by NewLayout.
var (
	ErrInvalidLayers = errors.New("invalid layer sizes")
	ErrInvalidConfig = errors.New("invalid diagram config")
)

// Config controls the geometry of a diagram, in world units.
type Config struct {
	LayerSpacing  float64 // Horizontal distance between consecutive layers.
	NeuronSpacing float64 // Vertical distance between neurons of a layer.
	NeuronRadius  float64 // Radius of a neuron circle.
	PadFraction   float64 // Padding added on each side, as a fraction of the content span.
	PixelsPerUnit float64 // Raster scale; the same on both axes.
}

// DefaultConfig returns the classic layout: layers 6 apart, neurons 2 apart, radius 0.5.
func DefaultConfig() Config {
	return Config{
		LayerSpacing:  6,
		NeuronSpacing: 2,
		NeuronRadius:  0.5,
		PadFraction:   0.1,
		PixelsPerUnit: 40,
	}
}

func (c Config) validate() error {
	switch {
	case !(c.LayerSpacing > 0):
		return fmt.Errorf("diagram: %w: layer spacing %v", ErrInvalidConfig, c.LayerSpacing)
	case !(c.NeuronSpacing > 0):
		return fmt.Errorf("diagram: %w: neuron spacing %v", ErrInvalidConfig, c.NeuronSpacing)
	case !(c.NeuronRadius > 0):
		return fmt.Errorf("diagram: %w: neuron radius %v", ErrInvalidConfig, c.NeuronRadius)
	case c.PadFraction < 0:
		return fmt.Errorf("diagram: %w: pad fraction %v", ErrInvalidConfig, c.PadFraction)
	}
	return nil
}

// Point is a position in world coordinates (y grows upwards).
type Point struct {
	X, Y float64
}

// Layer is one column of neurons.
type Layer struct {
	Label   string  // "Input", "Hidden N" or "Output".
	LabelAt Point   // Anchor of the label, centred horizontally.
	X       float64 // Horizontal position shared by all neurons.
	Neurons []Point // Neuron centres, bottom to top.
}

// Edge connects two neurons of adjacent layers. The endpoints are already
// trimmed to the circle boundaries.
type Edge struct {
	From, To Point
}

// Bounds is an axis-aligned rectangle in world coordinates.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns MaxX - MinX.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Contains reports whether p lies inside b (edges included).
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Layout is the complete geometry of a diagram.
type Layout struct {
	Config Config
	Layers []Layer
	Edges  []Edge
}

// NewLayout computes the geometry for the given layer sizes.
//
// Layer i sits at x = i·LayerSpacing; its neurons are centred vertically on
// y = 0. Every neuron of layer i-1 is connected to every neuron of layer i.
func NewLayout(sizes []int, cfg Config) (*Layout, error) {
	if len(sizes) == 0 {
		return nil, fmt.Errorf("diagram: %w: no layers", ErrInvalidLayers)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	for i, n := range sizes {
		if n <= 0 {
			return nil, fmt.Errorf("diagram: %w: layer %d has %d neurons", ErrInvalidLayers, i, n)
		}
	}

	l := &Layout{Config: cfg, Layers: make([]Layer, len(sizes))}
	for i, n := range sizes {
		x := float64(i) * cfg.LayerSpacing
		startY := -cfg.NeuronSpacing * float64(n-1) / 2

		neurons := make([]Point, n)
		for j := range neurons {
			neurons[j] = Point{X: x, Y: startY + float64(j)*cfg.NeuronSpacing}
		}
		topY := neurons[n-1].Y

		l.Layers[i] = Layer{
			Label:   layerLabel(i, len(sizes)),
			LabelAt: Point{X: x, Y: topY + cfg.NeuronSpacing/2},
			X:       x,
			Neurons: neurons,
		}

		if i > 0 {
			for _, to := range neurons {
				for _, from := range l.Layers[i-1].Neurons {
					l.Edges = append(l.Edges, connect(from, to, cfg.NeuronRadius))
				}
			}
		}
	}
	return l, nil
}

// layerLabel names layer i of n.
func layerLabel(i, n int) string {
	switch {
	case i == 0:
		return "Input"
	case i == n-1:
		return "Output"
	default:
		return fmt.Sprintf("Hidden %d", i)
	}
}

// connect returns the segment between two circles of radius r, starting and
// ending on their boundaries.
func connect(a, b Point, r float64) Edge {
	theta := math.Atan2(b.Y-a.Y, b.X-a.X)
	dx, dy := r*math.Cos(theta), r*math.Sin(theta)
	return Edge{
		From: Point{X: a.X + dx, Y: a.Y + dy},
		To:   Point{X: b.X - dx, Y: b.Y - dy},
	}
}

// Bounds returns a rectangle that contains every neuron circle and every
// label anchor, padded by PadFraction of the content span on each side.
// Padding never drops below one neuron radius, so single-neuron and
// single-layer diagrams are not clipped either.
func (l *Layout) Bounds() Bounds {
	r := l.Config.NeuronRadius
	b := Bounds{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, layer := range l.Layers {
		for _, n := range layer.Neurons {
			b.MinX = math.Min(b.MinX, n.X-r)
			b.MaxX = math.Max(b.MaxX, n.X+r)
			b.MinY = math.Min(b.MinY, n.Y-r)
			b.MaxY = math.Max(b.MaxY, n.Y+r)
		}
		b.MaxY = math.Max(b.MaxY, layer.LabelAt.Y)
	}

	padX := math.Max(b.Width()*l.Config.PadFraction, r)
	padY := math.Max(b.Height()*l.Config.PadFraction, r)
	b.MinX -= padX
	b.MaxX += padX
	b.MinY -= padY
	b.MaxY += padY
	return b
}

// Sizes returns the number of neurons in each layer.
func (l *Layout) Sizes() []int {
	sizes := make([]int, len(l.Layers))
	for i, layer := range l.Layers {
		sizes[i] = len(layer.Neurons)
	}
	return sizes
}
