package diagram

// DefaultTitle is the caption drawn above every diagram.
const DefaultTitle = "Neural Network (left -> right)"

// Canvas is the drawing context a Layout is rendered onto.
// Coordinates are world coordinates (y grows upwards).
type Canvas interface {
	// Circle draws an unfilled circle.
	Circle(center Point, radius float64)

	// Line draws a straight segment.
	Line(from, to Point)

	// Text draws s horizontally centred on at, with its baseline at at.Y.
	Text(at Point, s string)

	// Title draws the diagram caption.
	Title(s string)
}

// Draw renders l onto c: connections first, then neurons, then layer labels
// and finally the title. An empty title is not drawn.
func Draw(c Canvas, l *Layout, title string) {
	for _, e := range l.Edges {
		c.Line(e.From, e.To)
	}
	for _, layer := range l.Layers {
		for _, n := range layer.Neurons {
			c.Circle(n, l.Config.NeuronRadius)
		}
		if layer.Label != "" {
			c.Text(layer.LabelAt, layer.Label)
		}
	}
	if title != "" {
		c.Title(title)
	}
}
