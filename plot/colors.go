package plot

import "fmt"

// Palette holds the per-distribution color families, each indexed by the
// same color index modulo its length. Hues are stepped across the
// spectrum to maximise difference; saturation/lightness/alpha vary per
// role.
type Palette struct {
	Fill       []string
	Line       []string
	MarkerLine []string
	MarkerFill []string
	BandFill   []string
	BoxLine    []string
	Outlier    []string
}

// NewPalette builds a palette of at least length hues.
func NewPalette(length int) Palette {
	if length < 1 {
		length = 1
	}
	colorStart, colorEnd := 0, 330
	if length > 12 {
		colorEnd = 350
	}
	step := colorEnd / length
	if step < 1 {
		step = 1
	}

	var p Palette
	for hue := colorStart; hue <= colorEnd; hue += step {
		p.Fill = append(p.Fill, fmt.Sprintf("hsla(%d, 50%%, 50%%, 0.3)", hue))
		p.Line = append(p.Line, fmt.Sprintf("hsla(%d, 20%%, 20%%, 0.8)", hue))
		p.MarkerLine = append(p.MarkerLine, fmt.Sprintf("hsla(%d, 20%%, 20%%, 0.4)", hue))
		p.MarkerFill = append(p.MarkerFill, fmt.Sprintf("hsla(%d, 70%%, 70%%, 1)", hue))
		p.BandFill = append(p.BandFill, fmt.Sprintf("hsla(%d, 45%%, 45%%, 0.4)", hue))
		p.BoxLine = append(p.BoxLine, fmt.Sprintf("hsla(%d, 30%%, 30%%, 1)", hue))
		p.Outlier = append(p.Outlier, fmt.Sprintf("hsla(%d, 50%%, 50%%, 0.9)", hue))
	}
	return p
}
