package plot

import "math/rand/v2"

var markerSymbols = []string{
	"circle", "diamond", "cross", "triangle-up",
	"triangle-left", "triangle-right",
	"triangle-down", "pentagon", "hexagon", "star",
	"hexagram", "star-triangle-up",
	"star-square", "star-diamond",
}

// MarkerSymbols returns the symbol assignment for the distributions. A
// non-empty override is used as-is; otherwise the built-in symbols are
// shuffled with r so each plot gets a fresh but reproducible order. The
// cosmetic shuffle stream is separate from the statistical one.
func MarkerSymbols(override []string, r *rand.Rand) []string {
	if len(override) > 0 {
		return override
	}
	symbols := make([]string, len(markerSymbols))
	copy(symbols, markerSymbols)
	r.Shuffle(len(symbols), func(i, j int) {
		symbols[i], symbols[j] = symbols[j], symbols[i]
	})
	return symbols
}
