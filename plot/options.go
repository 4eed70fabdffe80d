package plot

import (
	"fmt"

	"cmplot/domain/core"
	"cmplot/domain/interval"
)

// Orientation of the plot.
const (
	OrientationHorizontal = "h"
	OrientationVertical   = "v"
)

// Sides the kernel density curves rise towards.
const (
	SideBoth = "both"
	SideAlt  = "alt"
	SidePos  = "pos"
	SideNeg  = "neg"
)

// Span modes for the density curve extremities.
const (
	SpanSoft = "soft"
	SpanHard = "hard"
)

// Options customizes the figure, both in content and in form. The zero
// value is not usable; start from DefaultOptions.
type Options struct {
	// Orientation is "h" or "v".
	Orientation string
	// XSuperimposed plots every categorical value at the same position
	// instead of separate ones; useful with SideAlt for asymmetrical
	// comparisons of categorical combinations.
	XSuperimposed bool
	// XLabels overrides labelling/placement of the categorical plots,
	// cycled; only relevant with XSuperimposed.
	XLabels []string
	// YLabels overrides the dependent variable labels, cycled.
	YLabels []string
	// Title overrides the automatic "x1, x2 ~ y1, y2" plot title.
	Title string
	// Side is one of both|alt|pos|neg.
	Side string
	// AltSidesFlip flips the alternation order when Side is "alt".
	AltSidesFlip bool
	// YColorGroups colors by dependent variable; false assigns a fresh
	// color to every categorical value instead.
	YColorGroups bool
	// SpanMode is "soft" or "hard".
	SpanMode string
	// ShowPoints draws the cloud of raw data points.
	ShowPoints bool
	// PointsOverDens plots the raw points over the density curves rather
	// than on the opposite side.
	PointsOverDens bool
	// PointsOpacity is the raw point opacity in [0, 1].
	PointsOpacity float64
	// MarkOutliers marks boxplot outliers on the band trace.
	MarkOutliers bool
	// ColorRange overrides the palette length when joining plots.
	ColorRange int
	// ColorShift skips colors at the start of the palette.
	ColorShift int
	// PointShapes overrides the marker symbol per distribution; when
	// empty a seeded shuffle of the built-in symbols is used.
	PointShapes []string
	// PointsDistance positions points between density base (0) and top (1).
	PointsDistance float64
	// PointsMaxDisplayed caps the number of drawn points; 0 means all.
	PointsMaxDisplayed int
	// ShowBoxplot displays the mini boxplot on the band trace.
	ShowBoxplot bool

	// Inference selects the interval estimator for the band around the mean.
	Inference interval.Method
	// ConfLevel is the confidence level for MethodCI and the credible
	// mass for MethodHDI.
	ConfLevel float64
	// HDIIterations is the Monte Carlo draw count for MethodHDI.
	HDIIterations int
	// Seed pins the random streams (Monte Carlo draws, marker shuffle).
	Seed int64
}

// DefaultOptions returns the standard defaults.
func DefaultOptions() Options {
	return Options{
		Orientation:    OrientationHorizontal,
		Side:           SideAlt,
		YColorGroups:   true,
		SpanMode:       SpanSoft,
		ShowPoints:     true,
		PointsOpacity:  0.4,
		MarkOutliers:   true,
		PointsDistance: 0.6,
		ShowBoxplot:    true,
		Inference:      interval.MethodHDI,
		ConfLevel:      interval.DefaultLevel,
		HDIIterations:  interval.DefaultIterations,
	}
}

// Validate rejects malformed option combinations up front so a bad method
// name or side never reaches trace construction.
func (o Options) Validate() error {
	if o.Orientation != OrientationHorizontal && o.Orientation != OrientationVertical {
		return core.NewInvalidArgumentError("orientation must be h or v")
	}
	switch o.Side {
	case SideBoth, SideAlt, SidePos, SideNeg:
	default:
		return core.NewInvalidArgumentError(fmt.Sprintf("side must be one of both|alt|pos|neg, got %q", o.Side))
	}
	if o.SpanMode != SpanSoft && o.SpanMode != SpanHard {
		return core.NewInvalidArgumentError("spanmode must be soft or hard")
	}
	if o.PointsOpacity < 0 || o.PointsOpacity > 1 {
		return core.NewInvalidArgumentError("points opacity must be in [0, 1]")
	}
	if o.Inference != interval.MethodNone && (o.ConfLevel <= 0 || o.ConfLevel >= 1) {
		return core.NewInvalidArgumentError("confidence level must be in (0, 1)")
	}
	return o.Inference.Validate()
}
