package plot

import (
	"strings"
)

// Builder turns prepared group summaries into a plotly figure. Purely
// configuration glue: every stylistic rule mirrors the reference plot
// (sides alternation, color families, trace triple per group).
type Builder struct {
	opts        Options
	symbols     []string
	scaleSuffix string
	xcols       []string
	ynames      []string
}

// NewBuilder creates a figure builder. symbols is the marker assignment
// (see MarkerSymbols); scaleSuffix namespaces the violin scale groups so
// joined figures don't share scaling.
func NewBuilder(opts Options, symbols []string, scaleSuffix string, xcols, ynames []string) *Builder {
	return &Builder{
		opts:        opts,
		symbols:     symbols,
		scaleSuffix: scaleSuffix,
		xcols:       xcols,
		ynames:      ynames,
	}
}

// Figure builds the traces and layout for the summaries.
func (b *Builder) Figure(summaries []GroupSummary) *Figure {
	opts := b.opts
	vertical := opts.Orientation == OrientationVertical

	sides, pointPositions, jitter := b.sideLayout()

	// Side alternation is keyed by X1 position in first-appearance order.
	sidesX := map[string]int{}
	sideIndex := 0
	for _, s := range summaries {
		if _, seen := sidesX[s.X1]; !seen {
			sideIndex++
			sidesX[s.X1] = sideIndex
		}
	}

	// Color index per distribution: one per dependent variable when
	// grouping colors by y, otherwise one per summary.
	colorIndexes := map[string]int{}
	colorArrayLength := len(summaries)
	if opts.YColorGroups {
		i := opts.ColorShift
		for _, s := range summaries {
			if _, seen := colorIndexes[s.YName]; !seen {
				i++
				colorIndexes[s.YName] = i
			}
		}
		colorArrayLength = len(colorIndexes)
	}
	if opts.ColorRange > 0 {
		colorArrayLength = opts.ColorRange
	}
	palette := NewPalette(colorArrayLength)

	legendTraceGroupGap := 10.0
	if opts.YColorGroups {
		legendTraceGroupGap = 0
	}

	var traces []Trace
	labelSeen := map[string]bool{}
	i := opts.ColorShift
	for _, s := range summaries {
		var label, legendGroup string
		if opts.YColorGroups {
			i = colorIndexes[s.YName]
			label = s.YName
			legendGroup = s.YName
		} else {
			i++
			label = s.YName + " " + s.XValue
			legendGroup = s.XValue
		}

		showLegend := !labelSeen[label]
		labelSeen[label] = true

		side := sides[i%len(sides)]
		pointPos := pointPositions[i%len(pointPositions)]
		if opts.XSuperimposed {
			side = sides[sidesX[s.X1]%len(sides)]
			pointPos = pointPositions[sidesX[s.X1]%len(pointPositions)]
		}

		points := interface{}(false)
		if opts.ShowPoints && (opts.PointsMaxDisplayed == 0 || opts.PointsMaxDisplayed >= len(s.Values)) {
			points = "all"
		}

		hoverInfo := "x+name+text"
		if vertical {
			hoverInfo = "y+name+text"
		}

		main := Trace{
			Type:        "violin",
			Orientation: opts.Orientation,
			Width:       0,
			Name:        label,
			ShowLegend:  showLegend,
			Points:      points,
			Jitter:      jitter,
			PointPos:    pointPos,
			SpanMode:    opts.SpanMode,
			ScaleMode:   "count",
			ScaleGroup:  s.XValue + b.scaleSuffix,
			LegendGroup: legendGroup,
			Line:        &Line{Width: 1, Color: palette.Line[i%len(palette.Line)]},
			Side:        side,
			HoverOn:     "points+kde+violins",
			HoverInfo:   hoverInfo,
			HoverLabel:  &HoverLabel{BGColor: palette.BandFill[i%len(palette.BandFill)]},
			MeanLine:    &MeanLine{Visible: true, Width: 1, Color: palette.Line[i%len(palette.Line)]},
			FillColor:   palette.Fill[i%len(palette.Fill)],
			Marker: &Marker{
				Opacity: opts.PointsOpacity,
				Size:    9,
				Color:   palette.MarkerFill[i%len(palette.MarkerFill)],
				Line:    &Line{Width: 0.5, Color: palette.MarkerLine[i%len(palette.MarkerLine)]},
				Symbol:  b.symbols[i%len(b.symbols)],
			},
		}
		b.assignValues(&main, s, s.Values)
		traces = append(traces, main)

		if opts.ShowPoints && opts.PointsMaxDisplayed > 0 && opts.PointsMaxDisplayed < len(s.Values) {
			// Separate invisible violin carrying only the capped points.
			capped := Trace{
				Type:        "violin",
				Orientation: opts.Orientation,
				Width:       0,
				Name:        "",
				ShowLegend:  false,
				ScaleGroup:  s.XValue + b.scaleSuffix,
				LegendGroup: legendGroup,
				Points:      "all",
				HoverOn:     "points",
				HoverInfo:   strings.Split(hoverInfo, "+")[0],
				Jitter:      jitter,
				PointPos:    pointPos,
				MeanLine:    &MeanLine{Visible: false},
				Box:         &Box{Visible: false},
				SpanMode:    opts.SpanMode,
				FillColor:   "rgba(0, 0, 0, 0)",
				Line:        &Line{Width: 0, Color: "rgba(0, 0, 0, 0)"},
				Side:        side,
				Marker: &Marker{
					Opacity: opts.PointsOpacity,
					Size:    9,
					Color:   palette.MarkerFill[i%len(palette.MarkerFill)],
					Line:    &Line{Width: 0.5, Color: palette.MarkerLine[i%len(palette.MarkerLine)]},
					Symbol:  b.symbols[i%len(b.symbols)],
				},
			}
			b.assignValues(&capped, s, s.Values[:opts.PointsMaxDisplayed])
			traces = append(traces, capped)
		}

		if s.Band.Defined {
			bandPoints := interface{}(false)
			if opts.MarkOutliers {
				bandPoints = "outliers"
			}
			band := Trace{
				Type:        "violin",
				Orientation: opts.Orientation,
				Width:       0,
				Name:        "",
				ShowLegend:  false,
				ScaleGroup:  s.XValue + b.scaleSuffix,
				LegendGroup: legendGroup,
				HoverInfo:   "none",
				Points:      bandPoints,
				Jitter:      0,
				PointPos:    0,
				MeanLine:    &MeanLine{Visible: false},
				Box: &Box{
					Visible:   opts.ShowBoxplot,
					FillColor: "rgba(0, 0, 0, 0)",
					Width:     0.25,
					Line:      &Line{Width: 0.5, Color: palette.BoxLine[i%len(palette.BoxLine)]},
				},
				SpanMode:  "manual",
				Span:      []float64{s.Band.Low, s.Band.High},
				Line:      &Line{Width: 0},
				FillColor: palette.BandFill[i%len(palette.BandFill)],
				Side:      side,
				Marker: &Marker{ // outliers only
					Size:   11,
					Symbol: b.symbols[i%len(b.symbols)],
					Color:  palette.Outlier[i%len(palette.Outlier)],
					Line:   &Line{Width: 0.5, Color: palette.MarkerLine[i%len(palette.MarkerLine)]},
				},
			}
			b.assignValues(&band, s, s.Values)
			traces = append(traces, band)
		}
	}

	return &Figure{
		Data:   traces,
		Layout: b.layout(legendTraceGroupGap),
	}
}

// assignValues places the sample on the value axis and the group label on
// the categorical axis, per orientation.
func (b *Builder) assignValues(tr *Trace, s GroupSummary, values []float64) {
	if b.opts.Orientation == OrientationVertical {
		tr.X0 = s.X0
		tr.Y = values
	} else {
		tr.Y0 = s.X0
		tr.X = values
	}
}

// sideLayout resolves the side/point-position alternation for the
// configured Side setting.
func (b *Builder) sideLayout() (sides []string, pointPositions []float64, jitter float64) {
	opts := b.opts
	jitter = 0.3
	switch opts.Side {
	case SideBoth:
		sides = []string{"both"}
		pointPositions = []float64{0}
		jitter = 0.4
	case SideAlt:
		if opts.AltSidesFlip {
			sides = []string{"positive", "negative"}
			pointPositions = []float64{-opts.PointsDistance, opts.PointsDistance}
		} else {
			sides = []string{"negative", "positive"}
			pointPositions = []float64{opts.PointsDistance, -opts.PointsDistance}
		}
	case SidePos:
		sides = []string{"positive"}
		pointPositions = []float64{-opts.PointsDistance}
	case SideNeg:
		sides = []string{"negative"}
		pointPositions = []float64{opts.PointsDistance}
	}

	if opts.PointsOverDens && opts.Side != SideBoth {
		for i := range pointPositions {
			pointPositions[i] = -pointPositions[i]
		}
	}
	return sides, pointPositions, jitter
}

func (b *Builder) layout(legendTraceGroupGap float64) Layout {
	opts := b.opts
	horizontal := opts.Orientation == OrientationHorizontal

	title := opts.Title
	if title == "" {
		title = strings.Join(b.xcols, ", ") + " ~ " + strings.Join(b.ynames, ", ")
	}

	xTitle := strings.Join(b.xcols, ", ")
	yTitle := strings.Join(b.ynames, ", ")
	if horizontal {
		xTitle, yTitle = yTitle, xTitle
	}

	return Layout{
		PaperBGColor:   "#eeeeff",
		PlotBGColor:    "#ffffff",
		ShowLegend:     true,
		ViolinGap:      0,
		ViolinGroupGap: 0,
		ViolinMode:     "overlay",
		Title:          Title{Text: title, X: 0.5},
		Margin:         Margin{L: 80, R: 10, T: 10, B: 40},
		Legend:         Legend{X: 1.1, Y: 1.1, XAnchor: "right", TraceGroupGap: legendTraceGroupGap},
		XAxis: Axis{
			ShowLine: true, ShowTickLabels: true, ZeroLine: true, Visible: true,
			ShowGrid: !horizontal,
			Title:    xTitle,
		},
		YAxis: Axis{
			ShowLine: true, ShowTickLabels: true, ZeroLine: true, Visible: true,
			ShowGrid: horizontal,
			Side:     "left",
			Title:    yTitle,
		},
	}
}
