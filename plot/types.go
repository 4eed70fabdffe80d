package plot

import "cmplot/domain/interval"

// GroupSummary is one prepared (x-group, y-variable) pair: the raw sample
// plus its inference band, everything the chart backend needs to draw
// density curve, points, boxplot and band for the group.
type GroupSummary struct {
	// XValue is the joined categorical value, e.g. "setosa" or "yes&male".
	XValue string
	// XName joins the grouping column names.
	XName string
	// YName is the display label of the dependent variable.
	YName string
	// X0 is the axis position label; X1 keys side alternation when
	// superimposing.
	X0 string
	X1 string
	// Values is the group's raw sample.
	Values []float64
	// Band is the interval estimate; undefined suppresses the band trace.
	Band interval.Interval
}

// Line styles a trace or marker outline.
type Line struct {
	Width float64 `json:"width"`
	Color string  `json:"color,omitempty"`
}

// Marker styles the raw data points (and outliers on the band trace).
type Marker struct {
	Opacity float64 `json:"opacity,omitempty"`
	Size    float64 `json:"size,omitempty"`
	Color   string  `json:"color,omitempty"`
	Line    *Line   `json:"line,omitempty"`
	Symbol  string  `json:"symbol,omitempty"`
}

// MeanLine configures the mean line inside the density curve.
type MeanLine struct {
	Visible bool    `json:"visible"`
	Width   float64 `json:"width,omitempty"`
	Color   string  `json:"color,omitempty"`
}

// Box configures the mini boxplot inside the band trace.
type Box struct {
	Visible   bool    `json:"visible"`
	FillColor string  `json:"fillcolor,omitempty"`
	Width     float64 `json:"width,omitempty"`
	Line      *Line   `json:"line,omitempty"`
}

// HoverLabel styles the hover tooltip.
type HoverLabel struct {
	BGColor string `json:"bgcolor,omitempty"`
}

// Trace is a plotly violin trace. Points is "all", "outliers" or false,
// matching plotly's union-typed field.
type Trace struct {
	Type        string      `json:"type"`
	Orientation string      `json:"orientation,omitempty"`
	X0          string      `json:"x0,omitempty"`
	Y0          string      `json:"y0,omitempty"`
	X           []float64   `json:"x,omitempty"`
	Y           []float64   `json:"y,omitempty"`
	Width       float64     `json:"width"`
	Name        string      `json:"name"`
	ShowLegend  bool        `json:"showlegend"`
	Points      interface{} `json:"points"`
	Jitter      float64     `json:"jitter"`
	PointPos    float64     `json:"pointpos"`
	SpanMode    string      `json:"spanmode,omitempty"`
	Span        []float64   `json:"span,omitempty"`
	ScaleMode   string      `json:"scalemode,omitempty"`
	ScaleGroup  string      `json:"scalegroup,omitempty"`
	LegendGroup string      `json:"legendgroup,omitempty"`
	Line        *Line       `json:"line,omitempty"`
	Side        string      `json:"side,omitempty"`
	HoverOn     string      `json:"hoveron,omitempty"`
	HoverInfo   string      `json:"hoverinfo,omitempty"`
	HoverLabel  *HoverLabel `json:"hoverlabel,omitempty"`
	MeanLine    *MeanLine   `json:"meanline,omitempty"`
	FillColor   string      `json:"fillcolor,omitempty"`
	Marker      *Marker     `json:"marker,omitempty"`
	Box         *Box        `json:"box,omitempty"`
}

// Title is the layout title.
type Title struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
}

// Axis configures one layout axis.
type Axis struct {
	ShowLine       bool   `json:"showline"`
	ShowTickLabels bool   `json:"showticklabels"`
	ZeroLine       bool   `json:"zeroline"`
	Visible        bool   `json:"visible"`
	ShowGrid       bool   `json:"showgrid"`
	Side           string `json:"side,omitempty"`
	Title          string `json:"title,omitempty"`
}

// Legend positions the legend.
type Legend struct {
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	XAnchor       string  `json:"xanchor"`
	TraceGroupGap float64 `json:"tracegroupgap"`
}

// Margin is the layout margin in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// Layout is the plotly layout for the figure.
type Layout struct {
	PaperBGColor   string  `json:"paper_bgcolor"`
	PlotBGColor    string  `json:"plot_bgcolor"`
	ShowLegend     bool    `json:"showlegend"`
	ViolinGap      float64 `json:"violingap"`
	ViolinGroupGap float64 `json:"violingroupgap"`
	ViolinMode     string  `json:"violinmode"`
	Title          Title   `json:"title"`
	Margin         Margin  `json:"margin"`
	Legend         Legend  `json:"legend"`
	XAxis          Axis    `json:"xaxis"`
	YAxis          Axis    `json:"yaxis"`
}

// Figure bundles traces and layout, ready for plotly.newPlot.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}
