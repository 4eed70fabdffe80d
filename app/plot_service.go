package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"cmplot/domain/core"
	"cmplot/domain/dataset"
	"cmplot/domain/inference"
	"cmplot/domain/interval"
	"cmplot/plot"
	"cmplot/ports"
)

// PlotService builds Cloudy Mountain figures: it groups the frame by the
// categorical columns, computes one inference band per (x-group,
// y-variable) pair, and hands the prepared summaries to the chart
// builder.
type PlotService struct {
	rng ports.RNG
}

func NewPlotService(rng ports.RNG) *PlotService {
	return &PlotService{rng: rng}
}

// PlotRequest defines the inputs for one figure.
type PlotRequest struct {
	Frame *dataset.Frame
	// XCols are the categorical independent variable columns; required.
	XCols []string
	// YCols are the continuous dependent variable columns; when empty,
	// every non-x column of the frame is plotted.
	YCols []string
	// RunID namespaces violin scale groups and seeds the per-group RNG
	// streams; a fresh id is generated when empty. Pin it together with
	// Options.Seed for fully reproducible figures.
	RunID string

	Options plot.Options
}

// BuildFigure validates the request, computes the per-group interval
// bands (in parallel; each group has its own deterministic stream) and
// assembles the figure. A group whose estimator fails is drawn without a
// band and logged, never aborting the whole plot.
func (s *PlotService) BuildFigure(ctx context.Context, req PlotRequest) (*plot.Figure, error) {
	xcols, ycols, err := s.resolveColumns(req)
	if err != nil {
		return nil, err
	}
	opts := req.Options
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	runID := req.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	groups, err := req.Frame.GroupBy(xcols)
	if err != nil {
		return nil, err
	}

	summaries, err := s.collectSummaries(req.Frame, groups, xcols, ycols, opts)
	if err != nil {
		return nil, err
	}

	if err := s.computeBands(ctx, summaries, opts, runID); err != nil {
		return nil, err
	}

	symbols := plot.MarkerSymbols(opts.PointShapes, s.rng.SeededStream("markers", opts.Seed))
	builder := plot.NewBuilder(opts, symbols, runID, xcols, displayNames(summaries))
	return builder.Figure(summaries), nil
}

// resolveColumns applies the column rules: x is mandatory and
// must exist, y defaults to every other column, and the two sets must not
// overlap.
func (s *PlotService) resolveColumns(req PlotRequest) (xcols, ycols []string, err error) {
	if req.Frame == nil {
		return nil, nil, core.NewInvalidArgumentError("a data frame is required")
	}
	if len(req.XCols) == 0 {
		return nil, nil, core.NewInvalidArgumentError("you need to specify at least one x column, e.g. Species")
	}
	if missing := req.Frame.MissingColumns(req.XCols); len(missing) > 0 {
		return nil, nil, core.NewInvalidArgumentError(
			fmt.Sprintf("x columns not present in the frame: %s", strings.Join(missing, ", ")))
	}

	xset := map[string]bool{}
	for _, c := range req.XCols {
		xset[c] = true
	}

	if len(req.YCols) == 0 {
		for _, c := range req.Frame.Columns {
			if !xset[c] {
				ycols = append(ycols, c)
			}
		}
		if len(ycols) == 0 {
			return nil, nil, core.NewInvalidArgumentError("no y columns left after removing x columns")
		}
		return req.XCols, ycols, nil
	}

	if missing := req.Frame.MissingColumns(req.YCols); len(missing) > 0 {
		return nil, nil, core.NewInvalidArgumentError(
			fmt.Sprintf("y columns not present in the frame: %s", strings.Join(missing, ", ")))
	}
	for _, c := range req.YCols {
		if xset[c] {
			return nil, nil, core.NewInvalidArgumentError("x and y must not contain the same column(s)")
		}
	}
	return req.XCols, req.YCols, nil
}

// collectSummaries extracts one summary per (group, y column) pair,
// resolving display labels and the superimposed positioning rules.
func (s *PlotService) collectSummaries(frame *dataset.Frame, groups []dataset.Group, xcols, ycols []string, opts plot.Options) ([]plot.GroupSummary, error) {
	xname := strings.Join(xcols, "&")

	var summaries []plot.GroupSummary
	xLabelOverride := map[string]string{}
	xLabelIndex := 0
	yLabelIndex := 0
	for _, g := range groups {
		for _, ycol := range ycols {
			values, err := frame.NumericValues(ycol, g.Indices)
			if err != nil {
				return nil, err
			}

			yname := ycol
			if len(opts.YLabels) > 0 {
				yname = opts.YLabels[yLabelIndex%len(opts.YLabels)]
				yLabelIndex++
				log.Printf("[PlotService] ylabel %s -> %s", ycol, yname)
			}

			xvalue := g.Label()
			x0, x1 := xvalue, xvalue
			if opts.XSuperimposed {
				thisLabel := g.Values[0]
				if len(opts.XLabels) == 0 {
					x0 = " "
					if len(xcols) > 1 {
						x0 = thisLabel
					}
				} else {
					if _, seen := xLabelOverride[thisLabel]; !seen {
						xLabelOverride[thisLabel] = opts.XLabels[xLabelIndex%len(opts.XLabels)]
						xLabelIndex++
						log.Printf("[PlotService] xlabel %s -> %s", thisLabel, xLabelOverride[thisLabel])
					}
					x0 = xLabelOverride[thisLabel]
				}
				if len(xcols) == 1 {
					x1 = xvalue
				} else {
					x1 = g.Values[len(g.Values)-1]
				}
			}

			summaries = append(summaries, plot.GroupSummary{
				XValue: xvalue,
				XName:  xname,
				YName:  yname,
				X0:     x0,
				X1:     x1,
				Values: values,
			})
		}
	}
	return summaries, nil
}

// computeBands fills in the inference band of each summary. Groups are
// independent, so the work fans out; determinism holds regardless of
// scheduling because every group derives its own stream from the run id.
func (s *PlotService) computeBands(ctx context.Context, summaries []plot.GroupSummary, opts plot.Options, runID string) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(8)
	for idx := range summaries {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sum := &summaries[idx]
			groupKey := sum.XValue + "&" + sum.YName
			src := s.rng.Source(runID, groupKey, opts.Seed)

			band, err := inference.ComputeInterval(sum.Values, opts.Inference, opts.ConfLevel, opts.HDIIterations, src)
			if err != nil {
				// Per-group estimator failures skip the band instead of
				// aborting the whole plot.
				log.Printf("[PlotService] WARNING: no inference band for group %s: %v", groupKey, err)
				sum.Band = interval.Undefined()
				return nil
			}
			sum.Band = band
			return nil
		})
	}
	return eg.Wait()
}

// displayNames returns the y display labels in first-appearance order.
func displayNames(summaries []plot.GroupSummary) []string {
	seen := map[string]bool{}
	var names []string
	for _, s := range summaries {
		if !seen[s.YName] {
			seen[s.YName] = true
			names = append(names, s.YName)
		}
	}
	return names
}
