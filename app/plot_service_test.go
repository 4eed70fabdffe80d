package app

import (
	"context"
	"encoding/json"
	"testing"

	"cmplot/adapters/rng"
	"cmplot/domain/core"
	"cmplot/domain/dataset"
	"cmplot/domain/interval"
	"cmplot/plot"
)

func testFrame() *dataset.Frame {
	return dataset.NewFrame(
		[]string{"Species", "SepalLength", "SepalWidth"},
		[]dataset.Row{
			{"Species": "setosa", "SepalLength": "5.1", "SepalWidth": "3.5"},
			{"Species": "setosa", "SepalLength": "4.9", "SepalWidth": "3.0"},
			{"Species": "setosa", "SepalLength": "4.7", "SepalWidth": "3.2"},
			{"Species": "setosa", "SepalLength": "5.0", "SepalWidth": "3.1"},
			{"Species": "virginica", "SepalLength": "6.3", "SepalWidth": "3.3"},
			{"Species": "virginica", "SepalLength": "5.8", "SepalWidth": "2.7"},
			{"Species": "virginica", "SepalLength": "6.1", "SepalWidth": "3.0"},
		},
	)
}

func testService() *PlotService {
	return NewPlotService(rng.NewAdapter())
}

func defaultRequest() PlotRequest {
	opts := plot.DefaultOptions()
	opts.Inference = interval.MethodIQR
	return PlotRequest{
		Frame:   testFrame(),
		XCols:   []string{"Species"},
		RunID:   "test-run",
		Options: opts,
	}
}

func TestBuildFigure_GroupAndVariableFanout(t *testing.T) {
	fig, err := testService().BuildFigure(context.Background(), defaultRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 2 species x 2 y columns, each with main + band trace.
	if len(fig.Data) != 8 {
		t.Fatalf("expected 8 traces, got %d", len(fig.Data))
	}
	if fig.Layout.Title.Text != "Species ~ SepalLength, SepalWidth" {
		t.Fatalf("unexpected title %q", fig.Layout.Title.Text)
	}
}

func TestBuildFigure_ExplicitYSelection(t *testing.T) {
	req := defaultRequest()
	req.YCols = []string{"SepalLength"}

	fig, err := testService().BuildFigure(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fig.Data) != 4 {
		t.Fatalf("expected 4 traces, got %d", len(fig.Data))
	}
}

func TestBuildFigure_DeterministicWithPinnedRun(t *testing.T) {
	req := defaultRequest()
	req.Options.Inference = interval.MethodHDI
	req.Options.HDIIterations = 2000
	req.Options.Seed = 7

	svc := testService()
	first, err := svc.BuildFigure(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.BuildFigure(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Fatal("same run id and seed should produce identical figures")
	}
}

func TestBuildFigure_DegenerateGroupDrawnWithoutBand(t *testing.T) {
	frame := dataset.NewFrame(
		[]string{"Species", "SepalLength"},
		[]dataset.Row{
			{"Species": "setosa", "SepalLength": "5.1"},
			{"Species": "setosa", "SepalLength": "4.9"},
			{"Species": "rarespecies", "SepalLength": "9.9"}, // single observation
		},
	)
	req := defaultRequest()
	req.Frame = frame

	fig, err := testService().BuildFigure(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// rarespecies gets a main trace but no band trace: 2 + 1 traces.
	if len(fig.Data) != 3 {
		t.Fatalf("expected 3 traces, got %d", len(fig.Data))
	}
}

func TestBuildFigure_ColumnValidation(t *testing.T) {
	svc := testService()

	req := defaultRequest()
	req.XCols = nil
	if _, err := svc.BuildFigure(context.Background(), req); !core.IsInvalidArgument(err) {
		t.Errorf("missing xcols: expected invalid argument, got %v", err)
	}

	req = defaultRequest()
	req.XCols = []string{"Color"}
	if _, err := svc.BuildFigure(context.Background(), req); !core.IsInvalidArgument(err) {
		t.Errorf("unknown xcol: expected invalid argument, got %v", err)
	}

	req = defaultRequest()
	req.YCols = []string{"Species"}
	if _, err := svc.BuildFigure(context.Background(), req); !core.IsInvalidArgument(err) {
		t.Errorf("x/y overlap: expected invalid argument, got %v", err)
	}

	req = defaultRequest()
	req.Options.Inference = interval.Method("banana")
	if _, err := svc.BuildFigure(context.Background(), req); !core.IsInvalidArgument(err) {
		t.Errorf("bad method: expected invalid argument, got %v", err)
	}
}
