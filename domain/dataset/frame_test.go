package dataset

import (
	"testing"
)

func irisFrame() *Frame {
	return NewFrame(
		[]string{"Species", "Site", "SepalLength"},
		[]Row{
			{"Species": "virginica", "Site": "b", "SepalLength": "6.3"},
			{"Species": "setosa", "Site": "a", "SepalLength": "5.1"},
			{"Species": "setosa", "Site": "a", "SepalLength": "4.9"},
			{"Species": "virginica", "Site": "a", "SepalLength": "5.8"},
			{"Species": "setosa", "Site": "b", "SepalLength": "5.0"},
		},
	)
}

func TestGroupBy_SingleColumnSortedKeys(t *testing.T) {
	f := irisFrame()

	groups, err := f.GroupBy([]string{"Species"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Label() != "setosa" || groups[1].Label() != "virginica" {
		t.Fatalf("expected sorted group order, got %q then %q", groups[0].Label(), groups[1].Label())
	}
	if got := groups[0].Indices; len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 4 {
		t.Fatalf("setosa indices wrong: %v", got)
	}
}

func TestGroupBy_MultiColumnLabel(t *testing.T) {
	f := irisFrame()

	groups, err := f.GroupBy([]string{"Species", "Site"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 4 {
		t.Fatalf("expected 4 groups, got %d", len(groups))
	}
	if groups[0].Label() != "setosa&a" {
		t.Fatalf("expected first group setosa&a, got %q", groups[0].Label())
	}
}

func TestGroupBy_UnknownColumn(t *testing.T) {
	if _, err := irisFrame().GroupBy([]string{"Nope"}); err == nil {
		t.Fatal("expected error for unknown grouping column")
	}
}

func TestNumericValues(t *testing.T) {
	f := irisFrame()

	vals, err := f.NumericValues("SepalLength", []int{1, 2, 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{5.1, 4.9, 5.0}
	for i := range want {
		if vals[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, vals)
		}
	}

	if _, err := f.NumericValues("Species", []int{0}); err == nil {
		t.Fatal("expected error for non-numeric cells")
	}
}

func TestNumericValues_SkipsBlankCells(t *testing.T) {
	f := NewFrame([]string{"y"}, []Row{{"y": "1.5"}, {"y": ""}, {"y": "2.5"}})

	vals, err := f.NumericValues("y", []int{0, 1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vals) != 2 || vals[0] != 1.5 || vals[1] != 2.5 {
		t.Fatalf("expected blanks skipped, got %v", vals)
	}
}
