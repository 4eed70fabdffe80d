package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cmplot/plot"
)

func testFigure() *plot.Figure {
	return &plot.Figure{
		Data: []plot.Trace{{Type: "violin", Name: "SepalLength", Points: false}},
		Layout: plot.Layout{
			Title: plot.Title{Text: "Species ~ SepalLength", X: 0.5},
		},
	}
}

func TestServer_FigureJSON(t *testing.T) {
	srv := NewServer(testFigure())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/figure.json", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var fig plot.Figure
	if err := json.Unmarshal(rec.Body.Bytes(), &fig); err != nil {
		t.Fatalf("response is not a figure: %v", err)
	}
	if len(fig.Data) != 1 || fig.Data[0].Type != "violin" {
		t.Fatalf("unexpected figure payload: %+v", fig)
	}
}

func TestServer_IndexEmbedsTitle(t *testing.T) {
	srv := NewServer(testFigure())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Species ~ SepalLength") {
		t.Fatal("page should carry the figure title")
	}
	if !strings.Contains(body, "plotly") {
		t.Fatal("page should load plotly.js")
	}
}
