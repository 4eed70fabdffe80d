package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"cmplot/adapters/excel"
	"cmplot/adapters/rng"
	"cmplot/app"
	"cmplot/domain/interval"
	"cmplot/plot"
	"cmplot/ui"
)

func main() {
	// .env is optional; flags win over environment.
	_ = godotenv.Load()

	dataFile := flag.String("data", os.Getenv("CMPLOT_DATA"), "xlsx or csv data file")
	xcols := flag.String("x", "", "comma-separated categorical column(s), e.g. Species")
	ycols := flag.String("y", "", "comma-separated dependent column(s); default: all non-x columns")
	inf := flag.String("inf", string(interval.MethodHDI), "inference band method: hdi|ci|iqr|none")
	level := flag.Float64("level", interval.DefaultLevel, "confidence level / credible mass")
	iterations := flag.Int("iter", interval.DefaultIterations, "Monte Carlo iterations for hdi")
	seed := flag.Int64("seed", 0, "seed for the random streams")
	orientation := flag.String("orientation", plot.OrientationHorizontal, "plot orientation: h|v")
	title := flag.String("title", "", "plot title override")
	out := flag.String("o", "", "write figure JSON to this file instead of stdout")
	addr := flag.String("serve", os.Getenv("CMPLOT_ADDR"), "serve the rendered figure at this address, e.g. localhost:8080")
	flag.Parse()

	if *dataFile == "" {
		log.Fatal("a data file is required: -data data.xlsx (or CMPLOT_DATA)")
	}
	if *xcols == "" {
		log.Fatal("at least one x column is required: -x Species")
	}

	frame, err := excel.NewDataReader(*dataFile).ReadFrame()
	if err != nil {
		log.Fatalf("loading data failed: %v", err)
	}

	opts := plot.DefaultOptions()
	opts.Inference = interval.Method(*inf)
	opts.ConfLevel = *level
	opts.HDIIterations = *iterations
	opts.Seed = *seed
	opts.Orientation = *orientation
	opts.Title = *title

	service := app.NewPlotService(rng.NewAdapter())
	figure, err := service.BuildFigure(context.Background(), app.PlotRequest{
		Frame:   frame,
		XCols:   splitList(*xcols),
		YCols:   splitList(*ycols),
		Options: opts,
	})
	if err != nil {
		log.Fatalf("building figure failed: %v", err)
	}

	if *addr != "" {
		if err := ui.NewServer(figure).Start(*addr); err != nil {
			log.Fatalf("server failed: %v", err)
		}
		return
	}

	dest := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("creating output file failed: %v", err)
		}
		defer f.Close()
		dest = f
	}
	enc := json.NewEncoder(dest)
	enc.SetIndent("", "  ")
	if err := enc.Encode(figure); err != nil {
		log.Fatalf("encoding figure failed: %v", err)
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
