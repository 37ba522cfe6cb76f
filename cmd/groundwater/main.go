// Command groundwater trains a physics-informed neural network on the
// 1-D steady-state groundwater-flow boundary-value problem and reports
// how closely the prediction matches the analytical head profile.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/EMSL-Computing/PIML4PDE/internal/config"
	"github.com/EMSL-Computing/PIML4PDE/internal/trainer"
	"github.com/EMSL-Computing/PIML4PDE/pinn"
)

func main() {
	var (
		configPath = flag.String("config", "", "optional YAML config file")
		epochs     = flag.Int("epochs", 0, "training epochs (override)")
		lr         = flag.Float64("lr", 0, "learning rate (override)")
		points     = flag.Int("points", 0, "collocation point count (override)")
		widths     = flag.String("widths", "", "comma-separated layer widths, e.g. 1,50,1 (override)")
		optimizer  = flag.String("optimizer", "", "adam or sgd (override)")
		logEvery   = flag.Int("log-every", 0, "log progress every N epochs (override)")
		sampleSeed = flag.Int64("sample-seed", 0, "collocation sampling seed (override)")
		initSeed   = flag.Int64("init-seed", 0, "weight initialization seed (override)")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = *loaded
	}

	parsedWidths, err := parseWidths(*widths)
	if err != nil {
		log.Fatalf("parse -widths: %v", err)
	}
	cfg.ApplyOverrides(config.Overrides{
		Epochs:            *epochs,
		LearningRate:      *lr,
		CollocationPoints: *points,
		LayerWidths:       parsedWidths,
		Optimizer:         *optimizer,
		LogEvery:          *logEvery,
		SampleSeed:        *sampleSeed,
		InitSeed:          *initSeed,
	})

	result, err := pinn.Solve(cfg)
	if err != nil {
		if errors.Is(err, trainer.ErrDiverged) {
			log.Printf("training aborted: %v", err)
			log.Printf("reporting last finite state (best loss %.6e at epoch %d)", result.BestLoss, result.BestEpoch)
			report(result)
			os.Exit(1)
		}
		log.Fatalf("solve: %v", err)
	}

	report(result)
}

func report(r *pinn.Result) {
	fmt.Printf("\nbest loss %.6e (epoch %d of %d)\n", r.BestLoss, r.BestEpoch, r.EpochsRun)
	fmt.Printf("R²   = %.6f\n", r.R2)
	fmt.Printf("RMSE = %.6f\n\n", r.RMSE)

	fmt.Printf("%10s %14s %14s %12s\n", "x", "predicted", "analytical", "error")
	for i, x := range r.X {
		diff := r.Predicted[i] - r.Analytical[i]
		fmt.Printf("%10.4f %14.6f %14.6f %12.2e\n", x, r.Predicted[i], r.Analytical[i], diff)
	}
}

func parseWidths(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	widths := make([]int, 0, len(parts))
	for _, p := range parts {
		w, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("width %q: %w", p, err)
		}
		widths = append(widths, w)
	}
	return widths, nil
}
