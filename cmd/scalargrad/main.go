// Package main provides the scalargrad CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"

	"github.com/born-ml/scalargrad/internal/dataset"
	"github.com/born-ml/scalargrad/internal/metrics"
	"github.com/born-ml/scalargrad/internal/nn"
	"github.com/born-ml/scalargrad/internal/optim"
	"github.com/born-ml/scalargrad/internal/train"
)

const version = "v0.1.0-dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stdout)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "scalargrad %s\n", version)
		return nil
	case "circles":
		return circles(args[1:], stdout, stderr)
	default:
		usage(stdout)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "scalargrad - scalar reverse-mode autodiff and tiny neural networks")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  circles    Train a 2-16-16-1 classifier on two concentric circles")
}

func circles(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("circles", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		seed    = fs.Int64("seed", 1, "random seed for data and initialization")
		samples = fs.Int("samples", 100, "number of points")
		steps   = fs.Int("steps", 100, "training steps")
		lr      = fs.Float64("lr", 0.1, "Adam learning rate")
		l2      = fs.Float64("l2", 1e-4, "L2 penalty weight")
		save    = fs.String("save", "", "write trained parameters to this file")
		verbose = fs.Bool("v", false, "log every step")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	rng := rand.New(rand.NewSource(*seed))
	data, err := dataset.Circles(dataset.CirclesConfig{Samples: *samples, Rand: rng})
	if err != nil {
		return fmt.Errorf("failed to generate data: %w", err)
	}

	net, err := nn.NewNetwork(nn.Config{Inputs: 2, Layers: []int{16, 16, 1}, Rand: rng})
	if err != nil {
		return fmt.Errorf("failed to build network: %w", err)
	}
	adam, err := optim.NewAdam(net.Parameters(), optim.AdamConfig{LR: *lr})
	if err != nil {
		return fmt.Errorf("failed to build optimizer: %w", err)
	}
	trainer, err := train.New(net, adam, train.Config{
		Loss:   nn.BCELoss{},
		Output: nn.Sigmoid,
		L2:     *l2,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	logger.Info("training",
		slog.String("model", net.String()),
		slog.Int("parameters", len(net.Parameters())),
		slog.Int("samples", data.Len()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := trainer.Fit(ctx, data.X, data.Y, *steps)
	if err != nil {
		return fmt.Errorf("training stopped after %d steps: %w", len(results), err)
	}

	pred, err := trainer.Predict(data.X)
	if err != nil {
		return err
	}
	acc, err := metrics.BinaryAccuracy{}.ComputeData(pred, data.Y)
	if err != nil {
		return err
	}

	var final float64
	if len(results) > 0 {
		final = results[len(results)-1].Loss
	}
	fmt.Fprintf(stdout, "steps=%d loss=%.6f accuracy=%.2f%%\n", len(results), final, acc*100)

	if *save != "" {
		if err := net.SaveFile(*save); err != nil {
			return err
		}
		logger.Info("saved parameters", slog.String("path", *save))
	}
	return nil
}
