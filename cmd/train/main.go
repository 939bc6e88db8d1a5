// gatenet-train: trains the 2-4-1 sigmoid network on a truth table and
// prints its predictions.
//
// Usage:
//
//	train --epochs=10000 --seed=7 --log-every=1000 --data=and.csv --json=report.json
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"gatenet/m"
	"gatenet/trainer"
	"gatenet/utils"
)

var (
	epochs   = flag.Int("epochs", trainer.DefaultEpochs, "Number of training epochs")
	seed     = flag.Uint64("seed", 7, "Random seed for weight initialization (0 seeds from the clock)")
	dataPath = flag.String("data", "", "CSV truth table with lines x1,x2,target (default: AND gate)")
	logEvery = flag.Int("log-every", 0, "Print the training loss every N epochs (0 disables)")
	verbose  = flag.Bool("verbose", false, "Print configuration and timing statistics")
	jsonPath = flag.String("json", "", "Output report file (JSON)")
)

func main() {
	flag.Parse()

	cfg := utils.Config{
		Epochs:   *epochs,
		Seed:     *seed,
		DataPath: *dataPath,
		LogEvery: *logEvery,
		JSONPath: *jsonPath,
		Verbose:  *verbose,
	}
	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg utils.Config, stdout io.Writer) error {
	if err := utils.ValidateConfig(&cfg); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	utils.Verbose = cfg.Verbose
	utils.Output = stdout

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	if cfg.Verbose {
		fmt.Fprintf(stdout, "Configuration:\n")
		fmt.Fprintf(stdout, "  Topology:      %d-%d-%d\n", m.InputNum, m.HiddenNum, m.OutputNum)
		fmt.Fprintf(stdout, "  Epochs:        %d\n", cfg.Epochs)
		fmt.Fprintf(stdout, "  Learning Rate: %.2f\n", m.LearningRate)
		fmt.Fprintf(stdout, "  Seed:          %d\n", cfg.Seed)
		if cfg.DataPath != "" {
			fmt.Fprintf(stdout, "  Data:          %s\n", cfg.DataPath)
		}
		fmt.Fprintln(stdout)
	}

	stats := &utils.TimingStats{}
	totalStart := time.Now()

	start := time.Now()
	lines, err := loadLines(cfg.DataPath)
	if err != nil {
		return err
	}
	stats.DataLoadingTime = time.Since(start)

	start = time.Now()
	net := m.NewNetwork(rand.NewSource(cfg.Seed))
	stats.ModelInitTime = time.Since(start)

	tr, err := trainer.New(net, lines, cfg.Epochs)
	if err != nil {
		return err
	}
	if cfg.LogEvery > 0 {
		tr.Progress = stdout
		tr.LogEvery = cfg.LogEvery
	}

	start = time.Now()
	if err := tr.Run(); err != nil {
		return errors.Wrap(err, "training")
	}
	stats.TrainingTime = time.Since(start)

	start = time.Now()
	preds, err := tr.Predict()
	if err != nil {
		return errors.Wrap(err, "predicting")
	}
	stats.InferenceTime = time.Since(start)

	if err := trainer.WriteText(stdout, preds); err != nil {
		return err
	}

	if cfg.JSONPath != "" {
		if err := saveReport(cfg, net, lines, preds); err != nil {
			return err
		}
	}

	stats.TotalTime = time.Since(totalStart)
	utils.PrintTimingStats(stats, cfg.Epochs*len(lines))
	return nil
}

func loadLines(path string) (m.Lines, error) {
	if path == "" {
		return m.ANDGate(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening data file")
	}
	defer f.Close()

	lines, err := m.GetLines(f, m.InputNum, m.OutputNum)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return lines, nil
}

func saveReport(cfg utils.Config, net *m.Network, lines m.Lines, preds []trainer.Prediction) error {
	mse, err := trainer.MeanSquaredError(net, lines)
	if err != nil {
		return err
	}
	report := &utils.Report{
		Version: utils.ReportVersion,
		Epochs:  cfg.Epochs,
		Seed:    cfg.Seed,
		MSE:     mse,
	}
	for _, p := range preds {
		report.Predictions = append(report.Predictions, utils.PredictionData{
			Inputs:   p.Inputs,
			Expected: p.Expected,
			Actual:   p.Actual,
		})
	}
	if err := utils.SaveReport(cfg.JSONPath, report); err != nil {
		return errors.Wrap(err, "saving report")
	}
	return nil
}
