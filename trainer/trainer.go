// Package trainer runs the epoch loop over a fixed dataset and reports the
// network's predictions afterwards.
package trainer

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"gatenet/m"
)

// DefaultEpochs is the number of passes over the dataset used by cmd/train.
const DefaultEpochs = 10000

// Prediction is one (input, expected, actual) triple.
type Prediction struct {
	Inputs   []float64
	Expected float64
	Actual   float64
}

// Trainer drives a Network over a dataset, one Train call per line per epoch.
type Trainer struct {
	Net    *m.Network
	Lines  m.Lines
	Epochs int

	// Progress, when set together with LogEvery > 0, receives a line every
	// LogEvery epochs and after the last epoch.
	Progress io.Writer
	LogEvery int
}

func New(net *m.Network, lines m.Lines, epochs int) (*Trainer, error) {
	if net == nil {
		return nil, errors.New("trainer: nil network")
	}
	if err := lines.Validate(m.InputNum, m.OutputNum); err != nil {
		return nil, errors.Wrap(err, "trainer: invalid dataset")
	}
	if epochs <= 0 {
		return nil, errors.Errorf("trainer: epochs must be positive, got %d", epochs)
	}
	return &Trainer{Net: net, Lines: lines, Epochs: epochs}, nil
}

// Run trains for t.Epochs epochs, visiting the lines in order each time.
func (t *Trainer) Run() error {
	for epoch := 1; epoch <= t.Epochs; epoch++ {
		for i, line := range t.Lines {
			if err := t.Net.Train(line.Inputs, line.Targets[0]); err != nil {
				return errors.Wrapf(err, "epoch %d, line %d", epoch, i)
			}
		}

		if t.shouldLog(epoch) {
			mse, err := MeanSquaredError(t.Net, t.Lines)
			if err != nil {
				return errors.Wrapf(err, "epoch %d", epoch)
			}
			fmt.Fprintf(t.Progress, "Epoch %d of %d complete | mse %.6f\n", epoch, t.Epochs, mse)
		}
	}
	return nil
}

func (t *Trainer) shouldLog(epoch int) bool {
	if t.Progress == nil || t.LogEvery <= 0 {
		return false
	}
	return epoch%t.LogEvery == 0 || epoch == t.Epochs
}

// Predict runs Forward once per line.
func (t *Trainer) Predict() ([]Prediction, error) {
	preds := make([]Prediction, 0, len(t.Lines))
	for i, line := range t.Lines {
		out, err := t.Net.Forward(line.Inputs)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i)
		}
		preds = append(preds, Prediction{
			Inputs:   append([]float64(nil), line.Inputs...),
			Expected: line.Targets[0],
			Actual:   out,
		})
	}
	return preds, nil
}

// MeanSquaredError averages (target - output)^2 over lines without training.
func MeanSquaredError(net *m.Network, lines m.Lines) (float64, error) {
	if len(lines) == 0 {
		return 0, errors.New("no lines")
	}
	var sum float64
	for i, line := range lines {
		out, err := net.Forward(line.Inputs)
		if err != nil {
			return 0, errors.Wrapf(err, "line %d", i)
		}
		d := line.Targets[0] - out
		sum += d * d
	}
	return sum / float64(len(lines)), nil
}
