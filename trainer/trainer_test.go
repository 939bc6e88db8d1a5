package trainer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"

	"gatenet/m"
)

func TestConvergenceAND(t *testing.T) {
	net := m.NewNetwork(rand.NewSource(7))
	tr, err := New(net, m.ANDGate(), DefaultEpochs)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := tr.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	preds, err := tr.Predict()
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	for _, p := range preds {
		t.Logf("%v -> %.5f (expected %.0f)", p.Inputs, p.Actual, p.Expected)
		if p.Expected == 0 && p.Actual >= 0.1 {
			t.Errorf("Forward(%v) = %v, want < 0.1", p.Inputs, p.Actual)
		}
		if p.Expected == 1 && p.Actual <= 0.9 {
			t.Errorf("Forward(%v) = %v, want > 0.9", p.Inputs, p.Actual)
		}
	}
}

func TestNewRejects(t *testing.T) {
	net := m.NewNetwork(rand.NewSource(1))
	cases := []struct {
		name   string
		net    *m.Network
		lines  m.Lines
		epochs int
	}{
		{"nil network", nil, m.ANDGate(), 10},
		{"empty dataset", net, m.Lines{}, 10},
		{"wrong input count", net, m.Lines{{Inputs: []float64{1, 0, 1}, Targets: []float64{1}}}, 10},
		{"zero epochs", net, m.ANDGate(), 0},
		{"negative epochs", net, m.ANDGate(), -3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := New(c.net, c.lines, c.epochs); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestRunMatchesManualLoop(t *testing.T) {
	net := m.NewNetwork(rand.NewSource(3))
	tr, err := New(net, m.ANDGate(), 50)
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.Run(); err != nil {
		t.Fatal(err)
	}

	manual := m.NewNetwork(rand.NewSource(3))
	for epoch := 0; epoch < 50; epoch++ {
		for _, line := range m.ANDGate() {
			if err := manual.Train(line.Inputs, line.Targets[0]); err != nil {
				t.Fatal(err)
			}
		}
	}

	if !floats.Equal(net.InputHiddenWeights(), manual.InputHiddenWeights()) ||
		!floats.Equal(net.HiddenOutputWeights(), manual.HiddenOutputWeights()) {
		t.Fatal("Run diverged from a plain epoch loop")
	}
}

func TestRunWrapsTrainError(t *testing.T) {
	tr := &Trainer{
		Net:    m.NewNetwork(rand.NewSource(1)),
		Lines:  m.Lines{{Inputs: []float64{1, 0, 1}, Targets: []float64{1}}},
		Epochs: 5,
	}
	err := tr.Run()
	if !errors.Is(err, m.ErrInvalidArgument) {
		t.Fatalf("Run error = %v, want ErrInvalidArgument", err)
	}
	if !strings.Contains(err.Error(), "epoch 1, line 0") {
		t.Fatalf("error %q does not name the failing epoch and line", err)
	}
}

func TestRunProgress(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(m.NewNetwork(rand.NewSource(2)), m.ANDGate(), 10)
	if err != nil {
		t.Fatal(err)
	}
	tr.Progress = &buf
	tr.LogEvery = 4
	if err := tr.Run(); err != nil {
		t.Fatal(err)
	}

	got := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(got) != 3 {
		t.Fatalf("expected 3 progress lines, got %d: %q", len(got), buf.String())
	}
	for i, prefix := range []string{"Epoch 4 of 10 complete", "Epoch 8 of 10 complete", "Epoch 10 of 10 complete"} {
		if !strings.HasPrefix(got[i], prefix) {
			t.Errorf("line %d = %q, want prefix %q", i, got[i], prefix)
		}
	}
}

func TestPredictDoesNotTrain(t *testing.T) {
	net := m.NewNetwork(rand.NewSource(4))
	ih := net.InputHiddenWeights()
	tr, err := New(net, m.ANDGate(), 1)
	if err != nil {
		t.Fatal(err)
	}
	preds, err := tr.Predict()
	if err != nil {
		t.Fatal(err)
	}
	if len(preds) != 4 {
		t.Fatalf("expected 4 predictions, got %d", len(preds))
	}
	if !floats.Equal(ih, net.InputHiddenWeights()) {
		t.Fatal("Predict changed the weights")
	}
	for i, p := range preds {
		want, _ := net.Forward(m.ANDGate()[i].Inputs)
		if p.Actual != want {
			t.Errorf("prediction %d = %v, want %v", i, p.Actual, want)
		}
	}
}

func TestMeanSquaredError(t *testing.T) {
	net := m.NewNetwork(nil)
	if err := net.SetWeights(make([]float64, 8), make([]float64, 4)); err != nil {
		t.Fatal(err)
	}
	// Every output is 0.5, so each squared error is 0.25.
	mse, err := MeanSquaredError(net, m.ANDGate())
	if err != nil {
		t.Fatal(err)
	}
	if mse != 0.25 {
		t.Fatalf("mse = %v, want 0.25", mse)
	}
	if _, err := MeanSquaredError(net, nil); err == nil {
		t.Fatal("expected an error for an empty dataset")
	}
}

func TestWriteText(t *testing.T) {
	preds := []Prediction{
		{Inputs: []float64{0, 1}, Expected: 0, Actual: 0.018944},
		{Inputs: []float64{1, 1}, Expected: 1, Actual: 0.9692},
	}
	var buf bytes.Buffer
	if err := WriteText(&buf, preds); err != nil {
		t.Fatal(err)
	}
	want := "Input: [0 1] Expected: 0 Output: 0.01894\n" +
		"Input: [1 1] Expected: 1 Output: 0.96920\n"
	if buf.String() != want {
		t.Fatalf("WriteText =\n%s\nwant\n%s", buf.String(), want)
	}
}
