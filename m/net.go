package m

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

const (
	InputNum     = 2
	HiddenNum    = 4
	OutputNum    = 1
	LearningRate = 0.1
)

// ErrInvalidArgument is returned when an input or weight vector has the
// wrong length. Weights are never touched when it is returned.
var ErrInvalidArgument = errors.New("invalid argument")

// Network is a 2-4-1 fully connected sigmoid network without bias units,
// trained one example at a time.
//
// A Network is not safe for concurrent use.
type Network struct {
	weightsInputHidden  *mat.Dense // HiddenNum x InputNum
	weightsHiddenOutput *mat.Dense // OutputNum x HiddenNum
	activator           Activator
}

// NewNetwork draws every weight from U[-0.5, 0.5) using src, input->hidden
// weights first in row-major order. A nil src uses gonum's global source.
func NewNetwork(src rand.Source) *Network {
	inputHidden := randomArray(HiddenNum*InputNum, src)
	hiddenOutput := randomArray(OutputNum*HiddenNum, src)

	return &Network{
		weightsInputHidden:  mat.NewDense(HiddenNum, InputNum, inputHidden),
		weightsHiddenOutput: mat.NewDense(OutputNum, HiddenNum, hiddenOutput),
		activator:           Sigmoid{},
	}
}

// Forward returns the network output for inputs, a value in (0,1).
func (net *Network) Forward(inputs []float64) (float64, error) {
	if err := checkInputs(inputs); err != nil {
		return 0, errors.Wrap(err, "forward")
	}
	_, output := net.feedForward(mat.NewDense(InputNum, 1, inputs))
	return output, nil
}

// Train runs one step of online backpropagation towards target.
func (net *Network) Train(inputs []float64, target float64) error {
	if err := checkInputs(inputs); err != nil {
		return errors.Wrap(err, "train")
	}

	x := mat.NewDense(InputNum, 1, inputs)
	hiddenOutputs, output := net.feedForward(x)

	outputError := target - output

	// Hidden errors use the hidden->output weights as they were before this step.
	hiddenErrors := multiply(
		scale(outputError, net.weightsHiddenOutput.T()),
		net.activator.Deactivate(hiddenOutputs),
	)

	outputDelta := LearningRate * outputError * sigmoidDerivative(output)
	net.weightsHiddenOutput.Add(net.weightsHiddenOutput, scale(outputDelta, hiddenOutputs.T()))
	net.weightsInputHidden.Add(net.weightsInputHidden, dot(scale(LearningRate, hiddenErrors), x.T()))

	return nil
}

// feedForward returns the hidden activations (HiddenNum x 1) along with the
// output so Train can reuse them.
func (net *Network) feedForward(x mat.Matrix) (mat.Matrix, float64) {
	hiddenOutputs := apply(net.activator.Activate, dot(net.weightsInputHidden, x))
	finalOutputs := apply(net.activator.Activate, dot(net.weightsHiddenOutput, hiddenOutputs))
	return hiddenOutputs, finalOutputs.At(0, 0)
}

// InputHiddenWeights returns a copy of the input->hidden weights, flattened
// so that weight (hidden h, input j) sits at j + h*InputNum.
func (net *Network) InputHiddenWeights() []float64 {
	return MatrixToVector(net.weightsInputHidden)
}

// HiddenOutputWeights returns a copy of the hidden->output weights.
func (net *Network) HiddenOutputWeights() []float64 {
	return MatrixToVector(net.weightsHiddenOutput)
}

// SetWeights replaces both weight vectors. They use the same layout as
// InputHiddenWeights and HiddenOutputWeights.
func (net *Network) SetWeights(inputHidden, hiddenOutput []float64) error {
	if len(inputHidden) != HiddenNum*InputNum {
		return errors.Wrapf(ErrInvalidArgument, "input->hidden weights: got %d values, want %d",
			len(inputHidden), HiddenNum*InputNum)
	}
	if len(hiddenOutput) != OutputNum*HiddenNum {
		return errors.Wrapf(ErrInvalidArgument, "hidden->output weights: got %d values, want %d",
			len(hiddenOutput), OutputNum*HiddenNum)
	}

	net.weightsInputHidden = VectorToMatrix(inputHidden, HiddenNum, InputNum).(*mat.Dense)
	net.weightsHiddenOutput = VectorToMatrix(hiddenOutput, OutputNum, HiddenNum).(*mat.Dense)
	return nil
}

func checkInputs(inputs []float64) error {
	if len(inputs) != InputNum {
		return errors.Wrapf(ErrInvalidArgument, "got %d inputs, want %d", len(inputs), InputNum)
	}
	return nil
}
