package m

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

type Activator interface {
	Activate(i, j int, sum float64) float64
	Deactivate(m mat.Matrix) mat.Matrix
	fmt.Stringer
}

// Sigmoid is the logistic activation used by every unit of the network.
type Sigmoid struct{}

var _ Activator = Sigmoid{}

func (s Sigmoid) Activate(i, j int, sum float64) float64 {
	return sigmoid(sum)
}

// Deactivate maps a matrix of activations (not weighted sums) to the
// logistic derivative y*(1-y) element-wise.
func (s Sigmoid) Deactivate(matrix mat.Matrix) mat.Matrix {
	r, c := matrix.Dims()
	o := make([]float64, r*c)
	for i := range o {
		o[i] = 1
	}
	ones := mat.NewDense(r, c, o)
	return multiply(matrix, subtract(ones, matrix))
}

func (s Sigmoid) String() string {
	return "sigmoid"
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// sigmoidDerivative takes the sigmoid output y, not its input.
func sigmoidDerivative(y float64) float64 {
	return y * (1.0 - y)
}
