package m

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

func dot(m, n mat.Matrix) mat.Matrix {
	r, _ := m.Dims()
	_, c := n.Dims()
	o := mat.NewDense(r, c, nil)
	o.Product(m, n)
	return o
}

func apply(fn func(i, j int, v float64) float64, m mat.Matrix) mat.Matrix {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	o.Apply(fn, m)
	return o
}

func scale(s float64, m mat.Matrix) mat.Matrix {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	o.Scale(s, m)
	return o
}

func multiply(m, n mat.Matrix) mat.Matrix {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	o.MulElem(m, n)
	return o
}

func subtract(m, n mat.Matrix) mat.Matrix {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	o.Sub(m, n)
	return o
}

// randomArray draws size values from U[-0.5, 0.5), i.e. uniform(0,1) - 0.5.
// A nil src falls back to the package-global generator.
func randomArray(size int, src rand.Source) []float64 {
	dist := distuv.Uniform{
		Min: -0.5,
		Max: 0.5,
		Src: src,
	}

	data := make([]float64, size)
	for i := 0; i < size; i++ {
		data[i] = dist.Rand()
	}
	return data
}

// MatrixToVector flattens a matrix row-major.
func MatrixToVector(matrix mat.Matrix) []float64 {
	r, c := matrix.Dims()
	vector := make([]float64, r*c)

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			vector[i*c+j] = matrix.At(i, j)
		}
	}

	return vector
}

func VectorToMatrix(v []float64, m, n int) mat.Matrix {
	matrix := mat.NewDense(m, n, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			matrix.Set(i, j, v[i*n+j])
		}
	}

	return matrix
}
