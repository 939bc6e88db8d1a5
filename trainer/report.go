package trainer

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteText writes one line per prediction, e.g.
//
//	Input: [0 1] Expected: 0 Output: 0.01894
func WriteText(w io.Writer, preds []Prediction) error {
	for _, p := range preds {
		if _, err := fmt.Fprintf(w, "Input: %s Expected: %.0f Output: %.5f\n",
			formatInputs(p.Inputs), p.Expected, p.Actual); err != nil {
			return err
		}
	}
	return nil
}

func formatInputs(inputs []float64) string {
	parts := make([]string, len(inputs))
	for i, v := range inputs {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
