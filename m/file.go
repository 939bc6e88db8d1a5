package m

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Line struct {
	Inputs  []float64
	Targets []float64
}
type Lines []Line

// ANDGate returns the AND truth table in the order it is trained.
func ANDGate() Lines {
	return Lines{
		{Inputs: []float64{0, 0}, Targets: []float64{0}},
		{Inputs: []float64{0, 1}, Targets: []float64{0}},
		{Inputs: []float64{1, 0}, Targets: []float64{0}},
		{Inputs: []float64{1, 1}, Targets: []float64{1}},
	}
}

// GetLines reads one example per line: inputNum inputs followed by
// outputNum targets, comma separated. Blank lines and lines starting with
// '#' are skipped.
func GetLines(reader io.Reader, inputNum, outputNum int) (Lines, error) {
	scanner := bufio.NewScanner(reader)
	var lines Lines
	var lineNum int
	for scanner.Scan() {
		lineNum++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		splits := strings.Split(text, ",")
		if len(splits) != inputNum+outputNum {
			return lines, errInvalidLine{
				lineNum:  lineNum,
				splits:   len(splits),
				expected: inputNum + outputNum,
			}
		}
		inputs := make([]float64, inputNum)
		targets := make([]float64, outputNum)

		for i, split := range splits {
			num, err := strconv.ParseFloat(strings.TrimSpace(split), 64)
			if i < inputNum {
				if err != nil {
					return lines, errors.Wrapf(err, "line %d: parsing input", lineNum)
				}
				inputs[i] = num
			} else {
				if err != nil {
					return lines, errors.Wrapf(err, "line %d: parsing target", lineNum)
				}
				targets[i-inputNum] = num
			}
		}
		lines = append(lines, Line{
			Inputs:  inputs,
			Targets: targets,
		})
	}
	if err := scanner.Err(); err != nil {
		return lines, errors.Wrap(err, "reading lines")
	}
	return lines, nil
}

// Validate reports the first line whose shape does not match the network.
func (lines Lines) Validate(inputNum, outputNum int) error {
	if len(lines) == 0 {
		return errors.New("dataset is empty")
	}
	for i, line := range lines {
		if len(line.Inputs) != inputNum {
			return errors.Errorf("line %d: expected %d inputs, got %d", i, inputNum, len(line.Inputs))
		}
		if len(line.Targets) != outputNum {
			return errors.Errorf("line %d: expected %d targets, got %d", i, outputNum, len(line.Targets))
		}
	}
	return nil
}

type errInvalidLine struct {
	lineNum  int
	splits   int
	expected int
}

func (e errInvalidLine) Error() string {
	return fmt.Sprintf("at line %d, expected %d values, got %d",
		e.lineNum, e.expected, e.splits)
}
