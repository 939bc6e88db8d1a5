package utils

import (
	"encoding/json"
	"fmt"
	"os"
)

// ReportVersion is written into every report file.
const ReportVersion = "1.0"

// PredictionData is one reported (input, expected, actual) triple
type PredictionData struct {
	Inputs   []float64 `json:"inputs"`
	Expected float64   `json:"expected"`
	Actual   float64   `json:"actual"`
}

// Report describes a finished training run. It carries predictions only;
// weights are never written out.
type Report struct {
	Version     string           `json:"version"`
	Epochs      int              `json:"epochs"`
	Seed        uint64           `json:"seed"`
	MSE         float64          `json:"mse"`
	Predictions []PredictionData `json:"predictions"`
}

// SaveReport saves a report to a JSON file
func SaveReport(filepath string, report *Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	return os.WriteFile(filepath, data, 0644)
}

// LoadReport loads a report from a JSON file
func LoadReport(filepath string) (*Report, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read report file: %w", err)
	}
	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &report, nil
}
