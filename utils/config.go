package utils

import (
	"fmt"
)

// Config holds training configuration
type Config struct {
	Epochs   int
	Seed     uint64 // 0 seeds from the clock
	DataPath string // CSV truth table; empty means the built-in AND table
	LogEvery int
	JSONPath string
	Verbose  bool
}

// ValidateConfig validates training configuration
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("config is nil")
	}

	if config.Epochs <= 0 {
		return fmt.Errorf("epochs must be positive")
	}

	if config.LogEvery < 0 {
		return fmt.Errorf("log interval must not be negative")
	}

	if config.LogEvery > config.Epochs {
		return fmt.Errorf("log interval %d exceeds epochs %d", config.LogEvery, config.Epochs)
	}

	return nil
}
