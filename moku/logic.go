package moku

import "fmt"

// LogicAnalyzer is the logic analyzer / pattern generator instrument.
type LogicAnalyzer struct {
	*Client
}

// PinPattern assigns one repeating bit pattern to a digital pin.
type PinPattern struct {
	Pin     int   `json:"pin"`
	Pattern []int `json:"pattern"`
}

// NewLogicAnalyzer deploys the logic analyzer instrument on the device.
func NewLogicAnalyzer(c *Client) (*LogicAnalyzer, error) {
	if _, err := c.do("logicanalyzer", map[string]any{}, nil); err != nil {
		return nil, fmt.Errorf("deploy logic analyzer: %w", err)
	}
	return &LogicAnalyzer{c}, nil
}

// SetPinMode routes a digital pin, e.g. to pattern generator 1 with "PG1".
func (la *LogicAnalyzer) SetPinMode(pin int, state string) error {
	payload := map[string]any{"pin": pin, "state": state}
	if _, err := la.do("logicanalyzer/set_pin_mode", payload, nil); err != nil {
		return fmt.Errorf("set pin mode: %w", err)
	}
	return nil
}

// SetPatternGenerator loads pin patterns into one of the pattern generators.
// The divider scales the pattern clock down from the base rate.
func (la *LogicAnalyzer) SetPatternGenerator(gen int, patterns []PinPattern, divider int) error {
	payload := map[string]any{
		"pattern_generator": gen,
		"patterns":          patterns,
		"divider":           divider,
	}
	if _, err := la.do("logicanalyzer/set_pattern_generator", payload, nil); err != nil {
		return fmt.Errorf("set pattern generator: %w", err)
	}
	return nil
}

// ConstantPattern builds an all-ones or all-zeros pattern for one pin, the
// building block for holding a pin at a fixed logic level.
func ConstantPattern(pin int, level int, length int) []PinPattern {
	bits := make([]int, length)
	for i := range bits {
		bits[i] = level
	}
	return []PinPattern{{Pin: pin, Pattern: bits}}
}
