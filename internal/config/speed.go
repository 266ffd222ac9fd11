package config

import (
	"fmt"
	"time"
)

// SpeedCurve maps snake length to the delay between ticks. The delay starts
// at Start for a one-segment snake and shrinks by Step per extra segment,
// never dropping below Min.
type SpeedCurve struct {
	Start time.Duration `yaml:"start"`
	Min   time.Duration `yaml:"min"`
	Step  time.Duration `yaml:"step"`
}

// For returns the tick delay for a snake of the given length.
func (s SpeedCurve) For(length int) time.Duration {
	d := s.Start - time.Duration(length-1)*s.Step
	if d < s.Min {
		return s.Min
	}
	if d > s.Start {
		return s.Start
	}
	return d
}

// Validate checks the curve bounds.
func (s SpeedCurve) Validate() error {
	if s.Min <= 0 || s.Start < s.Min || s.Step < 0 {
		return fmt.Errorf("%w: speed curve start=%s min=%s step=%s", ErrInvalidConfig, s.Start, s.Min, s.Step)
	}
	return nil
}
