package ode

import "gonum.org/v1/gonum/floats"

// Linspace returns n evenly spaced values from start to stop inclusive.
func Linspace(start, stop float64, n int) ([]float64, error) {
	if n < 2 || stop <= start {
		return nil, ErrBadGrid
	}
	return floats.Span(make([]float64, n), start, stop), nil
}
