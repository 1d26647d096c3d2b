package timefrac

import (
	"fmt"
	"strings"
)

// DefaultPrecision is the number of significant digits printed by default.
const DefaultPrecision = 6

// Fraction is a pair of durations parsed from "TIME1/TIME2".
type Fraction struct {
	Numerator   Duration
	Denominator Duration
}

// ParseFraction parses an argument of the form TIME1/TIME2.
func ParseFraction(arg string) (Fraction, error) {
	parts := strings.Split(arg, "/")
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return Fraction{}, fmt.Errorf("%w: provide two times separated by '/'", ErrMalformedInput)
	}

	num, err := ParseDuration(parts[0])
	if err != nil {
		return Fraction{}, fmt.Errorf("numerator: %w", err)
	}
	den, err := ParseDuration(parts[1])
	if err != nil {
		return Fraction{}, fmt.Errorf("denominator: %w", err)
	}

	return Fraction{Numerator: num, Denominator: den}, nil
}

// Value returns Numerator/Denominator in seconds.
func (f Fraction) Value() (float64, error) {
	den := f.Denominator.TotalSeconds()
	if den == 0 {
		return 0, fmt.Errorf("%w: %s is zero seconds", ErrDivisionByZero, f.Denominator)
	}
	return float64(f.Numerator.TotalSeconds()) / float64(den), nil
}

// Format prints v with the given number of significant digits using the
// shortest of decimal or exponent notation, like %g. Precision below one
// falls back to DefaultPrecision.
func Format(v float64, precision int) string {
	if precision < 1 {
		precision = DefaultPrecision
	}
	return fmt.Sprintf("%.*g", precision, v)
}

// Result is the outcome of a successful Compute.
type Result struct {
	Fraction  Fraction
	Value     float64
	Formatted string
}

// Compute parses arg, divides the two durations and formats the quotient
// with the given number of significant digits.
func Compute(arg string, precision int) (Result, error) {
	f, err := ParseFraction(arg)
	if err != nil {
		return Result{}, err
	}
	v, err := f.Value()
	if err != nil {
		return Result{}, err
	}
	return Result{Fraction: f, Value: v, Formatted: Format(v, precision)}, nil
}
