// Package timefrac parses H:M:S durations and computes the ratio of two of
// them.
package timefrac

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrTooManyColons is returned for durations with more than three fields.
	ErrTooManyColons = errors.New("too many colons")
	// ErrInvalidNumber is returned when a field is not an integer.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrNegativeValue is returned when a field is below zero.
	ErrNegativeValue = errors.New("negative value")
	// ErrOutOfRange is returned when minutes or seconds exceed 59, or hours
	// exceed MaxHours.
	ErrOutOfRange = errors.New("value out of range")
	// ErrMalformedInput is returned when the argument is not TIME1/TIME2.
	ErrMalformedInput = errors.New("malformed input")
	// ErrDivisionByZero is returned when the denominator is zero seconds.
	ErrDivisionByZero = errors.New("division by zero")
)

// MaxHours is the largest hour count whose total seconds still fit in an
// int alongside 59 minutes and 59 seconds.
const MaxHours = (math.MaxInt - 59*60 - 59) / 3600

// Duration is a normalized hours/minutes/seconds triple. Minutes and
// seconds are always in 0..59.
type Duration struct {
	Hours   int
	Minutes int
	Seconds int
}

// TotalSeconds returns the duration in seconds.
func (d Duration) TotalSeconds() int {
	return d.Hours*3600 + d.Minutes*60 + d.Seconds
}

// String formats the duration as H:MM:SS.
func (d Duration) String() string {
	return fmt.Sprintf("%d:%02d:%02d", d.Hours, d.Minutes, d.Seconds)
}

// FromSeconds decomposes a non-negative second count into a Duration.
func FromSeconds(total int) Duration {
	if total < 0 {
		total = 0
	}
	return Duration{
		Hours:   total / 3600,
		Minutes: total % 3600 / 60,
		Seconds: total % 60,
	}
}

// ParseDuration parses "S", "M:S" or "H:M:S". Whitespace anywhere in the
// string is ignored. Hours may exceed 23 up to MaxHours.
func ParseDuration(s string) (Duration, error) {
	s = strings.Join(strings.Fields(s), "")
	parts := strings.Split(s, ":")

	var fields []string
	switch len(parts) {
	case 1:
		fields = []string{"seconds"}
	case 2:
		fields = []string{"minutes", "seconds"}
	case 3:
		fields = []string{"hours", "minutes", "seconds"}
	default:
		return Duration{}, fmt.Errorf("%w in %q: expected at most H:M:S", ErrTooManyColons, s)
	}

	var d Duration
	for i, field := range fields {
		n, err := parseField(field, parts[i])
		if err != nil {
			return Duration{}, err
		}
		switch field {
		case "hours":
			d.Hours = n
		case "minutes":
			d.Minutes = n
		case "seconds":
			d.Seconds = n
		}
	}

	return d, nil
}

func parseField(field, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w for %s: %q", ErrInvalidNumber, field, raw)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w for %s: %d", ErrNegativeValue, field, n)
	}
	if field == "hours" && n > MaxHours {
		return 0, fmt.Errorf("%w: hours must be at most %d, got %d", ErrOutOfRange, MaxHours, n)
	}
	if field != "hours" && n > 59 {
		return 0, fmt.Errorf("%w: %s must be between 0 and 59, got %d", ErrOutOfRange, field, n)
	}
	return n, nil
}
