package core

import (
	"errors"
	"fmt"
	"math"
)

// DefaultMaxSlices caps how many slices a single run may produce.
const DefaultMaxSlices = 1_000_000

var (
	ErrEmptyInput           = errors.New("no processes supplied")
	ErrInvalidQuantum       = errors.New("time quantum must be a positive integer")
	ErrInvalidBurstTime     = errors.New("burst time must be a positive integer")
	ErrEmptyProcessName     = errors.New("process name is empty")
	ErrDuplicateProcessName = errors.New("duplicate process name")
	ErrTooManySlices        = errors.New("workload needs too many slices")
	ErrNotInitialized       = errors.New("stepper is not initialized")
	ErrAlreadyCompleted     = errors.New("simulation already completed")
)

// Validate checks a workload and quantum before a run starts, using
// DefaultMaxSlices as the slice cap.
func Validate(processes []Process, quantum int) error {
	return ValidateWithLimit(processes, quantum, DefaultMaxSlices)
}

// ValidateWithLimit is Validate with an explicit cap on sum(ceil(burst/quantum)).
// A non-positive maxSlices disables the cap; the total burst time must still
// fit in an int so the clock cannot wrap.
func ValidateWithLimit(processes []Process, quantum int, maxSlices int) error {
	if len(processes) == 0 {
		return ErrEmptyInput
	}
	if quantum < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantum, quantum)
	}
	seen := make(map[string]struct{}, len(processes))
	total, slices := 0, 0
	for i, p := range processes {
		if p.Name == "" {
			return fmt.Errorf("%w: process #%d", ErrEmptyProcessName, i+1)
		}
		if _, ok := seen[p.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateProcessName, p.Name)
		}
		seen[p.Name] = struct{}{}
		if p.BurstTime < 1 {
			return fmt.Errorf("%w: process %q has %d", ErrInvalidBurstTime, p.Name, p.BurstTime)
		}
		if p.BurstTime > math.MaxInt-total {
			return fmt.Errorf("%w: total burst time overflows at process %q", ErrInvalidBurstTime, p.Name)
		}
		total += p.BurstTime
		slices += (p.BurstTime-1)/quantum + 1
		if maxSlices > 0 && slices > maxSlices {
			return fmt.Errorf("%w: more than %d at quantum %d", ErrTooManySlices, maxSlices, quantum)
		}
	}
	return nil
}

// IsInputError reports whether err was caused by an invalid workload or quantum.
func IsInputError(err error) bool {
	return errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrInvalidQuantum) ||
		errors.Is(err, ErrInvalidBurstTime) ||
		errors.Is(err, ErrEmptyProcessName) ||
		errors.Is(err, ErrDuplicateProcessName) ||
		errors.Is(err, ErrTooManySlices)
}
