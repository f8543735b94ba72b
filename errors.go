package orbit3d

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEccentricity is matched by any *EccentricityError.
	ErrInvalidEccentricity = errors.New("invalid eccentricity")
	// ErrConvergence is matched by any *ConvergenceError.
	ErrConvergence = errors.New("kepler iteration did not converge")
	// ErrMissingPeriodData is matched by any *MissingPeriodError.
	ErrMissingPeriodData = errors.New("missing period data")
)

// EccentricityError is returned when the eccentricity is outside of [0, 1).
// Parabolic and hyperbolic orbits are not supported.
type EccentricityError struct {
	E float64
}

func (e *EccentricityError) Error() string {
	return fmt.Sprintf("%s: e=%g not in [0, 1)", ErrInvalidEccentricity, e.E)
}

// Is allows errors.Is(err, ErrInvalidEccentricity).
func (e *EccentricityError) Is(target error) bool {
	return target == ErrInvalidEccentricity
}

// ConvergenceError is returned when Kepler's equation could not be solved
// within the iteration cap.
type ConvergenceError struct {
	M          float64 // mean anomaly (radians)
	E          float64 // eccentricity
	Last       float64 // last eccentric anomaly estimate (radians)
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s after %d iterations (M=%g, e=%g, last E=%g)", ErrConvergence, e.Iterations, e.M, e.E, e.Last)
}

// Is allows errors.Is(err, ErrConvergence).
func (e *ConvergenceError) Is(target error) bool {
	return target == ErrConvergence
}

// MissingPeriodError names the element fields of which none was set.
type MissingPeriodError struct {
	Body  string
	Field string // e.g. "n/P" or "P/per"
}

func (e *MissingPeriodError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: none of %s is set", ErrMissingPeriodData, e.Field)
	}
	return fmt.Sprintf("%s for %s: none of %s is set", ErrMissingPeriodData, e.Body, e.Field)
}

// Is allows errors.Is(err, ErrMissingPeriodData).
func (e *MissingPeriodError) Is(target error) bool {
	return target == ErrMissingPeriodData
}
