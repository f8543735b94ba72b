package orbit3d

import "math"

const (
	// DefaultTolerance is the absolute convergence threshold on the eccentric anomaly, in radians.
	DefaultTolerance = 1e-7
	// DefaultMaxIterations bounds the fixed point iteration of Kepler's equation.
	DefaultMaxIterations = 100
)

// Solver solves Kepler's equation E = M + e·sin(E) by fixed point iteration.
// The zero value is usable and uses the defaults.
type Solver struct {
	Tolerance     float64
	MaxIterations int
}

// NewSolver returns a solver with the default tolerance and iteration cap.
func NewSolver() Solver {
	return Solver{Tolerance: DefaultTolerance, MaxIterations: DefaultMaxIterations}
}

func (s Solver) tolerance() float64 {
	if s.Tolerance <= 0 {
		return DefaultTolerance
	}
	return s.Tolerance
}

func (s Solver) maxIterations() int {
	if s.MaxIterations <= 0 {
		return DefaultMaxIterations
	}
	return s.MaxIterations
}

// EccentricAnomaly returns E (radians) for the mean anomaly M (radians) and the eccentricity e.
func (s Solver) EccentricAnomaly(M, e float64) (float64, error) {
	if err := checkEccentricity(e); err != nil {
		return 0, err
	}
	tol := s.tolerance()
	maxIter := s.maxIterations()
	E0 := M
	for iter := 1; iter <= maxIter; iter++ {
		E1 := M + e*math.Sin(E0)
		diff := math.Abs(E1 - E0)
		E0 = E1
		if diff <= tol {
			return E0, nil
		}
	}
	return 0, &ConvergenceError{M: M, E: e, Last: E0, Iterations: maxIter}
}

// TrueAnomaly returns ν (radians) for the mean anomaly M and eccentricity e.
func (s Solver) TrueAnomaly(M, e float64) (float64, error) {
	E, err := s.EccentricAnomaly(M, e)
	if err != nil {
		return 0, err
	}
	return TrueFromEccentric(E, e)
}

// TrueFromEccentric converts the eccentric anomaly into the true anomaly.
func TrueFromEccentric(E, e float64) (float64, error) {
	if err := checkEccentricity(e); err != nil {
		return 0, err
	}
	return 2 * math.Atan(math.Sqrt((1+e)/(1-e))*math.Tan(E/2)), nil
}

// Radius returns the radius vector norm a(1-e²)/(1+e·cos(ν)), in the units of a.
func Radius(a, e, ν float64) float64 {
	return a * (1 - e*e) / (1 + e*math.Cos(ν))
}

func checkEccentricity(e float64) error {
	if !(e >= 0 && e < 1) {
		// Also catches NaN.
		return &EccentricityError{E: e}
	}
	return nil
}
