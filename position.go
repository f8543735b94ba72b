package orbit3d

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// Position is a heliocentric Cartesian position in scene units.
type Position struct {
	X, Y, Z float64
}

// Vector returns the position as a slice.
func (p Position) Vector() []float64 {
	return []float64{p.X, p.Y, p.Z}
}

// Norm returns the distance to the origin.
func (p Position) Norm() float64 {
	return norm(p.Vector())
}

// String implements the Stringer interface.
func (p Position) String() string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", p.X, p.Y, p.Z)
}

// State is the intermediate result of a position query.
type State struct {
	JED float64
	M   float64 // mean anomaly (radians)
	E   float64 // eccentric anomaly (radians)
	ν   float64 // true anomaly (radians)
	R   float64 // radius in scene units
	Pos Position
}

// TrueAnomaly returns ν (unexported because it's a lowercase letter).
func (s State) TrueAnomaly() float64 {
	return s.ν
}

// Longitude returns the heliocentric longitude λ in [0, 360[ degrees.
func (s State) Longitude() float64 {
	return Rad2deg(math.Atan2(s.Pos.Y, s.Pos.X))
}

// Latitude returns the heliocentric latitude β in degrees.
func (s State) Latitude() float64 {
	return Rad2deg180(math.Atan2(s.Pos.Z, math.Hypot(s.Pos.X, s.Pos.Y)))
}

// StateAt solves for the state of the body at the provided JED.
func (f Frame) StateAt(el OrbitalElements, jed float64) (State, error) {
	if err := checkEccentricity(el.E); err != nil {
		return State{}, err
	}
	M, err := el.MeanAnomalyAt(jed)
	if err != nil {
		return State{}, err
	}
	E, err := f.Solver.EccentricAnomaly(M, el.E)
	if err != nil {
		return State{}, err
	}
	ν, err := TrueFromEccentric(E, el.E)
	if err != nil {
		return State{}, err
	}
	r := Radius(el.A, el.E, ν) * f.scale()
	i, Ω := f.angles(el)
	p := el.W * deg2rad
	u := ν + p - Ω
	sinu, cosu := math.Sincos(u)
	R := MxV33(PlaneToFrame(i, Ω), []float64{r * cosu, r * sinu, 0})
	if !finite(R...) {
		return State{}, fmt.Errorf("non finite position for %q at JED %f", el.label(), jed)
	}
	return State{JED: jed, M: M, E: E, ν: ν, R: r, Pos: Position{R[0], R[1], R[2]}}, nil
}

// PositionAt returns the position of the body at the provided JED.
func (f Frame) PositionAt(el OrbitalElements, jed float64) (Position, error) {
	st, err := f.StateAt(el, jed)
	if err != nil {
		return Position{}, err
	}
	return st.Pos, nil
}

// PositionAtTime is PositionAt for a time.Time.
func (f Frame) PositionAtTime(el OrbitalElements, dt time.Time) (Position, error) {
	return f.PositionAt(el, julian.TimeToJD(dt))
}

// PositionAt returns the position of el at jed relative to ref, at the default scale.
func PositionAt(el OrbitalElements, ref ReferenceFrame, jed float64) (Position, error) {
	return NewFrame(ref).PositionAt(el, jed)
}
