package orbit3d

import (
	"fmt"
	"math"
)

// J2000 is the Julian Ephemeris Date of the J2000 epoch.
const J2000 = 2451545.0

// OrbitalElements are the Keplerian elements of a body, as supplied by an
// ephemeris source. They are never modified once built.
// A zero N, P or Per means that element is not available.
type OrbitalElements struct {
	Name    string  `json:"full_name,omitempty" mapstructure:"full_name"`
	ProvDes string  `json:"prov_des,omitempty" mapstructure:"prov_des"`
	E       float64 `json:"e" mapstructure:"e"`               // eccentricity
	A       float64 `json:"a" mapstructure:"a"`               // semi-major axis (AU)
	I       float64 `json:"i" mapstructure:"i"`               // inclination (deg)
	Om      float64 `json:"om" mapstructure:"om"`             // longitude of the ascending node (deg)
	W       float64 `json:"w" mapstructure:"w"`               // longitude of perihelion (deg)
	Ma      float64 `json:"ma" mapstructure:"ma"`             // mean anomaly at epoch (deg)
	Epoch   float64 `json:"epoch" mapstructure:"epoch"`       // JED
	N       float64 `json:"n,omitempty" mapstructure:"n"`     // mean motion (deg/day)
	P       float64 `json:"P,omitempty" mapstructure:"p"`     // period (days)
	Per     float64 `json:"per,omitempty" mapstructure:"per"` // period proxy used when P is unknown (days)
}

func (el OrbitalElements) label() string {
	if el.Name != "" {
		return el.Name
	}
	return el.ProvDes
}

// Validate returns an error if these elements cannot describe a closed orbit.
func (el OrbitalElements) Validate() error {
	if err := checkEccentricity(el.E); err != nil {
		return err
	}
	if !finite(el.A, el.I, el.Om, el.W, el.Ma, el.Epoch, el.N, el.P, el.Per) {
		return fmt.Errorf("non finite orbital element for %q", el.label())
	}
	return nil
}

// MeanMotion returns the mean motion in radians per day.
// The N element is used when set, otherwise it is derived from the period P.
func (el OrbitalElements) MeanMotion() (float64, error) {
	if el.N != 0 {
		return el.N * deg2rad, nil
	}
	if el.P != 0 {
		return twoPi / el.P, nil
	}
	return 0, &MissingPeriodError{Body: el.label(), Field: "n/P"}
}

// MeanAnomalyAt returns the mean anomaly (radians) at the provided JED.
// It is ma + n·(-d) where d = epoch - jed.
func (el OrbitalElements) MeanAnomalyAt(jed float64) (float64, error) {
	n, err := el.MeanMotion()
	if err != nil {
		return 0, err
	}
	d := el.Epoch - jed
	return el.Ma*deg2rad + n*-d, nil
}

// SamplingInterval returns the number of days covered by an orbit path: P+1
// when the period is known, Per otherwise.
func (el OrbitalElements) SamplingInterval() (float64, error) {
	var interval float64
	switch {
	case el.P != 0:
		interval = el.P + 1
	case el.Per != 0:
		interval = el.Per
	default:
		return 0, &MissingPeriodError{Body: el.label(), Field: "P/per"}
	}
	if !(interval > 0) {
		return 0, fmt.Errorf("non positive sampling interval %g days for %q (P=%g per=%g)", interval, el.label(), el.P, el.Per)
	}
	return interval, nil
}

// Period returns the orbital period in days, derived from the mean motion when P is not set.
func (el OrbitalElements) Period() (float64, error) {
	if el.P != 0 {
		return el.P, nil
	}
	n, err := el.MeanMotion()
	if err != nil {
		return 0, err
	}
	return twoPi / math.Abs(n), nil
}

// Perihelion returns the perihelion distance in AU.
func (el OrbitalElements) Perihelion() float64 {
	return el.A * (1 - el.E)
}

// Aphelion returns the aphelion distance in AU.
func (el OrbitalElements) Aphelion() float64 {
	return el.A * (1 + el.E)
}

// String implements the stringer interface.
func (el OrbitalElements) String() string {
	return fmt.Sprintf("%s a=%.4f e=%.4f i=%.3f Ω=%.3f ϖ=%.3f M=%.3f @%.1f", el.label(), el.A, el.E, el.I, el.Om, el.W, el.Ma, el.Epoch)
}
