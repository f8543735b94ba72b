package orbit3d

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	deg2rad = math.Pi / 180
	twoPi   = 2 * math.Pi
)

// norm returns the norm of a given vector which is supposed to be 3x1.
func norm(v []float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// finite returns whether none of the provided values is NaN or infinite.
func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Rad2deg converts radians to degrees in [0; 360[.
func Rad2deg(a float64) float64 {
	d := math.Mod(a/deg2rad, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// Rad2deg180 converts radians to degrees in ]-180; 180].
func Rad2deg180(a float64) float64 {
	d := math.Mod(a/deg2rad, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

// anglesEqual returns whether two angles in radians are equal within ε, modulo 2π.
func anglesEqual(a, b, ε float64) bool {
	diff := math.Mod(math.Abs(a-b), twoPi)
	return scalar.EqualWithinAbs(diff, 0, ε) || scalar.EqualWithinAbs(diff, twoPi, ε)
}
