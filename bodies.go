package orbit3d

import (
	"fmt"
	"strings"
)

// Planetary mean elements at J2000 (JPL approximate positions, valid 1800-2050).
// The mean anomaly is L - ϖ and W holds the longitude of perihelion ϖ.

// Mercury is fast.
var Mercury = OrbitalElements{Name: "Mercury", A: 0.38709927, E: 0.20563593, I: 7.00497902, Om: 48.33076593, W: 77.45779628, Ma: 174.79252722, Epoch: J2000, P: 87.969}

// Venus is poisonous.
var Venus = OrbitalElements{Name: "Venus", A: 0.72333566, E: 0.00677672, I: 3.39467605, Om: 76.67984255, W: 131.60246718, Ma: 50.37663232, Epoch: J2000, P: 224.701}

// Earth is home, and the default reference plane.
var Earth = OrbitalElements{Name: "Earth", A: 1.00000261, E: 0.01671123, I: 0.00001531, Om: 0, W: 102.93768193, Ma: -2.47311027, Epoch: J2000, P: 365.256}

// Mars is the vacation place.
var Mars = OrbitalElements{Name: "Mars", A: 1.52371034, E: 0.09339410, I: 1.84969142, Om: 49.55953891, W: -23.94362959, Ma: 19.39019754, Epoch: J2000, P: 686.980}

// Jupiter is big.
var Jupiter = OrbitalElements{Name: "Jupiter", A: 5.20288700, E: 0.04838624, I: 1.30439695, Om: 100.47390909, W: 14.72847983, Ma: 19.66796068, Epoch: J2000, P: 4332.589}

// Saturn floats and that's really cool.
var Saturn = OrbitalElements{Name: "Saturn", A: 9.53667594, E: 0.05386179, I: 2.48599187, Om: 113.66242448, W: 92.59887831, Ma: -42.64463408, Epoch: J2000, P: 10759.22}

// Uranus is no joke.
var Uranus = OrbitalElements{Name: "Uranus", A: 19.18916464, E: 0.04725744, I: 0.77263783, Om: 74.01692503, W: 170.95427630, Ma: 142.28382821, Epoch: J2000, P: 30685.4}

// Neptune is far.
var Neptune = OrbitalElements{Name: "Neptune", A: 30.06992276, E: 0.00859048, I: 1.77004347, Om: 131.78422574, W: 44.96476227, Ma: -100.08479196, Epoch: J2000, P: 60189.0}

// Planets lists the planets in order from the Sun.
var Planets = []OrbitalElements{Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune}

// BodyFromString returns the planet from its name.
func BodyFromString(name string) (OrbitalElements, error) {
	for _, p := range Planets {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return OrbitalElements{}, fmt.Errorf("undefined planet '%s'", name)
}
