package orbit3d

import "fmt"

// DefaultScale is the number of scene units per astronomical unit.
const DefaultScale = 50.0

// ReferenceFrame holds the inclination and node (degrees) of the reference
// plane. These are subtracted from a body's i and om before its position is
// computed. The zero value is the absolute ecliptic frame.
type ReferenceFrame struct {
	I  float64 `mapstructure:"i"`
	Om float64 `mapstructure:"om"`
}

// FrameOf returns the reference frame defined by the plane of the provided body.
func FrameOf(ref OrbitalElements) ReferenceFrame {
	return ReferenceFrame{I: ref.I, Om: ref.Om}
}

// String implements the Stringer interface.
func (r ReferenceFrame) String() string {
	return fmt.Sprintf("frame(i=%.5f Ω=%.5f)", r.I, r.Om)
}

// Frame is the configuration of a position query: the reference plane and
// the scaling from AU to scene units.
type Frame struct {
	Reference ReferenceFrame
	Scale     float64
	Solver    Solver
}

// NewFrame returns a frame relative to the provided reference plane at the default scale.
func NewFrame(ref ReferenceFrame) Frame {
	return Frame{Reference: ref, Scale: DefaultScale, Solver: NewSolver()}
}

// angles returns the reference adjusted inclination and node, in radians.
func (f Frame) angles(el OrbitalElements) (i, Ω float64) {
	i = (el.I - f.Reference.I) * deg2rad
	Ω = (el.Om - f.Reference.Om) * deg2rad
	return
}

func (f Frame) scale() float64 {
	if f.Scale == 0 {
		return DefaultScale
	}
	return f.Scale
}
