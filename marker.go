package orbit3d

// MarkerKind tells the rendering layer how a body is drawn.
type MarkerKind uint8

const (
	// MarkerSphere is a body drawn as its own (possibly textured) sphere.
	MarkerSphere MarkerKind = iota + 1
	// MarkerVertex is a body drawn as one vertex of a shared particle geometry.
	MarkerVertex
)

func (k MarkerKind) String() string {
	switch k {
	case MarkerSphere:
		return "sphere"
	case MarkerVertex:
		return "vertex"
	default:
		return "unknown"
	}
}

// Marker is the position of a body along with what the renderer needs to place it.
// Size and Texture only apply to spheres, VertexIndex only to vertices.
type Marker struct {
	Kind        MarkerKind
	Position    Position
	Color       uint32
	Size        float64
	Texture     string
	VertexIndex int
}

// DisplayOptions are the presentation parameters of a body.
type DisplayOptions struct {
	Color      uint32  `mapstructure:"color"`
	Width      float64 `mapstructure:"width"`
	ObjectSize float64 `mapstructure:"object_size"`
	JED        float64 `mapstructure:"jed"`
	Texture    string  `mapstructure:"texture_path"`
	Sphere     bool    `mapstructure:"sphere"`
}

func (o DisplayOptions) withDefaults() DisplayOptions {
	if o.Color == 0 {
		o.Color = 0xffee00
	}
	if o.Width == 0 {
		o.Width = 1
	}
	if o.ObjectSize == 0 {
		o.ObjectSize = 1
	}
	if o.JED == 0 {
		o.JED = J2000
	}
	return o
}

// Body ties orbital elements to their display options.
type Body struct {
	Elements    OrbitalElements
	Opts        DisplayOptions
	VertexIndex int // index in the shared particle geometry, for non sphere bodies
	sampler     *Sampler
}

// NewBody returns a new body positioned by the provided sampler.
func NewBody(el OrbitalElements, opts DisplayOptions, s *Sampler) *Body {
	return &Body{Elements: el, Opts: opts.withDefaults(), sampler: s}
}

// Marker returns the marker of this body at the provided JED.
func (b *Body) Marker(jed float64) (Marker, error) {
	pos, err := b.sampler.Frame.PositionAt(b.Elements, jed)
	if err != nil {
		return Marker{}, err
	}
	m := Marker{Position: pos, Color: b.Opts.Color}
	if b.Opts.Sphere {
		m.Kind = MarkerSphere
		m.Size = b.Opts.ObjectSize
		m.Texture = b.Opts.Texture
	} else {
		m.Kind = MarkerVertex
		m.VertexIndex = b.VertexIndex
	}
	return m, nil
}

// Ellipse returns the orbit path of this body starting at its configured JED.
func (b *Body) Ellipse() (OrbitPath, error) {
	return b.sampler.BuildPath(b.Elements, b.Opts.JED)
}
