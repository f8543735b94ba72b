package orbit3d

import (
	"math"
	"runtime"
	"sync"

	kitlog "github.com/go-kit/kit/log"
)

const (
	// DefaultDensityThreshold is the eccentricity above which orbits are sampled densely.
	DefaultDensityThreshold = 0.20
	// DefaultSparseSamples is the number of samples of an orbit below the density threshold.
	DefaultSparseSamples = 100
	// DefaultDenseSamples is the number of samples of an orbit above the density threshold.
	DefaultDenseSamples = 300

	parallelThreshold = 256 // sample counts below this are always sampled sequentially
)

// OrbitPath is an open polyline approximating a whole orbit.
type OrbitPath struct {
	Name      string
	Positions []Position
	JEDs      []float64 // time tag of each position
	Start     float64   // JED of the first position
	Step      float64   // days between two positions
	Samples   int       // number of steps, there are Samples+1 positions
}

// Len returns the number of positions.
func (p OrbitPath) Len() int {
	return len(p.Positions)
}

// Closed returns whether a closing segment is implied. Orbit paths are never closed.
func (p OrbitPath) Closed() bool {
	return false
}

// Span returns the number of days between the first and last positions.
func (p OrbitPath) Span() float64 {
	return p.Step * float64(p.Samples)
}

// End returns the JED of the last position.
func (p OrbitPath) End() float64 {
	return p.Start + p.Span()
}

// Sampler builds orbit paths.
type Sampler struct {
	Frame            Frame
	DensityThreshold float64
	SparseSamples    int
	DenseSamples     int
	Parallel         bool
	Workers          int // defaults to GOMAXPROCS
	logger           kitlog.Logger
}

// NewSampler returns a sampler with the default sample counts which does not log.
func NewSampler(f Frame) *Sampler {
	return &Sampler{Frame: f, DensityThreshold: DefaultDensityThreshold, SparseSamples: DefaultSparseSamples, DenseSamples: DefaultDenseSamples, logger: kitlog.NewNopLogger()}
}

// SetLogger sets the logger used by this sampler.
func (s *Sampler) SetLogger(logger kitlog.Logger) {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	s.logger = kitlog.With(logger, "subsys", "path")
}

func (s *Sampler) log(keyvals ...interface{}) {
	if s.logger == nil {
		return
	}
	s.logger.Log(keyvals...)
}

func (s *Sampler) threshold() float64 {
	if s.DensityThreshold <= 0 {
		return DefaultDensityThreshold
	}
	return s.DensityThreshold
}

// SampleCount returns the number of steps used to sample the provided orbit.
// Eccentric orbits need more points around perihelion.
func (s *Sampler) SampleCount(el OrbitalElements) int {
	if el.E > s.threshold() {
		if s.DenseSamples <= 0 {
			return DefaultDenseSamples
		}
		return s.DenseSamples
	}
	if s.SparseSamples <= 0 {
		return DefaultSparseSamples
	}
	return s.SparseSamples
}

// BuildPath samples the whole orbit of el starting at startJED.
func (s *Sampler) BuildPath(el OrbitalElements, startJED float64) (OrbitPath, error) {
	if err := checkEccentricity(el.E); err != nil {
		return OrbitPath{}, err
	}
	limit, err := el.SamplingInterval()
	if err != nil {
		return OrbitPath{}, err
	}
	parts := s.SampleCount(el)
	delta := math.Ceil(limit / float64(parts))
	path := OrbitPath{Name: el.label(), Positions: make([]Position, parts+1), JEDs: make([]float64, parts+1), Start: startJED, Step: delta, Samples: parts}
	for k := range path.JEDs {
		path.JEDs[k] = startJED + float64(k)*delta
	}
	s.log("level", "debug", "body", path.Name, "samples", parts, "step(d)", delta, "start", startJED)

	if s.Parallel && parts+1 >= parallelThreshold {
		err = s.sampleParallel(el, path)
	} else {
		err = s.sample(el, path, 0, len(path.JEDs))
	}
	if err != nil {
		s.log("level", "warning", "body", path.Name, "err", err)
		return OrbitPath{}, err
	}
	return path, nil
}

// sample fills the positions of path in [from, to[.
func (s *Sampler) sample(el OrbitalElements, path OrbitPath, from, to int) error {
	for k := from; k < to; k++ {
		pos, err := s.Frame.PositionAt(el, path.JEDs[k])
		if err != nil {
			return err
		}
		path.Positions[k] = pos
	}
	return nil
}

func (s *Sampler) sampleParallel(el OrbitalElements, path OrbitPath) error {
	workers := s.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	n := len(path.JEDs)
	chunk := (n + workers - 1) / workers
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		from := w * chunk
		if from >= n {
			break
		}
		to := from + chunk
		if to > n {
			to = n
		}
		wg.Add(1)
		go func(w, from, to int) {
			defer wg.Done()
			errs[w] = s.sample(el, path, from, to)
		}(w, from, to)
	}
	wg.Wait()
	// Report the error of the earliest sample, as a sequential run would.
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// BuildPath samples the orbit of el relative to ref with the default sampler settings.
func BuildPath(el OrbitalElements, ref ReferenceFrame, startJED float64) (OrbitPath, error) {
	return NewSampler(NewFrame(ref)).BuildPath(el, startJED)
}
