package orbit3d

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	kitlog "github.com/go-kit/kit/log"
)

func TestBuildPathDense(t *testing.T) {
	el := OrbitalElements{Name: "dense", E: 0.5, A: 1, P: 365, Epoch: J2000}
	path, err := BuildPath(el, ReferenceFrame{}, J2000)
	if err != nil {
		t.Fatal(err)
	}
	if path.Samples != 300 {
		t.Fatalf("%d samples, expected 300", path.Samples)
	}
	if path.Len() != 301 {
		t.Fatalf("%d positions, expected 301", path.Len())
	}
	if path.Step != 2 {
		t.Fatalf("step=%f, expected ceil(366/300)=2", path.Step)
	}
	if path.Span() != 600 || path.End() != J2000+600 {
		t.Fatalf("span=%f end=%f", path.Span(), path.End())
	}
	if path.Closed() {
		t.Fatal("orbit paths are open")
	}
	for k, jed := range path.JEDs {
		if jed != J2000+float64(2*k) {
			t.Fatalf("sample %d at %f", k, jed)
		}
		exp, err := PositionAt(el, ReferenceFrame{}, jed)
		if err != nil {
			t.Fatal(err)
		}
		if path.Positions[k] != exp {
			t.Fatalf("sample %d: %s != %s", k, path.Positions[k], exp)
		}
	}
}

func TestBuildPathSparse(t *testing.T) {
	path, err := BuildPath(Earth, FrameOf(Earth), J2000)
	if err != nil {
		t.Fatal(err)
	}
	if path.Samples != 100 || path.Len() != 101 {
		t.Fatalf("samples=%d len=%d", path.Samples, path.Len())
	}
	if path.Step != 4 {
		t.Fatalf("step=%f, expected ceil(366.256/100)=4", path.Step)
	}
	if path.Name != "Earth" {
		t.Fatalf("name=%q", path.Name)
	}
}

func TestBuildPathThreshold(t *testing.T) {
	s := NewSampler(NewFrame(ReferenceFrame{}))
	if n := s.SampleCount(OrbitalElements{E: 0.20}); n != DefaultSparseSamples {
		t.Fatalf("e=0.20 should be sampled sparsely, got %d", n)
	}
	if n := s.SampleCount(OrbitalElements{E: 0.2000001}); n != DefaultDenseSamples {
		t.Fatalf("e>0.20 should be sampled densely, got %d", n)
	}
	var zero Sampler
	if zero.SampleCount(OrbitalElements{E: 0.5}) != DefaultDenseSamples || zero.SampleCount(OrbitalElements{E: 0}) != DefaultSparseSamples {
		t.Fatal("zero sampler should use the default sample counts")
	}
	if n := zero.SampleCount(OrbitalElements{E: 0.1}); n != DefaultSparseSamples {
		t.Fatalf("zero sampler should use the default density threshold, got %d samples for e=0.1", n)
	}
	zero.Frame = NewFrame(ReferenceFrame{})
	path, err := zero.BuildPath(OrbitalElements{E: 0.1, A: 1, P: 365}, J2000)
	if err != nil {
		t.Fatal(err)
	}
	if path.Samples != DefaultSparseSamples || path.Len() != DefaultSparseSamples+1 {
		t.Fatalf("samples=%d len=%d", path.Samples, path.Len())
	}
}

func TestBuildPathPer(t *testing.T) {
	eros := OrbitalElements{Name: "433 Eros", E: 0.2229512, A: 1.458046, I: 10.82830, Om: 304.3011, W: 178.9297, Ma: 271.0717, Epoch: 2457000.5, N: 0.5597752, Per: 643.1}
	path, err := BuildPath(eros, FrameOf(Earth), 2457000.5)
	if err != nil {
		t.Fatal(err)
	}
	if path.Samples != 300 || path.Step != 3 {
		t.Fatalf("samples=%d step=%f", path.Samples, path.Step)
	}
	if path.Span() != 900 {
		t.Fatalf("span=%f", path.Span())
	}
	start, err := PositionAt(eros, FrameOf(Earth), 2457000.5)
	if err != nil {
		t.Fatal(err)
	}
	if path.Positions[0] != start {
		t.Fatalf("first position %s != %s", path.Positions[0], start)
	}
}

func TestBuildPathErrors(t *testing.T) {
	if _, err := BuildPath(OrbitalElements{E: 0.1, A: 1, N: 1}, ReferenceFrame{}, J2000); !errors.Is(err, ErrMissingPeriodData) {
		t.Fatalf("expected missing period data, got %v", err)
	}
	if _, err := BuildPath(OrbitalElements{E: 0.1, A: 1, Per: 100}, ReferenceFrame{}, J2000); !errors.Is(err, ErrMissingPeriodData) {
		t.Fatalf("expected missing mean motion, got %v", err)
	}
	if _, err := BuildPath(OrbitalElements{E: 1, A: 1, P: 100}, ReferenceFrame{}, J2000); !errors.Is(err, ErrInvalidEccentricity) {
		t.Fatalf("expected invalid eccentricity, got %v", err)
	}
	for _, el := range []OrbitalElements{{E: 0.1, A: 1, N: 1, Per: -50}, {E: 0.1, A: 1, P: -1}, {E: 0.1, A: 1, P: -400}} {
		if _, err := BuildPath(el, ReferenceFrame{}, J2000); err == nil {
			t.Fatalf("expected a non positive interval error for P=%f per=%f", el.P, el.Per)
		}
	}
}

func TestBuildPathParallel(t *testing.T) {
	el := OrbitalElements{Name: "parallel", E: 0.6, A: 2.2, I: 8, Om: 20, W: 310, Ma: 90, Epoch: J2000, P: 1191}
	seq := NewSampler(NewFrame(FrameOf(Earth)))
	exp, err := seq.BuildPath(el, J2000)
	if err != nil {
		t.Fatal(err)
	}
	for _, workers := range []int{0, 1, 3, 7, 500} {
		par := NewSampler(NewFrame(FrameOf(Earth)))
		par.Parallel = true
		par.Workers = workers
		got, err := par.BuildPath(el, J2000)
		if err != nil {
			t.Fatal(err)
		}
		if got.Len() != exp.Len() {
			t.Fatalf("workers=%d: %d positions != %d", workers, got.Len(), exp.Len())
		}
		for k := range exp.Positions {
			if got.Positions[k] != exp.Positions[k] || got.JEDs[k] != exp.JEDs[k] {
				t.Fatalf("workers=%d: sample %d differs", workers, k)
			}
		}
	}
}

func TestBuildPathParallelError(t *testing.T) {
	s := NewSampler(Frame{Solver: Solver{MaxIterations: 1}})
	s.Parallel = true
	s.Workers = 4
	_, err := s.BuildPath(OrbitalElements{E: 0.9, A: 1, P: 300, Ma: 57, Epoch: J2000}, J2000)
	if !errors.Is(err, ErrConvergence) {
		t.Fatalf("expected convergence failure, got %v", err)
	}
}

func TestSamplerLogs(t *testing.T) {
	var buf bytes.Buffer
	s := NewSampler(NewFrame(ReferenceFrame{}))
	s.SetLogger(kitlog.NewLogfmtLogger(&buf))
	if _, err := s.BuildPath(Mars, J2000); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "subsys=path") || !strings.Contains(out, "body=Mars") || !strings.Contains(out, "samples=100") {
		t.Fatalf("unexpected log output: %q", out)
	}
	s.SetLogger(nil)
	n := buf.Len()
	if _, err := s.BuildPath(Mars, J2000); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != n {
		t.Fatal("nil logger should not write")
	}
}
