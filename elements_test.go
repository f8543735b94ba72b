package orbit3d

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestMeanMotion(t *testing.T) {
	el := OrbitalElements{E: 0.1, A: 1, N: 0.9856}
	n, err := el.MeanMotion()
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(n, 0.9856*math.Pi/180, 1e-15) {
		t.Fatalf("n=%f", n)
	}
	// N takes precedence over P.
	el.P = 100
	if n2, _ := el.MeanMotion(); n2 != n {
		t.Fatal("n should be authoritative when set")
	}
	el.N = 0
	if n, _ = el.MeanMotion(); !scalar.EqualWithinAbs(n, twoPi/100, 1e-15) {
		t.Fatalf("n=%f from P", n)
	}
}

func TestMeanAnomalySign(t *testing.T) {
	el := OrbitalElements{E: 0, A: 1, Ma: 10, N: 1, Epoch: J2000}
	M, err := el.MeanAnomalyAt(J2000 + 5)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(M, 15*deg2rad, 1e-12) {
		t.Fatalf("M=%f deg, expected 15 deg", M/deg2rad)
	}
	if M, _ = el.MeanAnomalyAt(J2000 - 5); !scalar.EqualWithinAbs(M, 5*deg2rad, 1e-12) {
		t.Fatalf("M=%f deg, expected 5 deg", M/deg2rad)
	}
}

func TestMissingPeriodData(t *testing.T) {
	el := OrbitalElements{Name: "Nowhere", E: 0.1, A: 1}
	_, err := el.MeanMotion()
	if !errors.Is(err, ErrMissingPeriodData) {
		t.Fatalf("expected missing period data, got %v", err)
	}
	var mErr *MissingPeriodError
	if !errors.As(err, &mErr) || mErr.Field != "n/P" || mErr.Body != "Nowhere" {
		t.Fatalf("unexpected error %v", err)
	}
	if _, err := el.SamplingInterval(); !errors.As(err, &mErr) || mErr.Field != "P/per" {
		t.Fatalf("unexpected error %v", err)
	}
	if _, err := el.Period(); !errors.Is(err, ErrMissingPeriodData) {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestSamplingInterval(t *testing.T) {
	for _, tc := range []struct {
		el  OrbitalElements
		exp float64
	}{
		{OrbitalElements{P: 365}, 366},
		{OrbitalElements{Per: 643.1}, 643.1},
		{OrbitalElements{P: 100, Per: 643.1}, 101},
	} {
		got, err := tc.el.SamplingInterval()
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.exp {
			t.Fatalf("interval %f != %f", got, tc.exp)
		}
	}
	for _, el := range []OrbitalElements{{Per: -50}, {P: -1}, {P: -2}, {Per: math.NaN()}} {
		if got, err := el.SamplingInterval(); err == nil {
			t.Fatalf("P=%f per=%f: expected an error, got interval %f", el.P, el.Per, got)
		} else if errors.Is(err, ErrMissingPeriodData) {
			t.Fatalf("P=%f per=%f: unexpected missing period error", el.P, el.Per)
		}
	}
}

func TestPeriodFromMeanMotion(t *testing.T) {
	el := OrbitalElements{N: 0.5597752}
	P, err := el.Period()
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinRel(P, 360/0.5597752, 1e-12) {
		t.Fatalf("P=%f", P)
	}
}

func TestValidate(t *testing.T) {
	if err := Earth.Validate(); err != nil {
		t.Fatal(err)
	}
	if err := (OrbitalElements{E: 1}).Validate(); !errors.Is(err, ErrInvalidEccentricity) {
		t.Fatalf("unexpected %v", err)
	}
	if err := (OrbitalElements{E: 0.1, A: math.Inf(1)}).Validate(); err == nil {
		t.Fatal("infinite semi-major axis should be rejected")
	}
}
