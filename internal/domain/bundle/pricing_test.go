package bundle

import (
	"errors"
	"math"
	"testing"
)

func TestComputeInterestRate_KnownScenario(t *testing.T) {
	// rates [0.1, 0.2, 0.3], M=1.5 -> avg=0.2, (2.5/0.8)-1 = 2.125
	got, err := ComputeInterestRate([]float64{0.1, 0.2, 0.3}, 1.5)
	if err != nil {
		t.Fatalf("ComputeInterestRate: %v", err)
	}
	if math.Abs(got-2.125) > 1e-12 {
		t.Fatalf("rate=%v want 2.125", got)
	}
}

func TestComputeInterestRate_Deterministic(t *testing.T) {
	rates := []float64{0.05, 0.15, 0.35, 0.02}
	a, err := ComputeInterestRate(rates, 0.8)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ComputeInterestRate(rates, 0.8)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("not deterministic: %v vs %v", a, b)
	}
}

func TestComputeInterestRate_ExceedsMargin(t *testing.T) {
	// For avg in [0,1): result >= M, equality only at avg=0.
	cases := []struct {
		rates []float64
		m     float64
	}{
		{[]float64{0.0}, 1.5},
		{[]float64{0.1, 0.2, 0.3}, 1.5},
		{[]float64{0.9}, 0.01},
		{[]float64{0.5, 0.5}, 10},
	}
	for _, c := range cases {
		got, err := ComputeInterestRate(c.rates, c.m)
		if err != nil {
			t.Fatalf("rates=%v m=%v: %v", c.rates, c.m, err)
		}
		if got < c.m {
			t.Fatalf("rates=%v m=%v: rate %v below margin", c.rates, c.m, got)
		}
		if math.IsInf(got, 0) || math.IsNaN(got) {
			t.Fatalf("rates=%v m=%v: non-finite rate %v", c.rates, c.m, got)
		}
	}
}

func TestComputeInterestRate_ZeroAvgEqualsMargin(t *testing.T) {
	got, err := ComputeInterestRate([]float64{0, 0, 0}, 2.5)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-2.5) > 1e-12 {
		t.Fatalf("rate=%v want 2.5", got)
	}
}

func TestComputeInterestRate_CertainDefault(t *testing.T) {
	_, err := ComputeInterestRate([]float64{1, 1, 1}, 1.5)
	if !errors.Is(err, ErrUndefinedDefaultRate) {
		t.Fatalf("want ErrUndefinedDefaultRate, got %v", err)
	}
}

func TestComputeInterestRate_InvalidInputs(t *testing.T) {
	if _, err := ComputeInterestRate(nil, 1.5); !errors.Is(err, ErrEmptyLoanSet) {
		t.Fatalf("empty set: got %v", err)
	}
	if _, err := ComputeInterestRate([]float64{0.2}, 0); !errors.Is(err, ErrInvalidMargin) {
		t.Fatalf("m=0: got %v", err)
	}
	if _, err := ComputeInterestRate([]float64{0.2}, -1); !errors.Is(err, ErrInvalidMargin) {
		t.Fatalf("m<0: got %v", err)
	}
	if _, err := ComputeInterestRate([]float64{1.2}, 1); err == nil {
		t.Fatal("rate > 1 accepted")
	}
	if _, err := ComputeInterestRate([]float64{-0.1}, 1); err == nil {
		t.Fatal("rate < 0 accepted")
	}
}
