package calcx_test

import (
	"testing"

	"github.com/nsavage/calcx"
)

func TestSampleSquare(t *testing.T) {
	tokens, err := calcx.Lex("x^2")
	if err != nil {
		t.Fatalf("Lex returned error: %v", err)
	}
	pts := calcx.Sample(tokens, -2, 2, 1)
	want := []calcx.Point{
		{X: -2, Y: 4},
		{X: -1, Y: 1},
		{X: 0, Y: 0},
		{X: 1, Y: 1},
		{X: 2, Y: 4},
	}
	if len(pts) != len(want) {
		t.Fatalf("Sample produced %d points, want %d: %v", len(pts), len(want), pts)
	}
	for i, p := range pts {
		if p != want[i] {
			t.Errorf("point %d = %v, want %v", i, p, want[i])
		}
	}
}

func TestSampleWithoutXReturnsNil(t *testing.T) {
	tokens, err := calcx.Lex("1+2")
	if err != nil {
		t.Fatalf("Lex returned error: %v", err)
	}
	if pts := calcx.Sample(tokens, -1, 1, 1); pts != nil {
		t.Errorf("Sample of expression without x = %v, want nil", pts)
	}
}

func TestSampleSkipsSingularities(t *testing.T) {
	tokens, err := calcx.Lex("1/x")
	if err != nil {
		t.Fatalf("Lex returned error: %v", err)
	}
	pts := calcx.Sample(tokens, -1, 1, 1)
	for _, p := range pts {
		if p.X == 0 {
			t.Errorf("Sample included a point at the singularity x=0: %v", p)
		}
	}
	if len(pts) != 2 {
		t.Errorf("Sample(1/x, -1, 1, 1) produced %d points, want 2 (x=-1 and x=1)", len(pts))
	}
}

func TestSampleDoesNotMutateCallerContext(t *testing.T) {
	ctx := calcx.NewContext()
	ctx.Set("x", calcx.Int(99))
	tokens, err := calcx.Lex("x+1")
	if err != nil {
		t.Fatalf("Lex returned error: %v", err)
	}
	calcx.Sample(tokens, 0, 1, 1)
	if v, _ := ctx.Lookup("x"); v.Float64() != 99 {
		t.Errorf("Sample mutated an unrelated Context's x to %v", v)
	}
}

func TestPolynomial(t *testing.T) {
	// x^2 - 1, coefficients highest degree first.
	pts := calcx.Polynomial([]float64{1, 0, -1}, -2, 2, 1)
	want := []float64{3, 0, -1, 0, 3}
	if len(pts) != len(want) {
		t.Fatalf("Polynomial produced %d points, want %d", len(pts), len(want))
	}
	for i, p := range pts {
		if p.Y != want[i] {
			t.Errorf("point %d: y = %v, want %v", i, p.Y, want[i])
		}
	}
}

func TestParseCoefficients(t *testing.T) {
	coeffs, err := calcx.ParseCoefficients("1, 0, -1")
	if err != nil {
		t.Fatalf("ParseCoefficients returned error: %v", err)
	}
	want := []float64{1, 0, -1}
	if len(coeffs) != len(want) {
		t.Fatalf("ParseCoefficients = %v, want %v", coeffs, want)
	}
	for i, c := range coeffs {
		if c != want[i] {
			t.Errorf("coefficient %d = %v, want %v", i, c, want[i])
		}
	}
	if _, err := calcx.ParseCoefficients("1, x, 3"); err == nil {
		t.Error("ParseCoefficients accepted a non-numeric coefficient")
	}
}
