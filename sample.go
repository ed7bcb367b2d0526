package calcx

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Point is one (x, y) sample from a plotted expression or polynomial.
type Point struct {
	X float64
	Y float64
}

const xVarName = "x"

// mentionsSymbol reports whether tokens references a bare Symbol named
// name anywhere in the stream.
func mentionsSymbol(tokens []Token, name string) bool {
	for _, t := range tokens {
		if t.Kind == TokSymbol && t.Name == name {
			return true
		}
	}
	return false
}

// sampleEpsilon widens the closed interval's upper bound slightly so that
// floating-point step accumulation doesn't drop the last sample.
func sampleEpsilon(dx float64) float64 {
	eps := dx / 2
	if eps < 1e-9 {
		eps = 1e-9
	}
	return eps
}

// Sample evaluates a pre-tokenised expression once per point in the closed
// interval [xMin, xMax], stepping by dx, with the free variable x rebound
// before each evaluation. The caller is responsible for the preconditions
// dx > 0 and xMax > xMin. Sample uses a private, empty Context for the
// duration of the call, so it never observes or mutates any variables the
// caller has bound elsewhere — only x is ever defined while sampling.
//
// If tokens never mention the symbol x, Sample returns nil: the expression
// has nothing to vary over x, so there is no series to produce. Points
// where evaluation fails, or where the result is NaN or infinite, are
// silently omitted from the result, the same way a plotted 1/x should
// simply have a gap at x = 0 rather than aborting the whole series.
func Sample(tokens []Token, xMin, xMax, dx float64) []Point {
	if !mentionsSymbol(tokens, xVarName) {
		return nil
	}
	ctx := NewContext()
	eps := sampleEpsilon(dx)
	var pts []Point
	for x := xMin; x <= xMax+eps; x += dx {
		ctx.Set(xVarName, Float(x))
		value, _, _, err := ParseAndEval(ctx, tokens)
		if err != nil {
			continue
		}
		y := value.Float64()
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		pts = append(pts, Point{X: x, Y: y})
	}
	return pts
}

// PlotExpr lexes exprString once and samples it over [xMin, xMax] by dx.
func PlotExpr(exprString string, xMin, xMax, dx float64) ([]Point, error) {
	tokens, err := Lex(exprString)
	if err != nil {
		return nil, err
	}
	return Sample(tokens, xMin, xMax, dx), nil
}

// Polynomial evaluates a polynomial with the given coefficients, highest
// degree first, over [xMin, xMax] by dx using Horner's method:
// y = ((...(a0 x + a1) x + a2) x + ...) + an. The calcx command calls it for
// its -poly flag; it does not switch to it on its own for an expression that
// doesn't reference x.
func Polynomial(coeffs []float64, xMin, xMax, dx float64) []Point {
	if len(coeffs) == 0 {
		return nil
	}
	eps := sampleEpsilon(dx)
	var pts []Point
	for x := xMin; x <= xMax+eps; x += dx {
		pts = append(pts, Point{X: x, Y: hornerEval(coeffs, x)})
	}
	return pts
}

func hornerEval(coeffs []float64, x float64) float64 {
	y := coeffs[0]
	for _, c := range coeffs[1:] {
		y = y*x + c
	}
	return y
}

// ParseCoefficients parses a comma- or semicolon-separated list of
// polynomial coefficients, highest degree first, as used by the
// polynomial-coefficient fallback.
func ParseCoefficients(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' })
	coeffs := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coefficient %q: %w", f, err)
		}
		coeffs = append(coeffs, v)
	}
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("no coefficients given")
	}
	return coeffs, nil
}
