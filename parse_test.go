package calcx_test

import (
	"errors"
	"math"
	"testing"

	"github.com/nsavage/calcx"
)

func eval(t *testing.T, ctx *calcx.Context, src string) calcx.Number {
	t.Helper()
	v, err := calcx.EvalIn(ctx, src)
	if err != nil {
		t.Fatalf("EvalIn(%q) returned error: %v", src, err)
	}
	return v
}

func TestParseAndEvalArithmetic(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want calcx.Number
	}{
		{"add", "1+2", calcx.Int(3)},
		{"sub", "5-3", calcx.Int(2)},
		{"mul", "4*5", calcx.Int(20)},
		{"precedence", "1+2*3", calcx.Int(7)},
		{"left assoc add sub", "10-2-3", calcx.Int(5)},
		{"left assoc mul div", "100/5/2", calcx.Int(10)},
		{"left assoc exp", "2^3^2", calcx.Int(64)},
		{"int div truncates toward zero", "7/2", calcx.Int(3)},
		{"int div negative truncates toward zero", "-7/2", calcx.Int(-3)},
		{"mod sign follows dividend", "-7%2", calcx.Int(-1)},
		{"float arithmetic promotes", "1+2.5", calcx.Float(3.5)},
		{"parens override precedence", "(1+2)*3", calcx.Int(9)},
		{"unary minus on symbol", "-x", calcx.Int(-4)},
		{"sin zero", "sin(0)", calcx.Float(0)},
		{"sqrt", "sqrt(9)", calcx.Float(3)},
		{"pi", "pi", calcx.Float(math.Pi)},
		{"exp on float base", "2.0^3", calcx.Float(8)},
		{"negative exponent forces float", "2^-1", calcx.Float(0.5)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx := calcx.NewContext()
			ctx.Set("x", calcx.Int(4))
			got := eval(t, ctx, c.src)
			if got.Kind() != c.want.Kind() || got.Float64() != c.want.Float64() {
				t.Errorf("EvalIn(%q) = %v, want %v", c.src, got, c.want)
			}
		})
	}
}

func TestAssignment(t *testing.T) {
	ctx := calcx.NewContext()
	if got := eval(t, ctx, "x=5"); got.Float64() != 5 {
		t.Fatalf("x=5 evaluated to %v, want 5", got)
	}
	if got := eval(t, ctx, "x+1"); got.Float64() != 6 {
		t.Fatalf("x+1 after assignment = %v, want 6", got)
	}
	if got := eval(t, ctx, "y=x*2"); got.Float64() != 10 {
		t.Fatalf("y=x*2 = %v, want 10", got)
	}
	if _, ok := ctx.Lookup("y"); !ok {
		t.Fatal("y was not bound by assignment")
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		wantErr interface{ Pos() int }
	}{
		{"div by zero", "1/0", &calcx.DivByZeroError{}},
		{"mod by zero", "1%0", &calcx.ModByZeroError{}},
		{"mod on floats", "5.0%3", &calcx.ModOnFloatsError{}},
		{"unknown variable", "q+1", &calcx.UnknownVariableError{}},
		{"unmatched paren", "(1+2", &calcx.ParseError{}},
		{"trailing input", "2 x", &calcx.ParseError{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx := calcx.NewContext()
			_, err := calcx.EvalIn(ctx, c.src)
			if err == nil {
				t.Fatalf("EvalIn(%q) returned no error", c.src)
			}
			var ierr calcx.InputError
			if !errors.As(err, &ierr) {
				t.Fatalf("EvalIn(%q) error %v does not implement InputError", c.src, err)
			}
			switch c.wantErr.(type) {
			case *calcx.DivByZeroError:
				var e *calcx.DivByZeroError
				if !errors.As(err, &e) {
					t.Errorf("EvalIn(%q) error = %v, want *DivByZeroError", c.src, err)
				}
			case *calcx.ModByZeroError:
				var e *calcx.ModByZeroError
				if !errors.As(err, &e) {
					t.Errorf("EvalIn(%q) error = %v, want *ModByZeroError", c.src, err)
				}
			case *calcx.ModOnFloatsError:
				var e *calcx.ModOnFloatsError
				if !errors.As(err, &e) {
					t.Errorf("EvalIn(%q) error = %v, want *ModOnFloatsError", c.src, err)
				}
			case *calcx.UnknownVariableError:
				var e *calcx.UnknownVariableError
				if !errors.As(err, &e) {
					t.Errorf("EvalIn(%q) error = %v, want *UnknownVariableError", c.src, err)
				}
			case *calcx.ParseError:
				var e *calcx.ParseError
				if !errors.As(err, &e) {
					t.Errorf("EvalIn(%q) error = %v, want *ParseError", c.src, err)
				}
			}
		})
	}
}
