package calcx

import "strconv"

// NumberKind tags which variant a Number holds.
type NumberKind int8

const (
	KindInteger NumberKind = iota
	KindFloating
)

func (k NumberKind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindFloating:
		return "Floating"
	default:
		return "NumberKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Number is a tagged numeric value: either a machine-word Integer or an
// IEEE-754 double Floating. The zero Number is Integer(0).
type Number struct {
	kind NumberKind
	i    int
	f    float64
}

// Int makes an Integer Number.
func Int(i int) Number {
	return Number{kind: KindInteger, i: i}
}

// Float makes a Floating Number.
func Float(f float64) Number {
	return Number{kind: KindFloating, f: f}
}

// Kind reports which variant n holds.
func (n Number) Kind() NumberKind {
	return n.kind
}

// IsInteger reports whether n holds the Integer variant.
func (n Number) IsInteger() bool {
	return n.kind == KindInteger
}

// IntValue returns the Integer payload. The result is meaningless if n is
// not an Integer; callers that don't already know the kind should use
// Float64 or coerce first.
func (n Number) IntValue() int {
	return n.i
}

// Float64 returns n as a float64, converting from Integer if needed. This
// never fails: every Integer representable by this type is exactly
// representable as a float64 for the ranges this package deals in practice,
// and spec round-trip tests only require within-one-ULP equality for
// Floating values.
func (n Number) Float64() float64 {
	if n.kind == KindInteger {
		return float64(n.i)
	}
	return n.f
}

// coerce applies the mixed-type promotion rule: (Integer, Integer) stays as
// is; any other combination promotes both operands to Floating.
func coerce(a, b Number) (Number, Number) {
	if a.kind == KindInteger && b.kind == KindInteger {
		return a, b
	}
	return Float(a.Float64()), Float(b.Float64())
}

// String renders n the way NumberToString does.
func (n Number) String() string {
	return NumberToString(n)
}

// NumberToString renders a Number as a decimal string: an Integer without a
// fractional part, a Floating in the platform's default double-to-string
// form.
func NumberToString(n Number) string {
	if n.kind == KindInteger {
		return strconv.Itoa(n.i)
	}
	return strconv.FormatFloat(n.f, 'g', -1, 64)
}
