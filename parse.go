package calcx

import "math"

// parseResult is the result of an internal parse stage: a value, the tokens
// still unconsumed, and (only when the parsed term was a bare "Symbol ="
// prefix) the name of the assignment target propagated up for AssignOpt to
// commit.
type parseResult struct {
	value  Number
	rest   []Token
	assign string
}

// ParseAndEval parses and evaluates a token stream against ctx, following the
//
//	A    := E AssignOpt
//	E    := T  { (Add|Sub) T }
//	T    := I  { (Mul|Div|Mod) I }
//	I    := NR { Exp NR }
//	NR   := Sub NR | Number | Irrational | Function Lpar E Rpar
//	      | Symbol [Assign-lookahead] | Lpar E Rpar
//
// grammar. Every binary operator, including Exp, is left-associative. The
// returned rest is whatever tokens were not consumed; a host that expects
// the whole input to be one expression should treat a non-empty rest as a
// ParseError. assign is the name bound by a top-level assignment, or "" if
// this parse was not an assignment.
func ParseAndEval(ctx *Context, tokens []Token) (value Number, rest []Token, assign string, err error) {
	res, err := parseA(ctx, tokens)
	if err != nil {
		return Number{}, nil, "", err
	}
	return res.value, res.rest, res.assign, nil
}

func parseA(ctx *Context, tokens []Token) (parseResult, error) {
	res, err := parseE(ctx, tokens)
	if err != nil {
		return parseResult{}, err
	}
	if len(res.rest) == 0 || res.rest[0].Kind != TokAssign {
		return res, nil
	}
	if res.assign == "" {
		return parseResult{}, &ParseError{Col: res.rest[0].Pos, Msg: "left side of = must be a plain variable name"}
	}
	rhs, err := parseE(ctx, res.rest[1:])
	if err != nil {
		return parseResult{}, err
	}
	ctx.Set(res.assign, rhs.value)
	return parseResult{value: rhs.value, rest: rhs.rest, assign: res.assign}, nil
}

func parseE(ctx *Context, tokens []Token) (parseResult, error) {
	left, err := parseT(ctx, tokens)
	if err != nil {
		return parseResult{}, err
	}
	for len(left.rest) > 0 && (left.rest[0].Kind == TokAdd || left.rest[0].Kind == TokSub) {
		op := left.rest[0]
		right, err := parseT(ctx, left.rest[1:])
		if err != nil {
			return parseResult{}, err
		}
		v, err := applyBinary(op.Kind, op.Pos, left.value, right.value)
		if err != nil {
			return parseResult{}, err
		}
		left = parseResult{value: v, rest: right.rest}
	}
	return left, nil
}

func parseT(ctx *Context, tokens []Token) (parseResult, error) {
	left, err := parseI(ctx, tokens)
	if err != nil {
		return parseResult{}, err
	}
	for len(left.rest) > 0 {
		k := left.rest[0].Kind
		if k != TokMul && k != TokDiv && k != TokMod {
			break
		}
		op := left.rest[0]
		right, err := parseI(ctx, left.rest[1:])
		if err != nil {
			return parseResult{}, err
		}
		v, err := applyBinary(op.Kind, op.Pos, left.value, right.value)
		if err != nil {
			return parseResult{}, err
		}
		left = parseResult{value: v, rest: right.rest}
	}
	return left, nil
}

func parseI(ctx *Context, tokens []Token) (parseResult, error) {
	left, err := parseNR(ctx, tokens)
	if err != nil {
		return parseResult{}, err
	}
	for len(left.rest) > 0 && left.rest[0].Kind == TokExp {
		op := left.rest[0]
		right, err := parseNR(ctx, left.rest[1:])
		if err != nil {
			return parseResult{}, err
		}
		v, err := applyBinary(TokExp, op.Pos, left.value, right.value)
		if err != nil {
			return parseResult{}, err
		}
		left = parseResult{value: v, rest: right.rest}
	}
	return left, nil
}

func parseNR(ctx *Context, tokens []Token) (parseResult, error) {
	if len(tokens) == 0 {
		return parseResult{}, &ParseError{Col: 0, Msg: "unexpected end of input, expected an operand"}
	}
	tok := tokens[0]
	switch tok.Kind {
	case TokSub:
		inner, err := parseNR(ctx, tokens[1:])
		if err != nil {
			return parseResult{}, err
		}
		return parseResult{value: negate(inner.value), rest: inner.rest}, nil
	case TokNumber:
		return parseResult{value: tok.Num, rest: tokens[1:]}, nil
	case TokIrrational:
		if tok.Irr != IrrPi {
			return parseResult{}, &ParseError{Col: tok.Pos, Msg: "unknown irrational constant"}
		}
		return parseResult{value: Float(math.Pi), rest: tokens[1:]}, nil
	case TokFunction:
		rest := tokens[1:]
		if len(rest) == 0 || rest[0].Kind != TokLpar {
			return parseResult{}, &ParseError{Col: tok.Pos, Msg: tok.Func.String() + " must be followed by ("}
		}
		argRes, err := parseE(ctx, rest[1:])
		if err != nil {
			return parseResult{}, err
		}
		if len(argRes.rest) == 0 || argRes.rest[0].Kind != TokRpar {
			return parseResult{}, &ParseError{Col: tok.Pos, Msg: "unmatched parenthesis in call to " + tok.Func.String()}
		}
		v, err := applyFunction(tok.Func, argRes.value)
		if err != nil {
			return parseResult{}, err
		}
		return parseResult{value: v, rest: argRes.rest[1:]}, nil
	case TokSymbol:
		rest := tokens[1:]
		if len(rest) > 0 && rest[0].Kind == TokAssign {
			return parseResult{value: Int(0), rest: rest, assign: tok.Name}, nil
		}
		v, ok := ctx.Lookup(tok.Name)
		if !ok {
			return parseResult{}, &UnknownVariableError{Col: tok.Pos, Name: tok.Name}
		}
		return parseResult{value: v, rest: rest}, nil
	case TokLpar:
		inner, err := parseE(ctx, tokens[1:])
		if err != nil {
			return parseResult{}, err
		}
		if len(inner.rest) == 0 || inner.rest[0].Kind != TokRpar {
			return parseResult{}, &ParseError{Col: tok.Pos, Msg: "unmatched parenthesis"}
		}
		return parseResult{value: inner.value, rest: inner.rest[1:]}, nil
	default:
		return parseResult{}, &ParseError{Col: tok.Pos, Msg: "unexpected token " + tok.String()}
	}
}

func applyBinary(op TokenKind, pos int, a, b Number) (Number, error) {
	if op == TokExp {
		if a.kind == KindInteger && b.kind == KindInteger && b.i >= 0 {
			return Int(intPow(a.i, b.i)), nil
		}
		return Float(math.Pow(a.Float64(), b.Float64())), nil
	}
	ca, cb := coerce(a, b)
	switch op {
	case TokAdd:
		if ca.kind == KindInteger {
			return Int(ca.i + cb.i), nil
		}
		return Float(ca.f + cb.f), nil
	case TokSub:
		if ca.kind == KindInteger {
			return Int(ca.i - cb.i), nil
		}
		return Float(ca.f - cb.f), nil
	case TokMul:
		if ca.kind == KindInteger {
			return Int(ca.i * cb.i), nil
		}
		return Float(ca.f * cb.f), nil
	case TokDiv:
		if ca.kind == KindInteger {
			if cb.i == 0 {
				return Number{}, &DivByZeroError{Col: pos}
			}
			return Int(ca.i / cb.i), nil
		}
		if cb.f == 0 {
			return Number{}, &DivByZeroError{Col: pos}
		}
		return Float(ca.f / cb.f), nil
	case TokMod:
		if ca.kind == KindFloating {
			return Number{}, &ModOnFloatsError{Col: pos}
		}
		if cb.i == 0 {
			return Number{}, &ModByZeroError{Col: pos}
		}
		return Int(ca.i % cb.i), nil
	default:
		return Number{}, &IncompatibleTypesError{Col: pos, Op: op.String()}
	}
}

func intPow(base, exp int) int {
	result := 1
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}

func applyFunction(kind FuncKind, arg Number) (Number, error) {
	x := arg.Float64()
	switch kind {
	case FuncSin:
		return Float(math.Sin(x)), nil
	case FuncCos:
		return Float(math.Cos(x)), nil
	case FuncTan:
		return Float(math.Tan(x)), nil
	case FuncLog10:
		return Float(math.Log10(x)), nil
	case FuncLn:
		return Float(math.Log(x)), nil
	case FuncSqrt:
		return Float(math.Sqrt(x)), nil
	default:
		return Number{}, &IncompatibleTypesError{Op: kind.String()}
	}
}
