package calcx

// Eval lexes and evaluates a single expression against DefaultContext. A
// non-empty residual after the expression parses — trailing tokens the
// grammar didn't consume — is reported as a ParseError, since Eval's
// contract is that the whole input names one expression.
func Eval(exprString string) (Number, error) {
	return EvalIn(DefaultContext, exprString)
}

// EvalIn lexes and evaluates a single expression against ctx.
func EvalIn(ctx *Context, exprString string) (Number, error) {
	tokens, err := Lex(exprString)
	if err != nil {
		return Number{}, err
	}
	value, rest, _, err := ParseAndEval(ctx, tokens)
	if err != nil {
		return Number{}, err
	}
	if len(rest) > 0 {
		return Number{}, &ParseError{Col: rest[0].Pos, Msg: "unexpected trailing input: " + rest[0].String()}
	}
	return value, nil
}

// SetVariable binds name to v in DefaultContext.
func SetVariable(name string, v Number) {
	DefaultContext.Set(name, v)
}

// ClearVariables removes every binding from DefaultContext.
func ClearVariables() {
	DefaultContext.Clear()
}

// EvaluateWithX evaluates exprString with x bound to the given value in a
// context cloned from DefaultContext, so the caller's other variables
// remain visible without x leaking back into DefaultContext afterward. The
// result is coerced to float64 regardless of whether it evaluated to an
// Integer or a Floating.
func EvaluateWithX(exprString string, x float64) (float64, error) {
	ctx := DefaultContext.Clone()
	ctx.Set(xVarName, Float(x))
	value, err := EvalIn(ctx, exprString)
	if err != nil {
		return 0, err
	}
	return value.Float64(), nil
}
