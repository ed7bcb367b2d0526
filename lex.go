package calcx

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Lex tokenises an expression string. Whitespace is stripped before
// scanning, so reported column positions count stripped-input runes, not
// original-input runes.
func Lex(input string) ([]Token, error) {
	r := []rune(stripWhitespace(input))
	var toks []Token
	lastKind := tokNone
	i := 0
	for i < len(r) {
		c := r[i]
		pos := i + 1
		switch {
		case c == '+':
			toks = append(toks, Token{Kind: TokAdd, Pos: pos})
			lastKind = TokAdd
			i++
		case c == '*':
			toks = append(toks, Token{Kind: TokMul, Pos: pos})
			lastKind = TokMul
			i++
		case c == '/':
			toks = append(toks, Token{Kind: TokDiv, Pos: pos})
			lastKind = TokDiv
			i++
		case c == '%':
			toks = append(toks, Token{Kind: TokMod, Pos: pos})
			lastKind = TokMod
			i++
		case c == '^':
			toks = append(toks, Token{Kind: TokExp, Pos: pos})
			lastKind = TokExp
			i++
		case c == '(':
			toks = append(toks, Token{Kind: TokLpar, Pos: pos})
			lastKind = TokLpar
			i++
		case c == ')':
			toks = append(toks, Token{Kind: TokRpar, Pos: pos})
			lastKind = TokRpar
			i++
		case c == '=':
			toks = append(toks, Token{Kind: TokAssign, Pos: pos})
			lastKind = TokAssign
			i++
		case c == '-':
			tok, ni, err := lexMinus(r, i, lastKind)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok...)
			lastKind = toks[len(toks)-1].Kind
			i = ni
		case isDigit(c):
			num, ni, err := scanNumber(r, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, Token{Kind: TokNumber, Pos: pos, Num: num})
			lastKind = TokNumber
			i = ni
		case isLetter(c):
			name, ni := scanIdent(r, i)
			lower := strings.ToLower(name)
			if fk, ok := reservedFuncs[lower]; ok {
				toks = append(toks, Token{Kind: TokFunction, Pos: pos, Func: fk})
				lastKind = TokFunction
			} else if ik, ok := reservedIrrationals[lower]; ok {
				toks = append(toks, Token{Kind: TokIrrational, Pos: pos, Irr: ik})
				lastKind = TokIrrational
			} else {
				toks = append(toks, Token{Kind: TokSymbol, Pos: pos, Name: name})
				lastKind = TokSymbol
			}
			i = ni
		default:
			return nil, &LexError{Col: pos, Msg: "unexpected character " + strconv.QuoteRune(c)}
		}
	}
	return toks, nil
}

// lexMinus disambiguates a leading '-' per the unary-minus rule: binary
// subtraction, an inserted "-1 *" before a function/variable name, or a
// negated number literal.
func lexMinus(r []rune, i int, lastKind TokenKind) ([]Token, int, error) {
	pos := i + 1
	var next rune
	hasNext := i+1 < len(r)
	if hasNext {
		next = r[i+1]
	}
	prevIsOperatorOrStart := lastKind.isOperatorOrStart()
	beginsValue := hasNext && (isDigit(next) || isLetter(next) || next == '-')
	switch {
	case !prevIsOperatorOrStart && beginsValue:
		return []Token{{Kind: TokSub, Pos: pos}}, i + 1, nil
	case hasNext && next == '-':
		// Chained unary minus, e.g. the first '-' in "--4" or "3*--2": emit
		// a bare Sub and let the next '-' be lexed on its own, so the
		// parser's Sub NR recursion folds the chain.
		return []Token{{Kind: TokSub, Pos: pos}}, i + 1, nil
	case hasNext && isLetter(next):
		return []Token{
			{Kind: TokNumber, Pos: pos, Num: Int(-1)},
			{Kind: TokMul, Pos: pos},
		}, i + 1, nil
	default:
		num, ni, err := scanNumber(r, i+1)
		if err != nil {
			return nil, 0, err
		}
		return []Token{{Kind: TokNumber, Pos: pos, Num: negate(num)}}, ni, nil
	}
}

func negate(n Number) Number {
	if n.kind == KindInteger {
		return Int(-n.i)
	}
	return Float(-n.f)
}

// scanNumber scans a decimal integer, decimal fraction, or scientific
// notation number starting at r[i]. i may point at a digit or at '.'.
func scanNumber(r []rune, i int) (Number, int, error) {
	start := i
	var ip int
	sawDigit := false
	for i < len(r) && isDigit(r[i]) {
		ip = ip*10 + int(r[i]-'0')
		sawDigit = true
		i++
	}
	f := float64(ip)
	isFloat := false
	if i < len(r) && r[i] == '.' {
		isFloat = true
		i++
		div := 1.0
		for i < len(r) && isDigit(r[i]) {
			div *= 10
			f += float64(r[i]-'0') / div
			sawDigit = true
			i++
		}
	}
	if !sawDigit {
		return Number{}, i, &LexError{Col: start + 1, Msg: "malformed number: no digits"}
	}
	if i < len(r) && (r[i] == 'e' || r[i] == 'E') {
		isFloat = true
		ei := i
		i++
		sign := 1.0
		if i < len(r) && (r[i] == '+' || r[i] == '-') {
			if r[i] == '-' {
				sign = -1
			}
			i++
		}
		if i >= len(r) || !isDigit(r[i]) {
			return Number{}, i, &LexError{Col: ei + 1, Msg: "malformed number: missing exponent digits"}
		}
		exp := 0
		for i < len(r) && isDigit(r[i]) {
			exp = exp*10 + int(r[i]-'0')
			i++
		}
		f *= math.Pow(10, sign*float64(exp))
	}
	if isFloat {
		return Float(f), i, nil
	}
	return Int(ip), i, nil
}

// scanIdent scans the maximal [A-Za-z][A-Za-z0-9]* identifier starting at
// r[i], which must be a letter.
func scanIdent(r []rune, i int) (string, int) {
	start := i
	i++
	for i < len(r) && (isLetter(r[i]) || isDigit(r[i])) {
		i++
	}
	return string(r[start:i]), i
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c rune) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// stripWhitespace removes every whitespace rune from s, per the lexer's
// contract that whitespace is stripped before scanning begins.
func stripWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
