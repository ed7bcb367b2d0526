package calcx

import "strconv"

// TokenKind tags which variant a Token holds.
type TokenKind int8

const (
	// tokNone is an internal sentinel used only to track "no previous
	// token yet" while lexing. It never appears in a Token stream returned
	// from Lex.
	tokNone TokenKind = iota

	TokAdd
	TokSub
	TokMul
	TokDiv
	TokMod
	TokExp
	TokLpar
	TokRpar
	TokAssign
	TokNumber
	TokSymbol
	TokFunction
	TokIrrational
)

func (k TokenKind) String() string {
	switch k {
	case tokNone:
		return "None"
	case TokAdd:
		return "Add"
	case TokSub:
		return "Sub"
	case TokMul:
		return "Mul"
	case TokDiv:
		return "Div"
	case TokMod:
		return "Mod"
	case TokExp:
		return "Exp"
	case TokLpar:
		return "Lpar"
	case TokRpar:
		return "Rpar"
	case TokAssign:
		return "Assign"
	case TokNumber:
		return "Number"
	case TokSymbol:
		return "Symbol"
	case TokFunction:
		return "Function"
	case TokIrrational:
		return "Irrational"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// isOperatorOrStart reports whether k is one of the tokens after which a
// leading '-' is unary minus rather than binary subtraction, per the
// lexer's disambiguation rule. The "start" case is represented by tokNone.
func (k TokenKind) isOperatorOrStart() bool {
	switch k {
	case tokNone, TokAdd, TokSub, TokMul, TokDiv, TokMod, TokExp, TokLpar, TokRpar, TokAssign:
		return true
	default:
		return false
	}
}

// FuncKind is the closed set of built-in unary functions.
type FuncKind int8

const (
	FuncSin FuncKind = iota
	FuncCos
	FuncTan
	FuncLog10
	FuncLn
	FuncSqrt
)

func (k FuncKind) String() string {
	switch k {
	case FuncSin:
		return "sin"
	case FuncCos:
		return "cos"
	case FuncTan:
		return "tan"
	case FuncLog10:
		return "log"
	case FuncLn:
		return "ln"
	case FuncSqrt:
		return "sqrt"
	default:
		return "FuncKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// IrrationalKind is the closed set of built-in irrational constants.
type IrrationalKind int8

const (
	IrrPi IrrationalKind = iota
)

func (k IrrationalKind) String() string {
	switch k {
	case IrrPi:
		return "pi"
	default:
		return "IrrationalKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// reservedFuncs and reservedIrrationals classify lowercased reserved
// identifiers. An identifier present in neither map is a plain Symbol.
var reservedFuncs = map[string]FuncKind{
	"sin":  FuncSin,
	"cos":  FuncCos,
	"tan":  FuncTan,
	"log":  FuncLog10,
	"ln":   FuncLn,
	"sqrt": FuncSqrt,
}

var reservedIrrationals = map[string]IrrationalKind{
	"pi": IrrPi,
}

// Token is a single lexed unit: a tag plus whichever payload field the tag
// uses. Pos is the 1-based rune column at which the token begins, used for
// error reporting.
type Token struct {
	Kind TokenKind
	Pos  int

	Num  Number
	Name string
	Func FuncKind
	Irr  IrrationalKind
}

func (t Token) String() string {
	switch t.Kind {
	case TokNumber:
		return "Number(" + NumberToString(t.Num) + ")"
	case TokSymbol:
		return "Symbol(" + t.Name + ")"
	case TokFunction:
		return "Function(" + t.Func.String() + ")"
	case TokIrrational:
		return "Irrational(" + t.Irr.String() + ")"
	default:
		return t.Kind.String()
	}
}
