// Package calcx implements an arithmetic expression lexer, recursive-descent
// parser-evaluator, and function-plotting sampler.
//
// Expressions mix integers and floating-point numbers, the constant pi, the
// unary functions sin, cos, tan, log10 (log), ln, and sqrt, and assignment to
// named variables. Unlike many expression languages, every binary operator,
// including ^, is left-associative, and there is no implicit multiplication:
// "2 x" is not valid syntax.
//
// Variables live in a Context, which a caller owns and can clone. The plot
// sampler evaluates in a private Context of its own, so a plotted
// expression's repeated evaluations never touch the caller's bindings.
package calcx
