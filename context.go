package calcx

// Context is an evaluation context: the symbol table that ParseAndEval and
// Sample bind and look up names against. A Context is not safe to use
// concurrently — only one evaluation may be in flight against a given
// Context at a time. Callers that need isolated symbol tables, e.g. to bind
// a temporary variable without disturbing the caller's own variables (as
// EvaluateWithX does), should use Clone.
type Context struct {
	vars map[string]Number
}

// NewContext creates an empty evaluation context.
func NewContext() *Context {
	return &Context{vars: make(map[string]Number)}
}

// Clone makes a copy of ctx whose variables can be mutated independently of
// the original.
func (ctx *Context) Clone() *Context {
	n := &Context{vars: make(map[string]Number, len(ctx.vars))}
	for k, v := range ctx.vars {
		n.vars[k] = v
	}
	return n
}

// Set binds name to value, overwriting any previous binding.
func (ctx *Context) Set(name string, value Number) {
	ctx.vars[name] = value
}

// Lookup returns the value bound to name and whether it was found.
func (ctx *Context) Lookup(name string) (Number, bool) {
	v, ok := ctx.vars[name]
	return v, ok
}

// Clear removes every binding from ctx.
func (ctx *Context) Clear() {
	ctx.vars = make(map[string]Number)
}

// DefaultContext is the process-wide context backing the package-level
// SetVariable, ClearVariables, Eval, and EvaluateWithX convenience
// functions, for callers that want the original single-shared-table
// behavior instead of owning an explicit Context.
var DefaultContext = NewContext()
