package arith

// Context accumulates variable bindings for evaluating expressions. Bindings
// may be added one at a time with Set before any number of evaluations. A
// Context is not safe for concurrent use; Clone cheaply derives independent
// contexts that share nothing.
type Context struct {
	names map[string]float64
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt map[string]float64
)

func (varopt) ctxOption()  {}
func (varsopt) ctxOption() {}

// SetVar sets the value of a variable in the context.
func SetVar(name string, val float64) ContextOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the context.
func SetVars(vars map[string]float64) ContextOption {
	return varsopt(vars)
}

// NewContext creates a new evaluation context.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{names: make(map[string]float64)}
	return ctx.Clone(opts...)
}

// Eval evaluates an expression with the context's current bindings and
// returns the result. The expression sees a snapshot of the bindings; calling
// Set afterward does not affect results already computed.
func (ctx *Context) Eval(e *Expr) (float64, error) {
	return e.Eval(ctx.names)
}

// Set sets the value of a variable. Returns ctx for chaining.
func (ctx *Context) Set(name string, value float64) *Context {
	if ctx.names == nil {
		ctx.names = make(map[string]float64)
	}
	ctx.names[name] = value
	return ctx
}

// Lookup returns the value of a variable and whether the variable is defined
// in the context.
func (ctx *Context) Lookup(name string) (float64, bool) {
	v, ok := ctx.names[name]
	return v, ok
}

// Clone creates a copy of a context and applies options to it. Changes to
// either context's bindings are invisible to the other.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{names: make(map[string]float64, len(ctx.names))}
	for name, val := range ctx.names {
		n.names[name] = val
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.names[opt.name] = opt.val
		case varsopt:
			for k, v := range opt {
				n.names[k] = v
			}
		default:
			panic("arith: unknown option type")
		}
	}
	return &n
}
