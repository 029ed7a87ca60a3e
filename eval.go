package arith

import (
	"io"
	"strconv"
	"strings"
)

// Eval evaluates the expression with the given variable bindings and returns
// the result. The expression does not retain vars; the same parsed expression
// may be evaluated any number of times with different bindings, including
// concurrently. If a variable used in the expression is missing from vars,
// the result is a NameError naming it.
//
// Arithmetic follows IEEE 754 double semantics. In particular, division is
// total: dividing by zero yields an infinity or NaN rather than an error.
func (e *Expr) Eval(vars map[string]float64) (float64, error) {
	return e.n.eval(vars)
}

// eval computes the node's value. Operands evaluate left first.
func (n *node) eval(vars map[string]float64) (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeName:
		v, ok := vars[n.name]
		if !ok {
			return 0, &NameError{Name: n.name}
		}
		return v, nil
	case nodeNeg:
		v, err := n.left.eval(vars)
		if err != nil {
			return 0, err
		}
		return -v, nil
	case nodeAdd:
		l, r, err := n.operands(vars)
		if err != nil {
			return 0, err
		}
		return l + r, nil
	case nodeSub:
		l, r, err := n.operands(vars)
		if err != nil {
			return 0, err
		}
		return l - r, nil
	case nodeMul:
		l, r, err := n.operands(vars)
		if err != nil {
			return 0, err
		}
		return l * r, nil
	case nodeDiv:
		l, r, err := n.operands(vars)
		if err != nil {
			return 0, err
		}
		return l / r, nil
	default:
		panic("arith: invalid AST node " + n.kind.String())
	}
}

// operands evaluates the node's left and right children, left first.
func (n *node) operands(vars map[string]float64) (l, r float64, err error) {
	l, err = n.left.eval(vars)
	if err != nil {
		return 0, 0, err
	}
	r, err = n.right.eval(vars)
	if err != nil {
		return 0, 0, err
	}
	return l, r, nil
}

// Eval is a shortcut to parse an expression and evaluate it once with the
// variables of a new context.
func Eval(src io.RuneScanner, opts ...ContextOption) (float64, error) {
	a, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return NewContext(opts...).Eval(a)
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ContextOption) (float64, error) {
	return Eval(strings.NewReader(src), opts...)
}

// NameError is an error from a lookup for a variable that is missing from the
// bindings supplied for an evaluation.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}
