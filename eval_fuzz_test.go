package arith_test

import (
	"testing"

	"github.com/zephyrtronium/arith"
)

func FuzzEvalString(f *testing.F) {
	f.Add("x")
	f.Add("y")
	f.Add("1/0")
	f.Add("-(x*x)")
	f.Fuzz(func(t *testing.T, s string) {
		arith.EvalString(s, arith.SetVar("x", 1))
	})
}
