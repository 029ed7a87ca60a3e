package arith_test

import (
	"fmt"

	"github.com/zephyrtronium/arith"
)

func ExampleParseString() {
	a, err := arith.ParseString("(x+y)/(x-y)")
	if err != nil {
		panic(err)
	}
	r, err := a.Eval(map[string]float64{"x": 5, "y": 1})
	if err != nil {
		panic(err)
	}
	fmt.Println(r)
	// Output: 1.5
}

func ExampleContext_Set() {
	a, err := arith.ParseString("n*n + n")
	if err != nil {
		panic(err)
	}
	ctx := arith.NewContext()
	for n := 1; n <= 3; n++ {
		ctx.Set("n", float64(n))
		r, err := ctx.Eval(a)
		if err != nil {
			panic(err)
		}
		fmt.Println(r)
	}
	// Output:
	// 2
	// 6
	// 12
}
