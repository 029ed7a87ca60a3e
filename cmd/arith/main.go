package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/zephyrtronium/arith"
)

var (
	errcolor = color.New(color.FgRed)
	rescolor = color.New(color.FgGreen)
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb string
		with         [][2]string
		nl, echo, it bool
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.BoolVar(&nl, "n", false, "parse separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.BoolVar(&it, "i", false, "interactive mode: prompt for expressions and variable values")
	flag.Parse()

	ctx := arith.NewContext()
	for _, d := range with {
		nm := d[0]
		vl := d[1]
		r, err := arith.EvalString(vl)
		if err != nil {
			log.Fatalf("setting %s: %v", nm, err)
		}
		ctx.Set(nm, r)
	}

	if it {
		interact(ctx)
		return
	}

	var ins []io.RuneScanner
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		ins = append(ins, f)
	}
	for _, arg := range flag.Args() {
		ins = append(ins, strings.NewReader(arg))
	}

	var p []*arith.Expr
	var opts []arith.ParseOption
	if nl {
		opts = append(opts, arith.StopOn('\n'))
	}
	for _, in := range ins {
		for {
			// First check whether we're done with the input.
			if _, _, err := in.ReadRune(); err != nil {
				if err == io.EOF {
					break
				}
				log.Fatal(err)
			}
			in.UnreadRune()
			a, err := arith.Parse(in, opts...)
			if err != nil {
				log.Fatal(err)
			}
			p = append(p, a)
		}
	}

	verb += "\n"
	for _, a := range p {
		if echo {
			fmt.Printf("%v : ", a)
		}
		r, err := ctx.Eval(a)
		if err != nil {
			errcolor.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Printf(verb, r)
	}
}

// interact prompts for an expression, then for values of the variables it
// uses, then prints the result, until the input ends.
func interact(ctx *arith.Context) {
	scan := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println("Enter expression. CTRL-D to quit.")
		if !scan.Scan() {
			return
		}
		a, err := arith.ParseString(scan.Text())
		if err != nil {
			errcolor.Println("Error:", err)
			continue
		}
		vars := ctx
		if names := a.Vars(); len(names) > 0 {
			fmt.Printf("Enter space separated variable values (e.g., %s 2). CTRL-D to quit.\n", names[0])
			if !scan.Scan() {
				return
			}
			vars, err = givens(ctx, scan.Text())
			if err != nil {
				errcolor.Println("Error:", err)
				continue
			}
		}
		r, err := vars.Eval(a)
		if err != nil {
			errcolor.Println("Error:", err)
			continue
		}
		rescolor.Println("Result is:", r)
	}
}

// givens clones ctx with variable definitions parsed from a space separated
// list of alternating names and values.
func givens(ctx *arith.Context, defs string) (*arith.Context, error) {
	fields := strings.Fields(defs)
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("name %q with no value", fields[len(fields)-1])
	}
	n := ctx.Clone()
	for i := 0; i < len(fields); i += 2 {
		v, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, err
		}
		n.Set(fields[i], v)
	}
	return n, nil
}

func infile(inname string, std bool) (io.RuneScanner, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return bufio.NewReader(f), nil
}
