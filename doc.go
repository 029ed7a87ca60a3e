// Package arith implements a floating-point arithmetic expression calculator.
//
// Expressions are built from decimal numbers, named variables, the binary
// operators + - * /, unary negation, and parentheses, with the usual
// precedence and left associativity. There is no implicit multiplication:
// "2 x" is an error, not a product.
//
// An expression is parsed once into an immutable tree and can then be
// evaluated any number of times with different variable bindings, including
// concurrently. Arithmetic is IEEE 754 double precision throughout, so
// division by zero yields an infinity or NaN rather than an error.
package arith
