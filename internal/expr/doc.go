// Package expr compiles and evaluates the user-supplied function strings.
//
// Expressions use HCL expression syntax evaluated over cty numbers: the
// usual arithmetic operators plus a table of math functions (sin, cos, exp,
// pow, ...) and the constants pi, tau, e and phi. There is no power
// operator; use pow(x, n).
//
// Compile is checked: a program is rejected up front if it fails to parse,
// references a variable that is neither an ambient document variable nor a
// declared sample variable, or calls an unknown function. Runtime numeric
// failures at individual sample points (sqrt of a negative, division of zero
// by zero) yield NaN at that point only, so a curve that is partially
// defined still plots where it is defined.
package expr
