// Package maths provides generic arithmetic helpers for numeric types.
package maths

import "golang.org/x/exp/constraints"

// Number is satisfied by any integer or floating point type, including defined types with one of those as their
// underlying type.
//
// NOTE: Unlike 'constraints.Ordered', strings are not included.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns the sum of the two numbers given as input.
//
// NOTE: Overflow follows the rules of the operand type; integers wrap around and floats saturate to +/-Inf.
func Sum[N Number](a, b N) N {
	return a + b
}
