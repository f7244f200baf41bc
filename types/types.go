// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package types defines the type terms of Typed Lisp: atomic ground types,
// unification variables, and curried function (arrow) types.
package types

// Type is the base interface for all type terms.
//
// Type terms are persistent values: nothing in this package mutates a Type
// in place. Substitution always returns a new term.
type Type interface {
	// TypeName names the syntactic kind of the term, e.g. for diagnostics.
	TypeName() string
}

// Atomic is a nominal ground type: int, bool, float, double, char, string,
// or any user-defined name, treated opaquely.
type Atomic struct {
	Name string
}

// NewAtomic constructs an Atomic type with the given name.
func NewAtomic(name string) *Atomic { return &Atomic{Name: name} }

func (t *Atomic) TypeName() string { return "Atomic" }

// Var is a unification variable, identified by a nonnegative integer drawn
// from a Fresh Supply (see the subst package). Var never carries its own
// binding; bindings live in a Substitution, keyed by Id.
type Var struct {
	id int
}

// NewVar wraps an id (normally produced by subst.Fresh) as a type variable.
func NewVar(id int) *Var { return &Var{id: id} }

func (t *Var) TypeName() string { return "Var" }

// Id returns the variable's unique identifier.
func (t *Var) Id() int { return t.id }

// Arrow is a binary function type, arg -> ret. Multi-argument functions are
// right-associated chains of Arrow, curried at the type level.
type Arrow struct {
	Arg Type
	Ret Type
}

// NewArrow constructs a single-argument arrow type.
func NewArrow(arg, ret Type) *Arrow { return &Arrow{Arg: arg, Ret: ret} }

func (t *Arrow) TypeName() string { return "Arrow" }

// NewCurriedArrow right-folds args around ret: args[0] -> (args[1] -> (... -> ret)).
// An empty args slice returns ret unchanged.
func NewCurriedArrow(args []Type, ret Type) Type {
	result := ret
	for i := len(args) - 1; i >= 0; i-- {
		result = NewArrow(args[i], result)
	}
	return result
}

// Predeclared names for the atomic ground types the checker understands by
// construction. Any other name is still a valid Atomic; it is simply opaque
// to the checker (no operators are predeclared over it beyond equality via
// unification).
const (
	Int    = "int"
	Bool   = "bool"
	Float  = "float"
	Double = "double"
	Char   = "char"
	String = "string"
)
