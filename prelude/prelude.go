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

// Package prelude seeds a root scope with the checker's built-in operators.
// Structural tokens (":", "def", "let", "set", "if") are never bound here;
// package check dispatches on those textually, before any name lookup.
package prelude

import (
	"github.com/elricmann/typed-lisp/scope"
	"github.com/elricmann/typed-lisp/types"
)

// arithmetic and comparison operator names bound by Seed.
var (
	arithmetic = []string{"+", "-", "*", "/"}
	comparison = []string{"=", "!=", "<", ">", "<=", ">="}
	boolean    = []string{"and", "or"}
)

// Seed defines the built-in prelude into root. It is idempotent: calling it
// twice on the same Scope simply rebinds the same names to the same
// monomorphic schemes. extraTypes names further opaque ground types, beyond
// int/bool/float/double/char/string, that annotations in this compilation
// are allowed to name — e.g. a project's typedlisp.toml prelude_extensions.
func Seed(root *scope.Scope, extraTypes ...string) {
	intT, boolT := types.NewAtomic(types.Int), types.NewAtomic(types.Bool)

	intBinOp := scope.Monomorphic(types.NewCurriedArrow([]types.Type{intT, intT}, intT))
	cmpBinOp := scope.Monomorphic(types.NewCurriedArrow([]types.Type{intT, intT}, boolT))
	boolBinOp := scope.Monomorphic(types.NewCurriedArrow([]types.Type{boolT, boolT}, boolT))

	for _, name := range arithmetic {
		root.Define(name, intBinOp)
	}
	for _, name := range comparison {
		root.Define(name, cmpBinOp)
	}
	for _, name := range boolean {
		root.Define(name, boolBinOp)
	}

	root.Handle.ExtendTypes(extraTypes...)
}
