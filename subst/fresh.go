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

// Package subst holds one compilation unit's fresh-variable supply and
// substitution map, and implements unification with occurs-check.
package subst

import "github.com/elricmann/typed-lisp/types"

// Fresh is a monotonic source of unique type-variable ids. Ids are never
// reused within one Fresh; two unrelated Fresh instances may reuse numeric
// ranges, since each belongs to its own compilation.
type Fresh struct {
	next int
}

// NewFresh creates an empty fresh-variable supply.
func NewFresh() *Fresh { return &Fresh{} }

// New yields a new, previously-unused type variable.
func (f *Fresh) New() *types.Var {
	id := f.next
	f.next++
	return types.NewVar(id)
}
