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

// Package scope implements let-polymorphism: type schemes, a persistent
// scope tree rooted at a shared type-system handle, and instantiation of
// schemes at lookup sites.
package scope

import (
	"strconv"
	"strings"

	"github.com/elricmann/typed-lisp/types"
)

// Scheme is a type closed over a set of polymorphic variable ids. A Scheme
// with an empty PolyVars is monomorphic; Instantiate on such a scheme
// returns Body unchanged.
type Scheme struct {
	PolyVars []int
	Body     types.Type
}

// Monomorphic wraps t in a Scheme with no polymorphic variables.
func Monomorphic(t types.Type) Scheme { return Scheme{Body: t} }

func (s Scheme) isPoly(id int) bool {
	for _, v := range s.PolyVars {
		if v == id {
			return true
		}
	}
	return false
}

// String renders s as "forall 't0 't1. <body>" when quantified, or just the
// body's text when monomorphic.
func (s Scheme) String() string {
	if len(s.PolyVars) == 0 {
		return types.ToText(s.Body)
	}
	var sb strings.Builder
	sb.WriteString("forall")
	for _, id := range s.PolyVars {
		sb.WriteString(" 't")
		sb.WriteString(strconv.Itoa(id))
	}
	sb.WriteString(". ")
	sb.WriteString(types.ToText(s.Body))
	return sb.String()
}
