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

package subst

import "github.com/elricmann/typed-lisp/types"

// TypeMismatch reports that the unifier disagreed on ground types or
// structures.
type TypeMismatch struct {
	Expected types.Type
	Found    types.Type
}

func (e *TypeMismatch) Error() string {
	return "type mismatch: expected " + types.ToText(e.Expected) + ", found " + types.ToText(e.Found)
}

// RecursiveUnification reports an occurs-check failure: binding VarId to
// Term would produce an infinite type.
type RecursiveUnification struct {
	VarId int
	Term  types.Type
}

func (e *RecursiveUnification) Error() string {
	return "recursive unification: variable occurs in " + types.ToText(e.Term)
}
