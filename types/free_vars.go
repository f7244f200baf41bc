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

package types

// FreeVars returns the sequence of Var ids appearing in t, duplicates
// allowed. Callers that need a set should dedupe.
func FreeVars(t Type) []int {
	var vars []int
	collectFreeVars(t, &vars)
	return vars
}

func collectFreeVars(t Type, out *[]int) {
	switch t := t.(type) {
	case *Atomic:
		// no variables
	case *Var:
		*out = append(*out, t.id)
	case *Arrow:
		collectFreeVars(t.Arg, out)
		collectFreeVars(t.Ret, out)
	}
}

// Occurs reports whether id appears among t's free variables.
func Occurs(id int, t Type) bool {
	switch t := t.(type) {
	case *Atomic:
		return false
	case *Var:
		return t.id == id
	case *Arrow:
		return Occurs(id, t.Arg) || Occurs(id, t.Ret)
	}
	return false
}
