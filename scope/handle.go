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

package scope

import (
	"github.com/elricmann/typed-lisp/subst"
	"github.com/elricmann/typed-lisp/types"
)

// Handle is the type-system state shared by every Scope in one compilation
// unit: one fresh-variable supply, one substitution, and the set of ground
// type names annotations are allowed to name. Scopes never carry their own
// copy; CreateChild passes the same Handle down the tree.
type Handle struct {
	Fresh        *subst.Fresh
	Subst        *subst.Substitution
	AllowedTypes map[string]bool
}

// NewHandle creates a shared type-system handle for one compilation, seeded
// with the checker's built-in ground types. ExtendTypes adds further names,
// e.g. from a project's prelude extensions.
func NewHandle() *Handle {
	h := &Handle{Fresh: subst.NewFresh(), Subst: subst.NewSubstitution(), AllowedTypes: map[string]bool{}}
	for _, name := range []string{types.Int, types.Bool, types.Float, types.Double, types.Char, types.String} {
		h.AllowedTypes[name] = true
	}
	return h
}

// ExtendTypes adds extra opaque ground type names, beyond the built-ins, that
// annotations in this compilation are allowed to name.
func (h *Handle) ExtendTypes(names ...string) {
	for _, name := range names {
		h.AllowedTypes[name] = true
	}
}
