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
	"testing"

	"github.com/elricmann/typed-lisp/types"
)

func TestDefineDoesNotMutateParent(t *testing.T) {
	root := NewRootScope(NewHandle())
	root.Define("x", Monomorphic(types.NewAtomic(types.Int)))

	child := root.CreateChild()
	child.Define("y", Monomorphic(types.NewAtomic(types.Bool)))

	if _, ok := root.Lookup("y"); ok {
		t.Fatalf("child binding leaked into parent scope")
	}
	if _, ok := child.Lookup("x"); !ok {
		t.Fatalf("child scope could not see parent binding")
	}
}

func TestInstantiateFreshensEachLookup(t *testing.T) {
	h := NewHandle()
	root := NewRootScope(h)

	// identity : 'a -> 'a
	poly := h.Fresh.New()
	scheme := Scheme{PolyVars: []int{poly.Id()}, Body: types.NewArrow(poly, poly)}
	root.Define("identity", scheme)

	t1, _ := root.Lookup("identity")
	t2, _ := root.Lookup("identity")

	a1, ok := t1.(*types.Arrow)
	if !ok {
		t.Fatalf("Lookup() = %T, want *types.Arrow", t1)
	}
	a2, ok := t2.(*types.Arrow)
	if !ok {
		t.Fatalf("Lookup() = %T, want *types.Arrow", t2)
	}
	v1, ok := a1.Arg.(*types.Var)
	if !ok {
		t.Fatalf("instantiated argument is not a Var")
	}
	v2, ok := a2.Arg.(*types.Var)
	if !ok {
		t.Fatalf("instantiated argument is not a Var")
	}
	if v1.Id() == v2.Id() {
		t.Fatalf("two independent lookups shared a fresh variable id")
	}

	// within one instantiation, arg and ret must still refer to the same var
	retVar, ok := a1.Ret.(*types.Var)
	if !ok || retVar.Id() != v1.Id() {
		t.Fatalf("instantiation did not preserve the linkage between arg and ret")
	}
}

func TestGeneralizeExcludesEnclosingFreeVars(t *testing.T) {
	h := NewHandle()
	root := NewRootScope(h)

	outer := h.Fresh.New()
	root.Define("outer", Monomorphic(outer))

	child := root.CreateChild()
	// child's own fresh var, free, is eligible for generalization
	inner := h.Fresh.New()
	arrow := types.NewArrow(inner, outer)

	got := child.Generalize(arrow)
	if len(got.PolyVars) != 1 || got.PolyVars[0] != inner.Id() {
		t.Fatalf("Generalize() PolyVars = %v, want only %d", got.PolyVars, inner.Id())
	}
}
