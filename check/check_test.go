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

package check

import (
	"testing"

	"github.com/elricmann/typed-lisp/ast"
	"github.com/elricmann/typed-lisp/diag"
	"github.com/elricmann/typed-lisp/prelude"
	"github.com/elricmann/typed-lisp/scope"
	"github.com/elricmann/typed-lisp/types"
)

func atom(text string) *ast.Atom { return ast.NewAtom(text, ast.Span{}) }

func list(children ...ast.Node) *ast.List { return ast.NewList(children, ast.Span{}) }

func newRoot() *scope.Scope {
	root := scope.NewRootScope(scope.NewHandle())
	prelude.Seed(root)
	return root
}

// (def id : 'a (x : 'a) x)
func TestDefIdentity(t *testing.T) {
	root := newRoot()
	program := list(
		atom("def"), atom("id"), atom(":"), atom("'a"),
		list(atom("x"), atom(":"), atom("'a")),
		atom("x"),
	)

	_, diags := Check(program, root)
	if len(diags) != 0 {
		t.Fatalf("diagnostics = %v, want none", diags)
	}

	scheme, ok := root.SchemeOf("id")
	if !ok {
		t.Fatalf("id not defined")
	}
	if len(scheme.PolyVars) != 1 {
		t.Fatalf("scheme.PolyVars = %v, want exactly 1 var", scheme.PolyVars)
	}
}

// (def add : int (x : int) (y : int) (+ x y))
func TestDefAdd(t *testing.T) {
	root := newRoot()
	program := list(
		atom("def"), atom("add"), atom(":"), atom("int"),
		list(atom("x"), atom(":"), atom("int")),
		list(atom("y"), atom(":"), atom("int")),
		list(atom("+"), atom("x"), atom("y")),
	)

	_, diags := Check(program, root)
	if len(diags) != 0 {
		t.Fatalf("diagnostics = %v, want none", diags)
	}

	scheme, ok := root.SchemeOf("add")
	if !ok {
		t.Fatalf("add not defined")
	}
	if len(scheme.PolyVars) != 0 {
		t.Fatalf("add should be monomorphic, got PolyVars = %v", scheme.PolyVars)
	}
}

// (def bad_add : int (k : int) (+ true 7))
func TestDefBadAddReportsTypeErrorInCall(t *testing.T) {
	root := newRoot()
	program := list(
		atom("def"), atom("bad_add"), atom(":"), atom("int"),
		list(atom("k"), atom(":"), atom("int")),
		list(atom("+"), atom("true"), atom("7")),
	)

	_, diags := Check(program, root)
	if len(diags) != 1 {
		t.Fatalf("diagnostics = %v, want exactly 1", diags)
	}
	if diags[0].Kind != diag.TypeErrorInCall {
		t.Fatalf("diagnostic kind = %v, want TypeErrorInCall", diags[0].Kind)
	}
}

// (def is_unsigned : bool (x : int) (> x 0))
// (def test_if : int (k : int) (if (is_unsigned 7) (increment 10) 0))
// with increment : int -> int already in scope
func TestChainedDefsWithCallInCondition(t *testing.T) {
	root := newRoot()
	intT := types.NewAtomic(types.Int)
	root.Define("increment", scope.Monomorphic(types.NewArrow(intT, intT)))

	isUnsigned := list(
		atom("def"), atom("is_unsigned"), atom(":"), atom("bool"),
		list(atom("x"), atom(":"), atom("int")),
		list(atom(">"), atom("x"), atom("0")),
	)
	testIf := list(
		atom("def"), atom("test_if"), atom(":"), atom("int"),
		list(atom("k"), atom(":"), atom("int")),
		list(atom("if"), list(atom("is_unsigned"), atom("7")), list(atom("increment"), atom("10")), atom("0")),
	)

	_, diags1 := Check(isUnsigned, root)
	if len(diags1) != 0 {
		t.Fatalf("is_unsigned diagnostics = %v, want none", diags1)
	}
	_, diags2 := Check(testIf, root)
	if len(diags2) != 0 {
		t.Fatalf("test_if diagnostics = %v, want none", diags2)
	}

	scheme, ok := root.SchemeOf("test_if")
	if !ok {
		t.Fatalf("test_if not defined")
	}
	if got, want := types.ToText(scheme.Body), "int -> int"; got != want {
		t.Fatalf("scheme_of(test_if) = %q, want %q", got, want)
	}
}

// (def bad_if : int (k : int) (if 7 1 0))
func TestDefBadIfReportsConditionMustBeBool(t *testing.T) {
	root := newRoot()
	program := list(
		atom("def"), atom("bad_if"), atom(":"), atom("int"),
		list(atom("k"), atom(":"), atom("int")),
		list(atom("if"), atom("7"), atom("1"), atom("0")),
	)

	_, diags := Check(program, root)
	if len(diags) != 1 {
		t.Fatalf("diagnostics = %v, want exactly 1", diags)
	}
	if diags[0].Kind != diag.ConditionMustBeBool {
		t.Fatalf("diagnostic kind = %v, want ConditionMustBeBool", diags[0].Kind)
	}
}

// (let x : int 5) then (set x true)
func TestSetAfterLetReportsTypeErrorInAssignment(t *testing.T) {
	root := newRoot()
	letForm := list(atom("let"), atom("x"), atom(":"), atom("int"), atom("5"))
	setForm := list(atom("set"), atom("x"), atom("true"))

	Check(letForm, root)
	_, diags := Check(setForm, root)

	if len(diags) != 1 {
		t.Fatalf("diagnostics = %v, want exactly 1", diags)
	}
	if diags[0].Kind != diag.TypeErrorInAssignment {
		t.Fatalf("diagnostic kind = %v, want TypeErrorInAssignment", diags[0].Kind)
	}
}

func TestUnboundNameRecoversWithFreshVar(t *testing.T) {
	root := newRoot()
	program := list(atom("ghost"))

	result, diags := Check(program, root)
	if len(diags) != 1 || diags[0].Kind != diag.Unbound {
		t.Fatalf("diagnostics = %v, want exactly 1 Unbound", diags)
	}
	if _, ok := result.FinalType(program); !ok {
		t.Fatalf("FinalType did not record a type for the unbound atom, checking did not recover")
	}
}

func TestDuplicateDiagnosticsAreDeduplicated(t *testing.T) {
	root := newRoot()
	// two independent uses of the same unbound name in one call
	program := list(atom("+"), atom("ghost"), atom("ghost"))

	_, diags := Check(program, root)
	count := 0
	for _, d := range diags {
		if d.Kind == diag.Unbound {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("got %d Unbound diagnostics for identical (kind, span, message), want 1", count)
	}
}

// (def bad : wat (x : int) x) — "wat" is not a built-in and was never
// extended into scope, so it is reported but the def still checks.
func TestUnknownTypeAnnotationReportsMalformedButRecovers(t *testing.T) {
	root := newRoot()
	program := list(
		atom("def"), atom("bad"), atom(":"), atom("wat"),
		list(atom("x"), atom(":"), atom("int")),
		atom("x"),
	)

	_, diags := Check(program, root)
	if len(diags) != 1 || diags[0].Kind != diag.MalformedForm {
		t.Fatalf("diagnostics = %v, want exactly 1 MalformedForm", diags)
	}
	if _, ok := root.SchemeOf("bad"); !ok {
		t.Fatalf("bad was not defined despite recovering from the unknown annotation")
	}
}

// (def parse : uuid (s : string) s) typechecks once "uuid" is extended.
func TestExtendedTypeAnnotationIsAccepted(t *testing.T) {
	root := scope.NewRootScope(scope.NewHandle())
	prelude.Seed(root, "uuid")
	program := list(
		atom("def"), atom("parse"), atom(":"), atom("uuid"),
		list(atom("s"), atom(":"), atom("uuid")),
		atom("s"),
	)

	_, diags := Check(program, root)
	if len(diags) != 0 {
		t.Fatalf("diagnostics = %v, want none", diags)
	}
}

// GeneralizeAt should report "id" as polymorphic in exactly its one tick-var.
func TestResultGeneralizeAtReportsDefsPolyVars(t *testing.T) {
	root := newRoot()
	program := list(
		atom("def"), atom("id"), atom(":"), atom("'a"),
		list(atom("x"), atom(":"), atom("'a")),
		atom("x"),
	)

	result, diags := Check(program, root)
	if len(diags) != 0 {
		t.Fatalf("diagnostics = %v, want none", diags)
	}

	scheme, ok := result.GeneralizeAt(program, root)
	if !ok {
		t.Fatalf("GeneralizeAt did not find a recorded type for program")
	}
	if len(scheme.PolyVars) != 1 {
		t.Fatalf("scheme.PolyVars = %v, want exactly 1 var", scheme.PolyVars)
	}
}
