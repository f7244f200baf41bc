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

// Package check is the inference engine: a single-pass, left-to-right,
// depth-first walk over an ast.Node that grows a shared substitution and
// records diagnostics, recovering locally from every error so that one pass
// can surface many of them.
package check

import (
	"github.com/elricmann/typed-lisp/ast"
	"github.com/elricmann/typed-lisp/diag"
	"github.com/elricmann/typed-lisp/scope"
	"github.com/elricmann/typed-lisp/types"
)

// structural tokens dispatched on before any name lookup; never bound as
// values in any Environment.
const (
	kwColon = ":"
	kwDef   = "def"
	kwLet   = "let"
	kwSet   = "set"
	kwIf    = "if"
)

// Result holds the outcome of one Check call: the final, substituted type
// recorded at every visited node, without mutating the AST itself.
type Result struct {
	finalTypes map[ast.Node]types.Type
	root       *scope.Scope
}

// FinalType returns the substituted type recorded at n, if n was visited.
func (r *Result) FinalType(n ast.Node) (types.Type, bool) {
	t, ok := r.finalTypes[n]
	if !ok {
		return nil, false
	}
	return r.root.Handle.Subst.Finalize(t), true
}

// SchemeOf returns the declared scheme for name, searching s and its
// ancestors.
func (r *Result) SchemeOf(name string, s *scope.Scope) (scope.Scheme, bool) {
	return s.SchemeOf(name)
}

// GeneralizeAt quantifies the final type recorded at n over every variable
// free in it but not free in any scope enclosing s, the way a codegen
// consumer would reconstruct a top-level binding's scheme from a checked
// program without re-running inference.
func (r *Result) GeneralizeAt(n ast.Node, s *scope.Scope) (scope.Scheme, bool) {
	t, ok := r.FinalType(n)
	if !ok {
		return scope.Scheme{}, false
	}
	return s.Generalize(t), true
}

type checker struct {
	diags *diag.Bag
	final map[ast.Node]types.Type
}

// Check walks root under rootScope, returning the recorded final types and
// the ordered list of diagnostics produced along the way. It never panics
// and never returns a Go error: every failure becomes a Diagnostic.
func Check(root ast.Node, rootScope *scope.Scope) (*Result, []diag.Diagnostic) {
	c := &checker{diags: diag.NewBag(), final: make(map[ast.Node]types.Type)}
	c.visit(rootScope, root)
	return &Result{finalTypes: c.final, root: rootScope}, c.diags.All()
}

// visit dispatches on the dynamic shape of n, recording its current_type
// before returning it.
func (c *checker) visit(s *scope.Scope, n ast.Node) types.Type {
	var t types.Type
	switch n := n.(type) {
	case *ast.Atom:
		t = c.visitAtom(s, n)
	case *ast.List:
		t = c.visitList(s, n)
	default:
		t = s.Handle.Fresh.New()
	}
	c.final[n] = t
	return t
}

func (c *checker) visitList(s *scope.Scope, n *ast.List) types.Type {
	head, ok := n.Head()
	if !ok {
		c.malformed(n, "a list's first child must be an atom naming a special form or a called function")
		return s.Handle.Fresh.New()
	}
	switch head.Text {
	case kwLet:
		return c.checkLet(s, n)
	case kwDef:
		return c.checkDef(s, n)
	case kwSet:
		return c.checkSet(s, n)
	case kwIf:
		return c.checkIf(s, n)
	default:
		return c.checkCall(s, n)
	}
}

func (c *checker) malformed(n ast.Node, hint string) {
	c.diags.Add(diag.Diagnostic{
		Kind:    diag.MalformedForm,
		Span:    n.NodeSpan(),
		Message: "malformed form: " + hint,
		Hint:    hint,
	})
}
