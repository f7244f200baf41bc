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
	"github.com/elricmann/typed-lisp/ast"
	"github.com/elricmann/typed-lisp/diag"
	"github.com/elricmann/typed-lisp/scope"
	"github.com/elricmann/typed-lisp/types"
)

// checkLet handles (let name : T value), exactly five children.
func (c *checker) checkLet(s *scope.Scope, n *ast.List) types.Type {
	children := n.Children
	if len(children) != 5 {
		c.malformed(n, "let requires exactly 5 children: (let name : T value)")
		return s.Handle.Fresh.New()
	}
	nameAtom, ok := children[1].(*ast.Atom)
	if !ok {
		c.malformed(n, "let's second child must be a name atom")
		return s.Handle.Fresh.New()
	}
	colon, ok := children[2].(*ast.Atom)
	if !ok || colon.Text != kwColon {
		c.malformed(n, "let's third child must be the ':' atom")
		return s.Handle.Fresh.New()
	}
	typeAtom, ok := children[3].(*ast.Atom)
	if !ok {
		c.malformed(n, "let's fourth child must be a type annotation atom")
		return s.Handle.Fresh.New()
	}

	tickEnv := map[string]*types.Var{}
	letType, isNew := c.resolveAnnotation(s, typeAtom, tickEnv)
	var polyVars []int
	if isNew {
		polyVars = append(polyVars, letType.(*types.Var).Id())
	}

	valueType := c.visit(s, children[4])
	if err := s.Handle.Subst.Unify(letType, valueType); err != nil {
		c.wrapUnifyErr(diag.TypeErrorInLetBinding, n.NodeSpan(), err)
	}

	s.Define(nameAtom.Text, scope.Scheme{PolyVars: polyVars, Body: letType})
	return letType
}

// checkSet handles (set name value), exactly three children.
func (c *checker) checkSet(s *scope.Scope, n *ast.List) types.Type {
	children := n.Children
	if len(children) != 3 {
		c.malformed(n, "set requires exactly 3 children: (set name value)")
		return s.Handle.Fresh.New()
	}
	nameAtom, ok := children[1].(*ast.Atom)
	if !ok {
		c.malformed(n, "set's second child must be a name atom")
		return s.Handle.Fresh.New()
	}

	valueType := c.visit(s, children[2])

	varType, found := s.Lookup(nameAtom.Text)
	if !found {
		c.diags.Add(diag.Diagnostic{
			Kind:    diag.Unbound,
			Span:    n.NodeSpan(),
			Message: "unbound name: " + nameAtom.Text,
			Hint:    "set target " + nameAtom.Text + " has no binding in scope",
		})
		varType = s.Handle.Fresh.New()
	}

	if err := s.Handle.Subst.Unify(varType, valueType); err != nil {
		c.wrapUnifyErr(diag.TypeErrorInAssignment, n.NodeSpan(), err)
	}
	return varType
}

// checkIf handles (if cond then else), exactly four children.
func (c *checker) checkIf(s *scope.Scope, n *ast.List) types.Type {
	children := n.Children
	if len(children) != 4 {
		c.malformed(n, "if requires exactly 4 children: (if cond then else)")
		return s.Handle.Fresh.New()
	}

	condType := c.visit(s, children[1])
	if err := s.Handle.Subst.Unify(condType, types.NewAtomic(types.Bool)); err != nil {
		c.wrapUnifyErr(diag.ConditionMustBeBool, n.NodeSpan(), err)
	}

	thenType := c.visit(s, children[2])
	elseType := c.visit(s, children[3])
	if err := s.Handle.Subst.Unify(thenType, elseType); err != nil {
		c.wrapUnifyErr(diag.BranchesHaveDifferentTypes, n.NodeSpan(), err)
	}
	return thenType
}
