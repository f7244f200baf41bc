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

// checkDef handles (def name : R (p1 : t1) (p2 : t2) ... body), at least six
// children: def, name, ':', R, one-or-more parameter triples, body.
func (c *checker) checkDef(s *scope.Scope, n *ast.List) types.Type {
	children := n.Children
	if len(children) < 6 {
		c.malformed(n, "def requires at least 6 children: (def name : R (p : t) ... body)")
		return s.Handle.Fresh.New()
	}
	nameAtom, ok := children[1].(*ast.Atom)
	if !ok {
		c.malformed(n, "def's second child must be a name atom")
		return s.Handle.Fresh.New()
	}
	colon, ok := children[2].(*ast.Atom)
	if !ok || colon.Text != kwColon {
		c.malformed(n, "def's third child must be the ':' atom")
		return s.Handle.Fresh.New()
	}
	returnAtom, ok := children[3].(*ast.Atom)
	if !ok {
		c.malformed(n, "def's return-type annotation must be an atom")
		return s.Handle.Fresh.New()
	}
	paramNodes := children[4 : len(children)-1]
	body := children[len(children)-1]

	tickEnv := map[string]*types.Var{}
	var polyVars []int
	recordIfNew := func(t types.Type, isNew bool) {
		if isNew {
			polyVars = append(polyVars, t.(*types.Var).Id())
		}
	}

	child := s.CreateChild()
	paramTypes := make([]types.Type, 0, len(paramNodes))
	for _, pn := range paramNodes {
		pl, ok := pn.(*ast.List)
		if !ok || len(pl.Children) != 3 {
			c.malformed(pn, "parameter must be (name : type)")
			paramTypes = append(paramTypes, s.Handle.Fresh.New())
			continue
		}
		pname, ok := pl.Children[0].(*ast.Atom)
		pcolon, colonOK := pl.Children[1].(*ast.Atom)
		ptype, ok2 := pl.Children[2].(*ast.Atom)
		if !ok || !colonOK || pcolon.Text != kwColon || !ok2 {
			c.malformed(pn, "parameter must be (name : type)")
			paramTypes = append(paramTypes, s.Handle.Fresh.New())
			continue
		}
		pt, isNew := c.resolveAnnotation(s, ptype, tickEnv)
		recordIfNew(pt, isNew)
		child.Define(pname.Text, scope.Monomorphic(pt))
		paramTypes = append(paramTypes, pt)
	}

	returnType, isNew := c.resolveAnnotation(s, returnAtom, tickEnv)
	recordIfNew(returnType, isNew)

	fnType := types.NewCurriedArrow(paramTypes, returnType)

	// Provisional self-binding: the function's own name must resolve within
	// its body so direct recursion typechecks without generalizing a
	// partially-inferred body type.
	child.Define(nameAtom.Text, scope.Monomorphic(fnType))

	bodyType := c.visit(child, body)
	if err := s.Handle.Subst.Unify(returnType, bodyType); err != nil {
		c.wrapUnifyErr(diag.ReturnTypeMismatch, n.NodeSpan(), err)
	}

	s.Define(nameAtom.Text, scope.Scheme{PolyVars: polyVars, Body: fnType})
	return fnType
}
