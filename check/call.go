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

// checkCall handles a list whose head is not a special-form keyword: a
// function application. Too many arguments surface as a unification
// failure against Atomic; too few leave a residual Arrow, which is not
// itself an error at this layer.
func (c *checker) checkCall(s *scope.Scope, n *ast.List) types.Type {
	head, _ := n.Head()

	argTypes := make([]types.Type, 0, len(n.Children)-1)
	for _, arg := range n.Children[1:] {
		argTypes = append(argTypes, c.visit(s, arg))
	}

	fnType, found := s.Lookup(head.Text)
	if !found {
		c.diags.Add(diag.Diagnostic{
			Kind:    diag.Unbound,
			Span:    n.NodeSpan(),
			Message: "unbound name: " + head.Text,
			Hint:    "no function binding for " + head.Text,
		})
		fnType = s.Handle.Fresh.New()
	}

	result := s.Handle.Fresh.New()
	expected := types.NewCurriedArrow(argTypes, result)

	if err := s.Handle.Subst.Unify(fnType, expected); err != nil {
		c.wrapUnifyErr(diag.TypeErrorInCall, n.NodeSpan(), err)
	}
	return result
}
