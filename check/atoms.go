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
	"strconv"
	"strings"

	"github.com/elricmann/typed-lisp/ast"
	"github.com/elricmann/typed-lisp/diag"
	"github.com/elricmann/typed-lisp/scope"
	"github.com/elricmann/typed-lisp/types"
)

func (c *checker) visitAtom(s *scope.Scope, n *ast.Atom) types.Type {
	text := n.Text

	switch text {
	case "true", "false":
		return types.NewAtomic(types.Bool)
	}

	if _, err := strconv.ParseInt(text, 10, 32); err == nil {
		return types.NewAtomic(types.Int)
	}

	if len(text) >= 2 && strings.HasPrefix(text, `"`) && strings.HasSuffix(text, `"`) {
		return types.NewAtomic(types.String)
	}

	if strings.HasPrefix(text, "'") {
		return s.Handle.Fresh.New()
	}

	if t, ok := s.Lookup(text); ok {
		return t
	}
	c.diags.Add(diag.Diagnostic{
		Kind:    diag.Unbound,
		Span:    n.NodeSpan(),
		Message: "unbound name: " + text,
		Hint:    "no binding for " + text + " in this scope or any enclosing scope",
	})
	return s.Handle.Fresh.New()
}

// resolveAnnotation turns a type annotation atom into a Type. A tick-prefixed
// identifier allocates a fresh variable the first time it is seen within
// tickEnv and reuses the same variable for later occurrences of the same
// identifier; isNew reports whether this call introduced a new polymorphic
// variable that its caller should record. A ground name not in
// s.Handle.AllowedTypes (the built-ins plus any configured prelude
// extensions) is reported as malformed and resolved to a fresh,
// non-polymorphic variable, so one unknown type name never stops the rest
// of the form from being checked and raises no further diagnostics.
func (c *checker) resolveAnnotation(s *scope.Scope, n *ast.Atom, tickEnv map[string]*types.Var) (types.Type, bool) {
	text := n.Text
	if !strings.HasPrefix(text, "'") {
		if !s.Handle.AllowedTypes[text] {
			c.malformed(n, "unknown type name: "+text)
			return s.Handle.Fresh.New(), false
		}
		return types.NewAtomic(text), false
	}
	if v, ok := tickEnv[text]; ok {
		return v, false
	}
	v := s.Handle.Fresh.New()
	tickEnv[text] = v
	return v, true
}
