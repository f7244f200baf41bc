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
	"github.com/elricmann/typed-lisp/subst"
	"github.com/elricmann/typed-lisp/types"
)

func typeText(t types.Type) string { return types.ToText(t) }

// wrapUnifyErr turns a failure from Substitution.Unify into a Diagnostic of
// kind, attributing it to span. It is the single point that produces the
// contextual wrapper kinds (TypeErrorInLetBinding, ReturnTypeMismatch, ...)
// described around a TypeMismatch or RecursiveUnification.
func (c *checker) wrapUnifyErr(kind diag.Kind, span ast.Span, err error) {
	d := diag.Diagnostic{Kind: kind, Span: span, Message: err.Error()}
	switch e := err.(type) {
	case *subst.TypeMismatch:
		d.InvolvedType = "expected " + typeText(e.Expected) + ", found " + typeText(e.Found)
	case *subst.RecursiveUnification:
		d.InvolvedType = typeText(e.Term)
	}
	c.diags.Add(d)
}
