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

package diag

import (
	"testing"

	"github.com/elricmann/typed-lisp/ast"
)

func TestAddDeduplicates(t *testing.T) {
	b := NewBag()
	span := ast.Span{Line: 1, Column: 1, Length: 3}

	b.Add(Diagnostic{Kind: Unbound, Span: span, Message: "unbound name: foo"})
	b.Add(Diagnostic{Kind: Unbound, Span: span, Message: "unbound name: foo"})

	if b.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", b.Len())
	}
}

func TestAddPreservesFirstEmissionOrder(t *testing.T) {
	b := NewBag()
	spanA := ast.Span{Line: 1, Column: 1, Length: 1}
	spanB := ast.Span{Line: 2, Column: 1, Length: 1}

	b.Add(Diagnostic{Kind: Unbound, Span: spanB, Message: "second"})
	b.Add(Diagnostic{Kind: Unbound, Span: spanA, Message: "first"})

	all := b.All()
	if len(all) != 2 || all[0].Message != "second" || all[1].Message != "first" {
		t.Fatalf("All() = %v, want emission order preserved", all)
	}
}

func TestAddDistinguishesBySpan(t *testing.T) {
	b := NewBag()
	b.Add(Diagnostic{Kind: TypeMismatch, Span: ast.Span{Line: 1}, Message: "m"})
	b.Add(Diagnostic{Kind: TypeMismatch, Span: ast.Span{Line: 2}, Message: "m"})

	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (same message, different span)", b.Len())
	}
}
