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

// Package codegen describes the interface a downstream backend would
// consume from a successfully checked program. It is deliberately a
// boundary, not an implementation: lowering typed ast.Node trees to a
// backend IR is an external collaborator's job.
package codegen

import (
	"github.com/elricmann/typed-lisp/ast"
	"github.com/elricmann/typed-lisp/check"
	"github.com/elricmann/typed-lisp/scope"
)

// Lowerer lowers a checked program to a backend-specific intermediate
// representation. IR is left as interface{} because no concrete backend is
// in scope; a real implementation would replace it with a typed IR module.
type Lowerer interface {
	Lower(root ast.Node, result *check.Result, rootScope *scope.Scope) (ir interface{}, err error)
}
