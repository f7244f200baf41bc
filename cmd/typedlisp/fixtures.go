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

package main

import (
	"github.com/elricmann/typed-lisp/ast"
	"github.com/elricmann/typed-lisp/scope"
	"github.com/elricmann/typed-lisp/types"
)

// No lexer/parser is part of this tool; fixtures build programs directly as
// Go-literal ast.Node trees, the same way the checker's own tests do.

func atom(text string) *ast.Atom { return ast.NewAtom(text, ast.Span{}) }

func list(children ...ast.Node) *ast.List { return ast.NewList(children, ast.Span{}) }

type fixture struct {
	name    string
	prepare func(root *scope.Scope)
	program ast.Node
}

var fixtures = []fixture{
	{
		name:    "id",
		program: list(atom("def"), atom("id"), atom(":"), atom("'a"), list(atom("x"), atom(":"), atom("'a")), atom("x")),
	},
	{
		name: "add",
		program: list(
			atom("def"), atom("add"), atom(":"), atom("int"),
			list(atom("x"), atom(":"), atom("int")),
			list(atom("y"), atom(":"), atom("int")),
			list(atom("+"), atom("x"), atom("y")),
		),
	},
	{
		name: "bad_add",
		program: list(
			atom("def"), atom("bad_add"), atom(":"), atom("int"),
			list(atom("k"), atom(":"), atom("int")),
			list(atom("+"), atom("true"), atom("7")),
		),
	},
	{
		name: "bad_if",
		program: list(
			atom("def"), atom("bad_if"), atom(":"), atom("int"),
			list(atom("k"), atom(":"), atom("int")),
			list(atom("if"), atom("7"), atom("1"), atom("0")),
		),
	},
	{
		name: "test_if",
		prepare: func(root *scope.Scope) {
			intT := types.NewAtomic(types.Int)
			root.Define("increment", scope.Monomorphic(types.NewArrow(intT, intT)))
			root.Define("is_unsigned", scope.Monomorphic(
				types.NewCurriedArrow([]types.Type{intT}, types.NewAtomic(types.Bool)),
			))
		},
		program: list(
			atom("def"), atom("test_if"), atom(":"), atom("int"),
			list(atom("k"), atom(":"), atom("int")),
			list(atom("if"), list(atom("is_unsigned"), atom("7")), list(atom("increment"), atom("10")), atom("0")),
		),
	},
	{
		name: "set_after_let",
		prepare: func(root *scope.Scope) {
			root.Define("x", scope.Monomorphic(types.NewAtomic(types.Int)))
		},
		program: list(atom("set"), atom("x"), atom("true")),
	},
}
