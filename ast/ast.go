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

// Package ast defines the S-expression tree the checker consumes: atoms and
// lists tagged with source spans. The tree is immutable after construction;
// nothing under package check mutates a Node.
package ast

// Span locates a Node in source text.
type Span struct {
	Line   int
	Column int
	Length int
}

// Node is the base for the two syntax variants, Atom and List.
type Node interface {
	// NodeSpan returns the source span the node was parsed from.
	NodeSpan() Span
}

var (
	_ Node = (*Atom)(nil)
	_ Node = (*List)(nil)
)

// Atom is a leaf token: an identifier, a literal, or a tick-prefixed
// polymorphic slot. Its meaning is resolved by the checker, not the parser.
type Atom struct {
	Text string
	span Span
}

// NewAtom constructs an Atom at span.
func NewAtom(text string, span Span) *Atom { return &Atom{Text: text, span: span} }

func (a *Atom) NodeSpan() Span { return a.span }

// List is an ordered sequence of child nodes, dispatched by the textual
// value of its first child when that child is an Atom naming a special
// form; otherwise it is a function call.
type List struct {
	Children []Node
	span     Span
}

// NewList constructs a List at span.
func NewList(children []Node, span Span) *List { return &List{Children: children, span: span} }

func (l *List) NodeSpan() Span { return l.span }

// Head returns the first child as an Atom, and whether that child exists
// and is in fact an Atom (as opposed to a nested List).
func (l *List) Head() (*Atom, bool) {
	if len(l.Children) == 0 {
		return nil, false
	}
	a, ok := l.Children[0].(*Atom)
	return a, ok
}
