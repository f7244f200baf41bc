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

// Package diag collects checker diagnostics as plain data. It has no
// knowledge of terminals or color; rendering is the driver's job.
package diag

import "github.com/elricmann/typed-lisp/ast"

// Kind identifies the error family a Diagnostic belongs to.
type Kind int

const (
	Unbound Kind = iota
	TypeMismatch
	RecursiveUnification
	TypeErrorInLetBinding
	TypeErrorInAssignment
	ReturnTypeMismatch
	ConditionMustBeBool
	BranchesHaveDifferentTypes
	TypeErrorInCall
	MalformedForm
	UnknownOperator
)

func (k Kind) String() string {
	switch k {
	case Unbound:
		return "Unbound"
	case TypeMismatch:
		return "TypeMismatch"
	case RecursiveUnification:
		return "RecursiveUnification"
	case TypeErrorInLetBinding:
		return "TypeErrorInLetBinding"
	case TypeErrorInAssignment:
		return "TypeErrorInAssignment"
	case ReturnTypeMismatch:
		return "ReturnTypeMismatch"
	case ConditionMustBeBool:
		return "ConditionMustBeBool"
	case BranchesHaveDifferentTypes:
		return "BranchesHaveDifferentTypes"
	case TypeErrorInCall:
		return "TypeErrorInCall"
	case MalformedForm:
		return "MalformedForm"
	case UnknownOperator:
		return "UnknownOperator"
	default:
		return "Unknown"
	}
}

// Diagnostic is one reported problem. InvolvedType, when non-empty, is
// already pretty-printed at the point of emission, so later growth of the
// substitution cannot change a message that was already reported.
type Diagnostic struct {
	Kind         Kind
	Span         ast.Span
	Message      string
	InvolvedType string
	Hint         string
}

type dedupeKey struct {
	kind    Kind
	span    ast.Span
	message string
}

// Bag is an append-only, order-preserving, deduplicating collector.
type Bag struct {
	items []Diagnostic
	seen  map[dedupeKey]bool
}

// NewBag returns an empty diagnostic bag.
func NewBag() *Bag {
	return &Bag{seen: make(map[dedupeKey]bool)}
}

// Add records d unless an identical (kind, span, message) was already
// recorded, in which case it is silently dropped. Add never panics and
// never returns an error; diagnostics are data, not control flow.
func (b *Bag) Add(d Diagnostic) {
	key := dedupeKey{kind: d.Kind, span: d.Span, message: d.Message}
	if b.seen[key] {
		return
	}
	b.seen[key] = true
	b.items = append(b.items, d)
}

// All returns the diagnostics in first-emission order. The returned slice
// must not be mutated by the caller.
func (b *Bag) All() []Diagnostic { return b.items }

// Len reports how many distinct diagnostics have been recorded.
func (b *Bag) Len() int { return len(b.items) }
