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
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/elricmann/typed-lisp/diag"
)

// renderer prints diagnostics the way a terminal driver would: package diag
// itself stays presentation-free, so all coloring and line framing lives
// here. No source excerpt or caret is printed.
type renderer struct {
	out     io.Writer
	colored bool
	// maxDiagnostics caps how many diagnostics RenderAll prints, mirroring
	// the project config's checker.max_diagnostics. Zero means unlimited.
	maxDiagnostics int
}

func newRenderer(out io.Writer, colored bool, maxDiagnostics int) *renderer {
	return &renderer{out: out, colored: colored, maxDiagnostics: maxDiagnostics}
}

func (r *renderer) paint(c *color.Color, s string) string {
	if !r.colored {
		return s
	}
	return c.Sprint(s)
}

// Render prints one diagnostic as a "kind at line:col: message" line,
// followed by an indented involved-type line and an indented "hint:" line
// when those fields are non-empty. Every kind in package diag shares this
// shape.
func (r *renderer) Render(d diag.Diagnostic) {
	kind := r.paint(color.New(color.FgRed, color.Bold), d.Kind.String())
	loc := fmt.Sprintf("%d:%d", d.Span.Line, d.Span.Column)

	fmt.Fprintf(r.out, "%s at %s: %s\n", kind, loc, d.Message)
	if d.InvolvedType != "" {
		fmt.Fprintf(r.out, "  %s\n", r.paint(color.New(color.FgYellow), d.InvolvedType))
	}
	if d.Hint != "" {
		fmt.Fprintf(r.out, "  hint: %s\n", r.paint(color.New(color.Faint), d.Hint))
	}
}

// RenderAll prints every diagnostic in ds, already in first-emission order,
// stopping after maxDiagnostics and noting how many were withheld.
func (r *renderer) RenderAll(ds []diag.Diagnostic) {
	shown := ds
	if r.maxDiagnostics > 0 && len(ds) > r.maxDiagnostics {
		shown = ds[:r.maxDiagnostics]
	}
	for _, d := range shown {
		r.Render(d)
	}
	if len(shown) < len(ds) {
		fmt.Fprintf(r.out, "... %d more diagnostic(s) withheld (checker.max_diagnostics = %d)\n", len(ds)-len(shown), r.maxDiagnostics)
	}
}
