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

	"github.com/spf13/cobra"

	"github.com/elricmann/typed-lisp/check"
	"github.com/elricmann/typed-lisp/prelude"
	"github.com/elricmann/typed-lisp/scope"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Check every built-in fixture program and print its diagnostics",
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	colored, err := colorEnabled(cmd)
	if err != nil {
		return err
	}
	r := newRenderer(cmd.OutOrStdout(), colored, activeConfig.Checker.MaxDiagnostics)

	for _, f := range fixtures {
		root := scope.NewRootScope(scope.NewHandle())
		prelude.Seed(root, activeConfig.Checker.PreludeExtensions...)
		if f.prepare != nil {
			f.prepare(root)
		}

		result, diags := check.Check(f.program, root)
		fmt.Fprintf(cmd.OutOrStdout(), "== %s ==\n", f.name)
		if len(diags) == 0 {
			if scheme, ok := result.GeneralizeAt(f.program, root); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "  ok, type: %s\n", scheme)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "  ok, no diagnostics")
			}
			continue
		}
		r.RenderAll(diags)
	}
	return nil
}
