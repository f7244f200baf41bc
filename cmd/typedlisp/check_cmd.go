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
	"os"

	"github.com/spf13/cobra"

	"github.com/elricmann/typed-lisp/check"
	"github.com/elricmann/typed-lisp/prelude"
	"github.com/elricmann/typed-lisp/scope"
)

var checkCmd = &cobra.Command{
	Use:   "check <fixture>",
	Short: "Check a single named fixture program and exit 1 if it has diagnostics",
	Long: "No lexer/parser is part of this tool, so check takes the name of one of the\n" +
		"built-in fixture programs rather than a source path; run `typedlisp demo`\n" +
		"to list what is available.",
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	name := args[0]
	var target *fixture
	for i := range fixtures {
		if fixtures[i].name == name {
			target = &fixtures[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("no fixture named %q", name)
	}

	colored, err := colorEnabled(cmd)
	if err != nil {
		return err
	}

	root := scope.NewRootScope(scope.NewHandle())
	prelude.Seed(root, activeConfig.Checker.PreludeExtensions...)
	if target.prepare != nil {
		target.prepare(root)
	}

	result, diags := check.Check(target.program, root)
	newRenderer(cmd.OutOrStdout(), colored, activeConfig.Checker.MaxDiagnostics).RenderAll(diags)

	if len(diags) > 0 {
		os.Exit(1)
	}
	if scheme, ok := result.GeneralizeAt(target.program, root); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "type: %s\n", scheme)
	}
	return nil
}
