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
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "typedlisp",
	Short: "Typed Lisp type checker",
	Long:  `typedlisp checks Typed Lisp programs against a Hindley-Milner-style type discipline with explicit annotations and let-polymorphism.`,
}

// main registers subcommands and persistent flags, then executes the root
// command. A failing command exits with status 1.
func main() {
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(checkCmd)

	cfg, err := loadConfig(".")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if _, ok, err := findConfig("."); err == nil && !ok {
		fmt.Fprintln(os.Stderr, noConfigMessage)
	}
	activeConfig = cfg

	rootCmd.PersistentFlags().String("color", cfg.Checker.Color, "colorize diagnostic output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func colorEnabled(cmd *cobra.Command) (bool, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return isTerminal(os.Stdout), nil
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
