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

package prelude

import (
	"testing"

	"github.com/elricmann/typed-lisp/scope"
	"github.com/elricmann/typed-lisp/types"
)

func TestSeedBindsArithmetic(t *testing.T) {
	root := scope.NewRootScope(scope.NewHandle())
	Seed(root)

	got, ok := root.Lookup("+")
	if !ok {
		t.Fatalf("lookup(+) not found after Seed")
	}
	if want := "int -> (int -> int)"; types.ToText(got) != want {
		t.Fatalf("ToText(+) = %q, want %q", types.ToText(got), want)
	}
}

func TestSeedBindsComparison(t *testing.T) {
	root := scope.NewRootScope(scope.NewHandle())
	Seed(root)

	got, ok := root.Lookup("<=")
	if !ok {
		t.Fatalf("lookup(<=) not found after Seed")
	}
	if want := "int -> (int -> bool)"; types.ToText(got) != want {
		t.Fatalf("ToText(<=) = %q, want %q", types.ToText(got), want)
	}
}

func TestSeedDoesNotBindStructuralTokens(t *testing.T) {
	root := scope.NewRootScope(scope.NewHandle())
	Seed(root)

	for _, tok := range []string{":", "def", "let", "set", "if"} {
		if _, ok := root.Lookup(tok); ok {
			t.Fatalf("Seed bound structural token %q as a value", tok)
		}
	}
}

func TestSeedExtendsAllowedTypesWithoutBindingThemAsValues(t *testing.T) {
	root := scope.NewRootScope(scope.NewHandle())
	Seed(root, "uuid", "duration")

	if !root.Handle.AllowedTypes["uuid"] || !root.Handle.AllowedTypes["duration"] {
		t.Fatalf("Seed did not extend AllowedTypes with the given names")
	}
	if _, ok := root.Lookup("uuid"); ok {
		t.Fatalf("Seed bound a type-constant name %q as a value", "uuid")
	}
}

func TestSeedLeavesBuiltinTypesAllowedWithNoExtensions(t *testing.T) {
	root := scope.NewRootScope(scope.NewHandle())
	Seed(root)

	for _, name := range []string{types.Int, types.Bool, types.Float, types.Double, types.Char, types.String} {
		if !root.Handle.AllowedTypes[name] {
			t.Fatalf("built-in type %q not allowed by default", name)
		}
	}
}
