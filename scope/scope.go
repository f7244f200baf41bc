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

package scope

import "github.com/elricmann/typed-lisp/types"

// Scope is a node in the lexical scope tree built during checking. Its
// Parent link is non-owning: a Scope never mutates its parent's Environment,
// only its own. Every Scope in one compilation shares the same Handle.
type Scope struct {
	Parent *Scope
	Handle *Handle
	env    *Environment
}

// NewRootScope creates the outermost Scope for one compilation unit.
func NewRootScope(h *Handle) *Scope {
	return &Scope{Handle: h, env: NewEnvironment()}
}

// CreateChild creates a new lexical child of s. The child starts with an
// empty local environment; lookups that miss locally fall through to s.
func (s *Scope) CreateChild() *Scope {
	return &Scope{Parent: s, Handle: s.Handle, env: NewEnvironment()}
}

// Define binds name to scheme in s's own environment. It does not affect
// s.Parent or any other Scope holding a reference to s's previous
// environment.
func (s *Scope) Define(name string, scheme Scheme) {
	s.env = s.env.With(name, scheme)
}

// Lookup searches s and then s.Parent, s.Parent.Parent, ... for name. If
// found, the bound Scheme is instantiated with fresh variables before being
// returned, so every lookup site gets its own copy of any polymorphic
// variables.
func (s *Scope) Lookup(name string) (types.Type, bool) {
	scheme, found := s.lookupScheme(name)
	if !found {
		return nil, false
	}
	return s.Instantiate(scheme), true
}

// SchemeOf returns the raw, uninstantiated Scheme bound to name, searching s
// and its ancestors, without allocating fresh variables.
func (s *Scope) SchemeOf(name string) (Scheme, bool) {
	return s.lookupScheme(name)
}

func (s *Scope) lookupScheme(name string) (Scheme, bool) {
	for sc := s; sc != nil; sc = sc.Parent {
		if scheme, ok := sc.env.Get(name); ok {
			return scheme, true
		}
	}
	return Scheme{}, false
}

// Instantiate replaces every polymorphic variable in scheme with a fresh
// type variable, consistently: two occurrences of the same polymorphic
// variable id receive the same fresh variable within one call.
func (s *Scope) Instantiate(scheme Scheme) types.Type {
	if len(scheme.PolyVars) == 0 {
		return scheme.Body
	}
	fresh := make(map[int]types.Type, len(scheme.PolyVars))
	for _, id := range scheme.PolyVars {
		fresh[id] = s.Handle.Fresh.New()
	}
	return instantiateWith(scheme.Body, fresh)
}

func instantiateWith(t types.Type, fresh map[int]types.Type) types.Type {
	switch t := t.(type) {
	case *types.Var:
		if repl, ok := fresh[t.Id()]; ok {
			return repl
		}
		return t
	case *types.Arrow:
		return types.NewArrow(instantiateWith(t.Arg, fresh), instantiateWith(t.Ret, fresh))
	default:
		return t
	}
}

// Generalize produces a Scheme for t, quantifying over every free variable
// in t (after applying s.Handle.Subst) that is not free anywhere in an
// enclosing scope's environment. Variables still fixed by an outer binding
// must not be generalized, or they would be instantiated independently at
// each use and escape the constraint that tied them together.
func (s *Scope) Generalize(t types.Type) Scheme {
	applied := s.Handle.Subst.Apply(t)
	free := types.FreeVars(applied)

	enclosing := s.enclosingFreeVars()
	seen := make(map[int]bool, len(free))
	poly := make([]int, 0, len(free))
	for _, id := range free {
		if seen[id] || enclosing[id] {
			continue
		}
		seen[id] = true
		poly = append(poly, id)
	}
	return Scheme{PolyVars: poly, Body: applied}
}

func (s *Scope) enclosingFreeVars() map[int]bool {
	out := map[int]bool{}
	for sc := s; sc != nil; sc = sc.Parent {
		itr := sc.env.m.Iterator()
		for !itr.Done() {
			_, scheme, _ := itr.Next()
			for _, id := range types.FreeVars(s.Handle.Subst.Apply(scheme.Body)) {
				if !scheme.isPoly(id) {
					out[id] = true
				}
			}
		}
	}
	return out
}
