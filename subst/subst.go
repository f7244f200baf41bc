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

package subst

import (
	"github.com/benbjohnson/immutable"

	"github.com/elricmann/typed-lisp/types"
)

// Substitution is a persistent mapping from type-variable id to type term.
// It is global to one type-system Handle and grows monotonically during
// checking; applying it never mutates a previously observed Type value.
type Substitution struct {
	m *immutable.Map[int, types.Type]
}

// NewSubstitution returns an empty substitution.
func NewSubstitution() *Substitution {
	return &Substitution{m: immutable.NewMap[int, types.Type](nil)}
}

func (s *Substitution) lookup(id int) (types.Type, bool) {
	if s.m == nil {
		return nil, false
	}
	return s.m.Get(id)
}

func (s *Substitution) bind(id int, t types.Type) {
	s.m = s.m.Set(id, t)
}

// Apply returns the fixed point of t under s: an Atomic is returned
// unchanged; a Var is replaced by s[id] if present, and the replacement is
// itself substituted, walking through chains until a fixed point is
// reached; Arrow recurses into its argument and return type.
func (s *Substitution) Apply(t types.Type) types.Type {
	switch t := t.(type) {
	case *types.Atomic:
		return t

	case *types.Var:
		if bound, ok := s.lookup(t.Id()); ok {
			return s.Apply(bound)
		}
		return t

	case *types.Arrow:
		arg, ret := s.Apply(t.Arg), s.Apply(t.Ret)
		if arg == t.Arg && ret == t.Ret {
			return t
		}
		return types.NewArrow(arg, ret)
	}
	return t
}

// Finalize is an alias for Apply, used at the end of checking to report
// final types; substitution no longer changes after checking completes, so
// Finalize and Apply are equivalent at every call site.
func (s *Substitution) Finalize(t types.Type) types.Type { return s.Apply(t) }

// Unify makes t1 and t2 equal by extending s, or returns a *TypeMismatch or
// *RecursiveUnification error. s is left unmodified on a failing path.
//
// Ordering matches the arg-before-ret pairing of Arrow, and ties between two
// variables are broken by always binding the left id to the right term; if
// the ids are equal, Unify is a no-op.
func (s *Substitution) Unify(t1, t2 types.Type) (err error) {
	saved := s.m
	defer func() {
		if err != nil {
			s.m = saved
		}
	}()

	t1, t2 = s.Apply(t1), s.Apply(t2)

	if v1, ok := t1.(*types.Var); ok {
		if v2, ok := t2.(*types.Var); ok && v2.Id() == v1.Id() {
			return nil
		}
		if types.Occurs(v1.Id(), t2) {
			return &RecursiveUnification{VarId: v1.Id(), Term: t2}
		}
		s.bind(v1.Id(), t2)
		return nil
	}

	if _, ok := t2.(*types.Var); ok {
		return s.Unify(t2, t1)
	}

	if a1, ok := t1.(*types.Arrow); ok {
		a2, ok := t2.(*types.Arrow)
		if !ok {
			return &TypeMismatch{Expected: t1, Found: t2}
		}
		if err := s.Unify(a1.Arg, a2.Arg); err != nil {
			return err
		}
		return s.Unify(a1.Ret, a2.Ret)
	}

	if c1, ok := t1.(*types.Atomic); ok {
		c2, ok := t2.(*types.Atomic)
		if ok && c1.Name == c2.Name {
			return nil
		}
		return &TypeMismatch{Expected: t1, Found: t2}
	}

	return &TypeMismatch{Expected: t1, Found: t2}
}
