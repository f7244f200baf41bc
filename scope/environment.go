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

import "github.com/benbjohnson/immutable"

// Environment is a persistent mapping from identifier to Scheme. Setting a
// binding returns a new Environment and leaves the receiver, and anyone
// else holding it, unchanged.
type Environment struct {
	m *immutable.Map[string, Scheme]
}

// NewEnvironment returns an empty environment.
func NewEnvironment() *Environment {
	return &Environment{m: immutable.NewMap[string, Scheme](nil)}
}

// With returns a new Environment with name bound to s, leaving the receiver
// untouched.
func (e *Environment) With(name string, s Scheme) *Environment {
	return &Environment{m: e.m.Set(name, s)}
}

// Get looks up name in this environment only, not any parent.
func (e *Environment) Get(name string) (Scheme, bool) {
	if e.m == nil {
		return Scheme{}, false
	}
	return e.m.Get(name)
}
