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

package types

import (
	"strconv"
	"strings"
)

// ToText returns the printable form of t. An arrow nested inside another
// arrow, on either side, is wrapped in parentheses: int -> (int -> bool),
// (int -> int) -> int. The outermost arrow is not parenthesized.
func ToText(t Type) string {
	var sb strings.Builder
	writeType(&sb, t, false)
	return sb.String()
}

func writeType(sb *strings.Builder, t Type, nested bool) {
	switch t := t.(type) {
	case *Atomic:
		sb.WriteString(t.Name)

	case *Var:
		sb.WriteString("'t")
		sb.WriteString(strconv.Itoa(t.id))

	case *Arrow:
		if nested {
			sb.WriteByte('(')
		}
		writeType(sb, t.Arg, true)
		sb.WriteString(" -> ")
		writeType(sb, t.Ret, true)
		if nested {
			sb.WriteByte(')')
		}

	default:
		sb.WriteString("<invalid-type>")
	}
}
