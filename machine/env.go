// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The ProbeChain is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the ProbeChain. If not, see <http://www.gnu.org/licenses/>.

package machine

// Env is a persistent linked-list environment of evaluated values, extended
// once per Lambda application. Lookup is 1-based De Bruijn: index 1 is the
// most recently bound variable.
type Env struct {
	Value Value
	Next  *Env
}

// Empty is the environment with no bindings.
var Empty *Env

// Extend pushes value as the new innermost binding.
func (e *Env) Extend(value Value) *Env {
	return &Env{Value: value, Next: e}
}

// Lookup resolves a 1-based De Bruijn index, returning false if it is out of
// range (an open term — spec §4.4 "OpenTermEvaluated").
func (e *Env) Lookup(index int) (Value, bool) {
	cur := e
	for i := 1; i < index; i++ {
		if cur == nil {
			return nil, false
		}
		cur = cur.Next
	}
	if cur == nil {
		return nil, false
	}
	return cur.Value, true
}
