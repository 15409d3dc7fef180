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

package builtin

import "github.com/probechain/uplc/term"

func listToArray(args []term.Constant) (term.Constant, error) {
	l, ok := args[0].(term.ProtoList)
	if !ok {
		return nil, &TypeMismatchError{Op: "listToArray", Expected: term.ListOf(term.TypeData), Got: args[0]}
	}
	items := make([]term.Constant, len(l.Items))
	copy(items, l.Items)
	return term.Array{ElemType: l.ElemType, Items: items}, nil
}

func lengthOfArray(args []term.Constant) (term.Constant, error) {
	a, ok := args[0].(term.Array)
	if !ok {
		return nil, &TypeMismatchError{Op: "lengthOfArray", Expected: term.ArrayOf(term.TypeData), Got: args[0]}
	}
	return term.NewInteger(int64(len(a.Items))), nil
}

func indexArray(args []term.Constant) (term.Constant, error) {
	a, ok := args[0].(term.Array)
	if !ok {
		return nil, &TypeMismatchError{Op: "indexArray", Expected: term.ArrayOf(term.TypeData), Got: args[0]}
	}
	i, err := asInteger("indexArray", args[1])
	if err != nil {
		return nil, err
	}
	idx, err := fitsUint("indexArray", i)
	if err != nil {
		return nil, err
	}
	if idx >= uint64(len(a.Items)) {
		return nil, newError("indexArray", "index %d out of bounds for array of length %d", idx, len(a.Items))
	}
	return a.Items[idx], nil
}
