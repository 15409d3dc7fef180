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

package cost

import "github.com/probechain/uplc/term"

// SizeOf is the cost model's notion of a constant's size (spec §4.6), the
// quantity every builtin cost function is applied to in place of the
// constant's actual value.
func SizeOf(c term.Constant) int64 {
	switch v := c.(type) {
	case term.Integer:
		return term.IntegerSize(v.Value)
	case term.ByteString:
		return term.ByteStringSize(v.Value)
	case term.String:
		return int64(len([]rune(v.Value)))
	case term.Bool:
		return 1
	case term.Unit:
		return 1
	case term.ProtoPair:
		return SizeOf(v.Fst) + SizeOf(v.Snd)
	case term.ProtoList:
		var total int64
		for _, item := range v.Items {
			total += SizeOf(item)
		}
		return total
	case term.Data:
		return term.DataSize(v.Value)
	case term.Bls12_381G1Element:
		return 48 / 8
	case term.Bls12_381G2Element:
		return 96 / 8
	case term.Bls12_381MlResult:
		return 576 / 8
	case term.Array:
		var total int64
		for _, item := range v.Items {
			total += SizeOf(item)
		}
		return total
	default:
		return 1
	}
}
