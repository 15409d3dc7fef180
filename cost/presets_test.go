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

import (
	"testing"

	"github.com/probechain/uplc/term"
)

func TestPresetModelV1DisablesLaterBuiltins(t *testing.T) {
	m := PresetModel(V1)
	for _, f := range []term.DefaultFunction{
		term.Bls12_381_G1_add, term.Keccak_256, term.ExpModInteger, term.ListToArray, term.ReadBit,
	} {
		if got := m.BuiltinCost(f).Cpu.Cost(nil); got != unavailableCost {
			t.Errorf("V1 %s cpu cost = %d, want sentinel %d", f, got, unavailableCost)
		}
	}
	if got := m.BuiltinCost(term.AddInteger).Cpu.Cost([]int64{3, 3}); got == unavailableCost {
		t.Errorf("V1 AddInteger should be available, got sentinel")
	}
}

func TestPresetModelV2EnablesBlsButNotV3Only(t *testing.T) {
	m := PresetModel(V2)
	if got := m.BuiltinCost(term.Bls12_381_G1_add).Cpu.Cost([]int64{1, 1}); got == unavailableCost {
		t.Errorf("V2 should enable BLS, got sentinel")
	}
	if got := m.BuiltinCost(term.ExpModInteger).Cpu.Cost([]int64{1, 1, 1}); got != unavailableCost {
		t.Errorf("V2 ExpModInteger should be unavailable, got %d", got)
	}
}

func TestPresetModelV3EnablesEverything(t *testing.T) {
	m := PresetModel(V3)
	for _, f := range []term.DefaultFunction{
		term.Bls12_381_G1_add, term.Keccak_256, term.ExpModInteger, term.ListToArray, term.ReadBit,
	} {
		cpu := m.BuiltinCost(f).Cpu
		var got int64
		switch f {
		case term.ExpModInteger:
			got = cpu.Cost([]int64{1, 1, 1})
		case term.ReadBit:
			got = cpu.Cost([]int64{1, 1})
		case term.Bls12_381_G1_add:
			got = cpu.Cost([]int64{1, 1})
		default:
			got = cpu.Cost([]int64{1})
		}
		if got == unavailableCost {
			t.Errorf("V3 %s should be available, got sentinel", f)
		}
	}
}

func TestDivisionFamilyShapeDiffersByVersion(t *testing.T) {
	v1 := PresetModel(V1)
	v3 := PresetModel(V3)
	if _, ok := v1.BuiltinCost(term.DivideInteger).Cpu.(ConstAboveDiagonalIntoMultipliedSizes); !ok {
		t.Errorf("V1 DivideInteger cpu shape = %T, want ConstAboveDiagonalIntoMultipliedSizes", v1.BuiltinCost(term.DivideInteger).Cpu)
	}
	if _, ok := v3.BuiltinCost(term.DivideInteger).Cpu.(ConstAboveDiagonalIntoQuadraticXAndY); !ok {
		t.Errorf("V3 DivideInteger cpu shape = %T, want ConstAboveDiagonalIntoQuadraticXAndY", v3.BuiltinCost(term.DivideInteger).Cpu)
	}
}
