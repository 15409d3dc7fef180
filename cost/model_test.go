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

func TestNewCostModelDefaultsUnavailable(t *testing.T) {
	m := NewCostModel(ExBudget{}, MachineCosts{})
	if len(m.Builtins) != term.NumDefaultFunctions() {
		t.Fatalf("Builtins len = %d, want %d", len(m.Builtins), term.NumDefaultFunctions())
	}
	got := m.BuiltinCost(term.AddInteger).Cpu.Cost(nil)
	if got != unavailableCost {
		t.Errorf("default builtin cost = %d, want %d", got, unavailableCost)
	}
}

func TestBuiltinCostOutOfRange(t *testing.T) {
	m := NewCostModel(ExBudget{}, MachineCosts{})
	got := m.BuiltinCost(term.DefaultFunction(-1)).Cpu.Cost(nil)
	if got != unavailableCost {
		t.Errorf("BuiltinCost(-1) = %d, want %d", got, unavailableCost)
	}
}

func TestMachineCostsGet(t *testing.T) {
	mc := defaultMachineCosts()
	for _, k := range []StepKind{StepConstant, StepVar, StepLambda, StepApply, StepDelay, StepForce, StepBuiltin, StepConstr, StepCase} {
		if mc.Get(k) != (ExBudget{Mem: 100, Cpu: 16000}) {
			t.Errorf("Get(%s) = %v, want {100 16000}", k, mc.Get(k))
		}
	}
}

func TestStepKindString(t *testing.T) {
	if got := StepConstant.String(); got != "constant" {
		t.Errorf("StepConstant.String() = %q", got)
	}
	if got := StepKind(99).String(); got != "unknown" {
		t.Errorf("StepKind(99).String() = %q", got)
	}
}
