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

import "testing"

func TestExBudgetAddSub(t *testing.T) {
	a := ExBudget{Mem: 10, Cpu: 100}
	b := ExBudget{Mem: 3, Cpu: 40}
	if got := a.Add(b); got != (ExBudget{Mem: 13, Cpu: 140}) {
		t.Errorf("Add = %v, want {13 140}", got)
	}
	if got := a.Sub(b); got != (ExBudget{Mem: 7, Cpu: 60}) {
		t.Errorf("Sub = %v, want {7 60}", got)
	}
}

func TestExBudgetIsNegative(t *testing.T) {
	tests := []struct {
		b    ExBudget
		want bool
	}{
		{ExBudget{Mem: 0, Cpu: 0}, false},
		{ExBudget{Mem: -1, Cpu: 0}, true},
		{ExBudget{Mem: 0, Cpu: -1}, true},
		{ExBudget{Mem: 5, Cpu: 5}, false},
	}
	for _, tt := range tests {
		if got := tt.b.IsNegative(); got != tt.want {
			t.Errorf("%v.IsNegative() = %v, want %v", tt.b, got, tt.want)
		}
	}
}

func TestExBudgetString(t *testing.T) {
	b := ExBudget{Mem: 1, Cpu: 2}
	if got, want := b.String(), "{mem: 1, cpu: 2}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
