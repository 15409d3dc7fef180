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

// BuiltinCostFunction holds the separate mem and cpu cost formulas a builtin
// is charged with, applied to the sizes of its actual arguments.
type BuiltinCostFunction struct {
	Mem CostFunction
	Cpu CostFunction
}

// unavailableCost is charged to a builtin that the chosen language version
// does not support, so that any attempt to run it exhausts the budget
// immediately rather than silently succeeding (spec §4.3).
const unavailableCost = 30_000_000_000

var unavailableBuiltinCost = BuiltinCostFunction{
	Mem: ConstantCost(unavailableCost),
	Cpu: ConstantCost(unavailableCost),
}

// CostModel is a fully resolved cost model: a startup charge, a table of
// per-step charges, and a cost function pair for every builtin in the
// closed DefaultFunction enumeration.
type CostModel struct {
	Startup  ExBudget
	Machine  MachineCosts
	Builtins []BuiltinCostFunction
}

// NewCostModel allocates a CostModel with a Builtins slice sized to cover
// every DefaultFunction, defaulted to the unavailable-builtin sentinel cost.
func NewCostModel(startup ExBudget, machine MachineCosts) *CostModel {
	builtins := make([]BuiltinCostFunction, term.NumDefaultFunctions())
	for i := range builtins {
		builtins[i] = unavailableBuiltinCost
	}
	return &CostModel{Startup: startup, Machine: machine, Builtins: builtins}
}

// BuiltinCost returns the cost function pair for f, or the sentinel
// unavailable-builtin cost if the model has no entry for f (which only
// happens for a DefaultFunction the active language version doesn't carry).
func (m *CostModel) BuiltinCost(f term.DefaultFunction) BuiltinCostFunction {
	if int(f) < 0 || int(f) >= len(m.Builtins) {
		return unavailableBuiltinCost
	}
	return m.Builtins[f]
}
