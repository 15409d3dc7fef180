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

// StepKind names one of the nine CEK reduction steps the machine charges for
// on every transition (spec §4.3).
type StepKind int

const (
	StepConstant StepKind = iota
	StepVar
	StepLambda
	StepApply
	StepDelay
	StepForce
	StepBuiltin
	StepConstr
	StepCase
	numStepKinds
)

func (k StepKind) String() string {
	switch k {
	case StepConstant:
		return "constant"
	case StepVar:
		return "var"
	case StepLambda:
		return "lambda"
	case StepApply:
		return "apply"
	case StepDelay:
		return "delay"
	case StepForce:
		return "force"
	case StepBuiltin:
		return "builtin"
	case StepConstr:
		return "constr"
	case StepCase:
		return "case"
	default:
		return "unknown"
	}
}

// MachineCosts is the per-step ExBudget table every CEK transition is
// charged against, indexed by StepKind.
type MachineCosts [numStepKinds]ExBudget

// Get returns the budget charged for one transition of the given kind.
func (m MachineCosts) Get(k StepKind) ExBudget {
	return m[k]
}

// NumStepKinds returns how many distinct StepKind values exist, so callers
// outside the package can size a per-kind tally without a hardcoded magic
// number.
func NumStepKinds() int {
	return int(numStepKinds)
}
