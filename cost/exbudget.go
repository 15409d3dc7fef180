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

// Package cost implements the UPLC cost model: the startup charge, the
// per-step cost table, and the per-builtin cost functions, with V1/V2/V3
// presets and cost-parameter-vector overrides (spec §4.3).
package cost

import "fmt"

// ExBudget is a pair of non-negative-checked i64 counters (glossary
// "ExBudget"). Both Mem and Cpu are spent independently; the machine treats
// either going negative as OutOfExError.
type ExBudget struct {
	Mem int64
	Cpu int64
}

// Add returns the component-wise sum of two budgets.
func (b ExBudget) Add(other ExBudget) ExBudget {
	return ExBudget{Mem: b.Mem + other.Mem, Cpu: b.Cpu + other.Cpu}
}

// Sub returns the component-wise difference b - other.
func (b ExBudget) Sub(other ExBudget) ExBudget {
	return ExBudget{Mem: b.Mem - other.Mem, Cpu: b.Cpu - other.Cpu}
}

// IsNegative reports whether either counter has gone below zero.
func (b ExBudget) IsNegative() bool {
	return b.Mem < 0 || b.Cpu < 0
}

func (b ExBudget) String() string {
	return fmt.Sprintf("{mem: %d, cpu: %d}", b.Mem, b.Cpu)
}

// DefaultBudget is the representative per-transaction execution limit a
// caller gets by not supplying one of their own.
func DefaultBudget() ExBudget {
	return ExBudget{Mem: 14_000_000, Cpu: 10_000_000_000}
}
