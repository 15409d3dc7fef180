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

// Package program ties the flat wire format, the cost model presets and the
// CEK machine together into the one entrypoint a caller actually wants:
// take a flat-encoded script plus a language version, get back the result
// term, the budget it consumed, and any trace output (spec §4.2, §6).
package program

import (
	"fmt"

	"github.com/probechain/uplc/cost"
	"github.com/probechain/uplc/flat"
	"github.com/probechain/uplc/machine"
	"github.com/probechain/uplc/term"
)

// Version is a script's three-part flat format version. Only 1.0.0 (Plutus
// V1/V2) and 1.1.0 (Plutus V3) are accepted on-chain.
type Version struct {
	Major, Minor, Patch uint64
}

// IsV1_0_0 reports whether v is the pre-Constr/Case format.
func (v Version) IsV1_0_0() bool {
	return v.Major == 1 && v.Minor == 0 && v.Patch == 0
}

// IsV1_1_0 reports whether v is the Constr/Case-carrying format.
func (v Version) IsV1_1_0() bool {
	return v.Major == 1 && v.Minor == 1 && v.Patch == 0
}

// IsValid reports whether v is one of the two accepted formats.
func (v Version) IsValid() bool {
	return v.IsV1_0_0() || v.IsV1_1_0()
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// UnsupportedVersionError is raised when a decoded or constructed Program
// carries a Version other than 1.0.0 or 1.1.0.
type UnsupportedVersionError struct{ Version Version }

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported program version %s", e.Version)
}

// Program pairs a flat format Version with its decoded Term (spec §4.2).
type Program struct {
	Version Version
	Term    term.Term
}

// New builds a Program, validating that version is one of the two accepted
// flat formats.
func New(version Version, t term.Term) (*Program, error) {
	if !version.IsValid() {
		return nil, &UnsupportedVersionError{Version: version}
	}
	return &Program{Version: version, Term: t}, nil
}

// Decode parses a full flat-encoded script, using the on-chain NamedDeBruijn
// binder strategy (spec §4.2's wire format carries binder names even though
// evaluation is purely index-based).
func Decode(buf []byte) (*Program, error) {
	decoded, err := flat.DecodeProgram(buf, flat.NamedDeBruijn{})
	if err != nil {
		return nil, err
	}
	return New(Version{Major: decoded.Major, Minor: decoded.Minor, Patch: decoded.Patch}, decoded.Term)
}

// Encode serializes p back to its flat wire form.
func (p *Program) Encode() ([]byte, error) {
	return flat.EncodeProgram(&flat.DecodedProgram{
		Major: p.Version.Major,
		Minor: p.Version.Minor,
		Patch: p.Version.Patch,
		Term:  p.Term,
	}, flat.NamedDeBruijn{})
}

// Apply returns a new Program whose Term is p.Term applied to arg, mirroring
// how a validator script is combined with its redeemer/datum/context
// arguments before evaluation.
func (p *Program) Apply(arg term.Term) *Program {
	return &Program{Version: p.Version, Term: term.Apply{Function: p.Term, Argument: arg}}
}

// EvalResult is the outcome of running a Program: its result term (absent on
// failure), the budget it consumed, any trace log lines, and an error if
// evaluation failed.
type EvalResult struct {
	Term    term.Term
	Budget  cost.ExBudget
	Logs    []string
	Err     error
}

// Eval runs p under language version v's default cost model and the default
// execution budget.
func (p *Program) Eval(v cost.Version) EvalResult {
	return p.EvalWithBudget(v, cost.DefaultBudget())
}

// EvalWithBudget runs p under language version v's default cost model and an
// explicit execution budget.
func (p *Program) EvalWithBudget(v cost.Version, budget cost.ExBudget) EvalResult {
	return p.evaluate(cost.PresetModel(v), budget)
}

// EvalWithParams runs p under language version v with the model's builtin
// cost coefficients overridden by params (a flat vector in the same order
// the chain parameter-update proposals use).
func (p *Program) EvalWithParams(v cost.Version, params []int64, budget cost.ExBudget) EvalResult {
	return p.evaluate(cost.PresetModelWithParams(v, params), budget)
}

func (p *Program) evaluate(costs *cost.CostModel, budget cost.ExBudget) EvalResult {
	m := machine.NewMachine(costs, budget)
	result, spent, logs, err := m.Run(p.Term)
	return EvalResult{Term: result, Budget: spent, Logs: logs, Err: err}
}
