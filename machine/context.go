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

import "github.com/probechain/uplc/term"

// Context is the CEK machine's continuation stack, one frame per pending
// reduction (spec §4.4). Each frame names what the machine does with the
// Value it is about to receive, then chains to the next frame.
type Context interface {
	contextNode()
}

// NoFrame is the empty continuation: the machine is done once it reaches
// this frame with a Value in hand.
type NoFrame struct{}

func (NoFrame) contextNode() {}

// FrameAwaitFunTerm is pushed while an Apply's function position is being
// computed; once it yields a Value, the argument term is evaluated in ArgEnv
// before apply_evaluate can run.
type FrameAwaitFunTerm struct {
	ArgEnv   *Env
	Argument term.Term
	Next     Context
}

func (FrameAwaitFunTerm) contextNode() {}

// FrameAwaitArg is pushed once the function Value is in hand and the
// argument term has started computing; it carries the function so that once
// the argument also reduces to a Value, apply_evaluate can run.
type FrameAwaitArg struct {
	Function Value
	Next     Context
}

func (FrameAwaitArg) contextNode() {}

// FrameAwaitFunValue is pushed when the argument Value is already known up
// front (case-branch argument passing), so there is no argument term left to
// compute.
type FrameAwaitFunValue struct {
	Argument Value
	Next     Context
}

func (FrameAwaitFunValue) contextNode() {}

// FrameForce is pushed while a Force's body is being computed.
type FrameForce struct{ Next Context }

func (FrameForce) contextNode() {}

// FrameConstr accumulates the evaluated fields of a Constr term one at a
// time, threading env and the still-unevaluated remainder of Fields.
type FrameConstr struct {
	Env         *Env
	Tag         uint64
	Remaining   []term.Term
	Accumulated []Value
	Next        Context
}

func (FrameConstr) contextNode() {}

// FrameCases is pushed while a Case's Subject is being computed; once it
// resolves to a Constr or scalar Con value, return_compute dispatches to the
// matching Branch.
type FrameCases struct {
	Env      *Env
	Branches []term.Term
	Next     Context
}

func (FrameCases) contextNode() {}
