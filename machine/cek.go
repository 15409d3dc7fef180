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

import (
	"github.com/probechain/uplc/arena"
	"github.com/probechain/uplc/cost"
	"github.com/probechain/uplc/term"
)

// slippage bounds how many unbudgeted machine steps may accumulate before
// they are flushed against the budget in a batch (spec §4.3); batching
// avoids a budget check on every single transition while still bounding how
// far a runaway program can get ahead of its own metering.
const slippage = 200

// Machine is one run of the CEK abstract machine against a fixed cost
// model and a fixed execution budget. A Machine is single-use: construct
// one per Run.
type Machine struct {
	costs     *cost.CostModel
	remaining cost.ExBudget
	pending   []int64
	slack     int64
	logs      []string
	arena     *arena.Arena
	lastStats arena.Stats
}

// NewMachine builds a Machine charged against costs, with budget available
// to spend before a transition raises OutOfExError. The Machine owns a
// fresh Arena for the lifetime of one Run (§5): every CEK transition mints
// at least one node, and every Integer constant's big.Int is tracked so the
// arena's accounting reflects what Reset actually discards at the end.
func NewMachine(costs *cost.CostModel, budget cost.ExBudget) *Machine {
	return &Machine{
		costs:     costs,
		remaining: budget,
		pending:   make([]int64, cost.NumStepKinds()),
		arena:     arena.New(0),
	}
}

// NodeCount reports how many CEK transitions the most recent Run performed,
// the arena's node-allocation tally for the evaluation, read after Reset has
// already fired.
func (m *Machine) NodeCount() int64 { return m.lastStats.NodeCount }

// Run evaluates t to normal form, returning the discharged result term, the
// budget actually consumed, and any trace log lines accumulated along the
// way.
func (m *Machine) Run(t term.Term) (term.Term, cost.ExBudget, []string, error) {
	prevTraceSink := traceSink
	traceSink = func(s string) { m.logs = append(m.logs, s) }
	defer func() { traceSink = prevTraceSink }()
	defer func() { m.lastStats = m.arena.Reset() }()

	initial := m.remaining

	if err := m.spendBudget(m.costs.Startup); err != nil {
		return nil, initial.Sub(m.remaining), m.logs, err
	}

	next := &computeStep{ctx: NoFrame{}, env: Empty, term: t}
	var ret *returnStep

	for {
		var err error
		switch {
		case next != nil:
			cur := next
			next = nil
			ret, next, err = m.compute(cur.ctx, cur.env, cur.term)
		case ret != nil:
			cur := ret
			ret = nil
			if _, done := cur.ctx.(NoFrame); done {
				if err := m.flushSteps(); err != nil {
					return nil, initial.Sub(m.remaining), m.logs, err
				}
				return dischargeValue(cur.value), initial.Sub(m.remaining), m.logs, nil
			}
			ret, next, err = m.returnCompute(cur.ctx, cur.value)
		default:
			return nil, initial.Sub(m.remaining), m.logs, nil
		}
		if err != nil {
			return nil, initial.Sub(m.remaining), m.logs, err
		}
	}
}

type returnStep struct {
	ctx   Context
	value Value
}

type computeStep struct {
	ctx  Context
	env  *Env
	term term.Term
}

// compute reduces one Term under ctx/env to either the next compute step
// (it still has work to do) or a return step (it has produced a Value).
func (m *Machine) compute(ctx Context, env *Env, t term.Term) (*returnStep, *computeStep, error) {
	switch n := t.(type) {
	case term.ConstantTerm:
		if err := m.step(cost.StepConstant); err != nil {
			return nil, nil, err
		}
		if i, ok := n.Value.(term.Integer); ok {
			m.arena.TrackBigInt(i.Value)
		}
		return &returnStep{ctx: ctx, value: Con{Constant: n.Value}}, nil, nil

	case term.Var:
		if err := m.step(cost.StepVar); err != nil {
			return nil, nil, err
		}
		v, ok := env.Lookup(n.Index)
		if !ok {
			return nil, nil, &OpenTermEvaluatedError{Index: n.Index}
		}
		return &returnStep{ctx: ctx, value: v}, nil, nil

	case term.Lambda:
		if err := m.step(cost.StepLambda); err != nil {
			return nil, nil, err
		}
		return &returnStep{ctx: ctx, value: Lambda{Parameter: n.Parameter, Body: n.Body, Env: env}}, nil, nil

	case term.Apply:
		if err := m.step(cost.StepApply); err != nil {
			return nil, nil, err
		}
		frame := FrameAwaitFunTerm{ArgEnv: env, Argument: n.Argument, Next: ctx}
		return nil, &computeStep{ctx: frame, env: env, term: n.Function}, nil

	case term.Delay:
		if err := m.step(cost.StepDelay); err != nil {
			return nil, nil, err
		}
		return &returnStep{ctx: ctx, value: Delay{Body: n.Body, Env: env}}, nil, nil

	case term.Force:
		if err := m.step(cost.StepForce); err != nil {
			return nil, nil, err
		}
		frame := FrameForce{Next: ctx}
		return nil, &computeStep{ctx: frame, env: env, term: n.Body}, nil

	case term.BuiltinTerm:
		if err := m.step(cost.StepBuiltin); err != nil {
			return nil, nil, err
		}
		return &returnStep{ctx: ctx, value: Builtin{Runtime: NewRuntime(n.Function)}}, nil, nil

	case term.ErrorTerm:
		return nil, nil, &ExplicitErrorError{}

	case term.Constr:
		if err := m.step(cost.StepConstr); err != nil {
			return nil, nil, err
		}
		if len(n.Fields) == 0 {
			return &returnStep{ctx: ctx, value: Constr{Tag: n.Tag}}, nil, nil
		}
		frame := FrameConstr{Env: env, Tag: n.Tag, Remaining: n.Fields[1:], Next: ctx}
		return nil, &computeStep{ctx: frame, env: env, term: n.Fields[0]}, nil

	case term.Case:
		if err := m.step(cost.StepCase); err != nil {
			return nil, nil, err
		}
		frame := FrameCases{Env: env, Branches: n.Branches, Next: ctx}
		return nil, &computeStep{ctx: frame, env: env, term: n.Subject}, nil

	default:
		panic("machine: unreachable Term variant in compute")
	}
}

// returnCompute delivers value to the frame on top of ctx, producing either
// the next compute step or a further return step.
func (m *Machine) returnCompute(ctx Context, value Value) (*returnStep, *computeStep, error) {
	switch c := ctx.(type) {
	case FrameAwaitFunTerm:
		frame := FrameAwaitArg{Function: value, Next: c.Next}
		return nil, &computeStep{ctx: frame, env: c.ArgEnv, term: c.Argument}, nil

	case FrameAwaitArg:
		return m.applyEvaluate(c.Next, c.Function, value)

	case FrameAwaitFunValue:
		return m.applyEvaluate(c.Next, value, c.Argument)

	case FrameForce:
		return m.forceEvaluate(c.Next, value)

	case FrameConstr:
		accumulated := append(append([]Value{}, c.Accumulated...), value)
		if len(c.Remaining) == 0 {
			return &returnStep{ctx: c.Next, value: Constr{Tag: c.Tag, Fields: accumulated}}, nil, nil
		}
		frame := FrameConstr{Env: c.Env, Tag: c.Tag, Remaining: c.Remaining[1:], Accumulated: accumulated, Next: c.Next}
		return nil, &computeStep{ctx: frame, env: c.Env, term: c.Remaining[0]}, nil

	case FrameCases:
		return m.matchCase(c, value)

	default:
		panic("machine: unreachable Context variant in returnCompute")
	}
}

// matchCase dispatches a Case's evaluated Subject to its Branches (spec §3,
// §4.4): a Constr selects by tag, a scalar Con selects by its own scalar
// convention, and either way the selected branch is then applied,
// Scott-encoding style, to the scrutinee's fields/components in order.
func (m *Machine) matchCase(c FrameCases, value Value) (*returnStep, *computeStep, error) {
	switch v := value.(type) {
	case Constr:
		return m.branchInto(c, value, v.Tag, v.Fields...)

	case Con:
		switch con := v.Constant.(type) {
		case term.Integer:
			if !con.Value.IsInt64() {
				return nil, nil, &MissingCaseBranchError{Branches: c.Branches, Value: value}
			}
			n := con.Value.Int64()
			if n < 0 {
				return nil, nil, &MissingCaseBranchError{Branches: c.Branches, Value: value}
			}
			return m.branchInto(c, value, uint64(n))

		case term.Bool:
			// CONS=0, NILS=1 convention: true selects branch 0, false branch 1.
			if con.Value {
				return m.branchInto(c, value, 0)
			}
			return m.branchInto(c, value, 1)

		case term.Unit:
			return m.branchInto(c, value, 0)

		case term.ProtoPair:
			return m.branchInto(c, value, 0, Con{Constant: con.Fst}, Con{Constant: con.Snd})

		case term.ProtoList:
			if len(con.Items) == 0 {
				return m.branchInto(c, value, 1)
			}
			head := Con{Constant: con.Items[0]}
			tail := term.ProtoList{ElemType: con.ElemType, Items: con.Items[1:]}
			return m.branchInto(c, value, 0, head, Con{Constant: tail})

		default:
			return nil, nil, &NonConstrScrutinizedError{Value: value}
		}

	default:
		return nil, nil, &NonConstrScrutinizedError{Value: value}
	}
}

// branchInto selects Branches[tag] and pushes args onto c.Next, in order, as
// pending FrameAwaitFunValue arguments so the branch sees args[0] first.
func (m *Machine) branchInto(c FrameCases, scrutinee Value, tag uint64, args ...Value) (*returnStep, *computeStep, error) {
	if int(tag) >= len(c.Branches) {
		return nil, nil, &MissingCaseBranchError{Branches: c.Branches, Value: scrutinee}
	}
	branch := c.Branches[tag]
	next := c.Next
	for i := len(args) - 1; i >= 0; i-- {
		next = FrameAwaitFunValue{Argument: args[i], Next: next}
	}
	return nil, &computeStep{ctx: next, env: c.Env, term: branch}, nil
}

// applyEvaluate applies fn to arg: a Lambda extends its closed-over Env and
// resumes its Body, a Builtin collects arg and fires once saturated.
func (m *Machine) applyEvaluate(ctx Context, fn Value, arg Value) (*returnStep, *computeStep, error) {
	switch f := fn.(type) {
	case Lambda:
		return nil, &computeStep{ctx: ctx, env: f.Env.Extend(arg), term: f.Body}, nil

	case Builtin:
		rt := f.Runtime
		if rt.needsForce() {
			return nil, nil, &BuiltinForceArgumentMismatchError{Value: fn}
		}
		if !rt.isArrow() {
			return nil, nil, &UnexpectedBuiltinTermArgumentError{Argument: arg}
		}
		rt = rt.push(arg)
		if !rt.isReady() {
			return &returnStep{ctx: ctx, value: Builtin{Runtime: rt}}, nil, nil
		}
		if err := m.spendBuiltinCost(rt.Function, rt.Args); err != nil {
			return nil, nil, err
		}
		v, err := rt.call()
		if err != nil {
			return nil, nil, err
		}
		return &returnStep{ctx: ctx, value: v}, nil, nil

	default:
		return nil, nil, &NonFunctionApplicationError{Function: fn}
	}
}

// forceEvaluate resolves a Force: a Delay resumes its Body, a Builtin still
// awaiting forces absorbs one.
func (m *Machine) forceEvaluate(ctx Context, value Value) (*returnStep, *computeStep, error) {
	switch v := value.(type) {
	case Delay:
		return nil, &computeStep{ctx: ctx, env: v.Env, term: v.Body}, nil

	case Builtin:
		rt := v.Runtime
		if !rt.needsForce() {
			return nil, nil, &BuiltinTermArgumentExpectedError{Value: value}
		}
		rt = rt.force()
		if rt.needsForce() || !rt.isReady() {
			return &returnStep{ctx: ctx, value: Builtin{Runtime: rt}}, nil, nil
		}
		if err := m.spendBuiltinCost(rt.Function, rt.Args); err != nil {
			return nil, nil, err
		}
		result, err := rt.call()
		if err != nil {
			return nil, nil, err
		}
		return &returnStep{ctx: ctx, value: result}, nil, nil

	default:
		return nil, nil, &NonPolymorphicInstantiationError{Value: value}
	}
}

// step batches k's cost into the unbudgeted tally, flushing against the
// actual budget once slippage steps have accumulated.
func (m *Machine) step(k cost.StepKind) error {
	arena.Alloc[struct{}](m.arena)
	m.pending[k]++
	m.slack++
	if m.slack < slippage {
		return nil
	}
	return m.flushSteps()
}

func (m *Machine) flushSteps() error {
	var charge cost.ExBudget
	for k := range m.pending {
		if m.pending[k] == 0 {
			continue
		}
		unit := m.costs.Machine.Get(cost.StepKind(k))
		charge.Mem += unit.Mem * m.pending[k]
		charge.Cpu += unit.Cpu * m.pending[k]
		m.pending[k] = 0
	}
	m.slack = 0
	return m.spendBudget(charge)
}

// spendBuiltinCost flushes any pending step costs first (so budget checks
// observe spend in program order), then charges f's cost function pair
// evaluated over args' sizes.
func (m *Machine) spendBuiltinCost(f term.DefaultFunction, args []Value) error {
	if err := m.flushSteps(); err != nil {
		return err
	}
	sizes := make([]int64, len(args))
	for i, a := range args {
		sizes[i] = valueSize(a)
	}
	fn := m.costs.BuiltinCost(f)
	charge := cost.ExBudget{Mem: fn.Mem.Cost(sizes), Cpu: fn.Cpu.Cost(sizes)}
	return m.spendBudget(charge)
}

func (m *Machine) spendBudget(charge cost.ExBudget) error {
	m.remaining = m.remaining.Sub(charge)
	if m.remaining.IsNegative() {
		return &OutOfExError{Spent: m.remaining}
	}
	return nil
}

// valueSize is the cost model's notion of an argument's size when the
// argument is a bare runtime Value rather than a term.Constant (the
// polymorphic builtins admit Lambda/Delay/Constr/Builtin arguments, e.g.
// ifThenElse's branches, which carry no well-defined size of their own).
func valueSize(v Value) int64 {
	if c, ok := v.(Con); ok {
		return cost.SizeOf(c.Constant)
	}
	return 1
}
