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
	"github.com/probechain/uplc/builtin"
	"github.com/probechain/uplc/term"
)

// Runtime tracks one builtin reference's progress toward saturation: how
// many Force steps it has absorbed and how many argument Values it has
// collected so far (spec §4.5).
type Runtime struct {
	Function term.DefaultFunction
	Forces   int
	Args     []Value
}

// NewRuntime starts a fresh, unapplied reference to f.
func NewRuntime(f term.DefaultFunction) *Runtime {
	return &Runtime{Function: f}
}

// force returns a copy of r with one more Force absorbed.
func (r *Runtime) force() *Runtime {
	return &Runtime{Function: r.Function, Forces: r.Forces + 1, Args: r.Args}
}

// push returns a copy of r with arg appended to its collected arguments.
func (r *Runtime) push(arg Value) *Runtime {
	args := make([]Value, len(r.Args)+1)
	copy(args, r.Args)
	args[len(r.Args)] = arg
	return &Runtime{Function: r.Function, Forces: r.Forces, Args: args}
}

// needsForce reports whether r is still waiting on one or more Force steps
// before it may start accepting term arguments.
func (r *Runtime) needsForce() bool {
	return r.Forces < r.Function.ForceCount()
}

// isArrow reports whether r can still accept another argument.
func (r *Runtime) isArrow() bool {
	return len(r.Args) < r.Function.Arity()
}

// isReady reports whether r has collected exactly as many arguments as its
// arity demands and can be called.
func (r *Runtime) isReady() bool {
	return len(r.Args) == r.Function.Arity()
}

// call dispatches a fully saturated Runtime to its implementation: the
// Constant-only builtins go through package builtin, while the handful of
// builtins that are polymorphic over Value (rather than just Constant) are
// implemented inline below.
func (r *Runtime) call() (Value, error) {
	switch r.Function {
	case term.IfThenElse:
		return r.ifThenElse()
	case term.ChooseUnit:
		return r.chooseUnit()
	case term.Trace:
		return r.trace()
	case term.FstPair:
		return r.fstPair()
	case term.SndPair:
		return r.sndPair()
	case term.ChooseList:
		return r.chooseList()
	case term.MkCons:
		return r.mkCons()
	case term.HeadList:
		return r.headList()
	case term.TailList:
		return r.tailList()
	case term.NullList:
		return r.nullList()
	case term.ChooseData:
		return r.chooseData()
	}

	args := make([]term.Constant, len(r.Args))
	for i, a := range r.Args {
		c, err := unwrapConstant(a)
		if err != nil {
			return nil, err
		}
		args[i] = c
	}
	result, handled, err := builtin.Dispatch(r.Function, args)
	if err != nil {
		return nil, &RuntimeError{Err: err}
	}
	if !handled {
		// Every DefaultFunction is either dispatched above or present in
		// builtin.Table; reaching here means the two tables have drifted.
		return nil, &RuntimeError{Err: unhandledBuiltinError{r.Function}}
	}
	return Con{Constant: result}, nil
}

type unhandledBuiltinError struct{ f term.DefaultFunction }

func (e unhandledBuiltinError) Error() string {
	return "no implementation registered for builtin " + e.f.Name()
}

func (r *Runtime) ifThenElse() (Value, error) {
	cond, err := unwrapBool(r.Args[0])
	if err != nil {
		return nil, err
	}
	if cond {
		return r.Args[1], nil
	}
	return r.Args[2], nil
}

func (r *Runtime) chooseUnit() (Value, error) {
	if _, err := unwrapConstant(r.Args[0]); err != nil {
		return nil, err
	}
	return r.Args[1], nil
}

func (r *Runtime) trace() (Value, error) {
	c, err := unwrapConstant(r.Args[0])
	if err != nil {
		return nil, err
	}
	s, ok := c.(term.String)
	if !ok {
		return nil, &TypeMismatchError{Expected: term.TypeString, Got: c}
	}
	r.log(s.Value)
	return r.Args[1], nil
}

// log is overridden per Machine run via traceSink; it defaults to a no-op so
// Runtime stays usable outside of a running Machine (e.g. in tests).
var traceSink func(string)

func (r *Runtime) log(msg string) {
	if traceSink != nil {
		traceSink(msg)
	}
}

func (r *Runtime) fstPair() (Value, error) {
	p, err := unwrapPair(r.Args[0])
	if err != nil {
		return nil, err
	}
	return Con{Constant: p.Fst}, nil
}

func (r *Runtime) sndPair() (Value, error) {
	p, err := unwrapPair(r.Args[0])
	if err != nil {
		return nil, err
	}
	return Con{Constant: p.Snd}, nil
}

func (r *Runtime) chooseList() (Value, error) {
	l, err := unwrapList(r.Args[0])
	if err != nil {
		return nil, err
	}
	if len(l.Items) == 0 {
		return r.Args[1], nil
	}
	return r.Args[2], nil
}

func (r *Runtime) mkCons() (Value, error) {
	head, err := unwrapConstant(r.Args[0])
	if err != nil {
		return nil, err
	}
	tail, err := unwrapList(r.Args[1])
	if err != nil {
		return nil, err
	}
	if !head.Type().Equals(tail.ElemType) {
		return nil, &TypeMismatchError{Expected: tail.ElemType, Got: head}
	}
	items := make([]term.Constant, len(tail.Items)+1)
	items[0] = head
	copy(items[1:], tail.Items)
	return Con{Constant: term.ProtoList{ElemType: tail.ElemType, Items: items}}, nil
}

func (r *Runtime) headList() (Value, error) {
	l, err := unwrapList(r.Args[0])
	if err != nil {
		return nil, err
	}
	if len(l.Items) == 0 {
		return nil, &EmptyListError{}
	}
	return Con{Constant: l.Items[0]}, nil
}

func (r *Runtime) tailList() (Value, error) {
	l, err := unwrapList(r.Args[0])
	if err != nil {
		return nil, err
	}
	if len(l.Items) == 0 {
		return nil, &EmptyListError{}
	}
	return Con{Constant: term.ProtoList{ElemType: l.ElemType, Items: l.Items[1:]}}, nil
}

func (r *Runtime) nullList() (Value, error) {
	l, err := unwrapList(r.Args[0])
	if err != nil {
		return nil, err
	}
	return Con{Constant: term.Bool{Value: len(l.Items) == 0}}, nil
}

func (r *Runtime) chooseData() (Value, error) {
	d, err := unwrapData(r.Args[0])
	if err != nil {
		return nil, err
	}
	switch d.(type) {
	case term.PConstr:
		return r.Args[1], nil
	case term.PMap:
		return r.Args[2], nil
	case term.PList:
		return r.Args[3], nil
	case term.PInteger:
		return r.Args[4], nil
	case term.PBytes:
		return r.Args[5], nil
	default:
		return nil, &TypeMismatchError{Expected: term.TypeData, Got: term.Data{Value: d}}
	}
}
