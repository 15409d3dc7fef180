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

// dischargeValue turns a final Value back into a closed term.Term, reifying
// any closure it carries by substituting its captured Env back into the
// body (spec §4.4's evaluation result is a Term, not a Value). A Var whose
// index does not resolve within the closure's own binders is replaced by the
// discharged form of whatever the closure's Env bound it to.
func dischargeValue(v Value) term.Term {
	switch val := v.(type) {
	case Con:
		return term.ConstantTerm{Value: val.Constant}
	case Lambda:
		return term.Lambda{Parameter: val.Parameter, Body: withEnv(1, val.Env, val.Body)}
	case Delay:
		return term.Delay{Body: withEnv(0, val.Env, val.Body)}
	case Builtin:
		return dischargeBuiltin(val.Runtime)
	case Constr:
		fields := make([]term.Term, len(val.Fields))
		for i, f := range val.Fields {
			fields[i] = dischargeValue(f)
		}
		return term.Constr{Tag: val.Tag, Fields: fields}
	default:
		panic("machine: unreachable Value variant in dischargeValue")
	}
}

func dischargeBuiltin(r *Runtime) term.Term {
	var t term.Term = term.BuiltinTerm{Function: r.Function}
	for i := 0; i < r.Forces; i++ {
		t = term.Force{Body: t}
	}
	for _, a := range r.Args {
		t = term.Apply{Function: t, Argument: dischargeValue(a)}
	}
	return t
}

// withEnv walks t, rewriting every Var whose index escapes the lamCnt
// binders introduced since discharging started into the discharged term of
// whatever env bound it.
func withEnv(lamCnt int, env *Env, t term.Term) term.Term {
	switch n := t.(type) {
	case term.Var:
		if n.Index <= lamCnt {
			return n
		}
		v, ok := env.Lookup(n.Index - lamCnt)
		if !ok {
			return n
		}
		return dischargeValue(v)
	case term.Lambda:
		return term.Lambda{Parameter: n.Parameter, Body: withEnv(lamCnt+1, env, n.Body)}
	case term.Apply:
		return term.Apply{
			Function: withEnv(lamCnt, env, n.Function),
			Argument: withEnv(lamCnt, env, n.Argument),
		}
	case term.Delay:
		return term.Delay{Body: withEnv(lamCnt, env, n.Body)}
	case term.Force:
		return term.Force{Body: withEnv(lamCnt, env, n.Body)}
	case term.Constr:
		fields := make([]term.Term, len(n.Fields))
		for i, f := range n.Fields {
			fields[i] = withEnv(lamCnt, env, f)
		}
		return term.Constr{Tag: n.Tag, Fields: fields}
	case term.Case:
		branches := make([]term.Term, len(n.Branches))
		for i, b := range n.Branches {
			branches[i] = withEnv(lamCnt, env, b)
		}
		return term.Case{Subject: withEnv(lamCnt, env, n.Subject), Branches: branches}
	default:
		return t
	}
}
