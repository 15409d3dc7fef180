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
	"math/big"
	"testing"

	"github.com/probechain/uplc/cost"
	"github.com/probechain/uplc/term"
)

func newMachine() *Machine {
	return NewMachine(cost.PresetModel(cost.V2), cost.DefaultBudget())
}

func mustRun(t *testing.T, prog term.Term) term.Term {
	t.Helper()
	result, _, _, err := newMachine().Run(prog)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return result
}

func constInt(v int64) term.Term {
	return term.NewIntegerTerm(v)
}

func asInt(t *testing.T, result term.Term) *big.Int {
	t.Helper()
	c, ok := result.(term.ConstantTerm)
	if !ok {
		t.Fatalf("result is not a constant: %v", result)
	}
	i, ok := c.Value.(term.Integer)
	if !ok {
		t.Fatalf("result is not an integer: %v", c.Value)
	}
	return i.Value
}

func TestRunConstant(t *testing.T) {
	result := mustRun(t, constInt(42))
	if got := asInt(t, result); got.Cmp(big.NewInt(42)) != 0 {
		t.Errorf("got %s, want 42", got)
	}
}

func TestRunIdentityLambda(t *testing.T) {
	// (lam x x) applied to 7
	prog := term.Apply{
		Function: term.Lambda{Parameter: "x", Body: term.Var{Index: 1}},
		Argument: constInt(7),
	}
	result := mustRun(t, prog)
	if got := asInt(t, result); got.Cmp(big.NewInt(7)) != 0 {
		t.Errorf("got %s, want 7", got)
	}
}

func TestRunNestedClosure(t *testing.T) {
	// ((lam x (lam y x)) 1) 2 -- constant function, should return 1
	inner := term.Lambda{Parameter: "y", Body: term.Var{Index: 2}}
	outer := term.Lambda{Parameter: "x", Body: inner}
	prog := term.Apply{
		Function: term.Apply{Function: outer, Argument: constInt(1)},
		Argument: constInt(2),
	}
	result := mustRun(t, prog)
	if got := asInt(t, result); got.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("got %s, want 1", got)
	}
}

func TestRunDelayForce(t *testing.T) {
	prog := term.Force{Body: term.Delay{Body: constInt(9)}}
	result := mustRun(t, prog)
	if got := asInt(t, result); got.Cmp(big.NewInt(9)) != 0 {
		t.Errorf("got %s, want 9", got)
	}
}

func TestRunExplicitError(t *testing.T) {
	_, _, _, err := newMachine().Run(term.ErrorTerm{})
	if err == nil {
		t.Fatal("expected an error from an explicit error term")
	}
	if _, ok := err.(*ExplicitErrorError); !ok {
		t.Errorf("got error type %T, want *ExplicitErrorError", err)
	}
}

func TestRunOpenTerm(t *testing.T) {
	_, _, _, err := newMachine().Run(term.Var{Index: 1})
	if err == nil {
		t.Fatal("expected an error evaluating an open term")
	}
	if _, ok := err.(*OpenTermEvaluatedError); !ok {
		t.Errorf("got error type %T, want *OpenTermEvaluatedError", err)
	}
}

func TestRunIfThenElseBuiltin(t *testing.T) {
	// force (ifThenElse True 1 2)
	prog := term.Force{Body: term.Apply{
		Function: term.Apply{
			Function: term.Apply{
				Function: term.Force{Body: term.NewBuiltinTerm(term.IfThenElse)},
				Argument: term.ConstantTerm{Value: term.Bool{Value: true}},
			},
			Argument: term.Delay{Body: constInt(1)},
		},
		Argument: term.Delay{Body: constInt(2)},
	}}
	result := mustRun(t, prog)
	if got := asInt(t, result); got.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("got %s, want 1", got)
	}
}

func TestRunAddIntegerBuiltin(t *testing.T) {
	prog := term.Apply{
		Function: term.Apply{
			Function: term.NewBuiltinTerm(term.AddInteger),
			Argument: constInt(3),
		},
		Argument: constInt(4),
	}
	result := mustRun(t, prog)
	if got := asInt(t, result); got.Cmp(big.NewInt(7)) != 0 {
		t.Errorf("got %s, want 7", got)
	}
}

func TestRunNullListBuiltin(t *testing.T) {
	empty := term.ConstantTerm{Value: term.ProtoList{ElemType: term.TypeInteger}}
	prog := term.Apply{Function: term.Force{Body: term.NewBuiltinTerm(term.NullList)}, Argument: empty}
	result := mustRun(t, prog)
	c, ok := result.(term.ConstantTerm)
	if !ok {
		t.Fatalf("result is not a constant: %v", result)
	}
	b, ok := c.Value.(term.Bool)
	if !ok || !b.Value {
		t.Errorf("got %v, want true", c.Value)
	}
}

func TestRunConstrAndCase(t *testing.T) {
	// constr 1 {10} ; case selecting branch 1, applied to the field
	subject := term.Constr{Tag: 1, Fields: []term.Term{constInt(10)}}
	branch0 := term.Lambda{Parameter: "_", Body: constInt(0)}
	branch1 := term.Lambda{Parameter: "x", Body: term.Var{Index: 1}}
	prog := term.Case{Subject: subject, Branches: []term.Term{branch0, branch1}}
	result := mustRun(t, prog)
	if got := asInt(t, result); got.Cmp(big.NewInt(10)) != 0 {
		t.Errorf("got %s, want 10", got)
	}
}

func TestRunCaseMissingBranch(t *testing.T) {
	subject := term.Constr{Tag: 2}
	branch0 := term.Lambda{Parameter: "_", Body: constInt(0)}
	prog := term.Case{Subject: subject, Branches: []term.Term{branch0}}
	_, _, _, err := newMachine().Run(prog)
	if _, ok := err.(*MissingCaseBranchError); !ok {
		t.Errorf("got error %v (%T), want *MissingCaseBranchError", err, err)
	}
}

func TestRunOutOfBudget(t *testing.T) {
	costs := cost.NewCostModel(cost.ExBudget{Mem: 100, Cpu: 100}, cost.MachineCosts{})
	m := NewMachine(costs, cost.ExBudget{Mem: 1, Cpu: 1})
	_, _, _, err := m.Run(constInt(1))
	if _, ok := err.(*OutOfExError); !ok {
		t.Errorf("got error %v (%T), want *OutOfExError", err, err)
	}
}

func TestDischargeRoundTripsLambda(t *testing.T) {
	// (lam x (lam y x)) applied to 5 discharges back to (lam y 5)
	outer := term.Lambda{Parameter: "x", Body: term.Lambda{Parameter: "y", Body: term.Var{Index: 2}}}
	prog := term.Apply{Function: outer, Argument: constInt(5)}
	result := mustRun(t, prog)
	lam, ok := result.(term.Lambda)
	if !ok {
		t.Fatalf("result is not a lambda: %v", result)
	}
	if got := asInt(t, lam.Body); got.Cmp(big.NewInt(5)) != 0 {
		t.Errorf("got %s, want 5", got)
	}
}

func TestNodeCountTracksTransitions(t *testing.T) {
	m := newMachine()
	m.Run(term.Apply{Function: term.Lambda{Parameter: "x", Body: term.Var{Index: 1}}, Argument: constInt(1)})
	if m.NodeCount() == 0 {
		t.Error("NodeCount() = 0, want a positive count after running a multi-step program")
	}
}

func TestRunCaseOnInteger(t *testing.T) {
	// case 1 [0, 1] selects the second branch
	subject := term.ConstantTerm{Value: term.NewInteger(1)}
	branch0 := constInt(100)
	branch1 := constInt(200)
	prog := term.Case{Subject: subject, Branches: []term.Term{branch0, branch1}}
	result := mustRun(t, prog)
	if got := asInt(t, result); got.Cmp(big.NewInt(200)) != 0 {
		t.Errorf("got %s, want 200", got)
	}
}

func TestRunCaseOnIntegerOutOfRange(t *testing.T) {
	subject := term.ConstantTerm{Value: term.NewInteger(5)}
	prog := term.Case{Subject: subject, Branches: []term.Term{constInt(0)}}
	_, _, _, err := newMachine().Run(prog)
	if _, ok := err.(*MissingCaseBranchError); !ok {
		t.Errorf("got error %v (%T), want *MissingCaseBranchError", err, err)
	}
}

func TestRunCaseOnBoolTrueSelectsBranch0(t *testing.T) {
	subject := term.ConstantTerm{Value: term.Bool{Value: true}}
	prog := term.Case{Subject: subject, Branches: []term.Term{constInt(1), constInt(0)}}
	result := mustRun(t, prog)
	if got := asInt(t, result); got.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("got %s, want 1", got)
	}
}

func TestRunCaseOnBoolFalseSelectsBranch1(t *testing.T) {
	subject := term.ConstantTerm{Value: term.Bool{Value: false}}
	prog := term.Case{Subject: subject, Branches: []term.Term{constInt(1), constInt(0)}}
	result := mustRun(t, prog)
	if got := asInt(t, result); got.Cmp(big.NewInt(0)) != 0 {
		t.Errorf("got %s, want 0", got)
	}
}

func TestRunCaseOnUnit(t *testing.T) {
	subject := term.ConstantTerm{Value: term.Unit{}}
	prog := term.Case{Subject: subject, Branches: []term.Term{constInt(42)}}
	result := mustRun(t, prog)
	if got := asInt(t, result); got.Cmp(big.NewInt(42)) != 0 {
		t.Errorf("got %s, want 42", got)
	}
}

func TestRunCaseOnPair(t *testing.T) {
	// case (10, 3) [\l r -> l - r] -- a single branch receiving fst then snd
	pair := term.ProtoPair{
		FstType: term.TypeInteger, SndType: term.TypeInteger,
		Fst: term.NewInteger(10), Snd: term.NewInteger(3),
	}
	branch := term.Lambda{Parameter: "l", Body: term.Lambda{
		Parameter: "r",
		Body: term.Apply{
			Function: term.Apply{Function: term.NewBuiltinTerm(term.SubtractInteger), Argument: term.Var{Index: 2}},
			Argument: term.Var{Index: 1},
		},
	}}
	prog := term.Case{Subject: term.ConstantTerm{Value: pair}, Branches: []term.Term{branch}}
	result := mustRun(t, prog)
	if got := asInt(t, result); got.Cmp(big.NewInt(7)) != 0 {
		t.Errorf("got %s, want 7", got)
	}
}

func TestRunCaseOnEmptyList(t *testing.T) {
	// case [] [cons-branch, nils-branch] selects NILS (index 1) with no args
	empty := term.ProtoList{ElemType: term.TypeInteger}
	cons := term.Lambda{Parameter: "h", Body: term.Lambda{Parameter: "t", Body: constInt(1)}}
	nils := constInt(0)
	prog := term.Case{Subject: term.ConstantTerm{Value: empty}, Branches: []term.Term{cons, nils}}
	result := mustRun(t, prog)
	if got := asInt(t, result); got.Cmp(big.NewInt(0)) != 0 {
		t.Errorf("got %s, want 0", got)
	}
}

func TestRunCaseOnSingleElementListTailIsEmpty(t *testing.T) {
	// case [7] [\h t -> nullList t, nils] -- on a one-element list the tail
	// passed to the CONS branch must be the empty list, not the last element
	// (spec §4.4, §9a).
	list := term.ProtoList{ElemType: term.TypeInteger, Items: []term.Constant{term.NewInteger(7)}}
	cons := term.Lambda{Parameter: "h", Body: term.Lambda{
		Parameter: "t",
		Body: term.Apply{
			Function: term.Force{Body: term.NewBuiltinTerm(term.NullList)},
			Argument: term.Var{Index: 1},
		},
	}}
	nils := term.ConstantTerm{Value: term.Bool{Value: false}}
	prog := term.Case{Subject: term.ConstantTerm{Value: list}, Branches: []term.Term{cons, nils}}
	result := mustRun(t, prog)
	c, ok := result.(term.ConstantTerm)
	if !ok {
		t.Fatalf("result is not a constant: %v", result)
	}
	b, ok := c.Value.(term.Bool)
	if !ok || !b.Value {
		t.Errorf("got %v, want true (tail must be the empty list)", c.Value)
	}
}

func TestRunCaseOnMultiElementList(t *testing.T) {
	// case [1,2] [\h t -> h, nils] selects CONS with head=1, tail=[2]
	list := term.ProtoList{ElemType: term.TypeInteger, Items: []term.Constant{term.NewInteger(1), term.NewInteger(2)}}
	cons := term.Lambda{Parameter: "h", Body: term.Lambda{Parameter: "t", Body: term.Var{Index: 2}}}
	nils := constInt(0)
	prog := term.Case{Subject: term.ConstantTerm{Value: list}, Branches: []term.Term{cons, nils}}
	result := mustRun(t, prog)
	if got := asInt(t, result); got.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("got %s, want 1", got)
	}
}

func TestRunCaseOnNonScalarNonConstrIsError(t *testing.T) {
	_, _, _, err := newMachine().Run(term.Case{Subject: term.Lambda{Parameter: "x", Body: term.Var{Index: 1}}})
	if _, ok := err.(*NonConstrScrutinizedError); !ok {
		t.Errorf("got error %v (%T), want *NonConstrScrutinizedError", err, err)
	}
}
