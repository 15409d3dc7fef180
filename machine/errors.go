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
	"fmt"

	"github.com/probechain/uplc/cost"
	"github.com/probechain/uplc/term"
)

// ExplicitErrorError is raised by an (error) term (spec §4.4).
type ExplicitErrorError struct{}

func (*ExplicitErrorError) Error() string { return "explicit error term evaluated" }

// NonFunctionApplicationError is raised when Apply's function position
// evaluates to a Value other than Lambda or Builtin.
type NonFunctionApplicationError struct{ Function Value }

func (e *NonFunctionApplicationError) Error() string {
	return fmt.Sprintf("cannot apply argument to non-function value: %s", e.Function)
}

// NotAConstantError is raised when a builtin argument is not a Con value.
type NotAConstantError struct{ Value Value }

func (e *NotAConstantError) Error() string {
	return fmt.Sprintf("expected a constant, got %s", e.Value)
}

// OpenTermEvaluatedError is raised when a Var's De Bruijn index has no
// matching binding in the current environment.
type OpenTermEvaluatedError struct{ Index int }

func (e *OpenTermEvaluatedError) Error() string {
	return fmt.Sprintf("open term evaluated: unbound variable #%d", e.Index)
}

// OutOfExError is raised when spending a step or builtin cost drives either
// budget component negative.
type OutOfExError struct{ Spent cost.ExBudget }

func (e *OutOfExError) Error() string {
	return fmt.Sprintf("the budget was overspent: %s", e.Spent)
}

// UnexpectedBuiltinTermArgumentError is raised when a term argument is
// applied to a builtin that has already received its full arity.
type UnexpectedBuiltinTermArgumentError struct{ Argument Value }

func (e *UnexpectedBuiltinTermArgumentError) Error() string {
	return fmt.Sprintf("unexpected argument applied to a fully saturated builtin: %s", e.Argument)
}

// BuiltinForceArgumentMismatchError is raised when an argument is applied to
// a builtin that is still waiting on one or more Force steps.
type BuiltinForceArgumentMismatchError struct{ Value Value }

func (e *BuiltinForceArgumentMismatchError) Error() string {
	return fmt.Sprintf("argument applied before builtin's forces were satisfied: %s", e.Value)
}

// NonPolymorphicInstantiationError is raised when Force is applied to a
// Value other than Delay or a builtin still awaiting forces.
type NonPolymorphicInstantiationError struct{ Value Value }

func (e *NonPolymorphicInstantiationError) Error() string {
	return fmt.Sprintf("cannot force a non-polymorphic value: %s", e.Value)
}

// BuiltinTermArgumentExpectedError is raised when Force reaches a builtin
// that is done with forces but still awaiting term arguments.
type BuiltinTermArgumentExpectedError struct{ Value Value }

func (e *BuiltinTermArgumentExpectedError) Error() string {
	return fmt.Sprintf("expected a term argument, got a force: %s", e.Value)
}

// NonConstrScrutinizedError is raised when Case's Subject evaluates to a
// Value that is neither Constr nor a scalar Con it knows how to branch on.
type NonConstrScrutinizedError struct{ Value Value }

func (e *NonConstrScrutinizedError) Error() string {
	return fmt.Sprintf("attempted to case-match a non-data, non-constr value: %s", e.Value)
}

// MissingCaseBranchError is raised when a Constr's tag (or a scalar's
// implied index) has no corresponding entry in Branches.
type MissingCaseBranchError struct {
	Branches []term.Term
	Value    Value
}

func (e *MissingCaseBranchError) Error() string {
	return fmt.Sprintf("no branch for tag/index matching %s among %d branches", e.Value, len(e.Branches))
}

// TypeMismatchError is raised when a builtin argument decodes to a Con value
// of the wrong Constant variant.
type TypeMismatchError struct {
	Expected *term.Type
	Got      term.Constant
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Got.Type())
}

// ExpectedPairError is raised when a builtin expecting ProtoPair receives
// some other Constant variant.
type ExpectedPairError struct{ Got term.Constant }

func (e *ExpectedPairError) Error() string {
	return fmt.Sprintf("expected a pair, got %s", e.Got.Type())
}

// ExpectedListError is raised when a builtin expecting ProtoList receives
// some other Constant variant.
type ExpectedListError struct{ Got term.Constant }

func (e *ExpectedListError) Error() string {
	return fmt.Sprintf("expected a list, got %s", e.Got.Type())
}

// EmptyListError is raised by headList/tailList on an empty list.
type EmptyListError struct{}

func (*EmptyListError) Error() string { return "list is empty" }

// RuntimeError wraps a semantic failure raised by a Constant-only builtin
// implemented in package builtin, preserving its message at the machine
// error-reporting layer.
type RuntimeError struct{ Err error }

func (e *RuntimeError) Error() string { return e.Err.Error() }
func (e *RuntimeError) Unwrap() error { return e.Err }
