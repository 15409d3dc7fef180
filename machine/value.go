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

// Package machine implements the CEK abstract machine that evaluates a
// term.Term under a cost.CostModel (spec §4.4). It holds the Value universe
// the machine actually operates over (richer than term.Constant, since a
// Lambda or partially-applied builtin is a legitimate runtime value with no
// Term-level representation) and the continuation stack that represents
// "what to do next".
package machine

import (
	"fmt"

	"github.com/probechain/uplc/term"
)

// Value is the marker interface for every runtime value the CEK machine
// produces, following the same closed-tag-method pattern as term.Term and
// term.Constant.
type Value interface {
	valueNode()
	String() string
}

// Con wraps a fully evaluated constant.
type Con struct{ Constant term.Constant }

func (Con) valueNode()        {}
func (c Con) String() string  { return c.Constant.String() }

// Lambda is a closure: Body still has one free De Bruijn index, resolved by
// extending Env when the closure is applied.
type Lambda struct {
	Parameter string
	Body      term.Term
	Env       *Env
}

func (Lambda) valueNode()       {}
func (l Lambda) String() string { return "(lam " + l.Parameter + " ...)" }

// Builtin wraps a partially (or fully) applied builtin invocation.
type Builtin struct{ Runtime *Runtime }

func (Builtin) valueNode()       {}
func (b Builtin) String() string { return "(builtin " + b.Runtime.Function.Name() + ")" }

// Delay suspends Body until a matching Force resumes it in Env.
type Delay struct {
	Body term.Term
	Env  *Env
}

func (Delay) valueNode()       {}
func (Delay) String() string   { return "(delay ...)" }

// Constr is a fully evaluated sum-type value: a tag and its evaluated
// fields.
type Constr struct {
	Tag    uint64
	Fields []Value
}

func (Constr) valueNode() {}
func (c Constr) String() string {
	s := fmt.Sprintf("(constr %d", c.Tag)
	for _, f := range c.Fields {
		s += " " + f.String()
	}
	return s + ")"
}

// unwrap helpers mirror the Rust reference's Value::unwrap_* family: every
// builtin that takes a Value argument (rather than a bare Constant) needs a
// typed, erroring projection instead of a bare type assertion.

func unwrapConstant(v Value) (term.Constant, error) {
	c, ok := v.(Con)
	if !ok {
		return nil, &NotAConstantError{Value: v}
	}
	return c.Constant, nil
}

func unwrapInteger(v Value) (term.Integer, error) {
	c, err := unwrapConstant(v)
	if err != nil {
		return term.Integer{}, err
	}
	i, ok := c.(term.Integer)
	if !ok {
		return term.Integer{}, &TypeMismatchError{Expected: term.TypeInteger, Got: c}
	}
	return i, nil
}

func unwrapBool(v Value) (bool, error) {
	c, err := unwrapConstant(v)
	if err != nil {
		return false, err
	}
	b, ok := c.(term.Bool)
	if !ok {
		return false, &TypeMismatchError{Expected: term.TypeBool, Got: c}
	}
	return b.Value, nil
}

func unwrapPair(v Value) (term.ProtoPair, error) {
	c, err := unwrapConstant(v)
	if err != nil {
		return term.ProtoPair{}, err
	}
	p, ok := c.(term.ProtoPair)
	if !ok {
		return term.ProtoPair{}, &ExpectedPairError{Got: c}
	}
	return p, nil
}

func unwrapList(v Value) (term.ProtoList, error) {
	c, err := unwrapConstant(v)
	if err != nil {
		return term.ProtoList{}, err
	}
	l, ok := c.(term.ProtoList)
	if !ok {
		return term.ProtoList{}, &ExpectedListError{Got: c}
	}
	return l, nil
}

func unwrapData(v Value) (term.PlutusData, error) {
	c, err := unwrapConstant(v)
	if err != nil {
		return nil, err
	}
	d, ok := c.(term.Data)
	if !ok {
		return nil, &TypeMismatchError{Expected: term.TypeData, Got: c}
	}
	return d.Value, nil
}
