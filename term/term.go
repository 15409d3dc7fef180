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

package term

import (
	"strconv"
	"strings"
)

// Term is the marker interface for every node of the UPLC AST (spec §3),
// following the Expression/expressionNode() pattern from probe-lang/lang/ast:
// an unexported tag method closes the variant set to this package.
type Term interface {
	termNode()
	String() string
}

// Var references a bound variable by its 1-based De Bruijn index, counting
// enclosing binders inclusive of the one it resolves to.
type Var struct{ Index int }

func (Var) termNode() {}
func (v Var) String() string {
	return "#" + strconv.Itoa(v.Index)
}

// Lambda introduces one variable binding over Body. Parameter is retained for
// named-De-Bruijn round-tripping (spec §3 binder strategies) but plays no
// role in evaluation, which is purely index-based.
type Lambda struct {
	Parameter string
	Body      Term
}

func (Lambda) termNode() {}
func (l Lambda) String() string {
	return "(lam " + l.Parameter + " " + l.Body.String() + ")"
}

// Apply applies Function to Argument.
type Apply struct {
	Function Term
	Argument Term
}

func (Apply) termNode() {}
func (a Apply) String() string {
	return "[" + a.Function.String() + " " + a.Argument.String() + "]"
}

// Delay suspends Body until a matching Force resumes it, used to sequence
// polymorphic builtin instantiation (spec §3, glossary "Force/Delay").
type Delay struct{ Body Term }

func (Delay) termNode() {}
func (d Delay) String() string {
	return "(delay " + d.Body.String() + ")"
}

// Force resumes a suspended Delay (or a builtin still awaiting forces).
type Force struct{ Body Term }

func (Force) termNode() {}
func (f Force) String() string {
	return "(force " + f.Body.String() + ")"
}

// ConstantTerm wraps a first-class Constant value as a Term leaf. Named with
// the Term suffix to avoid colliding with the Constant interface itself.
type ConstantTerm struct{ Value Constant }

func (ConstantTerm) termNode() {}
func (c ConstantTerm) String() string {
	return "(con " + c.Value.Type().String() + " " + c.Value.String() + ")"
}

// BuiltinTerm references one member of the closed builtin enumeration
// (spec §3, §4.5).
type BuiltinTerm struct{ Function DefaultFunction }

func (BuiltinTerm) termNode() {}
func (b BuiltinTerm) String() string {
	return "(builtin " + b.Function.Name() + ")"
}

// ErrorTerm forces evaluation to fail wherever it is encountered
// (spec §4.4 "ExplicitErrorTerm").
type ErrorTerm struct{}

func (ErrorTerm) termNode() {}
func (ErrorTerm) String() string { return "(error)" }

// Constr builds a sum-type value carrying Tag and the evaluated Fields,
// added to the grammar alongside Case for Plutus V3 pattern matching.
type Constr struct {
	Tag    uint64
	Fields []Term
}

func (Constr) termNode() {}
func (c Constr) String() string {
	var sb strings.Builder
	sb.WriteString("(constr ")
	sb.WriteString(strconv.FormatUint(c.Tag, 10))
	for _, f := range c.Fields {
		sb.WriteByte(' ')
		sb.WriteString(f.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Case scrutinizes Subject, a Constr value or an integer, bool, unit, pair or
// list constant, and dispatches to the Branches entry selected by its tag or
// scalar index (spec §3, §4.4).
type Case struct {
	Subject  Term
	Branches []Term
}

func (Case) termNode() {}
func (c Case) String() string {
	var sb strings.Builder
	sb.WriteString("(case ")
	sb.WriteString(c.Subject.String())
	for _, b := range c.Branches {
		sb.WriteByte(' ')
		sb.WriteString(b.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// NewIntegerTerm builds a Term for a literal Integer constant, mirroring the
// source's Term::integer_from convenience constructor.
func NewIntegerTerm(v int64) Term {
	return ConstantTerm{Value: NewInteger(v)}
}

// NewBuiltinTerm builds a Term referencing a builtin function by identity,
// matching the source's Term::add_integer-style per-builtin constructors
// generalized to the whole enumeration instead of one method per function.
func NewBuiltinTerm(f DefaultFunction) Term {
	return BuiltinTerm{Function: f}
}
