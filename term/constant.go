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
	"fmt"
	"math/big"
)

// Constant is the marker interface every first-class UPLC value implements
// (spec §3), following the Expression/expressionNode() pattern from
// probe-lang/lang/ast: an unexported tag method closes the variant set to
// this package while letting every variant still satisfy fmt.Stringer.
type Constant interface {
	constantNode()
	// Type answers "what is my Type?" for runtime type checks (spec §3).
	Type() *Type
	String() string
}

// Integer is an arbitrary-precision signed integer constant.
type Integer struct{ Value *big.Int }

func (Integer) constantNode()    {}
func (Integer) Type() *Type      { return TypeInteger }
func (i Integer) String() string { return i.Value.String() }

// NewInteger wraps an int64 as an Integer constant.
func NewInteger(v int64) Integer { return Integer{Value: big.NewInt(v)} }

// ByteString is a raw byte-string constant.
type ByteString struct{ Value []byte }

func (ByteString) constantNode() {}
func (ByteString) Type() *Type   { return TypeByteString }
func (b ByteString) String() string {
	return fmt.Sprintf("#%x", b.Value)
}

// String is a UTF-8 text constant. Named StringConst at the value level would
// collide with the builtin string type, but Go permits a type named String in
// package term distinct from the predeclared string, same as ast.go's
// PathType vs path string fields.
type String struct{ Value string }

func (String) constantNode()    {}
func (String) Type() *Type      { return TypeString }
func (s String) String() string { return quote(s.Value) }

// Bool is a boolean constant.
type Bool struct{ Value bool }

func (Bool) constantNode()    {}
func (Bool) Type() *Type      { return TypeBool }
func (b Bool) String() string { return fmt.Sprintf("%t", b.Value) }

// Unit is the single-inhabitant unit constant.
type Unit struct{}

func (Unit) constantNode()  {}
func (Unit) Type() *Type    { return TypeUnit }
func (Unit) String() string { return "()" }

// ProtoList is a homogeneous list constant; ElemType is carried explicitly
// (rather than inferred from Items) because an empty list must still answer
// Type() correctly, matching the flat decoder's type-tag-before-payload
// layout (spec §4.2).
type ProtoList struct {
	ElemType *Type
	Items    []Constant
}

func (ProtoList) constantNode() {}
func (l ProtoList) Type() *Type { return ListOf(l.ElemType) }
func (l ProtoList) String() string {
	s := "["
	for i, it := range l.Items {
		if i > 0 {
			s += ", "
		}
		s += it.String()
	}
	return s + "]"
}

// ProtoPair is a heterogeneous pair constant.
type ProtoPair struct {
	FstType, SndType *Type
	Fst, Snd         Constant
}

func (ProtoPair) constantNode() {}
func (p ProtoPair) Type() *Type { return PairOf(p.FstType, p.SndType) }
func (p ProtoPair) String() string {
	return fmt.Sprintf("(%s, %s)", p.Fst.String(), p.Snd.String())
}

// Data wraps a PlutusData constant (spec §3, §6).
type Data struct{ Value PlutusData }

func (Data) constantNode()    {}
func (Data) Type() *Type      { return TypeData }
func (d Data) String() string { return "(Constr " + d.Value.String() + ")" }

// Bls12_381G1Element wraps a point on the BLS12-381 G1 curve, stored as its
// compressed encoding (48 bytes). term stays independent of the pairing
// library; builtin decompresses into a gnark-crypto point lazily, only when a
// BLS builtin is actually called, so decode/discharge of non-BLS programs
// never touches gnark-crypto.
type Bls12_381G1Element struct {
	Compressed [48]byte
}

func (Bls12_381G1Element) constantNode()    {}
func (Bls12_381G1Element) Type() *Type      { return TypeG1 }
func (g Bls12_381G1Element) String() string { return fmt.Sprintf("G1(%x)", g.Compressed[:]) }

// Bls12_381G2Element wraps a point on the BLS12-381 G2 curve (96-byte
// compressed encoding).
type Bls12_381G2Element struct {
	Compressed [96]byte
}

func (Bls12_381G2Element) constantNode()    {}
func (Bls12_381G2Element) Type() *Type      { return TypeG2 }
func (g Bls12_381G2Element) String() string { return fmt.Sprintf("G2(%x)", g.Compressed[:]) }

// Bls12_381MlResult wraps the opaque output of a Miller loop, consumable only
// by finalVerify; it has no flat or textual encoding.
type Bls12_381MlResult struct {
	// Value holds the GT-element encoding produced by bls.MillerLoop.
	Value [576]byte
}

func (Bls12_381MlResult) constantNode()    {}
func (Bls12_381MlResult) Type() *Type      { return TypeMLResult }
func (Bls12_381MlResult) String() string   { return "<opaque mlresult>" }

// Array is a fixed-size homogeneous sequence constant (V3 addition, spec
// §4.5 array family), distinct from ProtoList in that indexArray is O(1)
// rather than a linked traversal. ElemType is carried for the same reason as
// ProtoList.ElemType: an empty array must still answer Type() correctly.
type Array struct {
	ElemType *Type
	Items    []Constant
}

func (Array) constantNode() {}
func (a Array) Type() *Type { return ArrayOf(a.ElemType) }
func (a Array) String() string {
	s := "!["
	for i, it := range a.Items {
		if i > 0 {
			s += ", "
		}
		s += it.String()
	}
	return s + "]"
}
