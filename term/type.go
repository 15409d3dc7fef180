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

// Package term defines the UPLC abstract syntax tree: Term, Type, Constant,
// and PlutusData. It is the Go analogue of probe-lang's ast/types packages,
// generalized from a compiled-language AST to the Term grammar of Untyped
// Plutus Core (spec §3).
package term

import "strings"

// Kind categorizes the fundamental shape of a Type, mirroring
// probe-lang/lang/types.Kind but closed over the UPLC type grammar (spec §3):
// bool, integer, string, bytestring, unit, data, list(T), pair(T1,T2),
// array(T), g1, g2, ml-result.
type Kind int

const (
	KindInteger Kind = iota
	KindByteString
	KindString
	KindUnit
	KindBool
	KindData
	KindList
	KindPair
	KindArray
	KindG1
	KindG2
	KindMLResult
)

var kindNames = [...]string{
	KindInteger:    "integer",
	KindByteString: "bytestring",
	KindString:     "string",
	KindUnit:       "unit",
	KindBool:       "bool",
	KindData:       "data",
	KindList:       "list",
	KindPair:       "pair",
	KindArray:      "array",
	KindG1:         "bls12_381_G1_element",
	KindG2:         "bls12_381_G2_element",
	KindMLResult:   "bls12_381_mlresult",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Type is a (possibly recursive) UPLC type. Leaf kinds leave Elem/Fst/Snd nil;
// List and Array carry Elem; Pair carries Fst and Snd.
type Type struct {
	Kind Kind
	Elem *Type // List, Array
	Fst  *Type // Pair
	Snd  *Type // Pair
}

// Predefined singletons for the leaf kinds, analogous to types.Bool/U64/...
var (
	TypeInteger    = &Type{Kind: KindInteger}
	TypeByteString = &Type{Kind: KindByteString}
	TypeString     = &Type{Kind: KindString}
	TypeUnit       = &Type{Kind: KindUnit}
	TypeBool       = &Type{Kind: KindBool}
	TypeData       = &Type{Kind: KindData}
	TypeG1         = &Type{Kind: KindG1}
	TypeG2         = &Type{Kind: KindG2}
	TypeMLResult   = &Type{Kind: KindMLResult}
)

// ListOf builds a list(elem) Type.
func ListOf(elem *Type) *Type { return &Type{Kind: KindList, Elem: elem} }

// ArrayOf builds an array(elem) Type.
func ArrayOf(elem *Type) *Type { return &Type{Kind: KindArray, Elem: elem} }

// PairOf builds a pair(fst, snd) Type.
func PairOf(fst, snd *Type) *Type { return &Type{Kind: KindPair, Fst: fst, Snd: snd} }

// Equals reports whether two types are structurally identical. mkCons and the
// builtin dispatcher (§4.5) use this to reject list/element type mismatches.
func (t *Type) Equals(other *Type) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case KindList, KindArray:
		return t.Elem.Equals(other.Elem)
	case KindPair:
		return t.Fst.Equals(other.Fst) && t.Snd.Equals(other.Snd)
	default:
		return true
	}
}

func (t *Type) String() string {
	if t == nil {
		return "<nil type>"
	}
	switch t.Kind {
	case KindList:
		return "list(" + t.Elem.String() + ")"
	case KindArray:
		return "array(" + t.Elem.String() + ")"
	case KindPair:
		return "pair(" + t.Fst.String() + ", " + t.Snd.String() + ")"
	default:
		return t.Kind.String()
	}
}

// TypeTagPath renders the flat-decoder 4-bit type-tag sequence for this type,
// as a debug aid matching the §4.2 "list of 4-bit tags" grammar: leaf kinds
// 0..=4,8 and the type-constructor tag 7 followed by 5 (list) or 6 (pair).
func (t *Type) TypeTagPath() []int {
	var path []int
	t.appendTagPath(&path)
	return path
}

func (t *Type) appendTagPath(path *[]int) {
	switch t.Kind {
	case KindInteger:
		*path = append(*path, 0)
	case KindByteString:
		*path = append(*path, 1)
	case KindString:
		*path = append(*path, 2)
	case KindUnit:
		*path = append(*path, 3)
	case KindBool:
		*path = append(*path, 4)
	case KindData:
		*path = append(*path, 8)
	case KindList:
		*path = append(*path, 7, 5)
		t.Elem.appendTagPath(path)
	case KindPair:
		*path = append(*path, 7, 6)
		t.Fst.appendTagPath(path)
		t.Snd.appendTagPath(path)
	default:
		// Array, G1, G2, MLResult have no flat encoding (spec §4.2:
		// "BLS constants are not decodable from flat").
	}
}

func quote(s string) string { return "\"" + strings.ReplaceAll(s, "\"", "\\\"") + "\"" }
