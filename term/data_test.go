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
	"bytes"
	"math/big"
	"testing"
)

func TestEqualsData(t *testing.T) {
	a := PConstr{Tag: 0, Fields: []PlutusData{PInteger{Value: big.NewInt(1)}, PBytes{Value: []byte("x")}}}
	b := PConstr{Tag: 0, Fields: []PlutusData{PInteger{Value: big.NewInt(1)}, PBytes{Value: []byte("x")}}}
	c := PConstr{Tag: 1, Fields: []PlutusData{PInteger{Value: big.NewInt(1)}, PBytes{Value: []byte("x")}}}
	if !EqualsData(a, b) {
		t.Errorf("expected a == b")
	}
	if EqualsData(a, c) {
		t.Errorf("expected a != c (different tag)")
	}
	if EqualsData(PInteger{Value: big.NewInt(1)}, PBytes{Value: []byte{1}}) {
		t.Errorf("expected integer != bytestring of different variant")
	}
}

func TestDataSize(t *testing.T) {
	tests := []struct {
		name string
		d    PlutusData
		want int64
	}{
		{"zero integer", PInteger{Value: big.NewInt(0)}, 4 + 1},
		{"small integer", PInteger{Value: big.NewInt(1)}, 4 + 1},
		{"empty bytes", PBytes{Value: nil}, 4 + 1},
		{"eight bytes", PBytes{Value: make([]byte, 8)}, 4 + 1},
		{"nine bytes", PBytes{Value: make([]byte, 9)}, 4 + 2},
		{"empty list", PList{}, 4},
		{"list of two", PList{Items: []PlutusData{PInteger{Value: big.NewInt(0)}, PInteger{Value: big.NewInt(0)}}}, 4 + 5 + 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DataSize(tt.d); got != tt.want {
				t.Errorf("DataSize() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIntegerSize(t *testing.T) {
	tests := []struct {
		v    *big.Int
		want int64
	}{
		{big.NewInt(0), 1},
		{big.NewInt(1), 1},
		{new(big.Int).Lsh(big.NewInt(1), 63), 1},
		{new(big.Int).Lsh(big.NewInt(1), 64), 2},
		{big.NewInt(-1), 1},
	}
	for _, tt := range tests {
		if got := IntegerSize(tt.v); got != tt.want {
			t.Errorf("IntegerSize(%s) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestByteStringSize(t *testing.T) {
	tests := []struct {
		b    []byte
		want int64
	}{
		{nil, 1},
		{make([]byte, 1), 1},
		{make([]byte, 8), 1},
		{make([]byte, 9), 2},
		{make([]byte, 16), 2},
		{make([]byte, 17), 3},
	}
	for _, tt := range tests {
		if got := ByteStringSize(tt.b); got != tt.want {
			t.Errorf("ByteStringSize(len=%d) = %d, want %d", len(tt.b), got, tt.want)
		}
	}
}

func TestMarshalUnmarshalCBORRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		d    PlutusData
	}{
		{"small int", PInteger{Value: big.NewInt(42)}},
		{"negative int", PInteger{Value: big.NewInt(-7)}},
		{"big int", PInteger{Value: new(big.Int).Lsh(big.NewInt(1), 100)}},
		{"negative big int", PInteger{Value: new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 100))}},
		{"short bytes", PBytes{Value: []byte("hello")}},
		{"long bytes", PBytes{Value: bytes.Repeat([]byte{0xab}, 200)}},
		{"constr direct tag", PConstr{Tag: 1, Fields: []PlutusData{PInteger{Value: big.NewInt(1)}}}},
		{"constr wide tag", PConstr{Tag: 42, Fields: nil}},
		{"constr generic tag", PConstr{Tag: 1000, Fields: []PlutusData{PBytes{Value: []byte{1, 2}}}}},
		{"list", PList{Items: []PlutusData{PInteger{Value: big.NewInt(1)}, PInteger{Value: big.NewInt(2)}}}},
		{"map", PMap{Pairs: []PMapEntry{{Key: PBytes{Value: []byte("k")}, Value: PInteger{Value: big.NewInt(9)}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := MarshalCBOR(tt.d)
			if err != nil {
				t.Fatalf("MarshalCBOR: %v", err)
			}
			decoded, err := UnmarshalCBOR(encoded)
			if err != nil {
				t.Fatalf("UnmarshalCBOR: %v", err)
			}
			if !EqualsData(tt.d, decoded) {
				t.Errorf("round trip mismatch: got %s, want %s", decoded, tt.d)
			}
		})
	}
}

func TestConstrCBORTag(t *testing.T) {
	tests := []struct {
		tag      uint64
		wireTag  uint64
		isDirect bool
	}{
		{0, 121, true},
		{6, 127, true},
		{7, 1280, true},
		{127, 1400, true},
		{128, 102, false},
	}
	for _, tt := range tests {
		wire, direct := constrCBORTag(tt.tag)
		if wire != tt.wireTag || direct != tt.isDirect {
			t.Errorf("constrCBORTag(%d) = (%d, %v), want (%d, %v)", tt.tag, wire, direct, tt.wireTag, tt.isDirect)
		}
	}
}
