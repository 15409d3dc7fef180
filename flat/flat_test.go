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

package flat

import (
	"math/big"
	"testing"

	"github.com/probechain/uplc/term"
)

func roundTrip(t *testing.T, tm term.Term) term.Term {
	t.Helper()
	p := &DecodedProgram{Major: 1, Minor: 1, Patch: 0, Term: tm}
	buf, err := EncodeProgram(p, PlainDeBruijn{})
	if err != nil {
		t.Fatalf("EncodeProgram: %v", err)
	}
	decoded, err := DecodeProgram(buf, PlainDeBruijn{})
	if err != nil {
		t.Fatalf("DecodeProgram: %v", err)
	}
	if decoded.Major != 1 || decoded.Minor != 1 || decoded.Patch != 0 {
		t.Fatalf("version mismatch: got %d.%d.%d", decoded.Major, decoded.Minor, decoded.Patch)
	}
	return decoded.Term
}

func TestProgramRoundTripAddIntegerExample(t *testing.T) {
	// (program 1.1.0 [(builtin addInteger) (con integer 1) (con integer 3)])
	tm := term.Apply{
		Function: term.Apply{
			Function: term.NewBuiltinTerm(term.AddInteger),
			Argument: term.NewIntegerTerm(1),
		},
		Argument: term.NewIntegerTerm(3),
	}
	got := roundTrip(t, tm)
	want := tm.String()
	if got.String() != want {
		t.Errorf("round trip = %s, want %s", got, want)
	}
}

func TestProgramRoundTripIdentityLambda(t *testing.T) {
	tm := term.Lambda{Parameter: "", Body: term.Var{Index: 1}}
	got := roundTrip(t, tm)
	if got.String() != tm.String() {
		t.Errorf("round trip = %s, want %s", got, tm.String())
	}
}

func TestProgramRoundTripForceDelay(t *testing.T) {
	tm := term.Force{Body: term.Delay{Body: term.NewIntegerTerm(42)}}
	got := roundTrip(t, tm)
	if got.String() != tm.String() {
		t.Errorf("round trip = %s, want %s", got, tm.String())
	}
}

func TestProgramRoundTripError(t *testing.T) {
	tm := term.ErrorTerm{}
	got := roundTrip(t, tm)
	if got.String() != tm.String() {
		t.Errorf("round trip = %s, want %s", got, tm.String())
	}
}

func TestProgramRoundTripConstrAndCase(t *testing.T) {
	tm := term.Case{
		Subject: term.Constr{Tag: 1, Fields: []term.Term{term.NewIntegerTerm(5)}},
		Branches: []term.Term{
			term.NewIntegerTerm(0),
			term.NewIntegerTerm(1),
		},
	}
	got := roundTrip(t, tm)
	if got.String() != tm.String() {
		t.Errorf("round trip = %s, want %s", got, tm.String())
	}
}

func TestProgramRoundTripConstants(t *testing.T) {
	tests := []term.Constant{
		term.NewInteger(0),
		term.NewInteger(-1234567890123456789),
		term.ByteString{Value: []byte{1, 2, 3}},
		term.String{Value: "hello uplc"},
		term.Bool{Value: true},
		term.Bool{Value: false},
		term.Unit{},
		term.ProtoList{ElemType: term.TypeInteger, Items: []term.Constant{term.NewInteger(1), term.NewInteger(2)}},
		term.ProtoPair{FstType: term.TypeInteger, SndType: term.TypeBool, Fst: term.NewInteger(1), Snd: term.Bool{Value: true}},
		term.Data{Value: term.PInteger{Value: big.NewInt(7)}},
	}
	for _, c := range tests {
		tm := term.ConstantTerm{Value: c}
		got := roundTrip(t, tm)
		if got.String() != tm.String() {
			t.Errorf("round trip for %s = %s, want %s", c.Type(), got, tm.String())
		}
	}
}

func TestDecodeUnknownTermTag(t *testing.T) {
	e := NewEncoder()
	e.Bits(TermTagWidth, 15) // out of range
	e.Filler()
	_, err := decodeTerm(NewDecoder(e.Bytes()), PlainDeBruijn{}, nil)
	if _, ok := err.(*UnknownTermConstructorError); !ok {
		t.Errorf("decodeTerm with bad tag: got %v (%T), want *UnknownTermConstructorError", err, err)
	}
}

func TestDecodeBlsConstantUnsupported(t *testing.T) {
	_, err := decodeConstantPayload(NewDecoder(nil), term.TypeG1)
	if err != ErrBlsUnsupported {
		t.Errorf("decodeConstantPayload(G1) = %v, want ErrBlsUnsupported", err)
	}
}
