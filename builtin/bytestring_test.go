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

package builtin

import (
	"bytes"
	"testing"

	"github.com/probechain/uplc/term"
)

func bs(b ...byte) term.Constant { return term.ByteString{Value: b} }

func mustBytes(t *testing.T, c term.Constant, err error) []byte {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, ok := c.(term.ByteString)
	if !ok {
		t.Fatalf("expected ByteString, got %T", c)
	}
	return b.Value
}

func TestAppendConsSliceByteString(t *testing.T) {
	if got := mustBytes(t, appendByteString([]term.Constant{bs(1, 2), bs(3, 4)})); !bytes.Equal(got, []byte{1, 2, 3, 4}) {
		t.Errorf("appendByteString = %v", got)
	}
	if got := mustBytes(t, consByteString([]term.Constant{i(257), bs(1)})); !bytes.Equal(got, []byte{1, 1}) {
		t.Errorf("consByteString = %v, want [1 1]", got)
	}
	if got := mustBytes(t, sliceByteString([]term.Constant{i(1), i(2), bs(10, 20, 30, 40)})); !bytes.Equal(got, []byte{20, 30}) {
		t.Errorf("sliceByteString = %v, want [20 30]", got)
	}
}

func TestSliceByteStringClampsOutOfRange(t *testing.T) {
	got := mustBytes(t, sliceByteString([]term.Constant{i(-5), i(100), bs(1, 2, 3)}))
	if !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Errorf("sliceByteString clamp = %v, want [1 2 3]", got)
	}
}

func TestIndexByteStringOutOfBounds(t *testing.T) {
	if _, err := indexByteString([]term.Constant{bs(1, 2), i(5)}); err == nil {
		t.Error("indexByteString out of bounds: expected error")
	}
}

func TestBitwiseZip(t *testing.T) {
	pad := term.Bool{Value: true}
	got := mustBytes(t, andByteString([]term.Constant{pad, bs(0xF0), bs(0x0F, 0xFF)}))
	if !bytes.Equal(got, []byte{0x00, 0x00}) {
		t.Errorf("andByteString with padding = %x, want 0000", got)
	}
	noPad := term.Bool{Value: false}
	got = mustBytes(t, orByteString([]term.Constant{noPad, bs(0xF0), bs(0x0F, 0xFF)}))
	if !bytes.Equal(got, []byte{0xFF}) {
		t.Errorf("orByteString without padding = %x, want ff", got)
	}
	got = mustBytes(t, xorByteString([]term.Constant{pad, bs(0xFF), bs(0x0F)}))
	if !bytes.Equal(got, []byte{0xF0}) {
		t.Errorf("xorByteString = %x, want f0", got)
	}
	got = mustBytes(t, complementByteString([]term.Constant{bs(0x00, 0xFF)}))
	if !bytes.Equal(got, []byte{0xFF, 0x00}) {
		t.Errorf("complementByteString = %x, want ff00", got)
	}
}

func TestReadWriteBit(t *testing.T) {
	if got := mustBool(t, readBit([]term.Constant{bs(0x01), i(0)})); !got {
		t.Error("readBit(0x01, 0) = false, want true (bit 0 is LSB of last byte)")
	}
	list := term.ProtoList{ElemType: term.TypeInteger, Items: []term.Constant{i(0)}}
	got := mustBytes(t, writeBits([]term.Constant{bs(0x00), list, term.Bool{Value: true}}))
	if !bytes.Equal(got, []byte{0x01}) {
		t.Errorf("writeBits set bit 0 = %x, want 01", got)
	}
}

func TestReplicateByte(t *testing.T) {
	got := mustBytes(t, replicateByte([]term.Constant{i(3), i(7)}))
	if !bytes.Equal(got, []byte{7, 7, 7}) {
		t.Errorf("replicateByte(3,7) = %v, want [7 7 7]", got)
	}
	if _, err := replicateByte([]term.Constant{i(-1), i(7)}); err == nil {
		t.Error("replicateByte negative size: expected error")
	}
}

func TestShiftByteStringZeroIsIdentity(t *testing.T) {
	got := mustBytes(t, shiftByteString([]term.Constant{bs(0xAB, 0xCD), i(0)}))
	if !bytes.Equal(got, []byte{0xAB, 0xCD}) {
		t.Errorf("shiftByteString by 0 = %x, want abcd", got)
	}
}

func TestShiftByteStringSaturatesToZero(t *testing.T) {
	got := mustBytes(t, shiftByteString([]term.Constant{bs(0xFF, 0xFF), i(16)}))
	if !bytes.Equal(got, []byte{0x00, 0x00}) {
		t.Errorf("shiftByteString past width = %x, want 0000", got)
	}
}

func TestRotateByteStringFullTurnIsIdentity(t *testing.T) {
	got := mustBytes(t, rotateByteString([]term.Constant{bs(0x80, 0x01), i(16)}))
	if !bytes.Equal(got, []byte{0x80, 0x01}) {
		t.Errorf("rotateByteString by full width = %x, want 8001", got)
	}
}

func TestCountAndFindSetBits(t *testing.T) {
	if got := mustInt(t, countSetBits([]term.Constant{bs(0xFF, 0x01)})); got != 9 {
		t.Errorf("countSetBits = %d, want 9", got)
	}
	if got := mustInt(t, findFirstSetBit([]term.Constant{bs(0x00, 0x02)})); got != 1 {
		t.Errorf("findFirstSetBit = %d, want 1", got)
	}
	if got := mustInt(t, findFirstSetBit([]term.Constant{bs(0x00)})); got != -1 {
		t.Errorf("findFirstSetBit on all-zero input = %d, want -1", got)
	}
}

func TestIntegerByteStringRoundTrip(t *testing.T) {
	big, err := integerToByteString([]term.Constant{term.Bool{Value: true}, i(0), i(0x1234)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back := mustInt(t, byteStringToInteger([]term.Constant{term.Bool{Value: true}, big}))
	if back != 0x1234 {
		t.Errorf("round trip = %d, want 0x1234", back)
	}
}

func TestIntegerToByteStringRejectsOversizeAndNegative(t *testing.T) {
	if _, err := integerToByteString([]term.Constant{term.Bool{Value: true}, i(0), i(-1)}); err == nil {
		t.Error("integerToByteString negative input: expected error")
	}
	if _, err := integerToByteString([]term.Constant{term.Bool{Value: true}, i(1), i(1000)}); err == nil {
		t.Error("integerToByteString value too large for requested size: expected error")
	}
}
