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
	"testing"

	"github.com/probechain/uplc/term"
)

func str(s string) term.Constant { return term.String{Value: s} }

func mustString(t *testing.T, c term.Constant, err error) string {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, ok := c.(term.String)
	if !ok {
		t.Fatalf("expected String, got %T", c)
	}
	return s.Value
}

func TestAppendEqualsString(t *testing.T) {
	if got := mustString(t, appendString([]term.Constant{str("foo"), str("bar")})); got != "foobar" {
		t.Errorf("appendString = %q, want foobar", got)
	}
	if !mustBool(t, equalsString([]term.Constant{str("foo"), str("foo")})) {
		t.Error("equalsString(foo,foo) = false, want true")
	}
	if mustBool(t, equalsString([]term.Constant{str("foo"), str("bar")})) {
		t.Error("equalsString(foo,bar) = true, want false")
	}
}

func TestEncodeDecodeUtf8RoundTrip(t *testing.T) {
	encoded := mustBytes(t, encodeUtf8([]term.Constant{str("héllo")}))
	decoded := mustString(t, decodeUtf8([]term.Constant{term.ByteString{Value: encoded}}))
	if decoded != "héllo" {
		t.Errorf("decodeUtf8(encodeUtf8(x)) = %q, want héllo", decoded)
	}
}

func TestDecodeUtf8RejectsInvalidSequence(t *testing.T) {
	if _, err := decodeUtf8([]term.Constant{term.ByteString{Value: []byte{0xFF, 0xFE}}}); err == nil {
		t.Error("decodeUtf8 on invalid utf-8: expected error")
	}
}
