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

func i(v int64) term.Constant { return term.NewInteger(v) }

func mustInt(t *testing.T, c term.Constant, err error) int64 {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, ok := c.(term.Integer)
	if !ok {
		t.Fatalf("expected Integer, got %T", c)
	}
	return n.Value.Int64()
}

func mustBool(t *testing.T, c term.Constant, err error) bool {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, ok := c.(term.Bool)
	if !ok {
		t.Fatalf("expected Bool, got %T", c)
	}
	return b.Value
}

func TestAddSubtractMultiplyInteger(t *testing.T) {
	if got := mustInt(t, addInteger([]term.Constant{i(3), i(4)})); got != 7 {
		t.Errorf("addInteger = %d, want 7", got)
	}
	if got := mustInt(t, subtractInteger([]term.Constant{i(3), i(4)})); got != -1 {
		t.Errorf("subtractInteger = %d, want -1", got)
	}
	if got := mustInt(t, multiplyInteger([]term.Constant{i(3), i(4)})); got != 12 {
		t.Errorf("multiplyInteger = %d, want 12", got)
	}
}

func TestDivideModFloorTowardNegativeInfinity(t *testing.T) {
	tests := []struct {
		a, b     int64
		wantDiv  int64
		wantMod  int64
	}{
		{7, 3, 2, 1},
		{-7, 3, -3, 2},
		{7, -3, -3, -2},
		{-7, -3, 2, -1},
	}
	for _, tt := range tests {
		if got := mustInt(t, divideInteger([]term.Constant{i(tt.a), i(tt.b)})); got != tt.wantDiv {
			t.Errorf("divideInteger(%d,%d) = %d, want %d", tt.a, tt.b, got, tt.wantDiv)
		}
		if got := mustInt(t, modInteger([]term.Constant{i(tt.a), i(tt.b)})); got != tt.wantMod {
			t.Errorf("modInteger(%d,%d) = %d, want %d", tt.a, tt.b, got, tt.wantMod)
		}
	}
}

func TestQuotientRemainderTruncateTowardZero(t *testing.T) {
	if got := mustInt(t, quotientInteger([]term.Constant{i(-7), i(3)})); got != -2 {
		t.Errorf("quotientInteger(-7,3) = %d, want -2", got)
	}
	if got := mustInt(t, remainderInteger([]term.Constant{i(-7), i(3)})); got != -1 {
		t.Errorf("remainderInteger(-7,3) = %d, want -1", got)
	}
}

func TestDivisionByZero(t *testing.T) {
	if _, err := divideInteger([]term.Constant{i(1), i(0)}); err == nil {
		t.Error("divideInteger by zero: expected error")
	}
	if _, err := quotientInteger([]term.Constant{i(1), i(0)}); err == nil {
		t.Error("quotientInteger by zero: expected error")
	}
}

func TestComparisons(t *testing.T) {
	if !mustBool(t, equalsInteger([]term.Constant{i(5), i(5)})) {
		t.Error("equalsInteger(5,5) = false, want true")
	}
	if !mustBool(t, lessThanInteger([]term.Constant{i(3), i(5)})) {
		t.Error("lessThanInteger(3,5) = false, want true")
	}
	if !mustBool(t, lessThanEqualsInteger([]term.Constant{i(5), i(5)})) {
		t.Error("lessThanEqualsInteger(5,5) = false, want true")
	}
}

func TestExpModInteger(t *testing.T) {
	if got := mustInt(t, expModInteger([]term.Constant{i(4), i(13), i(497)})); got != 445 {
		t.Errorf("expModInteger(4,13,497) = %d, want 445", got)
	}
	if _, err := expModInteger([]term.Constant{i(4), i(13), i(0)}); err == nil {
		t.Error("expModInteger with zero modulus: expected error")
	}
}

func TestExpModIntegerNegativeExponent(t *testing.T) {
	got, err := expModInteger([]term.Constant{i(3), i(-1), i(11)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n := mustInt(t, got, nil)
	if (3*n)%11 != 1 {
		t.Errorf("expModInteger(3,-1,11) = %d, not a modular inverse of 3 mod 11", n)
	}
}
