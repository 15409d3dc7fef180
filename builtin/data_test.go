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
	"math/big"
	"testing"

	"github.com/probechain/uplc/term"
)

func n64(v int64) *big.Int { return big.NewInt(v) }

func mustData(t *testing.T, c term.Constant, err error) term.PlutusData {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d, ok := c.(term.Data)
	if !ok {
		t.Fatalf("expected Data, got %T", c)
	}
	return d.Value
}

func TestIDataBDataRoundTrip(t *testing.T) {
	d := mustData(t, iData([]term.Constant{i(42)}))
	n, ok := d.(term.PInteger)
	if !ok {
		t.Fatalf("iData produced %T, want PInteger", d)
	}
	back := mustInt(t, unIData([]term.Constant{term.Data{Value: n}}))
	if back != 42 {
		t.Errorf("unIData(iData(42)) = %d, want 42", back)
	}

	d = mustData(t, bData([]term.Constant{bs(1, 2, 3)}))
	b, ok := d.(term.PBytes)
	if !ok {
		t.Fatalf("bData produced %T, want PBytes", d)
	}
	backB := mustBytes(t, unBData([]term.Constant{term.Data{Value: b}}))
	if len(backB) != 3 || backB[0] != 1 {
		t.Errorf("unBData(bData(...)) = %v", backB)
	}
}

func TestConstrDataRoundTrip(t *testing.T) {
	fields := term.ProtoList{ElemType: term.TypeData, Items: []term.Constant{
		term.Data{Value: term.PInteger{Value: n64(1)}},
		term.Data{Value: term.PInteger{Value: n64(2)}},
	}}
	d := mustData(t, constrData([]term.Constant{i(0), fields}))
	c, ok := d.(term.PConstr)
	if !ok {
		t.Fatalf("constrData produced %T, want PConstr", d)
	}
	if c.Tag != 0 || len(c.Fields) != 2 {
		t.Fatalf("constrData fields = %+v", c)
	}
	got, err := unConstrData([]term.Constant{term.Data{Value: c}})
	if err != nil {
		t.Fatalf("unConstrData: %v", err)
	}
	pair, ok := got.(term.ProtoPair)
	if !ok {
		t.Fatalf("unConstrData produced %T, want ProtoPair", got)
	}
	if mustInt(t, pair.Fst, nil) != 0 {
		t.Errorf("unConstrData tag = %v, want 0", pair.Fst)
	}
}

func TestListDataRoundTrip(t *testing.T) {
	items := term.ProtoList{ElemType: term.TypeData, Items: []term.Constant{
		term.Data{Value: term.PInteger{Value: n64(7)}},
	}}
	d := mustData(t, listData([]term.Constant{items}))
	l, ok := d.(term.PList)
	if !ok || len(l.Items) != 1 {
		t.Fatalf("listData produced %+v", d)
	}
	back, err := unListData([]term.Constant{term.Data{Value: l}})
	if err != nil {
		t.Fatalf("unListData: %v", err)
	}
	pl, ok := back.(term.ProtoList)
	if !ok || len(pl.Items) != 1 {
		t.Fatalf("unListData produced %+v", back)
	}
}

func TestEqualsData(t *testing.T) {
	a := term.Data{Value: term.PInteger{Value: n64(5)}}
	b := term.Data{Value: term.PInteger{Value: n64(5)}}
	c := term.Data{Value: term.PInteger{Value: n64(6)}}
	if !mustBool(t, equalsData([]term.Constant{a, b})) {
		t.Error("equalsData(5,5) = false, want true")
	}
	if mustBool(t, equalsData([]term.Constant{a, c})) {
		t.Error("equalsData(5,6) = true, want false")
	}
}

func TestMkNilDataAndMkPairData(t *testing.T) {
	nilList, ok := mustNoErr(t, mkNilData(nil)).(term.ProtoList)
	if !ok || len(nilList.Items) != 0 {
		t.Fatalf("mkNilData = %+v", nilList)
	}
	pair, ok := mustNoErr(t, mkPairData([]term.Constant{
		term.Data{Value: term.PInteger{Value: n64(1)}},
		term.Data{Value: term.PInteger{Value: n64(2)}},
	})).(term.ProtoPair)
	if !ok {
		t.Fatalf("mkPairData returned %T", pair)
	}
}

func mustNoErr(t *testing.T, c term.Constant, err error) term.Constant {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}
