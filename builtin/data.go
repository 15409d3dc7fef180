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
	"github.com/probechain/uplc/term"
)

func constrData(args []term.Constant) (term.Constant, error) {
	tag, err := asInteger("constrData", args[0])
	if err != nil {
		return nil, err
	}
	list, ok := args[1].(term.ProtoList)
	if !ok {
		return nil, &TypeMismatchError{Op: "constrData", Expected: term.ListOf(term.TypeData), Got: args[1]}
	}
	tagU, err := fitsUint("constrData", tag)
	if err != nil {
		return nil, err
	}
	fields := make([]term.PlutusData, len(list.Items))
	for i, item := range list.Items {
		d, err := asData("constrData", item)
		if err != nil {
			return nil, err
		}
		fields[i] = d
	}
	return term.Data{Value: term.PConstr{Tag: tagU, Fields: fields}}, nil
}

func mapData(args []term.Constant) (term.Constant, error) {
	list, ok := args[0].(term.ProtoList)
	if !ok {
		return nil, &TypeMismatchError{Op: "mapData", Expected: term.ListOf(term.PairOf(term.TypeData, term.TypeData)), Got: args[0]}
	}
	pairs := make([]term.PMapEntry, len(list.Items))
	for i, item := range list.Items {
		pair, ok := item.(term.ProtoPair)
		if !ok {
			return nil, &TypeMismatchError{Op: "mapData", Expected: term.PairOf(term.TypeData, term.TypeData), Got: item}
		}
		k, err := asData("mapData", pair.Fst)
		if err != nil {
			return nil, err
		}
		v, err := asData("mapData", pair.Snd)
		if err != nil {
			return nil, err
		}
		pairs[i] = term.PMapEntry{Key: k, Value: v}
	}
	return term.Data{Value: term.PMap{Pairs: pairs}}, nil
}

func listData(args []term.Constant) (term.Constant, error) {
	list, ok := args[0].(term.ProtoList)
	if !ok {
		return nil, &TypeMismatchError{Op: "listData", Expected: term.ListOf(term.TypeData), Got: args[0]}
	}
	items := make([]term.PlutusData, len(list.Items))
	for i, item := range list.Items {
		d, err := asData("listData", item)
		if err != nil {
			return nil, err
		}
		items[i] = d
	}
	return term.Data{Value: term.PList{Items: items}}, nil
}

func iData(args []term.Constant) (term.Constant, error) {
	i, err := asInteger("iData", args[0])
	if err != nil {
		return nil, err
	}
	return term.Data{Value: term.PInteger{Value: i}}, nil
}

func bData(args []term.Constant) (term.Constant, error) {
	b, err := asByteString("bData", args[0])
	if err != nil {
		return nil, err
	}
	return term.Data{Value: term.PBytes{Value: b}}, nil
}

func unConstrData(args []term.Constant) (term.Constant, error) {
	d, err := asData("unConstrData", args[0])
	if err != nil {
		return nil, err
	}
	c, ok := d.(term.PConstr)
	if !ok {
		return nil, newError("unConstrData", "expected a Constr, got %s", d)
	}
	fields := make([]term.Constant, len(c.Fields))
	for i, f := range c.Fields {
		fields[i] = term.Data{Value: f}
	}
	return term.ProtoPair{
		FstType: term.TypeInteger, SndType: term.ListOf(term.TypeData),
		Fst: term.NewInteger(int64(c.Tag)),
		Snd: term.ProtoList{ElemType: term.TypeData, Items: fields},
	}, nil
}

func unMapData(args []term.Constant) (term.Constant, error) {
	d, err := asData("unMapData", args[0])
	if err != nil {
		return nil, err
	}
	m, ok := d.(term.PMap)
	if !ok {
		return nil, newError("unMapData", "expected a Map, got %s", d)
	}
	pairType := term.PairOf(term.TypeData, term.TypeData)
	items := make([]term.Constant, len(m.Pairs))
	for i, p := range m.Pairs {
		items[i] = term.ProtoPair{
			FstType: term.TypeData, SndType: term.TypeData,
			Fst: term.Data{Value: p.Key}, Snd: term.Data{Value: p.Value},
		}
	}
	return term.ProtoList{ElemType: pairType, Items: items}, nil
}

func unListData(args []term.Constant) (term.Constant, error) {
	d, err := asData("unListData", args[0])
	if err != nil {
		return nil, err
	}
	l, ok := d.(term.PList)
	if !ok {
		return nil, newError("unListData", "expected a List, got %s", d)
	}
	items := make([]term.Constant, len(l.Items))
	for i, it := range l.Items {
		items[i] = term.Data{Value: it}
	}
	return term.ProtoList{ElemType: term.TypeData, Items: items}, nil
}

func unIData(args []term.Constant) (term.Constant, error) {
	d, err := asData("unIData", args[0])
	if err != nil {
		return nil, err
	}
	i, ok := d.(term.PInteger)
	if !ok {
		return nil, newError("unIData", "expected an Integer, got %s", d)
	}
	return term.Integer{Value: i.Value}, nil
}

func unBData(args []term.Constant) (term.Constant, error) {
	d, err := asData("unBData", args[0])
	if err != nil {
		return nil, err
	}
	b, ok := d.(term.PBytes)
	if !ok {
		return nil, newError("unBData", "expected a ByteString, got %s", d)
	}
	return term.ByteString{Value: b.Value}, nil
}

func equalsData(args []term.Constant) (term.Constant, error) {
	a, err := asData("equalsData", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asData("equalsData", args[1])
	if err != nil {
		return nil, err
	}
	return term.Bool{Value: term.EqualsData(a, b)}, nil
}

func serialiseData(args []term.Constant) (term.Constant, error) {
	d, err := asData("serialiseData", args[0])
	if err != nil {
		return nil, err
	}
	blob, err := term.MarshalCBOR(d)
	if err != nil {
		return nil, newError("serialiseData", "%v", err)
	}
	return term.ByteString{Value: blob}, nil
}

func mkPairData(args []term.Constant) (term.Constant, error) {
	a, err := asData("mkPairData", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asData("mkPairData", args[1])
	if err != nil {
		return nil, err
	}
	return term.ProtoPair{
		FstType: term.TypeData, SndType: term.TypeData,
		Fst: term.Data{Value: a}, Snd: term.Data{Value: b},
	}, nil
}

func mkNilData([]term.Constant) (term.Constant, error) {
	return term.ProtoList{ElemType: term.TypeData, Items: nil}, nil
}

func mkNilPairData([]term.Constant) (term.Constant, error) {
	return term.ProtoList{ElemType: term.PairOf(term.TypeData, term.TypeData), Items: nil}, nil
}
