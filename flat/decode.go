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
	"fmt"

	"github.com/probechain/uplc/term"
)

// DecodedProgram is the result of decoding a flat buffer: the three-part
// version number plus the decoded Term (spec §4.2 "Program layout").
type DecodedProgram struct {
	Major, Minor, Patch uint64
	Term                term.Term
}

// DecodeProgram decodes a full flat buffer using the given Binder strategy.
func DecodeProgram(buf []byte, binder Binder) (*DecodedProgram, error) {
	d := NewDecoder(buf)
	major, err := d.Word()
	if err != nil {
		return nil, err
	}
	minor, err := d.Word()
	if err != nil {
		return nil, err
	}
	patch, err := d.Word()
	if err != nil {
		return nil, err
	}
	t, err := decodeTerm(d, binder, nil)
	if err != nil {
		return nil, err
	}
	if err := d.Filler(); err != nil {
		return nil, err
	}
	return &DecodedProgram{Major: major, Minor: minor, Patch: patch, Term: t}, nil
}

func decodeTerm(d *Decoder, binder Binder, scope []string) (term.Term, error) {
	tag, err := d.Bits8(TermTagWidth)
	if err != nil {
		return nil, err
	}
	switch tag {
	case TagVar:
		idx, err := binder.DecodeVar(d, scope)
		if err != nil {
			return nil, err
		}
		return term.Var{Index: idx}, nil
	case TagDelay:
		body, err := decodeTerm(d, binder, scope)
		if err != nil {
			return nil, err
		}
		return term.Delay{Body: body}, nil
	case TagLambda:
		name, err := binder.DecodeParameter(d, scope)
		if err != nil {
			return nil, err
		}
		body, err := decodeTerm(d, binder, append(scope, name))
		if err != nil {
			return nil, err
		}
		return term.Lambda{Parameter: name, Body: body}, nil
	case TagApply:
		fn, err := decodeTerm(d, binder, scope)
		if err != nil {
			return nil, err
		}
		arg, err := decodeTerm(d, binder, scope)
		if err != nil {
			return nil, err
		}
		return term.Apply{Function: fn, Argument: arg}, nil
	case TagConstant:
		c, err := decodeConstant(d)
		if err != nil {
			return nil, err
		}
		return term.ConstantTerm{Value: c}, nil
	case TagForce:
		body, err := decodeTerm(d, binder, scope)
		if err != nil {
			return nil, err
		}
		return term.Force{Body: body}, nil
	case TagError:
		return term.ErrorTerm{}, nil
	case TagBuiltin:
		b, err := d.Bits8(BuiltinTagWidth)
		if err != nil {
			return nil, err
		}
		if int(b) >= term.NumDefaultFunctions() {
			return nil, &UnknownTermConstructorError{Tag: int(b)}
		}
		return term.BuiltinTerm{Function: term.DefaultFunction(b)}, nil
	case TagConstr:
		w, err := d.Word()
		if err != nil {
			return nil, err
		}
		fields, err := decodeTermList(d, binder, scope)
		if err != nil {
			return nil, err
		}
		return term.Constr{Tag: w, Fields: fields}, nil
	case TagCase:
		subject, err := decodeTerm(d, binder, scope)
		if err != nil {
			return nil, err
		}
		branches, err := decodeTermList(d, binder, scope)
		if err != nil {
			return nil, err
		}
		return term.Case{Subject: subject, Branches: branches}, nil
	default:
		return nil, &UnknownTermConstructorError{Tag: int(tag)}
	}
}

// decodeTermList decodes the list_with(decode_elem) cons-cell encoding: a 1
// bit then an element, repeated, terminated by a 0 bit.
func decodeTermList(d *Decoder, binder Binder, scope []string) ([]term.Term, error) {
	var out []term.Term
	for {
		more, err := d.Bit()
		if err != nil {
			return nil, err
		}
		if !more {
			return out, nil
		}
		t, err := decodeTerm(d, binder, scope)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
}

// decodeConstant decodes one constant's type-tag path, then its payload.
func decodeConstant(d *Decoder) (term.Constant, error) {
	typ, tags, err := decodeTypeTagPath(d)
	if err != nil {
		return nil, err
	}
	c, err := decodeConstantPayload(d, typ)
	if err != nil {
		return nil, &UnknownConstantConstructorError{Tags: tags}
	}
	return c, nil
}

// decodeTypeTagPath decodes the recursive 4-bit type-tag list and resolves it
// to a single term.Type (spec §4.2).
func decodeTypeTagPath(d *Decoder) (*term.Type, []int, error) {
	var tags []int
	typ, err := decodeOneType(d, &tags)
	if err != nil {
		return nil, tags, err
	}
	return typ, tags, nil
}

func decodeOneType(d *Decoder, tags *[]int) (*term.Type, error) {
	tag, err := d.Bits8(ConstTagWidth)
	if err != nil {
		return nil, err
	}
	*tags = append(*tags, int(tag))
	switch tag {
	case TypeTagInteger:
		return term.TypeInteger, nil
	case TypeTagByteString:
		return term.TypeByteString, nil
	case TypeTagString:
		return term.TypeString, nil
	case TypeTagUnit:
		return term.TypeUnit, nil
	case TypeTagBool:
		return term.TypeBool, nil
	case TypeTagData:
		return term.TypeData, nil
	case TypeTagApply:
		ctor, err := d.Bits8(ConstTagWidth)
		if err != nil {
			return nil, err
		}
		*tags = append(*tags, int(ctor))
		switch ctor {
		case TypeTagList:
			elem, err := decodeOneType(d, tags)
			if err != nil {
				return nil, err
			}
			return term.ListOf(elem), nil
		case TypeTagPair:
			fst, err := decodeOneType(d, tags)
			if err != nil {
				return nil, err
			}
			snd, err := decodeOneType(d, tags)
			if err != nil {
				return nil, err
			}
			return term.PairOf(fst, snd), nil
		default:
			return nil, &UnknownTypeTagsError{Tags: *tags}
		}
	default:
		return nil, &UnknownTypeTagsError{Tags: *tags}
	}
}

func decodeConstantPayload(d *Decoder, typ *term.Type) (term.Constant, error) {
	switch typ.Kind {
	case term.KindInteger:
		v, err := d.Integer()
		if err != nil {
			return nil, err
		}
		return term.Integer{Value: v}, nil
	case term.KindByteString:
		b, err := d.Bytes()
		if err != nil {
			return nil, err
		}
		return term.ByteString{Value: b}, nil
	case term.KindString:
		b, err := d.Bytes()
		if err != nil {
			return nil, err
		}
		return term.String{Value: string(b)}, nil
	case term.KindUnit:
		return term.Unit{}, nil
	case term.KindBool:
		v, err := d.Bit()
		if err != nil {
			return nil, err
		}
		return term.Bool{Value: v}, nil
	case term.KindList:
		var items []term.Constant
		for {
			more, err := d.Bit()
			if err != nil {
				return nil, err
			}
			if !more {
				break
			}
			item, err := decodeConstantPayload(d, typ.Elem)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return term.ProtoList{ElemType: typ.Elem, Items: items}, nil
	case term.KindPair:
		fst, err := decodeConstantPayload(d, typ.Fst)
		if err != nil {
			return nil, err
		}
		snd, err := decodeConstantPayload(d, typ.Snd)
		if err != nil {
			return nil, err
		}
		return term.ProtoPair{FstType: typ.Fst, SndType: typ.Snd, Fst: fst, Snd: snd}, nil
	case term.KindData:
		blob, err := d.Bytes()
		if err != nil {
			return nil, err
		}
		pd, err := term.UnmarshalCBOR(blob)
		if err != nil {
			return nil, fmt.Errorf("flat: decode data: %w", err)
		}
		return term.Data{Value: pd}, nil
	case term.KindG1, term.KindG2, term.KindMLResult:
		return nil, ErrBlsUnsupported
	default:
		return nil, ErrMissingTypeTag
	}
}
