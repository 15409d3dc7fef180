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

// EncodeProgram is the inverse of DecodeProgram. It exists primarily to
// support round-trip testing of the decoder; real validators only ever
// consume flat bytes produced off-chain, never produce them on-chain.
func EncodeProgram(p *DecodedProgram, binder Binder) ([]byte, error) {
	e := NewEncoder()
	e.Word(p.Major).Word(p.Minor).Word(p.Patch)
	if err := encodeTerm(e, p.Term, binder, nil); err != nil {
		return nil, err
	}
	e.Filler()
	return e.Bytes(), nil
}

func encodeTerm(e *Encoder, t term.Term, binder Binder, scope []string) error {
	switch v := t.(type) {
	case term.Var:
		e.Bits(TermTagWidth, TagVar)
		return binder.EncodeVar(e, v.Index, scope)
	case term.Delay:
		e.Bits(TermTagWidth, TagDelay)
		return encodeTerm(e, v.Body, binder, scope)
	case term.Lambda:
		e.Bits(TermTagWidth, TagLambda)
		if err := binder.EncodeParameter(e, v.Parameter, scope); err != nil {
			return err
		}
		return encodeTerm(e, v.Body, binder, append(scope, v.Parameter))
	case term.Apply:
		e.Bits(TermTagWidth, TagApply)
		if err := encodeTerm(e, v.Function, binder, scope); err != nil {
			return err
		}
		return encodeTerm(e, v.Argument, binder, scope)
	case term.ConstantTerm:
		e.Bits(TermTagWidth, TagConstant)
		return encodeConstant(e, v.Value)
	case term.Force:
		e.Bits(TermTagWidth, TagForce)
		return encodeTerm(e, v.Body, binder, scope)
	case term.ErrorTerm:
		e.Bits(TermTagWidth, TagError)
		return nil
	case term.BuiltinTerm:
		e.Bits(TermTagWidth, TagBuiltin)
		if int(v.Function) >= term.NumDefaultFunctions() {
			return &OverflowError{Value: uint64(v.Function), NumBits: BuiltinTagWidth}
		}
		e.Bits(BuiltinTagWidth, byte(v.Function))
		return nil
	case term.Constr:
		e.Bits(TermTagWidth, TagConstr)
		e.Word(v.Tag)
		return encodeTermList(e, v.Fields, binder, scope)
	case term.Case:
		e.Bits(TermTagWidth, TagCase)
		if err := encodeTerm(e, v.Subject, binder, scope); err != nil {
			return err
		}
		return encodeTermList(e, v.Branches, binder, scope)
	default:
		return fmt.Errorf("flat: unknown term variant %T", t)
	}
}

func encodeTermList(e *Encoder, items []term.Term, binder Binder, scope []string) error {
	for _, it := range items {
		e.Bool(true)
		if err := encodeTerm(e, it, binder, scope); err != nil {
			return err
		}
	}
	e.Bool(false)
	return nil
}

func encodeConstant(e *Encoder, c term.Constant) error {
	if err := encodeType(e, c.Type()); err != nil {
		return err
	}
	return encodeConstantPayload(e, c)
}

func encodeType(e *Encoder, typ *term.Type) error {
	switch typ.Kind {
	case term.KindInteger:
		e.Bits(ConstTagWidth, TypeTagInteger)
	case term.KindByteString:
		e.Bits(ConstTagWidth, TypeTagByteString)
	case term.KindString:
		e.Bits(ConstTagWidth, TypeTagString)
	case term.KindUnit:
		e.Bits(ConstTagWidth, TypeTagUnit)
	case term.KindBool:
		e.Bits(ConstTagWidth, TypeTagBool)
	case term.KindData:
		e.Bits(ConstTagWidth, TypeTagData)
	case term.KindList:
		e.Bits(ConstTagWidth, TypeTagApply)
		e.Bits(ConstTagWidth, TypeTagList)
		return encodeType(e, typ.Elem)
	case term.KindPair:
		e.Bits(ConstTagWidth, TypeTagApply)
		e.Bits(ConstTagWidth, TypeTagPair)
		if err := encodeType(e, typ.Fst); err != nil {
			return err
		}
		return encodeType(e, typ.Snd)
	default:
		return ErrBlsUnsupported
	}
	return nil
}

func encodeConstantPayload(e *Encoder, c term.Constant) error {
	switch v := c.(type) {
	case term.Integer:
		e.Integer(v.Value)
		return nil
	case term.ByteString:
		return e.WriteBytes(v.Value)
	case term.String:
		return e.WriteBytes([]byte(v.Value))
	case term.Unit:
		return nil
	case term.Bool:
		e.Bool(v.Value)
		return nil
	case term.ProtoList:
		for _, item := range v.Items {
			e.Bool(true)
			if err := encodeConstantPayload(e, item); err != nil {
				return err
			}
		}
		e.Bool(false)
		return nil
	case term.ProtoPair:
		if err := encodeConstantPayload(e, v.Fst); err != nil {
			return err
		}
		return encodeConstantPayload(e, v.Snd)
	case term.Data:
		blob, err := term.MarshalCBOR(v.Value)
		if err != nil {
			return fmt.Errorf("flat: encode data: %w", err)
		}
		return e.WriteBytes(blob)
	default:
		return ErrBlsUnsupported
	}
}
