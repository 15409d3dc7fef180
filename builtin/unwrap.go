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

	"github.com/probechain/uplc/term"
)

func asInteger(op string, c term.Constant) (*big.Int, error) {
	i, ok := c.(term.Integer)
	if !ok {
		return nil, &TypeMismatchError{Op: op, Expected: term.TypeInteger, Got: c}
	}
	return i.Value, nil
}

func asByteString(op string, c term.Constant) ([]byte, error) {
	b, ok := c.(term.ByteString)
	if !ok {
		return nil, &TypeMismatchError{Op: op, Expected: term.TypeByteString, Got: c}
	}
	return b.Value, nil
}

func asString(op string, c term.Constant) (string, error) {
	s, ok := c.(term.String)
	if !ok {
		return "", &TypeMismatchError{Op: op, Expected: term.TypeString, Got: c}
	}
	return s.Value, nil
}

func asData(op string, c term.Constant) (term.PlutusData, error) {
	d, ok := c.(term.Data)
	if !ok {
		return nil, &TypeMismatchError{Op: op, Expected: term.TypeData, Got: c}
	}
	return d.Value, nil
}

func asG1(op string, c term.Constant) (term.Bls12_381G1Element, error) {
	g, ok := c.(term.Bls12_381G1Element)
	if !ok {
		return term.Bls12_381G1Element{}, &TypeMismatchError{Op: op, Expected: term.TypeG1, Got: c}
	}
	return g, nil
}

func asG2(op string, c term.Constant) (term.Bls12_381G2Element, error) {
	g, ok := c.(term.Bls12_381G2Element)
	if !ok {
		return term.Bls12_381G2Element{}, &TypeMismatchError{Op: op, Expected: term.TypeG2, Got: c}
	}
	return g, nil
}

func asMlResult(op string, c term.Constant) (term.Bls12_381MlResult, error) {
	r, ok := c.(term.Bls12_381MlResult)
	if !ok {
		return term.Bls12_381MlResult{}, &TypeMismatchError{Op: op, Expected: term.TypeMLResult, Got: c}
	}
	return r, nil
}

func fitsUint(op string, i *big.Int) (uint64, error) {
	if i.Sign() < 0 || !i.IsUint64() {
		return 0, newError(op, "%s is not within the bounds of usize", i)
	}
	return i.Uint64(), nil
}

func fitsByte(op string, i *big.Int) (byte, error) {
	if i.Sign() < 0 || i.Cmp(big.NewInt(255)) > 0 {
		return 0, newError(op, "%s is not within the bounds of a byte", i)
	}
	return byte(i.Uint64()), nil
}
