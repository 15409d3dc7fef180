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

func addInteger(args []term.Constant) (term.Constant, error) {
	a, err := asInteger("addInteger", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asInteger("addInteger", args[1])
	if err != nil {
		return nil, err
	}
	return term.Integer{Value: new(big.Int).Add(a, b)}, nil
}

func subtractInteger(args []term.Constant) (term.Constant, error) {
	a, err := asInteger("subtractInteger", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asInteger("subtractInteger", args[1])
	if err != nil {
		return nil, err
	}
	return term.Integer{Value: new(big.Int).Sub(a, b)}, nil
}

func multiplyInteger(args []term.Constant) (term.Constant, error) {
	a, err := asInteger("multiplyInteger", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asInteger("multiplyInteger", args[1])
	if err != nil {
		return nil, err
	}
	return term.Integer{Value: new(big.Int).Mul(a, b)}, nil
}

// divMod performs Euclidean-style division flooring toward negative infinity
// (divideInteger/modInteger), as opposed to truncating division toward zero
// (quotientInteger/remainderInteger).
func divMod(a, b *big.Int) (q, r *big.Int) {
	q, r = new(big.Int), new(big.Int)
	q.DivMod(a, b, r)
	if b.Sign() < 0 && r.Sign() != 0 {
		q.Sub(q, big.NewInt(1))
		r.Add(r, b)
	}
	return q, r
}

func divideInteger(args []term.Constant) (term.Constant, error) {
	a, err := asInteger("divideInteger", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asInteger("divideInteger", args[1])
	if err != nil {
		return nil, err
	}
	if b.Sign() == 0 {
		return nil, newError("divideInteger", "division by zero: %s / %s", a, b)
	}
	q, _ := divMod(a, b)
	return term.Integer{Value: q}, nil
}

func modInteger(args []term.Constant) (term.Constant, error) {
	a, err := asInteger("modInteger", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asInteger("modInteger", args[1])
	if err != nil {
		return nil, err
	}
	if b.Sign() == 0 {
		return nil, newError("modInteger", "division by zero: %s mod %s", a, b)
	}
	_, r := divMod(a, b)
	return term.Integer{Value: r}, nil
}

func quotientInteger(args []term.Constant) (term.Constant, error) {
	a, err := asInteger("quotientInteger", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asInteger("quotientInteger", args[1])
	if err != nil {
		return nil, err
	}
	if b.Sign() == 0 {
		return nil, newError("quotientInteger", "division by zero: %s / %s", a, b)
	}
	return term.Integer{Value: new(big.Int).Quo(a, b)}, nil
}

func remainderInteger(args []term.Constant) (term.Constant, error) {
	a, err := asInteger("remainderInteger", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asInteger("remainderInteger", args[1])
	if err != nil {
		return nil, err
	}
	if b.Sign() == 0 {
		return nil, newError("remainderInteger", "division by zero: %s rem %s", a, b)
	}
	return term.Integer{Value: new(big.Int).Rem(a, b)}, nil
}

func equalsInteger(args []term.Constant) (term.Constant, error) {
	a, err := asInteger("equalsInteger", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asInteger("equalsInteger", args[1])
	if err != nil {
		return nil, err
	}
	return term.Bool{Value: a.Cmp(b) == 0}, nil
}

func lessThanInteger(args []term.Constant) (term.Constant, error) {
	a, err := asInteger("lessThanInteger", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asInteger("lessThanInteger", args[1])
	if err != nil {
		return nil, err
	}
	return term.Bool{Value: a.Cmp(b) < 0}, nil
}

func lessThanEqualsInteger(args []term.Constant) (term.Constant, error) {
	a, err := asInteger("lessThanEqualsInteger", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asInteger("lessThanEqualsInteger", args[1])
	if err != nil {
		return nil, err
	}
	return term.Bool{Value: a.Cmp(b) <= 0}, nil
}

func expModInteger(args []term.Constant) (term.Constant, error) {
	base, err := asInteger("expModInteger", args[0])
	if err != nil {
		return nil, err
	}
	exp, err := asInteger("expModInteger", args[1])
	if err != nil {
		return nil, err
	}
	modulus, err := asInteger("expModInteger", args[2])
	if err != nil {
		return nil, err
	}
	if modulus.Sign() <= 0 {
		return nil, newError("expModInteger", "modulus must be positive, got %s", modulus)
	}
	if exp.Sign() < 0 {
		inv := new(big.Int).ModInverse(base, modulus)
		if inv == nil {
			return nil, newError("expModInteger", "%s has no inverse mod %s", base, modulus)
		}
		return term.Integer{Value: new(big.Int).Exp(inv, new(big.Int).Neg(exp), modulus)}, nil
	}
	return term.Integer{Value: new(big.Int).Exp(base, exp, modulus)}, nil
}
