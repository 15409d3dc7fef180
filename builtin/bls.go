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
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/probechain/uplc/term"
)

// maxDstSize bounds the domain-separation tag accepted by the hash-to-group
// builtins (spec §7 "HashToCurveDstTooBig").
const maxDstSize = 255

func decompressG1(g term.Bls12_381G1Element) (bls12381.G1Affine, error) {
	var p bls12381.G1Affine
	if _, err := p.SetBytes(g.Compressed[:]); err != nil {
		return p, newError("bls12_381_G1", "%v", err)
	}
	return p, nil
}

func decompressG2(g term.Bls12_381G2Element) (bls12381.G2Affine, error) {
	var p bls12381.G2Affine
	if _, err := p.SetBytes(g.Compressed[:]); err != nil {
		return p, newError("bls12_381_G2", "%v", err)
	}
	return p, nil
}

func compressG1(p bls12381.G1Affine) term.Bls12_381G1Element {
	b := p.Bytes()
	return term.Bls12_381G1Element{Compressed: b}
}

func compressG2(p bls12381.G2Affine) term.Bls12_381G2Element {
	b := p.Bytes()
	return term.Bls12_381G2Element{Compressed: b}
}

func bls12_381G1Add(args []term.Constant) (term.Constant, error) {
	a, err := asG1("bls12_381_G1_add", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asG1("bls12_381_G1_add", args[1])
	if err != nil {
		return nil, err
	}
	pa, err := decompressG1(a)
	if err != nil {
		return nil, err
	}
	pb, err := decompressG1(b)
	if err != nil {
		return nil, err
	}
	var sum bls12381.G1Jac
	sum.FromAffine(&pa)
	var pbJac bls12381.G1Jac
	pbJac.FromAffine(&pb)
	sum.AddAssign(&pbJac)
	var out bls12381.G1Affine
	out.FromJacobian(&sum)
	return compressG1(out), nil
}

func bls12_381G1Neg(args []term.Constant) (term.Constant, error) {
	a, err := asG1("bls12_381_G1_neg", args[0])
	if err != nil {
		return nil, err
	}
	pa, err := decompressG1(a)
	if err != nil {
		return nil, err
	}
	pa.Neg(&pa)
	return compressG1(pa), nil
}

func bls12_381G1ScalarMul(args []term.Constant) (term.Constant, error) {
	scalar, err := asInteger("bls12_381_G1_scalarMul", args[0])
	if err != nil {
		return nil, err
	}
	g, err := asG1("bls12_381_G1_scalarMul", args[1])
	if err != nil {
		return nil, err
	}
	pg, err := decompressG1(g)
	if err != nil {
		return nil, err
	}
	pg.ScalarMultiplication(&pg, scalar)
	return compressG1(pg), nil
}

func bls12_381G1Equal(args []term.Constant) (term.Constant, error) {
	a, err := asG1("bls12_381_G1_equal", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asG1("bls12_381_G1_equal", args[1])
	if err != nil {
		return nil, err
	}
	return term.Bool{Value: a.Compressed == b.Compressed}, nil
}

func bls12_381G1HashToGroup(args []term.Constant) (term.Constant, error) {
	msg, err := asByteString("bls12_381_G1_hashToGroup", args[0])
	if err != nil {
		return nil, err
	}
	dst, err := asByteString("bls12_381_G1_hashToGroup", args[1])
	if err != nil {
		return nil, err
	}
	if len(dst) > maxDstSize {
		return nil, newError("bls12_381_G1_hashToGroup", "domain separation tag exceeds %d bytes", maxDstSize)
	}
	p, err := bls12381.HashToG1(msg, dst)
	if err != nil {
		return nil, newError("bls12_381_G1_hashToGroup", "%v", err)
	}
	return compressG1(p), nil
}

func bls12_381G1Compress(args []term.Constant) (term.Constant, error) {
	g, err := asG1("bls12_381_G1_compress", args[0])
	if err != nil {
		return nil, err
	}
	return term.ByteString{Value: g.Compressed[:]}, nil
}

func bls12_381G1Uncompress(args []term.Constant) (term.Constant, error) {
	b, err := asByteString("bls12_381_G1_uncompress", args[0])
	if err != nil {
		return nil, err
	}
	if len(b) != 48 {
		return nil, newError("bls12_381_G1_uncompress", "expected 48 bytes, got %d", len(b))
	}
	var g term.Bls12_381G1Element
	copy(g.Compressed[:], b)
	if _, err := decompressG1(g); err != nil {
		return nil, err
	}
	return g, nil
}

func bls12_381G2Add(args []term.Constant) (term.Constant, error) {
	a, err := asG2("bls12_381_G2_add", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asG2("bls12_381_G2_add", args[1])
	if err != nil {
		return nil, err
	}
	pa, err := decompressG2(a)
	if err != nil {
		return nil, err
	}
	pb, err := decompressG2(b)
	if err != nil {
		return nil, err
	}
	var sum bls12381.G2Jac
	sum.FromAffine(&pa)
	var pbJac bls12381.G2Jac
	pbJac.FromAffine(&pb)
	sum.AddAssign(&pbJac)
	var out bls12381.G2Affine
	out.FromJacobian(&sum)
	return compressG2(out), nil
}

func bls12_381G2Neg(args []term.Constant) (term.Constant, error) {
	a, err := asG2("bls12_381_G2_neg", args[0])
	if err != nil {
		return nil, err
	}
	pa, err := decompressG2(a)
	if err != nil {
		return nil, err
	}
	pa.Neg(&pa)
	return compressG2(pa), nil
}

func bls12_381G2ScalarMul(args []term.Constant) (term.Constant, error) {
	scalar, err := asInteger("bls12_381_G2_scalarMul", args[0])
	if err != nil {
		return nil, err
	}
	g, err := asG2("bls12_381_G2_scalarMul", args[1])
	if err != nil {
		return nil, err
	}
	pg, err := decompressG2(g)
	if err != nil {
		return nil, err
	}
	pg.ScalarMultiplication(&pg, scalar)
	return compressG2(pg), nil
}

func bls12_381G2Equal(args []term.Constant) (term.Constant, error) {
	a, err := asG2("bls12_381_G2_equal", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asG2("bls12_381_G2_equal", args[1])
	if err != nil {
		return nil, err
	}
	return term.Bool{Value: a.Compressed == b.Compressed}, nil
}

func bls12_381G2HashToGroup(args []term.Constant) (term.Constant, error) {
	msg, err := asByteString("bls12_381_G2_hashToGroup", args[0])
	if err != nil {
		return nil, err
	}
	dst, err := asByteString("bls12_381_G2_hashToGroup", args[1])
	if err != nil {
		return nil, err
	}
	if len(dst) > maxDstSize {
		return nil, newError("bls12_381_G2_hashToGroup", "domain separation tag exceeds %d bytes", maxDstSize)
	}
	p, err := bls12381.HashToG2(msg, dst)
	if err != nil {
		return nil, newError("bls12_381_G2_hashToGroup", "%v", err)
	}
	return compressG2(p), nil
}

func bls12_381G2Compress(args []term.Constant) (term.Constant, error) {
	g, err := asG2("bls12_381_G2_compress", args[0])
	if err != nil {
		return nil, err
	}
	return term.ByteString{Value: g.Compressed[:]}, nil
}

func bls12_381G2Uncompress(args []term.Constant) (term.Constant, error) {
	b, err := asByteString("bls12_381_G2_uncompress", args[0])
	if err != nil {
		return nil, err
	}
	if len(b) != 96 {
		return nil, newError("bls12_381_G2_uncompress", "expected 96 bytes, got %d", len(b))
	}
	var g term.Bls12_381G2Element
	copy(g.Compressed[:], b)
	if _, err := decompressG2(g); err != nil {
		return nil, err
	}
	return g, nil
}

func bls12_381MillerLoop(args []term.Constant) (term.Constant, error) {
	g1, err := asG1("bls12_381_millerLoop", args[0])
	if err != nil {
		return nil, err
	}
	g2, err := asG2("bls12_381_millerLoop", args[1])
	if err != nil {
		return nil, err
	}
	p1, err := decompressG1(g1)
	if err != nil {
		return nil, err
	}
	p2, err := decompressG2(g2)
	if err != nil {
		return nil, err
	}
	ml, err := bls12381.MillerLoop([]bls12381.G1Affine{p1}, []bls12381.G2Affine{p2})
	if err != nil {
		return nil, newError("bls12_381_millerLoop", "%v", err)
	}
	b := ml.Bytes()
	var out term.Bls12_381MlResult
	copy(out.Value[:], b[:])
	return out, nil
}

func bls12_381MulMlResult(args []term.Constant) (term.Constant, error) {
	a, err := asMlResult("bls12_381_mulMlResult", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asMlResult("bls12_381_mulMlResult", args[1])
	if err != nil {
		return nil, err
	}
	var ga, gb bls12381.GT
	if err := ga.SetBytes(a.Value[:]); err != nil {
		return nil, newError("bls12_381_mulMlResult", "%v", err)
	}
	if err := gb.SetBytes(b.Value[:]); err != nil {
		return nil, newError("bls12_381_mulMlResult", "%v", err)
	}
	ga.Mul(&ga, &gb)
	out := ga.Bytes()
	var res term.Bls12_381MlResult
	copy(res.Value[:], out[:])
	return res, nil
}

func bls12_381FinalVerify(args []term.Constant) (term.Constant, error) {
	a, err := asMlResult("bls12_381_finalVerify", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asMlResult("bls12_381_finalVerify", args[1])
	if err != nil {
		return nil, err
	}
	var ga, gb bls12381.GT
	if err := ga.SetBytes(a.Value[:]); err != nil {
		return nil, newError("bls12_381_finalVerify", "%v", err)
	}
	if err := gb.SetBytes(b.Value[:]); err != nil {
		return nil, newError("bls12_381_finalVerify", "%v", err)
	}
	return term.Bool{Value: ga.Equal(&gb)}, nil
}
