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

// Package builtin implements the UPLC default functions whose entire
// signature is Constant in, Constant out (spec §4.5): arithmetic,
// bytestring, bitwise, string, hashing and signature verification, BLS12-381
// curve operations, and PlutusData construction/destructuring.
//
// A handful of builtins are deliberately left out of this package because
// they operate on machine.Value rather than term.Constant — ifThenElse,
// chooseUnit, trace, fstPair, sndPair, chooseList, mkCons, headList,
// tailList, nullList, and chooseData all need to inspect or produce
// Lambda/Delay/Builtin values, not just constants, so package machine
// implements them directly rather than importing a half-applicable builtin
// table. That split is also what keeps builtin from ever needing to import
// machine: the dependency only runs one way.
package builtin

import "github.com/probechain/uplc/term"

// Func is the signature every entry in Table implements: a builtin's
// arguments arrive pre-evaluated to constants, in application order.
type Func func(args []term.Constant) (term.Constant, error)

// Table maps each Constant-only DefaultFunction to its implementation.
// Builtins handled by package machine are absent from this table; Dispatch
// reports them via its bool return rather than panicking, so callers can
// fall through to their own polymorphic handling.
var Table = map[term.DefaultFunction]Func{
	term.AddInteger:            addInteger,
	term.SubtractInteger:       subtractInteger,
	term.MultiplyInteger:       multiplyInteger,
	term.DivideInteger:         divideInteger,
	term.QuotientInteger:       quotientInteger,
	term.RemainderInteger:      remainderInteger,
	term.ModInteger:            modInteger,
	term.EqualsInteger:         equalsInteger,
	term.LessThanInteger:       lessThanInteger,
	term.LessThanEqualsInteger: lessThanEqualsInteger,

	term.AppendByteString:         appendByteString,
	term.ConsByteString:           consByteString,
	term.SliceByteString:          sliceByteString,
	term.LengthOfByteString:       lengthOfByteString,
	term.IndexByteString:          indexByteString,
	term.EqualsByteString:         equalsByteString,
	term.LessThanByteString:       lessThanByteString,
	term.LessThanEqualsByteString: lessThanEqualsByteString,

	term.Sha2_256:               sha2_256,
	term.Sha3_256:               sha3_256,
	term.Blake2b_256:            blake2b_256,
	term.VerifyEd25519Signature: verifyEd25519Signature,

	term.AppendString: appendString,
	term.EqualsString:  equalsString,
	term.EncodeUtf8:    encodeUtf8,
	term.DecodeUtf8:    decodeUtf8,

	term.ConstrData:   constrData,
	term.MapData:       mapData,
	term.ListData:      listData,
	term.IData:         iData,
	term.BData:         bData,
	term.UnConstrData:  unConstrData,
	term.UnMapData:     unMapData,
	term.UnListData:    unListData,
	term.UnIData:       unIData,
	term.UnBData:       unBData,
	term.EqualsData:    equalsData,

	term.MkPairData:    mkPairData,
	term.MkNilData:     mkNilData,
	term.MkNilPairData: mkNilPairData,

	term.SerialiseData: serialiseData,

	term.VerifyEcdsaSecp256k1Signature:   verifyEcdsaSecp256k1Signature,
	term.VerifySchnorrSecp256k1Signature: verifySchnorrSecp256k1Signature,

	term.Bls12_381_G1_add:         bls12_381G1Add,
	term.Bls12_381_G1_neg:         bls12_381G1Neg,
	term.Bls12_381_G1_scalarMul:   bls12_381G1ScalarMul,
	term.Bls12_381_G1_equal:       bls12_381G1Equal,
	term.Bls12_381_G1_hashToGroup: bls12_381G1HashToGroup,
	term.Bls12_381_G1_compress:    bls12_381G1Compress,
	term.Bls12_381_G1_uncompress:  bls12_381G1Uncompress,

	term.Bls12_381_G2_add:         bls12_381G2Add,
	term.Bls12_381_G2_neg:         bls12_381G2Neg,
	term.Bls12_381_G2_scalarMul:   bls12_381G2ScalarMul,
	term.Bls12_381_G2_equal:       bls12_381G2Equal,
	term.Bls12_381_G2_hashToGroup: bls12_381G2HashToGroup,
	term.Bls12_381_G2_compress:    bls12_381G2Compress,
	term.Bls12_381_G2_uncompress:  bls12_381G2Uncompress,

	term.Bls12_381_millerLoop:  bls12_381MillerLoop,
	term.Bls12_381_mulMlResult: bls12_381MulMlResult,
	term.Bls12_381_finalVerify: bls12_381FinalVerify,

	term.Keccak_256:  keccak_256,
	term.Blake2b_224: blake2b_224,

	term.IntegerToByteString: integerToByteString,
	term.ByteStringToInteger: byteStringToInteger,

	term.AndByteString:        andByteString,
	term.OrByteString:         orByteString,
	term.XorByteString:        xorByteString,
	term.ComplementByteString: complementByteString,
	term.ReadBit:              readBit,
	term.WriteBits:            writeBits,
	term.ReplicateByte:        replicateByte,
	term.ShiftByteString:      shiftByteString,
	term.RotateByteString:     rotateByteString,
	term.CountSetBits:         countSetBits,
	term.FindFirstSetBit:      findFirstSetBit,

	term.Ripemd_160: ripemd_160,

	term.ExpModInteger: expModInteger,

	term.ListToArray:   listToArray,
	term.LengthOfArray: lengthOfArray,
	term.IndexArray:    indexArray,
}

// Dispatch looks up and invokes the Constant-only implementation of f. The
// bool result is false when f is one of the Value-polymorphic builtins that
// package machine handles itself; in that case args and the error result are
// unused and the caller must fall through to its own dispatch.
func Dispatch(f term.DefaultFunction, args []term.Constant) (term.Constant, bool, error) {
	fn, ok := Table[f]
	if !ok {
		return nil, false, nil
	}
	v, err := fn(args)
	return v, true, err
}
