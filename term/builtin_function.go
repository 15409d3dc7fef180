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

package term

import "fmt"

// DefaultFunction is the closed enumeration of UPLC builtin functions (spec
// §4.5). It lives in package term, alongside Type and Constant, rather than
// in package builtin: Term's Builtin(f) variant needs the identifier, and
// putting the enum in builtin instead would make term import builtin while
// builtin already must import term for Value construction — the same
// avoid-the-cycle move probe-lang makes by keeping token.Type out of the
// lexer package that produces tokens.
type DefaultFunction int

const (
	AddInteger DefaultFunction = iota
	SubtractInteger
	MultiplyInteger
	DivideInteger
	QuotientInteger
	RemainderInteger
	ModInteger
	EqualsInteger
	LessThanInteger
	LessThanEqualsInteger

	AppendByteString
	ConsByteString
	SliceByteString
	LengthOfByteString
	IndexByteString
	EqualsByteString
	LessThanByteString
	LessThanEqualsByteString

	Sha2_256
	Sha3_256
	Blake2b_256
	VerifyEd25519Signature

	AppendString
	EqualsString
	EncodeUtf8
	DecodeUtf8

	IfThenElse
	ChooseUnit
	Trace
	FstPair
	SndPair
	ChooseList
	MkCons
	HeadList
	TailList
	NullList

	ChooseData
	ConstrData
	MapData
	ListData
	IData
	BData
	UnConstrData
	UnMapData
	UnListData
	UnIData
	UnBData
	EqualsData

	MkPairData
	MkNilData
	MkNilPairData

	SerialiseData

	VerifyEcdsaSecp256k1Signature
	VerifySchnorrSecp256k1Signature

	Bls12_381_G1_add
	Bls12_381_G1_neg
	Bls12_381_G1_scalarMul
	Bls12_381_G1_equal
	Bls12_381_G1_hashToGroup
	Bls12_381_G1_compress
	Bls12_381_G1_uncompress

	Bls12_381_G2_add
	Bls12_381_G2_neg
	Bls12_381_G2_scalarMul
	Bls12_381_G2_equal
	Bls12_381_G2_hashToGroup
	Bls12_381_G2_compress
	Bls12_381_G2_uncompress

	Bls12_381_millerLoop
	Bls12_381_mulMlResult
	Bls12_381_finalVerify

	Keccak_256
	Blake2b_224

	IntegerToByteString
	ByteStringToInteger

	AndByteString
	OrByteString
	XorByteString
	ComplementByteString
	ReadBit
	WriteBits
	ReplicateByte
	ShiftByteString
	RotateByteString
	CountSetBits
	FindFirstSetBit

	Ripemd_160

	ExpModInteger

	ListToArray
	LengthOfArray
	IndexArray

	numDefaultFunctions
)

type builtinInfo struct {
	name   string
	forces int
	arity  int
}

// builtinTable is indexed by DefaultFunction and carries the two pieces of
// fixed metadata the CEK machine and the flat decoder both need before a
// single argument is ever evaluated: how many Force steps precede the
// arguments (to resolve polymorphism) and how many arguments follow.
var builtinTable = [numDefaultFunctions]builtinInfo{
	AddInteger:             {"addInteger", 0, 2},
	SubtractInteger:        {"subtractInteger", 0, 2},
	MultiplyInteger:        {"multiplyInteger", 0, 2},
	DivideInteger:          {"divideInteger", 0, 2},
	QuotientInteger:        {"quotientInteger", 0, 2},
	RemainderInteger:       {"remainderInteger", 0, 2},
	ModInteger:             {"modInteger", 0, 2},
	EqualsInteger:          {"equalsInteger", 0, 2},
	LessThanInteger:        {"lessThanInteger", 0, 2},
	LessThanEqualsInteger:  {"lessThanEqualsInteger", 0, 2},

	AppendByteString:        {"appendByteString", 0, 2},
	ConsByteString:          {"consByteString", 0, 2},
	SliceByteString:         {"sliceByteString", 0, 3},
	LengthOfByteString:      {"lengthOfByteString", 0, 1},
	IndexByteString:         {"indexByteString", 0, 2},
	EqualsByteString:        {"equalsByteString", 0, 2},
	LessThanByteString:      {"lessThanByteString", 0, 2},
	LessThanEqualsByteString: {"lessThanEqualsByteString", 0, 2},

	Sha2_256:                {"sha2_256", 0, 1},
	Sha3_256:                {"sha3_256", 0, 1},
	Blake2b_256:             {"blake2b_256", 0, 1},
	VerifyEd25519Signature:  {"verifyEd25519Signature", 0, 3},

	AppendString: {"appendString", 0, 2},
	EqualsString: {"equalsString", 0, 2},
	EncodeUtf8:   {"encodeUtf8", 0, 1},
	DecodeUtf8:   {"decodeUtf8", 0, 1},

	IfThenElse: {"ifThenElse", 1, 3},
	ChooseUnit: {"chooseUnit", 1, 2},
	Trace:      {"trace", 1, 2},
	FstPair:    {"fstPair", 2, 1},
	SndPair:    {"sndPair", 2, 1},
	ChooseList: {"chooseList", 2, 3},
	MkCons:     {"mkCons", 1, 2},
	HeadList:   {"headList", 1, 1},
	TailList:   {"tailList", 1, 1},
	NullList:   {"nullList", 1, 1},

	ChooseData:   {"chooseData", 1, 6},
	ConstrData:   {"constrData", 0, 2},
	MapData:      {"mapData", 0, 1},
	ListData:     {"listData", 0, 1},
	IData:        {"iData", 0, 1},
	BData:        {"bData", 0, 1},
	UnConstrData: {"unConstrData", 0, 1},
	UnMapData:    {"unMapData", 0, 1},
	UnListData:   {"unListData", 0, 1},
	UnIData:      {"unIData", 0, 1},
	UnBData:      {"unBData", 0, 1},
	EqualsData:   {"equalsData", 0, 2},

	MkPairData:   {"mkPairData", 0, 2},
	MkNilData:    {"mkNilData", 0, 1},
	MkNilPairData: {"mkNilPairData", 0, 1},

	SerialiseData: {"serialiseData", 0, 1},

	VerifyEcdsaSecp256k1Signature:   {"verifyEcdsaSecp256k1Signature", 0, 3},
	VerifySchnorrSecp256k1Signature: {"verifySchnorrSecp256k1Signature", 0, 3},

	Bls12_381_G1_add:        {"bls12_381_G1_add", 0, 2},
	Bls12_381_G1_neg:        {"bls12_381_G1_neg", 0, 1},
	Bls12_381_G1_scalarMul:  {"bls12_381_G1_scalarMul", 0, 2},
	Bls12_381_G1_equal:      {"bls12_381_G1_equal", 0, 2},
	Bls12_381_G1_hashToGroup: {"bls12_381_G1_hashToGroup", 0, 2},
	Bls12_381_G1_compress:   {"bls12_381_G1_compress", 0, 1},
	Bls12_381_G1_uncompress: {"bls12_381_G1_uncompress", 0, 1},

	Bls12_381_G2_add:        {"bls12_381_G2_add", 0, 2},
	Bls12_381_G2_neg:        {"bls12_381_G2_neg", 0, 1},
	Bls12_381_G2_scalarMul:  {"bls12_381_G2_scalarMul", 0, 2},
	Bls12_381_G2_equal:      {"bls12_381_G2_equal", 0, 2},
	Bls12_381_G2_hashToGroup: {"bls12_381_G2_hashToGroup", 0, 2},
	Bls12_381_G2_compress:   {"bls12_381_G2_compress", 0, 1},
	Bls12_381_G2_uncompress: {"bls12_381_G2_uncompress", 0, 1},

	Bls12_381_millerLoop:   {"bls12_381_millerLoop", 0, 2},
	Bls12_381_mulMlResult:  {"bls12_381_mulMlResult", 0, 2},
	Bls12_381_finalVerify:  {"bls12_381_finalVerify", 0, 2},

	Keccak_256:   {"keccak_256", 0, 1},
	Blake2b_224:  {"blake2b_224", 0, 1},

	IntegerToByteString: {"integerToByteString", 0, 3},
	ByteStringToInteger: {"byteStringToInteger", 0, 2},

	AndByteString:        {"andByteString", 0, 3},
	OrByteString:         {"orByteString", 0, 3},
	XorByteString:        {"xorByteString", 0, 3},
	ComplementByteString: {"complementByteString", 0, 1},
	ReadBit:              {"readBit", 0, 2},
	WriteBits:            {"writeBits", 0, 3},
	ReplicateByte:        {"replicateByte", 0, 2},
	ShiftByteString:      {"shiftByteString", 0, 2},
	RotateByteString:     {"rotateByteString", 0, 2},
	CountSetBits:         {"countSetBits", 0, 1},
	FindFirstSetBit:      {"findFirstSetBit", 0, 1},

	Ripemd_160: {"ripemd_160", 0, 1},

	ExpModInteger: {"expModInteger", 0, 3},

	ListToArray:   {"listToArray", 1, 1},
	LengthOfArray: {"lengthOfArray", 1, 1},
	IndexArray:    {"indexArray", 1, 2},
}

// Name returns the builtin's wire/textual name, used by the parser, pretty
// printer, and error messages.
func (f DefaultFunction) Name() string {
	if f.valid() {
		return builtinTable[f].name
	}
	return fmt.Sprintf("<unknown builtin %d>", int(f))
}

// Arity returns the number of term arguments the builtin consumes once its
// Force prefix is satisfied.
func (f DefaultFunction) Arity() int {
	if f.valid() {
		return builtinTable[f].arity
	}
	return 0
}

// ForceCount returns the number of Force steps a reference to this builtin
// must pass through before it starts accepting arguments (spec §4.5).
func (f DefaultFunction) ForceCount() int {
	if f.valid() {
		return builtinTable[f].forces
	}
	return 0
}

func (f DefaultFunction) valid() bool { return f >= 0 && f < numDefaultFunctions }

func (f DefaultFunction) String() string { return f.Name() }

// NumDefaultFunctions is the size of the closed builtin enumeration.
func NumDefaultFunctions() int { return int(numDefaultFunctions) }

var builtinByName map[string]DefaultFunction

func init() {
	builtinByName = make(map[string]DefaultFunction, numDefaultFunctions)
	for i := DefaultFunction(0); i < numDefaultFunctions; i++ {
		builtinByName[builtinTable[i].name] = i
	}
}

// LookupBuiltin resolves a builtin's wire/textual name back to its
// DefaultFunction, the inverse of Name. Used by the parser and the flat
// decoder's textual-form counterpart.
func LookupBuiltin(name string) (DefaultFunction, bool) {
	f, ok := builtinByName[name]
	return f, ok
}
