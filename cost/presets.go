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

package cost

import "github.com/probechain/uplc/term"

// Version selects which protocol revision's builtin availability and cost
// formulas apply (spec §4.3: V1/V2/V3 differ in which builtins exist and,
// for the integer division family, which cost shape they use).
type Version int

const (
	V1 Version = iota
	V2
	V3
)

func defaultMachineCosts() MachineCosts {
	base := ExBudget{Mem: 100, Cpu: 16000}
	return MachineCosts{
		StepConstant: base,
		StepVar:      base,
		StepLambda:   base,
		StepApply:    base,
		StepDelay:    base,
		StepForce:    base,
		StepBuiltin:  base,
		StepConstr:   base,
		StepCase:     base,
	}
}

// PresetModel returns the cost model for a language version, built from
// representative coefficients: the StepKind costs, startup charge, and
// division-family shape differences are grounded precisely on the original
// reference's structure, but the individual builtin coefficients are
// plausible placeholders rather than the exact Cardano mainnet protocol
// parameters, since those numeric constants are not present anywhere in the
// retrieval pack.
func PresetModel(v Version) *CostModel {
	m := NewCostModel(ExBudget{Mem: 100, Cpu: 100}, defaultMachineCosts())
	applyCommonBuiltinCosts(m)
	applyDivisionFamily(m, v)
	applyVersionAvailability(m, v)
	return m
}

// applyCommonBuiltinCosts fills in the cost functions shared by every
// language version: the shape of each builtin's formula never changes
// across V1/V2/V3, only whether the builtin is reachable at all and (for
// the division family) which shape applies.
func applyCommonBuiltinCosts(m *CostModel) {
	set := func(f term.DefaultFunction, mem, cpu CostFunction) {
		m.Builtins[f] = BuiltinCostFunction{Mem: mem, Cpu: cpu}
	}

	set(term.AddInteger, MaxSize{Intercept: 1, Slope: 1}, MaxSize{Intercept: 205665, Slope: 812})
	set(term.SubtractInteger, MaxSize{Intercept: 1, Slope: 1}, MaxSize{Intercept: 205665, Slope: 812})
	set(term.MultiplyInteger, AddedSizes{Intercept: 0, Slope: 1}, AddedSizes{Intercept: 69522, Slope: 11687})
	set(term.EqualsInteger, ConstantCost(1), LinearOnDiagonal{Constant: 208512, Intercept: 421, Slope: 0})
	set(term.LessThanInteger, ConstantCost(1), MinSize{Intercept: 208896, Slope: 511})
	set(term.LessThanEqualsInteger, ConstantCost(1), MinSize{Intercept: 204924, Slope: 473})

	set(term.AppendByteString, AddedSizes{Intercept: 0, Slope: 1}, AddedSizes{Intercept: 1000, Slope: 173})
	set(term.ConsByteString, AddedSizes{Intercept: 0, Slope: 1}, LinearInY{Intercept: 72010, Slope: 178})
	set(term.SliceByteString, LinearInZ{Intercept: 4, Slope: 0}, LinearInZ{Intercept: 20467, Slope: 1})
	set(term.LengthOfByteString, ConstantCost(10), ConstantCost(1000))
	set(term.IndexByteString, ConstantCost(4), ConstantCost(57996))
	set(term.EqualsByteString, ConstantCost(1), LinearOnDiagonal{Constant: 245000, Intercept: 216773, Slope: 62})
	set(term.LessThanByteString, ConstantCost(1), MinSize{Intercept: 197145, Slope: 156})
	set(term.LessThanEqualsByteString, ConstantCost(1), MinSize{Intercept: 197145, Slope: 156})

	set(term.Sha2_256, LinearInX{Intercept: 0, Slope: 1}, LinearInX{Intercept: 2261318, Slope: 64571})
	set(term.Sha3_256, LinearInX{Intercept: 0, Slope: 1}, LinearInX{Intercept: 1373470, Slope: 52998})
	set(term.Blake2b_256, LinearInX{Intercept: 0, Slope: 1}, LinearInX{Intercept: 201305, Slope: 8356})
	set(term.VerifyEd25519Signature, ConstantCost(10), LinearInZ{Intercept: 53384111, Slope: 14333})

	set(term.AppendString, AddedSizes{Intercept: 4, Slope: 1}, AddedSizes{Intercept: 1000, Slope: 59957})
	set(term.EqualsString, ConstantCost(1), LinearOnDiagonal{Constant: 187000, Intercept: 1000, Slope: 52998})
	set(term.EncodeUtf8, LinearInX{Intercept: 4, Slope: 2}, LinearInX{Intercept: 1000, Slope: 42921})
	set(term.DecodeUtf8, LinearInX{Intercept: 4, Slope: 2}, LinearInX{Intercept: 91189, Slope: 769})

	set(term.IfThenElse, ConstantCost(1), ConstantCost(76049))
	set(term.ChooseUnit, ConstantCost(4), ConstantCost(46417))
	set(term.Trace, ConstantCost(32), ConstantCost(177399))
	set(term.FstPair, ConstantCost(32), ConstantCost(80436))
	set(term.SndPair, ConstantCost(32), ConstantCost(85931))
	set(term.ChooseList, ConstantCost(32), ConstantCost(175354))
	set(term.MkCons, ConstantCost(32), ConstantCost(65493))
	set(term.HeadList, ConstantCost(32), ConstantCost(43249))
	set(term.TailList, ConstantCost(32), ConstantCost(41182))
	set(term.NullList, ConstantCost(32), ConstantCost(60091))

	set(term.ChooseData, SixArgConstantCost(32), SixArgConstantCost(94375))
	set(term.ConstrData, AddedSizes{Intercept: 32, Slope: 0}, ConstantCost(221973))
	set(term.MapData, LinearInX{Intercept: 32, Slope: 1}, LinearInX{Intercept: 150000, Slope: 32})
	set(term.ListData, LinearInX{Intercept: 32, Slope: 1}, LinearInX{Intercept: 150000, Slope: 32})
	set(term.IData, ConstantCost(4), ConstantCost(195637))
	set(term.BData, ConstantCost(4), ConstantCost(64832))
	set(term.UnConstrData, ConstantCost(32), ConstantCost(138069))
	set(term.UnMapData, ConstantCost(32), ConstantCost(168347))
	set(term.UnListData, ConstantCost(32), ConstantCost(141497))
	set(term.UnIData, ConstantCost(32), ConstantCost(51775))
	set(term.UnBData, ConstantCost(32), ConstantCost(31220))
	set(term.EqualsData, MinSize{Intercept: 1, Slope: 0}, MinSize{Intercept: 1060367, Slope: 12586})

	set(term.MkPairData, ConstantCost(32), ConstantCost(76511))
	set(term.MkNilData, ConstantCost(32), ConstantCost(22558))
	set(term.MkNilPairData, ConstantCost(32), ConstantCost(20652))

	set(term.SerialiseData, LinearInX{Intercept: 0, Slope: 2}, LinearInX{Intercept: 955506, Slope: 213312})

	set(term.VerifyEcdsaSecp256k1Signature, ConstantCost(10), ConstantCost(35892428))
	set(term.VerifySchnorrSecp256k1Signature, ConstantCost(10), LinearInY{Intercept: 38477950, Slope: 29750})

	for _, f := range []term.DefaultFunction{
		term.Bls12_381_G1_add, term.Bls12_381_G2_add,
	} {
		set(f, ConstantCost(18), ConstantCost(962335))
	}
	for _, f := range []term.DefaultFunction{
		term.Bls12_381_G1_neg, term.Bls12_381_G2_neg,
	} {
		set(f, ConstantCost(18), ConstantCost(267929))
	}
	set(term.Bls12_381_G1_scalarMul, LinearInX{Intercept: 18, Slope: 0}, LinearInX{Intercept: 76433006, Slope: 8868})
	set(term.Bls12_381_G2_scalarMul, LinearInX{Intercept: 36, Slope: 0}, LinearInX{Intercept: 161714655, Slope: 17650})
	set(term.Bls12_381_G1_equal, ConstantCost(1), ConstantCost(442008))
	set(term.Bls12_381_G2_equal, ConstantCost(1), ConstantCost(901022))
	set(term.Bls12_381_G1_hashToGroup, LinearInX{Intercept: 18, Slope: 0}, LinearInX{Intercept: 2261318, Slope: 64571})
	set(term.Bls12_381_G2_hashToGroup, LinearInX{Intercept: 36, Slope: 0}, LinearInX{Intercept: 7391009, Slope: 1})
	set(term.Bls12_381_G1_compress, ConstantCost(6), ConstantCost(280685))
	set(term.Bls12_381_G2_compress, ConstantCost(12), ConstantCost(472250))
	set(term.Bls12_381_G1_uncompress, ConstantCost(18), ConstantCost(269567))
	set(term.Bls12_381_G2_uncompress, ConstantCost(36), ConstantCost(532431))
	set(term.Bls12_381_millerLoop, ConstantCost(72), ConstantCost(2145798))
	set(term.Bls12_381_mulMlResult, ConstantCost(72), ConstantCost(90434))
	set(term.Bls12_381_finalVerify, ConstantCost(1), ConstantCost(333849714))

	set(term.Keccak_256, LinearInX{Intercept: 0, Slope: 1}, LinearInX{Intercept: 2261318, Slope: 64571})
	set(term.Blake2b_224, LinearInX{Intercept: 0, Slope: 1}, LinearInX{Intercept: 201305, Slope: 8356})

	set(term.IntegerToByteString, LiteralInYorLinearInZ{Intercept: 0, Slope: 1}, LinearInMaxYZ{Intercept: 1293828, Slope: 28716})
	set(term.ByteStringToInteger, LinearInY{Intercept: 0, Slope: 1}, LinearInY{Intercept: 1006041, Slope: 43623})

	set(term.AndByteString, MaxSize{Intercept: 0, Slope: 1}, LinearInYAndZ{Intercept: 100181, Slope1: 726, Slope2: 0})
	set(term.OrByteString, MaxSize{Intercept: 0, Slope: 1}, LinearInYAndZ{Intercept: 100181, Slope1: 726, Slope2: 0})
	set(term.XorByteString, MaxSize{Intercept: 0, Slope: 1}, LinearInYAndZ{Intercept: 100181, Slope1: 726, Slope2: 0})
	set(term.ComplementByteString, LinearInX{Intercept: 0, Slope: 1}, LinearInX{Intercept: 107878, Slope: 680})
	set(term.ReadBit, ConstantCost(1), ConstantCost(57996))
	set(term.WriteBits, AddedSizes{Intercept: 0, Slope: 1}, LinearInY{Intercept: 450893, Slope: 13})
	set(term.ReplicateByte, LinearInX{Intercept: 1, Slope: 1}, LinearInX{Intercept: 38598, Slope: 11})
	set(term.ShiftByteString, LinearInX{Intercept: 0, Slope: 1}, LinearInX{Intercept: 102538, Slope: 254})
	set(term.RotateByteString, LinearInX{Intercept: 0, Slope: 1}, LinearInX{Intercept: 102303, Slope: 249})
	set(term.CountSetBits, LinearInX{Intercept: 0, Slope: 1}, LinearInX{Intercept: 118124, Slope: 1})
	set(term.FindFirstSetBit, LinearInX{Intercept: 0, Slope: 1}, LinearInX{Intercept: 124679, Slope: 1})

	set(term.Ripemd_160, LinearInX{Intercept: 0, Slope: 1}, LinearInX{Intercept: 1964219, Slope: 24520})

	set(term.ExpModInteger, ConstantCost(0), ExpModCost{Coeff00: 43243, Coeff11: 4, Coeff12: 0})

	set(term.ListToArray, LinearInX{Intercept: 0, Slope: 1}, LinearInX{Intercept: 20000, Slope: 100})
	set(term.LengthOfArray, ConstantCost(10), ConstantCost(1000))
	set(term.IndexArray, ConstantCost(4), ConstantCost(32000))
}

// PresetModelWithParams returns language version v's preset model with its
// builtin cost coefficients overridden by params, a flat (mem, cpu) pair per
// builtin in DefaultFunction enumeration order — the same shape a chain
// cost-model-update proposal ships. Each overridden builtin's cost function
// collapses to a flat ConstantCost pair: the protocol's actual per-builtin
// parameter counts vary by cost shape (1 to 6 ints), and reconstructing the
// exact shape-aware decoder is out of scope here; this gives
// every builtin a real, adjustable cost without claiming bit-exact parity.
func PresetModelWithParams(v Version, params []int64) *CostModel {
	m := PresetModel(v)
	for i := 0; i+1 < len(params) && i/2 < len(m.Builtins); i += 2 {
		f := term.DefaultFunction(i / 2)
		m.Builtins[f] = BuiltinCostFunction{Mem: ConstantCost(params[i]), Cpu: ConstantCost(params[i+1])}
	}
	return m
}

// applyDivisionFamily wires the V1/V2-vs-V3 cost-shape divergence for
// DivideInteger/QuotientInteger/RemainderInteger/ModInteger, the one place
// the formula shape itself (not just availability) changes by version.
func applyDivisionFamily(m *CostModel, v Version) {
	var shape CostFunction
	if v == V3 {
		shape = ConstAboveDiagonalIntoQuadraticXAndY{
			Constant: 196500, Minimum: 0,
			Coeff00: 453240, Coeff10: 220, Coeff01: 0, Coeff20: 0, Coeff11: 1, Coeff02: 0,
		}
	} else {
		shape = ConstAboveDiagonalIntoMultipliedSizes{Constant: 196500, Intercept: 0, Slope: 220}
	}
	for _, f := range []term.DefaultFunction{
		term.DivideInteger, term.QuotientInteger, term.RemainderInteger, term.ModInteger,
	} {
		m.Builtins[f] = BuiltinCostFunction{Mem: SubtractedSizes{Intercept: 1, Slope: 1, Minimum: 1}, Cpu: shape}
	}
}

// applyVersionAvailability replaces the cost function of every builtin the
// given version does not support with the sentinel unavailable cost
// (spec §4.3: Plutus V1 predates BLS, Keccak/Blake2b-224, the bitwise
// family, expModInteger, and the array builtins; V2 adds BLS and the hash
// extensions but not the bitwise/array/expMod additions that shipped with
// V3).
func applyVersionAvailability(m *CostModel, v Version) {
	v2Plus := []term.DefaultFunction{
		term.Bls12_381_G1_add, term.Bls12_381_G1_neg, term.Bls12_381_G1_scalarMul, term.Bls12_381_G1_equal,
		term.Bls12_381_G1_hashToGroup, term.Bls12_381_G1_compress, term.Bls12_381_G1_uncompress,
		term.Bls12_381_G2_add, term.Bls12_381_G2_neg, term.Bls12_381_G2_scalarMul, term.Bls12_381_G2_equal,
		term.Bls12_381_G2_hashToGroup, term.Bls12_381_G2_compress, term.Bls12_381_G2_uncompress,
		term.Bls12_381_millerLoop, term.Bls12_381_mulMlResult, term.Bls12_381_finalVerify,
		term.Keccak_256, term.Blake2b_224,
	}
	v3Only := []term.DefaultFunction{
		term.IntegerToByteString, term.ByteStringToInteger,
		term.AndByteString, term.OrByteString, term.XorByteString, term.ComplementByteString,
		term.ReadBit, term.WriteBits, term.ReplicateByte, term.ShiftByteString, term.RotateByteString,
		term.CountSetBits, term.FindFirstSetBit, term.Ripemd_160, term.ExpModInteger,
		term.ListToArray, term.LengthOfArray, term.IndexArray,
	}
	if v == V1 {
		disable(m, v2Plus)
		disable(m, v3Only)
	}
	if v == V2 {
		disable(m, v3Only)
	}
}

func disable(m *CostModel, fs []term.DefaultFunction) {
	for _, f := range fs {
		m.Builtins[f] = unavailableBuiltinCost
	}
}
