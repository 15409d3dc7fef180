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
	"bytes"
	"math/big"

	"github.com/probechain/uplc/term"
)

func appendByteString(args []term.Constant) (term.Constant, error) {
	a, err := asByteString("appendByteString", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asByteString("appendByteString", args[1])
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return term.ByteString{Value: out}, nil
}

func consByteString(args []term.Constant) (term.Constant, error) {
	i, err := asInteger("consByteString", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asByteString("consByteString", args[1])
	if err != nil {
		return nil, err
	}
	// consByteString truncates modulo 256 rather than erroring (matches the
	// reference's "wraps" bitwise-AND behaviour for a byte argument, spec §4.5).
	m := new(big.Int).Mod(i, big.NewInt(256))
	out := make([]byte, 0, len(b)+1)
	out = append(out, byte(m.Uint64()))
	out = append(out, b...)
	return term.ByteString{Value: out}, nil
}

func sliceByteString(args []term.Constant) (term.Constant, error) {
	start, err := asInteger("sliceByteString", args[0])
	if err != nil {
		return nil, err
	}
	length, err := asInteger("sliceByteString", args[1])
	if err != nil {
		return nil, err
	}
	b, err := asByteString("sliceByteString", args[2])
	if err != nil {
		return nil, err
	}
	n := int64(len(b))
	lo := start.Int64()
	if lo < 0 {
		lo = 0
	}
	ln := length.Int64()
	hi := lo + ln
	if lo > n {
		lo = n
	}
	if hi > n {
		hi = n
	}
	if hi < lo {
		hi = lo
	}
	out := make([]byte, hi-lo)
	copy(out, b[lo:hi])
	return term.ByteString{Value: out}, nil
}

func lengthOfByteString(args []term.Constant) (term.Constant, error) {
	b, err := asByteString("lengthOfByteString", args[0])
	if err != nil {
		return nil, err
	}
	return term.NewInteger(int64(len(b))), nil
}

func indexByteString(args []term.Constant) (term.Constant, error) {
	b, err := asByteString("indexByteString", args[0])
	if err != nil {
		return nil, err
	}
	i, err := asInteger("indexByteString", args[1])
	if err != nil {
		return nil, err
	}
	idx, err := fitsUint("indexByteString", i)
	if err != nil || idx >= uint64(len(b)) {
		return nil, newError("indexByteString", "index %s out of bounds for byte string of length %d", i, len(b))
	}
	return term.NewInteger(int64(b[idx])), nil
}

func equalsByteString(args []term.Constant) (term.Constant, error) {
	a, err := asByteString("equalsByteString", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asByteString("equalsByteString", args[1])
	if err != nil {
		return nil, err
	}
	return term.Bool{Value: bytes.Equal(a, b)}, nil
}

func lessThanByteString(args []term.Constant) (term.Constant, error) {
	a, err := asByteString("lessThanByteString", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asByteString("lessThanByteString", args[1])
	if err != nil {
		return nil, err
	}
	return term.Bool{Value: bytes.Compare(a, b) < 0}, nil
}

func lessThanEqualsByteString(args []term.Constant) (term.Constant, error) {
	a, err := asByteString("lessThanEqualsByteString", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asByteString("lessThanEqualsByteString", args[1])
	if err != nil {
		return nil, err
	}
	return term.Bool{Value: bytes.Compare(a, b) <= 0}, nil
}

func zipBytes(op string, args []term.Constant, f func(x, y byte) byte) (term.Constant, error) {
	shouldPad, err := asBoolConstant(op, args[0])
	if err != nil {
		return nil, err
	}
	a, err := asByteString(op, args[1])
	if err != nil {
		return nil, err
	}
	b, err := asByteString(op, args[2])
	if err != nil {
		return nil, err
	}
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if !shouldPad {
		if len(a) < len(b) {
			n = len(a)
		} else {
			n = len(b)
		}
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		var x, y byte
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		out[i] = f(x, y)
	}
	return term.ByteString{Value: out}, nil
}

func andByteString(args []term.Constant) (term.Constant, error) {
	return zipBytes("andByteString", args, func(x, y byte) byte { return x & y })
}

func orByteString(args []term.Constant) (term.Constant, error) {
	return zipBytes("orByteString", args, func(x, y byte) byte { return x | y })
}

func xorByteString(args []term.Constant) (term.Constant, error) {
	return zipBytes("xorByteString", args, func(x, y byte) byte { return x ^ y })
}

func complementByteString(args []term.Constant) (term.Constant, error) {
	b, err := asByteString("complementByteString", args[0])
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	for i, v := range b {
		out[i] = ^v
	}
	return term.ByteString{Value: out}, nil
}

func readBit(args []term.Constant) (term.Constant, error) {
	b, err := asByteString("readBit", args[0])
	if err != nil {
		return nil, err
	}
	i, err := asInteger("readBit", args[1])
	if err != nil {
		return nil, err
	}
	idx, err := fitsUint("readBit", i)
	if err != nil || idx >= uint64(len(b)*8) {
		return nil, newError("readBit", "index %s out of bounds for %d bits", i, len(b)*8)
	}
	// Bit 0 is the least-significant bit of the last byte (spec §4.5).
	byteIdx := len(b) - 1 - int(idx/8)
	bitIdx := idx % 8
	return term.Bool{Value: b[byteIdx]&(1<<bitIdx) != 0}, nil
}

func writeBits(args []term.Constant) (term.Constant, error) {
	b, err := asByteString("writeBits", args[0])
	if err != nil {
		return nil, err
	}
	list, ok := args[1].(term.ProtoList)
	if !ok {
		return nil, &TypeMismatchError{Op: "writeBits", Expected: term.ListOf(term.TypeInteger), Got: args[1]}
	}
	setTo, err := asBoolConstant("writeBits", args[2])
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	for _, item := range list.Items {
		idxInt, err := asInteger("writeBits", item)
		if err != nil {
			return nil, err
		}
		idx, err := fitsUint("writeBits", idxInt)
		if err != nil || idx >= uint64(len(out)*8) {
			return nil, newError("writeBits", "index %s out of bounds for %d bits", idxInt, len(out)*8)
		}
		byteIdx := len(out) - 1 - int(idx/8)
		bitIdx := idx % 8
		if setTo {
			out[byteIdx] |= 1 << bitIdx
		} else {
			out[byteIdx] &^= 1 << bitIdx
		}
	}
	return term.ByteString{Value: out}, nil
}

func asBoolConstant(op string, c term.Constant) (bool, error) {
	b, ok := c.(term.Bool)
	if !ok {
		return false, &TypeMismatchError{Op: op, Expected: term.TypeBool, Got: c}
	}
	return b.Value, nil
}

func replicateByte(args []term.Constant) (term.Constant, error) {
	length, err := asInteger("replicateByte", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asInteger("replicateByte", args[1])
	if err != nil {
		return nil, err
	}
	if length.Sign() < 0 {
		return nil, newError("replicateByte", "replicateByte encountered negative size %s", length)
	}
	byt, err := fitsByte("replicateByte", b)
	if err != nil {
		return nil, err
	}
	n := length.Int64()
	out := make([]byte, n)
	for i := range out {
		out[i] = byt
	}
	return term.ByteString{Value: out}, nil
}

func shiftByteString(args []term.Constant) (term.Constant, error) {
	b, err := asByteString("shiftByteString", args[0])
	if err != nil {
		return nil, err
	}
	shift, err := asInteger("shiftByteString", args[1])
	if err != nil {
		return nil, err
	}
	n := len(b) * 8
	s := shift.Int64()
	if s >= int64(n) || s <= -int64(n) {
		return term.ByteString{Value: make([]byte, len(b))}, nil
	}
	bits := bytesToBits(b)
	shifted := make([]bool, n)
	for i := 0; i < n; i++ {
		src := int64(i) + s
		if src >= 0 && src < int64(n) {
			shifted[i] = bits[src]
		}
	}
	return term.ByteString{Value: bitsToBytes(shifted)}, nil
}

func rotateByteString(args []term.Constant) (term.Constant, error) {
	b, err := asByteString("rotateByteString", args[0])
	if err != nil {
		return nil, err
	}
	rot, err := asInteger("rotateByteString", args[1])
	if err != nil {
		return nil, err
	}
	n := len(b) * 8
	if n == 0 {
		return term.ByteString{Value: []byte{}}, nil
	}
	s := ((rot.Int64() % int64(n)) + int64(n)) % int64(n)
	bits := bytesToBits(b)
	rotated := make([]bool, n)
	for i := 0; i < n; i++ {
		src := (int64(i) + s) % int64(n)
		rotated[i] = bits[src]
	}
	return term.ByteString{Value: bitsToBytes(rotated)}, nil
}

// bytesToBits/bitsToBytes index bit 0 as the least-significant bit of the
// last byte, matching readBit/writeBits (spec §4.5).
func bytesToBits(b []byte) []bool {
	n := len(b) * 8
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		byteIdx := len(b) - 1 - i/8
		bits[i] = b[byteIdx]&(1<<(uint(i)%8)) != 0
	}
	return bits
}

func bitsToBytes(bits []bool) []byte {
	n := len(bits)
	out := make([]byte, n/8)
	for i := 0; i < n; i++ {
		if bits[i] {
			byteIdx := len(out) - 1 - i/8
			out[byteIdx] |= 1 << (uint(i) % 8)
		}
	}
	return out
}

func countSetBits(args []term.Constant) (term.Constant, error) {
	b, err := asByteString("countSetBits", args[0])
	if err != nil {
		return nil, err
	}
	var count int64
	for _, v := range b {
		for v != 0 {
			count += int64(v & 1)
			v >>= 1
		}
	}
	return term.NewInteger(count), nil
}

func findFirstSetBit(args []term.Constant) (term.Constant, error) {
	b, err := asByteString("findFirstSetBit", args[0])
	if err != nil {
		return nil, err
	}
	bits := bytesToBits(b)
	for i, set := range bits {
		if set {
			return term.NewInteger(int64(i)), nil
		}
	}
	return term.NewInteger(-1), nil
}

const integerToByteStringMaxSize = 8192

func integerToByteString(args []term.Constant) (term.Constant, error) {
	endianness, err := asBoolConstant("integerToByteString", args[0])
	if err != nil {
		return nil, err
	}
	length, err := asInteger("integerToByteString", args[1])
	if err != nil {
		return nil, err
	}
	value, err := asInteger("integerToByteString", args[2])
	if err != nil {
		return nil, err
	}
	if value.Sign() < 0 {
		return nil, newError("integerToByteString", "integerToByteString encountered negative input %s", value)
	}
	if length.Sign() < 0 {
		return nil, newError("integerToByteString", "integerToByteString encountered negative size %s", length)
	}
	if length.Int64() > integerToByteStringMaxSize {
		return nil, newError("integerToByteString", "requested size %s exceeds maximum %d", length, integerToByteStringMaxSize)
	}
	raw := value.Bytes()
	n := length.Int64()
	if n == 0 {
		n = int64(len(raw))
	} else if int64(len(raw)) > n {
		return nil, newError("integerToByteString", "value %s does not fit in %d bytes", value, n)
	}
	out := make([]byte, n)
	copy(out[n-int64(len(raw)):], raw)
	if !endianness {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return term.ByteString{Value: out}, nil
}

func byteStringToInteger(args []term.Constant) (term.Constant, error) {
	endianness, err := asBoolConstant("byteStringToInteger", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asByteString("byteStringToInteger", args[1])
	if err != nil {
		return nil, err
	}
	buf := make([]byte, len(b))
	copy(buf, b)
	if !endianness {
		for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}
	return term.Integer{Value: new(big.Int).SetBytes(buf)}, nil
}
