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

import "math/big"

// Decoder is a big-endian, bit-granular cursor over an in-memory buffer
// (spec §4.2). It is byte-alignment agnostic except where a primitive says
// otherwise (bytes, filler).
type Decoder struct {
	buffer   []byte
	pos      int
	usedBits int
}

// NewDecoder wraps buf for reading. buf is not copied; callers must not
// mutate it while decoding is in progress.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buffer: buf}
}

// Word decodes an unsigned LEB-like integer: 7 payload bits per byte, with
// the high bit as a continuation flag.
func (d *Decoder) Word() (uint64, error) {
	var result uint64
	var shift uint
	for {
		b, err := d.Bits8(8)
		if err != nil {
			return 0, err
		}
		result |= uint64(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			return result, nil
		}
	}
}

// Bits8 decodes up to 8 bits as an unsigned byte.
func (d *Decoder) Bits8(numBits int) (byte, error) {
	if numBits > 8 {
		return 0, ErrIncorrectBits
	}
	if err := d.ensureBits(numBits); err != nil {
		return 0, err
	}
	unusedBits := 8 - d.usedBits
	leadingZeroes := 8 - numBits
	r := (d.buffer[d.pos] << uint(d.usedBits)) >> uint(leadingZeroes)
	var x byte
	if numBits > unusedBits {
		x = r | (d.buffer[d.pos+1] >> uint(unusedBits+leadingZeroes))
	} else {
		x = r
	}
	d.dropBits(numBits)
	return x, nil
}

// Bit decodes a single bit as a bool.
func (d *Decoder) Bit() (bool, error) {
	if d.pos >= len(d.buffer) {
		return false, ErrEndOfBuffer
	}
	b := d.buffer[d.pos]&(128>>uint(d.usedBits)) > 0
	d.incrementByBit()
	return b, nil
}

func (d *Decoder) ensureBits(required int) error {
	remaining := (len(d.buffer)-d.pos)*8 - d.usedBits
	if required > remaining {
		return &NotEnoughBitsError{Requested: required}
	}
	return nil
}

func (d *Decoder) dropBits(numBits int) {
	all := numBits + d.usedBits
	d.usedBits = all % 8
	d.pos += all / 8
}

func (d *Decoder) incrementByBit() {
	if d.usedBits == 7 {
		d.pos++
		d.usedBits = 0
	} else {
		d.usedBits++
	}
}

// Filler skips zero bits up to and including the next set bit, restoring
// byte alignment (spec §4.2).
func (d *Decoder) Filler() error {
	for {
		bit, err := d.Bit()
		if err != nil {
			return err
		}
		if bit {
			return nil
		}
	}
}

// Bytes decodes a byte-aligned sequence of length-prefixed chunks of up to
// 255 bytes, terminated by a zero-length chunk.
func (d *Decoder) Bytes() ([]byte, error) {
	if err := d.Filler(); err != nil {
		return nil, err
	}
	var out []byte
	for {
		n, err := d.Bits8(8)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return out, nil
		}
		chunk, err := d.readByteChunk(int(n))
		if err != nil {
			return nil, err
		}
		out = append(out, chunk...)
	}
}

func (d *Decoder) readByteChunk(n int) ([]byte, error) {
	if d.usedBits != 0 {
		return nil, &BufferNotByteAlignedError{}
	}
	if err := d.ensureBits(n * 8); err != nil {
		return nil, err
	}
	chunk := make([]byte, n)
	copy(chunk, d.buffer[d.pos:d.pos+n])
	d.pos += n
	return chunk, nil
}

// BigWord decodes an unsigned LEB-like integer of arbitrary precision: the
// same continuation scheme as Word, accumulated into a big.Int so values
// wider than 64 bits (large UPLC integer literals) decode without loss.
func (d *Decoder) BigWord() (*big.Int, error) {
	result := new(big.Int)
	shift := uint(0)
	chunk := new(big.Int)
	for {
		b, err := d.Bits8(8)
		if err != nil {
			return nil, err
		}
		chunk.SetUint64(uint64(b & 0x7f))
		chunk.Lsh(chunk, shift)
		result.Or(result, chunk)
		shift += 7
		if b&0x80 == 0 {
			return result, nil
		}
	}
}

// Integer decodes a ZigZag-encoded arbitrary-precision LEB as a signed
// big.Int (spec §4.2).
func (d *Decoder) Integer() (*big.Int, error) {
	code, err := d.BigWord()
	if err != nil {
		return nil, err
	}
	return unzigzagBig(code), nil
}

// unzigzagBig reverses the ZigZag mapping: even codes are non-negative
// (code/2); odd codes are negative (-(code+1)/2).
func unzigzagBig(code *big.Int) *big.Int {
	if code.Bit(0) == 0 {
		return new(big.Int).Rsh(code, 1)
	}
	n := new(big.Int).Add(code, big.NewInt(1))
	n.Rsh(n, 1)
	return n.Neg(n)
}

// zigzagBig maps a signed big.Int to its unsigned ZigZag code.
func zigzagBig(v *big.Int) *big.Int {
	if v.Sign() >= 0 {
		return new(big.Int).Lsh(v, 1)
	}
	n := new(big.Int).Neg(v)
	n.Lsh(n, 1)
	return n.Sub(n, big.NewInt(1))
}
